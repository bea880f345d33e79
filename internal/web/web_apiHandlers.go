// Package web provides the HTTP server and web interface for go-tendas
package web

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	helloMessage          = "Hello from Python API!"
	contactSuccessMessage = "Contact form submitted successfully"
)

func (s *WebServer) helloAPI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": helloMessage})
}

// contactAPI acknowledges a contact form submission. The payload is decoded
// and then dropped: nothing is stored or sent. An empty body is accepted,
// a non-empty body that is not JSON gets a 400.
func (s *WebServer) contactAPI(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	if len(bytes.TrimSpace(body)) > 0 {
		var payload interface{}
		if err := binding.JSON.BindBody(body, &payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed JSON body"})
			return
		}
		if s.Config.Debug {
			log.Printf("[WEB]: Contact form submission from %s: %v", c.ClientIP(), payload)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": contactSuccessMessage,
	})
}

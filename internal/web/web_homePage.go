// Package web provides the HTTP server and web interface for go-tendas
package web

import "github.com/gin-gonic/gin"

func (s *WebServer) homePage(c *gin.Context) {
	data := s.getBaseTemplateData(c, "page.home")
	s.renderTemplate(c, "home.html", data)
}

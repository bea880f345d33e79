// Package web provides the HTTP server and web interface for go-tendas
package web

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-tendas/internal/config"
	"github.com/go-while/go-tendas/internal/locale"
)

// TemplateData represents common template data
type TemplateData struct {
	Title        string
	Lang         string
	OtherLang    string // target of the language switch link
	L            *locale.Localizer
	CurrentPath  string
	CurrentYear  int
	AppVersion   string
	ContactEmail string
	ContactPhone string
}

// GetPort returns the listening port from the config
func (s *WebServer) GetPort() int {
	return s.Config.ListenPort
}

// getBaseTemplateData creates a TemplateData struct with common information.
// titleKey is looked up in the message catalog with args.
func (s *WebServer) getBaseTemplateData(c *gin.Context, titleKey string, args ...interface{}) TemplateData {
	l := getLocalizer(c)
	other := "pt"
	if l.Lang() == "pt" {
		other = "en"
	}
	return TemplateData{
		Title:        l.T(titleKey, args...),
		Lang:         l.Lang(),
		OtherLang:    other,
		L:            l,
		CurrentPath:  c.Request.URL.Path,
		CurrentYear:  time.Now().Year(),
		AppVersion:   config.AppVersion,
		ContactEmail: ContactEmail,
		ContactPhone: ContactPhone,
	}
}

// renderTemplate renders a page template inside base.html
func (s *WebServer) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	tmpl, err := s.templates.get(templateName)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, "Template error", err.Error())
		return
	}
	// Render into a buffer so a failing template never leaves a half written page
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, baseTemplate, data); err != nil {
		log.Printf("[WEB]: Error rendering template %s: %v", templateName, err)
		s.renderError(c, http.StatusInternalServerError, "Template error", err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// renderError renders an error page
func (s *WebServer) renderError(c *gin.Context, statusCode int, message string, errstring string) {
	log.Printf("[WEB]: Error %d: %s - %s", statusCode, message, errstring)

	errorData := struct {
		TemplateData
		Error      string
		StatusCode int
	}{
		TemplateData: s.getBaseTemplateData(c, "Error"),
		Error:        message,
		StatusCode:   statusCode,
	}

	tmpl, err := s.templates.get("error.html")
	if err == nil {
		var buf bytes.Buffer
		if err = tmpl.ExecuteTemplate(&buf, baseTemplate, errorData); err == nil {
			c.Data(statusCode, "text/html; charset=utf-8", buf.Bytes())
			return
		}
	}
	log.Printf("[WEB]: Error rendering error template: %v", err)
	c.String(statusCode, "Error: %s", message)
}

package web

import "github.com/gin-gonic/gin"

// contactPage shows the quote request form. The form posts to /api/contact.
func (s *WebServer) contactPage(c *gin.Context) {
	data := s.getBaseTemplateData(c, "page.contact")
	s.renderTemplate(c, "contact.html", data)
}

package web

import "github.com/gin-gonic/gin"

func (s *WebServer) rentalPage(c *gin.Context) {
	data := s.getBaseTemplateData(c, "page.rental")
	s.renderTemplate(c, "rental.html", data)
}

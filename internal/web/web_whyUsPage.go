package web

import "github.com/gin-gonic/gin"

func (s *WebServer) whyUsPage(c *gin.Context) {
	data := s.getBaseTemplateData(c, "page.whyUs")
	s.renderTemplate(c, "why_us.html", data)
}

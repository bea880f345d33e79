package web

import "github.com/gin-gonic/gin"

// ProductPageData represents data for the product page
type ProductPageData struct {
	TemplateData
	ProductID string
}

// productPage renders the product page for any id. There is no product
// catalog, so the id is passed through as given.
func (s *WebServer) productPage(c *gin.Context) {
	id := c.Param("id")
	data := ProductPageData{
		TemplateData: s.getBaseTemplateData(c, "page.product", id),
		ProductID:    id,
	}
	s.renderTemplate(c, "product.html", data)
}

// Package web provides the HTTP server and web interface for go-tendas
package web

// file layout
/*

	### **Core Files:**
	1. **`webserver_core_routes.go`** - Server setup, middleware and the route table
	2. **`web_utils.go`** - Template data and rendering helpers
	3. **`web_templates.go`** - Embedded page templates and the template cache
	4. **`web_locale.go`** - Language negotiation middleware

	### **Page Handler Files:**
	5. **`web_homePage.go`** - Home page ("/")
	6. **`web_contactPage.go`** - Contact page ("/contact")
	7. **`web_whyUsPage.go`** - Why us page ("/why-us")
	8. **`web_rentalPage.go`** - Rental page ("/rental")
	9. **`web_productPage.go`** - Product page ("/product/:id")

	### **Files:**
	10. **`web_images.go`** - Images from the images directory ("/images/*filepath")
	11. **`embedded_static.go`** - Embedded css ("/static/*filepath")

	### **API File:**
	12. **`web_apiHandlers.go`** - JSON endpoints under /api

*/

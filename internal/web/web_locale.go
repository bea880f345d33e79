package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-tendas/internal/locale"
)

const (
	localizerKey       = "localizer"
	localeCookieMaxAge = 365 * 24 * 60 * 60 // one year, in seconds
)

// LocaleMiddleware picks the page language for each request and stores a
// Localizer on the context. An explicit ?lang= choice is remembered in a cookie.
func (s *WebServer) LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("lang")
		cookie, _ := c.Cookie(locale.CookieName)
		l := locale.New(locale.Negotiate(query, cookie, c.GetHeader("Accept-Language")))

		if query != "" && locale.IsSupported(query) {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(locale.CookieName, l.Lang(), localeCookieMaxAge, "/", "", s.Config.SSL, true)
		}
		c.Header("Content-Language", l.Lang())

		c.Set(localizerKey, l)
		c.Next()
	}
}

// getLocalizer returns the request Localizer, or the default language when the middleware did not run
func getLocalizer(c *gin.Context) *locale.Localizer {
	if v, ok := c.Get(localizerKey); ok {
		if l, ok := v.(*locale.Localizer); ok {
			return l
		}
	}
	return locale.New(locale.Supported[0])
}

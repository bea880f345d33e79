// Package web provides the HTTP server and web interface for go-tendas
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/go-while/go-tendas/internal/config"
)

const (
	ContactEmail = "sales@tendasmozambique.com"
	ContactPhone = "+258 843 989 573"
)

// WebServer represents the web server
type WebServer struct {
	Router    *gin.Engine
	Config    *config.WebConfig
	templates *templateCache
	httpSrv   *http.Server
}

// NewServer creates a new web server instance
func NewServer(webconfig *config.WebConfig) (*WebServer, error) {
	if gin.Mode() != gin.TestMode {
		if webconfig.Debug {
			gin.SetMode(gin.DebugMode)
		} else {
			gin.SetMode(gin.ReleaseMode)
		}
	}

	templates, err := newTemplateCache(webconfig.TemplatesDir, webconfig.Debug)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Configure Gin to trust reverse proxy headers only from known proxies
	if err := router.SetTrustedProxies(webconfig.TrustedProxies); err != nil {
		return nil, fmt.Errorf("setting trusted proxies: %w", err)
	}

	server := &WebServer{
		Router:    router,
		Config:    webconfig,
		templates: templates,
		httpSrv: &http.Server{
			Addr:              ":" + strconv.Itoa(webconfig.ListenPort),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	router.Use(server.ApacheLogFormat())
	router.Use(gin.Recovery())

	// Configure security headers based on SSL setup
	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}

	// Only add SSL-specific headers if SSL is enabled on the application itself
	// (not when running behind a reverse proxy like nginx with SSL)
	if webconfig.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}
	router.Use(secure.New(secureConfig))

	// The frontend dev server runs on its own origin and calls /api from there
	if len(webconfig.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: webconfig.CORSOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       12 * time.Hour,
		}))
		log.Printf("[WEB]: CORS enabled for %v", webconfig.CORSOrigins)
	}

	server.setupRoutes()
	return server, nil
}

// setupRoutes configures all HTTP routes
func (s *WebServer) setupRoutes() {
	// Static files first
	s.Router.GET("/static/*filepath", EmbeddedStaticHandler("/static"))
	s.Router.GET("/images/*filepath", s.serveImage)

	s.Router.GET("/robots.txt", func(c *gin.Context) {
		c.String(http.StatusOK, "User-agent: *\nDisallow:\n")
	})
	s.Router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	// API routes
	api := s.Router.Group("/api")
	{
		api.GET("/hello", s.helloAPI)
		api.POST("/contact", s.contactAPI)
	}

	// Pages
	pages := s.Router.Group("/")
	pages.Use(s.LocaleMiddleware())
	{
		pages.GET("/", s.homePage)
		pages.GET("/contact", s.contactPage)
		pages.GET("/why-us", s.whyUsPage)
		pages.GET("/rental", s.rentalPage)
		pages.GET("/product/:id", s.productPage)
	}
}

// Start starts the web server with SSL support if configured
func (s *WebServer) Start() error {
	addr := s.httpSrv.Addr
	if s.Config.SSL {
		log.Printf("[WEB]: Starting HTTPS server on %s", addr)
		return s.httpSrv.ListenAndServeTLS(s.Config.CertFile, s.Config.KeyFile)
	}
	log.Printf("[WEB]: Starting HTTP server on %s", addr)
	return s.httpSrv.ListenAndServe()
}

// Shutdown gracefully stops the web server, waiting for in-flight requests until ctx expires
func (s *WebServer) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// ApacheLogFormat logs every request in Apache combined log format
func (s *WebServer) ApacheLogFormat() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf(`%s - - [%s] "%s %s %s" %d %d "%s" "%s"`+"\n",
			param.ClientIP,
			param.TimeStamp.Format("02/Jan/2006:15:04:05 -0700"),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.BodySize,
			param.Request.Referer(),
			param.Request.UserAgent(),
		)
	})
}

// Web server for go-tendas
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	prof "github.com/go-while/go-cpu-mem-profiler"
	"github.com/go-while/go-tendas/internal/config"
	"github.com/go-while/go-tendas/internal/web"
)

const shutdownTimeout = 10 * time.Second

var (
	// command-line flags
	webport     int
	webssl      bool
	webcertFile string
	webkeyFile  string
	debug       bool
	imagesDir   string
	envFile     string
	pprofAddr   string
)

var appVersion = "-unset-"

func main() {
	config.AppVersion = appVersion

	flag.IntVar(&webport, "webport", 0, "Web server port (default: $PORT or 3000)")
	flag.BoolVar(&webssl, "webssl", false, "Enable SSL")
	flag.StringVar(&webcertFile, "websslcert", "", "SSL certificate file (/path/to/fullchain.pem)")
	flag.StringVar(&webkeyFile, "websslkey", "", "SSL key file (/path/to/privkey.pem)")
	flag.BoolVar(&debug, "debug", false, "Enable debug mode: gin debug output and template reload on every request (default: $DEBUG or false)")
	flag.StringVar(&imagesDir, "images", "", "Directory served under /images/ (default: $IMAGES_DIR or static/images)")
	flag.StringVar(&envFile, "env", config.DefaultEnvFile, "Optional environment file to load before reading the environment")
	flag.StringVar(&pprofAddr, "pprof", "", "Serve pprof and take periodic memory profiles on this address (e.g. :51111)")
	flag.Parse()

	log.Printf("Starting go-tendas: Web Server (version: %s)", appVersion)

	mainConfig := config.NewDefaultConfig()
	webConfig := mainConfig.Web
	if err := config.LoadFromEnv(webConfig, envFile); err != nil {
		log.Fatalf("[WEB]: Error loading environment: %v", err)
	}

	// Override config with command-line flags if provided
	if webport > 0 {
		webConfig.ListenPort = webport
		log.Printf("[WEB]: Overriding listen port with command-line flag: %d", webConfig.ListenPort)
	}
	if webssl {
		webConfig.SSL = true
		log.Printf("[WEB]: SSL enabled via command-line flag")
	}
	if webcertFile != "" {
		webConfig.CertFile = webcertFile
		log.Printf("[WEB]: SSL cert file set: %s", webConfig.CertFile)
	}
	if webkeyFile != "" {
		webConfig.KeyFile = webkeyFile
		log.Printf("[WEB]: SSL key file set: %s", webConfig.KeyFile)
	}
	if debug {
		webConfig.Debug = true
		log.Printf("[WEB]: Debug mode enabled via command-line flag")
	}
	if imagesDir != "" {
		webConfig.ImagesDir = imagesDir
	}

	if err := webConfig.Validate(); err != nil {
		log.Fatalf("[WEB]: Invalid configuration: %v", err)
	}
	if _, err := os.Stat(webConfig.ImagesDir); err != nil {
		log.Printf("[WEB]: Warning: images directory %s not accessible: %v", webConfig.ImagesDir, err)
	}
	log.Printf("[WEB]: Using WEB configuration: %#v", webConfig)

	if pprofAddr != "" {
		profiler := prof.NewProf()
		go profiler.PprofWeb(pprofAddr)
		profiler.StartMemProfile(5*time.Minute, 30*time.Second)
		log.Printf("[WEB]: pprof listening on %s", pprofAddr)
	}

	server, err := web.NewServer(webConfig)
	if err != nil {
		log.Fatalf("[WEB]: Failed to create web server: %v", err)
	}

	protocol := "http"
	if webConfig.SSL {
		protocol = "https"
	}
	log.Printf("[WEB]: Starting go-tendas web server on %s://localhost:%d", protocol, server.GetPort())

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start web server in goroutine to make it non-blocking
	webServerErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			webServerErrChan <- err
		}
	}()

	log.Printf("[WEB]: Server started successfully. Press Ctrl+C to gracefully shutdown...")

	select {
	case <-sigChan:
		log.Printf("[WEB]: Received shutdown signal, initiating graceful shutdown...")
	case err := <-webServerErrChan:
		log.Fatalf("[WEB]: Failed to start web server: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("[WEB]: Error during shutdown: %v", err)
	}

	log.Printf("[WEB]: Graceful shutdown completed")
} // end main

// Package config provides configuration management for go-tendas.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var AppVersion = "-unset-" // will be set at build time

const (
	DefaultListenPort = 3000
	DefaultImagesDir  = "static/images"
	DefaultEnvFile    = ".env"
	MinListenPort     = 1
	MaxListenPort     = 65535
)

// MainConfig holds the main configuration for go-tendas
type MainConfig struct {
	// Web interface settings
	Web *WebConfig `json:"web"`

	AppVersion string `json:"app_version"` // Application version, set at build time
}

// WebConfig holds web interface configuration
type WebConfig struct {
	ListenPort     int      `json:"listen_port"`
	SSL            bool     `json:"ssl"`
	CertFile       string   `json:"cert_file,omitempty"`
	KeyFile        string   `json:"key_file,omitempty"`
	ImagesDir      string   `json:"images_dir"`
	TemplatesDir   string   `json:"templates_dir,omitempty"` // empty: use embedded templates
	CORSOrigins    []string `json:"cors_origins,omitempty"`
	TrustedProxies []string `json:"trusted_proxies,omitempty"`
	Debug          bool     `json:"debug"` // gin debug mode and template reload on every request
}

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *MainConfig {
	return &MainConfig{
		AppVersion: AppVersion,
		Web: &WebConfig{
			ListenPort:     DefaultListenPort,
			SSL:            false,
			ImagesDir:      DefaultImagesDir,
			TrustedProxies: []string{"127.0.0.1", "::1"},
		},
	}
}

// LoadFromEnv loads an optional .env file and overrides web settings
// with values from the process environment.
func LoadFromEnv(cfg *WebConfig, envFiles ...string) error {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Printf("[CONFIG]: No %s file found, using system environment variables", file)
				continue
			}
			return fmt.Errorf("loading %s: %w", file, err)
		}
		log.Printf("[CONFIG]: Loaded environment from %s", file)
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.ListenPort = port
	}
	if v := os.Getenv("DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid DEBUG %q: %w", v, err)
		}
		cfg.Debug = debug
	}
	if v := os.Getenv("IMAGES_DIR"); v != "" {
		cfg.ImagesDir = v
	}
	if v := os.Getenv("TEMPLATES_DIR"); v != "" {
		cfg.TemplatesDir = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("TRUSTED_PROXIES"); v != "" {
		cfg.TrustedProxies = splitList(v)
	}
	return nil
}

// Validate checks the web configuration for values the server cannot start with
func (c *WebConfig) Validate() error {
	if c.ListenPort < MinListenPort || c.ListenPort > MaxListenPort {
		return fmt.Errorf("invalid port number: %d (must be between %d and %d)", c.ListenPort, MinListenPort, MaxListenPort)
	}
	if c.SSL && (c.CertFile == "" || c.KeyFile == "") {
		return errors.New("SSL enabled but cert_file or key_file not specified in config")
	}
	if c.ImagesDir == "" {
		return errors.New("images_dir must not be empty")
	}
	return nil
}

// splitList splits a comma separated value and drops empty entries
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

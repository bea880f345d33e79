package web

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	ErrInvalidImagePath = errors.New("invalid image path")
	ErrImagePathEscape  = errors.New("image path escapes images directory")
)

// resolveImagePath maps the requested name onto a file below root.
// Names that are absolute or contain a ".." segment are rejected with
// ErrImagePathEscape, malformed names with ErrInvalidImagePath.
func resolveImagePath(root, name string) (string, error) {
	if name == "" || strings.ContainsAny(name, "\x00\\") {
		return "", ErrInvalidImagePath
	}
	if strings.HasPrefix(name, "/") || filepath.IsAbs(filepath.FromSlash(name)) || filepath.VolumeName(name) != "" {
		return "", ErrImagePathEscape
	}
	for _, segment := range strings.Split(name, "/") {
		switch segment {
		case "..":
			return "", ErrImagePathEscape
		case "":
			return "", ErrInvalidImagePath
		}
	}

	full := filepath.Join(root, filepath.FromSlash(name))
	rel, err := filepath.Rel(root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrImagePathEscape
	}
	return full, nil
}

// serveImage serves a file from the images directory
func (s *WebServer) serveImage(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("filepath"), "/")
	if name == "" {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	full, err := resolveImagePath(s.Config.ImagesDir, name)
	switch {
	case errors.Is(err, ErrImagePathEscape):
		log.Printf("[WEB]: Rejected image path %q from %s", name, c.ClientIP())
		c.AbortWithStatus(http.StatusForbidden)
		return
	case err != nil:
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.File(full)
}

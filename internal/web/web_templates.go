package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"os"
	"sync"
)

//go:embed templates/*.html
var embeddedTemplatesFS embed.FS

const baseTemplate = "base.html"

// pageTemplates lists every page template. Each one is parsed together with base.html.
var pageTemplates = []string{
	"home.html",
	"contact.html",
	"why_us.html",
	"rental.html",
	"product.html",
	"error.html",
}

// templateCache holds one parsed template set per page.
// With reload set, every lookup parses the page again from source.
type templateCache struct {
	mux    sync.RWMutex
	source fs.FS
	reload bool
	pages  map[string]*template.Template
}

// newTemplateCache loads templates from dir, or from the embedded copy when dir is empty
func newTemplateCache(dir string, reload bool) (*templateCache, error) {
	var source fs.FS
	if dir != "" {
		source = os.DirFS(dir)
		log.Printf("[WEB]: Loading templates from %s", dir)
	} else {
		sub, err := fs.Sub(embeddedTemplatesFS, "templates")
		if err != nil {
			return nil, err
		}
		source = sub
	}

	tc := &templateCache{
		source: source,
		reload: reload,
		pages:  make(map[string]*template.Template, len(pageTemplates)),
	}
	// Parse everything up front so broken templates fail at startup
	for _, page := range pageTemplates {
		tmpl, err := tc.parse(page)
		if err != nil {
			return nil, err
		}
		tc.pages[page] = tmpl
	}
	return tc, nil
}

func (tc *templateCache) parse(page string) (*template.Template, error) {
	tmpl, err := template.New(baseTemplate).ParseFS(tc.source, baseTemplate, page)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", page, err)
	}
	return tmpl, nil
}

// get returns the template set for page
func (tc *templateCache) get(page string) (*template.Template, error) {
	if tc.reload {
		tmpl, err := tc.parse(page)
		if err != nil {
			return nil, err
		}
		tc.mux.Lock()
		tc.pages[page] = tmpl
		tc.mux.Unlock()
		return tmpl, nil
	}

	tc.mux.RLock()
	tmpl, ok := tc.pages[page]
	tc.mux.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown template %s", page)
	}
	return tmpl, nil
}

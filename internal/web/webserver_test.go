package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-tendas/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupServer builds a server on the test router with an empty images directory
func setupServer(t *testing.T, mutate ...func(cfg *config.WebConfig)) *WebServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewDefaultConfig().Web
	cfg.ImagesDir = t.TempDir()
	for _, m := range mutate {
		m(cfg)
	}

	srv, err := NewServer(cfg)
	require.NoError(t, err)
	return srv
}

func doRequest(srv *WebServer, method, target string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)
	return w
}

func TestPageRoutes(t *testing.T) {
	srv := setupServer(t)

	testCases := []struct {
		path    string
		title   string
		heading string
	}{
		{path: "/", title: "Home", heading: "TENDAS DE MOZAMBIQUE"},
		{path: "/contact", title: "Contact", heading: "Request a Tent Quote"},
		{path: "/why-us", title: "Why Choose Us", heading: "Crafting Excellence in Every Stitch"},
		{path: "/rental", title: "Equipment Rental", heading: "Why Rent With Us"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			w := doRequest(srv, http.MethodGet, tc.path, nil, nil)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			body := w.Body.String()
			assert.Contains(t, body, "<title>"+tc.title+" | Tendas de Mozambique</title>")
			assert.Contains(t, body, tc.heading)
			assert.Contains(t, body, `<html lang="en">`)
		})
	}
}

func TestContactPageShowsContactDetails(t *testing.T) {
	srv := setupServer(t)
	w := doRequest(srv, http.MethodGet, "/contact", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ContactEmail)
	assert.Contains(t, w.Body.String(), ContactPhone)
	assert.Contains(t, w.Body.String(), `action="/api/contact"`)
}

func TestPageLanguage(t *testing.T) {
	srv := setupServer(t)

	t.Run("query selects portuguese and sets cookie", func(t *testing.T) {
		w := doRequest(srv, http.MethodGet, "/why-us?lang=pt", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<title>Porquê Escolher-nos | Tendas de Moçambique</title>")
		assert.Contains(t, w.Body.String(), `<html lang="pt">`)
		assert.Equal(t, "pt", w.Header().Get("Content-Language"))
		assert.Contains(t, w.Header().Get("Set-Cookie"), "lang=pt")
	})

	t.Run("cookie is honoured", func(t *testing.T) {
		w := doRequest(srv, http.MethodGet, "/rental", nil, map[string]string{"Cookie": "lang=pt"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<title>Aluguer de Equipamento | Tendas de Moçambique</title>")
		assert.Empty(t, w.Header().Get("Set-Cookie"))
	})

	t.Run("accept-language header", func(t *testing.T) {
		w := doRequest(srv, http.MethodGet, "/", nil, map[string]string{"Accept-Language": "pt-MZ,pt;q=0.9"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<title>Início | Tendas de Moçambique</title>")
	})

	t.Run("unsupported query keeps english and sets no cookie", func(t *testing.T) {
		w := doRequest(srv, http.MethodGet, "/?lang=de", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<title>Home | Tendas de Mozambique</title>")
		assert.Empty(t, w.Header().Get("Set-Cookie"))
	})
}

func TestProductPage(t *testing.T) {
	srv := setupServer(t)

	testCases := []struct {
		name   string
		target string
		want   string
	}{
		{name: "numeric", target: "/product/42", want: "Product 42"},
		{name: "slug", target: "/product/marquee-18x9", want: "Product marquee-18x9"},
		{name: "percent sign", target: "/product/100%25", want: "Product 100%"},
		{name: "format verbs", target: "/product/%25s%25d", want: "Product %s%d"},
		{name: "unicode", target: "/product/tenda-%C3%A7", want: "Product tenda-ç"},
		{name: "markup is escaped", target: "/product/%3Cscript%3E", want: "Product &lt;script&gt;"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(srv, http.MethodGet, tc.target, nil, nil)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "<title>"+tc.want+" | Tendas de Mozambique</title>")
			assert.NotContains(t, w.Body.String(), "<script>")
		})
	}
}

func TestHelloAPI(t *testing.T) {
	srv := setupServer(t)
	w := doRequest(srv, http.MethodGet, "/api/hello", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `{"message":"Hello from Python API!"}`, w.Body.String())
}

func TestContactAPI(t *testing.T) {
	srv := setupServer(t)
	const ack = `{"success": true, "message": "Contact form submitted successfully"}`

	testCases := []struct {
		name        string
		body        string
		contentType string
		wantCode    int
	}{
		{name: "empty body", body: "", wantCode: http.StatusOK},
		{name: "whitespace body", body: " \n", contentType: "application/json", wantCode: http.StatusOK},
		{name: "contact form", body: `{"name":"Ana","email":"ana@example.com","message":"Need a 5x5m tent"}`, contentType: "application/json", wantCode: http.StatusOK},
		{name: "empty object", body: `{}`, contentType: "application/json", wantCode: http.StatusOK},
		{name: "json array", body: `[1,2,3]`, contentType: "application/json", wantCode: http.StatusOK},
		{name: "json null", body: `null`, contentType: "application/json", wantCode: http.StatusOK},
		{name: "no content type", body: `{"name":"Ana"}`, wantCode: http.StatusOK},
		{name: "malformed json", body: `{"name":`, contentType: "application/json", wantCode: http.StatusBadRequest},
		{name: "not json at all", body: `name=Ana&email=ana@example.com`, contentType: "application/x-www-form-urlencoded", wantCode: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			headers := map[string]string{}
			if tc.contentType != "" {
				headers["Content-Type"] = tc.contentType
			}
			w := doRequest(srv, http.MethodPost, "/api/contact", strings.NewReader(tc.body), headers)

			assert.Equal(t, tc.wantCode, w.Code)
			if tc.wantCode == http.StatusOK {
				assert.JSONEq(t, ack, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"error"`)
			}
		})
	}
}

func TestContactAPIIsIdempotent(t *testing.T) {
	srv := setupServer(t)
	body := `{"name":"Ana"}`

	first := doRequest(srv, http.MethodPost, "/api/contact", strings.NewReader(body), nil)
	second := doRequest(srv, http.MethodPost, "/api/contact", strings.NewReader(body), nil)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestDefaultErrors(t *testing.T) {
	srv := setupServer(t)

	testCases := []struct {
		method string
		path   string
		want   int
	}{
		{method: http.MethodGet, path: "/nope", want: http.StatusNotFound},
		{method: http.MethodGet, path: "/api/nope", want: http.StatusNotFound},
		{method: http.MethodGet, path: "/api/contact", want: http.StatusMethodNotAllowed},
		{method: http.MethodPost, path: "/api/hello", want: http.StatusMethodNotAllowed},
		{method: http.MethodPost, path: "/contact", want: http.StatusMethodNotAllowed},
		{method: http.MethodDelete, path: "/product/1", want: http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := doRequest(srv, tc.method, tc.path, nil, nil)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestOperationalRoutes(t *testing.T) {
	srv := setupServer(t)

	w := doRequest(srv, http.MethodGet, "/ping", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	w = doRequest(srv, http.MethodGet, "/robots.txt", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User-agent: *\nDisallow:\n", w.Body.String())
}

func TestSecurityHeaders(t *testing.T) {
	srv := setupServer(t)
	w := doRequest(srv, http.MethodGet, "/", nil, nil)

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
}

func TestCORS(t *testing.T) {
	const origin = "http://localhost:5173"

	t.Run("disabled by default", func(t *testing.T) {
		srv := setupServer(t)
		w := doRequest(srv, http.MethodGet, "/api/hello", nil, map[string]string{"Origin": origin})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("configured origin", func(t *testing.T) {
		srv := setupServer(t, func(cfg *config.WebConfig) {
			cfg.CORSOrigins = []string{origin}
		})

		w := doRequest(srv, http.MethodOptions, "/api/contact", nil, map[string]string{
			"Origin":                        origin,
			"Access-Control-Request-Method": http.MethodPost,
		})
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"))

		w = doRequest(srv, http.MethodGet, "/api/hello", nil, map[string]string{"Origin": origin})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestEmbeddedStatic(t *testing.T) {
	srv := setupServer(t)

	w := doRequest(srv, http.MethodGet, "/static/css/site.css", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/css; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))

	for _, path := range []string{"/static/", "/static/css/", "/static/missing.css"} {
		w = doRequest(srv, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}

	files, err := ListEmbeddedFiles()
	require.NoError(t, err)
	assert.Contains(t, files, "static/css/site.css")
}

func TestNewServerRejectsBadProxies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewDefaultConfig().Web
	cfg.TrustedProxies = []string{"not-an-ip"}

	_, err := NewServer(cfg)
	assert.Error(t, err)
}

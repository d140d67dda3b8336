package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webflow-forms-backend/internal/shared"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	return r
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	r := newEngine(RequestID())

	var fromGin, fromCtx string
	r.GET("/", func(c *gin.Context) {
		fromGin = c.GetString(shared.GinKeyRequestID)
		fromCtx = shared.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(fromGin)
	require.NoError(t, err)
	assert.Equal(t, fromGin, fromCtx)
	assert.Equal(t, fromGin, w.Header().Get(shared.HeaderRequestID))
}

func TestRequestID_KeepsIncoming(t *testing.T) {
	r := newEngine(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(shared.HeaderRequestID, "edge-abc123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "edge-abc123", w.Header().Get(shared.HeaderRequestID))
}

func TestClientIPMiddleware(t *testing.T) {
	r := newEngine(ClientIPMiddleware())

	var fromGin, fromCtx string
	r.GET("/", func(c *gin.Context) {
		fromGin = c.GetString(shared.GinKeyClientIP)
		fromCtx = GetClientIPFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "203.0.113.7", fromGin)
	assert.Equal(t, "203.0.113.7", fromCtx)
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		origins    []string
		origin     string
		method     string
		wantStatus int
		wantACAO   string
	}{
		{"wildcard", []string{"*"}, "https://site.webflow.io", http.MethodGet, http.StatusOK, "*"},
		{"listed origin", []string{"https://site.webflow.io/"}, "https://site.webflow.io", http.MethodGet, http.StatusOK, "https://site.webflow.io"},
		{"unlisted origin", []string{"https://site.webflow.io"}, "https://evil.example", http.MethodGet, http.StatusOK, ""},
		{"preflight", []string{"*"}, "https://site.webflow.io", http.MethodOptions, http.StatusNoContent, "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(CORS(tt.origins))
			r.GET("/api/guestbook/count", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/api/guestbook/count", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantACAO, w.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantACAO != "" {
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	r := newEngine(RequestID(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":{"code":"INTERNAL_SERVER_ERROR","message":"Internal server error"}}`, w.Body.String())
}

func TestLogger_PassesThrough(t *testing.T) {
	r := newEngine(RequestID(), Logger())
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

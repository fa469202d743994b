package middleware

import (
	"MoodMastery/internal/pkg/logger"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTraceMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceMiddleware())
	var seen string
	r.GET("/x", func(c *gin.Context) {
		seen = logger.TraceID(c.Request.Context())
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(TraceHeader, "abc-123")
	r.ServeHTTP(w, req)
	if seen != "abc-123" || w.Header().Get(TraceHeader) != "abc-123" {
		t.Errorf("trace id = %q / %q, want abc-123", seen, w.Header().Get(TraceHeader))
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(TraceHeader, strings.Repeat("a", 100))
	r.ServeHTTP(w, req)
	if len(seen) != 36 {
		t.Errorf("oversized trace id was not replaced: %q", seen)
	}
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.example"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://app.example")
	r.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "https://app.example" {
		t.Error("allowed origin not echoed")
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	r.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("unknown origin was allowed")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/x", nil))
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d", w.Code)
	}
}

func TestRedact(t *testing.T) {
	if got := redactQuery("password=hunter2&mode=bar"); strings.Contains(got, "hunter2") || !strings.Contains(got, "mode=bar") {
		t.Errorf("redactQuery() = %q", got)
	}
	if got := redactBody([]byte(`{"password":"hunter2"}`)); strings.Contains(got, "hunter2") {
		t.Errorf("redactBody() = %q", got)
	}
	if got := redactBody([]byte(`{"title":"x"}`)); got != `{"title":"x"}` {
		t.Errorf("redactBody() changed a clean body: %q", got)
	}
	if got := redactBody([]byte("not json")); got != "not json" {
		t.Errorf("redactBody(non json) = %q", got)
	}
}

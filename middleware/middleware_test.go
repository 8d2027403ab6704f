package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"Chirp/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinZap(), PrometheusMiddleware())
	r.GET("/ping/:id", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(response.RequestIDKey))
	})
	return r
}

func TestGinZapRequestID(t *testing.T) {
	r := newEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping/1", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	r.ServeHTTP(w, req)

	if got := w.Header().Get(HeaderRequestID); got != "abc-123" {
		t.Fatalf("expected request id echoed, got %q", got)
	}
	if w.Body.String() != "abc-123" {
		t.Fatalf("request id not stored on context: %q", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/2", nil))
	if got := w.Header().Get(HeaderRequestID); len(got) != 36 {
		t.Fatalf("expected generated uuid, got %q", got)
	}
}

func TestPrometheusUsesRouteTemplate(t *testing.T) {
	r := newEngine()
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/ping/:id", "200"))

	for _, p := range []string{"/ping/1", "/ping/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/ping/:id", "200"))
	if after-before != 2 {
		t.Fatalf("expected 2 requests counted, got %v", after-before)
	}
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/monthvault/pkg/configs"
	ctxPkg "github.com/yeisme/monthvault/pkg/context"
	"github.com/yeisme/monthvault/pkg/middleware"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, ctxPkg.GetRequestID(c.Request.Context()))
	})

	return r
}

func get(r http.Handler, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestRequestIDMiddleware(t *testing.T) {
	r := newEngine(middleware.RequestIDMiddleware())

	w := get(r, nil)
	id := w.Header().Get(middleware.RequestIDHeader)

	if len(id) != 26 {
		t.Errorf("expected ULID request id, got %q", id)
	}

	if w.Body.String() != id {
		t.Errorf("expected request id in context, got %q", w.Body.String())
	}

	if next := get(r, nil).Header().Get(middleware.RequestIDHeader); next == id {
		t.Error("expected a fresh id per request")
	}
}

func TestRequestIDMiddleware_Incoming(t *testing.T) {
	r := newEngine(middleware.RequestIDMiddleware())

	w := get(r, map[string]string{middleware.RequestIDHeader: "client-id-1"})
	if got := w.Header().Get(middleware.RequestIDHeader); got != "client-id-1" {
		t.Errorf("expected incoming id to be kept, got %q", got)
	}

	long := strings.Repeat("x", 65)

	w = get(r, map[string]string{middleware.RequestIDHeader: long})
	if got := w.Header().Get(middleware.RequestIDHeader); got == long || len(got) != 26 {
		t.Errorf("expected oversized id to be replaced, got %q", got)
	}
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	r := newEngine(middleware.RateLimitMiddleware(configs.RateLimitConfig{Enabled: false, RPS: 1, Burst: 1}))

	for i := 0; i < 5; i++ {
		if w := get(r, nil); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestRateLimitMiddleware_Global(t *testing.T) {
	r := newEngine(middleware.RateLimitMiddleware(configs.RateLimitConfig{
		Enabled: true, RPS: 0.001, Burst: 1, Key: "global",
	}))

	if w := get(r, nil); w.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", w.Code)
	}

	if w := get(r, nil); w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
}

func TestRateLimitMiddleware_ByHeader(t *testing.T) {
	r := newEngine(middleware.RateLimitMiddleware(configs.RateLimitConfig{
		Enabled: true, RPS: 0.001, Burst: 1, Key: "header:X-Client",
	}))

	if w := get(r, map[string]string{"X-Client": "a"}); w.Code != http.StatusOK {
		t.Fatalf("expected client a to pass, got %d", w.Code)
	}

	if w := get(r, map[string]string{"X-Client": "b"}); w.Code != http.StatusOK {
		t.Errorf("expected client b to have its own bucket, got %d", w.Code)
	}

	if w := get(r, map[string]string{"X-Client": "a"}); w.Code != http.StatusTooManyRequests {
		t.Errorf("expected client a to be limited, got %d", w.Code)
	}
}

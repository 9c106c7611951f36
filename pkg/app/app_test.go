package app_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/yeisme/monthvault/pkg/app"
	"github.com/yeisme/monthvault/pkg/configs"
	"github.com/yeisme/monthvault/pkg/internal/storage"
	"github.com/yeisme/monthvault/pkg/middleware"
	"github.com/yeisme/monthvault/pkg/queue"
)

func newManager(t *testing.T, cacheEnabled bool) (*configs.AppConfig, *storage.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mfs := afero.NewMemMapFs()
	if err := afero.WriteFile(mfs, "data/may/mermay.txt", []byte("May 1 - Mermaid\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := &configs.AppConfig{
		Server: configs.ServerConfig{Host: "127.0.0.1", Port: 8080, Timeout: 30},
		Data:   configs.DataConfig{BasePath: "data", DefaultMonth: "may"},
		Cache:  configs.CacheConfig{Enabled: cacheEnabled, TTL: time.Minute},
		KV:     configs.KVConfig{Type: "memory"},
	}

	mgr, err := storage.New(context.Background(), cfg, mfs)
	if err != nil {
		t.Fatalf("storage.New failed: %v", err)
	}

	t.Cleanup(func() { _ = mgr.Close() })

	return cfg, mgr
}

func TestNewEngine_LoadMonth(t *testing.T) {
	cfg, mgr := newManager(t, false)
	e := app.NewEngine(cfg, mgr, nil)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/load_month", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if w.Body.String() != `{"success":true,"mermay.txt":["May 1 - Mermaid"]}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}

	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected request id header")
	}
}

func TestNewEngine_ResponseCache(t *testing.T) {
	cfg, mgr := newManager(t, true)
	e := app.NewEngine(cfg, mgr, nil)

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/load_month?month=may", nil))

	if first.Header().Get("X-Cache") != "MISS" {
		t.Errorf("expected MISS, got %q", first.Header().Get("X-Cache"))
	}

	// 缓存生效后，目录变化在 TTL 内不可见
	_ = afero.WriteFile(mgr.GetDataFS(), "data/may/new.txt", []byte("x"), 0o644)

	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/load_month?month=may", nil))

	if second.Header().Get("X-Cache") != "HIT" {
		t.Errorf("expected HIT, got %q", second.Header().Get("X-Cache"))
	}

	if second.Body.String() != first.Body.String() {
		t.Errorf("expected cached body %s, got %s", first.Body.String(), second.Body.String())
	}

	etag := second.Header().Get("ETag")
	req := httptest.NewRequest(http.MethodGet, "/load_month?month=may", nil)
	req.Header.Set("If-None-Match", etag)

	third := httptest.NewRecorder()
	e.ServeHTTP(third, req)

	if third.Code != http.StatusNotModified {
		t.Errorf("expected 304, got %d", third.Code)
	}

	bypass := httptest.NewRequest(http.MethodGet, "/load_month?month=may", nil)
	bypass.Header.Set("X-Cache-Bypass", "1")

	fourth := httptest.NewRecorder()
	e.ServeHTTP(fourth, bypass)

	if fourth.Header().Get("X-Cache") != "" || fourth.Body.String() == first.Body.String() {
		t.Errorf("expected bypass to read the directory, got %s", fourth.Body.String())
	}
}

// TestAuditHandler 测试月份事件被写成审计日志.
func TestAuditHandler(t *testing.T) {
	var buf bytes.Buffer

	logger := zerolog.New(&buf)

	msg, err := queue.NewWatermillMessage(queue.TopicMonthLoaded, queue.MonthLoadedPayload{
		Month: "june", Error: "Month directory not found: data/june",
	}, queue.WithTraceID("req-9"))
	if err != nil {
		t.Fatalf("NewWatermillMessage: %v", err)
	}

	if err := app.AuditHandler(&logger)(msg); err != nil {
		t.Fatalf("AuditHandler returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"level":"warn"`, `"month":"june"`, `"request_id":"req-9"`, "month audit"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %s in %q", want, out)
		}
	}

	buf.Reset()

	bad := message.NewMessage("bad-1", []byte("not json"))
	if err := app.AuditHandler(&logger)(bad); err != nil {
		t.Errorf("Expected malformed message to be dropped, got %v", err)
	}

	if !strings.Contains(buf.String(), "drop malformed month event") {
		t.Errorf("Expected drop log, got %q", buf.String())
	}
}

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/monthvault/pkg/configs"
	"github.com/yeisme/monthvault/pkg/metrics"
)

func TestStartMetricsServer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := configs.MetricsConfig{Enabled: true, Path: "/metrics"}
	if err := metrics.InitMetrics(cfg); err != nil {
		t.Fatalf("InitMetrics failed: %v", err)
	}

	metrics.ObserveMonthLoad("may", metrics.OutcomeOK, 2)

	r := gin.New()
	metrics.StartMetricsServer(cfg, r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if !strings.Contains(w.Body.String(), "monthvault_month_loads_total") {
		t.Errorf("expected month load metric in output")
	}
}

func TestStartMetricsServer_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	metrics.StartMetricsServer(configs.MetricsConfig{Enabled: false}, r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 when disabled, got %d", w.Code)
	}
}

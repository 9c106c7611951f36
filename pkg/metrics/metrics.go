// Package metrics 提供监控指标功能.
// 支持Prometheus标准，收集 HTTP 请求指标和月份加载指标.
//
// Example:
//
//	import "github.com/yeisme/monthvault/pkg/metrics"
//
//	err := metrics.InitMetrics(config.Metrics)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// 记录指标
//	metrics.RequestCounter.WithLabelValues("GET", "/load_month").Inc()
//	metrics.ObserveMonthLoad("may", metrics.OutcomeOK, 3)
package metrics

import (
	"net/http"
	_ "net/http/pprof" // 自动注册pprof端点
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yeisme/monthvault/pkg/configs"
)

// 月份加载结果标签.
const (
	OutcomeOK         = "ok"
	OutcomeBaseMiss   = "base_missing"
	OutcomeMonthMiss  = "month_missing"
	OutcomePermission = "permission_denied"
	OutcomeUnexpected = "unexpected"
)

// 全局指标变量.
var (
	// RequestCounter HTTP请求计数器.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration HTTP请求持续时间.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// MonthLoads 月份加载次数，按结果分类.
	MonthLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "monthvault_month_loads_total",
			Help: "Total number of month directory loads by outcome",
		},
		[]string{"month", "outcome"},
	)

	// FilesRead 成功读取的文件数.
	FilesRead = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "monthvault_files_read_total",
			Help: "Total number of month files read",
		},
	)

	// AvailableMonths base path 下的月份目录数.
	AvailableMonths = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "monthvault_available_months",
			Help: "Number of month directories under the base path",
		},
	)

	// registry Prometheus注册表.
	registry = prometheus.NewRegistry()

	registerOnce sync.Once
)

// InitMetrics 初始化Metrics. 未启用时指标仍可记录，只是不会被暴露.
func InitMetrics(config configs.MetricsConfig) error {
	if !config.Enabled {
		return nil
	}

	var err error

	registerOnce.Do(func() {
		// 注册标准收集器
		if config.RuntimeMetrics {
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
		}

		for _, c := range []prometheus.Collector{RequestCounter, RequestDuration, MonthLoads, FilesRead, AvailableMonths} {
			if e := registry.Register(c); e != nil {
				err = e
				return
			}
		}
	})

	return err
}

// StartMetricsServer 在 engine 上挂载 Metrics 端点，未启用时不注册任何路由.
func StartMetricsServer(config configs.MetricsConfig, debugEngine *gin.Engine) {
	if !config.Enabled {
		return
	}

	path := config.Path
	if path == "" {
		path = "/metrics"
	}

	debugEngine.GET(path, gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// 如果启用pprof，注册pprof端点
	if config.Pprof {
		debugEngine.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}
}

// ObserveMonthLoad 记录一次月份加载.
func ObserveMonthLoad(month, outcome string, files int) {
	MonthLoads.WithLabelValues(month, outcome).Inc()
	FilesRead.Add(float64(files))
}

// GetRegistry 获取Prometheus注册表.
func GetRegistry() *prometheus.Registry {
	return registry
}

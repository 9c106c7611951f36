// Package configs 管理应用程序配置，包括Metrics的配置信息.
// Metrics配置支持Prometheus监控系统.
//
// Example:
//
//	config := configs.GetConfig()
//	metricsConfig := config.Metrics
//	if metricsConfig.Enabled {
//		// 初始化Metrics
//	}
package configs

import (
	"time"

	"github.com/spf13/viper"
)

// MetricsConfig Metrics相关配置.
type MetricsConfig struct {
	Enabled           bool              `mapstructure:"enabled"`            // 是否启用Metrics
	ServiceName       string            `mapstructure:"service_name"`       // 服务名称
	Path              string            `mapstructure:"path"`               // 指标暴露路径
	RuntimeMetrics    bool              `mapstructure:"runtime_metrics"`    // 是否收集运行时指标
	Pprof             bool              `mapstructure:"pprof"`              // 是否注册 pprof 端点
	InventoryInterval time.Duration     `mapstructure:"inventory_interval"` // 月份清单刷新间隔
	Labels            map[string]string `mapstructure:"labels"`             // 默认标签
}

// setDefaults 设置Metrics配置的默认值.
func (c *MetricsConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.service_name", "monthvault")
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.runtime_metrics", true)
	v.SetDefault("metrics.pprof", false)
	v.SetDefault("metrics.inventory_interval", "5m")
	v.SetDefault("metrics.labels", map[string]string{
		"service": "monthvault",
	})
}

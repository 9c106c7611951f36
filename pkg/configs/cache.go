package configs

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultCacheEnabled = false
	DefaultCacheTTL     = 30 * time.Second
)

// CacheConfig 响应缓存配置，缓存后端由 KVConfig 决定.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

func (c *CacheConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("cache.enabled", DefaultCacheEnabled)
	v.SetDefault("cache.ttl", DefaultCacheTTL)
}

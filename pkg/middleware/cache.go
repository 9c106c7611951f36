package middleware

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"

	appcache "github.com/yeisme/monthvault/pkg/cache"
	"github.com/yeisme/monthvault/pkg/log"
)

const (
	DefaultMaxBodyBytes = 1 << 20 // 1MB
	defaultTTL          = 30 * time.Second
	cacheBypassHeader   = "X-Cache-Bypass"
	cacheStatusHeader   = "X-Cache"
)

// CacheConfig 缓存中间件配置.
type CacheConfig struct {
	Cache        *appcache.Cache // 必须: 业务注入的 Cache 实例
	TTL          time.Duration   // 缓存时间
	MaxBodyBytes int             // 缓存响应体最大字节 (0=不限制)
}

// DefaultCacheConfig 返回一份默认配置.
func DefaultCacheConfig(c *appcache.Cache, ttl time.Duration) CacheConfig {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return CacheConfig{Cache: c, TTL: ttl, MaxBodyBytes: DefaultMaxBodyBytes}
}

// responseCacheEntry 序列化存储结构.
type responseCacheEntry struct {
	Status      int    `json:"s"`
	ContentType string `json:"c,omitempty"`
	Body        []byte `json:"b,omitempty"`
	ETag        string `json:"e"`
	StoredAt    int64  `json:"t"` // unix nano, 用于 Age
}

// CacheMiddleware 缓存 GET/HEAD 的 200 响应. 月份目录在 TTL 内的变化不会被看到.
//
// 命中时返回 X-Cache: HIT 与 ETag，支持 If-None-Match 返回 304；
// 请求头带 X-Cache-Bypass 时跳过缓存. 缓存读写失败不影响主流程.
//
// 使用示例:
//
//	c := cache.NewCache(kvStore, cache.WithPrefix("resp:"))
//	router.GET("/load_month", middleware.CacheMiddleware(middleware.DefaultCacheConfig(c, ttl)), handler)
func CacheMiddleware(cfg CacheConfig) gin.HandlerFunc {
	if cfg.Cache == nil {
		panic("CacheMiddleware: Cache cannot be nil")
	}

	return func(c *gin.Context) {
		if shouldBypass(c) {
			c.Next()
			return
		}

		key := cacheKey(c)
		if serveFromCache(c, cfg, key) {
			return
		}

		c.Header(cacheStatusHeader, "MISS")

		bw := &bodyCaptureWriter{ResponseWriter: c.Writer, max: cfg.MaxBodyBytes}
		c.Writer = bw
		c.Next()

		store(c, cfg, key, bw)
	}
}

// cacheKey 方法 + 路由 + 路径参数 + 排序后的 query，经 xxhash 压缩.
func cacheKey(c *gin.Context) string {
	var b strings.Builder

	b.WriteString(c.Request.Method)
	b.WriteByte(':')

	full := c.FullPath()
	if full == "" {
		full = c.Request.URL.Path
	}

	b.WriteString(full)

	for _, p := range c.Params {
		b.WriteByte('|')
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(strings.ToLower(p.Value))
	}

	if q := c.Request.URL.Query(); len(q) > 0 {
		keys := make([]string, 0, len(q))
		for k := range q {
			keys = append(keys, k)
		}

		sort.Strings(keys)
		b.WriteByte('?')

		for i, k := range keys {
			if i > 0 {
				b.WriteByte('&')
			}

			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(strings.Join(q[k], ","))
		}
	}

	return fmt.Sprintf("rc:%x", xxhash.Sum64String(b.String()))
}

// bodyCaptureWriter 包装响应写入用于捕获 body.
type bodyCaptureWriter struct {
	gin.ResponseWriter

	buf       bytes.Buffer
	max       int
	truncated bool
}

// Write 捕获响应体, 超过最大字节数后不再捕获.
func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	if !w.truncated {
		if w.max > 0 && w.buf.Len()+len(b) > w.max {
			w.truncated = true
			w.buf.Reset()
		} else {
			w.buf.Write(b)
		}
	}

	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

func shouldBypass(c *gin.Context) bool {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		return true
	}

	return c.GetHeader(cacheBypassHeader) != ""
}

// serveFromCache 尝试从缓存提供响应; 成功返回 true.
func serveFromCache(c *gin.Context, cfg CacheConfig, key string) bool {
	entry, err := appcache.Get[responseCacheEntry](c.Request.Context(), cfg.Cache, key)
	if err != nil {
		return false
	}

	h := c.Writer.Header()
	h.Set("ETag", entry.ETag)
	h.Set("Age", fmt.Sprintf("%.0f", time.Since(time.Unix(0, entry.StoredAt)).Seconds()))
	h.Set(cacheStatusHeader, "HIT")

	if c.GetHeader("If-None-Match") == entry.ETag {
		c.AbortWithStatus(http.StatusNotModified)
		return true
	}

	if entry.ContentType != "" {
		h.Set("Content-Type", entry.ContentType)
	}

	c.Status(entry.Status)

	if c.Request.Method != http.MethodHead {
		_, _ = c.Writer.Write(entry.Body)
	}

	c.Abort()

	return true
}

// store 缓存 200 响应. 请求结束后仍需写入，因此不继承请求的取消信号.
func store(c *gin.Context, cfg CacheConfig, key string, bw *bodyCaptureWriter) {
	status := c.Writer.Status()
	if status != http.StatusOK || bw.truncated || c.IsAborted() || cfg.TTL <= 0 {
		return
	}

	body := bytes.Clone(bw.buf.Bytes())
	entry := responseCacheEntry{
		Status:      status,
		ContentType: c.Writer.Header().Get("Content-Type"),
		Body:        body,
		ETag:        fmt.Sprintf("\"%x\"", xxhash.Sum64(body)),
		StoredAt:    time.Now().UnixNano(),
	}

	ctx := context.WithoutCancel(c.Request.Context())
	if err := appcache.Set(ctx, cfg.Cache, key, entry, cfg.TTL); err != nil {
		log.Logger().Warn().Err(err).Str("key", key).Msg("response cache store failed")
	}
}

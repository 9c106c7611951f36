// Package cache 提供基于键值存储的泛型缓存实现，月份响应缓存构建在它之上.
//
// 该包提供了类型安全的缓存操作，支持任意类型的缓存值.
// 底层使用 sonic 做 JSON 序列化/反序列化，支持TTL（生存时间）设置.
//
// 基本用法:
//
//	c := cache.NewCache(kvStore, cache.WithPrefix("mv:"))
//
//	err := cache.Set(ctx, c, "month:may", resp, time.Minute)
//	cached, err := cache.Get[types.MonthResponse](ctx, c, "month:may")
//
//	resp, err := cache.GetOrSet(ctx, c, "month:may", func() (types.MonthResponse, error) {
//	    return load("may")
//	}, time.Minute)
//
// 线程安全取决于底层的KV存储实现，内置的 memory/redis/nats/groupcache 均为并发安全.
// 缓存未命中不会被视为错误以外的情况，调用方按 error 判断是否回源.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/yeisme/monthvault/pkg/internal/storage/kv"
)

// Cache 基于KV存储的缓存实现.
type Cache struct {
	kvStore kv.KVStore
	prefix  string
}

// Option 配置 Cache.
type Option func(*Cache)

// WithPrefix 为所有键加上命名空间前缀.
func WithPrefix(prefix string) Option {
	return func(c *Cache) { c.prefix = prefix }
}

// NewCache 创建一个新的缓存实例.
func NewCache(kvStore kv.KVStore, opts ...Option) *Cache {
	c := &Cache{
		kvStore: kvStore,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Cache) key(k string) string {
	return c.prefix + k
}

// Get 泛型获取缓存值.
func Get[T any](ctx context.Context, c *Cache, key string) (T, error) {
	var zero T

	data, err := c.kvStore.Get(ctx, c.key(key))
	if err != nil {
		return zero, err
	}

	var value T
	if err := sonic.Unmarshal(data, &value); err != nil {
		return zero, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return value, nil
}

// Set 泛型设置缓存值.
func Set[T any](ctx context.Context, c *Cache, key string, value T, ttl time.Duration) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	return c.kvStore.Set(ctx, c.key(key), data, ttl)
}

// Delete 删除缓存键.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.kvStore.Delete(ctx, c.key(key))
}

// Exists 检查缓存键是否存在.
func (c *Cache) Exists(ctx context.Context, key string) (bool, error) {
	return c.kvStore.Exists(ctx, c.key(key))
}

// GetOrSet 获取缓存值，如果不存在则设置.
func GetOrSet[T any](ctx context.Context, c *Cache, key string, getter func() (T, error), ttl time.Duration) (T, error) {
	var zero T

	// 尝试获取
	if value, err := Get[T](ctx, c, key); err == nil {
		return value, nil
	}

	// 获取新值
	value, err := getter()
	if err != nil {
		return zero, err
	}

	// 缓存失败不影响返回值
	_ = Set(ctx, c, key, value, ttl)

	return value, nil
}

// Clear 清空当前前缀下的缓存（如果支持）.
func (c *Cache) Clear(ctx context.Context) error {
	keys, err := c.kvStore.Keys(ctx, c.prefix+"*")
	if err != nil {
		return err
	}

	for _, key := range keys {
		// 部分KV存储可能不支持删除所有键
		if delErr := c.kvStore.Delete(ctx, key); delErr != nil {
			return delErr
		}
	}

	return nil
}

// Package storage 聚合服务依赖的资源: 只读的月份数据文件系统、可选的 KV 缓存与事件总线.
//
// Example:
//
// 初始化
//
//	ctx := context.Background()
//	mgr, err := storage.Init(ctx)
//	if err != nil {
//	    // 处理错误
//	}
//	defer mgr.Close()
//
// 获取存储资源
//
//	dataFS := mgr.GetDataFS()
//	kvClient := mgr.GetKVClient() // 未启用缓存时为 nil
//	events := mgr.GetEventsClient() // 未启用事件时为 nil
package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"

	"github.com/yeisme/monthvault/pkg/configs"
	"github.com/yeisme/monthvault/pkg/internal/mq"
	kvc "github.com/yeisme/monthvault/pkg/internal/storage/kv"
	nlog "github.com/yeisme/monthvault/pkg/log"
	"github.com/yeisme/monthvault/pkg/metrics"
)

// Manager 聚合所有存储资源.
type Manager struct {
	// Data 月份数据所在的文件系统，路径相对于进程工作目录.
	Data afero.Fs
	// DataConfig 数据目录配置.
	DataConfig configs.DataConfig
	// KV 响应缓存后端，cache.enabled 为 false 时为 nil.
	KV *kvc.Client
	// Events 月份加载事件总线，events.enabled 为 false 时为 nil.
	Events *mq.Client
}

var (
	mgr     *Manager
	mgrOnce sync.Once
)

// Init 初始化默认存储，使用全局配置.重复调用只返回已初始化实例.
func Init(ctx context.Context) (*Manager, error) {
	var err error

	mgrOnce.Do(func() {
		var m *Manager

		m, err = New(ctx, configs.GetConfig(), afero.NewReadOnlyFs(afero.NewOsFs()))
		if err != nil {
			return
		}

		mgr = m

		nlog.Logger().Info().
			Str("base_path", m.DataConfig.BasePath).
			Bool("kv", m.KV != nil).
			Bool("events", m.Events != nil).
			Msg("storage manager initialized")
	})

	return mgr, err
}

// New 使用给定配置与文件系统创建 Manager，不影响全局实例.
func New(ctx context.Context, cfg *configs.AppConfig, dataFS afero.Fs) (*Manager, error) {
	m := &Manager{
		Data:       dataFS,
		DataConfig: cfg.Data,
	}

	if cfg.Cache.Enabled {
		kvi, err := kvc.NewKVClient(ctx, &cfg.KV)
		if err != nil {
			return nil, fmt.Errorf("init kv %s: %w", cfg.KV.GetKVType(), err)
		}

		m.KV = kvi
	}

	if cfg.Events.Enabled {
		var reg prometheus.Registerer
		if cfg.Metrics.Enabled {
			reg = metrics.GetRegistry()
		}

		ev, err := mq.New(ctx, &cfg.Events, reg)
		if err != nil {
			_ = m.Close()
			return nil, fmt.Errorf("init events %s: %w", cfg.Events.GetEventsType(), err)
		}

		m.Events = ev
	}

	return m, nil
}

// GetDataFS 获取数据文件系统.
func (m *Manager) GetDataFS() afero.Fs {
	return m.Data
}

// GetKVClient 获取 KV 客户端.
func (m *Manager) GetKVClient() *kvc.Client {
	return m.KV
}

// GetEventsClient 获取事件客户端.
func (m *Manager) GetEventsClient() *mq.Client {
	return m.Events
}

// Close 释放存储连接.
func (m *Manager) Close() error {
	var errs []error

	if m.KV != nil {
		errs = append(errs, m.KV.Close())
	}

	if m.Events != nil {
		errs = append(errs, m.Events.Close())
	}

	return errors.Join(errs...)
}

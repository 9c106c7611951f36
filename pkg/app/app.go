// Package app 提供应用程序的初始化、HTTP 服务与 CGI 模式.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yeisme/monthvault/pkg/api"
	"github.com/yeisme/monthvault/pkg/cache"
	"github.com/yeisme/monthvault/pkg/configs"
	"github.com/yeisme/monthvault/pkg/internal/jobs"
	"github.com/yeisme/monthvault/pkg/internal/storage"
	"github.com/yeisme/monthvault/pkg/log"
	"github.com/yeisme/monthvault/pkg/metrics"
	"github.com/yeisme/monthvault/pkg/middleware"
	"github.com/yeisme/monthvault/pkg/scheduler"
	"github.com/yeisme/monthvault/pkg/tracing"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Engine *gin.Engine

	config  *configs.AppConfig
	manager *storage.Manager
	sched   *scheduler.Scheduler
}

// NewApp 按全局配置初始化追踪、监控、存储与调度器，并构建 gin 引擎.
func NewApp(ctx context.Context) (*App, error) {
	config := configs.GetConfig()

	// 初始化追踪
	if err := tracing.InitTracer(config.Tracing); err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	// 初始化监控
	if err := metrics.InitMetrics(config.Metrics); err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	manager, err := storage.Init(ctx)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	sched, err := scheduler.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("init scheduler: %w", err)
	}

	if err := jobs.RegisterJobs(sched, manager, config.Metrics.InventoryInterval); err != nil {
		return nil, fmt.Errorf("register jobs: %w", err)
	}

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	return &App{
		Engine:  NewEngine(config, manager, sched),
		config:  config,
		manager: manager,
		sched:   sched,
	}, nil
}

// NewEngine 构建挂载全部中间件与路由的 gin 引擎. sched 可为 nil.
func NewEngine(config *configs.AppConfig, manager *storage.Manager, sched *scheduler.Scheduler) *gin.Engine {
	engine := gin.New()

	engine.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.GinLoggerMiddleware(),
		middleware.CORSMiddleware(config.Server),
	)

	if config.Server.Gzip {
		engine.Use(gzip.Gzip(gzip.DefaultCompression))
	}

	engine.Use(
		middleware.TracingMiddleware(),
		middleware.PrometheusMiddleware(),
		middleware.RateLimitMiddleware(config.RateLimit),
		middleware.CircuitBreakerMiddleware(config.CircuitBreaker),
		middleware.StorageMiddleware(manager),
	)

	if sched != nil {
		engine.Use(middleware.SchedulerMiddleware(sched))
	}

	var cached gin.HandlerFunc
	if kvc := manager.GetKVClient(); kvc != nil {
		c := cache.NewCache(kvc, cache.WithPrefix("resp:"))
		cached = middleware.CacheMiddleware(middleware.DefaultCacheConfig(c, config.Cache.TTL))
	}

	api.RegisterGroup(engine, config, cached)

	metrics.StartMetricsServer(config.Metrics, engine)

	return engine
}

// Run 启动 HTTP 服务与调度器，ctx 取消后优雅退出.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.config.Server.Addr(),
		Handler:           a.Engine,
		ReadHeaderTimeout: a.config.Server.GetTimeoutDuration(),
		WriteTimeout:      a.config.Server.GetTimeoutDuration(),
	}

	l := log.Logger()
	g, gctx := errgroup.WithContext(ctx)

	a.sched.Start()

	if ev := a.manager.GetEventsClient(); ev != nil && a.config.Events.Audit {
		g.Go(func() error {
			l.Info().Str("type", string(ev.Type())).Msg("month audit consumer started")
			return runAudit(gctx, ev, l)
		})
	}

	g.Go(func() error {
		l.Info().Str("addr", srv.Addr).Str("base_path", a.config.Data.BasePath).Msg("HTTP server listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", srv.Addr, err)
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		l.Info().Msg("shutting down")

		return errors.Join(
			srv.Shutdown(shutdownCtx),
			a.sched.Shutdown(),
			tracing.ShutdownTracer(shutdownCtx),
			a.manager.Close(),
		)
	})

	return g.Wait()
}

// Package api 汇总 HTTP 接口，将各组路由注册到 gin 引擎.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/monthvault/pkg/configs"
	"github.com/yeisme/monthvault/pkg/internal/router"
)

// RegisterGroup 注册全部路由. cached 为月份读取路由的缓存中间件，可为 nil.
func RegisterGroup(e *gin.Engine, cfg *configs.AppConfig, cached gin.HandlerFunc) *gin.Engine {
	router.RegisterMonthRoutes(e, cached)
	router.RegisterHealthCheckRoute(&e.RouterGroup)
	router.RegisterSchedulerRoutes(&e.RouterGroup)
	router.RegisterSwaggerRoute(e, cfg)

	return e
}

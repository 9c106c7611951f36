// Package router 管理路由配置，将路径与 pkg/internal/handle 中的处理器绑定到 gin 引擎.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/monthvault/pkg/internal/handle"
)

// RegisterMonthRoutes 注册月份加载与查询路由.
//
//	GET  /                      -> 重定向到今天的按日查询
//	GET  /load_month            -> 加载月份目录
//	POST /load_month            -> 同上，month 取自表单
//	GET  /api/v1/months         -> 月份列表
//	GET  /api/v1/months/:month  -> 加载月份目录
//	GET  /api/v1/search         -> 按日查询
//
// cached 会套在读取月份目录的路由上，为 nil 时不缓存.
func RegisterMonthRoutes(r *gin.Engine, cached gin.HandlerFunc) {
	wrap := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if cached == nil {
			return []gin.HandlerFunc{h}
		}

		return []gin.HandlerFunc{cached, h}
	}

	r.GET("/", handle.RedirectToday)
	r.GET("/load_month", wrap(handle.LoadMonth)...)
	r.POST("/load_month", handle.LoadMonth)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/months", handle.ListMonths)
		v1.GET("/months/:month", wrap(handle.LoadMonthByPath)...)
		v1.GET("/search", handle.SearchDay)
	}
}

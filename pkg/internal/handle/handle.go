// Package handle 提供请求处理器的实现，用于处理HTTP请求.
package handle

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/monthvault/pkg/internal/service"
)

// now 当前时间，测试中可替换.
var now = time.Now

func monthService(c *gin.Context) *service.MonthService {
	return service.NewMonthService(c.Request.Context())
}

// badRequest 返回与月份加载响应同形的 400 错误.
func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}

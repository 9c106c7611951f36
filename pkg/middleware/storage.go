package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/monthvault/pkg/context"
	"github.com/yeisme/monthvault/pkg/internal/storage"
)

// StorageMiddleware 将存储 Manager 注入请求上下文，服务层据此取得数据文件系统.
func StorageMiddleware(manager *storage.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithStorageManager(c.Request.Context(), manager)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

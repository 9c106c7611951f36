package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid"

	ctxPkg "github.com/yeisme/monthvault/pkg/context"
)

// RequestIDHeader 请求 ID 头.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLen 客户端传入的请求 ID 超过该长度时重新生成.
const maxRequestIDLen = 64

// RequestIDMiddleware 为每个请求分配 ULID 形式的请求 ID，已携带的合法 ID 原样沿用.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = ulid.MustNew(ulid.Now(), entropy()).String()
		}

		c.Header(RequestIDHeader, id)
		c.Set("request_id", id)
		c.Request = c.Request.WithContext(ctxPkg.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}

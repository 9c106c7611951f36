package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yeisme/monthvault/pkg/configs"
)

const corsMaxAge = 12 * time.Hour

// CORSMiddleware CORS中间件. 服务只读，仅放行 GET/POST/OPTIONS.
func CORSMiddleware(cfg configs.ServerConfig) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions}
	config.AllowHeaders = append(config.AllowHeaders, RequestIDHeader, "X-Cache-Bypass")
	config.ExposeHeaders = []string{RequestIDHeader, "X-Cache", "ETag"}

	if !cfg.Debug {
		config.MaxAge = corsMaxAge
	}

	return cors.New(config)
}

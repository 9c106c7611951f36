package handle

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"

	ctxPkg "github.com/yeisme/monthvault/pkg/context"
)

const timeout = 2 * time.Second

// healthProbeKey KV 健康检查使用的探测键.
const healthProbeKey = "health:probe"

// HealthData 数据目录健康检查.
//
//	@Summary	数据目录健康检查
//	@Tags		健康检查
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	map[string]string
//	@Router		/health/data [get]
func HealthData(c *gin.Context) {
	dataFS := ctxPkg.GetDataFS(c.Request.Context())
	if dataFS == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"component": "data", "status": "unhealthy", "error": "data filesystem not initialized"})
		return
	}

	base := ctxPkg.GetDataConfig(c.Request.Context()).BasePath

	ok, err := afero.DirExists(dataFS, base)
	if err != nil || !ok {
		msg := "base data path not found: " + base
		if err != nil {
			msg = err.Error()
		}

		c.JSON(http.StatusServiceUnavailable, gin.H{"component": "data", "status": "unhealthy", "error": msg})

		return
	}

	c.JSON(http.StatusOK, gin.H{"component": "data", "status": "ok", "base_path": base})
}

// HealthKV 缓存后端健康检查. 未启用缓存时返回 disabled.
//
//	@Summary	KV 健康检查
//	@Tags		健康检查
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	map[string]string
//	@Router		/health/kv [get]
func HealthKV(c *gin.Context) {
	kvc := ctxPkg.GetKVClient(c.Request.Context())
	if kvc == nil {
		c.JSON(http.StatusOK, gin.H{"component": "kv", "status": "disabled"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	if _, err := kvc.Exists(ctx, healthProbeKey); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"component": "kv", "type": string(kvc.Type), "status": "unhealthy", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"component": "kv", "type": string(kvc.Type), "status": "ok"})
}

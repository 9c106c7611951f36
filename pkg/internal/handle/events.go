package handle

import (
	"github.com/gin-gonic/gin"

	ctxPkg "github.com/yeisme/monthvault/pkg/context"
	"github.com/yeisme/monthvault/pkg/internal/types"
	"github.com/yeisme/monthvault/pkg/log"
	"github.com/yeisme/monthvault/pkg/queue"
)

// publishMonthLoaded 广播一次月份加载结果. 事件总线未启用时什么也不做，发布失败只记日志.
func publishMonthLoaded(c *gin.Context, month string, resp *types.MonthResponse) {
	ctx := c.Request.Context()

	client := ctxPkg.GetEventsClient(ctx)
	if client == nil {
		return
	}

	payload := queue.MonthLoadedPayload{
		Month:   month,
		Success: resp.Success,
		Error:   resp.Error,
		Files:   resp.FileNames(),
		Source:  "http",
	}

	err := queue.PublishMonthLoaded(client.Publisher(), payload,
		queue.WithTraceID(ctxPkg.GetRequestID(ctx)),
		queue.WithProducer(queue.Producer),
	)
	if err != nil {
		l := ctxPkg.WithTraceContext(ctx, *log.Logger())
		l.Warn().Err(err).Str("topic", queue.TopicMonthLoaded).Msg("publish month event failed")
	}
}

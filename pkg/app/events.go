package app

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/yeisme/monthvault/pkg/internal/mq"
	"github.com/yeisme/monthvault/pkg/queue"
)

// AuditHandler 把 mv.month.loaded 事件写成审计日志.
// 无法解析的消息只记日志并确认.
func AuditHandler(logger *zerolog.Logger) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		env, err := queue.ParseMonthLoaded(msg)
		if err != nil {
			logger.Warn().Err(err).Str("uuid", msg.UUID).Msg("drop malformed month event")
			return nil
		}

		ev := logger.Info()
		if !env.Payload.Success {
			ev = logger.Warn()
		}

		ev.Str("topic", env.Header.Topic).
			Str("request_id", env.Header.TraceID).
			Str("month", env.Payload.Month).
			Bool("success", env.Payload.Success).
			Str("error", env.Payload.Error).
			Int("files", len(env.Payload.Files)).
			Time("occurred_at", env.Header.OccurredAt).
			Msg("month audit")

		return nil
	}
}

// runAudit 消费月份加载事件直到 ctx 结束.
func runAudit(ctx context.Context, client *mq.Client, logger *zerolog.Logger) error {
	if err := client.Consume(ctx, queue.TopicMonthLoaded, AuditHandler(logger)); err != nil {
		return fmt.Errorf("consume %s: %w", queue.TopicMonthLoaded, err)
	}

	return nil
}

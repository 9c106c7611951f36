// Package jobs 负责注册与实现业务定时任务（基于 scheduler）.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/yeisme/monthvault/pkg/internal/service"
	"github.com/yeisme/monthvault/pkg/internal/storage"
	"github.com/yeisme/monthvault/pkg/log"
	"github.com/yeisme/monthvault/pkg/metrics"
	"github.com/yeisme/monthvault/pkg/queue"
	"github.com/yeisme/monthvault/pkg/scheduler"
)

// RegisterJobs 配置业务定时任务:
//   - 每隔 interval 统计 base path 下的月份目录数，写入 monthvault_available_months，
//     启用事件总线时发布 mv.months.inventoried
func RegisterJobs(sched *scheduler.Scheduler, mgr *storage.Manager, interval time.Duration) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	svc := service.NewMonthServiceWithFS(mgr.GetDataFS(), mgr.DataConfig)

	var pub message.Publisher
	if ev := mgr.GetEventsClient(); ev != nil {
		pub = ev.Publisher()
	}

	return sched.AddInterval(context.Background(), JobMonthsInventory, interval, func(ctx context.Context) error {
		return RunInventory(ctx, svc, pub)
	})
}

// RunInventory 刷新月份目录数量指标. pub 不为 nil 时发布盘点结果.
func RunInventory(ctx context.Context, svc *service.MonthService, pub message.Publisher) error {
	l := log.Logger().With().Str("job", JobMonthsInventory).Logger()

	months, err := svc.AvailableMonths(ctx)
	if err != nil {
		metrics.AvailableMonths.Set(0)
	} else {
		metrics.AvailableMonths.Set(float64(len(months)))
		l.Debug().Int("count", len(months)).Strs("months", months).Msg("months inventory refreshed")
	}

	if pub != nil {
		payload := queue.MonthsInventoriedPayload{Months: months}
		if err != nil {
			payload.Error = err.Error()
		}

		if perr := queue.PublishMonthsInventoried(pub, payload, queue.WithProducer(queue.Producer)); perr != nil {
			l.Warn().Err(perr).Msg("publish inventory event failed")
		}
	}

	return err
}

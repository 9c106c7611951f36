package jobs_test

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/afero"

	"github.com/yeisme/monthvault/pkg/configs"
	"github.com/yeisme/monthvault/pkg/internal/jobs"
	"github.com/yeisme/monthvault/pkg/internal/service"
	"github.com/yeisme/monthvault/pkg/metrics"
	"github.com/yeisme/monthvault/pkg/queue"
)

func TestRunInventory(t *testing.T) {
	mfs := afero.NewMemMapFs()
	for _, dir := range []string{"data/apr", "data/may", "data/jun"} {
		if err := mfs.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	svc := service.NewMonthServiceWithFS(mfs, configs.DataConfig{BasePath: "data", DefaultMonth: "may"})

	if err := jobs.RunInventory(context.Background(), svc, nil); err != nil {
		t.Fatalf("RunInventory failed: %v", err)
	}

	if got := gaugeValue(t); got != 3 {
		t.Errorf("expected gauge 3, got %v", got)
	}

	missing := service.NewMonthServiceWithFS(afero.NewMemMapFs(), configs.DataConfig{BasePath: "data"})
	if err := jobs.RunInventory(context.Background(), missing, nil); err == nil {
		t.Error("expected error for missing base path")
	}

	if got := gaugeValue(t); got != 0 {
		t.Errorf("expected gauge reset to 0, got %v", got)
	}
}

func gaugeValue(t *testing.T) float64 {
	t.Helper()

	var m dto.Metric
	if err := metrics.AvailableMonths.Write(&m); err != nil {
		t.Fatalf("read gauge: %v", err)
	}

	return m.GetGauge().GetValue()
}

func TestRunInventory_PublishesEvent(t *testing.T) {
	mfs := afero.NewMemMapFs()
	if err := mfs.MkdirAll("data/may", 0o755); err != nil {
		t.Fatal(err)
	}

	ps := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 1}, watermill.NopLogger{})
	defer ps.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ch, err := ps.Subscribe(ctx, queue.TopicMonthsInventoried)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	svc := service.NewMonthServiceWithFS(mfs, configs.DataConfig{BasePath: "data", DefaultMonth: "may"})
	if err := jobs.RunInventory(ctx, svc, ps); err != nil {
		t.Fatalf("RunInventory failed: %v", err)
	}

	select {
	case msg := <-ch:
		msg.Ack()

		env, err := queue.ParseMonthsInventoried(msg)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}

		if len(env.Payload.Months) != 1 || env.Payload.Months[0] != "may" {
			t.Errorf("unexpected months: %v", env.Payload.Months)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for inventory event")
	}
}

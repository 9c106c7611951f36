package mq_test

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yeisme/monthvault/pkg/configs"
	"github.com/yeisme/monthvault/pkg/internal/mq"
	"github.com/yeisme/monthvault/pkg/queue"
)

func newGoChannel(t *testing.T, reg prometheus.Registerer) *mq.Client {
	t.Helper()

	client, err := mq.New(context.Background(), &configs.EventsConfig{
		Enabled:   true,
		Type:      configs.EventsTypeGoChannel,
		GoChannel: configs.EventsGoChannelConfig{OutputBuffer: 8},
	}, reg)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	t.Cleanup(func() { _ = client.Close() })

	return client
}

// TestNew_UnsupportedType 测试未注册的类型返回错误.
func TestNew_UnsupportedType(t *testing.T) {
	_, err := mq.New(context.Background(), &configs.EventsConfig{Type: "kafka"}, nil)
	if err == nil {
		t.Fatal("Expected error for unsupported type")
	}
}

// TestConsume_MonthLoaded 测试发布的月份事件被消费并可解析.
func TestConsume_MonthLoaded(t *testing.T) {
	client := newGoChannel(t, prometheus.NewRegistry())

	if client.Type() != configs.EventsTypeGoChannel {
		t.Errorf("Expected gochannel type, got %s", client.Type())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got := make(chan queue.Message[queue.MonthLoadedPayload], 1)
	done := make(chan error, 1)
	ready := make(chan struct{})

	go func() {
		ch, err := client.Subscribe(ctx, queue.TopicMonthLoaded)
		close(ready)

		if err != nil {
			done <- err
			return
		}

		msg := <-ch

		env, err := queue.ParseMonthLoaded(msg)
		msg.Ack()

		if err != nil {
			done <- err
			return
		}

		got <- env
		done <- nil
	}()

	<-ready

	payload := queue.MonthLoadedPayload{Month: "may", Success: true, Files: []string{"a.txt"}, Source: "http"}
	if err := queue.PublishMonthLoaded(client.Publisher(), payload, queue.WithTraceID("req-1")); err != nil {
		t.Fatalf("PublishMonthLoaded returned error: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("consumer error: %v", err)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for event")
	}

	env := <-got
	if env.Header.Topic != queue.TopicMonthLoaded || env.Header.TraceID != "req-1" {
		t.Errorf("Unexpected header: %+v", env.Header)
	}

	if env.Payload.Month != "may" || !env.Payload.Success || len(env.Payload.Files) != 1 {
		t.Errorf("Unexpected payload: %+v", env.Payload)
	}
}

// TestConsume_StopsOnContext 测试 ctx 结束后 Consume 返回.
func TestConsume_StopsOnContext(t *testing.T) {
	client := newGoChannel(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)

	go func() {
		errCh <- client.Consume(ctx, queue.TopicMonthLoaded, func(*message.Message) error { return nil })
	}()

	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Expected nil error, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Consume did not return after cancel")
	}
}

// TestClose_Nil 测试 nil 客户端的 Close.
func TestClose_Nil(t *testing.T) {
	var c *mq.Client
	if err := c.Close(); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
}

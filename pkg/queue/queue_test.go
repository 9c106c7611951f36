package queue_test

import (
	"testing"

	"github.com/yeisme/monthvault/pkg/queue"
)

// TestNewWatermillMessage 测试信封头部写入消息元数据.
func TestNewWatermillMessage(t *testing.T) {
	payload := queue.MonthLoadedPayload{Month: "june", Error: "Month directory not found: data/june"}

	msg, err := queue.NewWatermillMessage(queue.TopicMonthLoaded, payload,
		queue.WithTraceID("trace-xyz"), queue.WithProducer(queue.Producer))
	if err != nil {
		t.Fatalf("NewWatermillMessage returned error: %v", err)
	}

	if msg.UUID == "" {
		t.Error("Expected message UUID")
	}

	for key, want := range map[string]string{
		"topic":    queue.TopicMonthLoaded,
		"trace_id": "trace-xyz",
		"producer": queue.Producer,
		"version":  queue.PayloadVersionV1,
	} {
		if got := msg.Metadata.Get(key); got != want {
			t.Errorf("metadata %s: expected %q, got %q", key, want, got)
		}
	}

	env, err := queue.ParseMonthLoaded(msg)
	if err != nil {
		t.Fatalf("ParseMonthLoaded returned error: %v", err)
	}

	if env.Payload.Success || env.Payload.Error != payload.Error {
		t.Errorf("Unexpected payload: %+v", env.Payload)
	}

	if env.Header.OccurredAt.IsZero() {
		t.Error("Expected occurred_at to be set")
	}
}

// TestDecode_Invalid 测试非法负载返回错误.
func TestDecode_Invalid(t *testing.T) {
	if _, err := queue.Decode[queue.MonthLoadedPayload]([]byte("not json")); err == nil {
		t.Error("Expected decode error")
	}
}

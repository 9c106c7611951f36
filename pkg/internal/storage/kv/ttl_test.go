package kv

import (
	"bytes"
	"testing"
	"time"
)

func TestEncodeWithTTL(t *testing.T) {
	raw := []byte("plain")

	out, wrapped, err := encodeWithTTL(raw, 0)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if wrapped || !bytes.Equal(out, raw) {
		t.Errorf("expected zero ttl to keep raw value, got %q wrapped=%v", out, wrapped)
	}

	out, wrapped, err = encodeWithTTL(raw, time.Minute)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if !wrapped || !bytes.HasPrefix(out, []byte(ttlMagic)) {
		t.Fatalf("expected wrapped value, got %q", out)
	}

	val, expired, isWrapped, err := decodeWithTTL(out, time.Now())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if expired || !isWrapped || !bytes.Equal(val, raw) {
		t.Errorf("unexpected decode result %q expired=%v wrapped=%v", val, expired, isWrapped)
	}

	_, expired, _, err = decodeWithTTL(out, time.Now().Add(2*time.Minute))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if !expired {
		t.Error("expected value to be expired")
	}
}

func TestMemoryKV_Expiry(t *testing.T) {
	now := time.Now()
	m := &MemoryKV{now: func() time.Time { return now }}

	if err := m.Set(t.Context(), "k", []byte("v"), time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if _, err := m.Get(t.Context(), "k"); err != nil {
		t.Fatalf("expected fresh value, got %v", err)
	}

	now = now.Add(2 * time.Second)

	if _, err := m.Get(t.Context(), "k"); err == nil {
		t.Error("expected expired value to be gone")
	}
}

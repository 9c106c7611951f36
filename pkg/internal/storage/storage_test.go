package storage_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"

	"github.com/yeisme/monthvault/pkg/configs"
	"github.com/yeisme/monthvault/pkg/internal/storage"
)

func TestNew_CacheDisabled(t *testing.T) {
	cfg := &configs.AppConfig{
		Data: configs.DataConfig{BasePath: "data", DefaultMonth: "may"},
	}

	m, err := storage.New(context.Background(), cfg, afero.NewMemMapFs())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if m.GetKVClient() != nil {
		t.Error("expected no kv client when cache is disabled")
	}

	if m.GetDataFS() == nil {
		t.Error("expected data fs")
	}

	if err := m.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestNew_CacheEnabledMemory(t *testing.T) {
	cfg := &configs.AppConfig{
		Data:  configs.DataConfig{BasePath: "data", DefaultMonth: "may"},
		Cache: configs.CacheConfig{Enabled: true},
		KV:    configs.KVConfig{Type: "memory"},
	}

	m, err := storage.New(context.Background(), cfg, afero.NewMemMapFs())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer m.Close()

	if m.GetKVClient() == nil {
		t.Fatal("expected kv client when cache is enabled")
	}

	if string(m.GetKVClient().Type) != "memory" {
		t.Errorf("expected memory kv, got %s", m.GetKVClient().Type)
	}
}

func TestNew_EventsEnabled(t *testing.T) {
	cfg := &configs.AppConfig{
		Data:   configs.DataConfig{BasePath: "data", DefaultMonth: "may"},
		Events: configs.EventsConfig{Enabled: true, Type: configs.EventsTypeGoChannel},
	}

	m, err := storage.New(context.Background(), cfg, afero.NewMemMapFs())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if m.GetEventsClient() == nil {
		t.Fatal("expected events client when events are enabled")
	}

	if err := m.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestNew_EventsUnsupported(t *testing.T) {
	cfg := &configs.AppConfig{
		Data:   configs.DataConfig{BasePath: "data", DefaultMonth: "may"},
		Events: configs.EventsConfig{Enabled: true, Type: "kafka"},
	}

	if _, err := storage.New(context.Background(), cfg, afero.NewMemMapFs()); err == nil {
		t.Fatal("expected error for unsupported events type")
	}
}

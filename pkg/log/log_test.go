package log_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yeisme/monthvault/pkg/configs"
	"github.com/yeisme/monthvault/pkg/log"
)

// TestNew_WritesToGivenWriter 测试 logger 写入指定输出而非 stdout.
func TestNew_WritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer

	l := log.New(configs.LogConfig{Level: "debug"}, false, &buf)
	l.Info().Str("month", "may").Msg("month loaded")

	out := buf.String()
	if !strings.Contains(out, "month loaded") {
		t.Errorf("Expected message in output, got %q", out)
	}

	if !strings.Contains(out, "may") {
		t.Errorf("Expected field value in output, got %q", out)
	}
}

// TestNew_InvalidLevel 测试非法日志级别回落到 info.
func TestNew_InvalidLevel(t *testing.T) {
	var buf bytes.Buffer

	l := log.New(configs.LogConfig{Level: "loud"}, false, &buf)
	l.Debug().Msg("hidden")
	l.Info().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug message to be filtered, got %q", out)
	}

	if !strings.Contains(out, "shown") {
		t.Errorf("Expected info message, got %q", out)
	}
}

// TestGinWriter 测试 Gin 文本行被转发为日志事件.
func TestGinWriter(t *testing.T) {
	var buf bytes.Buffer

	l := log.New(configs.LogConfig{Level: "info"}, false, &buf)
	w := log.NewGinWriter(&l, zerolog.ErrorLevel)

	n, err := w.Write([]byte("[GIN] route conflict\n"))
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	if n != len("[GIN] route conflict\n") {
		t.Errorf("Expected full length written, got %d", n)
	}

	if !strings.Contains(buf.String(), "route conflict") {
		t.Errorf("Expected gin line in output, got %q", buf.String())
	}
}

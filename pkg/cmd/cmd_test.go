package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run 执行根命令并返回 stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)

	err := Execute(context.Background())

	return out.String(), err
}

func writeDataDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range map[string]string{
		"may/mermay.txt": "May 1 - Mermaid\n",
		"apr/a.txt":      "Apr 1 - Otter\n",
	} {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}

		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	return dir
}

func TestCGICommand(t *testing.T) {
	base := writeDataDir(t)
	t.Setenv("MONTHVAULT_DATA_BASE_PATH", base)
	t.Setenv("REQUEST_METHOD", "GET")
	t.Setenv("SERVER_PROTOCOL", "HTTP/1.1")
	t.Setenv("QUERY_STRING", "month=MAY")

	out, err := run(t, "cgi", "--config", t.TempDir())
	if err != nil {
		t.Fatalf("cgi failed: %v", err)
	}

	want := "Content-Type: application/json\n\n" + `{"success":true,"mermay.txt":["May 1 - Mermaid"]}` + "\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestCGICommand_BaseMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	t.Setenv("MONTHVAULT_DATA_BASE_PATH", missing)
	t.Setenv("QUERY_STRING", "")

	out, err := run(t, "cgi", "--config", t.TempDir())
	if err != nil {
		t.Fatalf("cgi should not fail on load errors: %v", err)
	}

	if !strings.Contains(out, `"error":"Base data path not found: `+missing+`"`) {
		t.Errorf("unexpected output %q", out)
	}
}

func TestMonthsListCommand(t *testing.T) {
	t.Setenv("MONTHVAULT_DATA_BASE_PATH", writeDataDir(t))

	out, err := run(t, "months", "ls", "--config", t.TempDir())
	if err != nil {
		t.Fatalf("months ls failed: %v", err)
	}

	if out != "apr\nmay\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestKVListCommand(t *testing.T) {
	out, err := run(t, "kv", "ls", "--config", t.TempDir())
	if err != nil {
		t.Fatalf("kv ls failed: %v", err)
	}

	if !strings.Contains(out, "* - memory") || !strings.Contains(out, "redis") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestEventsListCommand(t *testing.T) {
	out, err := run(t, "events", "ls", "--config", t.TempDir())
	if err != nil {
		t.Fatalf("events ls failed: %v", err)
	}

	if !strings.Contains(out, "* - gochannel") || !strings.Contains(out, "nats") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestMonthsShowCommand(t *testing.T) {
	t.Setenv("MONTHVAULT_DATA_BASE_PATH", writeDataDir(t))

	out, err := run(t, "months", "show", "APR", "--config", t.TempDir())
	if err != nil {
		t.Fatalf("months show failed: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}

	if got["success"] != true {
		t.Errorf("expected success, got %v", got)
	}

	lines, ok := got["a.txt"].([]any)
	if !ok || len(lines) != 1 || lines[0] != "Apr 1 - Otter" {
		t.Errorf("unexpected a.txt lines %v", got["a.txt"])
	}
}

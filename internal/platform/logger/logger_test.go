package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", "json", &buf)
	log.Debug("hidden")
	log.Info("payroll computed", "employees", 2)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a single json line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "payroll computed" || entry["employees"] != float64(2) {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestPlainFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("warn", "plain", &buf).With("component", "payrun")
	log.Info("hidden")
	log.Warn("row skipped", "line", 3)

	got := strings.TrimSpace(buf.String())
	if got != "WARN row skipped component=payrun line=3" {
		t.Fatalf("unexpected plain output %q", got)
	}
}

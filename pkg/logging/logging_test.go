package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("quote computed", "items", 2)
	if buf.Len() != 0 {
		t.Fatalf("info must be filtered at warn level, got %q", buf.String())
	}

	logger.Warn("catalog unavailable", "table", "services")
	out := buf.String()
	if !strings.Contains(out, "catalog unavailable") || !strings.Contains(out, "table=services") {
		t.Fatalf("unexpected log output: %q", out)
	}
}

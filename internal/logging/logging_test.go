package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"bogus": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, Config{Level: "info", Format: "json"})
	l.Debug("hidden")
	l.Info("year committed", "year", 2025)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if entry["msg"] != "year committed" || entry["year"] != float64(2025) {
		t.Errorf("entry = %v", entry)
	}
}

func TestNew_FileRequiresPath(t *testing.T) {
	if _, err := New(Config{Output: "file"}); err == nil {
		t.Error("expected error when file output has no path")
	}
	if _, err := New(Config{Output: "file", FilePath: filepath.Join(t.TempDir(), "logs", "basel.log")}); err != nil {
		t.Errorf("file output: %v", err)
	}
}

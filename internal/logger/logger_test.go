package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "newsmatch.log")
	log, closeFn, err := New(path, "info")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("swipe", zap.String("article", "1"))
	log.Debug("hidden")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"msg":"swipe"`) || !strings.Contains(out, `"article":"1"`) {
		t.Errorf("expected structured entry, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug entry written at info level")
	}
}

func TestNewOrNopFallsBack(t *testing.T) {
	// A file where a directory is expected makes MkdirAll fail.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	log, closeFn := NewOrNop(filepath.Join(blocker, "sub", "x.log"), "info")
	if log == nil {
		t.Fatal("expected a logger")
	}
	log.Info("dropped")
	if err := closeFn(); err != nil {
		t.Errorf("nop close: %v", err)
	}
}

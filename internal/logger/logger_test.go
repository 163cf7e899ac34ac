package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewReturnsWorkingLogger(t *testing.T) {
	logger := New()
	if logger == nil {
		t.Fatal("expected logger instance")
	}
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("expected info level enabled by default")
	}
}

func TestLevelFromEnv(t *testing.T) {
	cases := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
	}
	for _, tc := range cases {
		t.Setenv("LOG_LEVEL", tc.value)
		if got := levelFromEnv(); got != tc.want {
			t.Fatalf("LOG_LEVEL=%q: expected %v, got %v", tc.value, tc.want, got)
		}
	}
}

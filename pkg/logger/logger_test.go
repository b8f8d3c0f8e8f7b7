package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-123")
	if got := GetRequestID(ctx); got != "req-123" {
		t.Errorf("expected req-123, got %q", got)
	}
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestContextLoggingCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	previous := defaultLogger
	defaultLogger = New(&buf, Config{Level: "debug", Format: "json"})
	defer func() { defaultLogger = previous }()

	ctx := ContextWithRequestID(context.Background(), "abc")
	InfoContext(ctx, "Task completed", "task_id", 7)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to decode log line: %v", err)
	}
	if entry["request_id"] != "abc" {
		t.Errorf("expected request_id abc, got %v", entry["request_id"])
	}
	if entry["msg"] != "Task completed" {
		t.Errorf("unexpected msg %v", entry["msg"])
	}
	if entry["task_id"] != float64(7) {
		t.Errorf("expected task_id 7, got %v", entry["task_id"])
	}
}

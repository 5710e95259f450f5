package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newBufferLogger(buf *bytes.Buffer, component string) *Logger {
	return New(Config{
		Level:     slog.LevelDebug,
		Component: component,
		Handler:   slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	})
}

func TestLoggerTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, ComponentApp)

	logger.Info("hello", FieldError, "boom")

	line := buf.String()
	if !strings.Contains(line, FieldComponent+"="+ComponentApp) {
		t.Errorf("line missing component field: %s", line)
	}
	if !strings.Contains(line, FieldError+"=boom") {
		t.Errorf("line missing error field: %s", line)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, ComponentApp)

	scoped := logger.WithComponent(ComponentAlerts)
	if scoped.Component() != ComponentAlerts {
		t.Fatalf("Component() = %q, want %q", scoped.Component(), ComponentAlerts)
	}

	scoped.Warn("queue down")
	if !strings.Contains(buf.String(), FieldComponent+"="+ComponentAlerts) {
		t.Errorf("scoped line missing component: %s", buf.String())
	}
	if strings.Contains(buf.String(), "hello") {
		t.Error("unexpected output from parent logger")
	}
}

package diagnostics

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: LevelWarn, Output: &buf, Prefix: "test"})

	l.Info("should not appear")
	if buf.Len() != 0 {
		t.Errorf("buffer = %q, want empty", buf.String())
	}

	l.Warn("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("buffer = %q, want to contain message", buf.String())
	}
}

func TestLoggerDisable(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: LevelDebug, Output: &buf})
	l.Disable()
	l.Error("ignored")
	if buf.Len() != 0 {
		t.Errorf("buffer = %q, want empty after Disable", buf.String())
	}
}

func TestLoggerWithFieldIncludesFieldInOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: LevelDebug, Output: &buf})
	l.WithField("handle", "abc123").Info("registered")

	if !strings.Contains(buf.String(), "handle=abc123") {
		t.Errorf("buffer = %q, want to contain handle=abc123", buf.String())
	}
}

func TestLoggerWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: LevelDebug, Output: &buf})
	l.WithComponent("engine").Debug("tick")

	if !strings.Contains(buf.String(), "component=engine") {
		t.Errorf("buffer = %q, want to contain component=engine", buf.String())
	}
}

func TestLoggerPrefixAppearsInLine(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: LevelDebug, Output: &buf, Prefix: "keybind"})
	l.Info("hello")

	if !strings.Contains(buf.String(), "keybind: hello") {
		t.Errorf("buffer = %q, want to contain \"keybind: hello\"", buf.String())
	}
}

func TestNullSinkDiscardsEverything(t *testing.T) {
	// Must not panic and must not retain any state to observe.
	NullSink.Log(LevelError, "whatever", map[string]any{"a": 1})
}

package internal

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func capture(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	fn()
	return buf.String()
}

func TestLoggerTagsComponent(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	logger := NewLogger("Load")

	out := capture(t, func() {
		logger.Info("table built: %d merged rows", 2)
	})

	if !strings.Contains(out, "[Load] table built: 2 merged rows") {
		t.Errorf("Expected tagged line, got %q", out)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")
	logger := NewLogger("DataReader")

	out := capture(t, func() {
		logger.Info("suppressed")
		logger.Debug("suppressed")
		logger.Error("emitted: %v", "cause")
	})

	if strings.Contains(out, "suppressed") {
		t.Errorf("Sub-error lines leaked at ERROR level: %q", out)
	}
	if !strings.Contains(out, "[DataReader] emitted: cause") {
		t.Errorf("Error line missing, got %q", out)
	}
}

func TestLoggerDebugHiddenByDefault(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	logger := NewLogger("Ops")

	out := capture(t, func() {
		logger.Debug("per-row noise")
	})

	if out != "" {
		t.Errorf("Debug should be hidden at the default level, got %q", out)
	}
}

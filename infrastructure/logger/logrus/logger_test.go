package logrus

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLogrusLogger(t *testing.T) {
	logger := NewLogrusLogger("debug")

	if logger == nil {
		t.Fatal("NewLogrusLogger returned nil")
	}
	if logger.log.GetLevel() != logrus.DebugLevel {
		t.Errorf("Level = %v, want debug", logger.log.GetLevel())
	}
}

func TestNewLogrusLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	logger := NewLogrusLogger("loud")

	if logger.log.GetLevel() != logrus.InfoLevel {
		t.Errorf("Level = %v, want info", logger.log.GetLevel())
	}
}

func TestLogrusLogger_WritesFields(t *testing.T) {
	logger := NewLogrusLogger("info")
	var buf bytes.Buffer
	logger.log.SetOutput(&buf)

	logger.Info("fused record", map[string]interface{}{
		"title":    "Dune",
		"progress": 50,
	})

	out := buf.String()
	if !strings.Contains(out, "fused record") {
		t.Errorf("Output missing message: %s", out)
	}
	if !strings.Contains(out, "title=Dune") {
		t.Errorf("Output missing field: %s", out)
	}
}

func TestLogrusLogger_DebugSuppressedAtInfoLevel(t *testing.T) {
	logger := NewLogrusLogger("info")
	var buf bytes.Buffer
	logger.log.SetOutput(&buf)

	logger.Debug("noisy detail", nil)

	if buf.Len() != 0 {
		t.Errorf("Debug output should be suppressed at info level: %s", buf.String())
	}
}

func TestLogrusLogger_LogMethods(t *testing.T) {
	logger := NewLogrusLogger("debug")
	var buf bytes.Buffer
	logger.log.SetOutput(&buf)

	// None of these should panic, with or without fields.
	logger.Debug("test debug", nil)
	logger.Info("test info", map[string]interface{}{"user": "jane"})
	logger.Warn("test warn", nil)
	logger.Error("test error", map[string]interface{}{"code": 500})

	if got := strings.Count(buf.String(), "\n"); got != 4 {
		t.Errorf("Wrote %d lines, want 4", got)
	}
}

package logrus

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func captureOutput(logger *Logger) *bytes.Buffer {
	buf := &bytes.Buffer{}
	logger.log.SetOutput(buf)
	return buf
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger()
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
}

func TestLogger_Info_EmitsJSON(t *testing.T) {
	logger := NewLogger()
	buf := captureOutput(logger)

	logger.Info("Dataset loaded", map[string]interface{}{
		"months": 3,
		"papers": 42,
	})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["msg"] != "Dataset loaded" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["papers"] != float64(42) {
		t.Errorf("papers field = %v", entry["papers"])
	}
}

func TestLogger_NilFields(t *testing.T) {
	logger := NewLogger()
	buf := captureOutput(logger)

	logger.Warn("Manifest fetch failed, using fallback manifest", nil)

	if !strings.Contains(buf.String(), "fallback manifest") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLogger_DebugSuppressedAtInfoLevel(t *testing.T) {
	logger := NewLogger()
	buf := captureOutput(logger)

	logger.Debug("noisy detail", nil)

	if buf.Len() != 0 {
		t.Errorf("debug output should be suppressed, got %q", buf.String())
	}
}

func TestNewDebugLogger_EmitsDebug(t *testing.T) {
	logger := NewDebugLogger()
	buf := captureOutput(logger)

	logger.Debug("noisy detail", nil)

	if !strings.Contains(buf.String(), "noisy detail") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLogger_ErrorLevel(t *testing.T) {
	logger := NewLogger()
	buf := captureOutput(logger)

	logger.Error("page render failed", map[string]interface{}{"path": "/explore"})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["level"] != "error" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["path"] != "/explore" {
		t.Errorf("path field = %v", entry["path"])
	}
}

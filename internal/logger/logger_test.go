package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
		{"empty level", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level, "text")
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := newWithWriter(&buf, "info", "text")

	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")
	log.Info(ctx, "formatted message: %s %d", "test", 123)

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Error("debug message should be filtered at info level")
	}
	for _, want := range []string{"info message", "warn message", "error message", "formatted message: test 123"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestJSONFormatCarriesRunID(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(&buf, "debug", "json")

	ctx := WithRunID(context.Background(), "a1b2c3d4")
	log.Info(ctx, "rendering %d chunks", 7)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["run"] != "a1b2c3d4" {
		t.Errorf("run = %v, want %v", entry["run"], "a1b2c3d4")
	}
	if entry["message"] != "rendering 7 chunks" {
		t.Errorf("message = %v, want %v", entry["message"], "rendering 7 chunks")
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want %v", entry["level"], "info")
	}
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", "debug", true},
		{"info logs at debug level", "debug", "info", true},
		{"debug doesn't log at info level", "info", "debug", false},
		{"info logs at info level", "info", "info", true},
		{"warn doesn't log at error level", "error", "warn", false},
		{"error always logs", "debug", "error", true},
		{"invalid config falls back to info", "loud", "debug", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel, "text").(*implLogger)
			result := log.shouldLog(tt.logLevel)
			if result != tt.shouldLog {
				t.Errorf("shouldLog() = %v, want %v", result, tt.shouldLog)
			}
		})
	}
}

package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func newBufferLogger(level LogLevel, format LogFormat) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return New(Config{Level: level, Format: format, Output: buf}), buf
}

func TestLevelFiltering(t *testing.T) {
	log, buf := newBufferLogger(INFO, TextFormat)

	log.Debug("Generated documentation set", map[string]interface{}{"docs": 4})
	if buf.Len() != 0 {
		t.Errorf("Debug event should be filtered at INFO level, got: %s", buf.String())
	}

	log.Info("Report published", map[string]interface{}{"folder": "2026/03/14/DDPReport-2026-03-14-09-26-53"})
	if buf.Len() == 0 {
		t.Fatal("Info event should be emitted at INFO level")
	}
}

func TestSetLevelEnablesDebug(t *testing.T) {
	log, buf := newBufferLogger(INFO, TextFormat)

	log.SetLevel(DEBUG)
	log.Debug("Storing file to GCS", map[string]interface{}{"filename": "threat_timeline.png"})

	if !strings.Contains(buf.String(), "Storing file to GCS") {
		t.Errorf("Debug event missing after SetLevel(DEBUG), got: %s", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	log, buf := newBufferLogger(DEBUG, JSONFormat)

	log.Info("Starting report generation", map[string]interface{}{
		"charts": 3,
		"folder": "2026/03/14/DDPReport-2026-03-14-09-26-53",
	})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if entry["level"] != "INFO" {
		t.Errorf("Expected level INFO, got %v", entry["level"])
	}
	if entry["message"] != "Starting report generation" {
		t.Errorf("Unexpected message: %v", entry["message"])
	}
	fields, ok := entry["fields"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected fields object in JSON output")
	}
	if fields["folder"] != "2026/03/14/DDPReport-2026-03-14-09-26-53" {
		t.Errorf("Unexpected folder field: %v", fields["folder"])
	}
	if entry["timestamp"] == nil {
		t.Error("Expected timestamp in JSON output")
	}
}

func TestJSONFormatOmitsEmptyFields(t *testing.T) {
	log, buf := newBufferLogger(DEBUG, JSONFormat)

	log.Info("Report generation completed")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if _, present := entry["fields"]; present {
		t.Error("Expected fields to be omitted when none given")
	}
	if _, present := entry["error"]; present {
		t.Error("Expected error to be omitted for non-error events")
	}
}

func TestTextFormat(t *testing.T) {
	log, buf := newBufferLogger(DEBUG, TextFormat)

	log.Info("Generated report files", map[string]interface{}{
		"charts": 7,
		"docs":   4,
	})

	line := buf.String()
	if !strings.Contains(line, "INFO") {
		t.Errorf("Expected level in text output, got: %s", line)
	}
	if !strings.Contains(line, "Generated report files") {
		t.Errorf("Expected message in text output, got: %s", line)
	}
	// sorted keys keep the line stable
	if !strings.Contains(line, "fields={charts=7, docs=4}") {
		t.Errorf("Expected sorted fields in text output, got: %s", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Error("Expected trailing newline on text output")
	}
}

func TestErrorEventCarriesError(t *testing.T) {
	log, buf := newBufferLogger(DEBUG, JSONFormat)

	log.Error("Report generation failed", errors.New("export failed for threat_timeline"))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if entry["level"] != "ERROR" {
		t.Errorf("Expected level ERROR, got %v", entry["level"])
	}
	if entry["error"] != "export failed for threat_timeline" {
		t.Errorf("Unexpected error field: %v", entry["error"])
	}
}

func TestErrorEventInTextFormat(t *testing.T) {
	log, buf := newBufferLogger(DEBUG, TextFormat)

	log.Error("Failed to list reports", errors.New("bucket not found"))

	if !strings.Contains(buf.String(), "error=bucket not found") {
		t.Errorf("Expected error in text output, got: %s", buf.String())
	}
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{FATAL, "FATAL"},
		{LogLevel(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"warning", WARN},
		{"Error", ERROR},
		{"fatal", FATAL},
		{"verbose", -1},
	}
	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseLogFormat(t *testing.T) {
	if got := parseLogFormat("JSON"); got != JSONFormat {
		t.Errorf("parseLogFormat(JSON) = %d, want JSONFormat", got)
	}
	if got := parseLogFormat("text"); got != TextFormat {
		t.Errorf("parseLogFormat(text) = %d, want TextFormat", got)
	}
	if got := parseLogFormat("yaml"); got != -1 {
		t.Errorf("parseLogFormat(yaml) = %d, want -1", got)
	}
}

func TestGlobalLoggerSwap(t *testing.T) {
	original := GetGlobalLogger()
	defer SetGlobalLogger(original)

	replacement, buf := newBufferLogger(DEBUG, TextFormat)
	SetGlobalLogger(replacement)

	Info("Preview server listening", map[string]interface{}{"port": "8980"})

	if !strings.Contains(buf.String(), "Preview server listening") {
		t.Errorf("Global Info did not reach the replacement logger, got: %s", buf.String())
	}
}

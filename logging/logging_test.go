package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedDebug bool
	}{
		{
			name:          "Debug level logs debug messages",
			logLevel:      "debug",
			expectedDebug: true,
		},
		{
			name:          "Info level suppresses debug messages",
			logLevel:      "info",
			expectedDebug: false,
		},
		{
			name:          "Unknown level falls back to info",
			logLevel:      "shouting",
			expectedDebug: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logFilePath := filepath.Join(t.TempDir(), "civiscope.log")

			if err := Init(tt.logLevel, logFilePath); err != nil {
				t.Fatalf("Init() error = %v", err)
			}

			InfoLogger.Info().Msg("This is an info message")
			ErrorLogger.Error().Msg("This is an error message")
			DebugLogger.Debug().Msg("This is a debug message")

			data, err := os.ReadFile(logFilePath)
			if err != nil {
				t.Fatalf("Failed to read log file: %v", err)
			}
			logContent := string(data)

			if !strings.Contains(logContent, "This is an info message") {
				t.Errorf("Info log message not found in log file: %s", logContent)
			}
			if !strings.Contains(logContent, "This is an error message") {
				t.Errorf("Error log message not found in log file: %s", logContent)
			}

			if tt.expectedDebug && !strings.Contains(logContent, "This is a debug message") {
				t.Errorf("Expected debug log message not found in log file: %s", logContent)
			}
			if !tt.expectedDebug && strings.Contains(logContent, "This is a debug message") {
				t.Errorf("Unexpected debug log message found in log file: %s", logContent)
			}
		})
	}
}

func TestInitInvalidPath(t *testing.T) {
	if err := Init("debug", "/dev/null/not-a-dir/civiscope.log"); err == nil {
		t.Error("Init() expected error for unwritable log path, got nil")
	}
}

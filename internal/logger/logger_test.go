package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dbsmedya/edgarviz/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string // String representation of zapcore.Level
	}{
		{"debug", "debug"},
		{"info", "info"},
		{"", "info"}, // empty defaults to info
		{"warn", "warn"},
		{"error", "error"},
		{"unknown", "info"}, // unknown defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level := parseLevel(tt.input)
			if level.String() != tt.expected {
				t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, level.String(), tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test-log.json")

	tests := []struct {
		name    string
		cfg     *config.LoggingConfig
		wantErr bool
	}{
		{
			name:    "json format info level",
			cfg:     &config.LoggingConfig{Level: "info", Format: "json", Output: "stdout"},
			wantErr: false,
		},
		{
			name:    "text format debug level",
			cfg:     &config.LoggingConfig{Level: "debug", Format: "text", Output: "stderr"},
			wantErr: false,
		},
		{
			name:    "file output",
			cfg:     &config.LoggingConfig{Level: "warn", Format: "json", Output: logFile},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if logger == nil && !tt.wantErr {
				t.Error("New() returned nil logger without error")
			}
			if logger != nil {
				_ = logger.Sync()
			}
		})
	}
}

func TestNewDefault(t *testing.T) {
	logger := NewDefault()
	if logger == nil {
		t.Fatal("NewDefault() returned nil")
	}

	// Should be able to log without panic
	logger.Info("test message")
	_ = logger.Sync()
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	if logger == nil {
		t.Fatal("NewNop() returned nil")
	}
	logger.WithWidget("filings").Warnw("discarded", "n", 1)
	if err := logger.Sync(); err != nil {
		t.Errorf("Sync() on nop logger failed: %v", err)
	}
}

func TestContextLoggers(t *testing.T) {
	logger := NewNop()

	widgetLogger := logger.WithWidget("filetypes")
	if widgetLogger == nil || widgetLogger == logger {
		t.Fatal("WithWidget() should return a new logger instance")
	}

	resourceLogger := widgetLogger.WithResource("./public/data/filing_forms.csv")
	if resourceLogger == nil || resourceLogger == widgetLogger {
		t.Fatal("WithResource() should return a new logger instance")
	}

	fieldLogger := resourceLogger.WithFields(map[string]interface{}{"rows": 12})
	if fieldLogger == nil {
		t.Fatal("WithFields() returned nil")
	}
	fieldLogger.Info("test chained context")
}

func TestBuildWriters(t *testing.T) {
	for _, output := range []string{"stdout", "stderr", ""} {
		if buildWriters(output) == nil {
			t.Errorf("buildWriters(%q) returned nil", output)
		}
	}

	if buildWriters(filepath.Join(t.TempDir(), "out.log")) == nil {
		t.Error("buildWriters(file) returned nil")
	}

	// Unwritable path falls back to stderr rather than failing
	if buildWriters("/nonexistent-dir/sub/out.log") == nil {
		t.Error("buildWriters(bad path) returned nil")
	}
}

func TestLoggingOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logger-test.json")

	cfg := &config.LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: logPath,
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Info("test info message")
	logger.Debug("hidden debug message")
	logger.WithWidget("filings").WithResource("data/filing_forms.csv").Warn("load failed")

	_ = logger.Sync()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	contentStr := string(content)
	if !strings.Contains(contentStr, "test info message") {
		t.Error("Log file should contain 'test info message'")
	}
	if strings.Contains(contentStr, "hidden debug message") {
		t.Error("Debug message should be filtered at info level")
	}
	if !strings.Contains(contentStr, `"widget":"filings"`) {
		t.Error("Log file should contain widget context")
	}
	if !strings.Contains(contentStr, `"resource":"data/filing_forms.csv"`) {
		t.Error("Log file should contain resource context")
	}
}

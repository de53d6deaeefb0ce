package config

import (
	"strings"
	"testing"
)

func TestValidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Data.Environment = EnvProduction

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected no validation errors, got: %v", err)
	}
}

func TestValidationFailures(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{
			name:      "unknown environment",
			mutate:    func(c *Config) { c.Data.Environment = "staging" },
			wantField: "data.environment",
		},
		{
			name:      "missing base path",
			mutate:    func(c *Config) { c.Data.BasePaths[EnvDevelopment] = "" },
			wantField: "data.base_paths.development",
		},
		{
			name:      "missing filings file",
			mutate:    func(c *Config) { c.Data.FilingsFile = "" },
			wantField: "data.filings_file",
		},
		{
			name:      "missing filetypes file",
			mutate:    func(c *Config) { c.Data.FiletypesFile = "" },
			wantField: "data.filetypes_file",
		},
		{
			name:      "negative timeout",
			mutate:    func(c *Config) { c.Data.TimeoutSeconds = -1 },
			wantField: "data.timeout_seconds",
		},
		{
			name:      "zero top n",
			mutate:    func(c *Config) { c.Chart.TopN = 0 },
			wantField: "chart.top_n",
		},
		{
			name:      "tiny label width",
			mutate:    func(c *Config) { c.Chart.LabelWidth = 1 },
			wantField: "chart.label_width",
		},
		{
			name:      "bar floor above 100",
			mutate:    func(c *Config) { c.Chart.BarFloorPercent = 120 },
			wantField: "chart.bar_floor_percent",
		},
		{
			name:      "negative pie threshold",
			mutate:    func(c *Config) { c.Chart.PieLabelThreshold = -1 },
			wantField: "chart.pie_label_threshold",
		},
		{
			name:      "zero pie threshold",
			mutate:    func(c *Config) { c.Chart.PieLabelThreshold = 0 },
			wantField: "chart.pie_label_threshold",
		},
		{
			name:      "zero bar width",
			mutate:    func(c *Config) { c.Chart.BarWidth = 0 },
			wantField: "chart.bar_width",
		},
		{
			name:      "negative tolerance",
			mutate:    func(c *Config) { c.Chart.PercentageTolerance = -0.5 },
			wantField: "chart.percentage_tolerance",
		},
		{
			name:      "bad locale",
			mutate:    func(c *Config) { c.Chart.Locale = "not a locale!" },
			wantField: "chart.locale",
		},
		{
			name:      "bad log level",
			mutate:    func(c *Config) { c.Logging.Level = "verbose" },
			wantField: "logging.level",
		},
		{
			name:      "bad log format",
			mutate:    func(c *Config) { c.Logging.Format = "xml" },
			wantField: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}

			verrs, ok := err.(ValidationErrors)
			if !ok {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}

			found := false
			for _, e := range verrs {
				if e.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error for field %s, got: %v", tt.wantField, err)
			}
		})
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "chart.top_n", Message: "top_n must be positive"},
		{Field: "logging.level", Message: "bad level"},
	}

	msg := errs.Error()
	if !strings.HasPrefix(msg, "validation failed:") {
		t.Errorf("unexpected prefix: %s", msg)
	}
	if !strings.Contains(msg, "chart.top_n: top_n must be positive") {
		t.Errorf("missing first error: %s", msg)
	}
	if !strings.Contains(msg, "logging.level: bad level") {
		t.Errorf("missing second error: %s", msg)
	}

	if (ValidationErrors{}).Error() != "" {
		t.Error("empty ValidationErrors should render as empty string")
	}
}

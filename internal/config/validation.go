package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateData()...)
	errors = append(errors, c.validateChart()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateData() ValidationErrors {
	var errors ValidationErrors

	validEnvs := map[string]bool{EnvDevelopment: true, EnvProduction: true}
	if !validEnvs[c.Data.Environment] {
		errors = append(errors, ValidationError{
			Field:   "data.environment",
			Message: "environment must be 'development' or 'production'",
		})
	} else if c.Data.BasePath() == "" {
		errors = append(errors, ValidationError{
			Field:   "data.base_paths." + c.Data.Environment,
			Message: "base path is required for the selected environment",
		})
	}

	if c.Data.FilingsFile == "" {
		errors = append(errors, ValidationError{
			Field:   "data.filings_file",
			Message: "filings_file is required",
		})
	}

	if c.Data.FiletypesFile == "" {
		errors = append(errors, ValidationError{
			Field:   "data.filetypes_file",
			Message: "filetypes_file is required",
		})
	}

	if c.Data.TimeoutSeconds < 0 {
		errors = append(errors, ValidationError{
			Field:   "data.timeout_seconds",
			Message: "timeout_seconds cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateChart() ValidationErrors {
	var errors ValidationErrors

	if c.Chart.TopN <= 0 {
		errors = append(errors, ValidationError{
			Field:   "chart.top_n",
			Message: "top_n must be positive",
		})
	}

	if c.Chart.LabelWidth < 2 {
		errors = append(errors, ValidationError{
			Field:   "chart.label_width",
			Message: "label_width must be at least 2",
		})
	}

	if c.Chart.BarFloorPercent < 0 || c.Chart.BarFloorPercent > 100 {
		errors = append(errors, ValidationError{
			Field:   "chart.bar_floor_percent",
			Message: "bar_floor_percent must be between 0 and 100",
		})
	}

	if c.Chart.PieLabelThreshold <= 0 || c.Chart.PieLabelThreshold > 100 {
		errors = append(errors, ValidationError{
			Field:   "chart.pie_label_threshold",
			Message: "pie_label_threshold must be greater than 0 and at most 100",
		})
	}

	if c.Chart.BarWidth <= 0 {
		errors = append(errors, ValidationError{
			Field:   "chart.bar_width",
			Message: "bar_width must be positive",
		})
	}

	if c.Chart.PercentageTolerance < 0 {
		errors = append(errors, ValidationError{
			Field:   "chart.percentage_tolerance",
			Message: "percentage_tolerance cannot be negative",
		})
	}

	if _, err := language.Parse(c.Chart.Locale); err != nil {
		errors = append(errors, ValidationError{
			Field:   "chart.locale",
			Message: fmt.Sprintf("locale %q is not a valid BCP 47 tag", c.Chart.Locale),
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}

// Package config provides configuration structures and loading for edgarviz.
package config

// Environment names used to pick the data base path.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config represents the complete application configuration.
type Config struct {
	Data    DataConfig    `yaml:"data" mapstructure:"data"`
	Chart   ChartConfig   `yaml:"chart" mapstructure:"chart"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// DataConfig locates the CSV resources the widgets load.
type DataConfig struct {
	Environment    string            `yaml:"environment" mapstructure:"environment"`       // development or production
	BasePaths      map[string]string `yaml:"base_paths" mapstructure:"base_paths"`         // environment -> base path or URL
	DataDir        string            `yaml:"data_dir" mapstructure:"data_dir"`             // directory under the base path
	FilingsFile    string            `yaml:"filings_file" mapstructure:"filings_file"`     // filing frequency CSV
	FiletypesFile  string            `yaml:"filetypes_file" mapstructure:"filetypes_file"` // extension breakdown CSV
	TimeoutSeconds int               `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// ChartConfig holds presentation knobs shared by the chart view models.
type ChartConfig struct {
	TopN                int     `yaml:"top_n" mapstructure:"top_n"`
	LabelWidth          int     `yaml:"label_width" mapstructure:"label_width"`
	BarFloorPercent     float64 `yaml:"bar_floor_percent" mapstructure:"bar_floor_percent"`
	PieLabelThreshold   float64 `yaml:"pie_label_threshold" mapstructure:"pie_label_threshold"`
	Locale              string  `yaml:"locale" mapstructure:"locale"`
	BarWidth            int     `yaml:"bar_width" mapstructure:"bar_width"` // terminal cells for a 100% bar
	PercentageTolerance float64 `yaml:"percentage_tolerance" mapstructure:"percentage_tolerance"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Environment: EnvDevelopment,
			BasePaths: map[string]string{
				EnvDevelopment: "./public/",
				EnvProduction:  "/EdgarBlog/",
			},
			DataDir:        "data",
			FilingsFile:    "filing_forms.csv",
			FiletypesFile:  "edgar_filetypes_breakdown.csv",
			TimeoutSeconds: 10,
		},
		Chart: ChartConfig{
			TopN:                10,
			LabelWidth:          16,
			BarFloorPercent:     2,
			PieLabelThreshold:   5,
			Locale:              "en",
			BarWidth:            40,
			PercentageTolerance: 1.0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// BasePath returns the base path for the configured environment.
func (d *DataConfig) BasePath() string {
	return d.BasePaths[d.Environment]
}

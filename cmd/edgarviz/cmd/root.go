package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/edgarviz/internal/lifecycle"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile     string
	logLevel    string
	logFormat   string
	environment string
	basePath    string
	noColor     bool
)

var rootCmd = &cobra.Command{
	Use:   "edgarviz",
	Short: "SEC EDGAR filing data visualizations for the terminal",
	Long: `edgarviz loads the EDGAR filing summaries and draws the same views the
EDGAR research page shows, in the terminal.

Features:
  - Proportional bar list of filing-type frequency, by form group
  - File-extension breakdown per year and form type (pie or bar)
  - Interactive tree-search walkthrough
  - SVG/PNG chart export`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command with a context cancelled on SIGINT/SIGTERM.
func Execute() {
	ctx, stop := lifecycle.WithSignals(context.Background())
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "edgarviz.yaml",
		"Path to configuration file (optional)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Data location overrides
	rootCmd.PersistentFlags().StringVar(&environment, "env", "",
		"Override environment (development, production)")
	rootCmd.PersistentFlags().StringVar(&basePath, "base-path", "",
		"Override the data base path or URL for the selected environment")

	// Output
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable coloured output")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel    string
	LogFormat   string
	Environment string
	BasePath    string
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:    logLevel,
		LogFormat:   logFormat,
		Environment: environment,
		BasePath:    basePath,
	}
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/edgarviz/internal/config"
	"github.com/dbsmedya/edgarviz/internal/loader"
	"github.com/dbsmedya/edgarviz/internal/logger"
	"github.com/dbsmedya/edgarviz/internal/render"
	"github.com/dbsmedya/edgarviz/internal/viewmodel"
	"github.com/dbsmedya/edgarviz/internal/widget"
)

// outputWriter is used for printing output, can be overridden in tests
var outputWriter io.Writer = os.Stdout

// setOutputWriter sets the output writer (used for testing)
func setOutputWriter(w io.Writer) {
	outputWriter = w
}

// resetOutputWriter resets output to stdout (used for testing)
func resetOutputWriter() {
	outputWriter = os.Stdout
}

// app bundles what every data command needs.
type app struct {
	cfg    *config.Config
	log    *logger.Logger
	loader *loader.Loader
	format *viewmodel.Formatter
}

// setupApp loads and validates the configuration, applies CLI overrides
// and builds the logger and loader.
func setupApp() (*app, error) {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := config.LoadOptional(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.Environment, overrides.BasePath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	timeout := time.Duration(cfg.Data.TimeoutSeconds) * time.Second
	return &app{
		cfg:    cfg,
		log:    log,
		loader: loader.New(timeout, log),
		format: viewmodel.NewFormatter(cfg.Chart.Locale),
	}, nil
}

// close flushes buffered log entries.
func (a *app) close() {
	_ = a.log.Sync()
}

func (a *app) filingsWidget() *widget.FilingsWidget {
	return widget.NewFilings(a.loader, loader.FilingsLocator(&a.cfg.Data), widget.FilingsOptions{
		TopN: a.cfg.Chart.TopN,
		Bars: viewmodel.BarOptions{
			LabelWidth:   a.cfg.Chart.LabelWidth,
			FloorPercent: a.cfg.Chart.BarFloorPercent,
		},
		Formatter: a.format,
	}, a.log)
}

func (a *app) filetypesWidget(kind viewmodel.ChartKind) *widget.FiletypesWidget {
	return widget.NewFiletypes(a.loader, loader.FiletypesLocator(&a.cfg.Data), widget.FiletypesOptions{
		Kind:           kind,
		LabelThreshold: a.cfg.Chart.PieLabelThreshold,
		Formatter:      a.format,
	}, a.log)
}

func (a *app) renderOptions() render.Options {
	return render.Options{
		BarWidth:   a.cfg.Chart.BarWidth,
		LabelWidth: a.cfg.Chart.LabelWidth,
		Color:      !noColor && color.SupportColor(),
	}
}

// commandContext returns the command's context, or a background context
// when the command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// printHeader prints a formatted header
func printHeader(format string, args ...interface{}) {
	title := fmt.Sprintf(format, args...)
	width := len(title) + 4
	fmt.Fprintln(outputWriter, strings.Repeat("=", width))
	fmt.Fprintf(outputWriter, "  %s\n", title)
	fmt.Fprintln(outputWriter, strings.Repeat("=", width))
}

// printSection prints a section header
func printSection(title string) {
	fmt.Fprintf(outputWriter, "[%s]\n", title)
	fmt.Fprintln(outputWriter, strings.Repeat("-", len(title)+2))
}

package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dbsmedya/edgarviz/internal/viewmodel"
)

// ErrNothingToDraw is returned when exporting a chart without data.
var ErrNothingToDraw = errors.New("nothing to draw")

// ImageFormat is an export file format.
type ImageFormat string

const (
	FormatSVG ImageFormat = "svg"
	FormatPNG ImageFormat = "png"
)

// ParseImageFormat validates an export format name.
func ParseImageFormat(s string) (ImageFormat, error) {
	switch ImageFormat(strings.ToLower(s)) {
	case FormatSVG:
		return FormatSVG, nil
	case FormatPNG:
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("unknown image format %q (want svg or png)", s)
	}
}

func (f ImageFormat) provider() chart.RendererProvider {
	if f == FormatPNG {
		return chart.PNG
	}
	return chart.SVG
}

const (
	exportHeight     = 512
	exportMinWidth   = 1024
	exportBarWidth   = 40
	exportBarSpacing = 24
	exportMargin     = 160
)

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// ExportBars draws the bar list as a bar chart.
func ExportBars(w io.Writer, entries []viewmodel.BarEntry, format ImageFormat) error {
	var total, top int64
	for _, e := range entries {
		total += e.Value
		top = max(top, e.Value)
	}
	if total <= 0 {
		return ErrNothingToDraw
	}

	bars := make([]chart.Value, 0, len(entries))
	for _, e := range entries {
		bars = append(bars, chart.Value{
			Label: e.Label,
			Value: float64(e.Value),
			Style: chart.Style{
				FillColor:   hexColor(barColor),
				StrokeColor: hexColor(barColor),
			},
		})
	}

	bc := chart.BarChart{
		Title:      "Filing frequency",
		Width:      chartWidth(len(bars)),
		Height:     exportHeight,
		BarWidth:   exportBarWidth,
		BarSpacing: exportBarSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis:      valueAxis(float64(top)),
		Bars:       bars,
	}
	if err := bc.Render(format.provider(), w); err != nil {
		return fmt.Errorf("failed to render bar chart: %w", err)
	}
	return nil
}

// ExportBreakdown draws the extension breakdown as a pie or bar chart,
// following the view's kind. Pie slices at or below the label threshold
// are drawn without a label.
func ExportBreakdown(w io.Writer, view viewmodel.BreakdownView, title string, format ImageFormat) error {
	if view.Empty() || view.Total <= 0 {
		return ErrNothingToDraw
	}

	values := make([]chart.Value, 0, len(view.Entries))
	var top float64
	for _, e := range view.Entries {
		if view.Kind == viewmodel.ChartPie && e.Value <= 0 {
			continue
		}
		top = max(top, float64(e.Value))
		label := e.Name
		if view.Kind == viewmodel.ChartPie && !e.ShowLabel {
			label = ""
		}
		values = append(values, chart.Value{
			Label: label,
			Value: float64(e.Value),
			Style: chart.Style{
				FillColor:   hexColor(e.Color),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 1,
			},
		})
	}

	var err error
	if view.Kind == viewmodel.ChartBar {
		bc := chart.BarChart{
			Title:      title,
			Width:      chartWidth(len(values)),
			Height:     exportHeight,
			BarWidth:   exportBarWidth,
			BarSpacing: exportBarSpacing,
			Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
			YAxis:      valueAxis(top),
			Bars:       values,
		}
		err = bc.Render(format.provider(), w)
	} else {
		pc := chart.PieChart{
			Title:  title,
			Width:  exportHeight,
			Height: exportHeight,
			Values: values,
		}
		// A lone slice is drawn as a full circle with the slice style.
		if len(values) == 1 {
			pc.SliceStyle = values[0].Style
		}
		err = pc.Render(format.provider(), w)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s chart: %w", view.Kind, err)
	}
	return nil
}

// valueAxis pins the y range to [0, top]. go-chart cannot derive a range
// when every bar has the same value.
func valueAxis(top float64) chart.YAxis {
	return chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: top}}
}

func chartWidth(bars int) int {
	w := bars*(exportBarWidth+exportBarSpacing) + exportMargin
	if w < exportMinWidth {
		return exportMinWidth
	}
	return w
}

package widget

import (
	"context"
	"sync"

	"github.com/dbsmedya/edgarviz/internal/grouping"
	"github.com/dbsmedya/edgarviz/internal/logger"
	"github.com/dbsmedya/edgarviz/internal/types"
	"github.com/dbsmedya/edgarviz/internal/viewmodel"
)

// FiletypesOptions configures a FiletypesWidget.
type FiletypesOptions struct {
	Kind viewmodel.ChartKind
	// LabelThreshold defaults to viewmodel.DefaultLabelThreshold when zero.
	// A negative threshold labels every slice.
	LabelThreshold float64
	Formatter      *viewmodel.Formatter
}

// FiletypesWidget is the file-extension breakdown per (year, form type).
type FiletypesWidget struct {
	src     FiletypesSource
	locator string
	opts    FiletypesOptions
	log     *logger.Logger

	mu       sync.Mutex
	state    State
	records  []types.FiletypeRecord
	years    []int
	forms    []string
	selected types.BreakdownKey
	kind     viewmodel.ChartKind
}

// NewFiletypes creates a widget that loads from locator via src.
func NewFiletypes(src FiletypesSource, locator string, opts FiletypesOptions, log *logger.Logger) *FiletypesWidget {
	if opts.Kind == "" {
		opts.Kind = viewmodel.ChartPie
	}
	if opts.LabelThreshold == 0 {
		opts.LabelThreshold = viewmodel.DefaultLabelThreshold
	}
	if opts.Formatter == nil {
		opts.Formatter = viewmodel.NewFormatter("en")
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &FiletypesWidget{
		src:     src,
		locator: locator,
		opts:    opts,
		log:     log.WithWidget("filetypes"),
		kind:    opts.Kind,
	}
}

// Load fetches the dataset, derives the year and form-type choices and
// selects the newest year with the first form type. Explicit selections
// made before the load completes are kept. Error and close handling
// follow FilingsWidget.Load.
func (w *FiletypesWidget) Load(ctx context.Context) error {
	records, err := w.src.LoadFiletypes(ctx, w.locator)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == StateClosed {
		w.log.Debugw("Dropped late load after close")
		return nil
	}
	if err != nil {
		w.state = StateFailed
		w.log.Warnw("Failed to load file types", "error", err)
		return err
	}

	w.records = records
	w.years = grouping.Years(records)
	w.forms = grouping.FormTypes(records)
	if def, ok := grouping.DefaultSelection(records); ok {
		if w.selected.Year == 0 {
			w.selected.Year = def.Year
		}
		if w.selected.FormType == "" {
			w.selected.FormType = def.FormType
		}
	}
	w.state = StateReady
	w.log.Debugw("Loaded file types",
		"records", len(records),
		"years", len(w.years),
		"forms", len(w.forms),
	)
	return nil
}

// LoadAsync runs Load in the background.
func (w *FiletypesWidget) LoadAsync(ctx context.Context) <-chan error {
	return loadAsync(ctx, w.Load)
}

// Close discards the dataset. Later loads are ignored.
func (w *FiletypesWidget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = StateClosed
	w.records = nil
	w.years = nil
	w.forms = nil
}

// State returns the dataset state.
func (w *FiletypesWidget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// SelectYear changes the selected year. A year with no rows yields an
// empty view, not an error.
func (w *FiletypesWidget) SelectYear(year int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.selected.Year = year
}

// SelectForm changes the selected form type.
func (w *FiletypesWidget) SelectForm(formType string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.selected.FormType = formType
}

// SetChartKind toggles between the pie and bar renditions.
func (w *FiletypesWidget) SetChartKind(kind viewmodel.ChartKind) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.kind = kind
}

// Selection returns the selected (year, form type).
func (w *FiletypesWidget) Selection() types.BreakdownKey {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selected
}

// Years returns the available years, newest first.
func (w *FiletypesWidget) Years() []int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]int(nil), w.years...)
}

// FormTypes returns the available form types in ascending order.
func (w *FiletypesWidget) FormTypes() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.forms...)
}

// Records returns a copy of the loaded dataset.
func (w *FiletypesWidget) Records() []types.FiletypeRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]types.FiletypeRecord(nil), w.records...)
}

// Rows returns the filtered rows for the current selection.
func (w *FiletypesWidget) Rows() []grouping.BreakdownRow {
	w.mu.Lock()
	defer w.mu.Unlock()
	return grouping.FilterBreakdown(w.records, w.selected.Year, w.selected.FormType)
}

// View builds the chart for the current selection and chart kind.
func (w *FiletypesWidget) View() viewmodel.BreakdownView {
	w.mu.Lock()
	defer w.mu.Unlock()
	rows := grouping.FilterBreakdown(w.records, w.selected.Year, w.selected.FormType)
	return viewmodel.BuildBreakdown(rows, w.kind, w.opts.LabelThreshold, w.opts.Formatter)
}

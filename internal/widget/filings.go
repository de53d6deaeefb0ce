package widget

import (
	"context"
	"fmt"
	"sync"

	"github.com/dbsmedya/edgarviz/internal/grouping"
	"github.com/dbsmedya/edgarviz/internal/logger"
	"github.com/dbsmedya/edgarviz/internal/types"
	"github.com/dbsmedya/edgarviz/internal/viewmodel"
)

// FilingsOptions configures a FilingsWidget.
type FilingsOptions struct {
	TopN      int
	Bars      viewmodel.BarOptions
	Formatter *viewmodel.Formatter
}

// FilingsWidget is the proportional bar list of filing-type frequency.
type FilingsWidget struct {
	src     FilingsSource
	locator string
	opts    FilingsOptions
	log     *logger.Logger

	mu        sync.Mutex
	state     State
	records   []types.FilingRecord
	groups    grouping.Groups
	selection viewmodel.Selection
}

// NewFilings creates a widget that loads from locator via src. It starts
// empty with the overall top-N selected.
func NewFilings(src FilingsSource, locator string, opts FilingsOptions, log *logger.Logger) *FilingsWidget {
	if opts.TopN <= 0 {
		opts.TopN = 10
	}
	if opts.Bars == (viewmodel.BarOptions{}) {
		opts.Bars = viewmodel.DefaultBarOptions()
	}
	if opts.Formatter == nil {
		opts.Formatter = viewmodel.NewFormatter("en")
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &FilingsWidget{
		src:       src,
		locator:   locator,
		opts:      opts,
		log:       log.WithWidget("filings"),
		selection: viewmodel.Top(opts.TopN),
	}
}

// Load fetches the dataset and installs it. A load error is logged and
// returned; the widget stays empty. If the widget was closed while the
// fetch was in flight the result is discarded and nil is returned.
func (w *FilingsWidget) Load(ctx context.Context) error {
	records, err := w.src.LoadFilings(ctx, w.locator)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == StateClosed {
		w.log.Debugw("Dropped late load after close")
		return nil
	}
	if err != nil {
		w.state = StateFailed
		w.log.Warnw("Failed to load filings", "error", err)
		return err
	}

	w.records = records
	w.groups = grouping.GroupFilings(records)
	w.state = StateReady
	w.log.Debugw("Loaded filings", "records", len(records))
	return nil
}

// LoadAsync runs Load in the background.
func (w *FilingsWidget) LoadAsync(ctx context.Context) <-chan error {
	return loadAsync(ctx, w.Load)
}

// Close discards the dataset. Later loads are ignored.
func (w *FilingsWidget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = StateClosed
	w.records = nil
	w.groups = nil
}

// State returns the dataset state.
func (w *FilingsWidget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Select switches the bar list to a form group, or to the overall top N
// when name is viewmodel.TopSelection.
func (w *FilingsWidget) Select(name string) error {
	var sel viewmodel.Selection
	switch {
	case name == viewmodel.TopSelection:
		sel = viewmodel.Top(w.opts.TopN)
	case grouping.IsGroup(name):
		sel = viewmodel.Named(name)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGroup, name)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.selection = sel
	return nil
}

// Selection returns the active selection.
func (w *FilingsWidget) Selection() viewmodel.Selection {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selection
}

// Records returns a copy of the loaded dataset.
func (w *FilingsWidget) Records() []types.FilingRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]types.FilingRecord, len(w.records))
	copy(out, w.records)
	return out
}

// GroupSizes returns the member count of every form group in fixed order.
// Every group is listed even before the dataset is loaded.
func (w *FilingsWidget) GroupSizes() []grouping.GroupSize {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.groups == nil {
		return grouping.Sizes(grouping.GroupFilings(nil))
	}
	return grouping.Sizes(w.groups)
}

// Bars builds the bar list for the active selection. It is empty until the
// dataset is loaded.
func (w *FilingsWidget) Bars() []viewmodel.BarEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	return viewmodel.BuildBars(w.records, w.groups, w.selection, w.opts.Bars, w.opts.Formatter)
}

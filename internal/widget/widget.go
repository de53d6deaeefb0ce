// Package widget holds the per-widget state of the filings bar list and the
// file-extension breakdown. Each widget owns its dataset and selection; a
// load that completes after Close is dropped.
package widget

import (
	"context"
	"errors"

	"github.com/dbsmedya/edgarviz/internal/types"
)

// ErrUnknownGroup is returned when selecting a group that does not exist.
var ErrUnknownGroup = errors.New("unknown form group")

// FilingsSource loads the filing-frequency dataset.
type FilingsSource interface {
	LoadFilings(ctx context.Context, locator string) ([]types.FilingRecord, error)
}

// FiletypesSource loads the file-extension breakdown dataset.
type FiletypesSource interface {
	LoadFiletypes(ctx context.Context, locator string) ([]types.FiletypeRecord, error)
}

// State of a widget's dataset.
type State int

const (
	StatePending State = iota
	StateReady
	StateFailed
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	case StateClosed:
		return "closed"
	default:
		return "pending"
	}
}

// loadAsync runs load on its own goroutine and reports the result on the
// returned channel, which is closed afterwards.
func loadAsync(ctx context.Context, load func(context.Context) error) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- load(ctx)
	}()
	return done
}

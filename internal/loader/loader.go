// Package loader fetches delimited-text resources and decodes them into
// typed EDGAR records.
package loader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
	"unicode/utf8"

	"github.com/dbsmedya/edgarviz/internal/logger"
	"github.com/dbsmedya/edgarviz/internal/types"
)

// Loader reads CSV resources from http(s) URLs or local paths.
// Every call re-fetches; there is no cache and no retry.
type Loader struct {
	client *http.Client
	log    *logger.Logger
}

// New creates a Loader. A zero timeout means no client-side timeout.
func New(timeout time.Duration, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.NewNop()
	}
	return &Loader{
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// NewWithClient creates a Loader that uses client for remote resources.
func NewWithClient(client *http.Client, log *logger.Logger) *Loader {
	l := New(0, log)
	if client != nil {
		l.client = client
	}
	return l
}

// Fetch returns the body of the resource at locator as UTF-8 text.
func (l *Loader) Fetch(ctx context.Context, locator string) ([]byte, error) {
	var body []byte
	var err error

	if IsRemote(locator) {
		body, err = l.fetchRemote(ctx, locator)
	} else {
		body, err = l.fetchFile(ctx, locator)
	}
	if err != nil {
		return nil, newLoadError(locator, err)
	}

	if !utf8.Valid(body) {
		return nil, newLoadError(locator, ErrNotText)
	}

	return body, nil
}

func (l *Loader) fetchRemote(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrUnreachable, err)
	}
	return body, nil
}

func (l *Loader) fetchFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return body, nil
}

// LoadTable fetches and parses the resource at locator.
func (l *Loader) LoadTable(ctx context.Context, locator string) (*types.Table, error) {
	log := l.log.WithResource(locator)
	start := time.Now()

	body, err := l.Fetch(ctx, locator)
	if err != nil {
		return nil, err
	}

	tbl, err := Parse(bytes.NewReader(body), log)
	if err != nil {
		return nil, newLoadError(locator, err)
	}

	log.Debugw("Parsed resource",
		"rows", len(tbl.Rows),
		"skipped", tbl.Stats.SkippedRows,
		"blank", tbl.Stats.BlankLines,
		"duration", time.Since(start),
	)
	return tbl, nil
}

// LoadFilings loads the filing-frequency dataset sorted by TotalCount descending.
func (l *Loader) LoadFilings(ctx context.Context, locator string) ([]types.FilingRecord, error) {
	tbl, err := l.LoadTable(ctx, locator)
	if err != nil {
		return nil, err
	}

	records, skipped, err := DecodeFilings(tbl)
	if err != nil {
		return nil, newLoadError(locator, err)
	}
	if skipped > 0 {
		l.log.WithResource(locator).Warnw("Skipped rows with invalid values", "count", skipped)
	}
	return records, nil
}

// LoadFiletypes loads the file-extension breakdown dataset in file order.
func (l *Loader) LoadFiletypes(ctx context.Context, locator string) ([]types.FiletypeRecord, error) {
	tbl, err := l.LoadTable(ctx, locator)
	if err != nil {
		return nil, err
	}

	records, skipped, err := DecodeFiletypes(tbl)
	if err != nil {
		return nil, newLoadError(locator, err)
	}
	if skipped > 0 {
		l.log.WithResource(locator).Warnw("Skipped rows with invalid values", "count", skipped)
	}
	return records, nil
}

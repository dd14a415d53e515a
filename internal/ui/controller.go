// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ui holds the view state of the paper search page: the DOI input,
// the loading flag, the last result, and the diagnostic log buffer. A
// Controller is driven by user actions (SubmitSearch, GoBack) and by the
// outcome of the single request each search issues.
package ui

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/pdiddy/accesspaper/internal/logger"
	"github.com/pdiddy/accesspaper/internal/search"
	"github.com/pdiddy/accesspaper/pkg/types"
)

// User-facing messages.
const (
	MsgEmptyDOI      = "Please enter a DOI."
	MsgSearchFailed  = "Search failed: "
	LogErrorPrefix   = "Error: "
	LogNoBackendLogs = "No detailed logs returned from backend."
)

// ErrSearchInProgress is returned when a search is submitted while another
// is still loading. The page disables the button in that state.
var ErrSearchInProgress = errors.New("search already in progress")

// ErrNoResult is reported when a backend returns neither a result nor an error.
var ErrNoResult = errors.New("search backend returned no result")

// ErrEmptyQuery is returned after the user was alerted about an empty DOI.
var ErrEmptyQuery = errors.New("empty DOI")

// Controller owns the view state of one user's page.
type Controller struct {
	backend search.Backend
	alerts  Alerter
	log     logger.Logger

	mu      sync.Mutex
	state   ViewState
	query   string
	loading bool
	result  *types.SearchResult
	logs    []string
}

// NewController returns a controller in the input state.
func NewController(backend search.Backend, alerts Alerter, log logger.Logger) *Controller {
	if log == nil {
		log = logger.NewNop()
	}
	return &Controller{
		backend: backend,
		alerts:  alerts,
		log:     log,
		state:   StateInput,
	}
}

// SetQuery records the current text of the DOI input.
func (c *Controller) SetQuery(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = q
}

// SubmitSearch runs one search for query.
//
// An empty or whitespace-only query raises an alert and returns ErrEmptyQuery
// without touching the network. Otherwise the previous result is cleared and
// exactly one request is sent. On success the log buffer is replaced by the
// backend's logs (or a fallback line is appended) and the view moves to
// results. On failure the user is alerted, an error line is appended to the
// log buffer, and the view stays on input. The returned error is the request
// failure, for callers that need an exit status.
func (c *Controller) SubmitSearch(ctx context.Context, query string) error {
	doi := strings.TrimSpace(query)

	c.mu.Lock()
	c.query = query
	if doi == "" {
		c.mu.Unlock()
		c.alert(MsgEmptyDOI)
		return ErrEmptyQuery
	}
	if c.loading {
		c.mu.Unlock()
		return ErrSearchInProgress
	}
	c.loading = true
	c.result = nil
	c.mu.Unlock()

	c.log.Debug("search started", logger.String("doi", doi))
	result, err := c.backend.Search(ctx, doi)
	if err == nil && result == nil {
		err = ErrNoResult
	}

	c.mu.Lock()
	c.loading = false
	if err != nil {
		c.logs = append(c.logs, LogErrorPrefix+err.Error())
		c.mu.Unlock()

		c.log.Warn("search failed", logger.String("doi", doi), logger.Err(err))
		c.alert(MsgSearchFailed + err.Error())
		return err
	}

	if result.HasLogs {
		c.logs = append([]string(nil), result.Logs...)
	} else {
		c.logs = append(c.logs, LogNoBackendLogs)
	}
	c.result = result
	c.state = StateResults
	c.mu.Unlock()

	c.log.Info("search succeeded",
		logger.String("doi", doi),
		logger.Bool("pdf", result.PDFLink != ""),
		logger.String("source", result.Source),
	)
	return nil
}

// GoBack returns to the input view and clears the query, result, and logs.
func (c *Controller) GoBack() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateInput
	c.query = ""
	c.result = nil
	c.logs = nil
}

// View returns a snapshot of the current state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View{
		State:   c.state,
		Query:   c.query,
		Loading: c.loading,
		Result:  c.result,
		Logs:    append([]string(nil), c.logs...),
	}
}

func (c *Controller) alert(msg string) {
	if c.alerts != nil {
		c.alerts.Alert(msg)
	}
}

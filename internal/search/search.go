// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search sends a DOI to the remote search backend and returns the
// paper metadata it reports.
package search

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/pdiddy/accesspaper/internal/httputil"
	"github.com/pdiddy/accesspaper/pkg/types"
)

// searchPath is appended to the configured backend URL.
const searchPath = "/api/search"

// ErrEmptyDOI is returned when the DOI is empty after trimming.
var ErrEmptyDOI = errors.New("DOI is empty")

// Backend resolves one DOI to a search result. The UI controller depends on
// this interface so tests can substitute a fake.
type Backend interface {
	Search(ctx context.Context, doi string) (*types.SearchResult, error)
}

// Client is the HTTP Backend for the search service.
type Client struct {
	http      *http.Client
	endpoint  string
	userAgent string
}

// NewClient builds a Client from cfg. When httpClient is nil a client with
// cfg.Timeout is created; a zero timeout means the request waits for the
// backend indefinitely.
func NewClient(httpClient *http.Client, cfg types.SearchConfig) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		http:      httpClient,
		endpoint:  strings.TrimRight(cfg.BackendURL, "/") + searchPath,
		userAgent: cfg.UserAgent,
	}
}

// Endpoint returns the full search URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Search posts {"doi": doi} once and decodes the response. A non-2xx status
// is returned as *httputil.StatusError; it is never retried.
func (c *Client) Search(ctx context.Context, doi string) (*types.SearchResult, error) {
	doi = strings.TrimSpace(doi)
	if doi == "" {
		return nil, ErrEmptyDOI
	}

	var result types.SearchResult
	if err := httputil.PostJSON(ctx, c.http, c.endpoint, c.userAgent, types.SearchRequest{DOI: doi}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

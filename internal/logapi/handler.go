// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logapi serves the log collection as JSON.
package logapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/accesspaper/internal/logger"
	"github.com/pdiddy/accesspaper/internal/logstore"
	"github.com/pdiddy/accesspaper/internal/metrics"
	"github.com/pdiddy/accesspaper/pkg/types"
)

// Response is the success body: every entry, newest first.
type Response struct {
	Logs []types.LogEntry `json:"logs"`
}

// ErrorResponse is the failure body. Error carries the underlying message as is.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler reads the whole log collection on every request. It holds no
// cache and takes no parameters.
type Handler struct {
	store   logstore.Store
	metrics *metrics.Metrics
	log     logger.Logger
}

// NewHandler returns a Handler over store. m may be nil.
func NewHandler(store logstore.Store, m *metrics.Metrics, log logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{store: store, metrics: m, log: log}
}

// List responds 200 {"logs": [...]} or 500 {"error": "..."}.
func (h *Handler) List(c *gin.Context) {
	entries, err := h.store.List(c.Request.Context())
	if err != nil {
		h.log.Error("listing logs failed", logger.Err(err))
		h.count(metrics.OutcomeFailure, 0)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if entries == nil {
		entries = []types.LogEntry{}
	}
	h.count(metrics.OutcomeSuccess, len(entries))
	c.JSON(http.StatusOK, Response{Logs: entries})
}

func (h *Handler) count(outcome string, n int) {
	if h.metrics == nil {
		return
	}
	h.metrics.LogRequests.WithLabelValues(outcome).Inc()
	if outcome == metrics.OutcomeSuccess {
		h.metrics.LogEntries.Observe(float64(n))
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/accesspaper/internal/ui"
	"github.com/pdiddy/accesspaper/pkg/types"
)

func TestParseLogFile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		entries, err := parseLogFile([]byte(`
- timestamp: "2025-03-01T09:00:00Z"
  page: /
- timestamp: 2025-03-01T10:00:00.5Z
  page: /about
`))
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "2025-03-01T09:00:00.000Z", types.FormatTimestamp(entries[0].Timestamp))
		assert.Equal(t, "/", entries[0].Fields["page"])
		assert.Equal(t, "2025-03-01T10:00:00.500Z", types.FormatTimestamp(entries[1].Timestamp))
	})

	t.Run("json", func(t *testing.T) {
		entries, err := parseLogFile([]byte(`[{"timestamp":"2025-03-01T09:00:00Z","ok":true}]`))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, true, entries[0].Fields["ok"])
	})

	t.Run("missing timestamp", func(t *testing.T) {
		_, err := parseLogFile([]byte(`[{"page":"/"}]`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "record 0")
	})
}

func TestWriteLogs(t *testing.T) {
	entries := []types.LogEntry{{
		Timestamp: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		Fields:    map[string]any{"page": "/"},
	}}

	var buf bytes.Buffer
	require.NoError(t, writeLogs(&buf, entries, "json"))
	assert.JSONEq(t, `{"logs":[{"page":"/","timestamp":"2025-03-01T09:00:00.000Z"}]}`, buf.String())

	buf.Reset()
	require.NoError(t, writeLogs(&buf, nil, ""))
	assert.JSONEq(t, `{"logs":[]}`, buf.String())

	buf.Reset()
	require.NoError(t, writeLogs(&buf, entries, "yaml"))
	assert.Contains(t, buf.String(), "logs:")
	assert.Contains(t, buf.String(), "page: /")

	assert.Error(t, writeLogs(&buf, entries, "csv"))
}

func TestPrintResult(t *testing.T) {
	view := ui.View{State: ui.StateResults, Result: &types.SearchResult{Source: "crossref"}}

	var buf bytes.Buffer
	require.NoError(t, printResult(&buf, view, false))
	assert.Equal(t, "Paper Details\nSource: crossref\n", buf.String())

	buf.Reset()
	require.NoError(t, printResult(&buf, view, true))
	assert.JSONEq(t, `{"source":"crossref"}`, buf.String())
}

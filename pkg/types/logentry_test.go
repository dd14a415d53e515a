// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestFormatTimestamp(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc millis", time.Date(2025, 3, 4, 5, 6, 7, 890_000_000, time.UTC), "2025-03-04T05:06:07.890Z"},
		{"zero fraction", time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC), "2025-03-04T05:06:07.000Z"},
		{"sub-millisecond truncated", time.Date(2025, 3, 4, 5, 6, 7, 123_999_999, time.UTC), "2025-03-04T05:06:07.123Z"},
		{"converted to utc", time.Date(2025, 3, 4, 7, 6, 7, 0, loc), "2025-03-04T05:06:07.000Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(tt.in))
		})
	}
}

func TestLogEntryMarshalJSON(t *testing.T) {
	e := LogEntry{
		Timestamp: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Fields: map[string]any{
			"path":      "/",
			"ua":        "curl",
			"timestamp": "shadowed",
		},
	}
	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"path":"/","ua":"curl","timestamp":"2025-01-02T03:04:05.000Z"}`, string(b))
}

func TestLogEntryMarshalYAML(t *testing.T) {
	e := LogEntry{
		Timestamp: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Fields:    map[string]any{"path": "/"},
	}
	b, err := yaml.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(b), "path: /")
	assert.Contains(t, string(b), "2025-01-02T03:04:05.000Z")
}

func TestLogEntryFromMap(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("time value", func(t *testing.T) {
		e, err := LogEntryFromMap(map[string]any{"timestamp": ts, "event": "visit"})
		require.NoError(t, err)
		assert.True(t, ts.Equal(e.Timestamp))
		assert.Equal(t, map[string]any{"event": "visit"}, e.Fields)
	})

	t.Run("rfc3339 string", func(t *testing.T) {
		e, err := LogEntryFromMap(map[string]any{"timestamp": "2025-06-01T12:00:00Z"})
		require.NoError(t, err)
		assert.True(t, ts.Equal(e.Timestamp))
		assert.Empty(t, e.Fields)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LogEntryFromMap(map[string]any{"event": "visit"})
		assert.ErrorIs(t, err, ErrMissingTimestamp)
	})

	t.Run("null", func(t *testing.T) {
		_, err := LogEntryFromMap(map[string]any{"timestamp": nil})
		assert.ErrorIs(t, err, ErrMissingTimestamp)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := LogEntryFromMap(map[string]any{"timestamp": 42})
		var te *TimestampError
		require.True(t, errors.As(err, &te))
		assert.Contains(t, err.Error(), "int")
	})

	t.Run("unparseable string", func(t *testing.T) {
		_, err := LogEntryFromMap(map[string]any{"timestamp": "yesterday"})
		var te *TimestampError
		require.True(t, errors.As(err, &te))
		assert.NotNil(t, te.Unwrap())
	})
}

func TestLogEntryUnmarshalJSON(t *testing.T) {
	var e LogEntry
	require.NoError(t, json.Unmarshal([]byte(`{"timestamp":"2025-06-01T12:00:00.250Z","ip":"10.0.0.1"}`), &e))
	assert.Equal(t, "2025-06-01T12:00:00.250Z", FormatTimestamp(e.Timestamp))
	assert.Equal(t, "10.0.0.1", e.Fields["ip"])
}

func TestConfigSetDefaults(t *testing.T) {
	var c Config
	c.SetDefaults()
	assert.Equal(t, DefaultAddr, c.Server.Addr)
	assert.Equal(t, DefaultBackendURL, c.Search.BackendURL)
	assert.Equal(t, DefaultUserAgent, c.Search.UserAgent)
	assert.Equal(t, time.Duration(0), c.Search.Timeout)
	assert.Equal(t, LogBackendFirestore, c.LogStore.Backend)
	assert.Equal(t, DefaultCollection, c.LogStore.Collection)
	assert.Equal(t, DefaultSessionTTL, c.UI.SessionTTL)
	assert.Equal(t, "info", c.Log.Level)

	c = Config{LogStore: LogStoreConfig{Backend: LogBackendSQLite, Collection: "visits"}}
	c.SetDefaults()
	assert.Equal(t, LogBackendSQLite, c.LogStore.Backend)
	assert.Equal(t, "visits", c.LogStore.Collection)
}

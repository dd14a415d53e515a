// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"time"
)

// TimestampLayout is the ISO-8601 form used for LogEntry timestamps on output:
// UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// TimestampField is the document field that orders the log collection.
const TimestampField = "timestamp"

// LogEntry is one diagnostic record from the log collection. Records are
// written by another service; accesspaper only reads them.
type LogEntry struct {
	// Timestamp is when the record was written.
	Timestamp time.Time

	// Fields holds the remaining application fields of the record.
	Fields map[string]any
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Map flattens the entry into a single object with the timestamp rendered
// as an ISO-8601 string. The timestamp overrides any field of the same name.
func (e LogEntry) Map() map[string]any {
	out := make(map[string]any, len(e.Fields)+1)
	for k, v := range e.Fields {
		out[k] = v
	}
	out[TimestampField] = FormatTimestamp(e.Timestamp)
	return out
}

// MarshalJSON writes the entry as a flat object.
func (e LogEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Map())
}

// MarshalYAML writes the entry as a flat mapping.
func (e LogEntry) MarshalYAML() (any, error) {
	return e.Map(), nil
}

// UnmarshalJSON reads a flat object whose "timestamp" is an RFC 3339 string.
func (e *LogEntry) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	entry, err := LogEntryFromMap(m)
	if err != nil {
		return err
	}
	*e = entry
	return nil
}

// LogEntryFromMap splits a decoded document into its timestamp and fields.
// The timestamp may be a time.Time or an RFC 3339 string.
func LogEntryFromMap(m map[string]any) (LogEntry, error) {
	raw, ok := m[TimestampField]
	if !ok || raw == nil {
		return LogEntry{}, ErrMissingTimestamp
	}
	var ts time.Time
	switch v := raw.(type) {
	case time.Time:
		ts = v
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return LogEntry{}, &TimestampError{Value: raw, Err: err}
		}
		ts = parsed
	default:
		return LogEntry{}, &TimestampError{Value: raw}
	}

	fields := make(map[string]any, len(m))
	for k, v := range m {
		if k == TimestampField {
			continue
		}
		fields[k] = v
	}
	return LogEntry{Timestamp: ts, Fields: fields}, nil
}

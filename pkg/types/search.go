// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for accesspaper: the search
// backend's response (SearchResult, Metadata), stored diagnostic log records
// (LogEntry), and configuration.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// SearchRequest is the body posted to the search backend.
type SearchRequest struct {
	DOI string `json:"doi"`
}

// Metadata describes a paper as reported by the search backend. Every field
// is optional; an empty value means the backend did not report it.
type Metadata struct {
	// Title is the paper title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Journal is the venue the paper was published in.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// Year is the publication year. The backend sends either a number or a string.
	Year Year `json:"year,omitempty" yaml:"year,omitempty"`

	// CorrespondingEmail is the contact address of the corresponding author.
	CorrespondingEmail string `json:"corresponding_email,omitempty" yaml:"corresponding_email,omitempty"`
}

// IsEmpty reports whether no metadata field is set.
func (m *Metadata) IsEmpty() bool {
	return m == nil || (m.Title == "" && m.Journal == "" && !m.Year.IsSet() && m.CorrespondingEmail == "")
}

// SearchResult is the search backend's response for one DOI. All fields are
// independently optional.
type SearchResult struct {
	// Metadata is nil when the backend returned no metadata object.
	Metadata *Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// PDFLink is the download URL of the paper.
	PDFLink string `json:"pdf_link,omitempty" yaml:"pdf_link,omitempty"`

	// Source names where the backend found the PDF.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Message is a free-form note from the backend.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	// Logs holds the backend's diagnostic lines. Only meaningful when HasLogs is true.
	Logs []string `json:"logs,omitempty" yaml:"logs,omitempty"`

	// HasLogs is true when the response carried a "logs" field that is a JSON array.
	HasLogs bool `json:"-" yaml:"-"`
}

// UnmarshalJSON decodes a backend response. The body must be an object; a
// literal null yields ErrNotObject. A "logs" field is recognised only when it
// is an array; elements that are not strings are kept as their JSON text.
func (r *SearchResult) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return ErrNotObject
	}
	type plain SearchResult
	var aux struct {
		plain
		Logs json.RawMessage `json:"logs"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = SearchResult(aux.plain)
	r.Logs = nil
	r.HasLogs = false

	raw := bytes.TrimSpace(aux.Logs)
	if len(raw) == 0 || raw[0] != '[' {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("decoding logs: %w", err)
	}
	r.Logs = make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			r.Logs = append(r.Logs, s)
			continue
		}
		r.Logs = append(r.Logs, string(bytes.TrimSpace(item)))
	}
	r.HasLogs = true
	return nil
}

// Year is a publication year that tolerates both numeric and string JSON.
type Year string

// IsSet reports whether the year should be displayed.
func (y Year) IsSet() bool {
	return y != ""
}

// UnmarshalJSON accepts 2020, "2020", and null. A numeric zero is read as
// absent; the string "0" is kept.
func (y *Year) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || string(data) == "null":
		*y = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*y = Year(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("year: %w", err)
		}
		if f, err := n.Float64(); err == nil && f == 0 {
			*y = ""
			return nil
		}
		*y = Year(n.String())
	}
	return nil
}

// MarshalJSON writes the year as a number when it is a non-zero integer,
// otherwise as a string. "0" stays a string so it still reads back as set.
func (y Year) MarshalJSON() ([]byte, error) {
	if n, err := strconv.Atoi(string(y)); err == nil && n != 0 {
		return []byte(y), nil
	}
	return json.Marshal(string(y))
}

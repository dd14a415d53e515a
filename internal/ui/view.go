// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ui

import "github.com/pdiddy/accesspaper/pkg/types"

// ViewState is the page mode.
type ViewState int

const (
	StateInput ViewState = iota
	StateResults
)

func (s ViewState) String() string {
	switch s {
	case StateResults:
		return "results"
	default:
		return "input"
	}
}

// View is an immutable snapshot of a Controller.
type View struct {
	State   ViewState
	Query   string
	Loading bool
	Result  *types.SearchResult
	Logs    []string
}

// ShowResults reports whether the results section should be rendered.
func (v View) ShowResults() bool {
	return v.State == StateResults && v.Result != nil
}

// Row is one labelled metadata line of the results section.
type Row struct {
	Label string
	Value string
}

// MetadataRows returns the metadata lines that are present, in display order.
func (v View) MetadataRows() []Row {
	if v.Result == nil || v.Result.Metadata == nil {
		return nil
	}
	m := v.Result.Metadata
	var rows []Row
	if m.Title != "" {
		rows = append(rows, Row{"Title", m.Title})
	}
	if m.Journal != "" {
		rows = append(rows, Row{"Journal", m.Journal})
	}
	if m.Year.IsSet() {
		rows = append(rows, Row{"Year", string(m.Year)})
	}
	if m.CorrespondingEmail != "" {
		rows = append(rows, Row{"Corresponding Email", m.CorrespondingEmail})
	}
	return rows
}

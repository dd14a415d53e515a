// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

// Page text.
const (
	PageTitle   = "Access Paper"
	PageTagline = "Discover research effortlessly. Instant access to papers with one DOI."
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

// Page is the data passed to the page template.
type Page struct {
	Title    string
	Tagline  string
	View     View
	Alerts   []string
	ShowLogs bool
}

// NewPage builds page data for v with the standard title and tagline.
func NewPage(v View, alerts []string, showLogs bool) Page {
	return Page{
		Title:    PageTitle,
		Tagline:  PageTagline,
		View:     v,
		Alerts:   alerts,
		ShowLogs: showLogs,
	}
}

// RenderHTML writes the page for p.
func RenderHTML(w io.Writer, p Page) error {
	if err := pageTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// RenderText writes the results section of v as plain text, following the
// same rules as the page: only present fields are printed.
func RenderText(w io.Writer, v View) error {
	var b strings.Builder
	if v.ShowResults() {
		b.WriteString("Paper Details\n")
		for _, row := range v.MetadataRows() {
			fmt.Fprintf(&b, "%s: %s\n", row.Label, row.Value)
		}
		if v.Result.PDFLink != "" {
			fmt.Fprintf(&b, "Download PDF: %s\n", v.Result.PDFLink)
		}
		if v.Result.Source != "" {
			fmt.Fprintf(&b, "Source: %s\n", v.Result.Source)
		}
		if v.Result.Message != "" {
			fmt.Fprintf(&b, "%s\n", v.Result.Message)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderLogs writes the log buffer of v, one line per entry.
func RenderLogs(w io.Writer, v View) error {
	for _, line := range v.Logs {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

//go:build mage

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// templatesDir holds the embedded page templates.
const templatesDir = "internal/ui/templates"

// sourceStats tallies non-blank lines by kind.
type sourceStats struct {
	prod      int
	test      int
	templates int
}

// Stats prints non-blank Go lines (production and tests), template lines,
// and the word count of the top-level Markdown documents.
func Stats() error {
	var st sourceStats
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDir(path, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		switch {
		case strings.HasSuffix(path, "_test.go"):
			return addLines(path, &st.test)
		case strings.HasSuffix(path, ".go"):
			return addLines(path, &st.prod)
		case strings.HasPrefix(filepath.ToSlash(path), templatesDir+"/"):
			return addLines(path, &st.templates)
		}
		return nil
	})
	if err != nil {
		return err
	}

	words, err := markdownWords(".")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", st.prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", st.test)
	fmt.Printf("Lines (templates):              %d\n", st.templates)
	fmt.Printf("Words (top-level *.md):         %d\n", words)
	return nil
}

// skipDir excludes hidden directories, underscore-prefixed reference
// directories, and build output.
func skipDir(path, name string) bool {
	if path == "." {
		return false
	}
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == binDir
}

// addLines adds the number of non-blank lines in path to n.
func addLines(path string, n *int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			*n++
		}
	}
	return sc.Err()
}

// markdownWords counts whitespace-separated words in the *.md files of dir.
func markdownWords(dir string) (int, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return 0, err
	}
	total := 0
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", p, err)
		}
		total += len(strings.Fields(string(data)))
	}
	return total, nil
}

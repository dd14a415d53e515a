//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// localDB is the SQLite file used by the local targets.
var localDB = filepath.Join("data", "accesspaper.db")

// localEnv points the binary at the local SQLite log store.
func localEnv() map[string]string {
	return map[string]string{
		"ACCESSPAPER_LOGSTORE_BACKEND":     "sqlite",
		"ACCESSPAPER_LOGSTORE_SQLITE_PATH": localDB,
	}
}

func bin() string {
	return filepath.Join(binDir, binName)
}

// Serve builds the binary and runs the web server against the local SQLite log store.
func Serve() error {
	mg.Deps(Init, Build)
	return sh.RunWithV(localEnv(), bin(), "serve", "--show-logs")
}

// Logs prints the local SQLite log store as YAML.
func Logs() error {
	mg.Deps(Init, Build)
	return sh.RunWithV(localEnv(), bin(), "logs", "--format", "yaml")
}

// Seed imports a YAML or JSON file of log entries into the local SQLite store.
// Usage: mage seed path/to/logs.yaml
func Seed(file string) error {
	mg.Deps(Init, Build)
	return sh.RunWithV(localEnv(), bin(), "logs", "import", file)
}

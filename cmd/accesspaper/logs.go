// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/accesspaper/internal/logapi"
	"github.com/pdiddy/accesspaper/internal/logstore"
	"github.com/pdiddy/accesspaper/pkg/types"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Print the diagnostic log collection",
	Long: `Logs reads every record in the log collection, newest first, and prints
it in the same shape as the /api/logs endpoint. Use --format yaml for YAML.`,
	RunE: runLogs,
}

// --- import subcommand ---

var logsImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Append records from a YAML or JSON file to the SQLite log store",
	Long: `Import reads a YAML or JSON list of objects, each with an RFC 3339
"timestamp" field, and appends them to the SQLite log store. The firestore
backend is written by another service and cannot be imported into.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogsImport,
}

func runLogs(cmd *cobra.Command, args []string) error {
	store, err := openLogStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(context.Background())
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	return writeLogs(os.Stdout, entries, format)
}

func writeLogs(w io.Writer, entries []types.LogEntry, format string) error {
	if entries == nil {
		entries = []types.LogEntry{}
	}
	body := logapi.Response{Logs: entries}

	switch format {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(body)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any{"logs": entries}); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}

func runLogsImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	entries, err := parseLogFile(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	store, err := openLogStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	appender, ok := store.(logstore.Appender)
	if !ok {
		return fmt.Errorf("log store does not accept imports: use --backend sqlite")
	}
	if err := appender.Append(context.Background(), entries...); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "imported %d record(s)\n", len(entries))
	return nil
}

// parseLogFile decodes a YAML (or JSON) list of log records.
func parseLogFile(data []byte) ([]types.LogEntry, error) {
	var docs []map[string]any
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, err
	}
	entries := make([]types.LogEntry, 0, len(docs))
	for i, doc := range docs {
		e, err := types.LogEntryFromMap(doc)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// --- shared helpers ---

func openLogStore(cmd *cobra.Command) (logstore.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if backend, _ := cmd.Flags().GetString("backend"); backend != "" {
		cfg.LogStore.Backend = types.LogBackend(backend)
	}
	if path, _ := cmd.Flags().GetString("sqlite-path"); path != "" {
		cfg.LogStore.SQLitePath = path
	}

	cred, err := credential(cfg)
	if err != nil {
		return nil, err
	}
	return logstore.Open(context.Background(), cfg.LogStore, cred)
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	logsCmd.PersistentFlags().String("backend", "", "log store backend: firestore or sqlite")
	logsCmd.PersistentFlags().String("sqlite-path", "", "SQLite database file for the sqlite backend")

	logsCmd.Flags().String("format", "json", "output format: json or yaml")

	logsCmd.AddCommand(logsImportCmd)
	rootCmd.AddCommand(logsCmd)
}

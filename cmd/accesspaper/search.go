package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/accesspaper/internal/search"
	"github.com/pdiddy/accesspaper/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search [doi]",
	Short: "Look up a paper by DOI",
	Long: `Search sends one DOI to the search backend and prints the paper details
that came back: title, journal, year, corresponding email, PDF link, source,
and any message. Fields the backend did not report are left out.

Failures are reported on stderr and the command exits non-zero; nothing is
retried.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("backend-url", "", "search backend base URL")
	searchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default none)")
	searchCmd.Flags().Bool("json", false, "print the backend response as JSON")
	searchCmd.Flags().Bool("show-logs", false, "print the diagnostic log buffer to stderr")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if u, _ := cmd.Flags().GetString("backend-url"); u != "" {
		cfg.Search.BackendURL = u
	}
	if d, _ := cmd.Flags().GetDuration("timeout"); d > 0 {
		cfg.Search.Timeout = d
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	query := strings.Join(args, " ")
	alerts := ui.AlertFunc(func(msg string) {
		fmt.Fprintln(os.Stderr, msg)
	})
	c := ui.NewController(search.NewClient(nil, cfg.Search), alerts, log)

	searchErr := c.SubmitSearch(context.Background(), query)
	view := c.View()

	if showLogs, _ := cmd.Flags().GetBool("show-logs"); showLogs {
		ui.RenderLogs(os.Stderr, view)
	}
	if searchErr != nil {
		return searchErr
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return printResult(os.Stdout, view, jsonOutput)
}

func printResult(w io.Writer, view ui.View, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view.Result)
	}
	return ui.RenderText(w, view)
}

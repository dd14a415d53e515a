package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/accesspaper/internal/logger"
	"github.com/pdiddy/accesspaper/internal/logstore"
	"github.com/pdiddy/accesspaper/internal/metrics"
	"github.com/pdiddy/accesspaper/internal/search"
	"github.com/pdiddy/accesspaper/internal/secrets"
	"github.com/pdiddy/accesspaper/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long: `Serve runs the DOI search page on --addr together with the log endpoint
(/api/logs), /healthz, and /metrics.

The log endpoint reads the configured log store. With the firestore backend
the service-account JSON comes from FIREBASE_SERVICE_ACCOUNT or
.secrets/firebase-service-account; without it the server starts with the
log endpoint disabled.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	serveCmd.Flags().String("backend-url", "", "search backend base URL")
	serveCmd.Flags().Bool("show-logs", false, "show the diagnostic log panel on the page")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("search.backend_url", serveCmd.Flags().Lookup("backend-url"))
	viper.BindPFlag("ui.show_logs", serveCmd.Flags().Lookup("show-logs"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store logstore.Store
	cred, err := credential(cfg)
	switch {
	case errors.Is(err, secrets.ErrNoCredential):
		log.Warn("log endpoint disabled", logger.Err(err))
	case err != nil:
		return err
	default:
		store, err = logstore.Open(ctx, cfg.LogStore, cred)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	srv := server.New(cfg, server.Deps{
		Backend: search.NewClient(nil, cfg.Search),
		Store:   store,
		Metrics: metrics.New(),
		Logger:  log,
	})
	return srv.Run(ctx)
}

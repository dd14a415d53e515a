// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server serves the paper search page, its form actions, and the
// log endpoint over gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/accesspaper/internal/logapi"
	"github.com/pdiddy/accesspaper/internal/logger"
	"github.com/pdiddy/accesspaper/internal/logstore"
	"github.com/pdiddy/accesspaper/internal/metrics"
	"github.com/pdiddy/accesspaper/internal/search"
	"github.com/pdiddy/accesspaper/internal/ui"
	"github.com/pdiddy/accesspaper/pkg/types"
)

const shutdownTimeout = 15 * time.Second

// Deps are the collaborators the server is built from. Store may be nil,
// in which case the log endpoint is not registered.
type Deps struct {
	Backend search.Backend
	Store   logstore.Store
	Metrics *metrics.Metrics
	Logger  logger.Logger
}

// Server is the accesspaper HTTP server.
type Server struct {
	router   *gin.Engine
	http     *http.Server
	log      logger.Logger
	metrics  *metrics.Metrics
	sessions *sessionTable
	showLogs bool
}

// New builds the router and http.Server for cfg.
func New(cfg types.Config, deps Deps) *Server {
	cfg.SetDefaults()

	log := deps.Logger
	if log == nil {
		log = logger.NewNop()
	}
	m := deps.Metrics
	if m == nil {
		m = metrics.New()
	}

	if cfg.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(recovery(log), requestLogger(log))

	controllerLog := log.With(logger.String("component", "ui"))
	s := &Server{
		router:   router,
		log:      log,
		metrics:  m,
		showLogs: cfg.UI.ShowLogs,
		sessions: newSessionTable(cfg.UI.SessionTTL, func(a ui.Alerter) *ui.Controller {
			return ui.NewController(deps.Backend, a, controllerLog)
		}),
	}

	router.GET("/", s.handlePage)
	router.POST("/search", s.handleSearch)
	router.POST("/back", s.handleBack)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	if deps.Store != nil {
		logs := logapi.NewHandler(deps.Store, m, log.With(logger.String("component", "logapi")))
		router.GET("/api/logs", logs.List)
		router.GET("/api/log-visit", logs.List)
	}

	s.http = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return s
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting HTTP server", logger.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

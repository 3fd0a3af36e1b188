package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/flexstats/internal/api"
	"github.com/vytor/flexstats/internal/app"
	"github.com/vytor/flexstats/internal/config"
	"github.com/vytor/flexstats/internal/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("FlexStats Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("history_window=%d", cfg.HistoryWindow)
	log.Debug("max_squad_size=%d", cfg.MaxSquadSize)
	log.Debug("squad_concurrency=%d", cfg.SquadConcurrency)
	log.Debug("match_sizes=%v", cfg.MatchSizes)
	log.Debug("fetch_timeout=%s", cfg.FetchTimeout)

	a, err := app.New(cfg)
	if err != nil {
		log.Error("failed to start: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		a.Close()
	}()

	srv := &api.Server{
		Matches:     a.Matches,
		Histories:   a.Histories,
		Comparisons: a.Comparisons,
		Store:       a.Store,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.FetchTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-stop:
		log.Info("received signal %v, initiating graceful shutdown", sig)
	case err := <-errCh:
		log.Error("HTTP server error: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("FlexStats Server Stopped")
	log.Info("===========================================")
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/scoop-api/internal/api"
	"github.com/scoop-api/internal/board"
	"github.com/scoop-api/internal/config"
	"github.com/scoop-api/internal/router"
	"github.com/scoop-api/internal/snapshot"
	"github.com/scoop-api/internal/store"
	"github.com/scoop-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "json")
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Msg("Starting scoop board API server...")

	// Initialize snapshot persistence
	var snaps snapshot.Gateway
	if cfg.Snapshot.Disabled {
		snaps = snapshot.Disabled{}
		log.Info().Msg("Snapshot persistence disabled")
	} else {
		snaps = snapshot.NewFileGateway(cfg.Snapshot.Path, log)
	}

	// Load the last snapshot; an absent file starts an empty board
	snap, err := snaps.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load snapshot")
	}
	st := store.FromSnapshot(snap)
	users, articles, comments := st.Counts()
	log.Info().
		Int("users", users).
		Int("articles", articles).
		Int("comments", comments).
		Msg("Entity store initialized")

	// Initialize the board and route table
	b := board.New(st, snaps, log)
	rt := router.New(b, log)

	// Initialize router
	engine := api.NewEngine(rt, b, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}

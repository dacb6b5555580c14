package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fare-terminal/config"
	"fare-terminal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("TERM_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger; per-tap lines are flushed to the history file
	history := logger.NewHistory(cfg.Log.HistoryPath)
	log := logger.NewWithHistory(cfg.Log.Level, cfg.Log.Pretty, history)
	gin.SetMode(cfg.Status.Mode)

	log.Info().
		Str("terminal_id", cfg.Terminal.TerminalID).
		Str("ledger", cfg.Ledger.Driver).
		Bool("redis", cfg.Redis.Enabled).
		Msg("Starting fare terminal")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(ctx, cfg, history, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start terminal")
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Terminal stopped with error")
	}
	if err := history.Flush(); err != nil {
		log.Warn().Err(err).Msg("failed to flush log history")
	}
	log.Info().Msg("Terminal exited")
}

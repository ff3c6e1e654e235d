// Package main implements the entry point for the cardsmith API server,
// which turns uploaded study material into LLM-generated flashcard decks.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/cardsmithhq/cardsmith/internal/config"
	"github.com/cardsmithhq/cardsmith/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// run loads configuration, wires the application, and serves until a
// shutdown signal arrives. It exists so main stays a thin error boundary.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName)

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}

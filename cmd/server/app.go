package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cardsmithhq/cardsmith/internal/config"
	"github.com/cardsmithhq/cardsmith/internal/generation"
	"github.com/cardsmithhq/cardsmith/internal/platform/gemini"
	"github.com/cardsmithhq/cardsmith/internal/platform/memory"
	"github.com/cardsmithhq/cardsmith/internal/prompt"
	"github.com/cardsmithhq/cardsmith/internal/service"
	"github.com/cardsmithhq/cardsmith/internal/store"
)

// application holds the server's wired dependencies. Everything hangs off
// this struct so the router and server setup stay free of construction logic.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	generator   generation.Generator
	deckStore   store.DeckStore
	deckService *service.DeckService
}

// newApplication builds the full dependency graph: the Gemini generator, the
// bounded in-memory deck store, and the deck service on top of both.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (*application, error) {
	generator, err := gemini.NewGeminiGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	deckStore := memory.NewDeckStore(cfg.Generation.MaxStoredDecks)

	builder := prompt.NewBuilder(cfg.Generation.MaxInputChars, cfg.Generation.ChunkSize)

	deckService, err := service.NewDeckService(
		generator,
		deckStore,
		builder,
		cfg.Generation.DefaultCardCount,
		time.Duration(cfg.LLM.TimeoutSeconds)*time.Second,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create deck service: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      logger,
		generator:   generator,
		deckStore:   deckStore,
		deckService: deckService,
	}, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cardsmithhq/cardsmith/internal/domain"
	"github.com/cardsmithhq/cardsmith/internal/export"
	"github.com/cardsmithhq/cardsmith/internal/extract"
	"github.com/cardsmithhq/cardsmith/internal/generation"
	"github.com/cardsmithhq/cardsmith/internal/normalize"
	"github.com/cardsmithhq/cardsmith/internal/parser"
	"github.com/cardsmithhq/cardsmith/internal/prompt"
	"github.com/cardsmithhq/cardsmith/internal/store"
)

// DeckService runs the full generation cycle: extract, prompt, generate,
// parse, normalize, store. Each cycle operates on its own isolated data so
// concurrent requests never share record-set state.
type DeckService struct {
	generator  generation.Generator
	decks      store.DeckStore
	builder    *prompt.Builder
	logger     *slog.Logger
	genTimeout time.Duration

	// defaultCardCount fills in requests that do not specify a count.
	defaultCardCount int
}

// NewDeckService creates a DeckService with the given collaborators.
// genTimeout caps each individual generation call; zero means no cap.
func NewDeckService(
	generator generation.Generator,
	decks store.DeckStore,
	builder *prompt.Builder,
	defaultCardCount int,
	genTimeout time.Duration,
	logger *slog.Logger,
) (*DeckService, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if decks == nil {
		return nil, errors.New("deck store cannot be nil")
	}
	if builder == nil {
		builder = prompt.NewBuilder(0, 0)
	}
	if defaultCardCount < 1 {
		defaultCardCount = prompt.DefaultCardCount
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &DeckService{
		generator:        generator,
		decks:            decks,
		builder:          builder,
		logger:           logger,
		genTimeout:       genTimeout,
		defaultCardCount: defaultCardCount,
	}, nil
}

// GenerateDeck converts a document payload into a validated, stored deck.
// Every failure wraps the owning stage's sentinel error so callers can map
// it without string matching.
func (s *DeckService) GenerateDeck(
	ctx context.Context,
	payload []byte,
	format extract.Format,
	params prompt.Params,
) (*domain.Deck, error) {
	text, err := extract.Extract(payload, format)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	if params.CardCount == 0 {
		params.CardCount = s.defaultCardCount
	}

	prompts, err := s.builder.Build(text, params)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}

	s.logger.InfoContext(ctx, "starting generation cycle",
		"source_chars", len(text),
		"chunks", len(prompts),
		"card_count", params.CardCount)

	var candidates []domain.Candidate
	skipped := 0
	for i, p := range prompts {
		raw, err := s.generateOne(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("generate chunk %d/%d: %w", i+1, len(prompts), err)
		}

		chunkCandidates, chunkSkipped := parser.ParseAll(raw)
		candidates = append(candidates, chunkCandidates...)
		skipped += chunkSkipped

		s.logger.DebugContext(ctx, "parsed generation output",
			"chunk", i+1,
			"candidates", len(chunkCandidates),
			"skipped_lines", chunkSkipped)
	}

	cards, err := normalize.Normalize(candidates)
	if err != nil {
		return nil, fmt.Errorf("normalize (%d candidates, %d skipped lines): %w",
			len(candidates), skipped, err)
	}

	deck, err := domain.NewDeck(cards, skipped, len(text))
	if err != nil {
		return nil, fmt.Errorf("assemble deck: %w", err)
	}

	if err := s.decks.SaveDeck(ctx, deck); err != nil {
		return nil, fmt.Errorf("save deck: %w", err)
	}

	s.logger.InfoContext(ctx, "generation cycle complete",
		"deck_id", deck.ID,
		"cards", len(deck.Cards),
		"skipped_lines", deck.SkippedLines)

	return deck, nil
}

// generateOne runs a single generation call under the configured timeout and
// normalizes context deadline errors into the generation taxonomy.
func (s *DeckService) generateOne(ctx context.Context, p string) (string, error) {
	callCtx := ctx
	if s.genTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.genTimeout)
		defer cancel()
	}

	raw, err := s.generator.Generate(callCtx, p)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", generation.ErrGenerationTimeout, err)
		}
		return "", err
	}
	return raw, nil
}

// GetDeck retrieves a previously generated deck.
func (s *DeckService) GetDeck(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	return s.decks.GetDeck(ctx, id)
}

// ExportDeck loads a stored deck and serializes it into the requested
// format. The payload is built entirely in memory; persistence is the
// caller's responsibility.
func (s *DeckService) ExportDeck(ctx context.Context, id uuid.UUID, format export.Format) (*export.Payload, error) {
	deck, err := s.decks.GetDeck(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load deck: %w", err)
	}

	payload, err := export.Export(deck.Cards, format)
	if err != nil {
		return nil, fmt.Errorf("export deck %s: %w", id, err)
	}

	s.logger.InfoContext(ctx, "deck exported",
		"deck_id", id,
		"format", format,
		"bytes", len(payload.Data))

	return payload, nil
}

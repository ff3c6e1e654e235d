package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/cardsmithhq/cardsmith/internal/domain"
)

// Common store errors used across all store implementations.
var (
	// ErrDeckNotFound is returned when a requested deck does not exist in
	// the store, either because it was never saved or because it has been
	// evicted.
	ErrDeckNotFound = errors.New("deck not found")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored.
	ErrInvalidEntity = errors.New("invalid entity")
)

// DeckStore holds generated decks between the generation call and the export
// call. The pipeline core itself keeps no state; this belongs to the
// surrounding application, so implementations may evict freely.
type DeckStore interface {
	// SaveDeck stores a validated deck under its ID.
	// Returns ErrInvalidEntity (wrapped) if the deck fails validation.
	SaveDeck(ctx context.Context, deck *domain.Deck) error

	// GetDeck retrieves a deck by ID.
	// Returns ErrDeckNotFound if no deck exists with the given ID.
	GetDeck(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
}

// Package memory provides in-memory store implementations. Decks live only
// for the lifetime of the process and are evicted oldest-first once the
// configured bound is reached.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/cardsmithhq/cardsmith/internal/domain"
	"github.com/cardsmithhq/cardsmith/internal/store"
)

// DeckStore is a bounded, mutex-guarded in-memory implementation of
// store.DeckStore. Safe for concurrent use.
type DeckStore struct {
	mu       sync.Mutex
	decks    map[uuid.UUID]*domain.Deck
	order    []uuid.UUID // insertion order, oldest first
	maxDecks int
}

// Statically assert the interface is satisfied.
var _ store.DeckStore = (*DeckStore)(nil)

// NewDeckStore creates a DeckStore holding at most maxDecks decks.
// Non-positive values fall back to a reasonable bound.
func NewDeckStore(maxDecks int) *DeckStore {
	if maxDecks <= 0 {
		maxDecks = 256
	}
	return &DeckStore{
		decks:    make(map[uuid.UUID]*domain.Deck),
		maxDecks: maxDecks,
	}
}

// SaveDeck stores a validated deck, evicting the oldest deck when the store
// is full.
func (s *DeckStore) SaveDeck(_ context.Context, deck *domain.Deck) error {
	if deck == nil {
		return fmt.Errorf("%w: deck is nil", store.ErrInvalidEntity)
	}
	if err := deck.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.decks[deck.ID]; !exists {
		for len(s.order) >= s.maxDecks {
			oldest := s.order[0]
			s.order = s.order[1:]
			delete(s.decks, oldest)
		}
		s.order = append(s.order, deck.ID)
	}

	s.decks[deck.ID] = deck
	return nil
}

// GetDeck retrieves a deck by ID, or store.ErrDeckNotFound.
func (s *DeckStore) GetDeck(_ context.Context, id uuid.UUID) (*domain.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deck, ok := s.decks[id]
	if !ok {
		return nil, store.ErrDeckNotFound
	}
	return deck, nil
}

// Len reports the number of stored decks. Intended for tests and metrics.
func (s *DeckStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.decks)
}

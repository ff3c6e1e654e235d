package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Deck
var (
	ErrEmptyDeckID = errors.New("deck ID cannot be empty")
	ErrEmptyDeck   = errors.New("deck must contain at least one card")
)

// Deck is one finished generation cycle: the validated card set plus the
// diagnostics a caller needs to surface to an end user. A deck is assembled
// once by the deck service and never mutated afterwards.
type Deck struct {
	ID uuid.UUID `json:"id"`

	// Cards is the finalized, invariant-satisfying record set in the order
	// the validator produced it.
	Cards []Card `json:"cards"`

	// SkippedLines counts generator output lines the parser discarded as
	// malformed. Surfaced for diagnostics, never an error by itself.
	SkippedLines int `json:"skipped_lines"`

	// SourceChars is the length of the normalized source text the deck was
	// generated from.
	SourceChars int `json:"source_chars"`

	CreatedAt time.Time `json:"created_at"`
}

// NewDeck creates a Deck with a fresh ID from an already-validated card set.
// Returns an error if validation fails.
func NewDeck(cards []Card, skippedLines, sourceChars int) (*Deck, error) {
	deck := &Deck{
		ID:           uuid.New(),
		Cards:        cards,
		SkippedLines: skippedLines,
		SourceChars:  sourceChars,
		CreatedAt:    time.Now().UTC(),
	}

	if err := deck.Validate(); err != nil {
		return nil, err
	}

	return deck, nil
}

// Validate checks if the Deck has valid data.
// Returns an error if any field fails validation.
func (d *Deck) Validate() error {
	if d.ID == uuid.Nil {
		return ErrEmptyDeckID
	}

	if len(d.Cards) == 0 {
		return ErrEmptyDeck
	}

	for _, card := range d.Cards {
		if err := card.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// GroupByTopic buckets cards by their topic label, preserving card order
// within each bucket. Topics keeps the first-seen ordering of labels so
// callers can render groups deterministically.
func GroupByTopic(cards []Card) (topics []string, grouped map[string][]Card) {
	grouped = make(map[string][]Card, len(cards))
	for _, card := range cards {
		if _, seen := grouped[card.Topic]; !seen {
			topics = append(topics, card.Topic)
		}
		grouped[card.Topic] = append(grouped[card.Topic], card)
	}
	return topics, grouped
}

package normalize

import (
	"errors"
	"strings"

	"github.com/cardsmithhq/cardsmith/internal/domain"
)

// ErrEmptyResultSet is returned when zero records survive validation. This
// is always reported to the caller, never silently treated as success.
var ErrEmptyResultSet = errors.New("no valid flashcards after normalization")

// Normalize turns parsed candidates into the finalized, invariant-satisfying
// card set. The steps run in a fixed order for determinism:
//
//  1. trim whitespace on all text fields
//  2. drop records whose question or answer is empty after trimming
//  3. map free-text difficulty to the enumerated set (case-insensitive exact
//     match), defaulting to Medium
//  4. default empty topic to "General"
//  5. deduplicate by case-insensitive (question, answer), first occurrence wins
//
// Normalize is idempotent: feeding an already-normalized set through again
// yields the same set unchanged.
func Normalize(candidates []domain.Candidate) ([]domain.Card, error) {
	cards := make([]domain.Card, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))

	for _, c := range candidates {
		question := strings.TrimSpace(c.Question)
		answer := strings.TrimSpace(c.Answer)
		if question == "" || answer == "" {
			continue
		}

		difficulty, ok := domain.ParseDifficulty(c.Difficulty)
		if !ok {
			difficulty = domain.DefaultDifficulty
		}

		topic := strings.TrimSpace(c.Topic)
		if topic == "" {
			topic = domain.DefaultTopic
		}

		card := domain.Card{
			Question:   question,
			Answer:     answer,
			Difficulty: difficulty,
			Topic:      topic,
		}

		key := card.DedupeKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		cards = append(cards, card)
	}

	if len(cards) == 0 {
		return nil, ErrEmptyResultSet
	}

	return cards, nil
}

// Candidates converts a validated card set back to candidate form. Used by
// callers that re-run normalization over edited cards.
func Candidates(cards []domain.Card) []domain.Candidate {
	candidates := make([]domain.Candidate, len(cards))
	for i, card := range cards {
		candidates[i] = domain.Candidate{
			Question:   card.Question,
			Answer:     card.Answer,
			Difficulty: string(card.Difficulty),
			Topic:      card.Topic,
		}
	}
	return candidates
}

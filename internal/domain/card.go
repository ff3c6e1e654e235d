package domain

import (
	"errors"
	"strings"
)

// Card-specific validation errors
var (
	// ErrCardQuestionEmpty is returned when a card's question is empty after trimming.
	ErrCardQuestionEmpty = errors.New("card question cannot be empty")

	// ErrCardAnswerEmpty is returned when a card's answer is empty after trimming.
	ErrCardAnswerEmpty = errors.New("card answer cannot be empty")

	// ErrInvalidDifficulty is returned when a difficulty is not one of the
	// enumerated values.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)

// Difficulty is the enumerated difficulty level of a flashcard.
type Difficulty string

// Possible difficulty values. DefaultDifficulty is used whenever a generated
// difficulty is missing or unrecognized.
const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"

	DefaultDifficulty = DifficultyMedium
)

// DefaultTopic is assigned to cards whose topic is missing after normalization.
const DefaultTopic = "General"

// ParseDifficulty maps free-text difficulty values to the enumerated set via
// case-insensitive exact match. Unrecognized or empty values report ok=false;
// callers decide whether that is a defaulting situation or an error.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	default:
		return DefaultDifficulty, false
	}
}

// IsValidDifficulty checks if the given value is one of the enumerated
// difficulty levels.
func IsValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// Card represents a finalized flashcard: a question/answer pair with
// difficulty and topic metadata. Cards are created by the response parser,
// normalized exactly once, and never mutated after they reach an exporter.
type Card struct {
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	Difficulty Difficulty `json:"difficulty"`
	Topic      string     `json:"topic"`
}

// NewCard creates a Card with the given fields, applying the documented
// defaults for difficulty and topic. Returns an error if validation fails.
func NewCard(question, answer string, difficulty Difficulty, topic string) (Card, error) {
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}
	if topic == "" {
		topic = DefaultTopic
	}

	card := Card{
		Question:   question,
		Answer:     answer,
		Difficulty: difficulty,
		Topic:      topic,
	}

	if err := card.Validate(); err != nil {
		return Card{}, err
	}

	return card, nil
}

// Validate checks the Card invariants: non-empty question and answer after
// trimming, and an enumerated difficulty value.
func (c Card) Validate() error {
	if strings.TrimSpace(c.Question) == "" {
		return ErrCardQuestionEmpty
	}

	if strings.TrimSpace(c.Answer) == "" {
		return ErrCardAnswerEmpty
	}

	if !IsValidDifficulty(c.Difficulty) {
		return ErrInvalidDifficulty
	}

	return nil
}

// DedupeKey returns the case-insensitive (question, answer) identity used to
// detect duplicate cards within a deck. The NUL separator keeps distinct
// pairs from colliding when one field contains the other's prefix.
func (c Card) DedupeKey() string {
	return strings.ToLower(strings.TrimSpace(c.Question)) + "\x00" +
		strings.ToLower(strings.TrimSpace(c.Answer))
}

// Candidate is the pre-validation shape of a card as produced by the response
// parser. Difficulty and topic are raw text at this stage and may be empty or
// unrecognized; the normalizer resolves them.
type Candidate struct {
	Question   string
	Answer     string
	Difficulty string
	Topic      string
}

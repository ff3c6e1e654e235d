package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	t.Parallel()

	cards := []Card{
		{Question: "Q1", Answer: "A1", Difficulty: DifficultyEasy, Topic: "T1"},
		{Question: "Q2", Answer: "A2", Difficulty: DifficultyHard, Topic: "T2"},
	}

	deck, err := NewDeck(cards, 3, 120)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, deck.ID)
	assert.Len(t, deck.Cards, 2)
	assert.Equal(t, 3, deck.SkippedLines)
	assert.Equal(t, 120, deck.SourceChars)
	assert.False(t, deck.CreatedAt.IsZero())

	// A deck with no cards is invalid
	_, err = NewDeck(nil, 0, 0)
	assert.ErrorIs(t, err, ErrEmptyDeck)

	// A deck containing an invalid card is invalid
	_, err = NewDeck([]Card{{Question: "", Answer: "A", Difficulty: DifficultyEasy}}, 0, 0)
	assert.ErrorIs(t, err, ErrCardQuestionEmpty)
}

func TestGroupByTopic(t *testing.T) {
	t.Parallel()

	cards := []Card{
		{Question: "Q1", Answer: "A1", Difficulty: DifficultyEasy, Topic: "Biology"},
		{Question: "Q2", Answer: "A2", Difficulty: DifficultyEasy, Topic: "History"},
		{Question: "Q3", Answer: "A3", Difficulty: DifficultyEasy, Topic: "Biology"},
	}

	topics, grouped := GroupByTopic(cards)
	assert.Equal(t, []string{"Biology", "History"}, topics, "topics keep first-seen order")
	assert.Len(t, grouped["Biology"], 2)
	assert.Len(t, grouped["History"], 1)
	assert.Equal(t, "Q1", grouped["Biology"][0].Question, "card order preserved within a topic")
}

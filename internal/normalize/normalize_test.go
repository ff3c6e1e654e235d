package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardsmithhq/cardsmith/internal/domain"
)

func TestNormalizeTrimsAndDefaults(t *testing.T) {
	t.Parallel()

	cards, err := Normalize([]domain.Candidate{
		{Question: "  2+2?  ", Answer: " 4 ", Difficulty: "", Topic: ""},
	})
	require.NoError(t, err)
	require.Len(t, cards, 1)

	assert.Equal(t, "2+2?", cards[0].Question)
	assert.Equal(t, "4", cards[0].Answer)
	assert.Equal(t, domain.DefaultDifficulty, cards[0].Difficulty)
	assert.Equal(t, domain.DefaultTopic, cards[0].Topic)
}

func TestNormalizeDifficultyMapping(t *testing.T) {
	t.Parallel()

	cards, err := Normalize([]domain.Candidate{
		{Question: "q1", Answer: "a1", Difficulty: "EASY"},
		{Question: "q2", Answer: "a2", Difficulty: "hard"},
		{Question: "q3", Answer: "a3", Difficulty: "challenging"}, // unrecognized
	})
	require.NoError(t, err)
	require.Len(t, cards, 3)

	assert.Equal(t, domain.DifficultyEasy, cards[0].Difficulty)
	assert.Equal(t, domain.DifficultyHard, cards[1].Difficulty)
	assert.Equal(t, domain.DifficultyMedium, cards[2].Difficulty)
}

func TestNormalizeDropsEmptyQuestionOrAnswer(t *testing.T) {
	t.Parallel()

	cards, err := Normalize([]domain.Candidate{
		{Question: "keep me", Answer: "yes"},
		{Question: "   ", Answer: "orphan answer"},
		{Question: "orphan question", Answer: " \t "},
	})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "keep me", cards[0].Question)
}

func TestNormalizeDeduplicatesCaseInsensitively(t *testing.T) {
	t.Parallel()

	cards, err := Normalize([]domain.Candidate{
		{Question: "What is Go?", Answer: "A language", Topic: "first"},
		{Question: "WHAT IS GO?", Answer: "a LANGUAGE", Topic: "second"},
	})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "first", cards[0].Topic, "first occurrence wins")
}

func TestNormalizeEmptyResultSet(t *testing.T) {
	t.Parallel()

	_, err := Normalize(nil)
	assert.ErrorIs(t, err, ErrEmptyResultSet)

	_, err = Normalize([]domain.Candidate{{Question: "", Answer: ""}})
	assert.ErrorIs(t, err, ErrEmptyResultSet)
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	first, err := Normalize([]domain.Candidate{
		{Question: " q1 ", Answer: "a1", Difficulty: "easy", Topic: ""},
		{Question: "q2", Answer: "a2", Difficulty: "bogus", Topic: "T"},
		{Question: "Q1", Answer: "A1", Difficulty: "hard", Topic: "dup"},
	})
	require.NoError(t, err)

	second, err := Normalize(Candidates(first))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

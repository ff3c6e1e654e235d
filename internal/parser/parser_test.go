package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardsmithhq/cardsmith/internal/domain"
)

func TestParseAllWellFormed(t *testing.T) {
	t.Parallel()

	raw := "Q: What is mitosis? | A: Cell division. | Medium | Cell Biology\n" +
		"Q: What is meiosis? | A: Reductive division. | Hard | Cell Biology"

	candidates, skipped := ParseAll(raw)
	require.Len(t, candidates, 2)
	assert.Equal(t, 0, skipped)

	assert.Equal(t, domain.Candidate{
		Question:   "What is mitosis?",
		Answer:     "Cell division.",
		Difficulty: "Medium",
		Topic:      "Cell Biology",
	}, candidates[0])
}

func TestParseAllSkipsGarbageLines(t *testing.T) {
	t.Parallel()

	// The documented scenario: two candidates, one with missing fields, one
	// garbage line counted as skipped.
	raw := "Q: What is mitosis? | A: Cell division. | Medium | Cell Biology\n" +
		"(garbage line)\n" +
		"Q: 2+2? | A: 4 | | "

	candidates, skipped := ParseAll(raw)
	require.Len(t, candidates, 2)
	assert.Equal(t, 1, skipped)

	assert.Equal(t, "2+2?", candidates[1].Question)
	assert.Equal(t, "4", candidates[1].Answer)
	assert.Empty(t, candidates[1].Difficulty)
	assert.Empty(t, candidates[1].Topic)
}

func TestParseTolerance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		line string
		want domain.Candidate
	}{
		{
			name: "lowercase labels and extra whitespace",
			line: "  q:   What is Go?   |  a: A language  | easy |  Programming  ",
			want: domain.Candidate{Question: "What is Go?", Answer: "A language", Difficulty: "easy", Topic: "Programming"},
		},
		{
			name: "long-form labels",
			line: "Question: X | Answer: Y",
			want: domain.Candidate{Question: "X", Answer: "Y"},
		},
		{
			name: "no labels at all",
			line: "X | Y | Hard | T",
			want: domain.Candidate{Question: "X", Answer: "Y", Difficulty: "Hard", Topic: "T"},
		},
		{
			name: "delimiter inside topic",
			line: "Q: X | A: Y | Easy | Anatomy | Physiology",
			want: domain.Candidate{Question: "X", Answer: "Y", Difficulty: "Easy", Topic: "Anatomy | Physiology"},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			candidates, skipped := ParseAll(tc.line)
			require.Len(t, candidates, 1)
			assert.Equal(t, 0, skipped)
			assert.Equal(t, tc.want, candidates[0])
		})
	}
}

func TestParseBlankLinesNotCountedAsSkipped(t *testing.T) {
	t.Parallel()

	raw := "\n\nQ: X | A: Y\n\n\n"
	candidates, skipped := ParseAll(raw)
	assert.Len(t, candidates, 1)
	assert.Equal(t, 0, skipped)
}

func TestParseTrailingCommentarySkipped(t *testing.T) {
	t.Parallel()

	raw := "Q: X | A: Y | Easy | T\n" +
		"I hope these flashcards help you study!\n" +
		"Let me know if you need more."

	candidates, skipped := ParseAll(raw)
	assert.Len(t, candidates, 1)
	assert.Equal(t, 2, skipped)
}

func TestScanIsLazyAndNotRestartable(t *testing.T) {
	t.Parallel()

	scan := Parse("Q: one | A: 1\nQ: two | A: 2")

	require.True(t, scan.Next())
	assert.Equal(t, "one", scan.Candidate().Question)
	require.True(t, scan.Next())
	assert.Equal(t, "two", scan.Candidate().Question)

	// Drained: Next stays false.
	assert.False(t, scan.Next())
	assert.False(t, scan.Next())
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	candidates, skipped := ParseAll("")
	assert.Empty(t, candidates)
	assert.Equal(t, 0, skipped)
}

func TestParseVeryLongLine(t *testing.T) {
	t.Parallel()

	// A single answer far past any typical line-buffer size must not abort
	// the scan or swallow the cards that follow it.
	longAnswer := strings.Repeat("the Krebs cycle produces ATP ", 4096) // ~120KB

	raw := "Q: Describe cellular respiration. | A: " + longAnswer + " | Hard | Biology\n" +
		"Q: What is ATP? | A: The cell's energy currency. | Easy | Biology"

	candidates, skipped := ParseAll(raw)
	require.Len(t, candidates, 2)
	assert.Equal(t, 0, skipped)

	assert.Equal(t, "Describe cellular respiration.", candidates[0].Question)
	assert.Equal(t, strings.TrimSpace(longAnswer), candidates[0].Answer)
	assert.Equal(t, "What is ATP?", candidates[1].Question)
}

package domain

import (
	"testing"
)

func TestNewCard(t *testing.T) {
	t.Parallel() // Enable parallel execution

	// Test valid card creation
	card, err := NewCard("What is mitosis?", "Cell division.", DifficultyEasy, "Cell Biology")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if card.Question != "What is mitosis?" {
		t.Errorf("Expected question %q, got %q", "What is mitosis?", card.Question)
	}

	if card.Difficulty != DifficultyEasy {
		t.Errorf("Expected difficulty %s, got %s", DifficultyEasy, card.Difficulty)
	}

	// Test defaulting of difficulty and topic
	card, err = NewCard("2+2?", "4", "", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if card.Difficulty != DefaultDifficulty {
		t.Errorf("Expected default difficulty %s, got %s", DefaultDifficulty, card.Difficulty)
	}

	if card.Topic != DefaultTopic {
		t.Errorf("Expected default topic %s, got %s", DefaultTopic, card.Topic)
	}

	// Test empty question
	_, err = NewCard("   ", "4", DifficultyEasy, "Math")
	if err != ErrCardQuestionEmpty {
		t.Errorf("Expected error %v, got %v", ErrCardQuestionEmpty, err)
	}

	// Test empty answer
	_, err = NewCard("2+2?", "\t\n", DifficultyEasy, "Math")
	if err != ErrCardAnswerEmpty {
		t.Errorf("Expected error %v, got %v", ErrCardAnswerEmpty, err)
	}

	// Test unrecognized difficulty
	_, err = NewCard("2+2?", "4", Difficulty("Impossible"), "Math")
	if err != ErrInvalidDifficulty {
		t.Errorf("Expected error %v, got %v", ErrInvalidDifficulty, err)
	}
}

func TestParseDifficulty(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Difficulty
		ok   bool
	}{
		{"Easy", DifficultyEasy, true},
		{"easy", DifficultyEasy, true},
		{"  MEDIUM  ", DifficultyMedium, true},
		{"hArD", DifficultyHard, true},
		{"", DefaultDifficulty, false},
		{"tricky", DefaultDifficulty, false},
		{"ease", DefaultDifficulty, false}, // exact match only, no fuzziness
	}

	for _, tc := range cases {
		got, ok := ParseDifficulty(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseDifficulty(%q) = (%s, %v), want (%s, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCardDedupeKey(t *testing.T) {
	t.Parallel()

	a := Card{Question: "What is Go?", Answer: "A language"}
	b := Card{Question: "WHAT IS GO?", Answer: "a LANGUAGE"}
	if a.DedupeKey() != b.DedupeKey() {
		t.Error("Expected case-insensitive dedupe keys to match")
	}

	// Different fields must not collide even when concatenations would.
	c := Card{Question: "ab", Answer: "c"}
	d := Card{Question: "a", Answer: "bc"}
	if c.DedupeKey() == d.DedupeKey() {
		t.Error("Expected distinct (question, answer) pairs to have distinct keys")
	}
}

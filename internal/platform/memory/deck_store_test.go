package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardsmithhq/cardsmith/internal/domain"
	"github.com/cardsmithhq/cardsmith/internal/store"
)

func newDeck(t *testing.T) *domain.Deck {
	t.Helper()
	deck, err := domain.NewDeck([]domain.Card{
		{Question: "Q", Answer: "A", Difficulty: domain.DifficultyEasy, Topic: "T"},
	}, 0, 10)
	require.NoError(t, err)
	return deck
}

func TestDeckStoreSaveAndGet(t *testing.T) {
	t.Parallel()

	s := NewDeckStore(4)
	ctx := context.Background()
	deck := newDeck(t)

	require.NoError(t, s.SaveDeck(ctx, deck))

	got, err := s.GetDeck(ctx, deck.ID)
	require.NoError(t, err)
	assert.Equal(t, deck, got)
}

func TestDeckStoreNotFound(t *testing.T) {
	t.Parallel()

	s := NewDeckStore(4)
	_, err := s.GetDeck(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrDeckNotFound)
}

func TestDeckStoreRejectsInvalidDeck(t *testing.T) {
	t.Parallel()

	s := NewDeckStore(4)
	err := s.SaveDeck(context.Background(), &domain.Deck{ID: uuid.New()})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	err = s.SaveDeck(context.Background(), nil)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestDeckStoreEvictsOldestFirst(t *testing.T) {
	t.Parallel()

	s := NewDeckStore(2)
	ctx := context.Background()

	first := newDeck(t)
	second := newDeck(t)
	third := newDeck(t)

	require.NoError(t, s.SaveDeck(ctx, first))
	require.NoError(t, s.SaveDeck(ctx, second))
	require.NoError(t, s.SaveDeck(ctx, third))

	assert.Equal(t, 2, s.Len())

	_, err := s.GetDeck(ctx, first.ID)
	assert.ErrorIs(t, err, store.ErrDeckNotFound, "oldest deck evicted")

	_, err = s.GetDeck(ctx, third.ID)
	assert.NoError(t, err)
}

package deck

import (
	"math/rand/v2"
	"testing"

	"github.com/arcanaland/scoundrel/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsFullAndUnique(t *testing.T) {
	cards := New()
	require.Len(t, cards, Size)

	seen := map[card.Card]bool{}
	for _, c := range cards {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}

func TestShuffleKeepsCards(t *testing.T) {
	cards := New()
	Shuffle(cards, rand.New(rand.NewPCG(7, 7)))

	assert.ElementsMatch(t, New(), cards)
	assert.NotEqual(t, New(), cards)
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	a, b := New(), New()
	Shuffle(a, rand.New(rand.NewPCG(42, 42)))
	Shuffle(b, rand.New(rand.NewPCG(42, 42)))
	assert.Equal(t, a, b)
}

func TestHighDiamond(t *testing.T) {
	for _, r := range card.Ranks {
		c := card.New(card.Diamonds, r)
		assert.Equal(t, r.Value() > 10, HighDiamond(c), "card %s", c)
	}
	assert.False(t, HighDiamond(card.New(card.Hearts, card.Ace)))
	assert.False(t, HighDiamond(card.New(card.Spades, card.King)))
}

func TestPlayable(t *testing.T) {
	cards := Playable()
	require.Len(t, cards, 48)
	for _, c := range cards {
		assert.False(t, HighDiamond(c), "card %s should be filtered", c)
	}
	assert.Contains(t, cards, card.New(card.Diamonds, card.Ten))
}

package deck

import (
	"math/rand/v2"

	"github.com/arcanaland/scoundrel/internal/card"
)

// Size is the number of cards in a full deck
const Size = 52

// Predicate selects cards
type Predicate func(card.Card) bool

// New returns a full 52-card deck in suit then rank order
func New() []card.Card {
	cards := make([]card.Card, 0, Size)
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.New(suit, rank))
		}
	}
	return cards
}

// Shuffle randomizes the order of cards in place
func Shuffle(cards []card.Card, rng *rand.Rand) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// Without returns the cards not matching pred, keeping their order.
// The input slice is reused.
func Without(cards []card.Card, pred Predicate) []card.Card {
	kept := cards[:0]
	for _, c := range cards {
		if !pred(c) {
			kept = append(kept, c)
		}
	}
	return kept
}

// HighDiamond matches the diamond face cards and ace, which this variant
// strips from the deck before play.
func HighDiamond(c card.Card) bool {
	return c.Suit == card.Diamonds && c.Value() > card.Ten.Value()
}

// Playable returns the unshuffled deck with the high diamonds removed
func Playable() []card.Card {
	return Without(New(), HighDiamond)
}

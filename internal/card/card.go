package card

import "strconv"

// Suit is one of the four French suits
type Suit int

const (
	Hearts Suit = iota
	Spades
	Diamonds
	Clubs
)

// Suits lists every suit in deck order
var Suits = []Suit{Hearts, Spades, Diamonds, Clubs}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	default:
		return "unknown"
	}
}

// Symbol returns the unicode pip for the suit
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "•"
	}
}

// Red reports whether the suit is printed in red
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Rank is a card rank. Its integer value is its strength.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from Two to Ace
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Value returns the numeric strength of the rank (2-14)
func (r Rank) Value() int {
	return int(r)
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// New returns the card of the given suit and rank
func New(s Suit, r Rank) Card {
	return Card{Suit: s, Rank: r}
}

// Value is shorthand for c.Rank.Value()
func (c Card) Value() int {
	return c.Rank.Value()
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Package board holds the game state of a Scoundrel session and the rules
// that move cards between its piles.
//
// Every operation that takes a table index silently ignores an index that
// is out of range. The board has no notion of winning or losing; callers
// inspect HP and pile sizes after each action.
package board

import (
	"math/rand/v2"
	"slices"

	"github.com/arcanaland/scoundrel/internal/card"
	"github.com/arcanaland/scoundrel/internal/deck"
)

const (
	// StartingHP is the player's hit points after Setup
	StartingHP = 20
	// RoomSize is the number of cards FillRoom brings the table up to
	RoomSize = 4
)

// Board is the mutable state of one game
type Board struct {
	draw    []card.Card
	table   []card.Card
	discard []card.Card
	hand    []card.Card
	hp      int

	rng *rand.Rand
}

// New returns an empty board that shuffles with rng
func New(rng *rand.Rand) *Board {
	return &Board{
		hp:  StartingHP,
		rng: rng,
	}
}

// Setup deals a fresh shuffled deck into the draw pile and resets HP.
// All other piles are emptied.
func (b *Board) Setup() {
	b.draw = deck.New()
	deck.Shuffle(b.draw, b.rng)
	b.table = nil
	b.discard = nil
	b.hand = nil
	b.hp = StartingHP
}

// FilterDrawPile removes every draw pile card matching pred
func (b *Board) FilterDrawPile(pred deck.Predicate) {
	b.draw = deck.Without(b.draw, pred)
}

// DrawCard pops the top card of the draw pile
func (b *Board) DrawCard() (card.Card, bool) {
	if len(b.draw) == 0 {
		return card.Card{}, false
	}
	top := b.draw[len(b.draw)-1]
	b.draw = b.draw[:len(b.draw)-1]
	return top, true
}

// FillRoom draws until the room is full or the draw pile runs out
func (b *Board) FillRoom() {
	for len(b.table) < RoomSize {
		c, ok := b.DrawCard()
		if !ok {
			return
		}
		b.table = append(b.table, c)
	}
}

// DiscardHand moves the whole hand onto the discard pile
func (b *Board) DiscardHand() {
	b.discard = append(b.discard, b.hand...)
	b.hand = nil
}

// EquipWeapon discards the current hand and holds c as the only weapon
func (b *Board) EquipWeapon(c card.Card) {
	b.DiscardHand()
	b.hand = append(b.hand, c)
}

// Equip takes the table card at i and equips it
func (b *Board) Equip(i int) {
	c, ok := b.takeFromTable(i)
	if !ok {
		return
	}
	b.EquipWeapon(c)
}

// AttackWithWeapon fights the table card at i with the equipped weapon.
// The defeated monster is stacked in the hand behind the weapon and the
// player takes the amount by which it outranks the weapon.
func (b *Board) AttackWithWeapon(i int) {
	weapon, ok := b.Weapon()
	if !ok {
		return
	}
	target, ok := b.takeFromTable(i)
	if !ok {
		return
	}
	b.hand = append(b.hand, target)
	b.damage(target.Value() - weapon.Value())
}

// AttackNoWeapon fights the table card at i bare-handed, taking its full value
func (b *Board) AttackNoWeapon(i int) {
	target, ok := b.takeFromTable(i)
	if !ok {
		return
	}
	b.discard = append(b.discard, target)
	b.damage(target.Value())
}

// Heal consumes the table card at i and restores its value in HP. HP is not capped.
func (b *Board) Heal(i int) {
	c, ok := b.takeFromTable(i)
	if !ok {
		return
	}
	b.hp += c.Value()
	b.discard = append(b.discard, c)
}

// Discard drops the table card at i with no other effect
func (b *Board) Discard(i int) {
	c, ok := b.takeFromTable(i)
	if !ok {
		return
	}
	b.discard = append(b.discard, c)
}

// Flee runs from the room: the table is shuffled, up to a room's worth of
// cards go to the bottom of the draw pile, and the room is refilled.
func (b *Board) Flee() {
	deck.Shuffle(b.table, b.rng)
	for range RoomSize {
		if len(b.table) == 0 {
			break
		}
		c := b.table[len(b.table)-1]
		b.table = b.table[:len(b.table)-1]
		b.draw = slices.Insert(b.draw, 0, c)
	}
	b.FillRoom()
}

// HP returns the player's hit points
func (b *Board) HP() int {
	return b.hp
}

// Weapon returns the equipped weapon, the first card of the hand
func (b *Board) Weapon() (card.Card, bool) {
	if len(b.hand) == 0 {
		return card.Card{}, false
	}
	return b.hand[0], true
}

// DrawPile returns a copy of the draw pile, top card last
func (b *Board) DrawPile() []card.Card { return slices.Clone(b.draw) }

// Table returns a copy of the room
func (b *Board) Table() []card.Card { return slices.Clone(b.table) }

// Discards returns a copy of the discard pile
func (b *Board) Discards() []card.Card { return slices.Clone(b.discard) }

// Hand returns a copy of the player's hand
func (b *Board) Hand() []card.Card { return slices.Clone(b.hand) }

// Total counts the cards across all four piles
func (b *Board) Total() int {
	return len(b.draw) + len(b.table) + len(b.discard) + len(b.hand)
}

func (b *Board) takeFromTable(i int) (card.Card, bool) {
	if i < 0 || i >= len(b.table) {
		return card.Card{}, false
	}
	c := b.table[i]
	b.table = slices.Delete(b.table, i, i+1)
	return c, true
}

// damage lowers HP by n, ignoring negative amounts and stopping at zero
func (b *Board) damage(n int) {
	if n <= 0 {
		return
	}
	b.hp = max(b.hp-n, 0)
}

package game

import (
	"fmt"

	"github.com/arcanaland/scoundrel/internal/board"
)

// Kind is the action a player asked for
type Kind int

const (
	Equip Kind = iota
	Attack
	AttackWeapon
	Heal
	Discard
	DiscardHand
	Fill
	Flee
	Help
	Quit
)

func (k Kind) String() string {
	switch k {
	case Equip:
		return "equip"
	case Attack:
		return "attack"
	case AttackWeapon:
		return "attack-weapon"
	case Heal:
		return "heal"
	case Discard:
		return "discard"
	case DiscardHand:
		return "discard-hand"
	case Fill:
		return "fill"
	case Flee:
		return "flee"
	case Help:
		return "help"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Targeted reports whether the kind acts on a table card
func (k Kind) Targeted() bool {
	switch k {
	case Equip, Attack, AttackWeapon, Heal, Discard:
		return true
	}
	return false
}

// Intent is a decoded, validated player command. Index is the table
// position for targeted kinds and ignored otherwise.
type Intent struct {
	Kind  Kind
	Index int
}

// At returns a targeted intent for table index i
func At(k Kind, i int) Intent { return Intent{Kind: k, Index: i} }

// Do returns an untargeted intent
func Do(k Kind) Intent { return Intent{Kind: k} }

func (in Intent) String() string {
	if in.Kind.Targeted() {
		return fmt.Sprintf("%s %d", in.Kind, in.Index)
	}
	return in.Kind.String()
}

// Apply performs the board operation for in. Help and Quit do not touch
// the board and are left to the session.
func Apply(b *board.Board, in Intent) {
	switch in.Kind {
	case Equip:
		b.Equip(in.Index)
	case Attack:
		b.AttackNoWeapon(in.Index)
	case AttackWeapon:
		b.AttackWithWeapon(in.Index)
	case Heal:
		b.Heal(in.Index)
	case Discard:
		b.Discard(in.Index)
	case DiscardHand:
		b.DiscardHand()
	case Fill:
		b.FillRoom()
	case Flee:
		b.Flee()
	}
}

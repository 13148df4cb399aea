package game

import "github.com/arcanaland/scoundrel/internal/board"

// Status is where a session stands
type Status int

const (
	Playing Status = iota
	Victory
	Defeated
	Abandoned
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Victory:
		return "victory"
	case Defeated:
		return "defeated"
	case Abandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Over reports whether the session has ended
func (s Status) Over() bool {
	return s != Playing
}

// StatusOf derives the session status from the board. Running out of HP
// wins over an empty dungeon: dying on the last monster is a defeat.
func StatusOf(b *board.Board) Status {
	if b.HP() <= 0 {
		return Defeated
	}
	if len(b.DrawPile()) == 0 && len(b.Table()) == 0 {
		return Victory
	}
	return Playing
}

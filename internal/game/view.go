package game

import (
	"github.com/arcanaland/scoundrel/internal/board"
	"github.com/arcanaland/scoundrel/internal/card"
	"github.com/arcanaland/scoundrel/internal/selection"
)

// View is a read-only snapshot of the board for presentation
type View struct {
	Draw    int
	Table   []card.Card
	Hand    []card.Card
	Discard int
	HP      int
}

// Snapshot captures the current state of b
func Snapshot(b *board.Board) View {
	return View{
		Draw:    len(b.DrawPile()),
		Table:   b.Table(),
		Hand:    b.Hand(),
		Discard: len(b.Discards()),
		HP:      b.HP(),
	}
}

// Sizes returns the pile sizes the selection cursor moves over
func (v View) Sizes() selection.Sizes {
	return selection.Sizes{Table: len(v.Table), Hand: len(v.Hand)}
}

// Armed reports whether a weapon is equipped
func (v View) Armed() bool {
	return len(v.Hand) > 0
}

// Package selection models the navigation cursor of the keypress shell.
//
// A Selection is a tagged value: the zone says which pile is highlighted and
// Index is only meaningful for the Table and Hand zones. Move is a pure
// transition over the selection and the current pile sizes.
package selection

import "fmt"

// Zone identifies the highlighted pile
type Zone int

const (
	None Zone = iota
	Draw
	Table
	Hand
)

func (z Zone) String() string {
	switch z {
	case None:
		return "none"
	case Draw:
		return "draw"
	case Table:
		return "table"
	case Hand:
		return "hand"
	default:
		return "unknown"
	}
}

// Direction is a cursor move
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Selection is the current cursor position
type Selection struct {
	Zone  Zone
	Index int
}

// Sizes are the pile lengths a move is evaluated against
type Sizes struct {
	Table int
	Hand  int
}

// OnDraw selects the draw pile marker
func OnDraw() Selection { return Selection{Zone: Draw} }

// OnTable selects the table card at i
func OnTable(i int) Selection { return Selection{Zone: Table, Index: i} }

// OnHand selects the hand card at i
func OnHand(i int) Selection { return Selection{Zone: Hand, Index: i} }

// TableIndex returns the selected table index, if a table card is selected
func (s Selection) TableIndex() (int, bool) {
	if s.Zone != Table {
		return 0, false
	}
	return s.Index, true
}

func (s Selection) String() string {
	switch s.Zone {
	case Table, Hand:
		return fmt.Sprintf("%s[%d]", s.Zone, s.Index)
	default:
		return s.Zone.String()
	}
}

// Move returns the selection after moving one step in dir. Moves clamp at
// the ends of a pile and cross into the neighbouring zone at a boundary:
// left of the first table card is the draw marker, right of the last table
// card is the first hand card.
func Move(s Selection, n Sizes, dir Direction) Selection {
	if s.Zone == None {
		if n.Table > 0 {
			return OnTable(0)
		}
		return OnDraw()
	}

	s = Clamp(s, n)
	switch s.Zone {
	case Draw:
		switch dir {
		case Right:
			if n.Table > 0 {
				return OnTable(0)
			}
			if n.Hand > 0 {
				return OnHand(0)
			}
		case Down:
			if n.Hand > 0 {
				return OnHand(0)
			}
		}
	case Table:
		switch dir {
		case Left:
			if s.Index == 0 {
				return OnDraw()
			}
			return OnTable(s.Index - 1)
		case Right:
			if s.Index < n.Table-1 {
				return OnTable(s.Index + 1)
			}
			if n.Hand > 0 {
				return OnHand(0)
			}
		case Down:
			if n.Hand > 0 {
				return OnHand(min(s.Index, n.Hand-1))
			}
		}
	case Hand:
		switch dir {
		case Left:
			if s.Index > 0 {
				return OnHand(s.Index - 1)
			}
			if n.Table > 0 {
				return OnTable(n.Table - 1)
			}
			return OnDraw()
		case Right:
			if s.Index < n.Hand-1 {
				return OnHand(s.Index + 1)
			}
		case Up:
			if n.Table > 0 {
				return OnTable(min(s.Index, n.Table-1))
			}
			return OnDraw()
		}
	}
	return s
}

// Clamp brings a selection back into range after the piles changed size.
// An emptied zone hands the cursor to the nearest non-empty one, falling
// back to the draw marker.
func Clamp(s Selection, n Sizes) Selection {
	switch s.Zone {
	case Table:
		if n.Table == 0 {
			if n.Hand > 0 {
				return OnHand(0)
			}
			return OnDraw()
		}
		return OnTable(max(0, min(s.Index, n.Table-1)))
	case Hand:
		if n.Hand == 0 {
			if n.Table > 0 {
				return OnTable(n.Table - 1)
			}
			return OnDraw()
		}
		return OnHand(max(0, min(s.Index, n.Hand-1)))
	case Draw:
		return OnDraw()
	default:
		return Selection{}
	}
}

// Package nav is the keypress shell: arrow keys move a cursor over the
// draw pile, the room and the hand, and single keys act on the selection.
package nav

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arcanaland/scoundrel/internal/game"
	"github.com/arcanaland/scoundrel/internal/render"
	"github.com/arcanaland/scoundrel/internal/selection"
	"github.com/arcanaland/scoundrel/internal/terminal"
)

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
)

var helpEntries = [][2]string{
	{"arrows", "Move the selection"},
	{"enter", "Act on the selection: fill from the deck, fight a room card (with your weapon if you hold one) or drop your hand"},
	{"e", "Equip the selected room card"},
	{"a", "Attack the selected room card bare-handed"},
	{"w", "Attack the selected room card with your weapon"},
	{"h", "Heal with the selected room card"},
	{"d", "Discard the selected room card, or your hand when it is selected"},
	{"x", "Discard your entire hand"},
	{"f", "Fill the room"},
	{"r", "Run from the room"},
	{"?", "Show this help message"},
	{"q", "Quit the game"},
}

var tableActions = map[rune]game.Kind{
	'e': game.Equip,
	'a': game.Attack,
	'w': game.AttackWeapon,
	'h': game.Heal,
	'd': game.Discard,
}

var arrows = map[Key]selection.Direction{
	KeyLeft:  selection.Left,
	KeyRight: selection.Right,
	KeyUp:    selection.Up,
	KeyDown:  selection.Down,
}

// Resolve maps a keypress to a new selection and, when the key is an
// action that applies to the selection, an intent.
func Resolve(ev Event, sel selection.Selection, v game.View) (selection.Selection, game.Intent, bool) {
	sel = selection.Clamp(sel, v.Sizes())

	if dir, ok := arrows[ev.Key]; ok {
		return selection.Move(sel, v.Sizes(), dir), game.Intent{}, false
	}

	switch ev.Key {
	case KeyInterrupt:
		return sel, game.Do(game.Quit), true
	case KeyEnter:
		switch sel.Zone {
		case selection.Draw:
			return sel, game.Do(game.Fill), true
		case selection.Table:
			if v.Armed() {
				return sel, game.At(game.AttackWeapon, sel.Index), true
			}
			return sel, game.At(game.Attack, sel.Index), true
		case selection.Hand:
			return sel, game.Do(game.DiscardHand), true
		}
	case KeyRune:
		switch ev.Rune {
		case 'q':
			return sel, game.Do(game.Quit), true
		case '?':
			return sel, game.Do(game.Help), true
		case 'f':
			return sel, game.Do(game.Fill), true
		case 'r':
			return sel, game.Do(game.Flee), true
		case 'x':
			return sel, game.Do(game.DiscardHand), true
		}
		if ev.Rune == 'd' && sel.Zone == selection.Hand {
			return sel, game.Do(game.DiscardHand), true
		}
		if kind, ok := tableActions[ev.Rune]; ok {
			if i, ok := sel.TableIndex(); ok {
				return sel, game.At(kind, i), true
			}
		}
	}
	return sel, game.Intent{}, false
}

// Shell reads keypresses and keeps the selection cursor
type Shell struct {
	keys *bufio.Reader
	out  io.Writer

	// Width is the terminal width used for layout
	Width int

	sel      selection.Selection
	showHelp bool
}

// New returns a shell reading keys from r. r should be a terminal in raw
// mode and w should translate newlines, see Play.
func New(r io.Reader, w io.Writer) *Shell {
	return &Shell{
		keys: bufio.NewReader(r),
		out:  w,
	}
}

// Selection returns the current cursor
func (s *Shell) Selection() selection.Selection {
	return s.sel
}

// Render redraws the whole screen with the selection highlighted
func (s *Shell) Render(v game.View) error {
	s.sel = selection.Clamp(s.sel, v.Sizes())

	if _, err := io.WriteString(s.out, render.ClearScreen); err != nil {
		return err
	}
	if err := render.Board(s.out, v, render.Options{Selection: s.sel, Width: s.Width}); err != nil {
		return err
	}
	if s.showHelp {
		s.showHelp = false
		return render.Help(s.out, "Keys:", helpEntries, s.Width)
	}
	_, err := io.WriteString(s.out, "arrows move · enter act · ? help · q quit\n")
	return err
}

// ReadIntent reads keys until one resolves to an intent, redrawing after
// each cursor move.
func (s *Shell) ReadIntent(v game.View) (game.Intent, error) {
	for {
		ev, err := ReadKey(s.keys)
		if err != nil {
			return game.Intent{}, err
		}
		next, in, ok := Resolve(ev, s.sel, v)
		moved := next != s.sel
		s.sel = next
		if ok {
			return in, nil
		}
		if moved {
			if err := s.Render(v); err != nil {
				return game.Intent{}, err
			}
		}
	}
}

// Help shows the key list with the next frame
func (s *Shell) Help() error {
	s.showHelp = true
	return nil
}

// End prints how the session finished
func (s *Shell) End(status game.Status, v game.View) error {
	_, err := fmt.Fprintln(s.out, render.Outcome(status, v))
	return err
}

// Play runs sess on the terminal behind in. Raw mode is held for the whole
// session and restored on every return path.
func Play(sess *game.Session, in *os.File, out io.Writer) (status game.Status, err error) {
	restore, err := terminal.MakeRaw(in.Fd())
	if err != nil {
		return game.Playing, err
	}
	defer func() {
		err = errors.Join(err, restore())
	}()

	w := terminal.CRLF{W: out}
	if _, err := io.WriteString(w, hideCursor); err != nil {
		return game.Playing, err
	}
	defer io.WriteString(w, showCursor)

	s := New(in, w)
	s.Width = terminal.Width(in.Fd())
	return sess.Run(s)
}

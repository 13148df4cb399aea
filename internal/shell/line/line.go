// Package line is the line-command shell: the player types a short command
// such as "w 2" and presses enter.
package line

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arcanaland/scoundrel/internal/game"
	"github.com/arcanaland/scoundrel/internal/render"
)

var (
	ErrInvalidCommand = errors.New("invalid command")
	ErrInvalidIndex   = errors.New("invalid index")
)

var helpEntries = [][2]string{
	{"h", "Show this help message"},
	{"e <index>", "Equip weapon from table pile at index"},
	{"a <index>", "Attack without weapon at table pile index"},
	{"w <index>", "Attack with equipped weapon at table pile index"},
	{"r", "Run from the room, putting it at the back of the draw pile"},
	{"h <index>", "Heal using card at table pile index"},
	{"d <index>", "Discard card from table pile at index"},
	{"d", "Discard your entire hand"},
	{"f", "Fill the room with cards from draw pile"},
	{"q", "Quit the game"},
}

var targeted = map[string]game.Kind{
	"e": game.Equip,
	"a": game.Attack,
	"w": game.AttackWeapon,
	"h": game.Heal,
	"d": game.Discard,
}

var untargeted = map[string]game.Kind{
	"d": game.DiscardHand,
	"f": game.Fill,
	"r": game.Flee,
	"q": game.Quit,
	"h": game.Help,
	"?": game.Help,
}

// Parse turns a command line into an intent. Table indices are checked
// against v so that a bad index never reaches the board.
func Parse(input string, v game.View) (game.Intent, error) {
	parts := strings.Fields(input)
	switch len(parts) {
	case 1:
		if kind, ok := untargeted[parts[0]]; ok {
			return game.Do(kind), nil
		}
	case 2:
		kind, ok := targeted[parts[0]]
		if !ok {
			break
		}
		index, err := strconv.Atoi(parts[1])
		if err != nil {
			break
		}
		if index < 0 || index >= len(v.Table) {
			return game.Intent{}, ErrInvalidIndex
		}
		return game.At(kind, index), nil
	}
	return game.Intent{}, ErrInvalidCommand
}

// Shell reads commands from In and draws to Out
type Shell struct {
	in  *bufio.Reader
	out io.Writer

	// Clear erases the screen before each frame
	Clear bool
	// Width is the terminal width used for layout
	Width int

	showHelp bool
}

// New returns a shell over r and w
func New(r io.Reader, w io.Writer) *Shell {
	return &Shell{
		in:  bufio.NewReader(r),
		out: w,
	}
}

// Render draws the board, followed by the help text if it was asked for
func (s *Shell) Render(v game.View) error {
	if s.Clear {
		if _, err := io.WriteString(s.out, render.ClearScreen); err != nil {
			return err
		}
	}
	if err := render.Board(s.out, v, render.Options{Indices: true, Width: s.Width}); err != nil {
		return err
	}
	if s.showHelp {
		s.showHelp = false
		return render.Help(s.out, "Commands:", helpEntries, s.Width)
	}
	return nil
}

// ReadIntent prompts until the player enters a valid command. Input that
// does not parse is reported and prompted for again.
func (s *Shell) ReadIntent(v game.View) (game.Intent, error) {
	for {
		if _, err := io.WriteString(s.out, "> "); err != nil {
			return game.Intent{}, err
		}
		input, err := s.in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(input) == "") {
			return game.Intent{}, err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}

		in, perr := Parse(input, v)
		switch {
		case errors.Is(perr, ErrInvalidIndex):
			fmt.Fprintln(s.out, "Invalid index.")
		case perr != nil:
			fmt.Fprintln(s.out, "Invalid command.")
		default:
			return in, nil
		}
	}
}

// Help shows the command list with the next frame
func (s *Shell) Help() error {
	s.showHelp = true
	return nil
}

// End prints how the session finished
func (s *Shell) End(status game.Status, v game.View) error {
	_, err := fmt.Fprintln(s.out, render.Outcome(status, v))
	return err
}

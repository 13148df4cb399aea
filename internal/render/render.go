// Package render formats game views for a terminal
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/arcanaland/scoundrel/internal/board"
	"github.com/arcanaland/scoundrel/internal/card"
	"github.com/arcanaland/scoundrel/internal/game"
	"github.com/arcanaland/scoundrel/internal/selection"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
)

// ClearScreen erases the terminal and homes the cursor
const ClearScreen = "\x1b[2J\x1b[1;1H"

var (
	labelColor    = colorize.New(colorize.FgCyan)
	redSuit       = colorize.New(colorize.FgRed, colorize.Bold)
	blackSuit     = colorize.New(colorize.FgHiWhite, colorize.Bold)
	selectedColor = colorize.New(colorize.ReverseVideo)
	dimColor      = colorize.New(colorize.Faint)

	// endpoints of the HP gradient
	hpLow  = colorful.Color{R: 0.80, G: 0.16, B: 0.16}
	hpHigh = colorful.Color{R: 0.18, G: 0.72, B: 0.34}
)

// Options control how a view is drawn
type Options struct {
	// Selection is highlighted when its zone is not None
	Selection selection.Selection
	// Indices prefixes table cards with their position
	Indices bool
	// Width of the terminal; zero uses a default
	Width int
}

// Board writes the view: the draw pile, the room and the player's line
func Board(w io.Writer, v game.View, opts Options) error {
	width := opts.Width
	if width <= 0 {
		width = 40
	}
	sel := opts.Selection

	var b strings.Builder

	deckLabel := fmt.Sprintf("deck %d", v.Draw)
	if sel.Zone == selection.Draw {
		deckLabel = highlight(deckLabel)
	}
	b.WriteString(deckLabel)
	b.WriteString(dimColor.Sprintf("   discard %d", v.Discard))
	b.WriteString("\n")

	b.WriteString(labelColor.Sprint("room "))
	for i, c := range v.Table {
		s := Card(c)
		if opts.Indices {
			s = dimColor.Sprintf("%d:", i) + s
		}
		if sel.Zone == selection.Table && sel.Index == i {
			s = highlight(stripAnsi(s))
		}
		b.WriteString(pad(s, 6))
	}
	if len(v.Table) == 0 {
		b.WriteString(dimColor.Sprint("empty"))
	}
	b.WriteString("\n")

	b.WriteString(pad(HP(v.HP), 6))
	for i, c := range v.Hand {
		s := Card(c)
		if sel.Zone == selection.Hand && sel.Index == i {
			s = highlight(stripAnsi(s))
		}
		b.WriteString(s + " ")
	}
	b.WriteString("\n")
	b.WriteString(dimColor.Sprint(strings.Repeat("─", min(width, 60))))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Card returns the card label coloured by suit
func Card(c card.Card) string {
	if c.Suit.Red() {
		return redSuit.Sprint(c.String())
	}
	return blackSuit.Sprint(c.String())
}

// HP returns the hit point counter, shaded from red at zero to green at
// full health.
func HP(hp int) string {
	label := fmt.Sprintf("%dhp", hp)
	if colorize.NoColor {
		return label
	}
	t := float64(hp) / float64(board.StartingHP)
	t = max(0, min(t, 1))
	r, g, bl := hpLow.BlendHcl(hpHigh, t).Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, bl, label)
}

// Outcome returns the closing line for a finished session
func Outcome(s game.Status, v game.View) string {
	switch s {
	case game.Victory:
		return colorize.GreenString("You cleared the dungeon with %d hp left.", v.HP)
	case game.Defeated:
		return colorize.RedString("You died with %d cards left in the dungeon.", v.Draw+len(v.Table))
	default:
		return "You left the dungeon."
	}
}

// Help writes a two column command list wrapped to width
func Help(w io.Writer, title string, entries [][2]string, width int) error {
	keyWidth := 0
	for _, e := range entries {
		keyWidth = max(keyWidth, utf8.RuneCountInString(e[0]))
	}

	var b strings.Builder
	b.WriteString(labelColor.Sprint(title) + "\n")
	for _, e := range entries {
		lines := wrapText(e[1], width-keyWidth-5)
		for i, line := range lines {
			key := ""
			if i == 0 {
				key = e[0]
			}
			fmt.Fprintf(&b, "  %-*s - %s\n", keyWidth, key, line)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// highlight marks the selected item, with brackets when colour is off
func highlight(s string) string {
	if colorize.NoColor {
		return "[" + s + "]"
	}
	return selectedColor.Sprint(s)
}

// pad right-pads s to n visible columns
func pad(s string, n int) string {
	visible := utf8.RuneCountInString(stripAnsi(s))
	if visible >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-visible)
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

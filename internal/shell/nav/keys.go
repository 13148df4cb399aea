package nav

import (
	"bufio"
	"unicode/utf8"
)

// Key is a decoded keypress
type Key int

const (
	KeyUnknown Key = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyInterrupt
)

// Event is one keypress. Rune is set for KeyRune.
type Event struct {
	Key  Key
	Rune rune
}

const (
	ctrlC = 0x03
	ctrlD = 0x04
	esc   = 0x1b
)

// ReadKey decodes the next keypress from a terminal in raw mode.
// Arrow keys arrive as CSI ("ESC [") or SS3 ("ESC O") sequences; other
// escape sequences are consumed and reported as KeyUnknown.
func ReadKey(r *bufio.Reader) (Event, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Event{}, err
	}

	switch {
	case b == ctrlC || b == ctrlD:
		return Event{Key: KeyInterrupt}, nil
	case b == '\r' || b == '\n':
		return Event{Key: KeyEnter}, nil
	case b == esc:
		return readEscape(r)
	case b >= utf8.RuneSelf:
		if err := r.UnreadByte(); err != nil {
			return Event{}, err
		}
		ru, _, err := r.ReadRune()
		if err != nil {
			return Event{}, err
		}
		return Event{Key: KeyRune, Rune: ru}, nil
	default:
		return Event{Key: KeyRune, Rune: rune(b)}, nil
	}
}

func readEscape(r *bufio.Reader) (Event, error) {
	// a lone escape has nothing queued behind it
	if r.Buffered() == 0 {
		return Event{Key: KeyEscape}, nil
	}
	intro, err := r.ReadByte()
	if err != nil {
		return Event{}, err
	}
	if intro != '[' && intro != 'O' {
		return Event{Key: KeyUnknown}, nil
	}

	// parameters then a final byte in 0x40-0x7e
	for {
		b, err := r.ReadByte()
		if err != nil {
			return Event{}, err
		}
		if b < 0x40 || b > 0x7e {
			continue
		}
		switch b {
		case 'A':
			return Event{Key: KeyUp}, nil
		case 'B':
			return Event{Key: KeyDown}, nil
		case 'C':
			return Event{Key: KeyRight}, nil
		case 'D':
			return Event{Key: KeyLeft}, nil
		default:
			return Event{Key: KeyUnknown}, nil
		}
	}
}

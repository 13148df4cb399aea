package line

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/arcanaland/scoundrel/internal/card"
	"github.com/arcanaland/scoundrel/internal/game"
	colorize "github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	colorize.NoColor = true
}

func room(n int) game.View {
	v := game.View{HP: 20, Draw: 10}
	for i := 0; i < n; i++ {
		v.Table = append(v.Table, card.New(card.Clubs, card.Rank(i+2)))
	}
	return v
}

func TestParse(t *testing.T) {
	v := room(4)
	cases := []struct {
		input string
		want  game.Intent
	}{
		{"e 0", game.At(game.Equip, 0)},
		{"a 3", game.At(game.Attack, 3)},
		{"w 1", game.At(game.AttackWeapon, 1)},
		{"h 2", game.At(game.Heal, 2)},
		{"d 1", game.At(game.Discard, 1)},
		{"d", game.Do(game.DiscardHand)},
		{"f", game.Do(game.Fill)},
		{"r", game.Do(game.Flee)},
		{"q", game.Do(game.Quit)},
		{"h", game.Do(game.Help)},
		{"?", game.Do(game.Help)},
		{"  w   2 \n", game.At(game.AttackWeapon, 2)},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input, v)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRejects(t *testing.T) {
	v := room(2)
	cases := []struct {
		input string
		want  error
	}{
		{"", ErrInvalidCommand},
		{"x", ErrInvalidCommand},
		{"e", ErrInvalidCommand},
		{"f 1", ErrInvalidCommand},
		{"w one", ErrInvalidCommand},
		{"a 1 2", ErrInvalidCommand},
		{"a 2", ErrInvalidIndex},
		{"h -1", ErrInvalidIndex},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			_, err := Parse(tc.input, v)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadIntentReprompts(t *testing.T) {
	var out bytes.Buffer
	s := New(strings.NewReader("bogus\n\na 7\nw 1\n"), &out)

	in, err := s.ReadIntent(room(4))
	require.NoError(t, err)
	assert.Equal(t, game.At(game.AttackWeapon, 1), in)
	assert.Contains(t, out.String(), "Invalid command.")
	assert.Contains(t, out.String(), "Invalid index.")
	assert.Equal(t, 4, strings.Count(out.String(), "> "))
}

func TestReadIntentEOF(t *testing.T) {
	s := New(strings.NewReader("f"), io.Discard)

	in, err := s.ReadIntent(room(1))
	require.NoError(t, err)
	assert.Equal(t, game.Do(game.Fill), in)

	_, err = s.ReadIntent(room(1))
	assert.ErrorIs(t, err, io.EOF)
}

func TestHelpShowsWithNextFrame(t *testing.T) {
	var out bytes.Buffer
	s := New(strings.NewReader(""), &out)

	require.NoError(t, s.Help())
	require.NoError(t, s.Render(room(1)))
	assert.Contains(t, out.String(), "Commands:")
	assert.Contains(t, out.String(), "Discard your entire hand")

	out.Reset()
	require.NoError(t, s.Render(room(1)))
	assert.NotContains(t, out.String(), "Commands:")
}

func TestRenderClears(t *testing.T) {
	var out bytes.Buffer
	s := New(strings.NewReader(""), &out)
	s.Clear = true

	require.NoError(t, s.Render(room(2)))
	assert.True(t, strings.HasPrefix(out.String(), "\x1b[2J\x1b[1;1H"))
	assert.Contains(t, out.String(), "0:2♣")
}

func TestSessionOverLineShell(t *testing.T) {
	var out bytes.Buffer
	sess := game.NewSession(9)
	s := New(strings.NewReader("h\nd 0\nd 0\nq\n"), &out)

	status, err := sess.Run(s)
	require.NoError(t, err)
	assert.Equal(t, game.Abandoned, status)
	assert.Len(t, sess.Board.Table(), 2)
	assert.Len(t, sess.Board.Discards(), 2)
	assert.Contains(t, out.String(), "Commands:")
	assert.Contains(t, out.String(), "You left the dungeon.")
}

func TestSessionOverLineShellInputClosed(t *testing.T) {
	sess := game.NewSession(9)
	s := New(strings.NewReader("d 0\n"), io.Discard)

	status, err := sess.Run(s)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, game.Playing, status)
}

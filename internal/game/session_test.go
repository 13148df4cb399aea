package game

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/arcanaland/scoundrel/internal/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptAdapter answers ReadIntent from a function of the current view
type scriptAdapter struct {
	next    func(View) (Intent, error)
	renders int
	reads   int
	helps   int
	ended   Status
	final   View
}

func (a *scriptAdapter) Render(View) error { a.renders++; return nil }

func (a *scriptAdapter) ReadIntent(v View) (Intent, error) {
	a.reads++
	return a.next(v)
}

func (a *scriptAdapter) Help() error { a.helps++; return nil }

func (a *scriptAdapter) End(s Status, v View) error {
	a.ended = s
	a.final = v
	return nil
}

func TestNewSession(t *testing.T) {
	s := NewSession(11)

	assert.Equal(t, board.StartingHP, s.Board.HP())
	assert.Len(t, s.Board.Table(), 4)
	assert.Len(t, s.Board.DrawPile(), 44)
	assert.Equal(t, 48, s.Board.Total())
	assert.Equal(t, Playing, StatusOf(s.Board))
}

func TestNewSessionIsReproducible(t *testing.T) {
	a, b := NewSession(5), NewSession(5)
	assert.Equal(t, a.Board.DrawPile(), b.Board.DrawPile())
	assert.Equal(t, a.Board.Table(), b.Board.Table())
}

func TestRunToVictory(t *testing.T) {
	s := NewSession(3)
	a := &scriptAdapter{next: func(v View) (Intent, error) {
		if len(v.Table) > 0 {
			return At(Discard, 0), nil
		}
		return Do(Fill), nil
	}}

	status, err := s.Run(a)
	require.NoError(t, err)
	assert.Equal(t, Victory, status)
	assert.Equal(t, Victory, a.ended)
	assert.Equal(t, 48, a.final.Discard)
	assert.Equal(t, 20, a.final.HP)
	// 48 discards plus 11 refills
	assert.Equal(t, 59, a.reads)
}

func TestRunToDefeat(t *testing.T) {
	s := NewSession(8)
	a := &scriptAdapter{next: func(v View) (Intent, error) {
		if len(v.Table) > 0 {
			return At(Attack, 0), nil
		}
		return Do(Fill), nil
	}}

	status, err := s.Run(a)
	require.NoError(t, err)
	assert.Equal(t, Defeated, status)
	assert.Equal(t, 0, a.final.HP)
	assert.Equal(t, 0, s.Board.HP())
	// the loop stops reading as soon as HP hits zero
	assert.Equal(t, a.reads, a.renders-1)
}

func TestRunQuit(t *testing.T) {
	s := NewSession(1)
	a := &scriptAdapter{next: func(View) (Intent, error) { return Do(Quit), nil }}

	status, err := s.Run(a)
	require.NoError(t, err)
	assert.Equal(t, Abandoned, status)
	assert.Equal(t, 1, a.reads)
	assert.Equal(t, Abandoned, a.ended)
}

func TestRunHelpDoesNotTouchBoard(t *testing.T) {
	s := NewSession(1)
	before := Snapshot(s.Board)
	calls := 0
	a := &scriptAdapter{next: func(View) (Intent, error) {
		calls++
		if calls == 1 {
			return Do(Help), nil
		}
		return Do(Quit), nil
	}}

	_, err := s.Run(a)
	require.NoError(t, err)
	assert.Equal(t, 1, a.helps)
	assert.Equal(t, before, Snapshot(s.Board))
}

func TestRunInputErrorEndsSession(t *testing.T) {
	s := NewSession(1)
	boom := errors.New("stdin closed")
	a := &scriptAdapter{next: func(View) (Intent, error) { return Intent{}, boom }}

	status, err := s.Run(a)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, Playing, status)
	assert.Equal(t, Status(0), a.ended)
}

func TestRunLogs(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(2, WithLogger(log.New(&buf, "", 0)))
	a := &scriptAdapter{next: func(View) (Intent, error) { return Do(Quit), nil }}

	_, err := s.Run(a)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "session start seed=2")
	assert.Contains(t, buf.String(), "session end status=abandoned")
}

func TestApplyDispatch(t *testing.T) {
	s := NewSession(4)
	table := s.Board.Table()

	Apply(s.Board, At(Equip, 0))
	weapon, ok := s.Board.Weapon()
	require.True(t, ok)
	assert.Equal(t, table[0], weapon)

	Apply(s.Board, At(Heal, 0))
	assert.Equal(t, 20+table[1].Value(), s.Board.HP())

	Apply(s.Board, At(Discard, 0))
	assert.Len(t, s.Board.Table(), 1)

	Apply(s.Board, Do(DiscardHand))
	assert.Empty(t, s.Board.Hand())
	assert.Len(t, s.Board.Discards(), 3)

	Apply(s.Board, Do(Fill))
	assert.Len(t, s.Board.Table(), 4)

	hp := s.Board.HP()
	Apply(s.Board, At(AttackWeapon, 0))
	assert.Equal(t, hp, s.Board.HP(), "no weapon equipped")
	Apply(s.Board, At(Attack, 9))
	assert.Equal(t, hp, s.Board.HP(), "index out of range")

	Apply(s.Board, Do(Flee))
	assert.Equal(t, 48, s.Board.Total())
}

func TestStatusOf(t *testing.T) {
	s := NewSession(1)
	assert.Equal(t, Playing, StatusOf(s.Board))
	assert.False(t, Playing.Over())
	assert.True(t, Victory.Over())
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "heal 2", At(Heal, 2).String())
	assert.Equal(t, "flee", Do(Flee).String())
	assert.True(t, AttackWeapon.Targeted())
	assert.False(t, Fill.Targeted())
}

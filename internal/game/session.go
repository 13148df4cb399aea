// Package game drives a Scoundrel session: it turns player intents into
// board operations and decides when the session is over.
package game

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"

	"github.com/arcanaland/scoundrel/internal/board"
	"github.com/arcanaland/scoundrel/internal/deck"
)

// Adapter is a presentation shell. It shows the board and turns player
// input into intents; it never mutates game state itself.
type Adapter interface {
	Render(View) error
	// ReadIntent blocks until the player enters a valid intent. Malformed
	// input is handled inside the adapter. An error ends the session.
	ReadIntent(View) (Intent, error)
	Help() error
	End(Status, View) error
}

// Session owns the board for one game
type Session struct {
	Board *board.Board
	Seed  uint64

	logger *log.Logger
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger the session reports to
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession deals a new game from seed: the deck is shuffled, the high
// diamonds are stripped and the first room is laid out.
func NewSession(seed uint64, opts ...Option) *Session {
	s := &Session{
		Board:  board.New(rand.New(rand.NewPCG(seed, seed^0x5c0d))),
		Seed:   seed,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Board.Setup()
	s.Board.FilterDrawPile(deck.HighDiamond)
	s.Board.FillRoom()
	s.logger.Printf("session start seed=%d draw=%d", seed, len(s.Board.DrawPile()))
	return s
}

// Step applies one intent and returns the resulting status. Help is a no-op
// here; Quit abandons the session.
func (s *Session) Step(in Intent) Status {
	if in.Kind == Quit {
		return Abandoned
	}
	Apply(s.Board, in)
	return StatusOf(s.Board)
}

// Run loops render, read, apply until the game ends or the player quits
func (s *Session) Run(a Adapter) (Status, error) {
	status := StatusOf(s.Board)
	for {
		view := Snapshot(s.Board)
		if err := a.Render(view); err != nil {
			return status, fmt.Errorf("render: %w", err)
		}
		if status.Over() {
			break
		}

		in, err := a.ReadIntent(view)
		if err != nil {
			s.logger.Printf("input failed: %v", err)
			return status, fmt.Errorf("read input: %w", err)
		}
		if in.Kind == Help {
			if err := a.Help(); err != nil {
				return status, fmt.Errorf("help: %w", err)
			}
			continue
		}

		status = s.Step(in)
		s.logger.Printf("%s -> hp=%d draw=%d table=%d status=%s",
			in, s.Board.HP(), len(s.Board.DrawPile()), len(s.Board.Table()), status)
		if status == Abandoned {
			break
		}
	}

	s.logger.Printf("session end status=%s hp=%d", status, s.Board.HP())
	if err := a.End(status, Snapshot(s.Board)); err != nil {
		return status, fmt.Errorf("end: %w", err)
	}
	return status, nil
}

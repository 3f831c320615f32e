// Package game runs one Elevens game on a board, applying the removal rules
// to each selection and tracking when the game is over.
package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/arcanaland/elevens/internal/board"
	"github.com/arcanaland/elevens/internal/rules"
	"github.com/google/uuid"
)

var (
	ErrEmptySelection = errors.New("no cards selected")
	ErrIllegalGroup   = errors.New("selected cards are not a legal group")
	ErrGameOver       = errors.New("game is over")
)

// State of a session
type State int

const (
	InProgress State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in progress"
	}
}

// Session plays a single game
type Session struct {
	ID string

	board  *board.Board
	logger *slog.Logger
	moves  int
	state  State
}

// NewSession starts a game on b. A nil logger discards output.
func NewSession(b *board.Board, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	id := uuid.NewString()
	s := &Session{
		ID:     id,
		board:  b,
		logger: logger.With("session", id),
	}
	s.evaluate()
	s.logger.Info("game started", "deck", b.DeckSize(), "state", s.state)
	return s
}

// Select removes the selected cards if they form a legal group and deals
// replacements.
func (s *Session) Select(selection []int) (rules.Group, error) {
	if s.state != InProgress {
		return rules.GroupNone, ErrGameOver
	}
	if len(selection) == 0 {
		return rules.GroupNone, ErrEmptySelection
	}
	for _, i := range selection {
		if _, ok := s.board.CardAt(i); !ok {
			return rules.GroupNone, fmt.Errorf("invalid selection %v: %w", selection, emptyOrRange(i))
		}
	}

	group := rules.Classify(s.board, selection)
	if group == rules.GroupNone {
		s.logger.Debug("illegal selection", "selection", selection)
		return rules.GroupNone, fmt.Errorf("%w: %v", ErrIllegalGroup, selection)
	}

	if err := s.board.Replace(selection); err != nil {
		return rules.GroupNone, fmt.Errorf("error removing cards: %w", err)
	}
	s.moves++
	s.logger.Debug("group removed", "selection", selection, "group", group, "deck", s.board.DeckSize())

	s.evaluate()
	if s.state != InProgress {
		s.logger.Info("game over", "state", s.state, "moves", s.moves, "deck", s.board.DeckSize())
	}
	return group, nil
}

// Hint returns one legal group on the board
func (s *Session) Hint() ([]int, bool) {
	return rules.FindLegalGroup(s.board)
}

// State returns whether the game is still going, won or lost
func (s *Session) State() State {
	return s.state
}

// Moves returns the number of groups removed so far
func (s *Session) Moves() int {
	return s.moves
}

// Board returns the board being played
func (s *Session) Board() *board.Board {
	return s.board
}

func (s *Session) evaluate() {
	switch {
	case s.board.GameIsWon():
		s.state = Won
	case !rules.HasAnyLegalMove(s.board):
		s.state = Lost
	default:
		s.state = InProgress
	}
}

func emptyOrRange(i int) error {
	if i < 0 || i >= board.Size {
		return fmt.Errorf("%w: %d", board.ErrSlotOutOfRange, i)
	}
	return fmt.Errorf("%w: %d", board.ErrSlotEmpty, i)
}

package session

import (
	"fmt"

	"github.com/hailam/cherris/internal/board"
)

// Selector tracks the two-step pick-a-piece, pick-a-destination interaction
// used by the interactive front ends.
type Selector struct {
	session *Session
	from    board.Square
	targets board.SquareSet
}

// NewSelector creates a selector with nothing selected.
func NewSelector(s *Session) *Selector {
	return &Selector{session: s, from: board.NoSquare}
}

// Selected returns the selected square, or NoSquare.
func (sel *Selector) Selected() board.Square {
	return sel.from
}

// Targets returns the destinations of the selected piece.
// It is nil when nothing is selected.
func (sel *Selector) Targets() board.SquareSet {
	return sel.targets
}

// Clear drops the selection.
func (sel *Selector) Clear() {
	sel.from = board.NoSquare
	sel.targets = nil
}

// Select picks the piece on sq. It must belong to the side to move.
func (sel *Selector) Select(sq board.Square) error {
	sel.Clear()

	id, ok := sel.session.board.At(sq)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoPiece, sq)
	}
	if id.Color() != sel.session.turn {
		return fmt.Errorf("%w: %s to move", ErrWrongTurn, sel.session.turn)
	}

	targets, err := sel.session.MovesFrom(sq)
	if err != nil {
		return err
	}
	sel.from = sq
	sel.targets = targets
	return nil
}

// Click handles a click on sq. With a piece selected, clicking one of its
// targets plays the move and clicking the piece again deselects it; any other
// click selects the piece on sq.
func (sel *Selector) Click(sq board.Square) (m Move, played bool, err error) {
	if sel.from.IsValid() {
		if sq == sel.from {
			sel.Clear()
			return Move{}, false, nil
		}
		if sel.targets.Contains(sq) {
			from := sel.from
			sel.Clear()
			m, err = sel.session.PlaySquares(from, sq)
			return m, err == nil, err
		}
	}
	return Move{}, false, sel.Select(sq)
}

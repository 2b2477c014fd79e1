// Package session drives a game on top of the board package: it alternates turns,
// validates requested moves against the move generator and keeps an undo history.
package session

import (
	"errors"
	"fmt"

	"github.com/hailam/cherris/internal/board"
)

var (
	ErrNoPiece       = errors.New("no piece on square")
	ErrWrongTurn     = errors.New("not this side's turn")
	ErrIllegalMove   = errors.New("illegal move")
	ErrNothingToUndo = errors.New("nothing to undo")
)

// Move is a played move.
type Move struct {
	From     board.Square
	To       board.Square
	Piece    board.PieceID
	Captured board.PieceID
}

// String returns the move in from-to form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// IsCapture returns true if the move removed a piece.
func (m Move) IsCapture() bool {
	return m.Captured.Occupied()
}

// Session owns a board and whose turn it is.
type Session struct {
	start   string
	board   *board.Board
	turn    board.Color
	history []Move
}

// New creates a session at the starting position with White to move.
func New() *Session {
	return &Session{
		start: board.StartFEN,
		board: board.NewStandard(),
		turn:  board.White,
	}
}

// FromFEN creates a session from a FEN string.
func FromFEN(fen string) (*Session, error) {
	b, side, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Session{start: b.FEN(side), board: b, turn: side}, nil
}

// Board returns a snapshot of the current board.
func (s *Session) Board() *board.Board {
	return s.board.Clone()
}

// Turn returns the side to move.
func (s *Session) Turn() board.Color {
	return s.turn
}

// History returns the played moves, oldest first.
func (s *Session) History() []Move {
	return append([]Move(nil), s.history...)
}

// FEN returns the current position.
func (s *Session) FEN() string {
	return s.board.FEN(s.turn)
}

// Moves returns the destinations of the piece on the labelled square.
// Own pieces are never destinations.
func (s *Session) Moves(label string) (board.SquareSet, error) {
	sq, err := board.ParseSquare(label)
	if err != nil {
		return nil, err
	}
	return s.MovesFrom(sq)
}

// MovesFrom is Moves for an already parsed square.
func (s *Session) MovesFrom(sq board.Square) (board.SquareSet, error) {
	moves, err := board.MovesFrom(s.board, sq, board.WithFriendlyFilter())
	if errors.Is(err, board.ErrEmptySquare) {
		return nil, fmt.Errorf("%w: %s", ErrNoPiece, sq)
	}
	return moves, err
}

// Play parses both labels and plays the move.
func (s *Session) Play(from, to string) (Move, error) {
	fromSq, err := board.ParseSquare(from)
	if err != nil {
		return Move{}, err
	}
	toSq, err := board.ParseSquare(to)
	if err != nil {
		return Move{}, err
	}
	return s.PlaySquares(fromSq, toSq)
}

// PlaySquares plays a move for the side to move and passes the turn.
func (s *Session) PlaySquares(from, to board.Square) (Move, error) {
	id, ok := s.board.At(from)
	if !ok {
		return Move{}, fmt.Errorf("%w: %s", ErrNoPiece, from)
	}
	p, err := board.Decode(id)
	if err != nil {
		return Move{}, err
	}
	if p.Color != s.turn {
		return Move{}, fmt.Errorf("%w: %s to move", ErrWrongTurn, s.turn)
	}

	moves := board.PossibleMoves(p, from, s.board, board.WithFriendlyFilter())
	if !moves.Contains(to) {
		return Move{}, fmt.Errorf("%w: %s %s%s", ErrIllegalMove, p.Type, from, to)
	}

	captured, err := s.board.Move(from, to)
	if err != nil {
		return Move{}, err
	}

	m := Move{From: from, To: to, Piece: id, Captured: captured}
	s.history = append(s.history, m)
	s.turn = s.turn.Other()
	return m, nil
}

// Undo takes back the last move.
func (s *Session) Undo() (Move, error) {
	if len(s.history) == 0 {
		return Move{}, ErrNothingToUndo
	}
	m := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	s.board.Remove(m.To)
	if err := s.board.Set(m.From, m.Piece); err != nil {
		return Move{}, err
	}
	if m.IsCapture() {
		if err := s.board.Set(m.To, m.Captured); err != nil {
			return Move{}, err
		}
	}
	s.turn = s.turn.Other()
	return m, nil
}

// Reset returns to the starting position.
func (s *Session) Reset() {
	s.start = board.StartFEN
	s.board = board.NewStandard()
	s.turn = board.White
	s.history = nil
}

package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSquare = errors.New("invalid square")
	ErrUnknownPiece  = errors.New("unknown piece")
	ErrEmptySquare   = errors.New("empty square")
	ErrInvalidFEN    = errors.New("invalid FEN")
)

// SquareError reports a label or packed square that does not name a board square.
type SquareError struct {
	Label string
}

func (e *SquareError) Error() string {
	return fmt.Sprintf("invalid square: %q", e.Label)
}

func (e *SquareError) Unwrap() error {
	return ErrInvalidSquare
}

// PieceError reports a packed piece whose ordinal matches no piece type.
type PieceError struct {
	ID PieceID
}

func (e *PieceError) Error() string {
	return fmt.Sprintf("unknown piece: %#02x (ordinal %d)", uint8(e.ID), e.ID.Ordinal())
}

func (e *PieceError) Unwrap() error {
	return ErrUnknownPiece
}

// Package oracle cross-checks sliding-piece move generation against the
// magic-bitboard attack tables of dragontoothmg.
package oracle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"github.com/hailam/cherris/internal/board"
)

// ErrUnsupported is returned for pieces the oracle does not model.
var ErrUnsupported = errors.New("oracle: only rooks, bishops and queens are checked")

// MismatchError lists squares where the generator and the oracle disagree.
type MismatchError struct {
	From    board.Square
	Missing []board.Square // oracle has, generator lacks
	Extra   []board.Square // generator has, oracle lacks
}

func (e *MismatchError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "oracle mismatch from %s", e.From)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&sb, " missing %v", e.Missing)
	}
	if len(e.Extra) > 0 {
		fmt.Fprintf(&sb, " extra %v", e.Extra)
	}
	return sb.String()
}

// bitIndex converts a packed square to dragontoothmg's a1=0 numbering.
func bitIndex(sq board.Square) uint8 {
	return uint8((7-sq.Row())*8 + sq.Col())
}

// fromBitIndex is the inverse of bitIndex.
func fromBitIndex(i uint8) board.Square {
	return board.NewSquare(7-int(i)/8, int(i)%8)
}

// occupancy returns the bitboards of all pieces and of the given color's pieces.
func occupancy(b *board.Board, c board.Color) (all, own uint64) {
	for _, sq := range b.Squares() {
		bit := uint64(1) << bitIndex(sq)
		all |= bit
		if id, _ := b.At(sq); id.Color() == c {
			own |= bit
		}
	}
	return all, own
}

// Expected returns the destinations of the slider on from according to
// dragontoothmg, excluding squares held by its own color.
func Expected(b *board.Board, from board.Square) (board.SquareSet, error) {
	p, err := b.PieceAt(from)
	if err != nil {
		return nil, err
	}

	all, own := occupancy(b, p.Color)
	idx := bitIndex(from)

	var attacks uint64
	switch p.Type {
	case board.Rook:
		attacks = dragontoothmg.CalculateRookMoveBitboard(idx, all)
	case board.Bishop:
		attacks = dragontoothmg.CalculateBishopMoveBitboard(idx, all)
	case board.Queen:
		attacks = dragontoothmg.CalculateRookMoveBitboard(idx, all) |
			dragontoothmg.CalculateBishopMoveBitboard(idx, all)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, p.Type)
	}
	attacks &^= own

	set := board.NewSquareSet()
	for i := uint8(0); i < 64; i++ {
		if attacks&(uint64(1)<<i) != 0 {
			set.Add(fromBitIndex(i))
		}
	}
	return set, nil
}

// Verify compares PossibleMoves with the oracle for the slider on from.
func Verify(b *board.Board, from board.Square) error {
	want, err := Expected(b, from)
	if err != nil {
		return err
	}
	got, err := board.MovesFrom(b, from, board.WithFriendlyFilter())
	if err != nil {
		return err
	}

	mm := &MismatchError{From: from}
	for _, sq := range want.Sorted() {
		if !got.Contains(sq) {
			mm.Missing = append(mm.Missing, sq)
		}
	}
	for _, sq := range got.Sorted() {
		if !want.Contains(sq) {
			mm.Extra = append(mm.Extra, sq)
		}
	}
	if len(mm.Missing) > 0 || len(mm.Extra) > 0 {
		return mm
	}
	return nil
}

// VerifyAll checks every slider on the board and joins the mismatches.
func VerifyAll(b *board.Board) error {
	var errs []error
	for _, sq := range b.Squares() {
		err := Verify(b, sq)
		if err == nil || errors.Is(err, ErrUnsupported) {
			continue
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Package board implements the packed-byte chess board and move generation.
package board

import "fmt"

// Square is a packed square identifier.
// High nibble is the row counted from the top (0 = rank 8, 7 = rank 1),
// low nibble is the column (0 = file a, 7 = file h).
type Square uint8

// NoSquare is the off-board sentinel. It never passes IsValid.
const NoSquare Square = 0xFF

// Rows of interest for pawn handling.
const (
	BlackPawnRow = 1
	WhitePawnRow = 6
)

// NewSquare packs a row and column into a Square.
// Returns NoSquare if either is outside 0-7.
func NewSquare(row, col int) Square {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return NoSquare
	}
	return Square(row<<4 | col)
}

// SquareFromIndex converts a board array index (0-63, row*8+col) into a Square.
func SquareFromIndex(i int) Square {
	if i < 0 || i > 63 {
		return NoSquare
	}
	return Square((i/8)<<4 | i%8)
}

// Row returns the row nibble (0 = rank 8).
func (sq Square) Row() int {
	return int(sq >> 4)
}

// Col returns the column nibble (0 = file a).
func (sq Square) Col() int {
	return int(sq & 0x0F)
}

// Index returns row*8+col. It does not bounds check; validate with IsValid first.
func (sq Square) Index() int {
	return sq.Row()*8 + sq.Col()
}

// IsValid returns true if both nibbles lie in 0-7.
func (sq Square) IsValid() bool {
	return sq.Row() <= 7 && sq.Col() <= 7 && sq.Index() < 64
}

// Rank returns the chess rank number (1-8).
func (sq Square) Rank() int {
	return 8 - sq.Row()
}

// String returns the file/rank label for the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.Col(), '8'-sq.Row())
}

// ParseSquare parses a two-character label (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, &SquareError{Label: s}
	}

	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, &SquareError{Label: s}
	}

	return NewSquare(int('8'-rank), int(file-'a')), nil
}

// MustParseSquare is like ParseSquare but panics on a bad label.
// Only for constant tables and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Delta is a row/column offset between two squares.
type Delta struct {
	Row, Col int
}

// Packed returns the offset as a packed identifier delta:
// one row is 16, one column is 1.
func (d Delta) Packed() int {
	return d.Row*16 + d.Col
}

// Step returns the square reached by applying d, or NoSquare if it falls off the board.
// Row and column are added separately so a column borrow never reaches the row nibble.
func (sq Square) Step(d Delta) Square {
	if !sq.IsValid() {
		return NoSquare
	}
	return NewSquare(sq.Row()+d.Row, sq.Col()+d.Col)
}

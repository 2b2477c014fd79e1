package board

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Board maps occupied squares to packed piece identifiers.
// The map is the only store; the 64-entry array is derived from it on demand.
type Board struct {
	pieces map[Square]PieceID
}

// backRank is the column layout of the first rank, with the sub-index of each piece.
var backRank = [8]struct {
	pt  PieceType
	sub uint8
}{
	{Rook, 0}, {Knight, 0}, {Bishop, 0}, {Queen, 0},
	{King, 0}, {Bishop, 1}, {Knight, 1}, {Rook, 1},
}

// New returns an empty board.
func New() *Board {
	return &Board{pieces: make(map[Square]PieceID, 32)}
}

// NewStandard returns the standard starting position.
func NewStandard() *Board {
	var arr [64]PieceID
	for col := 0; col < 8; col++ {
		arr[BlackPawnRow*8+col] = Encode(NewPiece(Pawn, Black), uint8(col))
		arr[WhitePawnRow*8+col] = Encode(NewPiece(Pawn, White), uint8(col))

		br := backRank[col]
		arr[0*8+col] = Encode(NewPiece(br.pt, Black), br.sub)
		arr[7*8+col] = Encode(NewPiece(br.pt, White), br.sub)
	}
	return FromArray(arr)
}

// FromArray builds a board from a row*8+col array of identifiers.
func FromArray(arr [64]PieceID) *Board {
	b := New()
	b.LoadArray(arr)
	return b
}

// LoadArray clears the board and inserts every non-empty array entry.
func (b *Board) LoadArray(arr [64]PieceID) {
	if b.pieces == nil {
		b.pieces = make(map[Square]PieceID, 32)
	}
	maps.Clear(b.pieces)
	for i, id := range arr {
		if id != Empty {
			b.pieces[SquareFromIndex(i)] = id
		}
	}
}

// Array returns the board as a row*8+col array.
func (b *Board) Array() [64]PieceID {
	var arr [64]PieceID
	for sq, id := range b.pieces {
		arr[sq.Index()] = id
	}
	return arr
}

// At returns the identifier on sq. Off-board squares are reported empty.
func (b *Board) At(sq Square) (PieceID, bool) {
	if b == nil || !sq.IsValid() {
		return Empty, false
	}
	id, ok := b.pieces[sq]
	return id, ok
}

// PieceAt decodes the piece on sq.
func (b *Board) PieceAt(sq Square) (Piece, error) {
	if !sq.IsValid() {
		return Piece{}, &SquareError{Label: sq.String()}
	}
	id, ok := b.At(sq)
	if !ok {
		return Piece{}, ErrEmptySquare
	}
	return Decode(id)
}

// IsEmpty returns true if no piece stands on sq.
func (b *Board) IsEmpty(sq Square) bool {
	_, ok := b.At(sq)
	return !ok
}

// Set places id on sq. An identifier without the occupied flag clears the square.
func (b *Board) Set(sq Square, id PieceID) error {
	if !sq.IsValid() {
		return &SquareError{Label: sq.String()}
	}
	if !id.Occupied() {
		delete(b.pieces, sq)
		return nil
	}
	if _, err := Decode(id); err != nil {
		return err
	}
	if b.pieces == nil {
		b.pieces = make(map[Square]PieceID, 32)
	}
	b.pieces[sq] = id
	return nil
}

// Remove clears sq and returns what stood there.
func (b *Board) Remove(sq Square) (PieceID, bool) {
	id, ok := b.At(sq)
	if ok {
		delete(b.pieces, sq)
	}
	return id, ok
}

// Move relocates the piece on from to to, returning any identifier it replaced.
func (b *Board) Move(from, to Square) (PieceID, error) {
	if !from.IsValid() {
		return Empty, &SquareError{Label: from.String()}
	}
	if !to.IsValid() {
		return Empty, &SquareError{Label: to.String()}
	}
	id, ok := b.pieces[from]
	if !ok {
		return Empty, ErrEmptySquare
	}
	captured := b.pieces[to]
	delete(b.pieces, from)
	b.pieces[to] = id
	return captured, nil
}

// Len returns the number of occupied squares.
func (b *Board) Len() int {
	return len(b.pieces)
}

// Squares returns the occupied squares in array order.
func (b *Board) Squares() []Square {
	sqs := maps.Keys(b.pieces)
	slices.Sort(sqs)
	return sqs
}

// Clone returns an independent copy, usable as an immutable snapshot.
func (b *Board) Clone() *Board {
	return &Board{pieces: maps.Clone(b.pieces)}
}

// Equal reports whether both boards hold the same identifiers on the same squares.
func (b *Board) Equal(o *Board) bool {
	return maps.Equal(b.pieces, o.pieces)
}

// Render returns a fixed-width grid, rank 8 on top and file a on the left.
func (b *Board) Render() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		sb.WriteByte(byte('8' - row))
		sb.WriteString(" |")
		for col := 0; col < 8; col++ {
			cell := "  "
			if id, ok := b.At(NewSquare(row, col)); ok {
				if p, err := Decode(id); err == nil {
					cell = p.Label()
				} else {
					cell = "??"
				}
			}
			sb.WriteString(cell)
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")
	return sb.String()
}

// String returns the rendered grid.
func (b *Board) String() string {
	return b.Render()
}

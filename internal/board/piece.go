package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// PieceID is a packed piece identifier:
// bit 7 occupied, bit 6 color (1 = white), bits 0-3 type ordinal.
type PieceID uint8

const (
	FlagOccupied PieceID = 0x80
	FlagWhite    PieceID = 0x40
	OrdinalMask  PieceID = 0x0F

	// Empty is the identifier of an unoccupied square.
	Empty PieceID = 0
)

// ordinalRange is the first ordinal and the width of a type's range.
type ordinalRange struct {
	base, width uint8
}

var ordinals = [6]ordinalRange{
	Pawn:   {8, 8},
	Knight: {4, 2},
	Bishop: {2, 2},
	Rook:   {6, 2},
	Queen:  {1, 1},
	King:   {0, 1},
}

// Occupied reports whether the occupied flag is set.
func (id PieceID) Occupied() bool {
	return id&FlagOccupied != 0
}

// Ordinal returns the type ordinal (bits 0-3).
func (id PieceID) Ordinal() uint8 {
	return uint8(id & OrdinalMask)
}

// Color returns the color encoded in bit 6.
func (id PieceID) Color() Color {
	if id&FlagWhite != 0 {
		return White
	}
	return Black
}

// Piece is the decoded view of a PieceID.
type Piece struct {
	Color Color
	Type  PieceType
}

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	return Piece{Color: c, Type: pt}
}

// Decode converts a packed identifier into a Piece.
// Empty squares return ErrEmptySquare and are never given a type.
func Decode(id PieceID) (Piece, error) {
	if !id.Occupied() {
		return Piece{}, ErrEmptySquare
	}

	var pt PieceType
	switch ord := id.Ordinal(); {
	case ord >= 8 && ord <= 15:
		pt = Pawn
	case ord == 0:
		pt = King
	case ord == 1:
		pt = Queen
	case ord == 2 || ord == 3:
		pt = Bishop
	case ord == 4 || ord == 5:
		pt = Knight
	case ord == 6 || ord == 7:
		pt = Rook
	default:
		return Piece{}, &PieceError{ID: id}
	}

	return Piece{Color: id.Color(), Type: pt}, nil
}

// Encode packs a piece into an identifier. sub selects an ordinal inside the
// type's range and wraps around its width.
func Encode(p Piece, sub uint8) PieceID {
	r := ordinals[p.Type]
	id := FlagOccupied | PieceID(r.base+sub%r.width)
	if p.Color == White {
		id |= FlagWhite
	}
	return id
}

// ID packs the piece with sub-index zero.
func (p Piece) ID() PieceID {
	return Encode(p, 0)
}

// typeLabels keeps the display convention: knight is a lowercase k.
var typeLabels = [6]byte{
	Pawn:   'p',
	Knight: 'k',
	Bishop: 'B',
	Rook:   'R',
	Queen:  'Q',
	King:   'K',
}

// Label returns the two-character display label, e.g. "wp" or "bK".
func (p Piece) Label() string {
	c := byte('w')
	if p.Color == Black {
		c = 'b'
	}
	return string([]byte{c, typeLabels[p.Type]})
}

// String returns the display label.
func (p Piece) String() string {
	return p.Label()
}

// FEN returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) FEN() byte {
	chars := "PNBRQK"
	c := chars[p.Type]
	if p.Color == Black {
		c += 'a' - 'A'
	}
	return c
}

// PieceFromFEN converts a FEN character to a Piece.
func PieceFromFEN(c byte) (Piece, bool) {
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return NewPiece(Pawn, color), true
	case 'N':
		return NewPiece(Knight, color), true
	case 'B':
		return NewPiece(Bishop, color), true
	case 'R':
		return NewPiece(Rook, color), true
	case 'Q':
		return NewPiece(Queen, color), true
	case 'K':
		return NewPiece(King, color), true
	default:
		return Piece{}, false
	}
}

package board

import (
	"errors"
	"testing"
)

func TestDecodeOrdinals(t *testing.T) {
	want := map[uint8]PieceType{
		0: King, 1: Queen,
		2: Bishop, 3: Bishop,
		4: Knight, 5: Knight,
		6: Rook, 7: Rook,
	}
	for ord := uint8(8); ord <= 15; ord++ {
		want[ord] = Pawn
	}

	for ord, pt := range want {
		for _, c := range []Color{White, Black} {
			id := FlagOccupied | PieceID(ord)
			if c == White {
				id |= FlagWhite
			}
			p, err := Decode(id)
			if err != nil {
				t.Fatalf("Decode(%#02x): %v", uint8(id), err)
			}
			if p.Type != pt || p.Color != c {
				t.Errorf("Decode(%#02x) = %v %v, want %v %v", uint8(id), p.Color, p.Type, c, pt)
			}
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, id := range []PieceID{Empty, 0x01, 0x4F, 0x40} {
		if _, err := Decode(id); !errors.Is(err, ErrEmptySquare) {
			t.Errorf("Decode(%#02x) error = %v, want ErrEmptySquare", uint8(id), err)
		}
	}
}

func TestDecodeIgnoresBitsFourAndFive(t *testing.T) {
	// bits 4-5 are outside the ordinal mask
	p, err := Decode(FlagOccupied | FlagWhite | 0x30 | 1)
	if err != nil {
		t.Fatal(err)
	}
	if p != NewPiece(Queen, White) {
		t.Errorf("got %v, want white queen", p)
	}
}

func TestEncodeDecode(t *testing.T) {
	for pt := Pawn; pt <= King; pt++ {
		for _, c := range []Color{White, Black} {
			p := NewPiece(pt, c)
			for sub := uint8(0); sub < 10; sub++ {
				got, err := Decode(Encode(p, sub))
				if err != nil {
					t.Fatalf("Decode(Encode(%v, %d)): %v", p, sub, err)
				}
				if got != p {
					t.Errorf("Encode/Decode %v sub %d = %v", p, sub, got)
				}
			}
		}
	}

	if Encode(NewPiece(Bishop, White), 1) != 0xC3 {
		t.Errorf("second white bishop = %#02x", uint8(Encode(NewPiece(Bishop, White), 1)))
	}
	if Encode(NewPiece(Pawn, Black), 3) != 0x8B {
		t.Errorf("black d-pawn = %#02x", uint8(Encode(NewPiece(Pawn, Black), 3)))
	}
}

func TestPieceLabel(t *testing.T) {
	tests := []struct {
		p    Piece
		want string
	}{
		{NewPiece(Pawn, White), "wp"},
		{NewPiece(King, White), "wK"},
		{NewPiece(Queen, Black), "bQ"},
		{NewPiece(Bishop, Black), "bB"},
		{NewPiece(Knight, White), "wk"},
		{NewPiece(Rook, Black), "bR"},
	}
	for _, tc := range tests {
		if got := tc.p.Label(); got != tc.want {
			t.Errorf("%v %v label = %q, want %q", tc.p.Color, tc.p.Type, got, tc.want)
		}
	}
}

func TestPieceFEN(t *testing.T) {
	for _, c := range []byte("PNBRQKpnbrqk") {
		p, ok := PieceFromFEN(c)
		if !ok {
			t.Fatalf("PieceFromFEN(%q) failed", c)
		}
		if p.FEN() != c {
			t.Errorf("PieceFromFEN(%q).FEN() = %q", c, p.FEN())
		}
	}
	if _, ok := PieceFromFEN('x'); ok {
		t.Error("PieceFromFEN('x') should fail")
	}
}

func TestPieceErrorUnwrap(t *testing.T) {
	err := error(&PieceError{ID: 0x9F})
	if !errors.Is(err, ErrUnknownPiece) {
		t.Errorf("PieceError should unwrap to ErrUnknownPiece")
	}
}

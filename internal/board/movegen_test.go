package board

import (
	"reflect"
	"sort"
	"testing"
)

func labels(ss ...string) []string {
	out := append(make([]string, 0, len(ss)), ss...)
	sort.Slice(out, func(i, j int) bool {
		return MustParseSquare(out[i]).Index() < MustParseSquare(out[j]).Index()
	})
	return out
}

func expectMoves(t *testing.T, got SquareSet, want ...string) {
	t.Helper()
	if !reflect.DeepEqual(got.Labels(), labels(want...)) {
		t.Errorf("moves = %v, want %v", got.Labels(), labels(want...))
	}
}

func TestPawnStartingMoves(t *testing.T) {
	b := NewStandard()
	got := PossibleMoves(NewPiece(Pawn, White), MustParseSquare("a2"), b)
	expectMoves(t, got, "a3", "a4")

	got = PossibleMoves(NewPiece(Pawn, Black), MustParseSquare("e7"), b)
	expectMoves(t, got, "e6", "e5")
}

func TestKingInCornerOfStandardBoard(t *testing.T) {
	got := PossibleMoves(NewPiece(King, White), MustParseSquare("a1"), NewStandard())
	expectMoves(t, got, "a2", "b1", "b2")
}

func TestSlidersOnEmptyBoard(t *testing.T) {
	d4 := MustParseSquare("d4")
	rook := []string{"a4", "b4", "c4", "e4", "f4", "g4", "h4", "d1", "d2", "d3", "d5", "d6", "d7", "d8"}
	bishop := []string{"a1", "b2", "c3", "e5", "f6", "g7", "h8", "a7", "b6", "c5", "e3", "f2", "g1"}

	tests := []struct {
		name string
		pt   PieceType
		want []string
	}{
		{"Rook", Rook, rook},
		{"Bishop", Bishop, bishop},
		{"Queen", Queen, append(append([]string{}, rook...), bishop...)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := PossibleMoves(NewPiece(tt.pt, White), d4, New())
			expectMoves(t, got, tt.want...)
		})
	}

	if n := PossibleMoves(NewPiece(Queen, White), d4, New()).Len(); n != 27 {
		t.Errorf("queen on d4 has %d moves, want 27", n)
	}
}

func TestKnightOnEmptyBoard(t *testing.T) {
	got := PossibleMoves(NewPiece(Knight, White), MustParseSquare("d4"), New())
	expectMoves(t, got, "b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5")
}

func TestNilOccupancyIsEmptyBoard(t *testing.T) {
	got := PossibleMoves(NewPiece(Knight, Black), MustParseSquare("a8"), nil)
	expectMoves(t, got, "b6", "c7")
}

func TestEdgeSquaresDoNotWrap(t *testing.T) {
	tests := []struct {
		pt   PieceType
		from string
		want []string
	}{
		{King, "h4", []string{"g3", "g4", "g5", "h3", "h5"}},
		{King, "a8", []string{"a7", "b7", "b8"}},
		{Knight, "h1", []string{"f2", "g3"}},
		{Knight, "a5", []string{"b7", "c6", "c4", "b3"}},
		{Rook, "h8", []string{"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h1", "h2", "h3", "h4", "h5", "h6", "h7"}},
		{Bishop, "a4", []string{"b5", "c6", "d7", "e8", "b3", "c2", "d1"}},
	}

	for _, tc := range tests {
		got := PossibleMoves(NewPiece(tc.pt, White), MustParseSquare(tc.from), New())
		if !reflect.DeepEqual(got.Labels(), labels(tc.want...)) {
			t.Errorf("%v on %s = %v, want %v", tc.pt, tc.from, got.Labels(), labels(tc.want...))
		}
	}
}

func TestInvalidFromSquare(t *testing.T) {
	for _, sq := range []Square{NoSquare, 0x08, 0x80} {
		if got := PossibleMoves(NewPiece(Queen, White), sq, New()); got.Len() != 0 {
			t.Errorf("moves from %#02x = %v, want none", uint8(sq), got)
		}
	}
}

func place(t *testing.T, b *Board, label string, p Piece) {
	t.Helper()
	if err := b.Set(MustParseSquare(label), p.ID()); err != nil {
		t.Fatalf("place %s: %v", label, err)
	}
}

func TestRaysStopAtFirstOccupant(t *testing.T) {
	b := New()
	place(t, b, "d4", NewPiece(Rook, White))
	place(t, b, "d6", NewPiece(Pawn, Black)) // capturable
	place(t, b, "f4", NewPiece(Pawn, White)) // own piece blocks
	place(t, b, "d7", NewPiece(Queen, Black))

	got := PossibleMoves(NewPiece(Rook, White), MustParseSquare("d4"), b)
	expectMoves(t, got, "d5", "d6", "e4", "a4", "b4", "c4", "d3", "d2", "d1")

	b = New()
	place(t, b, "c1", NewPiece(Bishop, White))
	place(t, b, "d2", NewPiece(Pawn, White))
	place(t, b, "a3", NewPiece(Knight, Black))
	got = PossibleMoves(NewPiece(Bishop, White), MustParseSquare("c1"), b)
	expectMoves(t, got, "b2", "a3")
}

func TestQueenOnStandardBoardIsBlocked(t *testing.T) {
	got := PossibleMoves(NewPiece(Queen, White), MustParseSquare("d1"), NewStandard())
	if got.Len() != 0 {
		t.Errorf("queen on d1 has moves %v at the start", got)
	}
}

func TestPawnCaptures(t *testing.T) {
	b := New()
	place(t, b, "e4", NewPiece(Pawn, White))
	place(t, b, "d5", NewPiece(Knight, Black))
	place(t, b, "f5", NewPiece(Knight, White))

	got := PossibleMoves(NewPiece(Pawn, White), MustParseSquare("e4"), b)
	expectMoves(t, got, "e5", "d5")

	// blocked straight ahead, capture still allowed
	place(t, b, "e5", NewPiece(Pawn, Black))
	got = PossibleMoves(NewPiece(Pawn, White), MustParseSquare("e4"), b)
	expectMoves(t, got, "d5")

	b = New()
	place(t, b, "a7", NewPiece(Pawn, Black))
	place(t, b, "b6", NewPiece(Bishop, White))
	place(t, b, "a5", NewPiece(Rook, White))
	got = PossibleMoves(NewPiece(Pawn, Black), MustParseSquare("a7"), b)
	expectMoves(t, got, "a6", "b6")
}

func TestPawnDoubleStepNeedsClearPath(t *testing.T) {
	b := NewStandard()
	place(t, b, "c3", NewPiece(Knight, White))
	got := PossibleMoves(NewPiece(Pawn, White), MustParseSquare("c2"), b)
	if got.Len() != 0 {
		t.Errorf("blocked pawn moves = %v", got)
	}

	b = NewStandard()
	place(t, b, "g4", NewPiece(Knight, Black))
	got = PossibleMoves(NewPiece(Pawn, White), MustParseSquare("g2"), b)
	expectMoves(t, got, "g3")

	// away from the start row only one step
	got = PossibleMoves(NewPiece(Pawn, White), MustParseSquare("b3"), New())
	expectMoves(t, got, "b4")
	// last row: nowhere to go without promotion
	got = PossibleMoves(NewPiece(Pawn, White), MustParseSquare("b8"), New())
	expectMoves(t, got)
}

func TestFriendlyFilter(t *testing.T) {
	b := NewStandard()
	a1 := MustParseSquare("a1")

	got := PossibleMoves(NewPiece(King, White), a1, b, WithFriendlyFilter())
	expectMoves(t, got)

	got = PossibleMoves(NewPiece(Knight, White), MustParseSquare("b1"), b)
	expectMoves(t, got, "a3", "c3", "d2")
	got = PossibleMoves(NewPiece(Knight, White), MustParseSquare("b1"), b, WithFriendlyFilter())
	expectMoves(t, got, "a3", "c3")
}

func TestMovesFrom(t *testing.T) {
	b := NewStandard()
	got, err := MovesFrom(b, MustParseSquare("g8"), WithFriendlyFilter())
	if err != nil {
		t.Fatal(err)
	}
	expectMoves(t, got, "f6", "h6")

	if _, err := MovesFrom(b, MustParseSquare("e4")); err == nil {
		t.Error("MovesFrom on an empty square should fail")
	}
}

func TestGeneratorDoesNotMutateBoard(t *testing.T) {
	b := NewStandard()
	before := b.Clone()
	for _, sq := range b.Squares() {
		p, _ := b.PieceAt(sq)
		PossibleMoves(p, sq, b, WithFriendlyFilter())
	}
	if !b.Equal(before) {
		t.Error("generation changed the board")
	}
}

func TestSquareSet(t *testing.T) {
	s := NewSquareSet(MustParseSquare("h1"), MustParseSquare("a8"), NoSquare)
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (NoSquare dropped)", s.Len())
	}
	s.Union(NewSquareSet(MustParseSquare("e4")))
	if s.String() != "{a8 e4 h1}" {
		t.Errorf("String = %s", s)
	}
	if !s.Contains(MustParseSquare("e4")) || s.Contains(MustParseSquare("e5")) {
		t.Error("Contains mismatch")
	}
}

func TestMissingRules(t *testing.T) {
	if len(MissingRules()) == 0 {
		t.Error("MissingRules should not be empty")
	}
}

package session

import (
	"errors"
	"testing"

	"github.com/hailam/cherris/internal/board"
)

func TestPlayAlternatesTurns(t *testing.T) {
	s := New()

	m, err := s.Play("e2", "e4")
	if err != nil {
		t.Fatalf("e2e4: %v", err)
	}
	if m.String() != "e2e4" || m.IsCapture() {
		t.Errorf("move = %v capture=%v", m, m.IsCapture())
	}
	if s.Turn() != board.Black {
		t.Errorf("turn = %v, want Black", s.Turn())
	}

	if _, err := s.Play("d2", "d4"); !errors.Is(err, ErrWrongTurn) {
		t.Errorf("white moving twice error = %v", err)
	}
	if _, err := s.Play("d7", "d5"); err != nil {
		t.Fatalf("d7d5: %v", err)
	}
	if _, err := s.Play("e4", "d5"); err != nil {
		t.Fatalf("e4xd5: %v", err)
	}

	h := s.History()
	if len(h) != 3 || !h[2].IsCapture() {
		t.Fatalf("history = %v", h)
	}
	p, err := s.Board().PieceAt(board.MustParseSquare("d5"))
	if err != nil || p != board.NewPiece(board.Pawn, board.White) {
		t.Errorf("d5 = %v, %v", p, err)
	}
}

func TestPlayErrors(t *testing.T) {
	s := New()
	tests := []struct {
		name     string
		from, to string
		want     error
	}{
		{"EmptySquare", "e4", "e5", ErrNoPiece},
		{"BlackFirst", "e7", "e5", ErrWrongTurn},
		{"PawnTriple", "e2", "e5", ErrIllegalMove},
		{"OwnPiece", "b1", "d2", ErrIllegalMove},
		{"BlockedRook", "a1", "a3", ErrIllegalMove},
		{"BadLabel", "e9", "e4", board.ErrInvalidSquare},
		{"BadTarget", "e2", "z4", board.ErrInvalidSquare},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Play(tt.from, tt.to); !errors.Is(err, tt.want) {
				t.Errorf("Play(%s, %s) error = %v, want %v", tt.from, tt.to, err, tt.want)
			}
		})
	}

	if !s.Board().Equal(board.NewStandard()) || s.Turn() != board.White {
		t.Error("failed moves changed the session")
	}
}

func TestUndoRestoresCapture(t *testing.T) {
	s, err := FromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	before := s.Board()

	if _, err := s.Play("e4", "d5"); err != nil {
		t.Fatalf("exd5: %v", err)
	}
	m, err := s.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if m.String() != "e4d5" {
		t.Errorf("undone move = %v", m)
	}
	if !s.Board().Equal(before) {
		t.Errorf("board after undo:\n%s\nwant:\n%s", s.Board(), before)
	}
	if s.Turn() != board.White {
		t.Errorf("turn after undo = %v", s.Turn())
	}
	if _, err := s.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("second Undo error = %v", err)
	}
}

func TestMoves(t *testing.T) {
	s := New()
	got, err := s.Moves("b1")
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "{a3 c3}" {
		t.Errorf("b1 moves = %v", got)
	}

	if _, err := s.Moves("e4"); !errors.Is(err, ErrNoPiece) {
		t.Errorf("empty square error = %v", err)
	}
	if _, err := s.Moves("x"); !errors.Is(err, board.ErrInvalidSquare) {
		t.Errorf("bad label error = %v", err)
	}
}

func TestSnapshotRestore(t *testing.T) {
	s := New()
	for _, mv := range [][2]string{{"e2", "e4"}, {"d7", "d5"}, {"e4", "d5"}, {"d8", "d5"}} {
		if _, err := s.Play(mv[0], mv[1]); err != nil {
			t.Fatalf("%s%s: %v", mv[0], mv[1], err)
		}
	}

	snap := s.Snapshot()
	if len(snap.Moves) != 4 || snap.Moves[3] != "d8d5" {
		t.Fatalf("snapshot moves = %v", snap.Moves)
	}

	restored, err := Restore(snap)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !restored.Board().Equal(s.Board()) || restored.Turn() != s.Turn() {
		t.Errorf("restored session differs:\n%s", restored.Board())
	}
	if restored.FEN() != s.FEN() {
		t.Errorf("FEN %q != %q", restored.FEN(), s.FEN())
	}
}

func TestRestoreRejectsBadSnapshots(t *testing.T) {
	bad := []Snapshot{
		{},
		{Start: "nonsense"},
		{Start: board.StartFEN, Moves: []string{"e2e5"}},
		{Start: board.StartFEN, Moves: []string{"e2"}},
	}
	for _, snap := range bad {
		if _, err := Restore(snap); err == nil {
			t.Errorf("Restore(%+v) should fail", snap)
		}
	}
}

func TestReset(t *testing.T) {
	s, err := FromFEN("8/8/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	s.Reset()
	if !s.Board().Equal(board.NewStandard()) || s.Turn() != board.White || len(s.History()) != 0 {
		t.Error("Reset did not restore the starting position")
	}
}

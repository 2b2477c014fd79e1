package board

import (
	"log"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DebugMoveGen enables logging of pawn capture probes.
var DebugMoveGen = false

// Occupancy is the read-only board view the generator needs.
type Occupancy interface {
	At(sq Square) (PieceID, bool)
}

// SquareSet is an unordered set of destination squares.
type SquareSet map[Square]struct{}

// NewSquareSet creates a set holding the given squares.
func NewSquareSet(sqs ...Square) SquareSet {
	s := make(SquareSet, len(sqs))
	for _, sq := range sqs {
		s.Add(sq)
	}
	return s
}

// Add inserts sq if it is a valid board square.
func (s SquareSet) Add(sq Square) {
	if sq.IsValid() {
		s[sq] = struct{}{}
	}
}

// Contains reports whether sq is in the set.
func (s SquareSet) Contains(sq Square) bool {
	_, ok := s[sq]
	return ok
}

// Len returns the number of squares.
func (s SquareSet) Len() int {
	return len(s)
}

// Union adds every square of o to s.
func (s SquareSet) Union(o SquareSet) {
	maps.Copy(s, o)
}

// Sorted returns the squares in board array order (a8 first, h1 last).
func (s SquareSet) Sorted() []Square {
	sqs := maps.Keys(s)
	slices.Sort(sqs)
	return sqs
}

// Labels returns the sorted squares as labels.
func (s SquareSet) Labels() []string {
	sqs := s.Sorted()
	labels := make([]string, len(sqs))
	for i, sq := range sqs {
		labels[i] = sq.String()
	}
	return labels
}

func (s SquareSet) String() string {
	return "{" + strings.Join(s.Labels(), " ") + "}"
}

// Direction deltas.
var (
	north = Delta{-1, 0}
	south = Delta{1, 0}
	east  = Delta{0, 1}
	west  = Delta{0, -1}

	rookDirs   = []Delta{north, south, east, west}
	bishopDirs = []Delta{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs  = append(append([]Delta{}, rookDirs...), bishopDirs...)
	kingDeltas = queenDirs

	knightDeltas = []Delta{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
)

type moveConfig struct {
	friendlyFilter bool
}

// MoveOption configures PossibleMoves.
type MoveOption func(*moveConfig)

// WithFriendlyFilter drops destinations occupied by the mover's own color for every
// piece type. Without it king and knight may land on their own pieces.
func WithFriendlyFilter() MoveOption {
	return func(c *moveConfig) {
		c.friendlyFilter = true
	}
}

// PossibleMoves returns the candidate destinations of p standing on from.
// Off-board candidates are dropped. Check, castling, en passant and promotion
// are not considered (see MissingRules).
func PossibleMoves(p Piece, from Square, occ Occupancy, opts ...MoveOption) SquareSet {
	var cfg moveConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if occ == nil {
		occ = New()
	}

	moves := make(SquareSet)
	if !from.IsValid() {
		return moves
	}

	g := generator{piece: p, from: from, occ: occ, moves: moves}
	switch p.Type {
	case Pawn:
		g.pawn()
	case Knight:
		g.leaps(knightDeltas)
	case King:
		g.leaps(kingDeltas)
	case Bishop:
		g.rays(bishopDirs)
	case Rook:
		g.rays(rookDirs)
	case Queen:
		g.rays(queenDirs)
	}

	if cfg.friendlyFilter {
		for sq := range moves {
			if g.friendly(sq) {
				delete(moves, sq)
			}
		}
	}
	return moves
}

// MovesFrom decodes the piece on from and returns its destinations.
func MovesFrom(b *Board, from Square, opts ...MoveOption) (SquareSet, error) {
	p, err := b.PieceAt(from)
	if err != nil {
		return nil, err
	}
	return PossibleMoves(p, from, b, opts...), nil
}

type generator struct {
	piece Piece
	from  Square
	occ   Occupancy
	moves SquareSet
}

// occupant decodes the piece on sq. ok is false for empty or undecodable squares.
func (g *generator) occupant(sq Square) (Piece, bool) {
	id, ok := g.occ.At(sq)
	if !ok || !id.Occupied() {
		return Piece{}, false
	}
	p, err := Decode(id)
	if err != nil {
		return Piece{}, false
	}
	return p, true
}

func (g *generator) empty(sq Square) bool {
	_, ok := g.occupant(sq)
	return !ok
}

func (g *generator) friendly(sq Square) bool {
	p, ok := g.occupant(sq)
	return ok && p.Color == g.piece.Color
}

func (g *generator) enemy(sq Square) bool {
	p, ok := g.occupant(sq)
	return ok && p.Color != g.piece.Color
}

func (g *generator) pawn() {
	forward, startRow := north, WhitePawnRow
	if g.piece.Color == Black {
		forward, startRow = south, BlackPawnRow
	}

	one := g.from.Step(forward)
	if one.IsValid() && g.empty(one) {
		g.moves.Add(one)
		if g.from.Row() == startRow {
			two := one.Step(forward)
			if two.IsValid() && g.empty(two) {
				g.moves.Add(two)
			}
		}
	}

	for _, side := range []Delta{east, west} {
		diag := g.from.Step(Delta{forward.Row, side.Col})
		if !diag.IsValid() {
			continue
		}
		if occupant, ok := g.occupant(diag); ok {
			if DebugMoveGen {
				log.Printf("movegen: %s on %s sees %s on %s", g.piece, g.from, occupant, diag)
			}
			if occupant.Color != g.piece.Color {
				g.moves.Add(diag)
			}
		}
	}
}

// leaps adds each single-step target independently.
func (g *generator) leaps(deltas []Delta) {
	for _, d := range deltas {
		g.moves.Add(g.from.Step(d))
	}
}

// rays walks each direction to the edge, stopping on the first occupied square.
// That square is kept only when it holds an enemy piece.
func (g *generator) rays(dirs []Delta) {
	for _, d := range dirs {
		for sq := g.from.Step(d); sq.IsValid(); sq = sq.Step(d) {
			if g.empty(sq) {
				g.moves.Add(sq)
				continue
			}
			if g.enemy(sq) {
				g.moves.Add(sq)
			}
			break
		}
	}
}

// MissingRules lists chess rules the generator does not implement.
func MissingRules() []string {
	return []string{
		"check and checkmate detection",
		"stalemate detection",
		"king safety (moving into or through check)",
		"castling",
		"en passant",
		"pawn promotion",
		"game-ending conditions",
	}
}

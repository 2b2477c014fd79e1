package board

import (
	"fmt"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// ParseFEN parses the placement and side-to-move fields of a FEN string.
// Castling, en passant and clocks are accepted but ignored.
func ParseFEN(fen string) (*Board, Color, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, White, fmt.Errorf("%w: empty string", ErrInvalidFEN)
	}

	b, err := parsePlacement(parts[0])
	if err != nil {
		return nil, White, err
	}

	side := White
	if len(parts) > 1 {
		switch parts[1] {
		case "w":
		case "b":
			side = Black
		default:
			return nil, White, fmt.Errorf("%w: invalid side to move: %s", ErrInvalidFEN, parts[1])
		}
	}

	return b, side, nil
}

// parsePlacement reads the piece placement field, rank 8 first.
// Sub-indices follow the starting layout: pawns take their file,
// repeated bishops, knights and rooks count up per color.
func parsePlacement(s string) (*Board, error) {
	ranks := strings.Split(s, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: need 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}

	b := New()
	var seen [2][6]uint8
	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			p, ok := PieceFromFEN(c)
			if !ok {
				return nil, fmt.Errorf("%w: invalid piece %q", ErrInvalidFEN, c)
			}
			if col > 7 {
				return nil, fmt.Errorf("%w: rank %d too long", ErrInvalidFEN, 8-row)
			}

			sub := seen[p.Color][p.Type]
			if p.Type == Pawn {
				sub = uint8(col)
			}
			seen[p.Color][p.Type]++

			if err := b.Set(NewSquare(row, col), Encode(p, sub)); err != nil {
				return nil, err
			}
			col++
		}
		if col != 8 {
			return nil, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, 8-row, col)
		}
	}
	return b, nil
}

// FEN returns the position as a FEN string with the given side to move.
func (b *Board) FEN(side Color) string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < 8; col++ {
			p, err := b.PieceAt(NewSquare(row, col))
			if err != nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.FEN())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	if side == Black {
		sb.WriteString(" b")
	} else {
		sb.WriteString(" w")
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}

// Package pieces draws chess piece images from SVG outlines.
package pieces

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/cherris/internal/board"
)

// Outlines on a 45x45 canvas.
var shapes = map[board.PieceType][]string{
	board.Pawn: {
		`<circle cx="22.5" cy="12" r="5"/>`,
		`<path d="M17 36 L19.5 19 L25.5 19 L28 36 Z"/>`,
		`<rect x="11" y="36" width="23" height="4" rx="1.5"/>`,
	},
	board.Knight: {
		`<path d="M14 36 L31 36 L31 29 C31 21 29 14 22 10 L20 6 L18 10 L12 16 L9 22 L12 25 L17 21 L19 22 L14 30 Z"/>`,
		`<circle cx="18.5" cy="14" r="1.3" fill="DETAIL"/>`,
		`<rect x="11" y="36" width="23" height="4" rx="1.5"/>`,
	},
	board.Bishop: {
		`<circle cx="22.5" cy="9" r="2.5"/>`,
		`<ellipse cx="22.5" cy="21" rx="7" ry="9"/>`,
		`<path d="M15 36 L18 29 L27 29 L30 36 Z"/>`,
		`<rect x="10" y="36" width="25" height="4" rx="1.5"/>`,
	},
	board.Rook: {
		`<path d="M11 14 L11 9 L15 9 L15 11 L20 11 L20 9 L25 9 L25 11 L30 11 L30 9 L34 9 L34 14 Z"/>`,
		`<rect x="14" y="14" width="17" height="18"/>`,
		`<rect x="10" y="32" width="25" height="4"/>`,
		`<rect x="9" y="36" width="27" height="4" rx="1"/>`,
	},
	board.Queen: {
		`<path d="M9 25 L12 13 L17 23 L22.5 11 L28 23 L33 13 L36 25 L32 34 L13 34 Z"/>`,
		`<circle cx="12" cy="11" r="2.5"/>`,
		`<circle cx="22.5" cy="9" r="2.5"/>`,
		`<circle cx="33" cy="11" r="2.5"/>`,
		`<rect x="11" y="34" width="23" height="5" rx="1.5"/>`,
	},
	board.King: {
		`<path d="M21 4 L24 4 L24 7 L27 7 L27 10 L24 10 L24 14 L21 14 L21 10 L18 10 L18 7 L21 7 Z"/>`,
		`<path d="M10 24 C10 17 17 15 22.5 19 C28 15 35 17 35 24 L31 34 L14 34 Z"/>`,
		`<rect x="11" y="34" width="23" height="5" rx="1.5"/>`,
	},
}

func colors(c board.Color) (fill, stroke string) {
	if c == board.White {
		return "#ffffff", "#000000"
	}
	return "#1e1e1e", "#000000"
}

// SVG returns the SVG document for a piece.
func SVG(p board.Piece) (string, error) {
	parts, ok := shapes[p.Type]
	if !ok {
		return "", fmt.Errorf("no outline for %s", p.Type)
	}
	fill, stroke := colors(p.Color)
	detail := stroke
	if p.Color == board.Black {
		detail = "#ffffff"
	}

	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="45" height="45" viewBox="0 0 45 45">`)
	fmt.Fprintf(&sb, `<g fill="%s" stroke="%s" stroke-width="1.5" stroke-linejoin="round">`, fill, stroke)
	for _, part := range parts {
		sb.WriteString(strings.ReplaceAll(part, "DETAIL", detail))
	}
	sb.WriteString(`</g></svg>`)
	return sb.String(), nil
}

// Render rasterises a piece into a size x size RGBA image.
func Render(p board.Piece, size int) (*image.RGBA, error) {
	doc, err := SVG(p)
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", p.Label(), err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// All returns every piece the renderer knows, white first.
func All() []board.Piece {
	types := []board.PieceType{board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen, board.King}
	out := make([]board.Piece, 0, 2*len(types))
	for _, c := range []board.Color{board.White, board.Black} {
		for _, pt := range types {
			out = append(out, board.NewPiece(pt, c))
		}
	}
	return out
}

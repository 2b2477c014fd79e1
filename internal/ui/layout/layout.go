// Package layout maps board squares to pixel positions.
package layout

import "github.com/hailam/cherris/internal/board"

// Geometry describes a square board drawn from the top-left corner.
type Geometry struct {
	SquareSize int
	Flipped    bool // black at the bottom
}

// BoardSize returns the side length of the board in pixels.
func (g Geometry) BoardSize() int {
	return 8 * g.SquareSize
}

// cell returns the on-screen row and column of a square.
func (g Geometry) cell(sq board.Square) (row, col int) {
	row, col = sq.Row(), sq.Col()
	if g.Flipped {
		row, col = 7-row, 7-col
	}
	return row, col
}

// SquareToScreen returns the top-left pixel of a square.
func (g Geometry) SquareToScreen(sq board.Square) (x, y int) {
	row, col := g.cell(sq)
	return col * g.SquareSize, row * g.SquareSize
}

// ScreenToSquare returns the square under a pixel, or NoSquare off the board.
func (g Geometry) ScreenToSquare(x, y int) board.Square {
	size := g.BoardSize()
	if g.SquareSize <= 0 || x < 0 || y < 0 || x >= size || y >= size {
		return board.NoSquare
	}
	row, col := y/g.SquareSize, x/g.SquareSize
	if g.Flipped {
		row, col = 7-row, 7-col
	}
	return board.NewSquare(row, col)
}

// FileLabels returns the file letters in on-screen order, left to right.
func (g Geometry) FileLabels() [8]string {
	var out [8]string
	for col := 0; col < 8; col++ {
		f := col
		if g.Flipped {
			f = 7 - col
		}
		out[col] = string(rune('a' + f))
	}
	return out
}

// RankLabels returns the rank digits in on-screen order, top to bottom.
func (g Geometry) RankLabels() [8]string {
	var out [8]string
	for row := 0; row < 8; row++ {
		r := 8 - row
		if g.Flipped {
			r = row + 1
		}
		out[row] = string(rune('0' + r))
	}
	return out
}

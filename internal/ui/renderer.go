package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/cherris/internal/board"
	"github.com/hailam/cherris/internal/session"
	"github.com/hailam/cherris/internal/ui/layout"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	TargetColor    color.RGBA
	CaptureColor   color.RGBA
	LastMoveColor  color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		TargetColor:    color.RGBA{130, 151, 105, 200}, // Green dots
		CaptureColor:   color.RGBA{200, 90, 80, 170},
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		Background:     color.RGBA{40, 44, 52, 255},
		TextColor:      color.RGBA{220, 220, 220, 255},
	}
}

// Renderer handles all drawing operations.
type Renderer struct {
	sprites *SpriteManager
	theme   *Theme
	geom    layout.Geometry

	showCoordinates bool
	scale           float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer(squareSize int) *Renderer {
	return &Renderer{
		sprites:         NewSpriteManager(squareSize),
		theme:           DefaultTheme(),
		geom:            layout.Geometry{SquareSize: squareSize},
		showCoordinates: true,
		scale:           1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
}

// SetFlipped puts black at the bottom when true.
func (r *Renderer) SetFlipped(flipped bool) {
	r.geom.Flipped = flipped
}

// Flipped reports whether black is at the bottom.
func (r *Renderer) Flipped() bool {
	return r.geom.Flipped
}

// SetShowCoordinates toggles the file and rank labels.
func (r *Renderer) SetShowCoordinates(show bool) {
	r.showCoordinates = show
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// DrawBoard draws the chess board squares.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	size := r.geom.SquareSize
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			c := r.theme.LightSquare
			if (row+col)%2 == 1 {
				c = r.theme.DarkSquare
			}
			vector.DrawFilledRect(screen, r.s(col*size), r.s(row*size), r.s(size), r.s(size), c, false)
		}
	}

	if r.showCoordinates {
		r.drawCoordinates(screen)
	}
}

// drawCoordinates draws file letters along the bottom edge and rank numbers
// along the left edge, inside the squares.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	size := r.geom.SquareSize
	face := faceWithSize(true, 11*r.scale)
	pad := 3.0 * r.scale

	labelColor := func(row, col int) color.RGBA {
		if (row+col)%2 == 1 {
			return r.theme.LightSquare
		}
		return r.theme.DarkSquare
	}

	for col, f := range r.geom.FileLabels() {
		x := float64(r.s((col+1)*size)) - pad - 8*r.scale
		y := float64(r.s(8*size)) - pad - 14*r.scale
		drawText(screen, f, face, x, y, labelColor(7, col))
	}
	for row, rk := range r.geom.RankLabels() {
		drawText(screen, rk, face, pad, float64(r.s(row*size))+pad, labelColor(row, 0))
	}
}

// DrawHighlights draws the last move, the selection and its targets.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, b *board.Board, selected board.Square, targets board.SquareSet, lastMove *session.Move) {
	if lastMove != nil {
		r.highlightSquare(screen, lastMove.From, r.theme.LastMoveColor)
		r.highlightSquare(screen, lastMove.To, r.theme.LastMoveColor)
	}

	if selected != board.NoSquare {
		r.highlightSquare(screen, selected, r.theme.SelectedSquare)
	}

	for _, sq := range targets.Sorted() {
		if b.IsEmpty(sq) {
			r.drawTargetIndicator(screen, sq)
		} else {
			r.drawCaptureIndicator(screen, sq)
		}
	}
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if !sq.IsValid() {
		return
	}
	x, y := r.geom.SquareToScreen(sq)
	size := r.geom.SquareSize
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(size), r.s(size), c, false)
}

// drawTargetIndicator draws a dot on an empty destination.
func (r *Renderer) drawTargetIndicator(screen *ebiten.Image, sq board.Square) {
	x, y := r.geom.SquareToScreen(sq)
	size := r.s(r.geom.SquareSize)
	cx := r.s(x) + size/2
	cy := r.s(y) + size/2

	vector.DrawFilledCircle(screen, cx, cy, size*0.15, r.theme.TargetColor, true)
}

// drawCaptureIndicator rings a destination held by an enemy piece.
func (r *Renderer) drawCaptureIndicator(screen *ebiten.Image, sq board.Square) {
	x, y := r.geom.SquareToScreen(sq)
	size := r.s(r.geom.SquareSize)
	cx := r.s(x) + size/2
	cy := r.s(y) + size/2

	vector.StrokeCircle(screen, cx, cy, size*0.45, size*0.08, r.theme.CaptureColor, true)
}

// DrawPieces draws all pieces on the board.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board) {
	for _, sq := range b.Squares() {
		p, err := b.PieceAt(sq)
		if err != nil {
			continue
		}
		x, y := r.geom.SquareToScreen(sq)
		r.sprites.DrawPieceAt(screen, p, int(r.s(x)), int(r.s(y)), r.scale)
	}
}

// DrawStatus draws a line of text in the strip below the board.
func (r *Renderer) DrawStatus(screen *ebiten.Image, status string) {
	top := r.s(r.geom.BoardSize())
	face := faceWithSize(false, defaultFontSize*r.scale)
	drawText(screen, status, face, 10*r.scale, float64(top)+8*r.scale, r.theme.TextColor)
}

// ScreenToSquare converts logical screen coordinates to a board square.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	return r.geom.ScreenToSquare(x, y)
}

// BoardSize returns the board size in pixels.
func (r *Renderer) BoardSize() int {
	return r.geom.BoardSize()
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/cherris/internal/board"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{maxStack: 3}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := time.Now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Draw renders all active toasts centred over the board.
func (tm *ToastManager) Draw(screen *ebiten.Image, scale float64) {
	face := faceWithSize(false, defaultFontSize*scale)
	if face == nil {
		return
	}

	y := 50.0 * scale
	for _, t := range tm.toasts {
		elapsed := time.Since(t.StartTime).Seconds()
		duration := t.Duration.Seconds()

		// Fade in/out
		alpha := 1.0
		fadeTime := 0.2
		if elapsed < fadeTime {
			alpha = elapsed / fadeTime
		} else if elapsed > duration-fadeTime {
			alpha = (duration - elapsed) / fadeTime
		}

		bgColor := color.RGBA{50, 100, 150, uint8(220 * alpha)}
		textColor := color.RGBA{255, 255, 255, uint8(255 * alpha)}
		if t.Type == ToastWarning {
			bgColor = color.RGBA{180, 140, 20, uint8(220 * alpha)}
			textColor = color.RGBA{40, 30, 0, uint8(255 * alpha)}
		}

		w, h := text.Measure(t.Message, face, 0)
		padding := 12.0 * scale
		boxW := w + padding*2
		boxH := h + padding*2
		x := float64(BoardSize)*scale/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bgColor, false)
		drawText(screen, t.Message, face, x+padding, y+padding, textColor)

		y += boxH + 8*scale
	}
}

// FlashAnimation represents a square flash effect.
type FlashAnimation struct {
	Square    board.Square
	StartTime time.Time
	Duration  time.Duration
	Color     color.RGBA
}

// FeedbackManager shows toasts and square flashes in response to clicks.
type FeedbackManager struct {
	toasts  *ToastManager
	flashes []*FlashAnimation
}

// NewFeedbackManager creates a new feedback manager.
func NewFeedbackManager() *FeedbackManager {
	return &FeedbackManager{toasts: NewToastManager()}
}

// Update drops expired toasts and flashes.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()

	now := time.Now()
	active := fm.flashes[:0]
	for _, f := range fm.flashes {
		if now.Sub(f.StartTime) < f.Duration {
			active = append(active, f)
		}
	}
	fm.flashes = active
}

// Draw renders the flashes, then the toasts.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, r *Renderer) {
	for _, f := range fm.flashes {
		progress := time.Since(f.StartTime).Seconds() / f.Duration.Seconds()
		if progress >= 1.0 {
			continue
		}
		c := f.Color
		c.A = uint8(float64(c.A) * (1.0 - progress))
		r.highlightSquare(screen, f.Square, c)
	}
	fm.toasts.Draw(screen, r.scale)
}

// OnRejected reports a click that was refused.
func (fm *FeedbackManager) OnRejected(sq board.Square, err error) {
	fm.toasts.Show(err.Error(), ToastWarning, 2*time.Second)
	fm.flashes = append(fm.flashes, &FlashAnimation{
		Square:    sq,
		StartTime: time.Now(),
		Duration:  400 * time.Millisecond,
		Color:     color.RGBA{255, 80, 80, 150},
	})
}

// Info shows a short informational toast.
func (fm *FeedbackManager) Info(message string) {
	fm.toasts.Show(message, ToastInfo, 1500*time.Millisecond)
}

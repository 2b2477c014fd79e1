package ui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/cherris/internal/board"
	"github.com/hailam/cherris/internal/session"
	"github.com/hailam/cherris/internal/storage"
)

// UI Constants
const (
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	StatusHeight = 36
	ScreenWidth  = BoardSize
	ScreenHeight = BoardSize + StatusHeight
)

// autosaveName is the session restored on the next launch.
const autosaveName = "autosave"

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Game.Layout() and used by the input handler.
var UIScale float64 = 1.0

// Game implements ebiten.Game interface.
type Game struct {
	session  *session.Session
	selector *session.Selector
	status   string

	// Storage
	storage *storage.Storage
	prefs   *storage.UserPreferences

	// Components
	renderer *Renderer
	input    *InputHandler
	feedback *FeedbackManager

	// HiDPI scaling
	scale float64
}

// NewGame creates a new game backed by the platform data directory.
// A failing store is logged and the game runs without persistence.
func NewGame() *Game {
	store, err := storage.NewStorage()
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
	}
	return NewGameWithStorage(store)
}

// NewGameWithStorage creates a game using store, which may be nil.
func NewGameWithStorage(store *storage.Storage) *Game {
	g := &Game{
		storage:  store,
		renderer: NewRenderer(SquareSize),
		input:    NewInputHandler(),
		feedback: NewFeedbackManager(),
		scale:    1.0,
	}
	g.setSession(session.New())

	g.loadPreferences()
	g.restoreSession()
	g.updateStatus()
	return g
}

func (g *Game) setSession(s *session.Session) {
	g.session = s
	g.selector = session.NewSelector(s)
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
	} else {
		var err error
		g.prefs, err = g.storage.LoadPreferences()
		if err != nil {
			log.Printf("Warning: Failed to load preferences: %v", err)
			g.prefs = storage.DefaultPreferences()
		}
	}

	g.renderer.SetFlipped(g.prefs.Flipped)
	g.renderer.SetShowCoordinates(g.prefs.ShowCoordinates)
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}

	g.prefs.Flipped = g.renderer.Flipped()
	g.prefs.LastPlayed = time.Now()

	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// restoreSession reloads the session that was open when the window closed.
func (g *Game) restoreSession() {
	if g.storage == nil || g.prefs.LastSession == "" {
		return
	}

	snap, err := g.storage.LoadSession(g.prefs.LastSession)
	if errors.Is(err, storage.ErrSessionNotFound) {
		return
	}
	if err != nil {
		log.Printf("Warning: Failed to load session %s: %v", g.prefs.LastSession, err)
		return
	}

	s, err := session.Restore(snap)
	if err != nil {
		log.Printf("Warning: Failed to restore session %s: %v", g.prefs.LastSession, err)
		return
	}
	g.setSession(s)
}

// saveSession stores the current session for the next launch.
func (g *Game) saveSession() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SaveSession(autosaveName, g.session.Snapshot()); err != nil {
		log.Printf("Warning: Failed to save session: %v", err)
		return
	}
	g.prefs.LastSession = autosaveName
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	switch {
	case IsKeyJustPressed(ebiten.KeyN):
		g.NewGameAction()
	case IsKeyJustPressed(ebiten.KeyU):
		g.UndoAction()
	case IsKeyJustPressed(ebiten.KeyF):
		g.FlipAction()
	case IsKeyJustPressed(ebiten.KeyC):
		g.prefs.ShowCoordinates = !g.prefs.ShowCoordinates
		g.renderer.SetShowCoordinates(g.prefs.ShowCoordinates)
		g.savePreferences()
	}

	if g.input.IsLeftJustPressed() {
		mx, my := g.input.MousePosition()
		g.ClickAt(mx, my)
	}
	return nil
}

// ClickAt handles a click at logical screen coordinates.
func (g *Game) ClickAt(x, y int) {
	sq := g.renderer.ScreenToSquare(x, y)
	if sq.IsValid() {
		g.handleClick(sq)
	}
}

func (g *Game) handleClick(sq board.Square) {
	m, played, err := g.selector.Click(sq)
	switch {
	case err != nil:
		g.feedback.OnRejected(sq, err)
		g.updateStatus()
	case played:
		g.saveSession()
		g.updateStatus()
		if m.IsCapture() {
			g.status += fmt.Sprintf("   (%s took %s)", label(m.Piece), label(m.Captured))
		}
	default:
		g.updateStatus()
	}
}

// label returns the display label of a packed piece, or "??".
func label(id board.PieceID) string {
	p, err := board.Decode(id)
	if err != nil {
		return "??"
	}
	return p.Label()
}

// updateStatus describes the position and the selection.
func (g *Game) updateStatus() {
	history := g.session.History()
	g.status = fmt.Sprintf("%s to move", g.session.Turn())
	if n := len(history); n > 0 {
		g.status = fmt.Sprintf("%d. %s   %s", (n+1)/2, history[n-1], g.status)
	}
	if sel := g.selector.Selected(); sel.IsValid() {
		g.status += fmt.Sprintf("   %s: %s", sel, g.selector.Targets())
	}
}

// NewGameAction resets to the starting position.
func (g *Game) NewGameAction() {
	g.session.Reset()
	g.selector.Clear()
	g.saveSession()
	g.updateStatus()
	g.feedback.Info("New game")
}

// UndoAction takes back the last move.
func (g *Game) UndoAction() {
	g.selector.Clear()
	if _, err := g.session.Undo(); err != nil {
		g.feedback.Info(err.Error())
		return
	}
	g.saveSession()
	g.updateStatus()
}

// FlipAction turns the board around.
func (g *Game) FlipAction() {
	g.renderer.SetFlipped(!g.renderer.Flipped())
	g.savePreferences()
}

// Session returns the session being played.
func (g *Game) Session() *session.Session {
	return g.session
}

// Status returns the status line.
func (g *Game) Status() string {
	return g.status
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)

	screen.Fill(g.renderer.Theme().Background)

	b := g.session.Board()
	var last *session.Move
	if h := g.session.History(); len(h) > 0 {
		last = &h[len(h)-1]
	}

	g.renderer.DrawBoard(screen)
	g.renderer.DrawHighlights(screen, b, g.selector.Selected(), g.selector.Targets(), last)
	g.renderer.DrawPieces(screen, b)
	g.feedback.Draw(screen, g.renderer)
	g.renderer.DrawStatus(screen, g.status)
}

// Layout returns the game's screen dimensions.
// Uses device scale factor for crisp rendering on HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	UIScale = g.scale

	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}

// Close saves state and releases the store.
func (g *Game) Close() {
	if g.storage == nil {
		return
	}
	g.saveSession()
	g.savePreferences()
	if err := g.storage.Close(); err != nil {
		log.Printf("Warning: Failed to close storage: %v", err)
	}
}

// Package tui draws a session on a terminal with tcell.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/hailam/cherris/internal/board"
	"github.com/hailam/cherris/internal/session"
)

// Layout
const (
	originX    = 2 // rank labels occupy columns 0-1
	cellWidth  = 4
	statusLine = 9
	helpLine   = 11
)

var (
	styleLight    = tcell.StyleDefault.Background(tcell.NewRGBColor(240, 217, 181)).Foreground(tcell.ColorBlack)
	styleDark     = tcell.StyleDefault.Background(tcell.NewRGBColor(181, 136, 99)).Foreground(tcell.ColorBlack)
	styleCursor   = tcell.StyleDefault.Background(tcell.ColorSteelBlue).Foreground(tcell.ColorWhite)
	styleSelected = tcell.StyleDefault.Background(tcell.ColorGold).Foreground(tcell.ColorBlack)
	styleTarget   = tcell.StyleDefault.Background(tcell.ColorDarkSeaGreen).Foreground(tcell.ColorBlack)
	styleText     = tcell.StyleDefault
)

// View is a terminal board bound to a session.
type View struct {
	screen  tcell.Screen
	session *session.Session

	cursor   board.Square
	selector *session.Selector
	message  string
}

// NewView creates a view on an initialised screen.
func NewView(screen tcell.Screen, sess *session.Session) *View {
	if sess == nil {
		sess = session.New()
	}
	return &View{
		screen:   screen,
		session:  sess,
		cursor:   board.MustParseSquare("e2"),
		selector: session.NewSelector(sess),
	}
}

// Run opens the terminal and processes events until the user quits.
func Run(sess *session.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise screen: %w", err)
	}
	defer screen.Fini()

	return NewView(screen, sess).Loop()
}

// Loop draws and handles events until quit.
func (v *View) Loop() error {
	for {
		v.Draw()
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if v.HandleKey(ev) {
				return nil
			}
		}
	}
}

// Cursor returns the square under the cursor.
func (v *View) Cursor() board.Square {
	return v.cursor
}

// Selected returns the selected square, or NoSquare.
func (v *View) Selected() board.Square {
	return v.selector.Selected()
}

// Message returns the status message.
func (v *View) Message() string {
	return v.message
}

// HandleKey applies a key press. It returns true when the user asked to quit.
func (v *View) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.moveCursor(board.Delta{Row: -1})
	case tcell.KeyDown:
		v.moveCursor(board.Delta{Row: 1})
	case tcell.KeyLeft:
		v.moveCursor(board.Delta{Col: -1})
	case tcell.KeyRight:
		v.moveCursor(board.Delta{Col: 1})
	case tcell.KeyEnter:
		v.activate()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			v.activate()
		case 'u':
			v.undo()
		case 'n':
			v.session.Reset()
			v.selector.Clear()
			v.message = "new game"
		}
	}
	return false
}

func (v *View) moveCursor(d board.Delta) {
	if next := v.cursor.Step(d); next.IsValid() {
		v.cursor = next
	}
}

// activate selects the piece under the cursor, or plays to the cursor
// when the selected piece can reach it.
func (v *View) activate() {
	m, played, err := v.selector.Click(v.cursor)
	switch {
	case err != nil:
		v.message = err.Error()
	case played:
		v.message = "played " + m.String()
	case v.selector.Selected().IsValid():
		p, _ := v.session.Board().PieceAt(v.cursor)
		v.message = fmt.Sprintf("%s %s: %s", p.Label(), v.cursor, v.selector.Targets())
	default:
		v.message = ""
	}
}

func (v *View) undo() {
	m, err := v.session.Undo()
	v.selector.Clear()
	if err != nil {
		v.message = err.Error()
		return
	}
	v.message = "undid " + m.String()
}

// Draw renders the board and status lines to the screen.
func (v *View) Draw() {
	v.screen.Clear()
	b := v.session.Board()

	for row := 0; row < 8; row++ {
		drawText(v.screen, 0, row, styleText, fmt.Sprintf("%d", 8-row))
		for col := 0; col < 8; col++ {
			sq := board.NewSquare(row, col)
			label := "  "
			if p, err := b.PieceAt(sq); err == nil {
				label = p.Label()
			} else if v.selector.Targets().Contains(sq) {
				label = "<>"
			}
			drawText(v.screen, originX+col*cellWidth, row, v.squareStyle(sq), " "+label+" ")
		}
	}
	for col := 0; col < 8; col++ {
		drawText(v.screen, originX+col*cellWidth+1, 8, styleText, string(rune('a'+col)))
	}

	drawText(v.screen, 0, statusLine, styleText, fmt.Sprintf("%s to move   cursor %s", v.session.Turn(), v.cursor))
	drawText(v.screen, 0, statusLine+1, styleText, v.message)
	drawText(v.screen, 0, helpLine, styleText, "arrows move  enter/space select  u undo  n new  q quit")

	v.screen.Show()
}

func (v *View) squareStyle(sq board.Square) tcell.Style {
	switch {
	case sq == v.cursor:
		return styleCursor
	case sq == v.selector.Selected():
		return styleSelected
	case v.selector.Targets().Contains(sq):
		return styleTarget
	case (sq.Row()+sq.Col())%2 == 0:
		return styleLight
	default:
		return styleDark
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

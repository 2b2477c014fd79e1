// Package cli implements a line-oriented text driver for a session.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hailam/cherris/internal/board"
	"github.com/hailam/cherris/internal/oracle"
	"github.com/hailam/cherris/internal/session"
	"github.com/hailam/cherris/internal/storage"
)

// CLI reads commands from in and writes replies to out.
type CLI struct {
	in      io.Reader
	out     io.Writer
	session *session.Session

	// store is optional; save/load/sessions report an error without it.
	store *storage.Storage
}

// New creates a CLI driving sess. store may be nil.
func New(in io.Reader, out io.Writer, sess *session.Session, store *storage.Storage) *CLI {
	if sess == nil {
		sess = session.New()
	}
	return &CLI{
		in:      in,
		out:     out,
		session: sess,
		store:   store,
	}
}

// Session returns the session being driven.
func (c *CLI) Session() *session.Session {
	return c.session
}

// Run processes commands until "quit" or end of input.
func (c *CLI) Run() error {
	scanner := bufio.NewScanner(c.in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		var err error
		switch cmd {
		case "help", "?":
			c.handleHelp()
		case "new":
			c.session.Reset()
			c.printf("new game, %s to move\n", c.session.Turn())
		case "board", "d":
			c.handleBoard()
		case "fen":
			err = c.handleFEN(args)
		case "moves":
			err = c.handleMoves(args)
		case "move", "m":
			err = c.handleMove(args)
		case "undo":
			err = c.handleUndo()
		case "history":
			c.handleHistory()
		case "verify":
			err = c.handleVerify(args)
		case "rules":
			c.handleRules()
		case "save":
			err = c.handleSave(args)
		case "load":
			err = c.handleLoad(args)
		case "sessions":
			err = c.handleSessions()
		case "quit", "exit":
			return nil
		default:
			// a bare move like "e2e4"
			if len(cmd) == 4 {
				err = c.handleMove([]string{cmd})
			} else {
				err = fmt.Errorf("unknown command %q (try help)", cmd)
			}
		}

		if err != nil {
			c.printf("error: %v\n", err)
		}
	}

	return scanner.Err()
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *CLI) handleHelp() {
	c.printf(`commands:
  new                 reset to the starting position
  board | d           print the board
  fen [<fen>]         print or set the position
  moves <sq>          list destinations of the piece on <sq>
  move <from> <to>    play a move (also: move e2e4, or just e2e4)
  undo                take back the last move
  history             list played moves
  verify [<sq>]       cross-check slider moves against the reference tables
  rules               list chess rules that are not implemented
  save <name>         store the session
  load <name>         restore a stored session
  sessions            list stored sessions
  quit
`)
}

func (c *CLI) handleBoard() {
	c.printf("%s", c.session.Board().Render())
	c.printf("%s to move\n", c.session.Turn())
}

func (c *CLI) handleFEN(args []string) error {
	if len(args) == 0 {
		c.printf("%s\n", c.session.FEN())
		return nil
	}
	sess, err := session.FromFEN(strings.Join(args, " "))
	if err != nil {
		return err
	}
	c.session = sess
	c.handleBoard()
	return nil
}

func (c *CLI) handleMoves(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: moves <square>")
	}
	moves, err := c.session.Moves(args[0])
	if err != nil {
		return err
	}
	c.printf("%s: %s\n", args[0], strings.Join(moves.Labels(), " "))
	return nil
}

func (c *CLI) handleMove(args []string) error {
	var from, to string
	switch {
	case len(args) == 2:
		from, to = args[0], args[1]
	case len(args) == 1 && len(args[0]) == 4:
		from, to = args[0][:2], args[0][2:]
	default:
		return fmt.Errorf("usage: move <from> <to>")
	}

	m, err := c.session.Play(from, to)
	if err != nil {
		return err
	}
	if m.IsCapture() {
		p, _ := board.Decode(m.Captured)
		c.printf("played %s, captured %s\n", m, p.Label())
	} else {
		c.printf("played %s\n", m)
	}
	return nil
}

func (c *CLI) handleUndo() error {
	m, err := c.session.Undo()
	if err != nil {
		return err
	}
	c.printf("undid %s\n", m)
	return nil
}

func (c *CLI) handleHistory() {
	h := c.session.History()
	if len(h) == 0 {
		c.printf("no moves\n")
		return
	}
	for i, m := range h {
		if i%2 == 0 {
			c.printf("%d. %s", i/2+1, m)
		} else {
			c.printf(" %s\n", m)
		}
	}
	if len(h)%2 == 1 {
		c.printf("\n")
	}
}

func (c *CLI) handleVerify(args []string) error {
	b := c.session.Board()
	if len(args) == 0 {
		if err := oracle.VerifyAll(b); err != nil {
			return err
		}
		c.printf("ok\n")
		return nil
	}

	sq, err := board.ParseSquare(args[0])
	if err != nil {
		return err
	}
	if err := oracle.Verify(b, sq); err != nil {
		return err
	}
	c.printf("%s ok\n", sq)
	return nil
}

func (c *CLI) handleRules() {
	c.printf("not implemented:\n")
	for _, r := range board.MissingRules() {
		c.printf("  - %s\n", r)
	}
}

func (c *CLI) handleSave(args []string) error {
	if c.store == nil {
		return fmt.Errorf("no storage configured")
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: save <name>")
	}
	if err := c.store.SaveSession(args[0], c.session.Snapshot()); err != nil {
		return err
	}
	c.printf("saved %s\n", args[0])
	return nil
}

func (c *CLI) handleLoad(args []string) error {
	if c.store == nil {
		return fmt.Errorf("no storage configured")
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: load <name>")
	}
	snap, err := c.store.LoadSession(args[0])
	if err != nil {
		return err
	}
	sess, err := session.Restore(snap)
	if err != nil {
		return err
	}
	c.session = sess
	c.printf("loaded %s (%d moves)\n", args[0], len(sess.History()))
	return nil
}

func (c *CLI) handleSessions() error {
	if c.store == nil {
		return fmt.Errorf("no storage configured")
	}
	names, err := c.store.ListSessions()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		c.printf("no saved sessions\n")
		return nil
	}
	for _, n := range names {
		c.printf("%s\n", n)
	}
	return nil
}

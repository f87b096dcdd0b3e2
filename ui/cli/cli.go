package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/asibahi/terminal-chess-app/src"
	"github.com/asibahi/terminal-chess-app/src/base"
	"github.com/asibahi/terminal-chess-app/src/logx"
)

// board position inside the drawn frame: 2 columns of rank legend on the
// left, one row of file legend on top
const (
	BoardOriginX = 2
	BoardOriginY = 1
)

// xterm mouse reporting (X10 compatibility mode)
const (
	mouseOn  = "\x1b[?1000h"
	mouseOff = "\x1b[?1000l"
)

type CLIProcessing struct {
	session *src.Session
	logger  logx.Logger
	style   string
	in      *os.File
	out     io.Writer
}

func NewCLI(s *src.Session, logger logx.Logger, style string) *CLIProcessing {
	s.SetBoardOrigin(BoardOriginX, BoardOriginY)
	return &CLIProcessing{session: s, logger: logger, style: style, in: os.Stdin, out: os.Stdout}
}

// raw processing
// - click a piece, then click a destination (xterm mouse reporting)
// - or move the cursor with arrows and select with space/enter
// - q or Ctrl+C to exit
// - redraw board every consumed event
func (c *CLIProcessing) Run() error {
	fd := int(c.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		c.logger.Warnf("raw mode unavailable: %v", err)
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	fmt.Fprint(c.out, mouseOn)
	defer fmt.Fprint(c.out, mouseOff)

	r := bufio.NewReader(c.in)
	c.redraw()
	fmt.Fprint(c.out, "\r\nClick a piece then its destination, or use arrows and space. 'q' to quit.\r\n")

	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}

		if b == 3 { // Ctrl+C
			fmt.Fprintln(c.out, "\r\nInterrupted")
			return nil
		}

		if b == 0x1b { // CSI — arrow or mouse report
			b1, err := r.ReadByte()
			if err != nil {
				continue
			}
			if b1 != '[' {
				continue
			}
			b2, err := r.ReadByte()
			if err != nil {
				continue
			}
			switch b2 {
			case 'A':
				if c.dispatch(base.EventDirection{Dir: base.DirUp}) {
					return nil
				}
			case 'B':
				if c.dispatch(base.EventDirection{Dir: base.DirDown}) {
					return nil
				}
			case 'C':
				if c.dispatch(base.EventDirection{Dir: base.DirRight}) {
					return nil
				}
			case 'D':
				if c.dispatch(base.EventDirection{Dir: base.DirLeft}) {
					return nil
				}
			case 'M':
				cb, err1 := r.ReadByte()
				cx, err2 := r.ReadByte()
				cy, err3 := r.ReadByte()
				if err1 != nil || err2 != nil || err3 != nil {
					continue
				}
				// low two bits 3 = release, everything else is a press
				if cb&3 == 3 {
					continue
				}
				ev := base.EventPointer{X: int(cx) - 33, Y: int(cy) - 33}
				if c.dispatch(ev) {
					return nil
				}
			}
			continue
		}

		if b == ' ' || b == '\r' || b == '\n' {
			if c.dispatch(base.EventConfirm{}) {
				return nil
			}
			continue
		}

		// while the role dialog is open, q means queen, not quit
		if c.session.AwaitingPromotion() {
			if role, ok := promoteKey(b); ok {
				if c.dispatch(base.EventPromote{Role: role}) {
					return nil
				}
			}
			continue
		}

		if b == 'q' || b == 'Q' {
			fmt.Fprintln(c.out, "\r\nQuitting")
			return nil
		}
		// other keys ignored
	}
}

// RunLineMode is the fallback without raw mode: type square names.
func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	c.redraw()
	fmt.Fprintln(c.out, "Enter a square (e.g. e2) and press Enter; origin first, then destination.")
	fmt.Fprintln(c.out, "Use 'promote q|r|b|n' to pick a role, 'q' to quit.")
	for scanner.Scan() {
		line := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if line == "" {
			continue
		}
		if line == "q" || line == "quit" {
			return nil
		}
		if after, ok := strings.CutPrefix(line, "promote "); ok {
			role, ok := promoteKey(after[0])
			if !ok {
				fmt.Fprintf(c.out, "Unknown role: %s\n", after)
				continue
			}
			if c.dispatch(base.EventPromote{Role: role}) {
				return nil
			}
			continue
		}
		sq, ok := base.ParseSquare(line)
		if !ok {
			fmt.Fprintf(c.out, "Not a square: %s\n", line)
			continue
		}
		ev := base.EventPointer{
			X: BoardOriginX + int(sq.File)*src.CellW,
			Y: BoardOriginY + (7 - int(sq.Rank)),
		}
		if c.dispatch(ev) {
			return nil
		}
	}
	return scanner.Err()
}

// dispatch forwards one event, redraws on consumption and reports whether
// the session ended.
func (c *CLIProcessing) dispatch(ev base.InputEvent) bool {
	res := c.session.HandleInput(ev)
	if res.Consumed {
		c.redraw()
	}
	if res.Outcome != nil {
		fmt.Fprintf(c.out, "\r\n%s\r\n", res.Outcome.Message())
		return true
	}
	return false
}

func (c *CLIProcessing) redraw() {
	fmt.Fprint(c.out, "\x1b[2J\x1b[H")
	PrintBoard(c.out, c.session.Render(), c.style)
	c.printStatus()
}

func (c *CLIProcessing) printStatus() {
	eng := c.session.Engine()
	side := "black"
	if eng.WhiteToMove() {
		side = "white"
	}
	fmt.Fprintf(c.out, "\r\nFEN: %s\r\n", eng.FEN())
	fmt.Fprintf(c.out, "To move: %s\r\n", side)
	if c.session.AwaitingPromotion() {
		fmt.Fprint(c.out, "Promote to: [q]ueen [r]ook [b]ishop k[n]ight\r\n")
	}
}

func promoteKey(b byte) (base.Role, bool) {
	switch b {
	case 'q', 'Q':
		return base.Queen, true
	case 'r', 'R':
		return base.Rook, true
	case 'b', 'B':
		return base.Bishop, true
	case 'n', 'N':
		return base.Knight, true
	default:
		return base.NoRole, false
	}
}

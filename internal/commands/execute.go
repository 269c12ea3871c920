package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

const usage = `commands:
  o ROW COL        open a cell
  f ROW COL        toggle a flag
  c ROW COL        open the neighbours of a satisfied number
  n [PRESET|R:C:M] new game (easy, normal, hard or rows:cols:mines)
  g                print the grid
  s                print the status
  h                this help
  q                quit
`

// Execute runs cmd against s and writes the outcome to w. A rejected move
// is returned as an error and leaves s unchanged.
func Execute(s *session.Session, cmd Command, w io.Writer) (quit bool, err error) {
	switch cmd.Kind {
	case Play:
		status, err := s.Apply(cmd.Move, cmd.Row, cmd.Col)
		if err != nil {
			return false, err
		}
		writeGrid(w, s)
		writeStatus(w, s, status)
	case NewGame:
		params := s.Params()
		if cmd.Params != nil {
			params = *cmd.Params
		}
		if err := s.Restart(params); err != nil {
			return false, err
		}
		writeGrid(w, s)
		writeStatus(w, s, s.Status())
	case ShowGrid:
		writeGrid(w, s)
	case ShowStatus:
		writeStatus(w, s, s.Status())
	case Help:
		fmt.Fprint(w, usage)
	case Quit:
		return true, nil
	default:
		return false, ErrUnknownCommand
	}
	return false, nil
}

func writeGrid(w io.Writer, s *session.Session) {
	p := s.Params()
	var b strings.Builder
	fmt.Fprint(&b, "    ")
	for c := range p.Cols {
		fmt.Fprintf(&b, "%-2d", c%100)
	}
	fmt.Fprint(&b, "\n")
	for r, line := range strings.Split(strings.TrimSuffix(s.String(), "\n"), "\n") {
		fmt.Fprintf(&b, "%3d %s\n", r, line)
	}
	io.WriteString(w, b.String())
}

func writeStatus(w io.Writer, s *session.Session, status mines.Status) {
	fmt.Fprintf(w, "%s | mines left: %d | time: %s\n",
		status.State, status.MinesRemaining, s.Elapsed().Truncate(time.Second))
	switch status.State {
	case mines.Won:
		fmt.Fprintln(w, "You won!")
	case mines.Lost:
		fmt.Fprintln(w, "Boom! You hit a mine.")
	}
}

// Run reads commands from in until it is exhausted, a quit command
// arrives or ctx is done. Bad input is reported to out and skipped.
func Run(ctx context.Context, s *session.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	writeGrid(out, s)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			cmd, err := Parse(line)
			if err == nil {
				var quit bool
				quit, err = Execute(s, cmd, out)
				if quit {
					return nil
				}
			}
			if err != nil {
				fmt.Fprintf(out, "error: %s\n", err)
			}
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

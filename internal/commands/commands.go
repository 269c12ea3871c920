package commands

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

type Kind uint8

const (
	Play Kind = iota + 1
	NewGame
	ShowGrid
	ShowStatus
	Help
	Quit
)

type Command struct {
	Kind     Kind
	Move     session.Move
	Row, Col int
	// Params is set when a new game asks for different parameters.
	Params *mines.GameParams
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgs           = errors.New("invalid number of arguments")
)

// Maps known commands to the number of arguments they accept
var commandNargs = map[string][]int{
	"o": {2},
	"f": {2},
	"c": {2},
	"n": {0, 1},
	"g": {0},
	"s": {0},
	"h": {0},
	"q": {0},
}

func parseRC(twoStrings []string) (r int, c int, err error) {
	if r, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if c, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("column must be an int")
		return
	}
	return
}

// ParseParams accepts a preset name or a "rows:cols:mines" seed.
func ParseParams(s string) (mines.GameParams, error) {
	if p, ok := mines.Presets[strings.ToLower(s)]; ok {
		return p, nil
	}
	p, err := mines.ParseSeed(s)
	if err != nil {
		return p, fmt.Errorf("%q is neither a preset nor rows:cols:mines", s)
	}
	return p, nil
}

func Parse(line string) (cmd Command, err error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return cmd, ErrUnknownCommand
	}
	name := strings.ToLower(parts[0])
	nargs, ok := commandNargs[name]
	if !ok {
		return cmd, fmt.Errorf("%w %q", ErrUnknownCommand, parts[0])
	}
	args := parts[1:]
	if !slices.Contains(nargs, len(args)) {
		return cmd, fmt.Errorf("%s: %w", name, ErrArgs)
	}

	switch name {
	case "o", "f", "c":
		cmd.Kind = Play
		if cmd.Move, err = session.ParseMove(name); err != nil {
			return
		}
		cmd.Row, cmd.Col, err = parseRC(args)
	case "n":
		cmd.Kind = NewGame
		if len(args) == 1 {
			var p mines.GameParams
			if p, err = ParseParams(args[0]); err != nil {
				return
			}
			cmd.Params = &p
		}
	case "g":
		cmd.Kind = ShowGrid
	case "s":
		cmd.Kind = ShowStatus
	case "h":
		cmd.Kind = Help
	case "q":
		cmd.Kind = Quit
	}
	return
}

package session

import (
	"fmt"
	"strings"
)

type Move uint8

const (
	Open Move = iota + 1
	Flag
	Chord
	lastMove
)

func (m Move) String() string {
	switch m {
	case Open:
		return "Open"
	case Flag:
		return "Flag"
	case Chord:
		return "Chord"
	default:
		return fmt.Sprintf("Move(%d)", m)
	}
}

var ErrBadMove error

func init() {
	var allowedMoves []string
	for i := 1; i < int(lastMove); i++ {
		allowedMoves = append(allowedMoves, "'"+Move(i).String()+"'")
	}
	ErrBadMove = fmt.Errorf(
		"move must be one of %s",
		strings.ToLower(strings.Join(allowedMoves, ", ")),
	)
}

// ParseMove accepts a move name or its first letter, in any case.
func ParseMove(s string) (move Move, err error) {
	switch strings.ToLower(s) {
	case "open", "o":
		move = Open
	case "flag", "f":
		move = Flag
	case "chord", "c":
		move = Chord
	default:
		err = ErrBadMove
	}
	return
}

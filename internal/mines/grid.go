package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Unknown      CellState = -2
	Flagged      CellState = -1
	Mine         CellState = 64
	ExplodedMine CellState = 65
	FlaggedMine  CellState = 66
	/*
	 * 0 to 8 mean the cell is open and has that many mined neighbours.
	 *
	 * Mine, ExplodedMine and FlaggedMine only appear once the game is
	 * lost and every mine has been revealed. ExplodedMine is the one the
	 * player opened, FlaggedMine one the player had marked.
	 */
)

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "."
	case s == Flagged:
		return "F"
	case s == 0:
		return " "
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	case s == Mine:
		return "*"
	case s == ExplodedMine:
		return "X"
	case s == FlaggedMine:
		return "#"
	default:
		return "!"
	}
}

// Grid is the player's view of a board in row-major order.
type Grid []CellState

func (g Grid) ToString(cols int) string {
	var b strings.Builder
	for r := range len(g) / cols {
		for c := range cols {
			i := r*cols + c
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

func stateOf(v CellView, exploded bool) CellState {
	switch {
	case !v.Revealed && v.Flagged:
		return Flagged
	case !v.Revealed:
		return Unknown
	case v.Mine && exploded:
		return ExplodedMine
	case v.Mine && v.Flagged:
		return FlaggedMine
	case v.Mine:
		return Mine
	default:
		return CellState(v.Adjacent)
	}
}

package mines

import (
	"math/rand/v2"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

type State int8

const (
	Uninitialized State = iota
	AwaitingFirstClick
	InProgress
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case AwaitingFirstClick:
		return "awaiting first click"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

func (s State) Over() bool {
	return s == Won || s == Lost
}

type Status struct {
	State          State
	Rows, Cols     int
	MineCount      int
	Revealed       int
	Flagged        int
	MinesRemaining int // MineCount - Flagged, negative when over-flagged
}

// CellView is what a player may know about a cell. Mine and Adjacent are
// zero unless the cell has been revealed.
type CellView struct {
	Revealed bool
	Flagged  bool
	Mine     bool
	Adjacent int
}

type cell struct {
	mine, revealed, flagged bool
	adjacent                int
}

// Board is a single minesweeper game. Mines are placed on the first
// reveal so that the opening cell is never mined. A Board must not be
// used from more than one goroutine at a time.
type Board struct {
	GameParams
	cells    []cell
	state    State
	revealed int
	flagged  int
	exploded int
	rnd      *rand.Rand
}

// New returns a board awaiting its first click. A nil r is replaced by
// [NewRand].
func New(params GameParams, r *rand.Rand) (*Board, error) {
	if r == nil {
		r = NewRand()
	}
	b := &Board{rnd: r}
	if err := b.Initialize(params); err != nil {
		return nil, err
	}
	return b, nil
}

// Initialize discards the current game, if any, and starts a new one.
func (b *Board) Initialize(params GameParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if b.rnd == nil {
		b.rnd = NewRand()
	}
	b.GameParams = params
	b.cells = make([]cell, params.Size())
	b.state = AwaitingFirstClick
	b.revealed, b.flagged = 0, 0
	b.exploded = -1
	return nil
}

func (b *Board) State() State {
	return b.state
}

func (b *Board) Status() Status {
	return Status{
		State:          b.state,
		Rows:           b.Rows,
		Cols:           b.Cols,
		MineCount:      b.MineCount,
		Revealed:       b.revealed,
		Flagged:        b.flagged,
		MinesRemaining: b.MineCount - b.flagged,
	}
}

func (b *Board) locate(r, c int) (int, error) {
	if !b.InBounds(r, c) {
		return -1, &PositionError{r, c, ErrOutOfBounds}
	}
	return r*b.Cols + c, nil
}

// mutable checks that (r, c) is on the board and the game is not over.
func (b *Board) mutable(r, c int) (int, error) {
	i, err := b.locate(r, c)
	if err != nil {
		return i, err
	}
	if b.state.Over() {
		return i, &PositionError{r, c, ErrGameAlreadyOver}
	}
	return i, nil
}

// Reveal opens the cell at (r, c). The first reveal of a game places the
// mines. Revealing a flagged or already open cell changes nothing.
func (b *Board) Reveal(r, c int) (Status, error) {
	i, err := b.mutable(r, c)
	if err != nil {
		return b.Status(), err
	}
	if b.cells[i].revealed || b.cells[i].flagged {
		return b.Status(), nil
	}
	if b.state == AwaitingFirstClick {
		b.placeMines(r, c)
		b.state = InProgress
	}
	b.open(i)
	return b.Status(), nil
}

// ToggleFlag flips the flag on an unrevealed cell.
func (b *Board) ToggleFlag(r, c int) (Status, error) {
	i, err := b.mutable(r, c)
	if err != nil {
		return b.Status(), err
	}
	cell := &b.cells[i]
	if cell.revealed {
		return b.Status(), nil
	}
	cell.flagged = !cell.flagged
	if cell.flagged {
		b.flagged++
	} else {
		b.flagged--
	}
	return b.Status(), nil
}

// Chord opens every unflagged neighbour of a revealed number once the
// player has flagged as many neighbours as the number says.
func (b *Board) Chord(r, c int) (Status, error) {
	i, err := b.mutable(r, c)
	if err != nil {
		return b.Status(), err
	}
	if !b.cells[i].revealed {
		return b.Status(), nil
	}
	flags := 0
	pending := make([]int, 0, 8)
	for j := range b.neighbours(i) {
		if b.cells[j].flagged {
			flags++
		} else if !b.cells[j].revealed {
			pending = append(pending, j)
		}
	}
	if flags != b.cells[i].adjacent {
		return b.Status(), nil
	}
	for _, j := range pending {
		// an earlier flood may have got there first
		if b.cells[j].revealed {
			continue
		}
		b.open(j)
		if b.state.Over() {
			break
		}
	}
	return b.Status(), nil
}

func (b *Board) CellView(r, c int) (CellView, error) {
	i, err := b.locate(r, c)
	if err != nil {
		return CellView{}, err
	}
	return b.view(i), nil
}

func (b *Board) view(i int) CellView {
	cell := b.cells[i]
	v := CellView{Revealed: cell.revealed, Flagged: cell.flagged}
	if cell.revealed {
		v.Mine = cell.mine
		v.Adjacent = cell.adjacent
	}
	return v
}

// Grid returns the player's view of every cell.
func (b *Board) Grid() Grid {
	grid := make(Grid, len(b.cells))
	for i := range b.cells {
		grid[i] = stateOf(b.view(i), i == b.exploded)
	}
	return grid
}

func (b *Board) String() string {
	return b.Grid().ToString(b.Cols)
}

// open reveals an unrevealed, unflagged cell of a game in progress and
// settles the outcome.
func (b *Board) open(i int) {
	if b.cells[i].mine {
		/*
		 * The player has landed on a mine. Expose every mine, leaving
		 * the flags where they are.
		 */
		b.exploded = i
		b.state = Lost
		for j := range b.cells {
			if b.cells[j].mine && !b.cells[j].revealed {
				b.cells[j].revealed = true
				b.revealed++
			}
		}
		Log.WithFields(logrus.Fields{
			"params": b.GameParams.String(),
			"cell":   [2]int{i / b.Cols, i % b.Cols},
		}).Debug("game lost")
		return
	}

	b.flood(i)

	if b.revealed == b.Size()-b.MineCount {
		b.state = Won
		Log.WithField("params", b.GameParams.String()).Debug("game won")
	}
}

// flood reveals start and, breadth first, every cell reachable from it
// through cells with no mined neighbours. Flagged cells are neither
// revealed nor crossed. It returns the number of cells revealed.
func (b *Board) flood(start int) int {
	var todo deque.Deque[int]
	b.cells[start].revealed = true
	todo.PushBack(start)

	n := 0
	for todo.Len() > 0 {
		i := todo.PopFront()
		n++
		if b.cells[i].adjacent != 0 {
			continue
		}
		for j := range b.neighbours(i) {
			cell := &b.cells[j]
			if cell.revealed || cell.flagged || cell.mine {
				continue
			}
			cell.revealed = true
			todo.PushBack(j)
		}
	}
	b.revealed += n
	return n
}

package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Rows, Cols, MineCount int
}

var (
	Easy   = GameParams{Rows: 9, Cols: 9, MineCount: 10}
	Normal = GameParams{Rows: 16, Cols: 16, MineCount: 40}
	Hard   = GameParams{Rows: 16, Cols: 30, MineCount: 80}
)

// Presets maps difficulty names to their board parameters.
var Presets = map[string]GameParams{
	"easy":   Easy,
	"normal": Normal,
	"hard":   Hard,
}

func (p GameParams) Unpack() (rows int, cols int, mc int) {
	return p.Rows, p.Cols, p.MineCount
}

func (p GameParams) Size() int {
	return p.Rows * p.Cols
}

// Validate reports an [ErrInvalidConfiguration] unless the board has at
// least one row and column and leaves at least one cell free of mines.
func (p GameParams) Validate() error {
	switch {
	case p.Rows < 1:
		return &ConfigError{p, "rows must be positive"}
	case p.Cols < 1:
		return &ConfigError{p, "cols must be positive"}
	case p.MineCount < 0:
		return &ConfigError{p, "mine count must not be negative"}
	case p.MineCount >= p.Size():
		return &ConfigError{p, "mine count must leave at least one safe cell"}
	}
	return nil
}

func (p GameParams) InBounds(r, c int) bool {
	return 0 <= r && r < p.Rows && 0 <= c && c < p.Cols
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Rows, p.Cols, p.MineCount)
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Rows, p.Cols, p.MineCount)
}

// ParseSeed reads parameters in the "rows:cols:mines" form produced by
// [GameParams.Seed]. The result is not validated.
func ParseSeed(seed string) (GameParams, error) {
	var p GameParams
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Rows, &p.Cols, &p.MineCount)
	if n != 3 || err != nil {
		return GameParams{}, fmt.Errorf(
			`invalid game params seed (seed = "%s", n = %d, err = %w)`,
			seed, n, err,
		)
	}
	return p, nil
}

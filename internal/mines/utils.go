package mines

import (
	"hash/maphash"
	"iter"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// NewRand returns a generator seeded from the runtime's hash seed.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// neighbours yields the indices of the in-bounds cells around i in
// row-major order, i itself excluded.
func (p GameParams) neighbours(i int) iter.Seq[int] {
	r, c := i/p.Cols, i%p.Cols
	return func(yield func(int) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 || !p.InBounds(r+dr, c+dc) {
					continue
				}
				if !yield((r+dr)*p.Cols + (c + dc)) {
					return
				}
			}
		}
	}
}

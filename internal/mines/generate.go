package mines

import "github.com/sirupsen/logrus"

// placeMines lays out b.MineCount mines avoiding the start cell and, when
// the board has room, every cell within one square of it. Adjacency counts
// are filled in for every cell afterwards.
func (b *Board) placeMines(startR, startC int) {
	size := b.Size()
	start := startR*b.Cols + startC

	/*
	 * Write down the list of possible mine locations.
	 */
	candidates := make([]int, 0, size)
	for r := range b.Rows {
		for c := range b.Cols {
			if absDiff(startR, r) > 1 || absDiff(startC, c) > 1 {
				candidates = append(candidates, r*b.Cols+c)
			}
		}
	}
	safeZone := true
	if len(candidates) < b.MineCount {
		safeZone = false
		candidates = candidates[:0]
		for i := range size {
			if i != start {
				candidates = append(candidates, i)
			}
		}
	}

	/*
	 * Now pick n off the list at random.
	 */
	k := len(candidates)
	for range b.MineCount {
		i := b.rnd.IntN(k)
		b.cells[candidates[i]].mine = true
		k--
		candidates[i] = candidates[k]
	}

	b.countAdjacent()

	Log.WithFields(logrus.Fields{
		"params":    b.GameParams.String(),
		"start":     [2]int{startR, startC},
		"safe_zone": safeZone,
	}).Debug("mines placed")
}

func (b *Board) countAdjacent() {
	for i := range b.cells {
		n := 0
		for j := range b.neighbours(i) {
			if b.cells[j].mine {
				n++
			}
		}
		b.cells[i].adjacent = n
	}
}

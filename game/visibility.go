package game

// visibility tracks which cells the player has uncovered. Cells only ever go
// from hidden to revealed.
type visibility [][]bool

func newVisibility(rows, cols int) visibility {
	revealed := make(visibility, rows)
	for row := range rows {
		revealed[row] = make([]bool, cols)
	}
	return revealed
}

func (revealed visibility) isRevealed(c Coord) bool {
	return revealed[c.Row][c.Col]
}

func (revealed visibility) reveal(c Coord) {
	revealed[c.Row][c.Col] = true
}

func (revealed visibility) count() int {
	n := 0
	for _, row := range revealed {
		for _, isRevealed := range row {
			if isRevealed {
				n++
			}
		}
	}
	return n
}

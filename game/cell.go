package game

import "strconv"

// Cell is one square of the truth grid: either a mine, or the number of
// mines among its neighbors.
type Cell struct {
	isMine   bool
	numMines uint8
}

func (cell Cell) IsMine() bool {
	return cell.isMine
}

// NumMines is the count of neighboring mines. Always 0 for a mine.
func (cell Cell) NumMines() int {
	return int(cell.numMines)
}

func (cell Cell) String() string {
	if cell.isMine {
		return Mine.String()
	}
	return strconv.Itoa(int(cell.numMines))
}

// state is how the cell looks once disclosed
func (cell Cell) state() CellState {
	if cell.isMine {
		return Mine
	}
	return CellState(cell.numMines)
}

package game

import "strings"

// View is a read-only snapshot of the board as it should be drawn.
type View struct {
	cells [][]CellState
}

func newView(rows, cols int, stateAt func(Coord) CellState) View {
	cells := make([][]CellState, rows)
	for row := range rows {
		cells[row] = make([]CellState, cols)
		for col := range cols {
			cells[row][col] = stateAt(Coord{Row: row, Col: col})
		}
	}
	return View{cells: cells}
}

func (view View) Rows() int {
	return len(view.cells)
}

func (view View) Cols() int {
	if len(view.cells) == 0 {
		return 0
	}
	return len(view.cells[0])
}

func (view View) At(c Coord) CellState {
	return view.cells[c.Row][c.Col]
}

func (view View) Neighbors(c Coord) []Coord {
	return neighborsWithin(c, view.Rows(), view.Cols())
}

// Row returns the states of a single row, left to right.
func (view View) Row(row int) []CellState {
	return view.cells[row]
}

// String renders one line per row, cells separated by single spaces.
func (view View) String() string {
	var b strings.Builder
	for row, states := range view.cells {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col, state := range states {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(state.String())
		}
	}
	return b.String()
}

package game

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Board is the truth grid: where the mines are, and every other cell's count
// of neighboring mines. It is never modified after construction.
type Board struct {
	rows, cols int
	cells      [][]Cell
	mines      mapset.Set[Coord]
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) NumCells() int {
	return board.rows * board.cols
}

func (board *Board) NumMines() int {
	return board.mines.Size()
}

func (board *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < board.rows && c.Col < board.cols
}

// CellAt panics if c is out of bounds; check with InBounds first.
func (board *Board) CellAt(c Coord) Cell {
	return board.cells[c.Row][c.Col]
}

func (board *Board) IsMine(c Coord) bool {
	return board.mines.Has(c)
}

// Mines returns the mine coordinates in row-major order.
func (board *Board) Mines() []Coord {
	mines := make([]Coord, 0, board.mines.Size())
	board.mines.Each(func(c Coord) {
		mines = append(mines, c)
	})
	slices.SortFunc(mines, compareCoords)
	return mines
}

// Neighbors returns the in-bounds cells surrounding c. Corners have 3, edges
// 5, and interior cells 8.
func (board *Board) Neighbors(c Coord) []Coord {
	return neighborsWithin(c, board.rows, board.cols)
}

func generateBoard(rows, cols, numMines int, r *rand.Rand) (*Board, error) {
	if err := validateDimensions(rows, cols, numMines); err != nil {
		return nil, err
	}

	var mines []Coord
	strategy := "rejection"
	// Rejection sampling slows down sharply once most cells hold a mine
	if 2*numMines <= rows*cols {
		mines = sampleMines(rows, cols, numMines, r)
	} else {
		strategy = "shuffle"
		mines = shuffleMines(rows, cols, numMines, r)
	}

	Log.WithFields(logrus.Fields{
		"rows":     rows,
		"cols":     cols,
		"mines":    numMines,
		"strategy": strategy,
	}).Debug("placed mines")

	return buildBoard(rows, cols, mines), nil
}

func sampleMines(rows, cols, numMines int, r *rand.Rand) []Coord {
	placed := mapset.New[Coord]()
	mines := make([]Coord, 0, numMines)
	for len(mines) < numMines {
		c := Coord{Row: r.IntN(rows), Col: r.IntN(cols)}
		if placed.Has(c) {
			continue
		}
		placed.Put(c)
		mines = append(mines, c)
	}
	return mines
}

func shuffleMines(rows, cols, numMines int, r *rand.Rand) []Coord {
	cellIndexes := r.Perm(rows * cols)
	mines := make([]Coord, numMines)
	for i, cellIdx := range cellIndexes[:numMines] {
		mines[i] = Coord{Row: cellIdx / cols, Col: cellIdx % cols}
	}
	return mines
}

func newBoardWithMines(rows, cols int, mines []Coord) (*Board, error) {
	if err := validateDimensions(rows, cols, len(mines)); err != nil {
		return nil, err
	}

	seen := mapset.New[Coord]()
	for _, mine := range mines {
		reason := ""
		switch {
		case mine.Row < 0 || mine.Col < 0 || mine.Row >= rows || mine.Col >= cols:
			reason = fmt.Sprintf("mine %v is out of bounds", mine)
		case seen.Has(mine):
			reason = fmt.Sprintf("mine %v is listed twice", mine)
		}
		if reason != "" {
			return nil, &ConfigurationError{Rows: rows, Cols: cols, NumMines: len(mines), Reason: reason}
		}
		seen.Put(mine)
	}

	return buildBoard(rows, cols, mines), nil
}

func buildBoard(rows, cols int, mines []Coord) *Board {
	board := &Board{
		rows:  rows,
		cols:  cols,
		cells: make([][]Cell, rows),
		mines: mapset.New[Coord](),
	}
	for row := range rows {
		board.cells[row] = make([]Cell, cols)
	}

	for _, mine := range mines {
		board.mines.Put(mine)
		board.cells[mine.Row][mine.Col].isMine = true
	}

	for row := range rows {
		for col := range cols {
			cell := &board.cells[row][col]
			if cell.isMine {
				continue
			}
			for _, neighbor := range board.Neighbors(Coord{Row: row, Col: col}) {
				if board.mines.Has(neighbor) {
					cell.numMines++
				}
			}
		}
	}

	return board
}

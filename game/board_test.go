package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireValidBoard(t *testing.T, board *Board, numMines int) {
	t.Helper()

	require.Equal(t, numMines, board.NumMines())
	require.Len(t, board.Mines(), numMines)

	for _, c := range allCoords(board.Rows(), board.Cols()) {
		cell := board.CellAt(c)
		require.Equal(t, board.IsMine(c), cell.IsMine(), "cell %v", c)
		if cell.IsMine() {
			continue
		}

		expected := 0
		for _, neighbor := range board.Neighbors(c) {
			if board.IsMine(neighbor) {
				expected++
			}
		}
		require.Equal(t, expected, cell.NumMines(), "cell %v", c)
	}
}

func TestGenerateBoard(t *testing.T) {
	tests := []struct {
		rows, cols, mines int
	}{
		{5, 5, 0},
		{5, 5, 2},
		{5, 5, 3},
		{5, 5, 12},
		{5, 5, 13},
		{5, 5, 24},
		{9, 9, 10},
		{16, 16, 40},
		{16, 30, 99},
		{16, 30, 479},
		{7, 40, 200},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%dx%d(%d)", test.rows, test.cols, test.mines), func(t *testing.T) {
			t.Parallel()
			for seed := range int64(20) {
				board, err := generateBoard(test.rows, test.cols, test.mines, newRand(seed))
				require.NoError(t, err)
				assert.Equal(t, test.rows, board.Rows())
				assert.Equal(t, test.cols, board.Cols())
				requireValidBoard(t, board, test.mines)
			}
		})
	}
}

func TestGenerateBoardSeed(t *testing.T) {
	a, err := generateBoard(9, 9, 10, newRand(42))
	require.NoError(t, err)
	b, err := generateBoard(9, 9, 10, newRand(42))
	require.NoError(t, err)
	assert.Equal(t, a.Mines(), b.Mines())

	c, err := generateBoard(9, 9, 10, newRand(43))
	require.NoError(t, err)
	assert.NotEqual(t, a.Mines(), c.Mines())
}

func TestPlacementStrategies(t *testing.T) {
	r := newRand(7)
	for _, place := range []func(rows, cols, numMines int, r *rand.Rand) []Coord{sampleMines, shuffleMines} {
		mines := place(6, 8, 30, r)
		require.Len(t, mines, 30)

		seen := make(map[Coord]bool)
		for _, mine := range mines {
			assert.False(t, seen[mine], "duplicate mine %v", mine)
			assert.True(t, mine.Row >= 0 && mine.Row < 6 && mine.Col >= 0 && mine.Col < 8, "mine %v", mine)
			seen[mine] = true
		}
	}
}

func TestGenerateBoardInvalid(t *testing.T) {
	tests := []struct {
		name              string
		rows, cols, mines int
	}{
		{"too few rows", 4, 5, 1},
		{"too few cols", 5, 4, 1},
		{"empty", 0, 0, 0},
		{"negative mines", 5, 5, -1},
		{"no safe cell", 5, 5, 25},
		{"more mines than cells", 6, 6, 100},
		{"too many cells", MaxCells/5 + 1, 5, 3},
		{"rows*cols overflows", 1<<61 + 1, 8, 3},
		{"rows*cols wraps to zero", 1 << 32, 1 << 32, 3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board, err := generateBoard(test.rows, test.cols, test.mines, newRand(1))
			assert.Nil(t, board)

			var configErr *ConfigurationError
			require.True(t, errors.As(err, &configErr), "got %v", err)
			assert.Equal(t, test.rows, configErr.Rows)
			assert.Equal(t, test.cols, configErr.Cols)
			assert.Equal(t, test.mines, configErr.NumMines)
		})
	}
}

func TestNewBoardWithMines(t *testing.T) {
	board, err := newBoardWithMines(5, 5, exampleMines)
	require.NoError(t, err)
	requireValidBoard(t, board, 2)

	expected := [][]int{
		{1, 1, 1, 0, 0},
		{1, -1, 2, 1, 0},
		{1, 2, -1, 1, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
	}
	for _, c := range allCoords(5, 5) {
		cell := board.CellAt(c)
		if expected[c.Row][c.Col] < 0 {
			assert.True(t, cell.IsMine(), "cell %v", c)
			assert.Equal(t, "M", cell.String())
		} else {
			assert.Equal(t, expected[c.Row][c.Col], cell.NumMines(), "cell %v", c)
		}
	}
}

func TestNewBoardWithMinesInvalid(t *testing.T) {
	tests := []struct {
		name  string
		mines []Coord
	}{
		{"out of bounds", []Coord{{0, 0}, {5, 0}}},
		{"negative", []Coord{{-1, 2}}},
		{"duplicate", []Coord{{1, 1}, {2, 2}, {1, 1}}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := newBoardWithMines(5, 5, test.mines)
			var configErr *ConfigurationError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, len(test.mines), configErr.NumMines)
		})
	}
}

func TestNeighbors(t *testing.T) {
	board, err := newBoardWithMines(5, 7, nil)
	require.NoError(t, err)

	tests := []struct {
		c        Coord
		expected int
	}{
		{Coord{0, 0}, 3},
		{Coord{0, 6}, 3},
		{Coord{4, 0}, 3},
		{Coord{4, 6}, 3},
		{Coord{0, 3}, 5},
		{Coord{2, 0}, 5},
		{Coord{4, 2}, 5},
		{Coord{2, 6}, 5},
		{Coord{2, 2}, 8},
		{Coord{1, 5}, 8},
	}

	for _, test := range tests {
		neighbors := board.Neighbors(test.c)
		assert.Len(t, neighbors, test.expected, "neighbors of %v", test.c)
		for _, neighbor := range neighbors {
			assert.True(t, board.InBounds(neighbor))
			assert.NotEqual(t, test.c, neighbor)
		}
	}

	assert.Equal(t, []Coord{{0, 1}, {1, 1}, {1, 0}}, board.Neighbors(Coord{0, 0}))
}

func TestMinesSorted(t *testing.T) {
	board, err := newBoardWithMines(5, 5, []Coord{{4, 1}, {0, 3}, {2, 2}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, []Coord{{0, 1}, {0, 3}, {2, 2}, {4, 1}}, board.Mines())
}

package game

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = newLogger()

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	return log
}

// Game is a single play session. The board is fixed when the game is
// created; selections only ever reveal more of it.
type Game struct {
	board    *Board
	revealed visibility
	seed     int64
}

// NewGame creates a game with randomly placed mines.
func NewGame(rows, cols, numMines int) (*Game, error) {
	config := NewConfig()
	config.Rows, config.Cols, config.NumMines = rows, cols, numMines
	return config.NewGame()
}

// NewGameWithMines creates a game with mines at exactly the given cells.
func NewGameWithMines(rows, cols int, mines []Coord) (*Game, error) {
	board, err := newBoardWithMines(rows, cols, mines)
	if err != nil {
		return nil, err
	}
	return newGame(board, 0), nil
}

func newGame(board *Board, seed int64) *Game {
	return &Game{
		board:    board,
		revealed: newVisibility(board.rows, board.cols),
		seed:     seed,
	}
}

// randomSeed never returns 0, which Config reserves for "pick one".
func randomSeed() int64 {
	var seed int64
	for seed == 0 {
		seed = int64(new(maphash.Hash).Sum64() >> 1)
	}
	return seed
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// Board exposes the truth grid, for rendering once the game has ended.
func (game *Game) Board() *Board {
	return game.board
}

// Seed the mines were placed with, or 0 for a fixed layout.
func (game *Game) Seed() int64 {
	return game.seed
}

func (game *Game) Rows() int {
	return game.board.rows
}

func (game *Game) Cols() int {
	return game.board.cols
}

func (game *Game) NumMines() int {
	return game.board.NumMines()
}

func (game *Game) NumRevealed() int {
	return game.revealed.count()
}

// Outcome is recomputed from the revealed cells on every call.
func (game *Game) Outcome() Outcome {
	exploded := false
	game.board.mines.Each(func(mine Coord) {
		if game.revealed.isRevealed(mine) {
			exploded = true
		}
	})
	if exploded {
		return Lost
	}

	numSafeRevealed := 0
	for row := range game.board.rows {
		for col := range game.board.cols {
			c := Coord{Row: row, Col: col}
			if game.revealed.isRevealed(c) && !game.board.IsMine(c) {
				numSafeRevealed++
			}
		}
	}
	if numSafeRevealed == game.board.NumCells()-game.board.NumMines() {
		return Won
	}
	return InProgress
}

// Select reveals the cell at c, flooding outward through zero cells, and
// returns the resulting outcome. Selecting a revealed cell, or any cell once
// the game has ended, changes nothing.
func (game *Game) Select(c Coord) (Outcome, error) {
	if !game.board.InBounds(c) {
		return game.Outcome(), &OutOfBoundsError{Coord: c, Rows: game.board.rows, Cols: game.board.cols}
	}

	log := Log.WithField("coord", c)

	outcome := game.Outcome()
	if outcome != InProgress || game.revealed.isRevealed(c) {
		log.WithField("outcome", outcome).Debug("selection ignored")
		return outcome, nil
	}

	numRevealed := 1
	cell := game.board.CellAt(c)
	if cell.IsMine() || cell.NumMines() > 0 {
		game.revealed.reveal(c)
	} else {
		numRevealed = flood(c, game.revealCell, game.hiddenSafeNeighbors)
	}

	outcome = game.Outcome()
	log.WithFields(logrus.Fields{
		"revealed": numRevealed,
		"outcome":  outcome,
	}).Debug("cell selected")

	return outcome, nil
}

// revealCell is the flood visitor: numbers are revealed but stop the flood.
func (game *Game) revealCell(c Coord) bool {
	game.revealed.reveal(c)
	return game.board.CellAt(c).NumMines() == 0
}

func (game *Game) hiddenSafeNeighbors(c Coord) []Coord {
	neighbors := game.board.Neighbors(c)
	hidden := neighbors[:0]
	for _, neighbor := range neighbors {
		if game.board.IsMine(neighbor) || game.revealed.isRevealed(neighbor) {
			continue
		}
		hidden = append(hidden, neighbor)
	}
	return hidden
}

// VisibleGrid is what the player may see: hidden cells, revealed numbers, and
// a revealed mine if the game was lost.
func (game *Game) VisibleGrid() View {
	return newView(game.board.rows, game.board.cols, func(c Coord) CellState {
		switch {
		case !game.revealed.isRevealed(c):
			return Unrevealed
		case game.board.IsMine(c):
			return MineLosing
		default:
			return game.board.CellAt(c).state()
		}
	})
}

// DisclosedGrid shows the whole board, for display after the game is over.
// The mine that was selected, if any, is shown as MineLosing.
func (game *Game) DisclosedGrid() View {
	return newView(game.board.rows, game.board.cols, func(c Coord) CellState {
		if game.board.IsMine(c) && game.revealed.isRevealed(c) {
			return MineLosing
		}
		return game.board.CellAt(c).state()
	})
}

package constraint

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/termsweep/game"
)

func newDirector(t *testing.T, g *game.Game) *Director {
	t.Helper()
	director := New(rand.New(rand.NewPCG(1, 2)))
	director.Init(g)
	return director
}

func TestActDeliberate(t *testing.T) {
	// after flooding from the corner only (0, 0), (0, 1) and (0, 2) stay
	// hidden, and the 1s at (0, 3) and (1, 3) pin the mine at (0, 2)
	g, err := game.NewGameWithMines(5, 5, []game.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 2}})
	require.NoError(t, err)
	_, err = g.Select(game.Coord{Row: 4, Col: 4})
	require.NoError(t, err)

	director := newDirector(t, g)
	c, ok := director.Act()
	require.True(t, ok)
	assert.Equal(t, game.Coord{Row: 0, Col: 1}, c)
	assert.True(t, director.knownMines.Has(game.Coord{Row: 0, Col: 2}))

	outcome, err := g.Select(c)
	require.NoError(t, err)
	assert.Equal(t, game.Won, outcome)
}

func TestActAvoidsKnownMines(t *testing.T) {
	g, err := game.NewGameWithMines(5, 5, []game.Coord{{Row: 1, Col: 1}, {Row: 2, Col: 2}})
	require.NoError(t, err)
	_, err = g.Select(game.Coord{Row: 4, Col: 4})
	require.NoError(t, err)

	director := newDirector(t, g)
	c, ok := director.Act()
	require.True(t, ok)
	assert.True(t, director.knownMines.Has(game.Coord{Row: 2, Col: 2}))
	assert.NotEqual(t, game.Coord{Row: 2, Col: 2}, c)
	assert.Equal(t, game.Unrevealed, g.VisibleGrid().At(c))
	// (0, 1), (1, 0) and (1, 1) are each a coin flip; ties go row-major
	assert.Equal(t, game.Coord{Row: 0, Col: 1}, c)
}

func TestActFirstMove(t *testing.T) {
	g, err := game.NewGame(9, 9, 10)
	require.NoError(t, err)

	director := newDirector(t, g)
	c, ok := director.Act()
	require.True(t, ok)
	assert.Equal(t, game.Unrevealed, g.VisibleGrid().At(c))
}

func TestKnownMinesAreMines(t *testing.T) {
	numWon := 0
	for seed := range int64(40) {
		config := game.Config{Rows: 9, Cols: 9, NumMines: 10, Seed: seed + 1}
		g, err := config.NewGame()
		require.NoError(t, err)

		director := newDirector(t, g)
		for moves := 0; g.Outcome() == game.InProgress; moves++ {
			require.Less(t, moves, 81)

			c, ok := director.Act()
			require.True(t, ok)

			director.knownMines.Each(func(mine game.Coord) {
				assert.True(t, g.Board().IsMine(mine), "seed %d: %v is not a mine", seed+1, mine)
			})
			assert.False(t, director.knownMines.Has(c))

			_, err = g.Select(c)
			require.NoError(t, err)
		}

		if g.Outcome() == game.Won {
			numWon++
		}
	}

	// beginner boards are mostly solvable by deduction alone
	assert.Greater(t, numWon, 0)
}

func TestObservation(t *testing.T) {
	observation := Observation{
		origin:   game.Coord{Row: 1, Col: 2},
		numMines: 1,
		cells:    []game.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 1}},
	}
	assert.Equal(t, 0.5, observation.MineProbability())
	assert.Equal(t, "Obs[(1, 2), 1 ε [(0, 1) (1, 1)]]", observation.String())
}

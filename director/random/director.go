package random

import (
	"math/rand/v2"

	"github.com/they4kman/termsweep/game"
)

// Director selects hidden cells in an order shuffled once per game.
type Director struct {
	// Skip, when set, excludes cells the caller knows not to select.
	Skip func(game.Coord) bool

	rand  *rand.Rand
	game  *game.Game
	order []game.Coord
}

func New(r *rand.Rand) *Director {
	return &Director{rand: r}
}

func (director *Director) Init(g *game.Game) {
	director.game = g
	director.order = make([]game.Coord, 0, g.Rows()*g.Cols())
	for row := range g.Rows() {
		for col := range g.Cols() {
			director.order = append(director.order, game.Coord{Row: row, Col: col})
		}
	}

	director.rand.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act() (game.Coord, bool) {
	view := director.game.VisibleGrid()
	for _, c := range director.order {
		if view.At(c) != game.Unrevealed {
			continue
		}
		if director.Skip != nil && director.Skip(c) {
			continue
		}
		return c, true
	}
	return game.Coord{}, false
}

package constraint

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
	"github.com/zyedidia/generic/mapset"
)

// Director plays from what is visible on the board. It selects cells proven
// safe when it can, otherwise the least risky hidden cell it has information
// about, and otherwise a random one that is not a known mine.
type Director struct {
	game       *game.Game
	knownMines mapset.Set[game.Coord]
	fallback   *random.Director
}

// Observation is what one revealed number says about its hidden neighbors:
// exactly numMines of cells are mines.
type Observation struct {
	origin   game.Coord
	numMines int
	cells    []game.Coord
}

func (observation Observation) String() string {
	return fmt.Sprintf("Obs[%v, %d ε %v]", observation.origin, observation.numMines, observation.cells)
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func New(r *rand.Rand) *Director {
	return &Director{fallback: random.New(r)}
}

func (director *Director) Init(g *game.Game) {
	director.game = g
	director.knownMines = mapset.New[game.Coord]()
	director.fallback.Skip = director.knownMines.Has
	director.fallback.Init(g)
}

func (director *Director) Act() (game.Coord, bool) {
	observations := director.observe(director.game.VisibleGrid())

	actors := []func([]Observation) (game.Coord, bool){
		director.actDeliberate,
		director.actLowestProbability,
	}
	for _, actor := range actors {
		if c, ok := actor(observations); ok {
			return c, true
		}
	}
	return director.fallback.Act()
}

// observe gathers one observation per revealed number with hidden neighbors.
// Observations whose hidden cells must all be mines are folded into
// knownMines, and the pass repeats until nothing new is learned.
func (director *Director) observe(view game.View) []Observation {
	for {
		var observations []Observation
		learned := false

		for row := range view.Rows() {
			for col := range view.Cols() {
				origin := game.Coord{Row: row, Col: col}
				state := view.At(origin)
				if !state.IsNumber() {
					continue
				}

				observation := Observation{origin: origin, numMines: int(state)}
				for _, neighbor := range view.Neighbors(origin) {
					if view.At(neighbor) != game.Unrevealed {
						continue
					}
					if director.knownMines.Has(neighbor) {
						observation.numMines--
					} else {
						observation.cells = append(observation.cells, neighbor)
					}
				}

				if len(observation.cells) == 0 {
					continue
				}
				if observation.numMines == len(observation.cells) {
					for _, cell := range observation.cells {
						director.knownMines.Put(cell)
					}
					learned = true
					continue
				}
				observations = append(observations, observation)
			}
		}

		if !learned {
			game.Log.WithFields(logrus.Fields{
				"observations": len(observations),
				"knownMines":   director.knownMines.Size(),
			}).Debug("observed board")
			return observations
		}
	}
}

func (director *Director) actDeliberate(observations []Observation) (game.Coord, bool) {
	var safe game.Coord
	found := false
	for _, observation := range observations {
		if observation.numMines != 0 {
			continue
		}
		for _, cell := range observation.cells {
			if !found || before(cell, safe) {
				safe, found = cell, true
			}
		}
	}
	return safe, found
}

// actLowestProbability rates each cell by the most pessimistic observation
// covering it, and picks the lowest rated.
func (director *Director) actLowestProbability(observations []Observation) (game.Coord, bool) {
	cellProbabilities := make(map[game.Coord]float64)
	for _, observation := range observations {
		probability := observation.MineProbability()
		for _, cell := range observation.cells {
			if past, ok := cellProbabilities[cell]; !ok || probability > past {
				cellProbabilities[cell] = probability
			}
		}
	}

	var lowest game.Coord
	lowestProbability := 2.0
	for cell, probability := range cellProbabilities {
		if probability < lowestProbability || probability == lowestProbability && before(cell, lowest) {
			lowest, lowestProbability = cell, probability
		}
	}
	return lowest, len(cellProbabilities) > 0
}

func before(a, b game.Coord) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

package game

import (
	"github.com/gammazero/deque"
	"github.com/zyedidia/generic/mapset"
)

type NeighborGetter func(Coord) []Coord

// Visitor is called once per cell reached. Returning false stops the flood
// from spreading through that cell.
type Visitor func(Coord) bool

// flood performs a breadth-first traversal from start. Each coordinate is
// visited at most once, however many paths lead to it.
func flood(start Coord, visit Visitor, getNeighbors NeighborGetter) int {
	visited := mapset.New[Coord]()
	visitQueue := deque.New[Coord]()

	enqueue := func(c Coord) {
		if visited.Has(c) {
			return
		}
		visited.Put(c)
		visitQueue.PushBack(c)
	}

	enqueue(start)
	for visitQueue.Len() > 0 {
		c := visitQueue.PopFront()
		if !visit(c) {
			continue
		}
		for _, neighbor := range getNeighbors(c) {
			enqueue(neighbor)
		}
	}

	return visited.Size()
}

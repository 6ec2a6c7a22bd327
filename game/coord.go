package game

import "fmt"

type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Compass order, starting top-left and turning clockwise.
var neighborOffsets = [8]Coord{
	{-1, -1},
	{-1, 0},
	{-1, 1},
	{0, 1},
	{1, 1},
	{1, 0},
	{1, -1},
	{0, -1},
}

func (c Coord) add(offset Coord) Coord {
	return Coord{Row: c.Row + offset.Row, Col: c.Col + offset.Col}
}

// compareCoords orders coordinates row-major, for slices.SortFunc
func compareCoords(a, b Coord) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}

func neighborsWithin(c Coord, rows, cols int) []Coord {
	neighbors := make([]Coord, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		neighbor := c.add(offset)
		if neighbor.Row >= 0 && neighbor.Col >= 0 && neighbor.Row < rows && neighbor.Col < cols {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

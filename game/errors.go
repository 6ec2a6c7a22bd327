package game

import "fmt"

// ConfigurationError is returned when a board cannot be built from the
// requested dimensions, mine count, or layout.
type ConfigurationError struct {
	Rows, Cols, NumMines int
	Reason               string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %dx%d board with %d mines: %s", e.Rows, e.Cols, e.NumMines, e.Reason)
}

// OutOfBoundsError is returned by Select for a coordinate outside the board.
// The game is left unchanged.
type OutOfBoundsError struct {
	Coord      Coord
	Rows, Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v is outside the %dx%d board", e.Coord, e.Rows, e.Cols)
}

func validateDimensions(rows, cols, numMines int) error {
	switch {
	case rows < MinRows || cols < MinCols:
		return &ConfigurationError{
			Rows: rows, Cols: cols, NumMines: numMines,
			Reason: fmt.Sprintf("board needs to be at least %dx%d", MinRows, MinCols),
		}
	case rows > MaxCells/cols:
		return &ConfigurationError{
			Rows: rows, Cols: cols, NumMines: numMines,
			Reason: fmt.Sprintf("board cannot have more than %d cells", MaxCells),
		}
	case numMines < 0:
		return &ConfigurationError{
			Rows: rows, Cols: cols, NumMines: numMines,
			Reason: "mine count cannot be negative",
		}
	case numMines > rows*cols-1:
		return &ConfigurationError{
			Rows: rows, Cols: cols, NumMines: numMines,
			Reason: fmt.Sprintf("choose a maximum of %d mines", rows*cols-1),
		}
	}
	return nil
}

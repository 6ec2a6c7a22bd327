package game

type CellState int
type Outcome int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Mine
	MineLosing
)

var cellSymbols = map[CellState]string{
	Unrevealed: "X",
	Empty:      "_",
	Number1:    "1",
	Number2:    "2",
	Number3:    "3",
	Number4:    "4",
	Number5:    "5",
	Number6:    "6",
	Number7:    "7",
	Number8:    "8",
	Mine:       "M",
	MineLosing: "*",
}

func (state CellState) String() string {
	if symbol, ok := cellSymbols[state]; ok {
		return symbol
	}
	return "?"
}

// IsNumber reports whether the state shows a revealed mine count (0 included)
func (state CellState) IsNumber() bool {
	return state >= Empty && state <= Number8
}

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (outcome Outcome) String() string {
	switch outcome {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

const (
	MinRows = 5
	MinCols = 5

	// MaxCells bounds rows*cols, keeping the product and the grids it sizes
	// well within int.
	MaxCells = 1 << 24
)

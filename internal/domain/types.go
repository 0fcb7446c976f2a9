package domain

// Cell is the content of one board square.
type Cell int

const (
	Empty   Cell = 0
	PlayerX Cell = 1
	PlayerO Cell = 2
)

const (
	Rows    = 6
	Columns = 7
	Cells   = Rows * Columns
	ToWin   = 4
)

// NoMove marks the absence of a column, e.g. a search leaf.
const NoMove = -1

// Opponent returns the other side. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (c Cell) String() string {
	switch c {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

// to represent the game status
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove Error = "invalid move"
	ErrColumnFull  Error = "column is full"
	ErrGameOver    Error = "game is already over"
)

// SlotToColumn converts a user facing slot (1..7) into a board column.
func SlotToColumn(slot int) int {
	return slot - 1
}

// ColumnToSlot converts a board column into the user facing slot (1..7).
func ColumnToSlot(column int) int {
	return column + 1
}

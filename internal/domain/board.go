package domain

// Board is the 6x7 grid stored row-major, row 0 is the top row
// and column 0 the leftmost one. Columns are zero-based.
type Board [Cells]Cell

func NewBoard() Board {
	return Board{}
}

func index(row, column int) int {
	return row*Columns + column
}

func inColumnRange(column int) bool {
	return column >= 0 && column < Columns
}

func (b *Board) At(row, column int) Cell {
	return b[index(row, column)]
}

// Set writes a cell directly. It ignores gravity and is meant for
// building fixtures.
func (b *Board) Set(row, column int, c Cell) {
	b[index(row, column)] = c
}

// IsColumnOpen reports whether at least one cell of the column is empty.
// With gravity in place that is the same as the top cell being empty.
func (b *Board) IsColumnOpen(column int) bool {
	if !inColumnRange(column) {
		return false
	}
	return b[index(0, column)] == Empty
}

// Drop places side into the lowest empty cell of column and returns the
// row it landed on. A full or unknown column is left untouched and -1 is
// returned; callers are expected to check IsColumnOpen first.
func (b *Board) Drop(column int, side Cell) int {
	if !inColumnRange(column) {
		return -1
	}
	// shifting the disk from bottom to top till it finds a free cell
	for row := Rows - 1; row >= 0; row-- {
		if b[index(row, column)] == Empty {
			b[index(row, column)] = side
			return row
		}
	}
	return -1
}

// Undo clears the topmost occupied cell of column, reversing the last Drop
// made into it.
func (b *Board) Undo(column int) {
	if !inColumnRange(column) {
		return
	}
	for row := 0; row < Rows; row++ {
		if b[index(row, column)] != Empty {
			b[index(row, column)] = Empty
			return
		}
	}
}

// LegalMoves lists the open columns in ascending order.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.IsColumnOpen(col) {
			moves = append(moves, col)
		}
	}
	return moves
}

// this creates a deep copy of the board
func (b *Board) Clone() Board {
	return *b
}

func (b *Board) IsFull() bool {
	for col := 0; col < Columns; col++ {
		if b[index(0, col)] == Empty {
			return false
		}
	}
	return true
}

// Count returns how many cells hold side.
func (b *Board) Count(side Cell) int {
	n := 0
	for _, c := range b {
		if c == side {
			n++
		}
	}
	return n
}

// Height returns the number of occupied cells in column.
func (b *Board) Height(column int) int {
	if !inColumnRange(column) {
		return 0
	}
	h := 0
	for row := Rows - 1; row >= 0; row-- {
		if b[index(row, column)] == Empty {
			break
		}
		h++
	}
	return h
}

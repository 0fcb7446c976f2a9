package domain

// Window is four cell indexes forming a straight line on the board.
type Window [ToWin]int

// windows holds every line of four on a 6x7 board, in scan order:
// horizontal, vertical, down-right diagonal, up-right diagonal.
var windows = buildWindows()

func buildWindows() []Window {
	var ws []Window

	// horizontal
	for row := 0; row < Rows; row++ {
		for col := 0; col <= Columns-ToWin; col++ {
			ws = append(ws, line(row, col, 0, 1))
		}
	}

	// vertical
	for row := 0; row <= Rows-ToWin; row++ {
		for col := 0; col < Columns; col++ {
			ws = append(ws, line(row, col, 1, 0))
		}
	}

	// diagonal \ starting from the top rows
	for row := 0; row <= Rows-ToWin; row++ {
		for col := 0; col <= Columns-ToWin; col++ {
			ws = append(ws, line(row, col, 1, 1))
		}
	}

	// diagonal / starting from the bottom rows
	for row := ToWin - 1; row < Rows; row++ {
		for col := 0; col <= Columns-ToWin; col++ {
			ws = append(ws, line(row, col, -1, 1))
		}
	}

	return ws
}

func line(row, col, dRow, dCol int) Window {
	var w Window
	for i := range w {
		w[i] = index(row+i*dRow, col+i*dCol)
	}
	return w
}

// Windows returns all lines of four. The slice is shared and must not be
// modified.
func Windows() []Window {
	return windows
}

// Outcome is the result of scanning a board for the end of the game.
type Outcome struct {
	Status Status
	Winner Cell
}

// Evaluate checks the board for four in a row first and a full board
// second. It never mutates the board.
func Evaluate(b *Board) Outcome {
	for _, w := range windows {
		c := b[w[0]]
		if c != Empty && c == b[w[1]] && c == b[w[2]] && c == b[w[3]] {
			return Outcome{Status: StatusWon, Winner: c}
		}
	}

	if b.IsFull() {
		return Outcome{Status: StatusDraw, Winner: Empty}
	}

	return Outcome{Status: StatusInProgress, Winner: Empty}
}

func IsTerminal(b *Board) bool {
	return Evaluate(b).Status != StatusInProgress
}

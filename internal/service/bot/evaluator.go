package bot

import (
	"github.com/iamasit07/4-in-a-row/terminal/internal/domain"
)

const (
	// Window scores, mirrored for the opponent
	WinWindowScore   = 1000 // four of a kind
	ThreeWindowScore = 5    // three plus one empty cell
	TwoWindowScore   = 2    // two plus two empty cells
)

// Evaluate scores the board from perspective's point of view by summing
// every line of four independently. The value is a static heuristic: a
// finished game is not scored differently from any other position, use
// domain.Evaluate to detect the end of the game.
func Evaluate(board *domain.Board, perspective domain.Cell) int {
	opponent := perspective.Opponent()
	score := 0

	for _, w := range domain.Windows() {
		score += evaluateWindow(board, w, perspective, opponent)
	}

	return score
}

// evaluateWindow scores one line of four
func evaluateWindow(board *domain.Board, w domain.Window, player, opponent domain.Cell) int {
	playerCount, opponentCount, emptyCount := 0, 0, 0
	for _, idx := range w {
		switch board[idx] {
		case player:
			playerCount++
		case opponent:
			opponentCount++
		default:
			emptyCount++
		}
	}

	score := 0
	switch {
	case playerCount == 4:
		score += WinWindowScore
	case playerCount == 3 && emptyCount == 1:
		score += ThreeWindowScore
	case playerCount == 2 && emptyCount == 2:
		score += TwoWindowScore
	}

	switch {
	case opponentCount == 4:
		score -= WinWindowScore
	case opponentCount == 3 && emptyCount == 1:
		score -= ThreeWindowScore
	case opponentCount == 2 && emptyCount == 2:
		score -= TwoWindowScore
	}

	return score
}

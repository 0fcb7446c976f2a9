package domain

type Game struct {
	Board         Board
	CurrentPlayer Cell
	Status        Status
	Winner        Cell
	MoveCount     int
	Moves         []int
}

func NewGame(first Cell) *Game {
	if first != PlayerO {
		first = PlayerX
	}
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: first,
		Status:        StatusInProgress,
		Winner:        Empty,
		MoveCount:     0,
	}
}

// MakeMove drops the current player's disk into column and advances the
// game. The returned row is where the disk landed.
func (g *Game) MakeMove(column int) (int, error) {
	if g.Status != StatusInProgress {
		return -1, ErrGameOver
	}

	if !inColumnRange(column) {
		return -1, ErrInvalidMove
	}

	if !g.Board.IsColumnOpen(column) {
		return -1, ErrColumnFull
	}

	row := g.Board.Drop(column, g.CurrentPlayer)
	g.MoveCount++
	g.Moves = append(g.Moves, column)

	outcome := Evaluate(&g.Board)
	g.Status = outcome.Status
	g.Winner = outcome.Winner
	if g.IsFinished() {
		return row, nil
	}

	g.CurrentPlayer = g.CurrentPlayer.Opponent()
	return row, nil
}

func (g *Game) Outcome() Outcome {
	return Outcome{Status: g.Status, Winner: g.Winner}
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}

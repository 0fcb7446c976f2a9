package game

import (
	"fmt"
	"time"

	"github.com/iamasit07/4-in-a-row/terminal/internal/domain"
	"github.com/iamasit07/4-in-a-row/terminal/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/terminal/pkg/uid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	ErrSlotOutOfRange domain.Error = "slot out of range"
	ErrNotYourTurn    domain.Error = "not your turn"
)

// Searcher is the part of the bot engine a match needs.
type Searcher interface {
	Search(board *domain.Board, depth int, maximizing bool) bot.Result
	Maximizer() domain.Cell
}

// Match is one human versus computer game. The human plays the engine's
// maximizing side and moves first; the bot minimizes.
type Match struct {
	ID        string
	Game      *domain.Game
	Level     int
	Human     domain.Cell
	Bot       domain.Cell
	CreatedAt time.Time
	engine    Searcher
	logger    zerolog.Logger
}

// BotReport describes the move the computer just played.
type BotReport struct {
	Slot       int
	Row        int
	Score      int // minimax score of the chosen move
	BoardScore int // static evaluation of the board after the move
	Nodes      int64
	Elapsed    time.Duration
	Fallback   bool // the search returned no move and the default was played
}

func NewMatch(engine Searcher, level int) (*Match, error) {
	if err := bot.ValidateLevel(level); err != nil {
		return nil, err
	}

	human := engine.Maximizer()
	id := uid.NewMatchID()
	m := &Match{
		ID:        id,
		Game:      domain.NewGame(human),
		Level:     level,
		Human:     human,
		Bot:       human.Opponent(),
		CreatedAt: time.Now(),
		engine:    engine,
		logger:    log.With().Str("component", "match").Str("match_id", id).Logger(),
	}

	m.logger.Info().
		Int("level", level).
		Str("difficulty", string(bot.DifficultyOf(level))).
		Str("human", human.String()).
		Msg("match started")
	return m, nil
}

// HumanMove plays the human's disk into a user facing slot (1..7).
func (m *Match) HumanMove(slot int) (int, error) {
	if m.Game.IsFinished() {
		return -1, domain.ErrGameOver
	}
	if slot < 1 || slot > domain.Columns {
		return -1, fmt.Errorf("%w: %d (allowed 1-%d)", ErrSlotOutOfRange, slot, domain.Columns)
	}
	if m.Game.CurrentPlayer != m.Human {
		return -1, ErrNotYourTurn
	}

	row, err := m.Game.MakeMove(domain.SlotToColumn(slot))
	if err != nil {
		return -1, fmt.Errorf("slot %d: %w", slot, err)
	}

	m.logger.Debug().Int("slot", slot).Int("row", row).Msg("human moved")
	m.logOutcome()
	return row, nil
}

// BotMove searches the current position and plays the computer's reply.
func (m *Match) BotMove() (BotReport, error) {
	if m.Game.IsFinished() {
		return BotReport{}, domain.ErrGameOver
	}
	if m.Game.CurrentPlayer != m.Bot {
		return BotReport{}, ErrNotYourTurn
	}

	start := time.Now()
	res := m.engine.Search(&m.Game.Board, m.Level, m.Bot == m.engine.Maximizer())

	column := res.Move
	fallback := false
	if column == domain.NoMove {
		column = bot.DefaultMove(&m.Game.Board)
		fallback = true
	}

	row, err := m.Game.MakeMove(column)
	if err != nil {
		return BotReport{}, fmt.Errorf("bot move into column %d: %w", column, err)
	}

	report := BotReport{
		Slot:       domain.ColumnToSlot(column),
		Row:        row,
		Score:      res.Score,
		BoardScore: bot.Evaluate(&m.Game.Board, m.engine.Maximizer()),
		Nodes:      res.Nodes,
		Elapsed:    time.Since(start),
		Fallback:   fallback,
	}

	m.logger.Debug().
		Int("slot", report.Slot).
		Int("score", report.Score).
		Int("board_score", report.BoardScore).
		Int64("nodes", report.Nodes).
		Dur("elapsed", report.Elapsed).
		Bool("fallback", report.Fallback).
		Msg("bot moved")
	m.logOutcome()
	return report, nil
}

func (m *Match) Outcome() domain.Outcome {
	return m.Game.Outcome()
}

func (m *Match) IsFinished() bool {
	return m.Game.IsFinished()
}

// Board returns a copy of the current board.
func (m *Match) Board() domain.Board {
	return m.Game.Board.Clone()
}

func (m *Match) logOutcome() {
	if !m.Game.IsFinished() {
		return
	}
	m.logger.Info().
		Str("status", string(m.Game.Status)).
		Str("winner", m.Game.Winner.String()).
		Int("moves", m.Game.MoveCount).
		Dur("duration", time.Since(m.CreatedAt)).
		Msg("match finished")
}

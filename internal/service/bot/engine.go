package bot

import (
	"math"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/iamasit07/4-in-a-row/terminal/internal/domain"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Mode selects how sibling branches of a search node are explored.
type Mode string

const (
	ModeParallel   Mode = "parallel"
	ModeSequential Mode = "sequential"
)

// ParseMode maps a config value to a Mode, defaulting to parallel.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeParallel, "":
		return ModeParallel, true
	case ModeSequential:
		return ModeSequential, true
	default:
		return ModeParallel, false
	}
}

// Result is the outcome of a search. Move is domain.NoMove at a leaf.
type Result struct {
	Move  int
	Score int
	Nodes int64
}

// Engine runs a plain depth-limited minimax. The maximizer is the side the
// evaluation favours; the other side minimizes.
type Engine struct {
	mode      Mode
	workers   int
	maximizer domain.Cell
	sem       *semaphore.Weighted
	logger    zerolog.Logger
}

type Option func(*Engine)

func WithMode(m Mode) Option {
	return func(e *Engine) { e.mode = m }
}

// WithWorkers caps the number of goroutines exploring branches at once.
// Zero or less means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

func WithMaximizer(side domain.Cell) Option {
	return func(e *Engine) { e.maximizer = side }
}

func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		mode:      ModeParallel,
		maximizer: domain.PlayerX,
		logger:    log.With().Str("component", "bot").Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers <= 0 {
		e.workers = runtime.GOMAXPROCS(0)
	}
	if e.maximizer != domain.PlayerO {
		e.maximizer = domain.PlayerX
	}
	e.sem = semaphore.NewWeighted(int64(e.workers))
	return e
}

func (e *Engine) Mode() Mode {
	return e.mode
}

func (e *Engine) Maximizer() domain.Cell {
	return e.maximizer
}

// SideToMove returns the side placing a disk at a ply with the given flag.
func (e *Engine) SideToMove(maximizing bool) domain.Cell {
	if maximizing {
		return e.maximizer
	}
	return e.maximizer.Opponent()
}

// DefaultMove is the move played when a search has nothing better to
// offer: the lowest open column, or domain.NoMove on a full board.
func DefaultMove(board *domain.Board) int {
	for col := 0; col < domain.Columns; col++ {
		if board.IsColumnOpen(col) {
			return col
		}
	}
	return domain.NoMove
}

// Search returns the best column for the side to move and its score.
// The board is never modified. Ties go to the lowest column, so both
// modes return the same result for the same input.
func (e *Engine) Search(board *domain.Board, depth int, maximizing bool) Result {
	start := time.Now()
	s := &searcher{engine: e}

	var move, score int
	if e.mode == ModeSequential {
		b := board.Clone()
		move, score = s.sequential(&b, depth, maximizing)
	} else {
		move, score = s.parallel(board, depth, maximizing)
	}

	res := Result{Move: move, Score: score, Nodes: s.nodes.Load()}
	e.logger.Debug().
		Str("mode", string(e.mode)).
		Int("depth", depth).
		Bool("maximizing", maximizing).
		Int("move", res.Move).
		Int("score", res.Score).
		Int64("nodes", res.Nodes).
		Dur("elapsed", time.Since(start)).
		Msg("search finished")
	return res
}

// searcher holds the state of a single Search call.
type searcher struct {
	engine *Engine
	nodes  atomic.Int64
}

func (s *searcher) leaf(board *domain.Board, depth int) bool {
	return depth <= 0 || domain.IsTerminal(board)
}

// parallel explores every child of a node in its own goroutine when a
// worker slot is free and inline otherwise. Children own their board.
func (s *searcher) parallel(board *domain.Board, depth int, maximizing bool) (int, int) {
	s.nodes.Add(1)
	if s.leaf(board, depth) {
		return domain.NoMove, Evaluate(board, s.engine.maximizer)
	}

	moves := board.LegalMoves()
	if len(moves) == 0 {
		return domain.NoMove, Evaluate(board, s.engine.maximizer)
	}

	side := s.engine.SideToMove(maximizing)
	scores := make([]int, len(moves))

	// branches never fail; the group is only the join point. The engine
	// wide semaphore, not the group, bounds how many goroutines run.
	var g errgroup.Group
	for i, col := range moves {
		child := board.Clone()
		child.Drop(col, side)

		if s.engine.sem.TryAcquire(1) {
			g.Go(func() error {
				defer s.engine.sem.Release(1)
				_, scores[i] = s.parallel(&child, depth-1, !maximizing)
				return nil
			})
			continue
		}
		_, scores[i] = s.parallel(&child, depth-1, !maximizing)
	}
	_ = g.Wait()

	return choose(board, moves, scores, maximizing)
}

// sequential walks the tree on a single board, undoing every drop before
// trying the next column.
func (s *searcher) sequential(board *domain.Board, depth int, maximizing bool) (int, int) {
	s.nodes.Add(1)
	if s.leaf(board, depth) {
		return domain.NoMove, Evaluate(board, s.engine.maximizer)
	}

	moves := board.LegalMoves()
	if len(moves) == 0 {
		return domain.NoMove, Evaluate(board, s.engine.maximizer)
	}

	side := s.engine.SideToMove(maximizing)
	scores := make([]int, len(moves))
	for i, col := range moves {
		board.Drop(col, side)
		_, scores[i] = s.sequential(board, depth-1, !maximizing)
		board.Undo(col)
	}

	return choose(board, moves, scores, maximizing)
}

// choose reduces child scores in column order. Only a strictly better
// score replaces the current best.
func choose(board *domain.Board, moves, scores []int, maximizing bool) (int, int) {
	bestMove := DefaultMove(board)
	bestScore := math.MaxInt
	if maximizing {
		bestScore = math.MinInt
	}

	for i, col := range moves {
		if (maximizing && scores[i] > bestScore) || (!maximizing && scores[i] < bestScore) {
			bestMove = col
			bestScore = scores[i]
		}
	}
	return bestMove, bestScore
}

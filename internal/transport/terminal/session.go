// Package terminal is the line based front end: it reads the player's input,
// prints the board and drives the play-again loop.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/terminal/internal/config"
	"github.com/iamasit07/4-in-a-row/terminal/internal/domain"
	"github.com/iamasit07/4-in-a-row/terminal/internal/repository/kv"
	"github.com/iamasit07/4-in-a-row/terminal/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/terminal/internal/service/game"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	engine game.Searcher
	prefs  kv.PreferenceRepository
	level  int
	logger zerolog.Logger
}

// NewSession builds a session. level is a fixed bot level, or config.AskLevel
// to prompt for it before each game.
func NewSession(in io.Reader, out io.Writer, engine game.Searcher, prefs kv.PreferenceRepository, level int) *Session {
	return &Session{
		in:     bufio.NewScanner(in),
		out:    out,
		engine: engine,
		prefs:  prefs,
		level:  level,
		logger: log.With().Str("component", "terminal").Logger(),
	}
}

// Run plays games until the player declines another one or the input ends.
func (s *Session) Run() error {
	printBanner(s.out)

	for {
		err := s.playGame()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		again, err := s.askPlayAgain()
		if errors.Is(err, io.EOF) || (err == nil && !again) {
			fmt.Fprintln(s.out, "Exiting program ...")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) chooseLevel() (int, error) {
	if s.level != config.AskLevel {
		return s.level, nil
	}

	prefs, err := s.prefs.Load()
	if err != nil {
		s.logger.Warn().Err(err).Msg("could not load preferences")
		prefs = kv.DefaultPreferences()
	}
	if err := bot.ValidateLevel(prefs.Level); err != nil {
		s.logger.Warn().Err(err).Msg("stored level is unusable, using the default")
		prefs = kv.DefaultPreferences()
	}

	for {
		fmt.Fprintf(s.out, "\nChoose the level of the bot (%d-%d) [%d]:\n", bot.MinLevel, bot.MaxLevel, prefs.Level)
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}

		level := prefs.Level
		if line != "" {
			level, err = bot.ParseLevel(line)
			switch {
			case errors.Is(err, bot.ErrNotANumber):
				fmt.Fprintln(s.out, "This is not a number")
				continue
			case errors.Is(err, bot.ErrLevelOutOfRange):
				fmt.Fprintf(s.out, "There are only %d-%d levels\n", bot.MinLevel, bot.MaxLevel)
				continue
			}
		}

		prefs.Level = level
		if err := s.prefs.Save(prefs); err != nil {
			s.logger.Warn().Err(err).Msg("could not save preferences")
		}
		return level, nil
	}
}

func (s *Session) playGame() error {
	level, err := s.chooseLevel()
	if err != nil {
		return err
	}

	match, err := game.NewMatch(s.engine, level)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Bot level %d (%s)\n", level, bot.DifficultyOf(level))

	board := match.Board()
	printBoard(s.out, &board)

	for !match.IsFinished() {
		if err := s.humanTurn(match); err != nil {
			return err
		}
		if s.announce(match) {
			return nil
		}

		report, err := match.BotMove()
		if err != nil {
			return err
		}
		board = match.Board()
		printBoard(s.out, &board)
		fmt.Fprintf(s.out, "Bot drops slot number : %d\n", report.Slot)
		fmt.Fprintf(s.out, "Time Taken: %.3f seconds (%d positions)\n", report.Elapsed.Seconds(), report.Nodes)
		fmt.Fprintf(s.out, "Board Score = %d\n", report.Score)
		fmt.Fprintf(s.out, "Actual Board Score = %d\n", report.BoardScore)
		if s.announce(match) {
			return nil
		}
	}
	return nil
}

// humanTurn prompts until the player makes a legal move.
func (s *Session) humanTurn(match *game.Match) error {
	for {
		fmt.Fprintf(s.out, "\nEnter a number from 1 to %d:\n", domain.Columns)
		line, err := s.readLine()
		if err != nil {
			return err
		}

		slot, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "This is not a number")
			continue
		}

		_, err = match.HumanMove(slot)
		switch {
		case err == nil:
			board := match.Board()
			printBoard(s.out, &board)
			return nil
		case errors.Is(err, game.ErrSlotOutOfRange):
			fmt.Fprintln(s.out, "Number out of range")
		case errors.Is(err, domain.ErrColumnFull):
			fmt.Fprintf(s.out, "Column %d is full\n", slot)
		default:
			return err
		}
	}
}

// announce prints the result once the match is over and reports whether it is.
func (s *Session) announce(match *game.Match) bool {
	title, c, message, ok := endOfGame(match.Outcome(), match.Human)
	if !ok {
		return false
	}
	printEndOfGame(s.out, title, c, message)
	return true
}

func (s *Session) askPlayAgain() (bool, error) {
	fmt.Fprintln(s.out, "\n\nContinue playing? (y/n):")
	line, err := s.readLine()
	if err != nil {
		return false, err
	}
	return !strings.HasPrefix(strings.ToLower(line), "n"), nil
}

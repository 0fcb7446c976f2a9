package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/terminal/internal/domain"
)

const (
	MinLevel = 0
	MaxLevel = 10
)

const (
	ErrNotANumber      domain.Error = "not a number"
	ErrLevelOutOfRange domain.Error = "level out of range"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseLevel reads a search depth typed by the user.
func ParseLevel(input string) (int, error) {
	level, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, strings.TrimSpace(input))
	}
	if err := ValidateLevel(level); err != nil {
		return 0, err
	}
	return level, nil
}

func ValidateLevel(level int) error {
	if level < MinLevel || level > MaxLevel {
		return fmt.Errorf("%w: %d (allowed %d-%d)", ErrLevelOutOfRange, level, MinLevel, MaxLevel)
	}
	return nil
}

// DifficultyOf names a level for display
func DifficultyOf(level int) Difficulty {
	switch {
	case level <= 2:
		return DifficultyEasy
	case level <= 5:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/terminal/internal/domain"
	"github.com/iamasit07/4-in-a-row/terminal/internal/service/bot"
	"github.com/rs/zerolog/log"
)

// AskLevel means the level is asked for at the start of every game.
const AskLevel = -1

const ErrInvalidConfig domain.Error = "invalid configuration"

type Config struct {
	Level         int
	SearchMode    bot.Mode
	SearchWorkers int
	DataDir       string
	Persist       bool
	LogLevel      string
	LogFormat     string
}

var AppConfig *Config

func LoadConfig() *Config {
	level := GetEnvAsInt("CONNECT4_LEVEL", AskLevel)
	mode := GetEnv("CONNECT4_SEARCH_MODE", string(bot.ModeParallel))

	AppConfig = &Config{
		Level:         level,
		SearchMode:    bot.Mode(strings.ToLower(strings.TrimSpace(mode))),
		SearchWorkers: GetEnvAsInt("CONNECT4_WORKERS", 0),
		DataDir:       GetEnv("CONNECT4_DATA_DIR", ""),
		Persist:       GetEnvAsBool("CONNECT4_PERSIST", true),
		LogLevel:      GetEnv("LOG_LEVEL", "warn"),
		LogFormat:     GetEnv("LOG_FORMAT", "console"),
	}

	return AppConfig
}

// Validate checks values that cannot be defaulted silently.
func (c *Config) Validate() error {
	if c.Level != AskLevel {
		if err := bot.ValidateLevel(c.Level); err != nil {
			return fmt.Errorf("%w: CONNECT4_LEVEL: %w", ErrInvalidConfig, err)
		}
	}
	if _, ok := bot.ParseMode(string(c.SearchMode)); !ok {
		return fmt.Errorf("%w: CONNECT4_SEARCH_MODE %q, want %q or %q",
			ErrInvalidConfig, c.SearchMode, bot.ModeParallel, bot.ModeSequential)
	}
	if c.SearchWorkers < 0 {
		return fmt.Errorf("%w: CONNECT4_WORKERS must not be negative, got %d", ErrInvalidConfig, c.SearchWorkers)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: LOG_FORMAT %q, want console or json", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).
			Msg("invalid integer value, using default")
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Bool("default", defaultValue).
			Msg("invalid boolean value, using default")
		return defaultValue
	}
	return value
}

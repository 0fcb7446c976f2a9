package main

import (
	"os"

	"github.com/iamasit07/4-in-a-row/terminal/internal/config"
	"github.com/iamasit07/4-in-a-row/terminal/internal/logging"
	"github.com/iamasit07/4-in-a-row/terminal/internal/repository/kv"
	"github.com/iamasit07/4-in-a-row/terminal/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/terminal/internal/transport/terminal"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.LoadConfig()
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr); err != nil {
		log.Fatal().Err(err).Msg("invalid logging configuration")
	}
	if envErr != nil {
		log.Debug().Msg("no .env file found")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	mode, _ := bot.ParseMode(string(cfg.SearchMode))
	engine := bot.NewEngine(
		bot.WithMode(mode),
		bot.WithWorkers(cfg.SearchWorkers),
		bot.WithLogger(logging.Component("bot")),
	)

	prefs := kv.OpenRepository(cfg.Persist, cfg.DataDir, logging.Component("store"))
	defer func() {
		if err := prefs.Close(); err != nil {
			log.Warn().Err(err).Msg("closing preference store")
		}
	}()

	log.Info().
		Str("mode", string(mode)).
		Int("level", cfg.Level).
		Bool("persist", cfg.Persist).
		Msg("starting connect four")

	session := terminal.NewSession(os.Stdin, os.Stdout, engine, prefs, cfg.Level)
	if err := session.Run(); err != nil {
		log.Error().Err(err).Msg("session ended with an error")
		_ = prefs.Close()
		os.Exit(1)
	}
}

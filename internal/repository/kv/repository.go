package kv

import (
	"path/filepath"

	"github.com/rs/zerolog"
)

// OpenRepository returns a badger backed store when persist is set and the
// database opens, and an in-memory store otherwise. A broken data directory
// never stops the game from starting.
func OpenRepository(persist bool, dataDir string, logger zerolog.Logger) PreferenceRepository {
	if !persist {
		logger.Debug().Msg("preference persistence disabled, using memory store")
		return NewMemoryStore()
	}

	dir, err := DataDir(dataDir)
	if err != nil {
		logger.Warn().Err(err).Msg("could not resolve data directory, falling back to memory store")
		return NewMemoryStore()
	}
	dbDir := filepath.Join(dir, "db")

	store, err := Open(dbDir, logger)
	if err != nil {
		logger.Warn().Err(err).Str("dir", dbDir).Msg("could not open preference store, falling back to memory store")
		return NewMemoryStore()
	}

	logger.Debug().Str("dir", dbDir).Msg("preference store opened")
	return store
}

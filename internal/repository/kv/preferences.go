// Package kv persists user preferences between runs of the game.
package kv

import (
	"time"

	"github.com/iamasit07/4-in-a-row/terminal/internal/domain"
)

const keyPreferences = "preferences"

const ErrStoreClosed domain.Error = "preference store is closed"

// Preferences are the settings remembered between games.
type Preferences struct {
	Level      int       `json:"level"`
	LastPlayed time.Time `json:"last_played"`
}

// DefaultPreferences returns the settings used before anything was saved.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Level: 4,
	}
}

// PreferenceRepository is implemented by every preference backend.
type PreferenceRepository interface {
	Load() (*Preferences, error)
	Save(prefs *Preferences) error
	Close() error
}

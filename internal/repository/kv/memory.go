package kv

import (
	"sync"
	"time"
)

// MemoryStore is used when persistence is disabled or the database cannot
// be opened.
type MemoryStore struct {
	mu    sync.Mutex
	prefs *Preferences
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (*Preferences, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.prefs == nil {
		return DefaultPreferences(), nil
	}
	p := *m.prefs
	return &p, nil
}

func (m *MemoryStore) Save(prefs *Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prefs.LastPlayed = time.Now()
	p := *prefs
	m.prefs = &p
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

package kv

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
)

func TestStorePersistsPreferences(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	prefs, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *prefs != *DefaultPreferences() {
		t.Errorf("fresh store returned %+v, want defaults", prefs)
	}

	prefs.Level = 7
	if err := store.Save(prefs); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if prefs.LastPlayed.IsZero() {
		t.Error("Save did not stamp LastPlayed")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load after reopen: %v", err)
	}
	if got.Level != 7 {
		t.Errorf("reloaded %+v", got)
	}
	if !got.LastPlayed.Equal(prefs.LastPlayed) {
		t.Errorf("LastPlayed = %v, want %v", got.LastPlayed, prefs.LastPlayed)
	}
}

func TestInMemoryStore(t *testing.T) {
	store, err := OpenInMemory(zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}

	if err := store.Save(&Preferences{Level: 2}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Level != 2 {
		t.Errorf("Level = %d, want 2", got.Level)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("Load after Close: err = %v, want ErrStoreClosed", err)
	}
	if err := store.Save(DefaultPreferences()); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("Save after Close: err = %v, want ErrStoreClosed", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()

	prefs, _ := m.Load()
	if prefs.Level != DefaultPreferences().Level {
		t.Errorf("default level = %d", prefs.Level)
	}

	prefs.Level = 9
	if err := m.Save(prefs); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// the stored copy must not alias the caller's value
	prefs.Level = 1
	got, _ := m.Load()
	if got.Level != 9 {
		t.Errorf("Level = %d, want 9", got.Level)
	}
}

func TestOpenRepository(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		repo := OpenRepository(false, t.TempDir(), zerolog.Nop())
		if _, ok := repo.(*MemoryStore); !ok {
			t.Errorf("got %T, want *MemoryStore", repo)
		}
	})

	t.Run("Enabled", func(t *testing.T) {
		dataDir := t.TempDir()
		repo := OpenRepository(true, dataDir, zerolog.Nop())
		defer repo.Close()

		if _, ok := repo.(*Store); !ok {
			t.Fatalf("got %T, want *Store", repo)
		}
		if _, err := os.Stat(filepath.Join(dataDir, "db")); err != nil {
			t.Errorf("database directory not created: %v", err)
		}
	})

	t.Run("UnusableDirFallsBack", func(t *testing.T) {
		// a regular file where the data directory should be
		file := filepath.Join(t.TempDir(), "not-a-dir")
		if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		repo := OpenRepository(true, file, zerolog.Nop())
		if _, ok := repo.(*MemoryStore); !ok {
			t.Errorf("got %T, want *MemoryStore", repo)
		}
	})
}

func TestDataDir(t *testing.T) {
	t.Run("Override", func(t *testing.T) {
		want := filepath.Join(t.TempDir(), "custom", "place")

		dir, err := DataDir(want)
		if err != nil {
			t.Fatalf("DataDir: %v", err)
		}
		if dir != want {
			t.Errorf("DataDir = %q, want %q", dir, want)
		}
		if _, err := os.Stat(dir); err != nil {
			t.Errorf("data directory was not created: %v", err)
		}
	})

	t.Run("PlatformDefault", func(t *testing.T) {
		if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
			t.Skip("XDG_DATA_HOME only applies to unix-like systems")
		}
		base := t.TempDir()
		t.Setenv("XDG_DATA_HOME", base)

		dir, err := DataDir("")
		if err != nil {
			t.Fatalf("DataDir: %v", err)
		}
		if want := filepath.Join(base, appName); dir != want {
			t.Errorf("DataDir = %q, want %q", dir, want)
		}
		if _, err := os.Stat(dir); err != nil {
			t.Errorf("data directory was not created: %v", err)
		}
		t.Logf("Data directory: %s", dir)
	})
}

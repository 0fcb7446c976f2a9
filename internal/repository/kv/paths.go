package kv

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "connect4"

// DataDir returns the directory the game keeps its files in, creating it if
// needed. A non-empty override (CONNECT4_DATA_DIR) is used as is; otherwise
// the directory is connect4/ below the platform data home:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_DATA_HOME or ~/.local/share
//   - Windows: %APPDATA% or ~/AppData/Roaming
func DataDir(override string) (string, error) {
	dir := override
	if dir == "" {
		home, err := dataHome()
		if err != nil {
			return "", fmt.Errorf("resolve data directory: %w", err)
		}
		dir = filepath.Join(home, appName)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return dir, nil
}

func dataHome() (string, error) {
	var env string
	var below []string

	switch runtime.GOOS {
	case "darwin":
		below = []string{"Library", "Application Support"}
	case "windows":
		env, below = os.Getenv("APPDATA"), []string{"AppData", "Roaming"}
	default:
		env, below = os.Getenv("XDG_DATA_HOME"), []string{".local", "share"}
	}
	if env != "" {
		return env, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{userHome}, below...)...), nil
}

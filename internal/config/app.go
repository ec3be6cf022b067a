package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func DataDir() string {
	return getenv("MINESWEEPER_DATA_DIR", "files")
}

func BoardConfigPath() string {
	return getenv("MINESWEEPER_CONFIG", filepath.Join(DataDir(), "config.cfg"))
}

func LeaderboardPath() string {
	return filepath.Join(DataDir(), "leaderboard.txt")
}

func DatabasePath() string {
	return filepath.Join(DataDir(), "minesweeper.db")
}

func LeaderboardBackend() (string, error) {
	backend := getenv("MINESWEEPER_LEADERBOARD", BackendFile)
	switch backend {
	case BackendFile, BackendSQLite:
		return backend, nil
	default:
		return "", fmt.Errorf("unknown leaderboard backend %q", backend)
	}
}

// Development is on when DEVELOPMENT is set to anything but "0" or "false".
func Development() bool {
	v := getenv("DEVELOPMENT", "0")
	return v != "0" && v != "false"
}

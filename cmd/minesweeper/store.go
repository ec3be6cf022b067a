package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/database"
	"github.com/vancomm/minesweeper/internal/leaderboard"
)

// openLeaderboard picks the store named by MINESWEEPER_LEADERBOARD. The
// returned func releases it.
func openLeaderboard(logger *slog.Logger) (*leaderboard.Leaderboard, func(), error) {
	backend, err := config.LeaderboardBackend()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(config.DataDir(), 0o755); err != nil {
		return nil, nil, fmt.Errorf("unable to create data dir: %w", err)
	}

	switch backend {
	case config.BackendSQLite:
		db, _, err := database.ConnectAndMigrate(config.DatabasePath(), database.Migrations)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to open leaderboard db: %w", err)
		}
		logger.Debug("using sqlite leaderboard", slog.String("path", config.DatabasePath()))
		return leaderboard.New(logger, leaderboard.NewSQLiteStore(db)), func() { db.Close() }, nil
	default:
		logger.Debug("using file leaderboard", slog.String("path", config.LeaderboardPath()))
		return leaderboard.New(logger, leaderboard.NewFileStore(config.LeaderboardPath())), func() {}, nil
	}
}

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/database"
	"github.com/vancomm/minesweeper/internal/render"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "scores",
		Short: "Print the top 5 times",
		RunE: func(cmd *cobra.Command, args []string) error {
			lb, release, err := openLeaderboard(logger)
			if err != nil {
				return err
			}
			defer release()

			tbl, err := lb.Top(cmd.Context())
			if err != nil {
				return err
			}
			return render.NewText(cmd.OutOrStdout()).RenderLeaderboard(tbl, -1)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the sqlite leaderboard schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, migrator, err := database.ConnectAndMigrate(config.DatabasePath(), database.Migrations)
			if err != nil {
				return err
			}
			defer db.Close()

			version, dirty, err := migrator.Version()
			if err != nil {
				logger.Error("failed to check migration version", slog.Any("error", err))
				return err
			}
			logger.Info("migration successful",
				slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
			return nil
		},
	})
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/user/cliphunter-tui/config"
	"github.com/user/cliphunter-tui/db"
	"github.com/user/cliphunter-tui/deps"
	"github.com/user/cliphunter-tui/logging"
	"github.com/user/cliphunter-tui/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the clip library",
	Long: `Open the interactive clip library. From there clips can be filtered,
played, deleted, and new clips can be cut from online sources.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := deps.CheckMpv(); err != nil {
			return err
		}

		cfg, err := config.New()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logFile, err := logging.OpenLogFile(cfg.LogPath())
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close()
		logger := logging.NewLogger(logFile, cfg.LogLevel())

		database, err := db.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		return tui.Run(cfg, database, logger)
	},
}

package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
	"github.com/user/cliphunter-tui/config"
	"github.com/user/cliphunter-tui/db"
	"github.com/user/cliphunter-tui/deps"
	"github.com/user/cliphunter-tui/logging"
	"github.com/user/cliphunter-tui/tui"
)

var openTitle string

var openCmd = &cobra.Command{
	Use:   "open <source-url>",
	Short: "Open a source video for trimming",
	Long: `Open a source video in mpv and go straight to the trim view,
skipping the library.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceURL := args[0]

		u, err := url.Parse(sourceURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("not a valid source URL: %s", sourceURL)
		}

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

		title := openTitle
		if title == "" {
			title = "Untitled clip"
		}

		return tui.RunOpen(cfg, database, logger, sourceURL, title)
	},
}

func init() {
	openCmd.Flags().StringVarP(&openTitle, "title", "t", "", "clip title")
	rootCmd.AddCommand(openCmd)
}

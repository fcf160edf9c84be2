package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/user/cliphunter-tui/config"
	"github.com/user/cliphunter-tui/cutter"
	"github.com/user/cliphunter-tui/db"
	"github.com/user/cliphunter-tui/logging"
	"github.com/user/cliphunter-tui/pkg/timeutil"
)

var (
	cutStart    string
	cutEnd      string
	cutTitle    string
	cutShow     string
	cutEmotion  string
	cutCategory string
	cutNoSave   bool
)

var cutCmd = &cobra.Command{
	Use:   "cut <source-url>",
	Short: "Cut a clip from a source video without opening the TUI",
	Long: `Cut a clip from an online source via the cutting service and save it
to the library. Start and end accept seconds or H:MM:SS.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceURL := args[0]

		start, err := timeutil.ParseTimeToSeconds(cutStart)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		end, err := timeutil.ParseTimeToSeconds(cutEnd)
		if err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}
		if end <= start {
			return fmt.Errorf("end must be after start")
		}
		if cutTitle == "" {
			return fmt.Errorf("--title is required")
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

		policy := cutter.RetryPolicy{
			MaxAttempts: cfg.MaxAttempts(),
			BaseDelay:   cfg.RetryDelay(),
		}
		client := cutter.NewClient(cfg.ServiceURL(), policy, logger)

		fmt.Printf("Cutting %s [%s - %s]...\n", cutTitle, timeutil.FormatTime(start), timeutil.FormatTime(end))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		locator, err := client.Cut(ctx, sourceURL, start, end, cutTitle)
		if err != nil {
			return err
		}

		fmt.Printf("Clip ready: %s\n", locator)

		if cutNoSave {
			return nil
		}

		database, err := db.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		id, err := db.InsertClip(database, db.Clip{
			Title:     cutTitle,
			ShowTitle: cutShow,
			Emotion:   cutEmotion,
			Category:  cutCategory,
			VideoURL:  locator,
			StartTime: 0,
			EndTime:   end - start,
		})
		if err != nil {
			return fmt.Errorf("clip cut but not saved: %w", err)
		}

		fmt.Printf("Saved to library as clip %d\n", id)
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <source-url>",
	Short: "Show metadata for a source video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		client := cutter.NewClient(cfg.ServiceURL(), cutter.DefaultPolicy(), logging.Discard())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		info, err := client.Info(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Title:     %s\n", info.Title)
		if info.Duration > 0 {
			fmt.Printf("Duration:  %s\n", timeutil.FormatTime(info.Duration))
		}
		if info.Thumbnail != "" {
			fmt.Printf("Thumbnail: %s\n", info.Thumbnail)
		}
		if info.VideoURL != "" {
			fmt.Printf("Video URL: %s\n", info.VideoURL)
		}
		return nil
	},
}

func init() {
	cutCmd.Flags().StringVarP(&cutStart, "start", "s", "", "cut start (seconds or H:MM:SS)")
	cutCmd.Flags().StringVarP(&cutEnd, "end", "e", "", "cut end (seconds or H:MM:SS)")
	cutCmd.Flags().StringVarP(&cutTitle, "title", "t", "", "clip title")
	cutCmd.Flags().StringVar(&cutShow, "show", "", "show title")
	cutCmd.Flags().StringVar(&cutEmotion, "emotion", "", "emotion tag")
	cutCmd.Flags().StringVar(&cutCategory, "category", "", "category tag")
	cutCmd.Flags().BoolVar(&cutNoSave, "no-save", false, "do not save the result to the library")
	_ = cutCmd.MarkFlagRequired("start")
	_ = cutCmd.MarkFlagRequired("end")
}

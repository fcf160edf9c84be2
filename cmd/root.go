package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/cliphunter-tui/deps"
)

var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "cliphunter",
	Short: "A TUI for browsing and cutting video clips",
	Long: `cliphunter is a terminal application for browsing a library of short
video clips and cutting new ones from online sources via a remote
cutting service.

Features:
  - Browse, filter, and play saved clips
  - Trim a source video interactively in mpv
  - Cut a selection remotely and save the result to the library`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cliphunter version %s\n", Version)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  `Check that all required system dependencies (mpv) are installed and available.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Checking dependencies...")
		fmt.Println()

		allGood := true

		if err := deps.CheckMpv(); err != nil {
			fmt.Println("✗ mpv: NOT FOUND")
			fmt.Printf("  Install from: %s\n", deps.MpvInstallURL)
			allGood = false
		} else {
			fmt.Println("✓ mpv: OK")
		}

		fmt.Println()
		if allGood {
			fmt.Println("All dependencies are installed!")
		} else {
			fmt.Println("Some dependencies are missing. Please install them to use all features.")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(cutCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(doctorCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/cliphunter-tui/tui/styles"
)

// StatusBarState holds the current playback state for the status bar.
type StatusBarState struct {
	// Connected indicates if the mpv IPC socket is reachable
	Connected bool
	// Paused indicates if playback is paused
	Paused bool
	// TimePos is the current playback position in seconds
	TimePos float64
	// Duration is the total video duration in seconds
	Duration float64
	// Title is the title of the media currently loaded
	Title string
}

// StatusBar renders the status bar component.
// It displays the play/pause icon, playback position, total duration, and the
// current media title right-aligned.
func StatusBar(state StatusBarState, width int) string {
	var playIcon string
	switch {
	case !state.Connected:
		playIcon = "○"
	case state.Paused:
		playIcon = "⏸"
	default:
		playIcon = "▶"
	}

	timeStr := formatTime(state.TimePos)
	durationStr := formatTime(state.Duration)

	leftContent := fmt.Sprintf(" %s %s / %s", playIcon, timeStr, durationStr)

	title := state.Title
	if title == "" {
		title = "no media"
	}
	rightContent := truncateStr(title, width/2) + " "

	// Calculate padding between left and right content
	leftWidth := lipgloss.Width(leftContent)
	rightWidth := lipgloss.Width(rightContent)
	padding := width - leftWidth - rightWidth
	if padding < 0 {
		padding = 0
	}

	middle := ""
	for i := 0; i < padding; i++ {
		middle += " "
	}

	content := leftContent + middle + rightContent

	statusBarStyle := lipgloss.NewStyle().
		Background(styles.Slate900).
		Foreground(styles.Slate100).
		Bold(true).
		Width(width)

	return statusBarStyle.Render(content)
}

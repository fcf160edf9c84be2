package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/user/cliphunter-tui/tui/styles"
)

// NoticeState holds a transient result message shown at the bottom of the screen.
type NoticeState struct {
	// Text is the message to display
	Text string
	// IsError indicates if the message is an error
	IsError bool
}

// Set stores a notice message.
func (n *NoticeState) Set(text string, isError bool) {
	n.Text = text
	n.IsError = isError
}

// Clear removes the notice message.
func (n *NoticeState) Clear() {
	n.Text = ""
	n.IsError = false
}

// Notice renders the notice line. Returns an empty padded line when no
// message is set so the layout height stays stable.
func Notice(state NoticeState, width int) string {
	lineStyle := lipgloss.NewStyle().Width(width)

	if state.Text == "" {
		return lineStyle.Render("")
	}

	var textStyle lipgloss.Style
	if state.IsError {
		textStyle = lipgloss.NewStyle().Foreground(styles.Red).Bold(true)
	} else {
		textStyle = lipgloss.NewStyle().Foreground(styles.Green)
	}

	return lineStyle.Render(" " + textStyle.Render(state.Text))
}

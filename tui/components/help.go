package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/cliphunter-tui/tui/styles"
)

// HelpOverlay renders the help overlay showing all keybindings.
// The overlay is styled with the palette colors and grouped by function.
func HelpOverlay(width, height int) string {
	// Define keybinding groups
	groups := []struct {
		title    string
		bindings []struct {
			key  string
			desc string
		}
	}{
		{
			title: "Library",
			bindings: []struct {
				key  string
				desc string
			}{
				{"J / ↓", "Select next clip"},
				{"K / ↑", "Select previous clip"},
				{"Enter", "Open selected clip for trimming"},
				{"A", "Cut a new clip from a URL"},
				{"D", "Delete selected clip"},
				{"/", "Filter clips by title"},
			},
		},
		{
			title: "Trimming",
			bindings: []struct {
				key  string
				desc string
			}{
				{"H / L", "Nudge start back / forward 1s"},
				{"Shift+H / Shift+L", "Nudge end back / forward 1s"},
				{"S", "Set start to playback position"},
				{"E", "Set end to playback position"},
				{"Space", "Toggle play/pause"},
				{"P", "Preview the selection"},
				{"Enter", "Cut the clip"},
				{"Esc", "Back to library"},
			},
		},
		{
			title: "General",
			bindings: []struct {
				key  string
				desc string
			}{
				{"?", "Show/hide this help"},
				{"q", "Quit application"},
			},
		},
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Sky).
		Bold(true).
		Padding(0, 1)

	groupHeaderStyle := lipgloss.NewStyle().
		Foreground(styles.Blue).
		Bold(true).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Violet).
		Bold(true).
		Width(19)

	descStyle := lipgloss.NewStyle().
		Foreground(styles.Slate100)

	var lines []string

	lines = append(lines, titleStyle.Render("Keybindings"))
	lines = append(lines, "")

	for _, group := range groups {
		lines = append(lines, groupHeaderStyle.Render(group.title))
		for _, binding := range group.bindings {
			line := "  " + keyStyle.Render(binding.key) + descStyle.Render(binding.desc)
			lines = append(lines, line)
		}
	}

	lines = append(lines, "")
	footerStyle := lipgloss.NewStyle().
		Foreground(styles.Slate400).
		Italic(true)
	lines = append(lines, footerStyle.Render("Press any key to close"))

	content := strings.Join(lines, "\n")

	// Calculate content dimensions
	contentLines := strings.Split(content, "\n")
	contentHeight := len(contentLines)
	contentWidth := 0
	for _, line := range contentLines {
		w := lipgloss.Width(line)
		if w > contentWidth {
			contentWidth = w
		}
	}

	paddedWidth := contentWidth + 4
	paddedHeight := contentHeight + 2

	// Center the overlay
	marginLeft := (width - paddedWidth) / 2
	if marginLeft < 0 {
		marginLeft = 0
	}
	marginTop := (height - paddedHeight) / 2
	if marginTop < 0 {
		marginTop = 0
	}

	panelStyle := lipgloss.NewStyle().
		Background(styles.Slate900).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Blue).
		Padding(1, 2)

	panel := panelStyle.Render(content)

	positionedStyle := lipgloss.NewStyle().
		MarginLeft(marginLeft).
		MarginTop(marginTop)

	return positionedStyle.Render(panel)
}

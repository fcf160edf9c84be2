package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/user/cliphunter-tui/tui/styles"
)

// Control represents a single control with its display info.
type Control struct {
	Name     string
	Shortcut string
}

// LibraryControls returns the controls shown below the library view.
func LibraryControls() []Control {
	return []Control{
		{Name: "Trim", Shortcut: "Enter"},
		{Name: "New", Shortcut: "A"},
		{Name: "Delete", Shortcut: "D"},
		{Name: "Filter", Shortcut: "/"},
		{Name: "Help", Shortcut: "?"},
		{Name: "Quit", Shortcut: "Q"},
	}
}

// TrimControls returns the controls shown below the trim view.
func TrimControls() []Control {
	return []Control{
		{Name: "Start -/+", Shortcut: "H / L"},
		{Name: "End -/+", Shortcut: "Shift+H / L"},
		{Name: "Preview", Shortcut: "P"},
		{Name: "Cut", Shortcut: "Enter"},
		{Name: "Back", Shortcut: "Esc"},
	}
}

// ControlsDisplay renders the controls as a centered horizontal bar.
// Each control is shown in Name [Shortcut] format.
func ControlsDisplay(controls []Control, width int) string {
	shortcutStyle := lipgloss.NewStyle().
		Foreground(styles.Sky).
		Bold(true)

	nameStyle := lipgloss.NewStyle().
		Foreground(styles.Slate100)

	var controlStrs []string
	for _, ctrl := range controls {
		controlStrs = append(controlStrs, nameStyle.Render(ctrl.Name)+" "+shortcutStyle.Render("["+ctrl.Shortcut+"]"))
	}

	allControls := strings.Join(controlStrs, "   ")
	if lipgloss.Width(allControls) > width {
		allControls = ansi.Truncate(allControls, width, "")
	}

	controlsWidth := lipgloss.Width(allControls)
	padding := (width - controlsWidth) / 2
	if padding < 0 {
		padding = 0
	}

	paddingStr := strings.Repeat(" ", padding)

	containerStyle := lipgloss.NewStyle().
		Background(styles.Slate900).
		Width(width)

	return containerStyle.Render(paddingStr + allControls)
}

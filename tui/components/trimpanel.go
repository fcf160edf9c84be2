package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/cliphunter-tui/tui/styles"
)

// TrimPanelState holds the state for the trim panel component.
type TrimPanelState struct {
	// Start is the selected cut start in seconds
	Start float64
	// End is the selected cut end in seconds
	End float64
	// Duration is the total source duration in seconds (0 until known)
	Duration float64
	// TimePos is the current playback position in seconds
	TimePos float64
	// Previewing indicates if a preview pass is playing
	Previewing bool
	// Submitting indicates if a cut request is in flight
	Submitting bool
}

// TrimPanel renders the trim interval as a bar with start and end handles,
// the playback cursor, and a readout of both bounds and the cut length.
func TrimPanel(state TrimPanelState, width int) string {
	if width < 30 {
		return ""
	}

	innerWidth := width - 2

	startStyle := lipgloss.NewStyle().Foreground(styles.Blue).Bold(true)
	endStyle := lipgloss.NewStyle().Foreground(styles.Violet).Bold(true)
	insideStyle := lipgloss.NewStyle().Foreground(styles.Sky)
	outsideStyle := lipgloss.NewStyle().Foreground(styles.Slate700)
	cursorStyle := lipgloss.NewStyle().Foreground(styles.Amber).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(styles.Slate100)
	dimStyle := lipgloss.NewStyle().Foreground(styles.Slate400)

	barWidth := innerWidth - 2
	if barWidth < 10 {
		barWidth = 10
	}

	// Map a timestamp to a bar cell
	cell := func(t float64) int {
		if state.Duration <= 0 {
			return 0
		}
		pos := int(math.Round(float64(barWidth-1) * t / state.Duration))
		if pos < 0 {
			pos = 0
		}
		if pos > barWidth-1 {
			pos = barWidth - 1
		}
		return pos
	}

	startPos := cell(state.Start)
	endPos := cell(state.End)
	cursorPos := cell(state.TimePos)

	var barBuilder strings.Builder
	for i := 0; i < barWidth; i++ {
		switch {
		case i == startPos:
			barBuilder.WriteString(startStyle.Render("▐"))
		case i == endPos:
			barBuilder.WriteString(endStyle.Render("▌"))
		case i > startPos && i < endPos:
			barBuilder.WriteString(insideStyle.Render("━"))
		default:
			barBuilder.WriteString(outsideStyle.Render("─"))
		}
	}
	barLine := " " + barBuilder.String()

	// Playback cursor row below the bar
	var cursorBuilder strings.Builder
	cursorBuilder.WriteString(" ")
	for i := 0; i < barWidth; i++ {
		if i == cursorPos && state.Duration > 0 {
			cursorBuilder.WriteString(cursorStyle.Render("▲"))
		} else {
			cursorBuilder.WriteString(" ")
		}
	}

	// Bounds readout
	length := state.End - state.Start
	readout := " " +
		startStyle.Render("Start "+formatTime(state.Start)) +
		dimStyle.Render("  ·  ") +
		endStyle.Render("End "+formatTime(state.End)) +
		dimStyle.Render("  ·  ") +
		textStyle.Render(fmt.Sprintf("Length %.1fs", length))

	var statusLine string
	switch {
	case state.Submitting:
		statusLine = " " + lipgloss.NewStyle().Foreground(styles.Amber).Render("Cutting clip, please wait...")
	case state.Previewing:
		statusLine = " " + lipgloss.NewStyle().Foreground(styles.Green).Render("Previewing selection")
	case state.Duration <= 0:
		statusLine = " " + dimStyle.Render("Waiting for media duration...")
	default:
		statusLine = " " + dimStyle.Render(fmt.Sprintf("Source length %s", formatTime(state.Duration)))
	}

	lines := []string{barLine, cursorBuilder.String(), "", readout, statusLine}
	return RenderInfoBox("Trim", lines, width, true)
}

package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/cliphunter-tui/tui/styles"
)

// ClipItem represents a saved clip in the library list.
type ClipItem struct {
	// ID is the database ID of the clip
	ID int64
	// Title is the clip title
	Title string
	// ShowTitle is the title of the show the clip was cut from
	ShowTitle string
	// Emotion is the emotion tag
	Emotion string
	// Category is the category tag
	Category string
	// Duration is the clip length in seconds
	Duration float64
	// VideoURL is the public URL of the cut clip
	VideoURL string
}

// ClipListState holds the state for the clip library list component.
type ClipListState struct {
	// Items is the list of clips
	Items []ClipItem
	// SelectedIndex is the currently selected clip index
	SelectedIndex int
	// ScrollOffset is the scroll position
	ScrollOffset int
	// Filter is the active title filter, shown in the box header
	Filter string
}

// listRows is the fixed number of rows in the table (excluding header).
const listRows = 12

// ClipList renders the clip library as a fixed-height table inside an info box.
func ClipList(state ClipListState, width int, focused bool) string {
	var lines []string

	headerStyle := lipgloss.NewStyle().
		Foreground(styles.Slate400).
		Bold(true).
		Underline(true)

	// Column widths (ID: 5, Duration: 7, Emotion: 10, Show: 18, Title: rest)
	idWidth := 5
	durWidth := 7
	emoWidth := 10
	showWidth := 18
	titleWidth := width - idWidth - durWidth - emoWidth - showWidth - 10
	if titleWidth < 10 {
		titleWidth = 10
	}

	header := fmt.Sprintf(" %-*s %-*s %-*s %-*s %-*s",
		idWidth, "ID",
		durWidth, "Length",
		emoWidth, "Emotion",
		showWidth, "Show",
		titleWidth, "Title")
	lines = append(lines, headerStyle.Render(header))

	boxTitle := "Library"
	if state.Filter != "" {
		boxTitle = fmt.Sprintf("Library (filter: %s)", state.Filter)
	}

	if len(state.Items) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(styles.Slate700).
			Italic(true)
		empty := "No clips yet. Press 'a' to cut a new one."
		if state.Filter != "" {
			empty = "No clips match the filter."
		}
		lines = append(lines, emptyStyle.Render(" "+empty))
		for i := 1; i < listRows; i++ {
			lines = append(lines, "")
		}
		return RenderInfoBox(boxTitle, lines, width, focused)
	}

	// Keep the selected clip visible within the fixed rows
	if state.SelectedIndex < state.ScrollOffset {
		state.ScrollOffset = state.SelectedIndex
	} else if state.SelectedIndex >= state.ScrollOffset+listRows {
		state.ScrollOffset = state.SelectedIndex - listRows + 1
	}
	if state.ScrollOffset < 0 {
		state.ScrollOffset = 0
	}
	maxOffset := len(state.Items) - listRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if state.ScrollOffset > maxOffset {
		state.ScrollOffset = maxOffset
	}

	for row := 0; row < listRows; row++ {
		itemIndex := state.ScrollOffset + row
		if itemIndex < len(state.Items) {
			item := state.Items[itemIndex]
			isSelected := itemIndex == state.SelectedIndex
			lines = append(lines, renderClipRow(item, isSelected, idWidth, durWidth, emoWidth, showWidth, titleWidth, width-2))
		} else {
			lines = append(lines, "")
		}
	}

	return RenderInfoBox(boxTitle, lines, width, focused)
}

// renderClipRow renders a single clip table row.
func renderClipRow(item ClipItem, selected bool, idWidth, durWidth, emoWidth, showWidth, titleWidth, fullWidth int) string {
	idStr := fmt.Sprintf("%d", item.ID)
	durStr := fmt.Sprintf("%.1fs", item.Duration)

	content := fmt.Sprintf(" %-*s %-*s %-*s %-*s %-*s",
		idWidth, truncateStr(idStr, idWidth),
		durWidth, truncateStr(durStr, durWidth),
		emoWidth, truncateStr(item.Emotion, emoWidth),
		showWidth, truncateStr(item.ShowTitle, showWidth),
		titleWidth, truncateStr(item.Title, titleWidth))

	var lineStyle lipgloss.Style
	if selected {
		lineStyle = lipgloss.NewStyle().
			Background(styles.Blue).
			Foreground(styles.Slate100).
			Bold(true).
			Width(fullWidth)
	} else {
		lineStyle = lipgloss.NewStyle().
			Foreground(styles.Slate100).
			Width(fullWidth)
	}

	return lineStyle.Render(content)
}

// MoveUp moves the selection up in the list.
func (s *ClipListState) MoveUp() {
	if s.SelectedIndex > 0 {
		s.SelectedIndex--
	}
}

// MoveDown moves the selection down in the list.
func (s *ClipListState) MoveDown() {
	if s.SelectedIndex < len(s.Items)-1 {
		s.SelectedIndex++
	}
}

// GetSelectedItem returns the currently selected clip, or nil if the list is empty.
func (s *ClipListState) GetSelectedItem() *ClipItem {
	if len(s.Items) == 0 || s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Items) {
		return nil
	}
	return &s.Items[s.SelectedIndex]
}

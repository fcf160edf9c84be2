package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/cliphunter-tui/tui/styles"
)

// SearchInputState holds the state for the title filter input component.
type SearchInputState struct {
	// Input is the current filter input buffer
	Input string
	// CursorPos is the cursor position within the input
	CursorPos int
	// Matches is the number of clips matching the filter
	Matches int
}

// SearchInput renders the filter input component inside an info box.
func SearchInput(state SearchInputState, width int, focused bool) string {
	promptStyle := lipgloss.NewStyle().
		Foreground(styles.Sky).
		Bold(true)

	inputStyle := lipgloss.NewStyle().
		Foreground(styles.Slate100)

	// Build input display with cursor
	input := state.Input
	var displayInput string
	if focused {
		cursor := "_"
		if state.CursorPos >= len(input) {
			displayInput = input + cursor
		} else {
			displayInput = input[:state.CursorPos] + cursor + input[state.CursorPos:]
		}
	} else {
		displayInput = input
	}

	content := " " + promptStyle.Render("/") + inputStyle.Render(displayInput)

	// Match count right-aligned
	indicator := fmt.Sprintf("[%d]", state.Matches)
	indicatorStyled := lipgloss.NewStyle().Foreground(styles.Slate400).Render(indicator)

	innerW := width - 2
	contentW := lipgloss.Width(content)
	indicatorW := lipgloss.Width(indicatorStyled)
	pad := innerW - contentW - indicatorW - 1
	if pad < 1 {
		pad = 1
	}
	content = content + strings.Repeat(" ", pad) + indicatorStyled

	return RenderInfoBox("Filter", []string{content}, width, focused)
}

// InsertChar inserts a character at the current cursor position.
func (s *SearchInputState) InsertChar(c rune) {
	if s.CursorPos >= len(s.Input) {
		s.Input += string(c)
	} else {
		s.Input = s.Input[:s.CursorPos] + string(c) + s.Input[s.CursorPos:]
	}
	s.CursorPos++
}

// Backspace deletes the character before the cursor.
func (s *SearchInputState) Backspace() {
	if s.CursorPos > 0 && len(s.Input) > 0 {
		if s.CursorPos >= len(s.Input) {
			s.Input = s.Input[:len(s.Input)-1]
		} else {
			s.Input = s.Input[:s.CursorPos-1] + s.Input[s.CursorPos:]
		}
		s.CursorPos--
	}
}

// MoveCursorLeft moves the cursor left.
func (s *SearchInputState) MoveCursorLeft() {
	if s.CursorPos > 0 {
		s.CursorPos--
	}
}

// MoveCursorRight moves the cursor right.
func (s *SearchInputState) MoveCursorRight() {
	if s.CursorPos < len(s.Input) {
		s.CursorPos++
	}
}

// Clear resets the filter input to empty state.
func (s *SearchInputState) Clear() {
	s.Input = ""
	s.CursorPos = 0
	s.Matches = 0
}

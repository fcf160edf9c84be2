package forms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/cliphunter-tui/tui/styles"
)

// Theme returns a custom huh theme that matches the TUI color palette.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused field styles
	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Blue).
		PaddingLeft(1)

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Sky).
		Bold(true)

	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Slate400)

	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Red).
		Bold(true)

	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Red)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		SetString("▸ ").
		Foreground(styles.Sky)

	t.Focused.Option = lipgloss.NewStyle().
		Foreground(styles.Slate100)

	t.Focused.NextIndicator = lipgloss.NewStyle().
		Foreground(styles.Slate400)

	t.Focused.PrevIndicator = lipgloss.NewStyle().
		Foreground(styles.Slate400)

	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Sky)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Sky)

	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Slate700)

	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Sky)

	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Slate100)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Background(styles.Blue).
		Foreground(styles.Slate100).
		Bold(true).
		Padding(0, 1)

	t.Focused.BlurredButton = lipgloss.NewStyle().
		Background(styles.Slate700).
		Foreground(styles.Slate400).
		Padding(0, 1)

	t.Focused.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Slate700).
		Padding(0, 1)

	t.Focused.NoteTitle = lipgloss.NewStyle().
		Foreground(styles.Sky).
		Bold(true)

	t.Focused.Next = t.Focused.FocusedButton

	// Blurred field styles
	t.Blurred.Base = t.Blurred.Base.
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true).
		PaddingLeft(1)

	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Slate400)

	t.Blurred.Description = lipgloss.NewStyle().
		Foreground(styles.Slate700)

	t.Blurred.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Red)

	t.Blurred.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Red)

	t.Blurred.SelectSelector = lipgloss.NewStyle().
		SetString("  ")

	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(styles.Slate400)

	t.Blurred.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Slate400)

	t.Blurred.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Slate700)

	t.Blurred.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Slate700)

	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Slate700)

	t.Blurred.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Slate400)

	t.Blurred.FocusedButton = lipgloss.NewStyle().
		Background(styles.Slate700).
		Foreground(styles.Slate400).
		Padding(0, 1)

	t.Blurred.BlurredButton = lipgloss.NewStyle().
		Background(styles.Slate900).
		Foreground(styles.Slate700).
		Padding(0, 1)

	t.Blurred.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Slate900).
		Padding(0, 1)

	t.Blurred.NoteTitle = lipgloss.NewStyle().
		Foreground(styles.Slate400)

	t.Blurred.Next = t.Blurred.FocusedButton

	return t
}

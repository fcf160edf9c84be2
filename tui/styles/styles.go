// Package styles provides Lipgloss styles for the TUI using a slate/blue
// palette matching the ClipHunter web theme.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - dark slate with blue and violet accents
const (
	// Slate950 is the main background colour
	Slate950 = lipgloss.Color("#020617")
	// Slate900 is a secondary dark background
	Slate900 = lipgloss.Color("#0F172A")
	// Slate700 is the border/dim accent colour
	Slate700 = lipgloss.Color("#334155")
	// Slate400 is a secondary text colour
	Slate400 = lipgloss.Color("#94A3B8")
	// Slate100 is the primary text colour
	Slate100 = lipgloss.Color("#F1F5F9")
	// Blue is the primary accent, used for the start bound and actions
	Blue = lipgloss.Color("#3B82F6")
	// Violet is the secondary accent, used for the end bound
	Violet = lipgloss.Color("#A855F7")
	// Sky is an accent colour for information and interactive elements
	Sky = lipgloss.Color("#38BDF8")
	// Amber is a warm accent for sub-headers and pending states
	Amber = lipgloss.Color("#F59E0B")
	// Red is used for warnings and errors
	Red = lipgloss.Color("#EF4444")
	// Green is used for success messages
	Green = lipgloss.Color("#22C55E")
)

// Pre-defined styles using the color palette

// Background is the main background style for the entire TUI
var Background = lipgloss.NewStyle().
	Background(Slate950)

// Panel is the style for content panels
var Panel = lipgloss.NewStyle().
	Background(Slate900).
	Padding(1, 2)

// Border is the style for bordered panels
var Border = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Slate700)

// Highlight is the style for selected/highlighted items
var Highlight = lipgloss.NewStyle().
	Background(Blue).
	Foreground(Slate100).
	Bold(true)

// PrimaryText is the style for primary text content
var PrimaryText = lipgloss.NewStyle().
	Foreground(Slate100)

// SecondaryText is the style for less prominent text
var SecondaryText = lipgloss.NewStyle().
	Foreground(Slate400)

// Warning is the style for warning messages
var Warning = lipgloss.NewStyle().
	Foreground(Red).
	Bold(true)

// Success is the style for success messages
var Success = lipgloss.NewStyle().
	Foreground(Green).
	Bold(true)

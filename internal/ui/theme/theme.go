package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: rose accents on near-black glass.
var (
	Primary   = lipgloss.Color("#E11D48") // Rose
	Secondary = lipgloss.Color("#FB7185") // Light rose
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#34D399") // Emerald
	Error     = lipgloss.Color("#F43F5E") // Rose red
	Text      = lipgloss.Color("#F5F5F5") // Neutral white
	TextDim   = lipgloss.Color("#A3A3A3") // Neutral
	BgDark    = lipgloss.Color("#0A0A0A") // Near black
	BgCard    = lipgloss.Color("#171717") // Glass card
	Border    = lipgloss.Color("#262626") // Hairline
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Label is the small uppercase tag style ("IN DEVELOPMENT", "DONE").
	Label = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	FocusedCard = Card.
			BorderForeground(Primary)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(TextDim)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Done = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	InDevelopment = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)

// CalloutColor returns the accent color of a callout variant name
// ("info", "warning" or "tip").
func CalloutColor(variant string) color.Color {
	switch variant {
	case "warning":
		return Accent
	case "tip":
		return Success
	default:
		return Primary
	}
}

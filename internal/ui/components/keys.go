package components

import "charm.land/bubbles/v2/key"

// Keys shared by list-style components.
var (
	KeyUp = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	)
	KeyDown = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	)
	KeySelect = key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("enter", "select"),
	)
	KeyRetake = key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "retake"),
	)
)

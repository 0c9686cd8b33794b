package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/undergrad/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label string
	// Detail is rendered dimmed after the label.
	Detail string
	// Badge is a short right-hand tag such as "DONE".
	Badge      string
	BadgeStyle lipgloss.Style
	Action     func() tea.Cmd
	Disabled   bool
	// Header items are section titles. They are never selectable.
	Header bool
}

func (it MenuItem) selectable() bool {
	return !it.Disabled && !it.Header
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first selectable item selected.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if item.selectable() {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Current returns the selected item.
func (m Menu) Current() (MenuItem, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return MenuItem{}, false
	}
	return m.Items[m.Selected], true
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, KeyUp):
		for i := m.Selected - 1; i >= 0; i-- {
			if m.Items[i].selectable() {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, KeyDown):
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if m.Items[i].selectable() {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, KeySelect):
		if item, ok := m.Current(); ok && item.selectable() && item.Action != nil {
			return m, item.Action()
		}
	}

	return m, nil
}

// View renders the menu. When height is positive and the menu is taller,
// only a window of items around the selection is shown.
func (m Menu) View(height int) string {
	start, end := 0, len(m.Items)
	if height > 0 && len(m.Items) > height {
		start = m.Selected - height/2
		start = max(0, min(start, len(m.Items)-height))
		end = start + height
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderItem(i))
	}
	return strings.Join(lines, "\n")
}

func (m Menu) renderItem(i int) string {
	item := m.Items[i]

	if item.Header {
		line := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Bold(true).
			Render("  " + strings.ToUpper(item.Label))
		if item.Badge != "" {
			line += "  " + item.BadgeStyle.Render(item.Badge)
		}
		return line
	}

	var line string
	switch {
	case i == m.Selected:
		line = theme.Selected.Render("  ▸ " + item.Label)
	case item.Disabled:
		line = theme.Disabled.Render("    " + item.Label)
	default:
		line = theme.Unselected.Render("    " + item.Label)
	}

	if item.Detail != "" {
		line += theme.Hint.Render("  " + item.Detail)
	}
	if item.Badge != "" {
		line += "  " + item.BadgeStyle.Render(item.Badge)
	}
	return line
}

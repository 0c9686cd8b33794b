package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/undergrad/internal/catalog"
	"github.com/abhisek/undergrad/internal/router"
	"github.com/abhisek/undergrad/internal/screen"
	"github.com/abhisek/undergrad/internal/ui/components"
	"github.com/abhisek/undergrad/internal/ui/layout"
	"github.com/abhisek/undergrad/internal/ui/theme"
)

var categoryTitles = map[string]string{
	catalog.CategoryElementary: "Elementary School",
	catalog.CategoryMiddle:     "Middle School",
	catalog.CategoryHigh:       "High School",
	catalog.CategoryElectives:  "Electives",
}

// HomeScreen is the grade picker.
type HomeScreen struct {
	env  *screen.Env
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screen.Env) *HomeScreen {
	var items []components.MenuItem
	for _, category := range catalog.Categories() {
		items = append(items, components.MenuItem{Label: categoryTitles[category], Header: true})

		if category == catalog.CategoryElectives {
			items = append(items, components.MenuItem{
				Label:  "Academic Electives",
				Action: selectGrade(category, catalog.SubjectElectives),
			})
			continue
		}
		for _, grade := range catalog.Grades(category) {
			items = append(items, components.MenuItem{
				Label:  gradeLabel(grade),
				Action: selectGrade(category, grade),
			})
		}
	}

	items = append(items,
		components.MenuItem{Label: "More", Header: true},
		components.MenuItem{Label: "Content Status", Action: func() tea.Cmd {
			return router.Navigate(router.ViewStatusMsg{})
		}},
		components.MenuItem{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	return &HomeScreen{
		env:  env,
		menu: components.NewMenu(items),
	}
}

func selectGrade(category, grade string) func() tea.Cmd {
	return func() tea.Cmd {
		return router.Navigate(router.SelectGradeMsg{Category: category, Grade: grade})
	}
}

func gradeLabel(grade string) string {
	if grade == "K" {
		return "Kindergarten"
	}
	return "Grade " + grade
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "?" {
		return h, router.Navigate(router.ViewStatusMsg{})
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := layout.ColumnWidth(width)

	var sections []string
	sections = append(sections, layout.RenderHeading(
		"",
		"K-12 Educational Mastery",
		"Structured, 6-unit courses across all core subjects and grade levels.",
		width,
	))
	sections = append(sections, layout.Centered(h.renderStats(cw), width))

	used := lipgloss.Height(strings.Join(sections, "\n\n")) + 2
	sections = append(sections, layout.Centered(h.menu.View(height-used), width))

	return strings.Join(sections, "\n\n")
}

// renderStats summarizes overall progress across the catalog.
func (h *HomeScreen) renderStats(cw int) string {
	p := h.env.Progress()

	total := 0
	for _, c := range h.env.Catalog.Courses() {
		total += c.LessonCount()
	}

	done := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	quiz := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	stats := fmt.Sprintf("%s  %s",
		done.Render(fmt.Sprintf("✓ %d / %d LESSONS", len(p.CompletedLessons), total)),
		quiz.Render(fmt.Sprintf("★ %d QUIZZES SCORED", len(p.QuizScores))),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(min(cw, 60)).
		Align(lipgloss.Center).
		Render(stats)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "?", Description: "Content Status"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

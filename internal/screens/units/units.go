// Package units shows a course's units and lessons with completion badges.
package units

import (
	"fmt"
	"slices"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/undergrad/internal/catalog"
	"github.com/abhisek/undergrad/internal/router"
	"github.com/abhisek/undergrad/internal/screen"
	"github.com/abhisek/undergrad/internal/ui/components"
	"github.com/abhisek/undergrad/internal/ui/layout"
	"github.com/abhisek/undergrad/internal/ui/theme"
)

// UnitsScreen is the unit list of a course.
type UnitsScreen struct {
	env    *screen.Env
	course catalog.Course
	menu   components.Menu
	// lessonIDs[i] is the lesson behind menu item i, or "" for a unit header.
	lessonIDs []string
}

var _ screen.Screen = (*UnitsScreen)(nil)
var _ screen.KeyHintProvider = (*UnitsScreen)(nil)

// New creates the unit list for course.
func New(env *screen.Env, course catalog.Course) *UnitsScreen {
	var (
		items []components.MenuItem
		ids   []string
	)
	for _, u := range course.Units {
		header := components.MenuItem{
			Label:      u.Title,
			Header:     true,
			Badge:      fmt.Sprintf("%d LESSONS", len(u.Lessons)),
			BadgeStyle: theme.Hint,
		}
		if catalog.IsTopicIncomplete(u.Title) {
			header.Badge = "? IN DEVELOPMENT"
			header.BadgeStyle = theme.InDevelopment
		}
		items = append(items, header)
		ids = append(ids, "")

		for _, l := range u.Lessons {
			items = append(items, components.MenuItem{
				Label:  l.Title,
				Detail: l.Description,
				Action: func() tea.Cmd {
					return router.Navigate(router.SelectLessonMsg{LessonID: l.ID})
				},
			})
			ids = append(ids, l.ID)
		}
	}

	return &UnitsScreen{
		env:       env,
		course:    course,
		menu:      components.NewMenu(items),
		lessonIDs: ids,
	}
}

func (s *UnitsScreen) Init() tea.Cmd {
	return nil
}

func (s *UnitsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "?" {
		return s, router.Navigate(router.ViewStatusMsg{})
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// withBadges returns a copy of the menu with completion badges applied
// from the current progress.
func (s *UnitsScreen) withBadges() components.Menu {
	m := s.menu
	m.Items = slices.Clone(m.Items)
	for i, id := range s.lessonIDs {
		if id != "" && s.env.IsCompleted(id) {
			m.Items[i].Badge = "✓ DONE"
			m.Items[i].BadgeStyle = theme.Done
		}
	}
	return m
}

func (s *UnitsScreen) View(width, height int) string {
	tag := "Grade " + s.course.Grade
	if s.course.Grade == catalog.SubjectElectives {
		tag = "Elective"
	}
	heading := layout.RenderHeading(tag, s.course.Title, s.course.Description, width)

	cw := min(layout.ColumnWidth(width), 72)
	bar := components.NewProgressBar("Progress", s.env.CompletedIn(s.course), s.course.LessonCount(), cw).View()

	top := heading + "\n\n" + layout.Centered(bar, width)
	menuHeight := height - lipgloss.Height(top) - 2

	return top + "\n\n" + layout.Centered(s.withBadges().View(menuHeight), width)
}

func (s *UnitsScreen) Title() string {
	return fmt.Sprintf("%s • Units", s.course.Title)
}

func (s *UnitsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open Lesson"},
		{Key: "?", Description: "Content Status"},
		{Key: "Esc", Description: "Back"},
	}
}

// Package courses lists the courses for a grade and subject.
package courses

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/undergrad/internal/catalog"
	"github.com/abhisek/undergrad/internal/nav"
	"github.com/abhisek/undergrad/internal/router"
	"github.com/abhisek/undergrad/internal/screen"
	"github.com/abhisek/undergrad/internal/ui/components"
	"github.com/abhisek/undergrad/internal/ui/layout"
	"github.com/abhisek/undergrad/internal/ui/theme"
)

// CoursesScreen shows the matching courses with the selected one's
// description and progress.
type CoursesScreen struct {
	env     *screen.Env
	state   nav.CourseList
	courses []catalog.Course
	menu    components.Menu
}

var _ screen.Screen = (*CoursesScreen)(nil)

// New creates the screen for state.
func New(env *screen.Env, state nav.CourseList) *CoursesScreen {
	courses := env.Catalog.Filter(state.Grade, state.Subject)

	items := make([]components.MenuItem, 0, len(courses))
	for _, c := range courses {
		items = append(items, components.MenuItem{
			Label: c.Title,
			Action: func() tea.Cmd {
				return router.Navigate(router.SelectCourseMsg{Course: c})
			},
		})
	}

	return &CoursesScreen{
		env:     env,
		state:   state,
		courses: courses,
		menu:    components.NewMenu(items),
	}
}

func (s *CoursesScreen) Init() tea.Cmd {
	return nil
}

func (s *CoursesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *CoursesScreen) View(width, height int) string {
	heading := layout.RenderHeading("", s.Title(), "", width)

	if len(s.courses) == 0 {
		empty := theme.Hint.Render("No courses are available for this grade and subject yet.")
		return heading + "\n\n" + layout.Centered(empty, width)
	}

	sections := []string{heading, layout.Centered(s.menu.View(0), width)}

	if s.menu.Selected < len(s.courses) {
		c := s.courses[s.menu.Selected]
		cw := min(layout.ColumnWidth(width), 72)
		done := s.env.CompletedIn(c)
		detail := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw-6).Render(c.Description),
			"",
			components.NewProgressBar("", done, c.LessonCount(), cw-6).View(),
			"",
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Enter Curriculum ›"),
		)
		sections = append(sections, layout.Centered(theme.Card.Width(cw).Render(detail), width))
	}

	return strings.Join(sections, "\n\n")
}

func (s *CoursesScreen) Title() string {
	return fmt.Sprintf("Grade %s • %s", s.state.Grade, s.state.Subject)
}

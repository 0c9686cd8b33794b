// Package subjects lists the subjects offered for a grade.
package subjects

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/undergrad/internal/catalog"
	"github.com/abhisek/undergrad/internal/nav"
	"github.com/abhisek/undergrad/internal/router"
	"github.com/abhisek/undergrad/internal/screen"
	"github.com/abhisek/undergrad/internal/ui/components"
	"github.com/abhisek/undergrad/internal/ui/layout"
)

// SubjectsScreen shows the subject menu of one grade.
type SubjectsScreen struct {
	grade string
	menu  components.Menu
}

var _ screen.Screen = (*SubjectsScreen)(nil)

// New creates the screen for state.
func New(env *screen.Env, state nav.SubjectSelect) *SubjectsScreen {
	var items []components.MenuItem
	for _, subject := range catalog.Subjects(state.Category) {
		n := len(env.Catalog.Filter(state.Grade, subject))
		items = append(items, components.MenuItem{
			Label:    subject,
			Detail:   "Academic Track",
			Disabled: n == 0,
			Action: func() tea.Cmd {
				return router.Navigate(router.SelectSubjectMsg{Subject: subject})
			},
		})
	}
	return &SubjectsScreen{grade: state.Grade, menu: components.NewMenu(items)}
}

func (s *SubjectsScreen) Init() tea.Cmd {
	return nil
}

func (s *SubjectsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SubjectsScreen) View(width, height int) string {
	heading := layout.RenderHeading(gradeTag(s.grade), "Select Subject", "", width)
	return strings.Join([]string{
		heading,
		layout.Centered(s.menu.View(0), width),
	}, "\n\n")
}

func (s *SubjectsScreen) Title() string {
	return gradeTag(s.grade)
}

func gradeTag(grade string) string {
	if grade == catalog.SubjectElectives {
		return "Electives"
	}
	return fmt.Sprintf("Grade %s", grade)
}

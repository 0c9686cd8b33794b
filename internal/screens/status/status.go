// Package status shows the content roadmap: which units of each course are
// still in development.
package status

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/undergrad/internal/catalog"
	"github.com/abhisek/undergrad/internal/screen"
	"github.com/abhisek/undergrad/internal/ui/layout"
	"github.com/abhisek/undergrad/internal/ui/theme"
)

// StatusScreen lists every course with in-development units.
type StatusScreen struct {
	roadmap  []catalog.CourseStatus
	viewport viewport.Model
}

var _ screen.Screen = (*StatusScreen)(nil)
var _ screen.KeyHintProvider = (*StatusScreen)(nil)

// New creates the roadmap screen.
func New(env *screen.Env) *StatusScreen {
	return &StatusScreen{
		roadmap:  env.Catalog.Roadmap(),
		viewport: viewport.New(viewport.WithWidth(80), viewport.WithHeight(20)),
	}
}

func (s *StatusScreen) Init() tea.Cmd {
	return nil
}

func (s *StatusScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

func (s *StatusScreen) View(width, height int) string {
	heading := layout.RenderHeading("Modular Content Rollout", "Content Roadmap",
		"Units marked in development use template lessons until their material is authored.", width)

	body := theme.Done.Render("All units are complete.")
	if len(s.roadmap) > 0 {
		cw := min(layout.ColumnWidth(width), 72)
		cards := make([]string, 0, len(s.roadmap))
		for _, cs := range s.roadmap {
			cards = append(cards, renderCourse(cs, cw))
		}
		body = strings.Join(cards, "\n\n")
	}

	s.viewport.SetWidth(width)
	s.viewport.SetHeight(max(1, height-lipgloss.Height(heading)-2))
	s.viewport.SetContent(layout.Centered(body, width))

	return heading + "\n\n" + s.viewport.View()
}

func renderCourse(cs catalog.CourseStatus, width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(cs.Course.Title)
	count := theme.InDevelopment.Render(fmt.Sprintf("%d IN DEVELOPMENT", cs.IncompleteCount()))

	lines := []string{title + "  " + count, ""}
	for _, u := range cs.Units {
		mark := theme.Done.Render("COMPLETE")
		if u.Incomplete {
			mark = theme.InDevelopment.Render("IN DEVELOPMENT")
		}
		label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(max(10, width-24)).Render(u.Unit.Title)
		lines = append(lines, label+"  "+mark)
	}
	return theme.Card.Width(width).Render(strings.Join(lines, "\n"))
}

func (s *StatusScreen) Title() string {
	return "Content Status"
}

func (s *StatusScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

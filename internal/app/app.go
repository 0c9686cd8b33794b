// Package app wires the catalog, progress store and screens into the root
// Bubble Tea model.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/undergrad/internal/catalog"
	"github.com/abhisek/undergrad/internal/logger"
	"github.com/abhisek/undergrad/internal/nav"
	"github.com/abhisek/undergrad/internal/progress"
	"github.com/abhisek/undergrad/internal/router"
	"github.com/abhisek/undergrad/internal/screen"
	"github.com/abhisek/undergrad/internal/screens/courses"
	"github.com/abhisek/undergrad/internal/screens/home"
	"github.com/abhisek/undergrad/internal/screens/lesson"
	"github.com/abhisek/undergrad/internal/screens/status"
	"github.com/abhisek/undergrad/internal/screens/subjects"
	"github.com/abhisek/undergrad/internal/screens/units"
	"github.com/abhisek/undergrad/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Catalog  *catalog.Catalog
	Progress *progress.Store
	Log      *logger.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *screen.Env
	router *router.Router
	width  int
	height int
}

// newAppModel creates the model, starting at the home screen.
func newAppModel(opts Options) AppModel {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Progress == nil {
		opts.Progress = progress.NewStore(progress.NewMemoryKV())
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}

	env := screen.NewEnv(context.Background(), opts.Catalog, opts.Progress, opts.Log)

	machine := nav.New()
	machine.OnTransition(func(from, to nav.State) {
		opts.Log.Debug("navigate", "from", from.Name(), "to", to.Name())
	})

	return AppModel{
		env:    env,
		router: router.New(machine, factory(env), opts.Log),
	}
}

// factory maps navigation states to their screens. nav.State is sealed, so
// anything not matched below is nav.Home.
func factory(env *screen.Env) router.Factory {
	return func(s nav.State) screen.Screen {
		switch s := s.(type) {
		case nav.SubjectSelect:
			return subjects.New(env, s)
		case nav.CourseList:
			return courses.New(env, s)
		case nav.LessonView:
			if s.Lesson == nil {
				return units.New(env, s.Course)
			}
			return lesson.New(env, s.Course, *s.Lesson)
		case nav.UnitStatus:
			return status.New(env)
		}
		return home.New(env)
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, router.Navigate(router.BackMsg{})
		}

	case screen.ProgressSavedMsg:
		m.env.Apply(msg)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the frame for the current window size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	done := len(m.env.Progress().CompletedLessons)
	header := layout.RenderHeader(title, fmt.Sprintf("✓ %d lessons", done), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(footer))
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

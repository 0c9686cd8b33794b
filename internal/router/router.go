// Package router applies navigation events to the nav state machine and
// keeps a stack of screens in step with the resulting state.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/undergrad/internal/catalog"
	"github.com/abhisek/undergrad/internal/logger"
	"github.com/abhisek/undergrad/internal/nav"
	"github.com/abhisek/undergrad/internal/screen"
)

// Navigation event messages. Screens emit them with Navigate.
type (
	SelectGradeMsg struct {
		Category string
		Grade    string
	}
	SelectSubjectMsg struct{ Subject string }
	SelectCourseMsg  struct{ Course catalog.Course }
	SelectLessonMsg  struct{ LessonID string }
	ViewStatusMsg    struct{}
	AdvanceMsg       struct{ Completed func(lessonID string) bool }
	BackMsg          struct{}
)

// Navigate wraps a navigation message in a command.
func Navigate(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Factory builds the screen for a state.
type Factory func(nav.State) screen.Screen

type entry struct {
	name   string
	screen screen.Screen
}

// Router manages a stack of screens mirroring the navigation state. The
// stack holds one screen per level of the state's depth, so Back reveals
// the screen underneath with its cursor intact.
type Router struct {
	machine *nav.Machine
	factory Factory
	log     *logger.Logger
	stack   []entry
}

// New creates a Router showing the machine's current state.
func New(machine *nav.Machine, factory Factory, log *logger.Logger) *Router {
	if log == nil {
		log = logger.Nop()
	}
	r := &Router{machine: machine, factory: factory, log: log}
	s := machine.State()
	r.stack = []entry{{name: s.Name(), screen: factory(s)}}
	return r
}

// Init runs the initial screen's Init.
func (r *Router) Init() tea.Cmd {
	return r.Active().Init()
}

// Machine returns the underlying state machine.
func (r *Router) Machine() *nav.Machine {
	return r.machine
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1].screen
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	var err error
	navigated := true

	switch msg := msg.(type) {
	case SelectGradeMsg:
		err = r.machine.SelectGrade(msg.Category, msg.Grade)
	case SelectSubjectMsg:
		err = r.machine.SelectSubject(msg.Subject)
	case SelectCourseMsg:
		err = r.machine.SelectCourse(msg.Course)
	case SelectLessonMsg:
		err = r.machine.SelectLesson(msg.LessonID)
	case ViewStatusMsg:
		err = r.machine.ViewStatus()
	case AdvanceMsg:
		err = r.machine.Advance(msg.Completed)
	case BackMsg:
		if _, home := r.machine.State().(nav.Home); home {
			return nil
		}
		r.machine.Back()
	default:
		navigated = false
	}

	if navigated {
		if err != nil {
			r.log.Warn("navigation rejected", "state", r.machine.State().Name(), "error", err)
			return nil
		}
		return r.sync()
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1].screen = updated
	return cmd
}

// sync reshapes the stack to the machine's state: deeper states push,
// shallower states pop back to the existing screen, and same-depth moves
// (switching lessons) replace the top.
func (r *Router) sync() tea.Cmd {
	s := r.machine.State()
	want := depth(s) + 1

	if want < len(r.stack) {
		r.stack = r.stack[:want]
		if top := r.stack[want-1]; top.name == s.Name() {
			return nil
		}
	}
	if want == len(r.stack) {
		r.stack = r.stack[:want-1]
	}

	next := r.factory(s)
	r.stack = append(r.stack, entry{name: s.Name(), screen: next})
	return next.Init()
}

// depth is the number of selections between Home and s.
func depth(s nav.State) int {
	switch s := s.(type) {
	case nav.SubjectSelect:
		return 1
	case nav.CourseList:
		return 2
	case nav.LessonView:
		if s.Lesson == nil {
			return 3
		}
		return 4
	case nav.UnitStatus:
		return depth(s.From) + 1
	default:
		return 0
	}
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}

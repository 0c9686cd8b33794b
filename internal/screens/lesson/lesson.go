// Package lesson renders a lesson's content blocks in a scrollable view with
// interactive quizzes and worked examples.
package lesson

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/undergrad/internal/catalog"
	"github.com/abhisek/undergrad/internal/markdown"
	"github.com/abhisek/undergrad/internal/router"
	"github.com/abhisek/undergrad/internal/screen"
	"github.com/abhisek/undergrad/internal/ui/components"
	"github.com/abhisek/undergrad/internal/ui/layout"
	"github.com/abhisek/undergrad/internal/ui/theme"
)

var (
	keyFocusNext = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next block"))
	keyFocusPrev = key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous block"))
	keyComplete  = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete & save"))
	keyAdvance   = key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "advance"))
)

// LessonScreen shows one lesson. Tab moves focus between the quizzes and
// examples; with nothing focused the arrow keys scroll.
type LessonScreen struct {
	env    *screen.Env
	course catalog.Course
	lesson catalog.Lesson

	quizzes  map[int]*components.QuizView
	examples map[int]*components.StepperView
	// focusable holds the indices of interactive blocks in document order.
	focusable []int
	focus     int // index into focusable, -1 when nothing is focused

	viewport      viewport.Model
	blockOffsets  map[int]int
	scrollToFocus bool

	saving bool
	notice string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates the screen for lesson within course.
func New(env *screen.Env, course catalog.Course, lesson catalog.Lesson) *LessonScreen {
	s := &LessonScreen{
		env:      env,
		course:   course,
		lesson:   lesson,
		quizzes:  make(map[int]*components.QuizView),
		examples: make(map[int]*components.StepperView),
		focus:    -1,
		viewport: viewport.New(viewport.WithWidth(80), viewport.WithHeight(20)),
	}

	for i, b := range lesson.Content {
		switch b := b.(type) {
		case catalog.QuizBlock:
			s.quizzes[i] = components.NewQuizView(b, func(score int) tea.Cmd {
				env.Log.Info("quiz completed", "quiz", b.ID, "score", score)
				return env.RecordQuiz(b.ID, score)
			})
			s.focusable = append(s.focusable, i)
		case catalog.ExampleBlock:
			s.examples[i] = components.NewStepperView(b)
			s.focusable = append(s.focusable, i)
		}
	}
	return s
}

func (s *LessonScreen) Init() tea.Cmd {
	return nil
}

// Focused returns the index of the focused content block, or -1.
func (s *LessonScreen) Focused() int {
	if s.focus < 0 || s.focus >= len(s.focusable) {
		return -1
	}
	return s.focusable[s.focus]
}

// Quiz returns the view of the quiz block at index i.
func (s *LessonScreen) Quiz(i int) (*components.QuizView, bool) {
	q, ok := s.quizzes[i]
	return q, ok
}

// Example returns the view of the example block at index i.
func (s *LessonScreen) Example(i int) (*components.StepperView, bool) {
	e, ok := s.examples[i]
	return e, ok
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ProgressSavedMsg:
		if msg.Op == screen.OpCompleteLesson && msg.ID == s.lesson.ID {
			s.saving = false
			if msg.Err != nil {
				s.notice = "Could not save progress. Try again with c."
			} else {
				s.notice = ""
			}
		}
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyFocusNext):
			s.moveFocus(1)
			return s, nil
		case key.Matches(msg, keyFocusPrev):
			s.moveFocus(-1)
			return s, nil
		case key.Matches(msg, keyComplete):
			if s.env.IsCompleted(s.lesson.ID) || s.saving {
				return s, nil
			}
			s.saving = true
			return s, s.env.CompleteLesson(s.lesson.ID)
		case key.Matches(msg, keyAdvance):
			if !s.env.IsCompleted(s.lesson.ID) {
				s.notice = "Complete the lesson before advancing."
				return s, nil
			}
			return s, router.Navigate(router.AdvanceMsg{Completed: s.env.IsCompleted})
		}

		if idx := s.Focused(); idx >= 0 {
			return s, s.updateBlock(idx, msg)
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

func (s *LessonScreen) moveFocus(delta int) {
	n := len(s.focusable)
	if n == 0 {
		return
	}
	// -1 (nothing) sits between the last and the first block.
	s.focus = (s.focus+1+delta+n+1)%(n+1) - 1
	s.scrollToFocus = s.focus >= 0
}

func (s *LessonScreen) updateBlock(idx int, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if q, ok := s.quizzes[idx]; ok {
		s.quizzes[idx], cmd = q.Update(msg)
	}
	if e, ok := s.examples[idx]; ok {
		s.examples[idx], cmd = e.Update(msg)
	}
	return cmd
}

func (s *LessonScreen) View(width, height int) string {
	cw := layout.ColumnWidth(width)

	s.viewport.SetWidth(width)
	s.viewport.SetHeight(max(1, height))
	s.viewport.SetContent(s.renderContent(cw, width))
	if s.scrollToFocus {
		if off, ok := s.blockOffsets[s.Focused()]; ok {
			s.viewport.SetYOffset(off)
		}
		s.scrollToFocus = false
	}
	return s.viewport.View()
}

// renderContent renders the header, every block and the completion footer,
// recording the first line of each block.
func (s *LessonScreen) renderContent(cw, width int) string {
	s.blockOffsets = make(map[int]int, len(s.lesson.Content))

	var parts []string
	lines := 0
	add := func(part string) {
		parts = append(parts, layout.Centered(part, width))
		lines += lipgloss.Height(part) + 1
	}

	add(s.renderHeader(cw))
	for i, b := range s.lesson.Content {
		s.blockOffsets[i] = lines
		add(s.renderBlock(i, b, cw))
	}
	add(s.renderFooter(cw))

	return strings.Join(parts, "\n\n")
}

func (s *LessonScreen) renderHeader(cw int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(s.lesson.Title)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Render(s.lesson.Description)
	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))
	return lipgloss.JoinVertical(lipgloss.Left, title, desc, rule)
}

func (s *LessonScreen) renderBlock(i int, b catalog.Block, cw int) string {
	focused := s.Focused() == i

	switch b := b.(type) {
	case catalog.TextBlock:
		return markdown.Render(b.Content, cw)

	case catalog.CalloutBlock:
		accent := theme.CalloutColor(string(b.Variant))
		title := b.Title
		if b.Variant == catalog.CalloutTip {
			title = "★ " + title
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Foreground(accent).Render(title),
			markdown.Render(b.Content, cw-4),
		)
		return lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(accent).
			PaddingLeft(2).
			Width(cw).
			Render(body)

	case catalog.ExampleBlock:
		return s.examples[i].View(cw, focused)

	case catalog.QuizBlock:
		return s.quizzes[i].View(cw, focused)

	default:
		return ""
	}
}

func (s *LessonScreen) renderFooter(cw int) string {
	var out string
	switch {
	case s.env.IsCompleted(s.lesson.ID):
		mastery := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Success).
			Width(min(cw, 40)).
			Align(lipgloss.Center).
			Render(theme.Done.Render("✓ Lesson Mastery") + "\n" + theme.Hint.Render("PROGRESS SAVED"))
		out = lipgloss.JoinVertical(lipgloss.Center, mastery, "", components.NewButton("n", "Advance ›", true).View())
	case s.saving:
		out = components.NewButton("c", "Saving…", false).View()
	default:
		out = components.NewButton("c", "Complete & Save", true).View()
	}

	if s.notice != "" {
		out = lipgloss.JoinVertical(lipgloss.Center, out, "", lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice))
	}
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, out)
}

func (s *LessonScreen) Title() string {
	return fmt.Sprintf("%s • %s", s.course.Title, s.lesson.Title)
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Focus Block"},
		{Key: "↑↓", Description: "Scroll"},
	}
	if s.Focused() >= 0 {
		hints[1] = layout.KeyHint{Key: "↑↓ Enter", Description: "Interact"}
	}
	if s.env.IsCompleted(s.lesson.ID) {
		hints = append(hints, layout.KeyHint{Key: "n", Description: "Advance"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "c", Description: "Complete & Save"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Units"})
}

package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/undergrad/internal/catalog"
	"github.com/abhisek/undergrad/internal/quiz"
	"github.com/abhisek/undergrad/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// QuizView renders a quiz.Runner as a multiple-choice card. The cursor
// picks an option; Enter answers, then Enter again moves on.
type QuizView struct {
	ID    string
	Title string

	runner  *quiz.Runner
	cursor  int
	pending tea.Cmd
}

// NewQuizView creates a view for block. onComplete runs once per finished
// run with the score; the command it returns is emitted from Update.
func NewQuizView(block catalog.QuizBlock, onComplete func(score int) tea.Cmd) *QuizView {
	v := &QuizView{ID: block.ID, Title: block.Title}
	v.runner = quiz.New(block.Questions, func(score int) {
		if onComplete != nil {
			v.pending = onComplete(score)
		}
	})
	return v
}

// Runner exposes the underlying state.
func (v *QuizView) Runner() *quiz.Runner {
	return v.runner
}

// Update handles keys while the quiz has focus.
func (v *QuizView) Update(msg tea.Msg) (*QuizView, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.runner.Finished() {
		if key.Matches(kmsg, KeyRetake) && v.runner.Len() > 0 {
			v.runner.Reset()
			v.cursor = 0
		}
		return v, nil
	}

	_, q := v.runner.Current()
	switch {
	case key.Matches(kmsg, KeyUp):
		if !v.runner.Answered() && v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(kmsg, KeyDown):
		if !v.runner.Answered() && v.cursor < len(q.Options)-1 {
			v.cursor++
		}
	case key.Matches(kmsg, KeySelect):
		if !v.runner.Answered() {
			v.runner.Select(v.cursor)
			return v, nil
		}
		v.runner.Next()
		v.cursor = 0
		cmd := v.pending
		v.pending = nil
		return v, cmd
	default:
		// Digits answer directly.
		if idx := optionIndex(kmsg.String()); idx >= 0 && idx < len(q.Options) && !v.runner.Answered() {
			v.cursor = idx
			v.runner.Select(idx)
		}
	}
	return v, nil
}

func optionIndex(s string) int {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return -1
	}
	return int(s[0] - '1')
}

// View renders the card at the given width.
func (v *QuizView) View(width int, focused bool) string {
	inner := max(20, width-6)
	r := v.runner

	var b strings.Builder
	head := theme.Label.Render(strings.ToUpper(v.Title))

	switch {
	case r.Len() == 0:
		b.WriteString(head + "\n\n")
		b.WriteString(theme.Hint.Render("This quiz has no questions yet."))

	case r.Finished():
		b.WriteString(head + "\n\n")
		b.WriteString(theme.Title.Width(inner).Render("Quiz Complete") + "\n")
		b.WriteString(lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("Final Score: %d%%", r.Score())))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("r: Retake Quiz"))

	default:
		idx, q := r.Current()
		counter := theme.Hint.Render(fmt.Sprintf("QUESTION %d / %d", idx+1, r.Len()))
		gap := max(1, inner-lipgloss.Width(head)-lipgloss.Width(counter))
		b.WriteString(head + strings.Repeat(" ", gap) + counter + "\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(inner).Render(q.Text))
		b.WriteString("\n\n")

		for i, opt := range q.Options {
			b.WriteString(v.renderOption(i, opt, q, focused))
			b.WriteString("\n")
		}

		if r.Answered() {
			b.WriteString("\n")
			if r.Correct() {
				b.WriteString(theme.Correct.Render("Correct!"))
			} else {
				b.WriteString(theme.Incorrect.Render("Not quite."))
			}
			if q.Explanation != "" {
				b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Width(inner).Render(q.Explanation))
			}
			b.WriteString("\n\n")
			next := "Enter: Next Question"
			if idx == r.Len()-1 {
				next = "Enter: Finish Quiz"
			}
			b.WriteString(theme.Hint.Render(next))
		}
	}

	card := theme.Card
	if focused {
		card = theme.FocusedCard
	}
	return card.Width(width).Render(b.String())
}

func (v *QuizView) renderOption(i int, opt string, q catalog.QuizQuestion, focused bool) string {
	label := "?"
	if i < len(optionLabels) {
		label = optionLabels[i]
	}

	prefix := "  "
	if focused && i == v.cursor && !v.runner.Answered() {
		prefix = "▸ "
	}
	line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

	if v.runner.Answered() {
		switch i {
		case q.CorrectIndex:
			return theme.Correct.Render(line + "  ✓")
		case v.runner.Answer():
			return theme.Incorrect.Render(line + "  ✗")
		default:
			return theme.Disabled.Render(line)
		}
	}
	if focused && i == v.cursor {
		return theme.Selected.Render(line)
	}
	return theme.Unselected.Render(line)
}

package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/undergrad/internal/catalog"
)

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
	up    = tea.KeyPressMsg{Code: tea.KeyUp}
)

type pickedMsg string

func pick(s string) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return pickedMsg(s) }
	}
}

func TestMenu_SkipsHeadersAndDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Section", Header: true},
		{Label: "a", Action: pick("a")},
		{Label: "b", Disabled: true, Action: pick("b")},
		{Label: "Other", Header: true},
		{Label: "c", Action: pick("c")},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}

	m, _ = m.Update(down)
	if m.Selected != 4 {
		t.Errorf("after down Selected = %d, want 4", m.Selected)
	}
	m, _ = m.Update(down)
	if m.Selected != 4 {
		t.Errorf("down past the end moved to %d", m.Selected)
	}

	_, cmd := m.Update(enter)
	if cmd == nil || cmd() != pickedMsg("c") {
		t.Error("enter should run the selected action")
	}

	m, _ = m.Update(up)
	if m.Selected != 1 {
		t.Errorf("after up Selected = %d, want 1", m.Selected)
	}
}

func TestMenu_ViewWindowsAroundSelection(t *testing.T) {
	var items []MenuItem
	for _, l := range []string{"one", "two", "three", "four", "five", "six"} {
		items = append(items, MenuItem{Label: l})
	}
	m := NewMenu(items)
	m.Selected = 5

	view := ansi.Strip(m.View(3))
	if strings.Count(view, "\n") != 2 {
		t.Errorf("expected 3 lines, got:\n%s", view)
	}
	if !strings.Contains(view, "▸ six") || strings.Contains(view, "one") {
		t.Errorf("window should end at the selection, got:\n%s", view)
	}
}

func quizBlock() catalog.QuizBlock {
	return catalog.QuizBlock{
		ID:    "q",
		Title: "Check",
		Questions: []catalog.QuizQuestion{
			{ID: "1", Text: "2+2?", Options: []string{"3", "4"}, CorrectIndex: 1, Explanation: "Two pairs."},
			{ID: "2", Text: "3+3?", Options: []string{"6", "7"}, CorrectIndex: 0},
		},
	}
}

func TestQuizView_AnswerAndFinish(t *testing.T) {
	var got []int
	v := NewQuizView(quizBlock(), func(score int) tea.Cmd {
		got = append(got, score)
		return func() tea.Msg { return pickedMsg("done") }
	})

	v, _ = v.Update(enter) // answers "3", wrong
	view := ansi.Strip(v.View(60, true))
	for _, want := range []string{"Not quite.", "Two pairs.", "Enter: Next Question"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	v, _ = v.Update(up) // locked after answering
	v, cmd := v.Update(enter)
	if cmd != nil {
		t.Error("advancing to the second question should not complete")
	}

	v, _ = v.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	if !strings.Contains(ansi.Strip(v.View(60, true)), "Enter: Finish Quiz") {
		t.Error("expected finish hint on the last question")
	}
	v, cmd = v.Update(enter)
	if cmd == nil || cmd() != pickedMsg("done") {
		t.Fatal("finishing should return the completion command")
	}
	if len(got) != 1 || got[0] != 50 {
		t.Errorf("scores = %v, want [50]", got)
	}
	if !strings.Contains(ansi.Strip(v.View(60, true)), "Final Score: 50%") {
		t.Error("expected final score")
	}

	v, _ = v.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if v.Runner().Finished() {
		t.Error("r should restart the quiz")
	}
}

func TestQuizView_Empty(t *testing.T) {
	v := NewQuizView(catalog.QuizBlock{Title: "Empty"}, func(int) tea.Cmd {
		t.Error("empty quiz must not complete")
		return nil
	})
	v, _ = v.Update(enter)
	if !strings.Contains(ansi.Strip(v.View(60, false)), "no questions") {
		t.Error("expected empty quiz message")
	}
}

func TestStepperView_Reveal(t *testing.T) {
	v := NewStepperView(catalog.ExampleBlock{Title: "Sum", Problem: "1+1", Steps: []string{"Add.", "Answer: 2."}})

	view := ansi.Strip(v.View(60, true))
	if strings.Contains(view, "Add.") || !strings.Contains(view, "(0/2)") {
		t.Errorf("no steps should be shown yet, got:\n%s", view)
	}

	v, _ = v.Update(enter)
	v, _ = v.Update(enter)
	v, _ = v.Update(enter)
	view = ansi.Strip(v.View(60, true))
	if !strings.Contains(view, "Answer: 2.") || !strings.Contains(view, "EXAMPLE COMPLETE") {
		t.Errorf("expected all steps and completion, got:\n%s", view)
	}
	if v.Stepper().Visible() != 2 {
		t.Errorf("Visible = %d, want 2", v.Stepper().Visible())
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 0, 0},
		{1, 4, 0.25},
		{5, 4, 1},
	}
	for _, tt := range tests {
		if got := NewProgressBar("", tt.done, tt.total, 20).Fraction(); got != tt.want {
			t.Errorf("Fraction(%d/%d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}
	if view := ansi.Strip(NewProgressBar("Progress", 1, 4, 40).View()); !strings.Contains(view, "1/4") {
		t.Errorf("view = %q, want counter", view)
	}
}

func TestButton(t *testing.T) {
	if got := ansi.Strip(NewButton("c", "Save", true).View()); !strings.Contains(got, "[c] Save") {
		t.Errorf("View = %q", got)
	}
}

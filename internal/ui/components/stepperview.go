package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/undergrad/internal/catalog"
	"github.com/abhisek/undergrad/internal/example"
	"github.com/abhisek/undergrad/internal/ui/theme"
)

// StepperView renders a worked example whose steps are revealed with Enter.
type StepperView struct {
	Title   string
	Problem string
	stepper *example.Stepper
}

// NewStepperView creates a view for block with no steps revealed.
func NewStepperView(block catalog.ExampleBlock) *StepperView {
	return &StepperView{
		Title:   block.Title,
		Problem: block.Problem,
		stepper: example.New(block.Steps),
	}
}

// Stepper exposes the underlying state.
func (v *StepperView) Stepper() *example.Stepper {
	return v.stepper
}

// Update reveals the next step on Enter while focused.
func (v *StepperView) Update(msg tea.Msg) (*StepperView, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, KeySelect) {
		v.stepper.ShowNext()
	}
	return v, nil
}

// View renders the card at the given width.
func (v *StepperView) View(width int, focused bool) string {
	inner := max(20, width-6)

	var b strings.Builder
	b.WriteString(theme.Label.Render("Example: "+v.Title) + "\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(inner).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		Render(v.Problem))
	b.WriteString("\n")

	num := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(inner - 4)
	for i, step := range v.stepper.VisibleSteps() {
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, num.Render(fmt.Sprintf("%2d  ", i+1)), body.Render(step)))
	}

	b.WriteString("\n\n")
	if v.stepper.Done() {
		b.WriteString(theme.Done.Render("EXAMPLE COMPLETE"))
	} else {
		hint := fmt.Sprintf("Enter: Show Next Step (%d/%d)", v.stepper.Visible(), v.stepper.Len())
		if !focused {
			hint = fmt.Sprintf("%d of %d steps shown", v.stepper.Visible(), v.stepper.Len())
		}
		b.WriteString(theme.Hint.Render(hint))
	}

	card := theme.Card
	if focused {
		card = theme.FocusedCard
	}
	return card.Width(width).Render(b.String())
}

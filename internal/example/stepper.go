// Package example reveals the steps of a worked example one at a time.
package example

// Stepper counts how many steps are visible. It only moves forward.
type Stepper struct {
	steps   []string
	visible int
}

// New returns a Stepper with no steps revealed.
func New(steps []string) *Stepper {
	return &Stepper{steps: steps}
}

// Len returns the total number of steps.
func (s *Stepper) Len() int { return len(s.steps) }

// Visible returns the number of revealed steps.
func (s *Stepper) Visible() int { return s.visible }

// ShowNext reveals one more step. It returns false once every step is
// already visible.
func (s *Stepper) ShowNext() bool {
	if s.visible >= len(s.steps) {
		return false
	}
	s.visible++
	return true
}

// Done reports whether all steps are visible.
func (s *Stepper) Done() bool { return s.visible >= len(s.steps) }

// VisibleSteps returns the revealed steps in order.
func (s *Stepper) VisibleSteps() []string {
	return s.steps[:s.visible]
}

// Package quiz runs a multiple-choice quiz one question at a time.
package quiz

import (
	"math"

	"github.com/abhisek/undergrad/internal/catalog"
)

const unanswered = -1

// Runner tracks answers for a quiz. It has no I/O; the final score is
// reported through the completion callback.
type Runner struct {
	questions  []catalog.QuizQuestion
	answers    []int
	current    int
	finished   bool
	onComplete func(score int)
}

// New returns a Runner positioned on the first question. onComplete may be
// nil.
func New(questions []catalog.QuizQuestion, onComplete func(score int)) *Runner {
	r := &Runner{questions: questions, onComplete: onComplete}
	r.Reset()
	return r
}

// Reset starts a new run from the first question. It never invokes the
// completion callback.
func (r *Runner) Reset() {
	r.answers = make([]int, len(r.questions))
	for i := range r.answers {
		r.answers[i] = unanswered
	}
	r.current = 0
	r.finished = len(r.questions) == 0
}

// Len returns the number of questions.
func (r *Runner) Len() int { return len(r.questions) }

// Current returns the index and the question being shown. It returns -1
// once the quiz is finished.
func (r *Runner) Current() (int, catalog.QuizQuestion) {
	if r.finished {
		return -1, catalog.QuizQuestion{}
	}
	return r.current, r.questions[r.current]
}

// Answered reports whether the current question has been answered.
func (r *Runner) Answered() bool {
	return !r.finished && r.answers[r.current] != unanswered
}

// Answer returns the chosen option for the current question, or -1.
func (r *Runner) Answer() int {
	if r.finished {
		return unanswered
	}
	return r.answers[r.current]
}

// Correct reports whether the current answer is the correct option.
func (r *Runner) Correct() bool {
	if !r.Answered() {
		return false
	}
	return r.answers[r.current] == r.questions[r.current].CorrectIndex
}

// Select records option as the answer to the current question. Only the
// first answer counts; later calls return false until Next.
func (r *Runner) Select(option int) bool {
	if r.finished || r.answers[r.current] != unanswered {
		return false
	}
	if option < 0 || option >= len(r.questions[r.current].Options) {
		return false
	}
	r.answers[r.current] = option
	return true
}

// Next moves past an answered question. Advancing from the last question
// finishes the run and reports the score. It reports whether the quiz is
// finished.
func (r *Runner) Next() bool {
	if r.finished {
		return true
	}
	if r.answers[r.current] == unanswered {
		return false
	}
	if r.current < len(r.questions)-1 {
		r.current++
		return false
	}

	r.finished = true
	if r.onComplete != nil {
		r.onComplete(r.Score())
	}
	return true
}

// Finished reports whether the run is over.
func (r *Runner) Finished() bool { return r.finished }

// CorrectCount returns the number of correctly answered questions.
func (r *Runner) CorrectCount() int {
	n := 0
	for i, a := range r.answers {
		if a == r.questions[i].CorrectIndex {
			n++
		}
	}
	return n
}

// Score is round(100 * correct / total), or 0 for an empty quiz.
func (r *Runner) Score() int {
	if len(r.questions) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(r.CorrectCount()) / float64(len(r.questions))))
}

package screen

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/undergrad/internal/catalog"
	"github.com/abhisek/undergrad/internal/logger"
	"github.com/abhisek/undergrad/internal/progress"
)

// ProgressSavedMsg reports the outcome of a progress write. Progress is the
// state after the write, or the unchanged state when Err is set.
type ProgressSavedMsg struct {
	Op       string
	ID       string
	Progress progress.UserProgress
	Err      error
}

// Progress write operations.
const (
	OpCompleteLesson = "complete_lesson"
	OpRecordQuiz     = "record_quiz"
)

// Env is the state shared by all screens. Screens read the cached
// progress snapshot, which every successful write replaces.
type Env struct {
	Catalog *catalog.Catalog
	Log     *logger.Logger

	store    *progress.Store
	snapshot progress.UserProgress
}

// NewEnv loads the current progress from store.
func NewEnv(ctx context.Context, cat *catalog.Catalog, store *progress.Store, log *logger.Logger) *Env {
	if log == nil {
		log = logger.Nop()
	}
	return &Env{
		Catalog:  cat,
		Log:      log,
		store:    store,
		snapshot: store.Load(ctx),
	}
}

// Progress returns the cached progress.
func (e *Env) Progress() progress.UserProgress {
	return e.snapshot
}

// IsCompleted reports whether the lesson is marked complete.
func (e *Env) IsCompleted(lessonID string) bool {
	return e.snapshot.IsCompleted(lessonID)
}

// CompletedIn returns how many lessons of course are completed.
func (e *Env) CompletedIn(course catalog.Course) int {
	n := 0
	for _, u := range course.Units {
		for _, l := range u.Lessons {
			if e.snapshot.IsCompleted(l.ID) {
				n++
			}
		}
	}
	return n
}

// CompleteLesson marks the lesson complete. The write happens before it
// returns so the snapshot is current for the rest of the update; the
// command only reports the outcome.
func (e *Env) CompleteLesson(lessonID string) tea.Cmd {
	p, err := e.store.MarkLessonComplete(context.Background(), lessonID)
	return e.saved(ProgressSavedMsg{Op: OpCompleteLesson, ID: lessonID, Progress: p, Err: err})
}

// RecordQuiz records a quiz score the same way CompleteLesson does.
func (e *Env) RecordQuiz(quizID string, score int) tea.Cmd {
	p, err := e.store.RecordQuizScore(context.Background(), quizID, score)
	return e.saved(ProgressSavedMsg{Op: OpRecordQuiz, ID: quizID, Progress: p, Err: err})
}

func (e *Env) saved(msg ProgressSavedMsg) tea.Cmd {
	if msg.Err == nil {
		e.snapshot = msg.Progress
	}
	return func() tea.Msg { return msg }
}

// Apply logs a failed write. The snapshot was already updated when the
// write ran, so results delivered late or out of order change nothing.
func (e *Env) Apply(msg ProgressSavedMsg) {
	if msg.Err != nil {
		e.Log.Error("progress write failed", "op", msg.Op, "id", msg.ID, "error", msg.Err)
	}
}

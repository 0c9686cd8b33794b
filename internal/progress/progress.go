// Package progress persists per-user lesson completion and best quiz scores
// as a single JSON document in a key-value store.
//
// Both mutators are read-modify-write against the stored document and are
// serialized by the Store. Separate Stores over the same KV are not
// coordinated; the last write wins.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/abhisek/undergrad/internal/logger"
	"github.com/abhisek/undergrad/internal/store"
)

// Key is the storage key of the progress document.
const Key = "undergrad_progress_v1"

// UserProgress is the persisted learner state.
type UserProgress struct {
	CompletedLessons []string       `json:"completedLessons"`
	QuizScores       map[string]int `json:"quizScores"`
}

// Empty returns the default progress with no completions and no scores.
func Empty() UserProgress {
	return UserProgress{CompletedLessons: []string{}, QuizScores: map[string]int{}}
}

// IsCompleted reports whether lessonID is marked complete.
func (p UserProgress) IsCompleted(lessonID string) bool {
	return slices.Contains(p.CompletedLessons, lessonID)
}

// Score returns the best recorded score for quizID.
func (p UserProgress) Score(quizID string) (int, bool) {
	s, ok := p.QuizScores[quizID]
	return s, ok
}

// Clone returns a deep copy.
func (p UserProgress) Clone() UserProgress {
	out := UserProgress{
		CompletedLessons: slices.Clone(p.CompletedLessons),
		QuizScores:       make(map[string]int, len(p.QuizScores)),
	}
	if out.CompletedLessons == nil {
		out.CompletedLessons = []string{}
	}
	for k, v := range p.QuizScores {
		out.QuizScores[k] = v
	}
	return out
}

func (p UserProgress) normalized() UserProgress {
	if p.CompletedLessons == nil {
		p.CompletedLessons = []string{}
	}
	if p.QuizScores == nil {
		p.QuizScores = map[string]int{}
	}
	return p
}

// KV is the storage the progress document lives in.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Recorder receives an activity event after every successful write.
type Recorder interface {
	AppendActivity(ctx context.Context, ev store.ActivityEvent) error
}

// Store reads and writes the progress document.
type Store struct {
	mu       sync.Mutex
	kv       KV
	recorder Recorder
	log      *logger.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithRecorder appends an activity event for every write.
func WithRecorder(r Recorder) Option {
	return func(s *Store) { s.recorder = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore creates a Store over kv.
func NewStore(kv KV, opts ...Option) *Store {
	s := &Store{kv: kv, log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the stored progress. A missing, unreadable or malformed
// document yields Empty(); that condition is logged and never returned.
func (s *Store) Load(ctx context.Context) UserProgress {
	p, err := s.read(ctx)
	if err != nil {
		s.log.Warn("progress read failed, using defaults", "error", err)
		return Empty()
	}
	return p
}

// read is Load for the mutators: a KV error is returned so the caller can
// skip its write, while a malformed document still reads as Empty().
func (s *Store) read(ctx context.Context) (UserProgress, error) {
	raw, ok, err := s.kv.Get(ctx, Key)
	if err != nil {
		return UserProgress{}, fmt.Errorf("read progress: %w", err)
	}
	if !ok {
		return Empty(), nil
	}

	p, err := decode(raw)
	if err != nil {
		s.log.Warn("stored progress is malformed, using defaults", "error", err)
		return Empty(), nil
	}
	return p, nil
}

// MarkLessonComplete adds lessonID to the completed set. It is idempotent:
// an already completed lesson returns the current state without a write.
func (s *Store) MarkLessonComplete(ctx context.Context, lessonID string) (UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.read(ctx)
	if err != nil {
		return Empty(), err
	}
	if p.IsCompleted(lessonID) {
		return p, nil
	}

	next := p.Clone()
	next.CompletedLessons = append(next.CompletedLessons, lessonID)
	if err := s.save(ctx, next); err != nil {
		return p, err
	}

	s.record(ctx, store.ActivityEvent{Kind: store.ActivityLessonCompleted, Subject: lessonID})
	return next, nil
}

// RecordQuizScore stores score for quizID if it beats the best so far (an
// absent score counts as 0). Scores are clamped to 0..100.
func (s *Store) RecordQuizScore(ctx context.Context, quizID string, score int) (UserProgress, error) {
	score = clampScore(score)

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.read(ctx)
	if err != nil {
		return Empty(), err
	}
	if best := p.QuizScores[quizID]; score <= best {
		return p, nil
	}

	next := p.Clone()
	next.QuizScores[quizID] = score
	if err := s.save(ctx, next); err != nil {
		return p, err
	}

	s.record(ctx, store.ActivityEvent{Kind: store.ActivityQuizScored, Subject: quizID, Score: score})
	return next, nil
}

// Reset deletes the stored document.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, Key); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}

func (s *Store) save(ctx context.Context, p UserProgress) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := s.kv.Put(ctx, Key, raw); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// record appends to the activity log. The log is auxiliary, so a failure
// here doesn't undo the progress write.
func (s *Store) record(ctx context.Context, ev store.ActivityEvent) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.AppendActivity(ctx, ev); err != nil {
		s.log.Error("append activity failed", "kind", ev.Kind, "subject", ev.Subject, "error", err)
	}
}

package nav

import (
	"github.com/abhisek/undergrad/internal/catalog"
)

// State is the current view. Implementations are Home, SubjectSelect,
// CourseList, LessonView and UnitStatus; each carries exactly the
// selections valid for that view.
type State interface {
	// Name is a stable identifier used in logs.
	Name() string
	state()
}

// Home is the grade picker.
type Home struct{}

// SubjectSelect lists the subjects of a chosen grade.
type SubjectSelect struct {
	Category string
	Grade    string
}

// CourseList lists the courses for a grade and subject.
type CourseList struct {
	Category string
	Grade    string
	Subject  string
}

// LessonView shows a course. With a nil Lesson it is the unit list;
// otherwise it is the lesson itself.
type LessonView struct {
	Category string
	Grade    string
	Subject  string
	Course   catalog.Course
	Lesson   *catalog.Lesson
}

// UnitStatus is the content roadmap. From is the state it was opened from
// and the one Back returns to.
type UnitStatus struct {
	From State
}

func (Home) Name() string          { return "home" }
func (SubjectSelect) Name() string { return "subject_select" }
func (CourseList) Name() string    { return "course_list" }
func (s LessonView) Name() string {
	if s.Lesson == nil {
		return "unit_list"
	}
	return "lesson"
}
func (UnitStatus) Name() string { return "unit_status" }

func (Home) state()          {}
func (SubjectSelect) state() {}
func (CourseList) state()    {}
func (LessonView) state()    {}
func (UnitStatus) state()    {}

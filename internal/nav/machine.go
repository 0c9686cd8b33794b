// Package nav implements the view-navigation state machine:
// home, subject select, course list, lesson view and the content status
// roadmap, with a single overloaded Back event.
package nav

import (
	"errors"
	"fmt"

	"github.com/abhisek/undergrad/internal/catalog"
)

// ErrInvalidTransition is returned when an event is not allowed from the
// current state. The state is left unchanged.
var ErrInvalidTransition = errors.New("invalid transition")

// Observer is called after every successful transition.
type Observer func(from, to State)

// Machine holds the current navigation state.
type Machine struct {
	state    State
	observer Observer
}

// New returns a Machine in the Home state.
func New() *Machine {
	return &Machine{state: Home{}}
}

// OnTransition registers the observer, replacing any previous one.
func (m *Machine) OnTransition(o Observer) {
	m.observer = o
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

func (m *Machine) set(to State) {
	from := m.state
	m.state = to
	if m.observer != nil {
		m.observer(from, to)
	}
}

func invalid(event string, s State) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, s.Name())
}

// SelectGrade moves from Home to the subject list of a grade.
func (m *Machine) SelectGrade(category, grade string) error {
	if _, ok := m.state.(Home); !ok {
		return invalid("select grade", m.state)
	}
	m.set(SubjectSelect{Category: category, Grade: grade})
	return nil
}

// ViewStatus opens the content roadmap from Home or from a course's unit
// list.
func (m *Machine) ViewStatus() error {
	switch s := m.state.(type) {
	case Home:
		m.set(UnitStatus{From: s})
		return nil
	case LessonView:
		if s.Lesson == nil {
			m.set(UnitStatus{From: s})
			return nil
		}
	}
	return invalid("view status", m.state)
}

// SelectSubject moves from a grade's subject list to its course list.
func (m *Machine) SelectSubject(subject string) error {
	s, ok := m.state.(SubjectSelect)
	if !ok {
		return invalid("select subject", m.state)
	}
	m.set(CourseList{Category: s.Category, Grade: s.Grade, Subject: subject})
	return nil
}

// SelectCourse opens a course's unit list.
func (m *Machine) SelectCourse(course catalog.Course) error {
	s, ok := m.state.(CourseList)
	if !ok {
		return invalid("select course", m.state)
	}
	m.set(LessonView{Category: s.Category, Grade: s.Grade, Subject: s.Subject, Course: course})
	return nil
}

// SelectLesson opens a lesson of the active course, from the unit list or
// from another lesson.
func (m *Machine) SelectLesson(lessonID string) error {
	s, ok := m.state.(LessonView)
	if !ok {
		return invalid("select lesson", m.state)
	}
	lesson, ok := findLesson(s.Course, lessonID)
	if !ok {
		return fmt.Errorf("%w: lesson %s not in course %s", ErrInvalidTransition, lessonID, s.Course.ID)
	}
	s.Lesson = &lesson
	m.set(s)
	return nil
}

// Back clears the innermost selection: lesson, then course, then subject,
// then grade. The roadmap returns to where it was opened from. Back on Home
// is a no-op.
func (m *Machine) Back() {
	switch s := m.state.(type) {
	case Home:
		return
	case UnitStatus:
		m.set(s.From)
	case LessonView:
		if s.Lesson != nil {
			s.Lesson = nil
			m.set(s)
			return
		}
		m.set(CourseList{Category: s.Category, Grade: s.Grade, Subject: s.Subject})
	case CourseList:
		m.set(SubjectSelect{Category: s.Category, Grade: s.Grade})
	case SubjectSelect:
		m.set(Home{})
	}
}

// Advance moves from a completed lesson to the next lesson of the course in
// document order (units, then lessons). After the last lesson it returns to
// the unit list.
func (m *Machine) Advance(completed func(lessonID string) bool) error {
	s, ok := m.state.(LessonView)
	if !ok || s.Lesson == nil {
		return invalid("advance", m.state)
	}
	if !completed(s.Lesson.ID) {
		return fmt.Errorf("%w: advance before lesson %s is completed", ErrInvalidTransition, s.Lesson.ID)
	}

	if next, ok := nextLesson(s.Course, s.Lesson.ID); ok {
		s.Lesson = &next
	} else {
		s.Lesson = nil
	}
	m.set(s)
	return nil
}

func findLesson(c catalog.Course, id string) (catalog.Lesson, bool) {
	for _, u := range c.Units {
		for _, l := range u.Lessons {
			if l.ID == id {
				return l, true
			}
		}
	}
	return catalog.Lesson{}, false
}

// nextLesson scans the course for the lesson after id.
func nextLesson(c catalog.Course, id string) (catalog.Lesson, bool) {
	found := false
	for _, u := range c.Units {
		for _, l := range u.Lessons {
			if found {
				return l, true
			}
			if l.ID == id {
				found = true
			}
		}
	}
	return catalog.Lesson{}, false
}

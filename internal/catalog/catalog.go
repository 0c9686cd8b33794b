// Package catalog builds the immutable course catalog: courses per grade and
// subject, their units, and the lesson content generated for each unit from
// authored topic material or the in-development template.
package catalog

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownCourse is returned when a course ID is not in the catalog.
var ErrUnknownCourse = errors.New("unknown course")

// Catalog is a generated, read-only course collection.
type Catalog struct {
	courses []Course
	byID    map[string]int
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the process-wide catalog, generated on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCat = New(Generate())
	})
	return defaultCat
}

// New wraps an already generated course list.
func New(courses []Course) *Catalog {
	byID := make(map[string]int, len(courses))
	for i, c := range courses {
		byID[c.ID] = i
	}
	return &Catalog{courses: courses, byID: byID}
}

// Courses returns all courses in catalog order.
func (c *Catalog) Courses() []Course {
	return c.courses
}

// Course returns the course with the given ID.
func (c *Catalog) Course(id string) (Course, error) {
	i, ok := c.byID[id]
	if !ok {
		return Course{}, fmt.Errorf("%w: %s", ErrUnknownCourse, id)
	}
	return c.courses[i], nil
}

// Filter returns the courses for a grade and subject.
func (c *Catalog) Filter(grade, subject string) []Course {
	var out []Course
	for _, course := range c.courses {
		if course.Grade == grade && course.Subject == subject {
			out = append(out, course)
		}
	}
	return out
}

// UnitStatus pairs a unit with its content status.
type UnitStatus struct {
	Unit       Unit
	Incomplete bool
}

// CourseStatus lists the status of every unit of a course.
type CourseStatus struct {
	Course Course
	Units  []UnitStatus
}

// IncompleteCount returns the number of in-development units.
func (cs CourseStatus) IncompleteCount() int {
	n := 0
	for _, u := range cs.Units {
		if u.Incomplete {
			n++
		}
	}
	return n
}

// Roadmap returns the status of every course that has at least one
// in-development unit. Fully authored courses are omitted.
func (c *Catalog) Roadmap() []CourseStatus {
	var out []CourseStatus
	for _, course := range c.courses {
		cs := CourseStatus{Course: course}
		for _, u := range course.Units {
			cs.Units = append(cs.Units, UnitStatus{Unit: u, Incomplete: IsTopicIncomplete(u.Title)})
		}
		if cs.IncompleteCount() > 0 {
			out = append(out, cs)
		}
	}
	return out
}

// Validate checks structural invariants of the catalog: unique lesson IDs,
// in-range correct answers and three lessons per generated unit.
func (c *Catalog) Validate() error {
	seen := make(map[string]string)
	for _, course := range c.courses {
		for _, u := range course.Units {
			if course.Grade != SubjectElectives && len(u.Lessons) != 3 {
				return fmt.Errorf("unit %s: %d lessons, want 3", u.ID, len(u.Lessons))
			}
			for _, l := range u.Lessons {
				if prev, dup := seen[l.ID]; dup {
					return fmt.Errorf("lesson %s: duplicate id (also in %s)", l.ID, prev)
				}
				seen[l.ID] = course.ID
				for _, q := range l.Quizzes() {
					for _, qq := range q.Questions {
						if qq.CorrectIndex < 0 || qq.CorrectIndex >= len(qq.Options) {
							return fmt.Errorf("quiz %s question %s: correct index %d out of range [0,%d)",
								q.ID, qq.ID, qq.CorrectIndex, len(qq.Options))
						}
					}
				}
			}
		}
	}
	return nil
}

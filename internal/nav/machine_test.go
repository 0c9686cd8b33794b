package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/undergrad/internal/catalog"
)

func testCourse(t *testing.T, id string) catalog.Course {
	t.Helper()
	c, err := catalog.Default().Course(id)
	require.NoError(t, err)
	return c
}

func TestInitialStateIsHome(t *testing.T) {
	assert.Equal(t, Home{}, New().State())
}

func TestDrillDownAndBackToHome(t *testing.T) {
	m := New()
	course := testCourse(t, "9-math")

	require.NoError(t, m.SelectGrade(catalog.CategoryHigh, "9"))
	assert.Equal(t, SubjectSelect{Category: "High", Grade: "9"}, m.State())

	require.NoError(t, m.SelectSubject("Math"))
	assert.Equal(t, CourseList{Category: "High", Grade: "9", Subject: "Math"}, m.State())

	require.NoError(t, m.SelectCourse(course))
	lv, ok := m.State().(LessonView)
	require.True(t, ok)
	assert.Nil(t, lv.Lesson)
	assert.Equal(t, "9-math", lv.Course.ID)

	require.NoError(t, m.SelectLesson(course.Units[0].Lessons[0].ID))
	lv = m.State().(LessonView)
	require.NotNil(t, lv.Lesson)

	m.Back()
	lv = m.State().(LessonView)
	assert.Nil(t, lv.Lesson, "first back clears the lesson")

	m.Back()
	assert.Equal(t, CourseList{Category: "High", Grade: "9", Subject: "Math"}, m.State())

	m.Back()
	assert.Equal(t, SubjectSelect{Category: "High", Grade: "9"}, m.State())

	m.Back()
	assert.Equal(t, Home{}, m.State())
}

func TestBackOnHomeIsNoop(t *testing.T) {
	m := New()
	calls := 0
	m.OnTransition(func(State, State) { calls++ })

	m.Back()
	assert.Equal(t, Home{}, m.State())
	assert.Zero(t, calls)
}

func TestStatusFromHomeReturnsHome(t *testing.T) {
	m := New()
	require.NoError(t, m.ViewStatus())
	assert.Equal(t, UnitStatus{From: Home{}}, m.State())

	m.Back()
	assert.Equal(t, Home{}, m.State())
}

func TestStatusFromUnitListReturnsThere(t *testing.T) {
	m := New()
	require.NoError(t, m.SelectGrade(catalog.CategoryElementary, "K"))
	require.NoError(t, m.SelectSubject("ELA"))
	require.NoError(t, m.SelectCourse(testCourse(t, "K-ela")))
	unitList := m.State()

	require.NoError(t, m.ViewStatus())
	assert.IsType(t, UnitStatus{}, m.State())

	m.Back()
	assert.Equal(t, unitList, m.State())
}

func TestInvalidTransitionsLeaveStateUnchanged(t *testing.T) {
	m := New()
	course := testCourse(t, "8-math")

	tests := []struct {
		name string
		fn   func() error
	}{
		{"subject from home", func() error { return m.SelectSubject("Math") }},
		{"course from home", func() error { return m.SelectCourse(course) }},
		{"lesson from home", func() error { return m.SelectLesson("x") }},
		{"advance from home", func() error { return m.Advance(func(string) bool { return true }) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, Home{}, m.State())
		})
	}

	require.NoError(t, m.SelectGrade(catalog.CategoryMiddle, "8"))
	assert.ErrorIs(t, m.SelectGrade(catalog.CategoryMiddle, "7"), ErrInvalidTransition)
	assert.ErrorIs(t, m.ViewStatus(), ErrInvalidTransition)
}

func TestSelectLessonOutsideCourse(t *testing.T) {
	m := enterCourse(t, "8-math")
	before := m.State()

	err := m.SelectLesson("12-math-u0-l1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, before, m.State())
}

func TestStatusNotAllowedFromLesson(t *testing.T) {
	m := enterCourse(t, "8-math")
	course := m.State().(LessonView).Course
	require.NoError(t, m.SelectLesson(course.Units[0].Lessons[0].ID))

	assert.ErrorIs(t, m.ViewStatus(), ErrInvalidTransition)
}

func TestAdvanceSequence(t *testing.T) {
	m := enterCourse(t, "8-math")
	course := m.State().(LessonView).Course
	done := func(string) bool { return true }

	// Walk every lesson in document order.
	var want []string
	for _, u := range course.Units {
		for _, l := range u.Lessons {
			want = append(want, l.ID)
		}
	}

	require.NoError(t, m.SelectLesson(want[0]))
	var got []string
	for {
		lv := m.State().(LessonView)
		if lv.Lesson == nil {
			break
		}
		got = append(got, lv.Lesson.ID)
		require.NoError(t, m.Advance(done))
	}
	assert.Equal(t, want, got)

	// After the last lesson we are back on the unit list.
	lv := m.State().(LessonView)
	assert.Nil(t, lv.Lesson)
	assert.Equal(t, "8-math", lv.Course.ID)
}

func TestAdvanceCrossesUnitBoundary(t *testing.T) {
	m := enterCourse(t, "9-science")
	course := m.State().(LessonView).Course
	require.NoError(t, m.SelectLesson(course.Units[0].Lessons[2].ID))

	require.NoError(t, m.Advance(func(string) bool { return true }))
	assert.Equal(t, course.Units[1].Lessons[0].ID, m.State().(LessonView).Lesson.ID)
}

func TestAdvanceRequiresCompletion(t *testing.T) {
	m := enterCourse(t, "9-science")
	course := m.State().(LessonView).Course
	first := course.Units[0].Lessons[0].ID
	require.NoError(t, m.SelectLesson(first))

	err := m.Advance(func(string) bool { return false })
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, first, m.State().(LessonView).Lesson.ID)
}

func TestAdvanceSingleLessonCourse(t *testing.T) {
	m := New()
	require.NoError(t, m.SelectGrade(catalog.CategoryElectives, catalog.SubjectElectives))
	require.NoError(t, m.SelectSubject(catalog.SubjectElectives))
	require.NoError(t, m.SelectCourse(testCourse(t, "elec-cs")))
	require.NoError(t, m.SelectLesson("l-cs-1"))

	require.NoError(t, m.Advance(func(string) bool { return true }))
	assert.Nil(t, m.State().(LessonView).Lesson)
}

func TestObserverSeesTransitions(t *testing.T) {
	m := New()
	var names []string
	m.OnTransition(func(from, to State) {
		names = append(names, from.Name()+">"+to.Name())
	})

	require.NoError(t, m.SelectGrade(catalog.CategoryHigh, "10"))
	require.NoError(t, m.SelectSubject("Science"))
	m.Back()

	assert.Equal(t, []string{
		"home>subject_select",
		"subject_select>course_list",
		"course_list>subject_select",
	}, names)
}

func TestSwitchLessonWithinCourse(t *testing.T) {
	m := enterCourse(t, "8-math")
	course := m.State().(LessonView).Course

	require.NoError(t, m.SelectLesson(course.Units[0].Lessons[0].ID))
	require.NoError(t, m.SelectLesson(course.Units[3].Lessons[1].ID))
	assert.Equal(t, course.Units[3].Lessons[1].ID, m.State().(LessonView).Lesson.ID)
}

func enterCourse(t *testing.T, id string) *Machine {
	t.Helper()
	course := testCourse(t, id)
	m := New()
	require.NoError(t, m.SelectGrade("", course.Grade))
	require.NoError(t, m.SelectSubject(course.Subject))
	require.NoError(t, m.SelectCourse(course))
	return m
}

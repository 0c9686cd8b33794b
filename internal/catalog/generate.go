package catalog

import (
	"fmt"
	"strings"
)

// Grade categories shown on the home screen.
const (
	CategoryElementary = "Elementary"
	CategoryMiddle     = "Middle"
	CategoryHigh       = "High"
	CategoryElectives  = "Electives"
)

// SubjectElectives is the subject (and grade) of elective courses.
const SubjectElectives = "Electives"

var gradeLevels = []struct {
	category string
	grades   []string
}{
	{CategoryElementary, []string{"K", "1", "2", "3", "4", "5"}},
	{CategoryMiddle, []string{"6", "7", "8"}},
	{CategoryHigh, []string{"9", "10", "11", "12"}},
}

var mainSubjects = []string{"Math", "Science", "ELA", "Social Studies"}

// Categories returns the grade categories in display order.
func Categories() []string {
	return []string{CategoryElementary, CategoryMiddle, CategoryHigh, CategoryElectives}
}

// Grades returns the grades of a category. The Electives category has the
// single pseudo-grade "Electives".
func Grades(category string) []string {
	if category == CategoryElectives {
		return []string{SubjectElectives}
	}
	for _, gl := range gradeLevels {
		if gl.category == category {
			return append([]string(nil), gl.grades...)
		}
	}
	return nil
}

// Subjects returns the subjects offered for a grade category.
func Subjects(category string) []string {
	if category == CategoryElectives {
		return []string{SubjectElectives}
	}
	return append([]string(nil), mainSubjects...)
}

// Lesson kinds, one lesson of each per unit.
type lessonKind int

const (
	kindConcepts lessonKind = iota
	kindPractice
	kindValidation
)

// Generate builds the full course catalog. It is deterministic: every call
// returns the same courses, units and lessons in the same order.
func Generate() []Course {
	var courses []Course
	for _, gl := range gradeLevels {
		for _, grade := range gl.grades {
			for _, subject := range mainSubjects {
				courses = append(courses, buildCourse(grade, subject))
			}
		}
	}
	return append(courses, electiveCourse())
}

func buildCourse(grade, subject string) Course {
	id := fmt.Sprintf("%s-%s", grade, strings.ToLower(subject))
	titles := unitTitles(grade, subject)

	units := make([]Unit, 0, len(titles))
	for idx, title := range titles {
		unitID := fmt.Sprintf("%s-u%d", id, idx)
		units = append(units, Unit{
			ID:    unitID,
			Title: title,
			Lessons: []Lesson{
				{ID: unitID + "-l1", Title: "Concepts", Description: "Theory and logic.", Content: lessonContent(unitID, title, kindConcepts)},
				{ID: unitID + "-l2", Title: "Practice", Description: "Applied logic.", Content: lessonContent(unitID, title, kindPractice)},
				{ID: unitID + "-l3", Title: "Validation", Description: "Assessment.", Content: lessonContent(unitID, title, kindValidation)},
			},
		})
	}

	return Course{
		ID:          id,
		Grade:       grade,
		Subject:     subject,
		Title:       fmt.Sprintf("%s Grade %s", subject, grade),
		Description: fmt.Sprintf("A specialized 6-unit academic curriculum for Grade %s %s, aligned with core proficiency standards.", grade, subject),
		Units:       units,
	}
}

func electiveCourse() Course {
	return Course{
		ID:          "elec-cs",
		Grade:       SubjectElectives,
		Subject:     SubjectElectives,
		Title:       "Foundations of Computer Science",
		Description: "A comprehensive look at algorithmic efficiency, data structures, and computational thinking.",
		Units: []Unit{{
			ID:    "u-cs-1",
			Title: "Complexity Theory",
			Lessons: []Lesson{{
				ID:          "l-cs-1",
				Title:       "Big O Notation",
				Description: "Measuring efficiency.",
				Content:     lessonContent("u-cs-1", "Complexity", kindConcepts),
			}},
		}},
	}
}

// lessonContent renders one lesson of a unit from the unit's detail record.
func lessonContent(unitID, title string, kind lessonKind) []Block {
	incomplete := IsTopicIncomplete(title)
	d := DetailFor(title)

	switch kind {
	case kindConcepts:
		heading := "Conceptual Foundations"
		callout := CalloutBlock{Title: "Success Metrics", Variant: CalloutInfo}
		if incomplete {
			heading = "[IN DEVELOPMENT]"
			callout = CalloutBlock{Title: "Status: Pending Expansion", Variant: CalloutWarning}
		}
		callout.Content = bullets(d.Objectives)

		var first []QuizQuestion
		if len(d.Quiz) > 0 {
			first = d.Quiz[:1]
		}
		return []Block{
			TextBlock{Content: fmt.Sprintf("# %s: %s\n\n%s\n\n### Strategic Importance\n%s", title, heading, d.Definition, d.Why)},
			callout,
			QuizBlock{ID: unitID + "-q-intro", Title: "Conceptual Audit", Questions: first},
		}

	case kindPractice:
		intro := "Engage with this specific scenario to validate your operational understanding."
		if incomplete {
			intro = "This specific walkthrough is in development."
		}
		return []Block{
			TextBlock{Content: fmt.Sprintf("# Practical Application: %s\n\n%s", title, intro)},
			ExampleBlock{Title: title, Problem: d.Problem, Steps: d.Steps},
		}

	default:
		intro := "Complete the following specific evaluation to confirm your mastery."
		if incomplete {
			intro = "A custom assessment for this unit is arriving soon."
		}
		return []Block{
			TextBlock{Content: fmt.Sprintf("# Final Proficiency Validation: %s\n\n%s", title, intro)},
			QuizBlock{ID: unitID + "-q-final", Title: title + " Validation", Questions: d.Quiz},
		}
	}
}

func bullets(items []string) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = "- " + it
	}
	return strings.Join(lines, "\n")
}

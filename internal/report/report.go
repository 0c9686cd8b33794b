// Package report exports learner progress as an xlsx workbook.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/undergrad/internal/catalog"
	"github.com/abhisek/undergrad/internal/progress"
)

// Sheet names, in workbook order.
const (
	SheetSummary = "Summary"
	SheetLessons = "Lessons"
	SheetQuizzes = "Quizzes"
)

var (
	summaryHeader = []any{"Course", "Grade", "Subject", "Completed", "Lessons", "Percent"}
	lessonsHeader = []any{"Course", "Unit", "Lesson ID", "Lesson", "Completed"}
	quizzesHeader = []any{"Course", "Unit", "Quiz ID", "Quiz", "Questions", "Best Score"}
)

// Build creates the workbook. The caller must close it.
func Build(courses []catalog.Course, p progress.UserProgress) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetLessons, SheetQuizzes} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	w := &sheetWriter{f: f, headerStyle: headerStyle}
	w.header(SheetSummary, summaryHeader)
	w.header(SheetLessons, lessonsHeader)
	w.header(SheetQuizzes, quizzesHeader)

	for _, c := range courses {
		done := 0
		for _, u := range c.Units {
			for _, l := range u.Lessons {
				completed := p.IsCompleted(l.ID)
				if completed {
					done++
				}
				w.row(SheetLessons, []any{c.Title, u.Title, l.ID, l.Title, yesNo(completed)})

				for _, q := range l.Quizzes() {
					best := any("")
					if s, ok := p.Score(q.ID); ok {
						best = s
					}
					w.row(SheetQuizzes, []any{c.Title, u.Title, q.ID, q.Title, len(q.Questions), best})
				}
			}
		}

		pct := 0
		if n := c.LessonCount(); n > 0 {
			pct = done * 100 / n
		}
		w.row(SheetSummary, []any{c.Title, c.Grade, c.Subject, done, c.LessonCount(), pct})
	}

	if w.err != nil {
		f.Close()
		return nil, w.err
	}
	for _, name := range []string{SheetSummary, SheetLessons, SheetQuizzes} {
		if err := f.SetColWidth(name, "A", "D", 28); err != nil {
			f.Close()
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// Write builds the workbook and writes it to out.
func Write(out io.Writer, courses []catalog.Course, p progress.UserProgress) error {
	f, err := Build(courses, p)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Save builds the workbook and saves it at path.
func Save(path string, courses []catalog.Course, p progress.UserProgress) error {
	f, err := Build(courses, p)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// sheetWriter appends rows per sheet and keeps the first error.
type sheetWriter struct {
	f           *excelize.File
	headerStyle int
	next        map[string]int
	err         error
}

func (w *sheetWriter) header(sheet string, cols []any) {
	w.row(sheet, cols)
	if w.err != nil {
		return
	}
	end, err := excelize.CoordinatesToCellName(len(cols), 1)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetCellStyle(sheet, "A1", end, w.headerStyle); err != nil {
		w.err = fmt.Errorf("style header of %s: %w", sheet, err)
	}
}

func (w *sheetWriter) row(sheet string, values []any) {
	if w.err != nil {
		return
	}
	if w.next == nil {
		w.next = make(map[string]int)
	}
	w.next[sheet]++
	cell, err := excelize.CoordinatesToCellName(1, w.next[sheet])
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetSheetRow(sheet, cell, &values); err != nil {
		w.err = fmt.Errorf("write %s row %d: %w", sheet, w.next[sheet], err)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

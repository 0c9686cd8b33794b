package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/undergrad/internal/catalog"
	"github.com/abhisek/undergrad/internal/progress"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		printStats(cmd, catalog.Default().Courses(), d.progress.Load(cmd.Context()))
		return nil
	},
}

func printStats(cmd *cobra.Command, courses []catalog.Course, p progress.UserProgress) {
	out := cmd.OutOrStdout()

	if len(p.CompletedLessons) == 0 && len(p.QuizScores) == 0 {
		fmt.Fprintln(out, "No progress recorded yet.")
		return
	}

	fmt.Fprintf(out, "%-40s  %9s  %5s\n", "Course", "Lessons", "%")
	fmt.Fprintln(out, strings.Repeat("─", 60))

	total, done := 0, 0
	for _, c := range courses {
		n := c.LessonCount()
		total += n

		completed := 0
		for _, u := range c.Units {
			for _, l := range u.Lessons {
				if p.IsCompleted(l.ID) {
					completed++
				}
			}
		}
		done += completed
		if completed == 0 {
			continue
		}
		fmt.Fprintf(out, "%-40s  %4d/%-4d  %4d%%\n", c.Title, completed, n, completed*100/max(1, n))
	}
	fmt.Fprintf(out, "\n%d of %d lessons completed\n", done, total)

	if len(p.QuizScores) == 0 {
		return
	}

	ids := make([]string, 0, len(p.QuizScores))
	for id := range p.QuizScores {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(out, "\n%-40s  %5s\n", "Quiz", "Best")
	fmt.Fprintln(out, strings.Repeat("─", 48))
	for _, id := range ids {
		fmt.Fprintf(out, "%-40s  %4d%%\n", id, p.QuizScores[id])
	}
}

package cmd

import (
	"fmt"

	"github.com/abhisek/undergrad/internal/catalog"
	"github.com/abhisek/undergrad/internal/report"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export progress to a spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("out")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		p := d.progress.Load(cmd.Context())
		if err := report.Save(path, catalog.Default().Courses(), p); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		d.log.Info("progress exported", "path", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d lessons completed, %d quizzes scored)\n",
			path, len(p.CompletedLessons), len(p.QuizScores))
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "undergrad-progress.xlsx", "Output file")
}

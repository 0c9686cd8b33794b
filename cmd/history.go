package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/undergrad/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent learning activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		events, err := d.db.EventRepo().RecentActivity(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query activity: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No activity recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "%-19s  %-17s  %-28s  %s\n", "Timestamp", "Kind", "Subject", "Score")
		fmt.Fprintln(out, strings.Repeat("─", 76))
		for _, e := range events {
			score := ""
			if e.Kind == store.ActivityQuizScored {
				score = fmt.Sprintf("%d%%", e.Score)
			}
			fmt.Fprintf(out, "%-19s  %-17s  %-28s  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Kind,
				e.Subject,
				score,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of events to show (0 for all)")
}

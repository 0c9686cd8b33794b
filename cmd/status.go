package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/undergrad/internal/catalog"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which units are still in development",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		roadmap := catalog.Default().Roadmap()
		if len(roadmap) == 0 {
			fmt.Fprintln(out, "All units are complete.")
			return
		}

		units := 0
		for _, cs := range roadmap {
			fmt.Fprintf(out, "%s (%d of %d in development)\n", cs.Course.Title, cs.IncompleteCount(), len(cs.Units))
			for _, u := range cs.Units {
				if u.Incomplete {
					fmt.Fprintf(out, "  ? %s\n", u.Unit.Title)
				}
			}
			units += cs.IncompleteCount()
		}
		fmt.Fprintln(out, strings.Repeat("─", 40))
		fmt.Fprintf(out, "%d units in development across %d courses\n", units, len(roadmap))
	},
}

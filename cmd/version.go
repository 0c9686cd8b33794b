package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "undergrad", displayVersion(version))
	},
}

// displayVersion canonicalizes release versions ("1.2" becomes "v1.2.0").
// Anything that is not semver, such as "(devel)", is returned unchanged.
func displayVersion(v string) string {
	if len(v) > 0 && v[0] != 'v' {
		if c := semver.Canonical("v" + v); c != "" {
			return c
		}
	}
	if semver.IsValid(v) {
		return semver.Canonical(v)
	}
	return v
}

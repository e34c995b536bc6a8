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
		fmt.Fprintln(cmd.OutOrStdout(), "leetsprint", displayVersion(version))
	},
}

// displayVersion canonicalises release versions ("1.2" -> "v1.2.0") and
// reports anything that is not semver as a development build.
func displayVersion(v string) string {
	if v == "" || v == "(devel)" {
		return "(devel)"
	}
	if v[0] != 'v' {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "(devel)"
	}
	return semver.Canonical(v)
}

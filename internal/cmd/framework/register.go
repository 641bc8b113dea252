// Package framework provides the read-only CLI commands that print the
// incident response framework: phases, show, search, export and check.
package framework

import "github.com/spf13/cobra"

// Register adds all framework commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(newPhasesCmd())
	parent.AddCommand(newShowCmd())
	parent.AddCommand(newSearchCmd())
	parent.AddCommand(newExportCmd())
	parent.AddCommand(newCheckCmd())
}

package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/irframe/internal/phase"
)

func newPhasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phases",
		Short: "List the incident response phases in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, rec := range phase.All() {
				fmt.Fprintf(out, "%d  %-15s %s\n", i+1, rec.ID, rec.Title)
			}
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	var withTooling bool

	cmd := &cobra.Command{
		Use:   "show <phase>",
		Short: "Print a phase and its required actions",
		Long: `Print a phase and its required actions.

The phase may be given by id, title or position:
  irframe show recovery
  irframe show "Post-Incident Analysis"
  irframe show 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := phase.ParseID(args[0])
			if err != nil {
				return fmt.Errorf("%w\nRun 'irframe phases' to list phases", err)
			}
			out := cmd.OutOrStdout()
			writePhase(out, phase.Get(id))
			if withTooling {
				fmt.Fprintln(out)
				writeTooling(out, phase.Tooling())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&withTooling, "tooling", "t", false, "also print the resources and tools")
	return cmd
}

func writePhase(w io.Writer, rec phase.Record) {
	fmt.Fprintln(w, rec.Title)
	fmt.Fprintln(w, strings.Repeat("=", len(rec.Title)))
	fmt.Fprintln(w, rec.Description)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Required Actions:")
	for _, action := range rec.Actions {
		fmt.Fprintf(w, "  [x] %s\n", action)
	}
}

func writeTooling(w io.Writer, blocks []phase.ToolingBlock) {
	fmt.Fprintln(w, "Resources & Tools:")
	for _, b := range blocks {
		fmt.Fprintf(w, "  %s\n", b.Heading)
		for _, tool := range b.Tools {
			fmt.Fprintf(w, "    - %s\n", tool)
		}
	}
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <pattern>",
		Short: "Find actions matching a glob pattern",
		Long: `Find actions matching a case-insensitive glob pattern.

A pattern without wildcards matches anywhere in the action:
  irframe search backup
  irframe search "isolate *"
  irframe search "*{logs,malware}*"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := phase.SearchActions(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintf(out, "No actions match %q\n", args[0])
				return nil
			}
			for _, m := range matches {
				fmt.Fprintf(out, "%-15s %d. %s\n", m.Phase, m.Index+1, m.Action)
			}
			return nil
		},
	}
}

package framework

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/irframe/internal/config"
	"github.com/Iron-Ham/irframe/internal/phase"
)

func newExportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the framework as YAML or JSON",
		Long: `Export every phase, its actions and the tooling reference.

The default format comes from export.format in the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = config.Get().Export.Format
			}
			if format == "" {
				format = phase.FormatYAML
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			if err := phase.Export().Encode(w, format); err != nil {
				return err
			}
			if output != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", output)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", phase.FormatYAML,
		"output format ("+strings.Join(phase.ValidFormats(), ", ")+")")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the framework content and the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if err := phase.Validate(); err != nil {
				return fmt.Errorf("framework content: %w", err)
			}
			fmt.Fprintf(out, "framework: %d phases OK\n", phase.Count)

			if _, err := config.Load(); err != nil {
				return fmt.Errorf("configuration: %w", err)
			}
			fmt.Fprintln(out, "configuration: OK")
			return nil
		},
	}
}

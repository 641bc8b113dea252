package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/irframe/internal/tui/styles"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage color themes",
	Long: `Manage color themes for the irframe TUI.

irframe supports both built-in themes and custom user-defined themes.
Custom themes are stored in the themes directory as YAML files and are
selected with 'irframe config set tui.theme <name>'.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available themes",
	RunE:  runThemeList,
}

var themeExportCmd = &cobra.Command{
	Use:   "export <theme-name> [output-file]",
	Short: "Export a theme to YAML",
	Long: `Export a theme to YAML format for customization or sharing.

If no output file is specified, the YAML is printed to stdout.

Examples:
  irframe theme export default               # Print default theme to stdout
  irframe theme export dracula my-theme.yaml # Save dracula theme to file`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runThemeExport,
}

var themePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the custom themes directory path",
	RunE:  runThemePath,
}

var themeCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new custom theme from the default palette",
	Long: `Create a new custom theme file in your themes directory.

Example:
  irframe theme create night-shift
  # Creates <config dir>/themes/night-shift.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeCreate,
}

func init() {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themePathCmd)
	themeCmd.AddCommand(themeCreateCmd)
}

// RegisterThemeCmd adds the theme command to the given parent command.
func RegisterThemeCmd(parent *cobra.Command) {
	parent.AddCommand(themeCmd)
}

// discoverThemes loads custom themes and reports load failures on w.
func discoverThemes(w io.Writer) []error {
	_, errs := styles.DiscoverCustomThemes()
	if len(errs) > 0 {
		fmt.Fprintln(w, "Warning: Some themes failed to load:")
		for _, err := range errs {
			fmt.Fprintf(w, "  - %v\n", err)
		}
		fmt.Fprintln(w)
	}
	return errs
}

func runThemeList(cmd *cobra.Command, args []string) error {
	discoverThemes(cmd.ErrOrStderr())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		fmt.Fprintf(out, "  - %s\n", name)
	}

	if custom := styles.CustomThemeNames(); len(custom) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Custom themes:")
		for _, name := range custom {
			theme := styles.GetCustomTheme(styles.ThemeName(name))
			if theme != nil && theme.Author != "" {
				fmt.Fprintf(out, "  - %s (by %s)\n", name, theme.Author)
			} else {
				fmt.Fprintf(out, "  - %s\n", name)
			}
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Custom themes directory: %s\n", styles.ThemesDir())
	return nil
}

// loadFailure returns the load error reported for the theme file name, if
// any.
func loadFailure(name string, errs []error) error {
	for _, err := range errs {
		msg := err.Error()
		if strings.HasPrefix(msg, name+".yaml:") || strings.HasPrefix(msg, name+".yml:") {
			return err
		}
	}
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	name := args[0]
	errs := discoverThemes(cmd.ErrOrStderr())

	if !styles.IsValidTheme(name) {
		if err := loadFailure(name, errs); err != nil {
			return fmt.Errorf("theme '%s' exists but failed to load: %w", name, err)
		}
		return fmt.Errorf("unknown theme: %s\n\nRun 'irframe theme list' to see available themes", name)
	}

	data, err := styles.ExportTheme(styles.ThemeName(name))
	if err != nil {
		return fmt.Errorf("exporting theme: %w", err)
	}

	if len(args) > 1 {
		outputPath := args[1]
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("writing to %s: %w", outputPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme exported to: %s\n", outputPath)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runThemePath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	themesDir := styles.ThemesDir()
	fmt.Fprintln(out, themesDir)

	if _, err := os.Stat(themesDir); os.IsNotExist(err) {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Note: This directory does not exist yet.")
		fmt.Fprintln(out, "It will be created when you add your first custom theme.")
	}
	return nil
}

func runThemeCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	if strings.ContainsAny(name, "/\\:*?\"<>| ") {
		return fmt.Errorf("theme name contains invalid characters")
	}
	if styles.IsBuiltinTheme(name) {
		return fmt.Errorf("cannot create custom theme with built-in name '%s'", name)
	}

	themePath := filepath.Join(styles.ThemesDir(), name+".yaml")
	if _, err := os.Stat(themePath); err == nil {
		return fmt.Errorf("theme '%s' already exists at %s", name, themePath)
	}

	p := styles.DefaultPalette()
	theme := &styles.ThemeFile{
		Name:        name,
		Description: "A custom irframe theme",
		Version:     styles.ThemeFileVersion,
		Colors: styles.ThemeColors{
			Accent:       string(p.Accent),
			Background:   string(p.Background),
			Surface:      string(p.Surface),
			Border:       string(p.Border),
			Text:         string(p.Text),
			Muted:        string(p.Muted),
			AccentStrong: string(p.AccentStrong),
			OnAccent:     string(p.OnAccent),
			Warning:      string(p.Warning),
			Error:        string(p.Error),
		},
	}
	if err := styles.SaveTheme(name, theme); err != nil {
		return fmt.Errorf("creating theme: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created new theme: %s\n", themePath)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "To use your new theme, run:")
	fmt.Fprintf(out, "  irframe config set tui.theme %s\n", name)
	return nil
}

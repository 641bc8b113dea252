// Package config provides CLI commands for managing irframe configuration
// and color themes.
package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	appconfig "github.com/Iron-Ham/irframe/internal/config"
	"github.com/Iron-Ham/irframe/internal/tui/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify irframe configuration",
	Long: `View or modify irframe configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  irframe config set tui.theme nord
  irframe config set tui.show_tooling false
  irframe config set logging.enabled true

Valid keys:
  tui.theme            - Color theme (see 'irframe theme list')
  tui.show_tooling     - Show the resources and tools blocks (true/false)
  tui.show_help        - Start with full key help (true/false)
  tui.alt_screen       - Use the alternate screen (true/false)
  tui.mouse            - Enable mouse selection (true/false)
  tui.icons            - Glyph set: unicode, ascii
  tui.max_width        - Maximum layout width, 0 for the full terminal
  logging.enabled      - Write a debug log (true/false)
  logging.level        - Log level: debug, info, warn, error
  logging.dir          - Log directory
  logging.max_size_mb  - Rotate the log at this size, 0 disables rotation
  logging.max_backups  - Rotated logs to keep
  logging.compress     - Gzip rotated logs (true/false)
  export.format        - Default export format: yaml, json`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at $XDG_CONFIG_HOME/irframe/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// Register adds the config command to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
}

// keyKind is the value type accepted by a settable key.
type keyKind int

const (
	kindString keyKind = iota
	kindBool
	kindInt
)

var settableKeys = map[string]keyKind{
	"tui.theme":           kindString,
	"tui.show_tooling":    kindBool,
	"tui.show_help":       kindBool,
	"tui.alt_screen":      kindBool,
	"tui.mouse":           kindBool,
	"tui.icons":           kindString,
	"tui.max_width":       kindInt,
	"logging.enabled":     kindBool,
	"logging.level":       kindString,
	"logging.dir":         kindString,
	"logging.max_size_mb": kindInt,
	"logging.max_backups": kindInt,
	"logging.compress":    kindBool,
	"export.format":       kindString,
}

// SettableKeys returns the keys accepted by 'config set', sorted.
func SettableKeys() []string {
	keys := make([]string, 0, len(settableKeys))
	for k := range settableKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg := appconfig.Get()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "# Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintln(out, "# Config file: (none - using defaults)")
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

// parseValue converts value to the type expected for key.
func parseValue(key, value string) (any, error) {
	kind, ok := settableKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'irframe config set --help' to see valid keys", key)
	}

	switch kind {
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return b, nil
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		return n, nil
	default:
		return value, nil
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := strings.ToLower(args[0]), args[1]

	typedValue, err := parseValue(key, value)
	if err != nil {
		return err
	}

	if key == "tui.theme" {
		_, _ = styles.DiscoverCustomThemes()
		if !styles.IsValidTheme(value) {
			return fmt.Errorf("unknown theme: %s\nValid themes: %s", value, strings.Join(styles.ValidThemes(), ", "))
		}
	}

	// Validate the whole config with the new value before writing it
	prev := viper.Get(key)
	viper.Set(key, typedValue)
	if _, err := appconfig.Load(); err != nil {
		viper.Set(key, prev)
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	// Ensure config directory exists
	if err := os.MkdirAll(appconfig.ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = appconfig.ConfigFile()
	}
	if err := writeConfigKey(configFile, key, typedValue); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}

// writeConfigKey sets key in configFile, keeping the keys already in the
// file. Only the file's contents are written back: defaults, environment
// overrides and the --config flag stay out of it.
func writeConfigKey(configFile, key string, value any) error {
	fileCfg := viper.New()
	fileCfg.SetConfigFile(configFile)
	if _, err := os.Stat(configFile); err == nil {
		if err := fileCfg.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	fileCfg.Set(key, value)
	if err := fileCfg.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// defaultConfigFile is the commented template written by 'config init'.
const defaultConfigFile = `# irframe configuration
# Every key can be overridden with an IRFRAME_ environment variable,
# e.g. IRFRAME_TUI_THEME=nord.

# Terminal UI settings
tui:
  # Color theme: a built-in name or a custom theme from the themes directory
  theme: default
  # Show the "Resources & Tools" blocks (toggle with t)
  show_tooling: true
  # Start with the full key help expanded (toggle with ?)
  show_help: false
  # Use the terminal's alternate screen
  alt_screen: true
  # Click on a phase button to select it
  mouse: true
  # Glyph set: unicode or ascii
  icons: unicode
  # Maximum layout width in columns, 0 uses the full terminal
  max_width: 0

# Debug logging (JSON lines)
logging:
  enabled: false
  # debug, info, warn or error
  level: info
  # Empty means <config dir>/logs
  dir: ""
  # Rotate at this size, 0 disables rotation
  max_size_mb: 10
  max_backups: 3
  compress: false

# Defaults for 'irframe export'
export:
  # yaml or json
  format: yaml
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := appconfig.ConfigDir()
	configFile := appconfig.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'irframe config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configFile, []byte(defaultConfigFile), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize irframe. The TUI picks up changes while running.")
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "Active config: %s\n", used)
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", appconfig.ConfigFile())
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", appconfig.ConfigFile())
	fmt.Fprintln(out, "  2. ./config.yaml (current directory)")

	fmt.Fprintf(out, "\nEnvironment variables: %s_* (e.g., %s)\n",
		strings.ToUpper(appconfig.AppName), envName("tui.theme"))
	return nil
}

// envName returns the environment variable that overrides key.
func envName(key string) string {
	return strings.ToUpper(appconfig.AppName + "_" + strings.ReplaceAll(key, ".", "_"))
}

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// AppName is used for the config directory, env prefix and log file name.
const AppName = "irframe"

// Config represents the complete irframe configuration
type Config struct {
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Export  ExportConfig  `mapstructure:"export" yaml:"export"`
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	// Theme is the color theme, built-in or custom (default: "default")
	Theme string `mapstructure:"theme" yaml:"theme"`
	// ShowTooling shows the "Resources & Tools" blocks under the actions (default: true)
	ShowTooling bool `mapstructure:"show_tooling" yaml:"show_tooling"`
	// ShowHelp starts with the full key help expanded (default: false)
	ShowHelp bool `mapstructure:"show_help" yaml:"show_help"`
	// AltScreen runs the TUI in the terminal's alternate screen (default: true)
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen"`
	// Mouse enables clicking on the phase picker (default: true)
	Mouse bool `mapstructure:"mouse" yaml:"mouse"`
	// Icons selects the glyph set: "unicode" or "ascii" (default: "unicode")
	Icons string `mapstructure:"icons" yaml:"icons"`
	// MaxWidth caps the layout width in columns, 0 = use the full terminal (default: 0)
	MaxWidth int `mapstructure:"max_width" yaml:"max_width"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether logs are written (default: false)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is the directory for irframe.log. Empty means <config dir>/logs.
	Dir string `mapstructure:"dir" yaml:"dir"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of rotated files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
	// Compress gzips rotated files (default: false)
	Compress bool `mapstructure:"compress" yaml:"compress"`
}

// ExportConfig controls the export command
type ExportConfig struct {
	// Format is the default export format: "yaml" or "json" (default: "yaml")
	Format string `mapstructure:"format" yaml:"format"`
}

// ResolveDir returns the log directory, expanding ~ and defaulting to
// <config dir>/logs.
func (l *LoggingConfig) ResolveDir() string {
	if l.Dir == "" {
		return filepath.Join(ConfigDir(), "logs")
	}

	path := l.Dir
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}
	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			Theme:       "default",
			ShowTooling: true,
			ShowHelp:    false,
			AltScreen:   true,
			Mouse:       true,
			Icons:       "unicode",
			MaxWidth:    0,
		},
		Logging: LoggingConfig{
			Enabled:    false,
			Level:      "info",
			Dir:        "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   false,
		},
		Export: ExportConfig{
			Format: "yaml",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.show_tooling", defaults.TUI.ShowTooling)
	viper.SetDefault("tui.show_help", defaults.TUI.ShowHelp)
	viper.SetDefault("tui.alt_screen", defaults.TUI.AltScreen)
	viper.SetDefault("tui.mouse", defaults.TUI.Mouse)
	viper.SetDefault("tui.icons", defaults.TUI.Icons)
	viper.SetDefault("tui.max_width", defaults.TUI.MaxWidth)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)

	// Export defaults
	viper.SetDefault("export.format", defaults.Export.Format)
}

// BindEnv lets IRFRAME_* environment variables override config keys.
// Dots become underscores, e.g. IRFRAME_TUI_THEME for tui.theme.
func BindEnv() {
	viper.SetEnvPrefix(strings.ToUpper(AppName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling or validation fails
		return Default()
	}
	return cfg
}

// Watch starts watching the config file in use and calls onChange with the
// reloaded configuration after every write. Invalid edits are reported
// through onError and leave the previous configuration in effect. Watch is
// a no-op when no config file was read.
func Watch(onChange func(*Config), onError func(error)) {
	if viper.ConfigFileUsed() == "" {
		return
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := Load()
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		if onChange != nil {
			onChange(cfg)
		}
	})
	viper.WatchConfig()
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidIconSets returns the list of valid glyph sets
func ValidIconSets() []string {
	return []string{"unicode", "ascii"}
}

// ValidExportFormats returns the list of valid export formats
func ValidExportFormats() []string {
	return []string{"yaml", "json"}
}

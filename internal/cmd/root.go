// Package cmd implements the irframe command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfgcmd "github.com/Iron-Ham/irframe/internal/cmd/config"
	"github.com/Iron-Ham/irframe/internal/cmd/framework"
	"github.com/Iron-Ham/irframe/internal/config"
	"github.com/Iron-Ham/irframe/internal/logging"
	"github.com/Iron-Ham/irframe/internal/tui"
	"github.com/Iron-Ham/irframe/internal/tui/styles"
)

var rootCmd = &cobra.Command{
	Use:   "irframe",
	Short: "Incident response framework in the terminal",
	Long: `irframe shows the five phases of incident response (identification,
containment, resolution, recovery and post-incident analysis) with the
required actions for each and a reference list of tooling.

Run without arguments to open the interactive view. Subcommands print the
same content for scripts and pipes.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: applyGlobalFlags,
	RunE:              runTUI,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $XDG_CONFIG_HOME/irframe/config.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	framework.Register(rootCmd)
	cfgcmd.Register(rootCmd)
	cfgcmd.RegisterThemeCmd(rootCmd)
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	// IRFRAME_TUI_THEME overrides tui.theme, and so on
	config.BindEnv()

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func applyGlobalFlags(cmd *cobra.Command, args []string) error {
	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return err
	}
	if noColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return nil
}

// newLogger builds the file logger described by cfg. A disabled logging
// section yields a logger that discards everything, so the TUI never
// writes to the terminal it is drawing on.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	rc := logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Compress:   cfg.Logging.Compress,
	}
	logger, err := logging.NewLoggerWithRotation(cfg.Logging.ResolveDir(), logging.ParseLevel(cfg.Logging.Level), rc)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	return logger, nil
}

// loadConfig returns the validated configuration. Invalid settings are
// reported on stderr and replaced by defaults.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: ignoring invalid configuration: %v\n", err)
		return config.Default()
	}
	return cfg
}

// prepareThemes registers custom themes and activates the configured one.
// Problems are warnings: the TUI still starts with the default theme.
func prepareThemes(cmd *cobra.Command, cfg *config.Config, logger *logging.Logger) {
	loaded, errs := styles.DiscoverCustomThemes()
	for _, err := range errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: theme not loaded: %v\n", err)
		logger.Warn("theme not loaded", "error", err.Error())
	}
	if len(loaded) > 0 {
		logger.Debug("custom themes loaded", "themes", loaded)
	}

	if err := styles.ApplyTheme(cfg.TUI.Theme); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v, using default theme\n", err)
		logger.Warn("theme not applied", "theme", cfg.TUI.Theme, "error", err.Error())
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	prepareThemes(cmd, cfg, logger)

	if viper.ConfigFileUsed() != "" {
		logger.Info("config loaded", "file", viper.ConfigFileUsed())
	}

	return tui.New(cfg, logger).Run()
}

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appconfig "github.com/Iron-Ham/irframe/internal/config"
	"github.com/Iron-Ham/irframe/internal/testutil"
)

// runCmd calls fn with c's output captured.
func runCmd(t *testing.T, c *cobra.Command, fn func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	c.SetOut(buf)
	c.SetErr(buf)
	t.Cleanup(func() {
		c.SetOut(nil)
		c.SetErr(nil)
	})

	err := fn(c, args)
	return buf.String(), err
}

// setupConfig isolates the config directory and registers defaults the way
// the root command does.
func setupConfig(t *testing.T) string {
	t.Helper()
	xdg := testutil.IsolateConfig(t)
	appconfig.SetDefaults()
	return xdg
}

func TestRunConfigShow(t *testing.T) {
	setupConfig(t)

	out, err := runCmd(t, configShowCmd, runConfigShow)
	if err != nil {
		t.Fatalf("runConfigShow() error = %v", err)
	}

	for _, want := range []string{"(none - using defaults)", "theme: default", "show_tooling: true", "format: yaml"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunConfigInit(t *testing.T) {
	xdg := setupConfig(t)

	out, err := runCmd(t, configInitCmd, runConfigInit)
	if err != nil {
		t.Fatalf("runConfigInit() error = %v", err)
	}

	path := filepath.Join(xdg, "irframe", "config.yaml")
	if !strings.Contains(out, path) {
		t.Errorf("output should name %s, got %q", path, out)
	}

	// The template must load cleanly
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("generated config does not parse: %v", err)
	}
	cfg, err := appconfig.Load()
	if err != nil {
		t.Fatalf("generated config does not validate: %v", err)
	}
	if *cfg != *appconfig.Default() {
		t.Errorf("generated config = %+v, want defaults", *cfg)
	}

	if _, err := runCmd(t, configInitCmd, runConfigInit); err == nil {
		t.Error("second init should fail because the file exists")
	}
}

func TestRunConfigSet(t *testing.T) {
	xdg := setupConfig(t)

	out, err := runCmd(t, configSetCmd, runConfigSet, "tui.show_tooling", "false")
	if err != nil {
		t.Fatalf("runConfigSet() error = %v", err)
	}
	if !strings.Contains(out, "Set tui.show_tooling = false") {
		t.Errorf("unexpected output: %q", out)
	}

	data, err := os.ReadFile(filepath.Join(xdg, "irframe", "config.yaml"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "show_tooling: false") {
		t.Errorf("config file missing the new value:\n%s", data)
	}
}

func TestRunConfigSet_WritesOnlyFileKeys(t *testing.T) {
	xdg := setupConfig(t)
	path := testutil.WriteConfig(t, xdg, "tui:\n  theme: nord\n")

	// Mirror the root command: --config bound into viper, env overrides on.
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error = %v", err)
	}
	viper.Set("config", path)
	t.Setenv("IRFRAME_LOGGING_ENABLED", "true")
	appconfig.BindEnv()

	if _, err := runCmd(t, configSetCmd, runConfigSet, "tui.icons", "ascii"); err != nil {
		t.Fatalf("runConfigSet() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	got := string(data)
	for _, want := range []string{"icons: ascii", "theme: nord"} {
		if !strings.Contains(got, want) {
			t.Errorf("config file missing %q:\n%s", want, got)
		}
	}
	for _, leaked := range []string{"config:", "logging:", "enabled:", "export:"} {
		if strings.Contains(got, leaked) {
			t.Errorf("config file should not contain %q:\n%s", leaked, got)
		}
	}
}

func TestRunConfigSet_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"unknown key", "tui.colour", "red", "unknown configuration key"},
		{"bad bool", "tui.mouse", "sometimes", "expected true or false"},
		{"bad int", "tui.max_width", "wide", "expected integer"},
		{"negative size", "logging.max_size_mb", "-1", "must be non-negative"},
		{"bad level", "logging.level", "loud", "must be one of"},
		{"bad icons", "tui.icons", "emoji", "must be one of"},
		{"unknown theme", "tui.theme", "no-such-theme", "unknown theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xdg := setupConfig(t)

			_, err := runCmd(t, configSetCmd, runConfigSet, tt.key, tt.value)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
			if _, err := os.Stat(filepath.Join(xdg, "irframe", "config.yaml")); !os.IsNotExist(err) {
				t.Error("config file should not be written for an invalid value")
			}
		})
	}
}

func TestRunConfigPath(t *testing.T) {
	xdg := setupConfig(t)

	out, err := runCmd(t, configPathCmd, runConfigPath)
	if err != nil {
		t.Fatalf("runConfigPath() error = %v", err)
	}
	if !strings.Contains(out, filepath.Join(xdg, "irframe", "config.yaml")) {
		t.Errorf("output missing config path:\n%s", out)
	}
	if !strings.Contains(out, "IRFRAME_TUI_THEME") {
		t.Errorf("output missing env example:\n%s", out)
	}
}

func TestSettableKeysAreDefaults(t *testing.T) {
	setupConfig(t)
	for _, key := range SettableKeys() {
		if !viper.IsSet(key) {
			t.Errorf("settable key %s has no default", key)
		}
	}
}

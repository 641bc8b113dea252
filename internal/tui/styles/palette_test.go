package styles

import (
	"slices"
	"testing"
)

func TestValidThemes(t *testing.T) {
	ClearCustomThemes()
	t.Cleanup(ClearCustomThemes)

	themes := ValidThemes()
	if len(themes) != len(BuiltinThemes()) {
		t.Errorf("ValidThemes() = %d themes, want %d built-ins", len(themes), len(BuiltinThemes()))
	}

	RegisterCustomTheme("incident-night", &ThemeFile{Name: "Incident Night", Version: "1"})
	if !slices.Contains(ValidThemes(), "incident-night") {
		t.Error("ValidThemes() should include registered custom themes")
	}
}

func TestIsValidTheme(t *testing.T) {
	ClearCustomThemes()
	t.Cleanup(ClearCustomThemes)

	tests := []struct {
		name  string
		theme string
		want  bool
	}{
		{"default", "default", true},
		{"nord", "nord", true},
		{"high contrast", "high-contrast", true},
		{"uppercase is not a theme", "Nord", false},
		{"empty", "", false},
		{"unknown", "vaporwave", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTheme(tt.theme); got != tt.want {
				t.Errorf("IsValidTheme(%q) = %v, want %v", tt.theme, got, tt.want)
			}
		})
	}
}

func TestBuiltinPalettesComplete(t *testing.T) {
	for _, name := range BuiltinThemes() {
		t.Run(name, func(t *testing.T) {
			fn, ok := builtinPalettes[ThemeName(name)]
			if !ok {
				t.Fatalf("no palette registered for %q", name)
			}
			p := fn()
			colors := map[string]string{
				"Accent":       string(p.Accent),
				"AccentStrong": string(p.AccentStrong),
				"OnAccent":     string(p.OnAccent),
				"Background":   string(p.Background),
				"Surface":      string(p.Surface),
				"Border":       string(p.Border),
				"Text":         string(p.Text),
				"Muted":        string(p.Muted),
				"Warning":      string(p.Warning),
				"Error":        string(p.Error),
			}
			for field, c := range colors {
				if !isValidHexColor(c) {
					t.Errorf("%s.%s = %q, want a hex color", name, field, c)
				}
			}
		})
	}

	if len(builtinPalettes) != len(BuiltinThemes()) {
		t.Errorf("builtinPalettes has %d entries, BuiltinThemes() has %d", len(builtinPalettes), len(BuiltinThemes()))
	}
}

func TestDefaultPaletteIsEmerald(t *testing.T) {
	p := DefaultPalette()
	if p.Accent != "#10B981" {
		t.Errorf("Accent = %q, want #10B981", p.Accent)
	}
	if p.AccentStrong != "#059669" {
		t.Errorf("AccentStrong = %q, want #059669", p.AccentStrong)
	}
	if p.Background != "#111827" {
		t.Errorf("Background = %q, want #111827", p.Background)
	}
}

func TestGetPalette(t *testing.T) {
	ClearCustomThemes()
	t.Cleanup(ClearCustomThemes)

	if got := GetPalette(ThemeNord); got.Accent != NordPalette().Accent {
		t.Errorf("GetPalette(nord).Accent = %q, want %q", got.Accent, NordPalette().Accent)
	}
	if got := GetPalette("missing"); got.Accent != DefaultPalette().Accent {
		t.Errorf("GetPalette(missing) should fall back to default, got accent %q", got.Accent)
	}
}

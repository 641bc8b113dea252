package view

import "github.com/Iron-Ham/irframe/internal/phase"

// IconSet selects how phase.Icon values are drawn.
type IconSet string

const (
	IconsUnicode IconSet = "unicode"
	IconsASCII   IconSet = "ascii"
)

// All glyphs are a single terminal column wide so layout math holds on
// terminals without emoji support.
var glyphs = map[IconSet]map[phase.Icon]string{
	IconsUnicode: {
		phase.IconSearch:        "⌕",
		phase.IconShield:        "◆",
		phase.IconAlertTriangle: "▲",
		phase.IconRefresh:       "↻",
		phase.IconFileSearch:    "≡",
		phase.IconShieldCheck:   "◈",
		phase.IconCheckCircle:   "✓",
	},
	IconsASCII: {
		phase.IconSearch:        "?",
		phase.IconShield:        "#",
		phase.IconAlertTriangle: "!",
		phase.IconRefresh:       "~",
		phase.IconFileSearch:    "=",
		phase.IconShieldCheck:   "+",
		phase.IconCheckCircle:   "*",
	},
}

// ParseIconSet maps a config value to an IconSet, defaulting to unicode.
func ParseIconSet(s string) IconSet {
	if IconSet(s) == IconsASCII {
		return IconsASCII
	}
	return IconsUnicode
}

// Glyph returns the glyph for icon in the set. Unknown icons render as a
// bullet.
func (s IconSet) Glyph(icon phase.Icon) string {
	set, ok := glyphs[s]
	if !ok {
		set = glyphs[IconsUnicode]
	}
	if g, ok := set[icon]; ok {
		return g
	}
	if s == IconsASCII {
		return "-"
	}
	return "•"
}

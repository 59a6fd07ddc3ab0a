package ui

// iconFallback is drawn for icon names with no glyph.
const iconFallback = "?"

var icons = map[string]string{
	"CheckCircle":  "●",
	"CheckCircle2": "✔",
	"Circle":       "○",
	"Trash2":       "✗",
	"Plus":         "+",
	"Menu":         "≡",
	"Filter":       "⚲",
	"Zap":          "⚡",
	"BarChart3":    "▤",
	"HelpCircle":   iconFallback,
}

// Icon returns the glyph for name, or the HelpCircle glyph when name is unknown.
func Icon(name string) string {
	if g, ok := icons[name]; ok {
		return g
	}
	return iconFallback
}

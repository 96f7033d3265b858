package colors

// Theme is a named background/footer combination the copy model may pick.
// Anything outside this set falls back to DefaultTheme during normalization.
type Theme string

const (
	ThemeBlueOrange Theme = "blue_orange"
	ThemeGreenGold  Theme = "green_gold"
	ThemeRedYellow  Theme = "red_yellow"
	ThemeYellowBlue Theme = "yellow_blue"

	DefaultTheme = ThemeBlueOrange
)

// Known reports whether t is one of the four poster themes.
func Known(t Theme) bool {
	switch t {
	case ThemeBlueOrange, ThemeGreenGold, ThemeRedYellow, ThemeYellowBlue:
		return true
	}
	return false
}

// roleTable maps symbolic color names used in the model's text_colors
// record to concrete hex values.
var roleTable = map[string]string{
	"dark_blue":  "#0f172a",
	"navy":       "#0f172a",
	"blue":       "#1d4ed8",
	"sky_blue":   "#0ea5e9",
	"dark_green": "#166534",
	"green":      "#16a34a",
	"red":        "#b91c1c",
	"maroon":     "#7f1d1d",
	"orange":     "#ea580c",
	"gold":       "#facc15",
	"black":      "#111827",
	"dark_gray":  "#374151",
	"white":      "#f9fafb",
}

// FromName resolves a symbolic color name to a hex value.
// Unmapped names return the caller-supplied fallback; never fails.
func FromName(name string, fallback string) string {
	if c, ok := roleTable[name]; ok {
		return c
	}
	return fallback
}

// ThemeColors returns the (top, bottom, footer) triple for a theme.
// Unknown themes get the blue_orange default triple.
func ThemeColors(theme Theme) (top, bottom, footer string) {
	switch theme {
	case ThemeGreenGold:
		return "#e8f7eb", "#fef6d8", "#14532d"
	case ThemeRedYellow:
		return "#fee2e2", "#fef9c3", "#7f1d1d"
	case ThemeYellowBlue:
		return "#fef9c3", "#dbeafe", "#1e3a8a"
	}
	// default blue_orange
	return "#e0f2fe", "#ffedd5", "#0f172a"
}

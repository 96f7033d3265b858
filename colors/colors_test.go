package colors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"poster-studio/colors"
)

func TestFromName(t *testing.T) {
	assert.Equal(t, "#0f172a", colors.FromName("navy", "#000000"))
	assert.Equal(t, "#0f172a", colors.FromName("dark_blue", "#000000"))
	assert.Equal(t, "#b91c1c", colors.FromName("red", "#000000"))

	// unmapped names resolve to the caller's fallback
	assert.Equal(t, "#000000", colors.FromName("unknown_color", "#000000"))
	assert.Equal(t, "#111827", colors.FromName("", "#111827"))
}

func TestThemeColors(t *testing.T) {
	top, bottom, footer := colors.ThemeColors(colors.ThemeGreenGold)
	assert.Equal(t, "#e8f7eb", top)
	assert.Equal(t, "#fef6d8", bottom)
	assert.Equal(t, "#14532d", footer)

	top, bottom, footer = colors.ThemeColors(colors.ThemeRedYellow)
	assert.Equal(t, "#fee2e2", top)
	assert.Equal(t, "#fef9c3", bottom)
	assert.Equal(t, "#7f1d1d", footer)

	// unknown themes fall back to the blue_orange triple
	top, bottom, footer = colors.ThemeColors(colors.Theme("purple_pink"))
	defTop, defBottom, defFooter := colors.ThemeColors(colors.ThemeBlueOrange)
	assert.Equal(t, defTop, top)
	assert.Equal(t, defBottom, bottom)
	assert.Equal(t, defFooter, footer)
}

func TestKnown(t *testing.T) {
	assert.True(t, colors.Known(colors.ThemeYellowBlue))
	assert.False(t, colors.Known(colors.Theme("purple_pink")))
	assert.False(t, colors.Known(colors.Theme("")))
}

package copywriter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"poster-studio/copywriter"
)

// Distinctive lines of each style block, used to prove exactly one
// block made it into the prompt.
var styleMarkers = map[copywriter.StyleMode]string{
	copywriter.StyleStandard:     "friendly and emotional",
	copywriter.StyleConversation: "SHORT conversation",
	copywriter.StyleFactBased:    "facts or scenarios",
}

func TestBuildPromptHasExactlyOneStyleBlock(t *testing.T) {
	for _, mode := range copywriter.StyleModes {
		prompt := copywriter.BuildPrompt(mode)
		assert.Equal(t, 1, strings.Count(prompt, "STYLE:"), "mode %s", mode)
		assert.Contains(t, prompt, styleMarkers[mode], "mode %s", mode)

		for other, marker := range styleMarkers {
			if other == mode {
				continue
			}
			assert.NotContains(t, prompt, marker, "mode %s leaked %s block", mode, other)
		}
	}
}

func TestBuildPromptUnknownModeGetsDefaultBlock(t *testing.T) {
	prompt := copywriter.BuildPrompt(copywriter.StyleMode("Whatever"))
	assert.Equal(t, 1, strings.Count(prompt, "STYLE:"))
	assert.Contains(t, prompt, styleMarkers[copywriter.StyleStandard])
}

func TestBuildPromptContract(t *testing.T) {
	prompt := copywriter.BuildPrompt(copywriter.StyleStandard)

	// layout constraints
	assert.Contains(t, prompt, "width: 1080 px")
	assert.Contains(t, prompt, "height: 1080 px")
	assert.Contains(t, prompt, "bottom 210 px: RESERVED")

	// per-field limits
	assert.Contains(t, prompt, "headline_ta: at most 22-25")
	assert.Contains(t, prompt, "cta_line_ta: short CTA, max 60")

	// JSON contract with its closed enumerations
	assert.Contains(t, prompt, `"bullet_points_ta": ["...", "...", "..."]`)
	assert.Contains(t, prompt, `"blue_orange" | "green_gold" | "red_yellow" | "yellow_blue"`)
	assert.Contains(t, prompt, "no extra text, no explanation, no markdown")
}

func TestParseStyleMode(t *testing.T) {
	assert.Equal(t, copywriter.StyleConversation, copywriter.ParseStyleMode("Conversation"))
	assert.Equal(t, copywriter.StyleFactBased, copywriter.ParseStyleMode("FactBased"))
	assert.Equal(t, copywriter.StyleStandard, copywriter.ParseStyleMode("Standard"))

	// exact match only, everything else is Standard
	assert.Equal(t, copywriter.StyleStandard, copywriter.ParseStyleMode("conversation"))
	assert.Equal(t, copywriter.StyleStandard, copywriter.ParseStyleMode(""))
}

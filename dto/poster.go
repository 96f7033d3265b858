package dto

import "poster-studio/copywriter"

// StyleDTO exposes one selectable copy style to the form.
type StyleDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var styleLabels = map[copywriter.StyleMode]string{
	copywriter.StyleStandard:     "Standard marketing",
	copywriter.StyleConversation: "Conversation",
	copywriter.StyleFactBased:    "Fact-based awareness",
}

// NewStyleDTOs lists the supported style modes in display order.
func NewStyleDTOs() []StyleDTO {
	out := make([]StyleDTO, 0, len(copywriter.StyleModes))
	for _, mode := range copywriter.StyleModes {
		out = append(out, StyleDTO{Value: string(mode), Label: styleLabels[mode]})
	}
	return out
}

// ErrorDTO is the uniform error body for failed requests.
type ErrorDTO struct {
	Error string `json:"error"`
}

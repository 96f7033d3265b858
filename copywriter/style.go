package copywriter

// StyleMode selects the tone and format of the generated poster copy.
// It is chosen once per generation request and never changes mid-flight.
type StyleMode string

const (
	StyleStandard     StyleMode = "Standard"
	StyleConversation StyleMode = "Conversation"
	StyleFactBased    StyleMode = "FactBased"
)

// StyleModes lists the supported modes in form-display order.
var StyleModes = []StyleMode{StyleStandard, StyleConversation, StyleFactBased}

// ParseStyleMode maps a form value to a StyleMode by exact match.
// Unrecognized values resolve to StyleStandard.
func ParseStyleMode(s string) StyleMode {
	switch StyleMode(s) {
	case StyleConversation:
		return StyleConversation
	case StyleFactBased:
		return StyleFactBased
	default:
		return StyleStandard
	}
}

package copywriter

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"poster-studio/colors"
)

// Default text color roles applied when the model omits them.
const (
	DefaultHeadlineColor = "dark_blue"
	DefaultBodyColor     = "black"
	DefaultCTAColor      = "red"
)

// TextColors names the three color roles of the poster text.
type TextColors struct {
	Headline string `json:"headline"`
	Body     string `json:"body"`
	CTA      string `json:"cta"`
}

// PosterCopy is the structured copy produced by one generation request.
// After Normalize it always carries a known theme, at most 3 bullets
// and all three text color roles.
type PosterCopy struct {
	Headline      string       `json:"headline_ta"`
	Subheadline   string       `json:"subheadline_ta"`
	BodyParagraph string       `json:"body_paragraph_ta"`
	BulletPoints  bulletList   `json:"bullet_points_ta"`
	CTALine       string       `json:"cta_line_ta"`
	ColorTheme    colors.Theme `json:"color_theme"`
	TextColors    TextColors   `json:"text_colors"`
}

// UnmarshalJSON decodes every field through the tolerant types below:
// once the object itself parses, a wrong-typed field is a defaulting
// problem for Normalize, never a parse failure.
func (c *PosterCopy) UnmarshalJSON(data []byte) error {
	var raw struct {
		Headline      tolerantString `json:"headline_ta"`
		Subheadline   tolerantString `json:"subheadline_ta"`
		BodyParagraph tolerantString `json:"body_paragraph_ta"`
		BulletPoints  bulletList     `json:"bullet_points_ta"`
		CTALine       tolerantString `json:"cta_line_ta"`
		ColorTheme    tolerantString `json:"color_theme"`
		TextColors    TextColors     `json:"text_colors"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = PosterCopy{
		Headline:      string(raw.Headline),
		Subheadline:   string(raw.Subheadline),
		BodyParagraph: string(raw.BodyParagraph),
		BulletPoints:  raw.BulletPoints,
		CTALine:       string(raw.CTALine),
		ColorTheme:    colors.Theme(raw.ColorTheme),
		TextColors:    raw.TextColors,
	}
	return nil
}

// UnmarshalJSON zeroes the record when text_colors is not an object,
// so Normalize fills all three roles with their defaults.
func (tc *TextColors) UnmarshalJSON(data []byte) error {
	var raw struct {
		Headline tolerantString `json:"headline"`
		Body     tolerantString `json:"body"`
		CTA      tolerantString `json:"cta"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*tc = TextColors{}
		return nil
	}
	tc.Headline = string(raw.Headline)
	tc.Body = string(raw.Body)
	tc.CTA = string(raw.CTA)
	return nil
}

// bulletList tolerates a scalar where an array is expected: the model
// sometimes returns a single string instead of three bullets.
type bulletList []string

func (b *bulletList) UnmarshalJSON(data []byte) error {
	var arr []any
	if err := json.Unmarshal(data, &arr); err == nil {
		out := make(bulletList, 0, len(arr))
		for _, v := range arr {
			out = append(out, stringify(v))
		}
		*b = out
		return nil
	}

	var single any
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == nil {
		*b = nil
		return nil
	}
	*b = bulletList{stringify(single)}
	return nil
}

// tolerantString stringifies a scalar where a string is expected and
// drops objects and arrays to "", leaving the defaulting to Normalize.
type tolerantString string

func (s *tolerantString) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v.(type) {
	case nil, map[string]any, []any:
		*s = ""
	default:
		*s = tolerantString(stringify(v))
	}
	return nil
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

var fencedJSON = regexp.MustCompile("(?is)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// extractJSON locates the candidate JSON object in raw model output.
// It tries a fenced code block first, then falls back to balanced-brace
// matching from the first '{'. The boolean tags whether anything was found.
func extractJSON(raw string) (string, bool) {
	if m := fencedJSON.FindStringSubmatch(raw); m != nil {
		return m[1], true
	}

	start := strings.IndexByte(raw, '{')
	if start == -1 {
		return "", false
	}
	depth := 0
	for i := start; i < len(raw); i++ {
		switch raw[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}
	// Object never closes: hand the tail to the decoder so the
	// failure reports the malformed JSON rather than its absence.
	return raw[start:], true
}

// Normalize clamps and defaults the fields of a parsed PosterCopy.
// Calling it on an already-normalized copy is a no-op.
func Normalize(c *PosterCopy) {
	if !colors.Known(c.ColorTheme) {
		c.ColorTheme = colors.DefaultTheme
	}

	if len(c.BulletPoints) > 3 {
		c.BulletPoints = c.BulletPoints[:3]
	}

	if c.TextColors.Headline == "" {
		c.TextColors.Headline = DefaultHeadlineColor
	}
	if c.TextColors.Body == "" {
		c.TextColors.Body = DefaultBodyColor
	}
	if c.TextColors.CTA == "" {
		c.TextColors.CTA = DefaultCTAColor
	}
}

// ParseResponse turns raw model output into a normalized PosterCopy.
// Failures keep the offending text so the operator can see what the
// model actually said.
func ParseResponse(raw string) (*PosterCopy, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, &ParseError{Kind: ErrEmptyResponse, Text: raw}
	}

	candidate, ok := extractJSON(raw)
	if !ok {
		return nil, &ParseError{Kind: ErrNoJSONFound, Text: raw}
	}

	var c PosterCopy
	if err := json.Unmarshal([]byte(candidate), &c); err != nil {
		return nil, &ParseError{Kind: ErrInvalidJSON, Text: candidate, Err: err}
	}

	Normalize(&c)
	return &c, nil
}

package copywriter

import (
	"fmt"

	"poster-studio/poster"
)

// styleBlock returns the extra instructions for a style mode.
// Exactly one block is appended per prompt; unrecognized modes get the
// standard marketing block.
func styleBlock(mode StyleMode) string {
	switch mode {
	case StyleConversation:
		return `STYLE:
- body_paragraph_ta should read like a SHORT conversation between a
  customer ("வாடிக்கையாளர்") and an advisor ("ஆலோசகர்").
- Prefix each line with the speaker label, e.g. "வாடிக்கையாளர்:" / "ஆலோசகர்:".
- 5-7 lines max, casual spoken Tamil, but still neat.
- bullet_points_ta should then summarize 3 key benefits as simple one-liners.`
	case StyleFactBased:
		return `STYLE:
- body_paragraph_ta should highlight 2-3 simple facts or scenarios
  (for example: hospital bills, an unexpected accident, children's future).
- Use a slightly serious, informative tone.
- bullet_points_ta should look like 3 crisp benefits or facts.`
	default:
		return `STYLE:
- Simple marketing style, friendly and emotional.
- body_paragraph_ta: talk directly to the reader ("நீங்கள்").
- bullet_points_ta: 3 small benefit lines (safety, medical expenses, tax, etc.).`
	}
}

// BuildPrompt constructs the full instruction for the text model.
// Pure string construction; the layout numbers keep the generated copy
// inside the space the template actually has.
func BuildPrompt(mode StyleMode) string {
	return fmt.Sprintf(`You are an experienced Tamil insurance marketing copywriter.

POSTER LAYOUT:
- width: %d px
- height: %d px
- top ~%d px: headline, subheadline, main body and bullet points.
- middle ~150 px: CTA (call-to-action) line.
- bottom %d px: RESERVED for the agent photo, name, role and phone footer.
Text must therefore be short, readable and never crowded.

LANGUAGE:
- Natural spoken Tamil, the way an insurance agent in Tamil Nadu talks.
- No formal or literary Tamil.
- Do NOT mix English words (numbers are ok).

%s

TEXT LIMITS (follow strictly):
- headline_ta: at most 22-25 Tamil characters. A 1-2 line hook only.
- subheadline_ta: max 70-80 characters.
- body_paragraph_ta: max 220-250 characters (3-4 short sentences or 5-7 short conversation lines).
- bullet_points_ta: exactly 3 bullets. One line each (max 45 characters).
- cta_line_ta: short CTA, max 60 characters.

CONTENT STRUCTURE (fill in Tamil):
1) headline_ta
2) subheadline_ta
3) body_paragraph_ta
4) bullet_points_ta  (3 strings)
5) cta_line_ta
6) color_theme :  "blue_orange" | "green_gold" | "red_yellow" | "yellow_blue"
7) text_colors:
   {
     "headline": "dark_blue | navy | red | maroon | dark_green",
     "body": "black | dark_gray | dark_blue",
     "cta": "red | dark_blue | green | orange"
   }

Return STRICTLY this JSON format only
(no extra text, no explanation, no markdown):

{
  "headline_ta": "...",
  "subheadline_ta": "...",
  "body_paragraph_ta": "...",
  "bullet_points_ta": ["...", "...", "..."],
  "cta_line_ta": "...",
  "color_theme": "blue_orange",
  "text_colors": {
    "headline": "dark_blue",
    "body": "black",
    "cta": "red"
  }
}`,
		poster.Width,
		poster.Height,
		poster.Height-poster.FooterHeight-150,
		poster.FooterHeight,
		styleBlock(mode),
	)
}

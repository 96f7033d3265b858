package poster_test

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"poster-studio/colors"
	"poster-studio/poster"
)

func fixedParams() poster.TemplateParams {
	top, bottom, footer := colors.ThemeColors(colors.ThemeGreenGold)
	return poster.TemplateParams{
		Width:         poster.Width,
		Height:        poster.Height,
		FooterHeight:  poster.FooterHeight,
		TopColor:      template.CSS(top),
		BottomColor:   template.CSS(bottom),
		FooterColor:   template.CSS(footer),
		HeadlineColor: template.CSS(colors.FromName("dark_green", "#0f172a")),
		BodyColor:     template.CSS(colors.FromName("black", "#111827")),
		CTAColor:      template.CSS(colors.FromName("green", "#b91c1c")),
		Headline:      "X",
		Subheadline:   "",
		BodyParagraph: "Y",
		BulletPoints:  []string{"A", "B", "C"},
		CTALine:       "Z",
		AgentName:     "Selvaraj D",
		AgentRole:     "Insurance Agent",
		AgentPhone:    "9842761070",
		PhotoDataURL:  "data:image/png;base64,aGVsbG8=",
	}
}

// textByClass walks the document and collects the text of every
// element carrying the given class.
func textByClass(t *testing.T, doc string, class string) []string {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				if attr.Key == "class" && attr.Val == class {
					var b strings.Builder
					var text func(*html.Node)
					text = func(c *html.Node) {
						if c.Type == html.TextNode {
							b.WriteString(c.Data)
						}
						for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
							text(cc)
						}
					}
					text(n)
					out = append(out, strings.TrimSpace(b.String()))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func TestBuildHTMLTextRegions(t *testing.T) {
	doc, err := poster.BuildHTML(fixedParams())
	require.NoError(t, err)

	assert.Equal(t, []string{"X"}, textByClass(t, doc, "headline"))
	assert.Equal(t, []string{"Y"}, textByClass(t, doc, "body"))
	assert.Equal(t, []string{"• A", "• B", "• C"}, textByClass(t, doc, "bullet-item"))
	assert.Equal(t, []string{"Z"}, textByClass(t, doc, "cta"))

	assert.Equal(t, []string{"Selvaraj D"}, textByClass(t, doc, "footer-name"))
	assert.Equal(t, []string{"Insurance Agent"}, textByClass(t, doc, "footer-role"))
	assert.Equal(t, []string{"📞 9842761070"}, textByClass(t, doc, "footer-phone"))

	// empty subheadline renders no subheadline element at all
	assert.Empty(t, textByClass(t, doc, "subheadline"))
}

func TestBuildHTMLThemeColors(t *testing.T) {
	doc, err := poster.BuildHTML(fixedParams())
	require.NoError(t, err)

	assert.Contains(t, doc, "linear-gradient(to bottom, #e8f7eb, #fef6d8)")
	assert.Contains(t, doc, "background: #14532d")
}

func TestBuildHTMLIsSelfContained(t *testing.T) {
	params := fixedParams()
	params.RegularFontDataURL = "data:font/ttf;base64,cmVndWxhcg=="
	params.BoldFontDataURL = "data:font/ttf;base64,Ym9sZA=="

	doc, err := poster.BuildHTML(params)
	require.NoError(t, err)

	assert.Contains(t, doc, "url('data:font/ttf;base64,cmVndWxhcg==')")
	assert.Contains(t, doc, "url('data:image/png;base64,aGVsbG8=')")
	assert.NotContains(t, doc, "http://")
	assert.NotContains(t, doc, "https://")
}

func TestBuildHTMLEscapesUntrustedText(t *testing.T) {
	params := fixedParams()
	params.Headline = `<script>alert("x")</script>`
	params.AgentName = `<img src=x onerror=alert(1)>`

	doc, err := poster.BuildHTML(params)
	require.NoError(t, err)

	assert.NotContains(t, doc, "<script>alert")
	assert.NotContains(t, doc, "<img src=x")
	assert.Equal(t, []string{`<script>alert("x")</script>`}, textByClass(t, doc, "headline"))
}

package poster

import (
	"html/template"
	"strings"
)

// TemplateParams feeds the poster document template. Colors come from
// the fixed lookup tables and the data URLs are built locally from
// trusted bytes, so they are marked as safe CSS/URL content; all text
// fields stay plain strings and get contextual escaping, since copy
// originates from the model and the operator form.
type TemplateParams struct {
	Width        int
	Height       int
	FooterHeight int

	TopColor      template.CSS
	BottomColor   template.CSS
	FooterColor   template.CSS
	HeadlineColor template.CSS
	BodyColor     template.CSS
	CTAColor      template.CSS

	Headline      string
	Subheadline   string
	BodyParagraph string
	BulletPoints  []string
	CTALine       string

	AgentName  string
	AgentRole  string
	AgentPhone string

	PhotoDataURL       template.URL
	RegularFontDataURL template.URL
	BoldFontDataURL    template.URL
}

var posterTemplate = template.Must(template.New("poster").Parse(`<!DOCTYPE html>
<html lang="ta">
<head>
  <meta charset="UTF-8" />
  <title>Insurance Poster</title>
  <style>
    * {
      box-sizing: border-box;
      margin: 0;
      padding: 0;
    }
    html, body {
      width: {{ .Width }}px;
      height: {{ .Height }}px;
      overflow: hidden;
      font-family: 'NotoTamil', system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
    }

    @font-face {
      font-family: 'NotoTamil';
      src: url('{{ .RegularFontDataURL }}') format('truetype');
      font-weight: 400;
      font-style: normal;
    }
    @font-face {
      font-family: 'NotoTamil';
      src: url('{{ .BoldFontDataURL }}') format('truetype');
      font-weight: 700;
      font-style: normal;
    }

    body {
      background: linear-gradient(to bottom, {{ .TopColor }}, {{ .BottomColor }});
      margin: 0;
    }
    .poster {
      width: {{ .Width }}px;
      height: {{ .Height }}px;
      display: flex;
      flex-direction: column;
      justify-content: space-between;
    }
    .main {
      padding: 70px 80px 10px 80px;
      flex: 1;
      display: flex;
      flex-direction: column;
      justify-content: flex-start;
      color: #111827;
    }
    .headline {
      font-size: 46px;
      font-weight: 700;
      text-align: center;
      color: {{ .HeadlineColor }};
      margin-bottom: 12px;
      line-height: 1.3;
    }
    .subheadline {
      font-size: 26px;
      text-align: center;
      color: {{ .HeadlineColor }};
      margin-bottom: 18px;
      line-height: 1.4;
    }
    .body {
      font-size: 23px;
      color: {{ .BodyColor }};
      margin-bottom: 12px;
      line-height: 1.6;
      white-space: pre-line;
    }
    .bullets {
      font-size: 22px;
      color: {{ .BodyColor }};
      margin-bottom: 18px;
      line-height: 1.6;
    }
    .bullet-item {
      margin-left: 16px;
      margin-bottom: 4px;
    }
    .cta {
      font-size: 24px;
      font-weight: 700;
      text-align: center;
      color: {{ .CTAColor }};
      margin-top: 16px;
    }

    .footer {
      height: {{ .FooterHeight }}px;
      background: {{ .FooterColor }};
      display: flex;
      align-items: center;
      padding: 20px 60px;
      color: #f9fafb;
    }
    .footer-photo {
      width: 150px;
      height: 150px;
      border-radius: 50%;
      background-size: cover;
      background-position: center;
      background-image: url('{{ .PhotoDataURL }}');
      flex-shrink: 0;
    }
    .footer-text {
      margin-left: 32px;
      display: flex;
      flex-direction: column;
      justify-content: center;
      gap: 8px;
    }
    .footer-name {
      font-size: 28px;
      font-weight: 700;
    }
    .footer-role {
      font-size: 22px;
      opacity: 0.95;
    }
    .footer-phone {
      font-size: 22px;
    }
  </style>
</head>
<body>
  <div class="poster">
    <div class="main">
      <div class="headline">{{ .Headline }}</div>
      {{- if .Subheadline }}
      <div class="subheadline">{{ .Subheadline }}</div>
      {{- end }}
      <div class="body">{{ .BodyParagraph }}</div>
      <div class="bullets">
        {{- range .BulletPoints }}
        <div class="bullet-item">• {{ . }}</div>
        {{- end }}
      </div>
      <div class="cta">{{ .CTALine }}</div>
    </div>
    <div class="footer">
      <div class="footer-photo"></div>
      <div class="footer-text">
        <div class="footer-name">{{ .AgentName }}</div>
        <div class="footer-role">{{ .AgentRole }}</div>
        <div class="footer-phone">📞 {{ .AgentPhone }}</div>
      </div>
    </div>
  </div>
</body>
</html>
`))

// BuildHTML fills the poster template into a self-contained document:
// every binary asset is inlined, so the render step needs no network
// or filesystem access.
func BuildHTML(params TemplateParams) (string, error) {
	var b strings.Builder
	if err := posterTemplate.Execute(&b, params); err != nil {
		return "", err
	}
	return b.String(), nil
}

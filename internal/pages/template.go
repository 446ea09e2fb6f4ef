package pages

import "html/template"

// Style is the fixed look applied to every rendered page.
type Style struct {
	FontFamily       string
	LineHeight       string
	Padding          string
	HeadingColor     string
	ParagraphSpacing string
}

// DefaultStyle returns the stock page style.
func DefaultStyle() Style {
	return Style{
		FontFamily:       "Arial, sans-serif",
		LineHeight:       "1.5",
		Padding:          "20px",
		HeadingColor:     "#333",
		ParagraphSpacing: "15px",
	}
}

// withDefaults fills empty fields from DefaultStyle.
func (s Style) withDefaults() Style {
	d := DefaultStyle()
	if s.FontFamily == "" {
		s.FontFamily = d.FontFamily
	}
	if s.LineHeight == "" {
		s.LineHeight = d.LineHeight
	}
	if s.Padding == "" {
		s.Padding = d.Padding
	}
	if s.HeadingColor == "" {
		s.HeadingColor = d.HeadingColor
	}
	if s.ParagraphSpacing == "" {
		s.ParagraphSpacing = d.ParagraphSpacing
	}
	return s
}

// pageData holds the data passed to the page template.
type pageData struct {
	FontFamily       template.CSS
	LineHeight       template.CSS
	Padding          template.CSS
	HeadingColor     template.CSS
	ParagraphSpacing template.CSS
	Body             template.HTML
}

func newPageData(s Style, body string) pageData {
	return pageData{
		FontFamily:       template.CSS(s.FontFamily),
		LineHeight:       template.CSS(s.LineHeight),
		Padding:          template.CSS(s.Padding),
		HeadingColor:     template.CSS(s.HeadingColor),
		ParagraphSpacing: template.CSS(s.ParagraphSpacing),
		Body:             template.HTML(body),
	}
}

const pageTemplate = `<html>
<head>
<meta charset="UTF-8">
<style>
body { font-family: {{.FontFamily}}; line-height: {{.LineHeight}}; padding: {{.Padding}}; }
h1, h2, h3 { color: {{.HeadingColor}}; }
p { margin-bottom: {{.ParagraphSpacing}}; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

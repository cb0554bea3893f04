// Package prompt renders reading requests for completion models.
package prompt

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/f3rmion/kana"
)

// Generator renders reading requests from a template.
type Generator struct {
	template *template.Template
	style    Style
}

// Example is a worked text/reading pair shown to the model.
type Example struct {
	Text    string
	Reading string
}

// Style configures what the model is asked for.
type Style struct {
	Script   kana.Script // script of the reading, hiragana or katakana
	Examples []Example
}

// DefaultStyle asks for a hiragana reading with a couple of name examples.
func DefaultStyle() Style {
	return Style{
		Script: kana.Hiragana,
		Examples: []Example{
			{Text: "相葉雅紀", Reading: "あいばまさき"},
			{Text: "東京タワー", Reading: "とうきょうたわー"},
		},
	}
}

// RequestData is what a template sees.
type RequestData struct {
	Text  string
	Style Style
}

// System is the system prompt sent alongside every request.
const System = "You are a Japanese reading assistant. You answer with the kana reading of the given text and nothing else."

// NewGenerator creates a generator with the default template and style.
func NewGenerator() *Generator {
	return &Generator{
		template: template.Must(template.New("reading").Parse(defaultTemplate)),
		style:    DefaultStyle(),
	}
}

// SetStyle updates the request style.
func (g *Generator) SetStyle(style Style) {
	g.style = style
}

// Style returns the current request style.
func (g *Generator) Style() Style {
	return g.style
}

// SetTemplate sets a custom prompt template.
func (g *Generator) SetTemplate(tmpl string) error {
	t, err := template.New("reading").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}
	g.template = t
	return nil
}

// Generate renders the request for text.
func (g *Generator) Generate(text string) (string, error) {
	data := RequestData{Text: text, Style: g.style}

	var buf bytes.Buffer
	if err := g.template.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}

const defaultTemplate = `Write the reading of the text below in {{ .Style.Script }}.
Keep katakana words, Latin letters, digits and punctuation as they are, but write katakana in {{ .Style.Script }} too.
Drop spaces. Output ONLY the reading on a single line.
{{- if .Style.Examples }}

Examples:
{{- range .Style.Examples }}
{{ .Text }} => {{ .Reading }}
{{- end }}
{{- end }}

Text: {{ .Text }}`

// Package export renders the portfolio as Markdown.
package export

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"

	"github.com/opencode-ai/folio/internal/content"
)

const markdownTemplate = `# {{ .Personal.Name }}

{{ with .Personal.Title }}**{{ . }}**
{{ end }}{{ with .Personal.Location }}
{{ . }}
{{ end }}
## Contact
{{ range .Contact }}
- **{{ .Title }}:** [{{ .Value }}]({{ .URL }})
{{- end }}

## Experience
{{ range .Experience }}
### {{ .Position }} · {{ .Company }}

_{{ .Duration }}{{ with .Location }} · {{ . }}{{ end }}_
{{ range .Description }}
- {{ . }}
{{- end }}
{{ with .Technologies }}
**Technologies:** {{ join . ", " }}
{{ end }}{{ end }}
## Skills
{{ range .Skills }}
- **{{ .Category }}:** {{ join .Skills ", " }}
{{- end }}

## Education
{{ range .Education }}
### {{ .Degree }}

{{ .Institution }} · _{{ .Duration }}_{{ with .Location }}
{{ . }}{{ end }}
{{ with .Description }}
{{ . }}
{{ end }}{{ end }}
## Projects
{{ range .Projects }}
### {{ .Title }}

{{ .Description }}
{{ with .Note }}
> {{ . }}
{{ end }}{{ with .Links }}
{{ range . }}- [{{ .Label }}]({{ .URL }})
{{ end }}{{ end }}{{ end }}
## Certifications
{{ range .Certifications }}
- **{{ .Name }}** · {{ .Issuer }} ({{ .Date }}){{ with .CredentialURL }} · [credential]({{ . }}){{ end }}
{{- end }}
`

var parsed = template.Must(template.New("portfolio").
	Funcs(template.FuncMap{"join": strings.Join}).
	Option("missingkey=zero").
	Parse(markdownTemplate))

type document struct {
	*content.Portfolio
	Contact []content.ContactItem
}

// Markdown renders p as a Markdown document.
func Markdown(p *content.Portfolio) (string, error) {
	if p == nil {
		return "", fmt.Errorf("portfolio is required")
	}

	var out strings.Builder
	if err := parsed.Execute(&out, document{Portfolio: p, Contact: p.ContactItems()}); err != nil {
		return "", fmt.Errorf("render portfolio: %w", err)
	}
	return out.String(), nil
}

// Styles accepted by Render.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

// Render formats markdown for a terminal of the given width.
func Render(markdown string, width int, style string) (string, error) {
	if width <= 0 {
		width = 80
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	switch style {
	case "", StyleAuto:
		opts = append(opts, glamour.WithAutoStyle())
	case StyleDark, StyleLight, StyleNoTTY:
		opts = append(opts, glamour.WithStandardStyle(style))
	default:
		return "", fmt.Errorf("unknown render style %q", style)
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return rendered, nil
}

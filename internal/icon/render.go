package icon

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/paywidget/paywidget/internal/domain"
)

var validSizes = []domain.IconSize{
	domain.IconXS, domain.IconS, domain.IconDefault, domain.IconM, domain.IconL, domain.IconXL,
}

// ValidateSize clamps an icon size, defaulting to "default".
func ValidateSize(raw string) domain.IconSize {
	for _, s := range validSizes {
		if string(s) == raw {
			return s
		}
	}
	return domain.IconDefault
}

// Title is the accessible label of an icon: the description when given,
// else the name with its first hyphen turned into a space.
func Title(name, description string) string {
	if description != "" {
		return description
	}
	return strings.Replace(name, "-", " ", 1)
}

var svgTemplate = template.Must(template.New("icon").Parse(
	`<span class="ui-icon ui-icon--{{.Size}}" aria-hidden="{{.Decorative}}">` +
		`{{if .Decorative}}<svg role="presentation" viewBox="{{.ViewBox}}">` +
		`{{else}}<svg role="img" aria-label="{{.Title}}" viewBox="{{.ViewBox}}">{{end}}` +
		`{{with .Description}}<title>{{.}}</title>{{end}}` +
		`{{range .Paths}}<path d="{{.}}" fill="{{$.Color}}"></path>{{end}}` +
		`</svg></span>`))

// RenderSVG renders v as inline SVG markup. It reports false, with empty
// output, when v names no icon or an icon the registry does not hold.
func (r *Registry) RenderSVG(v domain.IconView) (template.HTML, bool) {
	if v.Name == "" {
		return "", false
	}
	ic, ok := r.Lookup(v.Name)
	if !ok {
		return "", false
	}
	color := v.Color
	if color == "" {
		color = "currentColor"
	}
	data := struct {
		Size        domain.IconSize
		Decorative  bool
		Title       string
		Description string
		ViewBox     string
		Paths       []string
		Color       string
	}{
		Size:        ValidateSize(string(v.Size)),
		Decorative:  v.Decorative,
		Title:       Title(v.Name, v.Description),
		Description: v.Description,
		ViewBox:     ic.ViewBox,
		Paths:       ic.Paths,
		Color:       color,
	}
	var buf bytes.Buffer
	if err := svgTemplate.Execute(&buf, data); err != nil {
		return "", false
	}
	return template.HTML(buf.String()), true
}

package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/paywidget/paywidget/internal/domain"
	"github.com/paywidget/paywidget/internal/icon"
)

// HTMLFormatter produces a standalone HTML page holding the payment card.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/widget.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("widget").Funcs(template.FuncMap{
	"icon": func(v domain.IconView) template.HTML {
		svg, _ := icon.Default().RenderSVG(v)
		return svg
	},
	"trendIcon": func(h *domain.TrendHint) template.HTML {
		if h == nil {
			return ""
		}
		svg, _ := icon.Default().RenderSVG(domain.IconView{
			Name:       h.IconName,
			Size:       h.IconSize,
			Color:      h.Color,
			Decorative: true,
		})
		return svg
	},
	"amountLabel":  AmountLabel,
	"accountLabel": AccountLabel,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(view *domain.WidgetView) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

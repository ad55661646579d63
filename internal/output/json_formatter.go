package output

import (
	"encoding/json"

	"github.com/paywidget/paywidget/internal/domain"
)

// JSONFormatter serializes the widget view as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(view *domain.WidgetView) ([]byte, error) {
	return json.MarshalIndent(view, "", "  ")
}

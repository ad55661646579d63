package output

import (
	"strings"

	"github.com/paywidget/paywidget/internal/domain"
)

// TrendArrow is the text glyph standing in for the trend caret icons.
func TrendArrow(t domain.Trend) string {
	switch t {
	case domain.TrendUp:
		return "▲"
	case domain.TrendDown:
		return "▼"
	}
	return ""
}

// AmountLabel is the accessible reading of an amount: its text, followed by
// the trend description when it has one.
func AmountLabel(v domain.AmountView) string {
	if v.Hint == nil {
		return v.Text
	}
	return v.Text + ", " + v.Hint.Description
}

// AccountLabel describes the account line for assistive technology.
func AccountLabel(v *domain.WidgetView) string {
	if v.Account == "" {
		return "No account number"
	}
	return "The account number is " + strings.TrimPrefix(v.Account, "•")
}

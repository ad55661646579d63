package amount

import (
	"math"

	"github.com/paywidget/paywidget/pkg/decimal"
	"github.com/paywidget/paywidget/pkg/locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatNumber renders value with exactly two fraction digits using the
// grouping and decimal separators of the given BCP-47 tag. Unusable tags
// fall back to locale.Default. NaN and infinities use the locale's own
// symbols.
func FormatNumber(value float64, tag string) string {
	t, _ := locale.Resolve(tag, locale.Default)
	return formatFloat(value, t)
}

// FormatMoney is FormatNumber for exact decimal amounts.
func FormatMoney(m decimal.Money, tag string) string {
	t, _ := locale.Resolve(tag, locale.Default)
	return formatMoney(m, t)
}

func formatFloat(value float64, t language.Tag) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return render(value, t)
	}
	return formatMoney(decimal.NewMoney(value), t)
}

// formatMoney rounds to cents before handing the amount to the locale
// printer so the half-away-from-zero rule applies to the decimal value.
func formatMoney(m decimal.Money, t language.Tag) string {
	return render(m.Float64(), t)
}

func render(value float64, t language.Tag) string {
	return message.NewPrinter(t).Sprint(number.Decimal(value, number.Scale(2)))
}

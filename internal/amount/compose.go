package amount

import "github.com/paywidget/paywidget/internal/domain"

// Compose joins a formatted number and a currency symbol with a single
// space, in the order given by position.
func Compose(formatted, symbol string, position domain.Position) string {
	if ValidatePosition(string(position)) == domain.PositionBefore {
		return symbol + " " + formatted
	}
	return formatted + " " + symbol
}

package amount

import (
	"strings"

	"github.com/paywidget/paywidget/internal/domain"
)

// Color tokens a ColorSource may override.
const (
	TokenTrendUp   = "trend-up"
	TokenTrendDown = "trend-down"
)

// ColorSource supplies consumer color overrides by token.
type ColorSource interface {
	Lookup(token string) (string, bool)
}

// Palette is a map-backed ColorSource.
type Palette map[string]string

// Lookup implements ColorSource.
func (p Palette) Lookup(token string) (string, bool) {
	c, ok := p[token]
	return c, ok
}

var fallbackColors = map[string]string{
	TokenTrendUp:   "#02702a",
	TokenTrendDown: "#aa0f0f",
}

type trendIcon struct {
	name        string
	token       string
	description string
}

var trendIcons = map[domain.Trend]trendIcon{
	domain.TrendUp:   {name: "caret-up", token: TokenTrendUp, description: "Increasing trend"},
	domain.TrendDown: {name: "caret-down", token: TokenTrendDown, description: "Decreasing trend"},
}

// icon sizes run one step below the amount they decorate
var iconSizes = map[domain.Size]domain.IconSize{
	domain.SizeS:  domain.IconXS,
	domain.SizeM:  domain.IconS,
	domain.SizeL:  domain.IconM,
	domain.SizeXL: domain.IconL,
}

// IconSizeFor returns the icon size paired with a display size, xs when the
// size has no pairing.
func IconSizeFor(size domain.Size) domain.IconSize {
	if s, ok := iconSizes[size]; ok {
		return s
	}
	return domain.IconXS
}

// ResolveColor returns the override for token from src, or the built-in
// fallback when src is nil or holds a blank value. Unknown tokens without an
// override resolve to "".
func ResolveColor(token string, src ColorSource) string {
	if src != nil {
		if c, ok := src.Lookup(token); ok {
			if c = strings.TrimSpace(c); c != "" {
				return c
			}
		}
	}
	return fallbackColors[token]
}

// ResolveTrend maps a trend to the icon hint drawn beside an amount of the
// given size. It returns nil for none and for anything that clamps to none.
func ResolveTrend(trend domain.Trend, size domain.Size, src ColorSource) *domain.TrendHint {
	icon, ok := trendIcons[ValidateTrend(string(trend))]
	if !ok {
		return nil
	}
	return &domain.TrendHint{
		IconName:    icon.name,
		IconSize:    IconSizeFor(ValidateSize(string(size))),
		ColorToken:  icon.token,
		Color:       ResolveColor(icon.token, src),
		Description: icon.description,
	}
}

package domain

import (
	"github.com/paywidget/paywidget/pkg/decimal"
)

// Size is the display size of an amount.
type Size string

const (
	SizeS  Size = "s"
	SizeM  Size = "m"
	SizeL  Size = "l"
	SizeXL Size = "xl"
)

// Trend is the semantic direction shown next to an amount.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendNone Trend = "none"
)

// Position places the currency symbol relative to the number.
type Position string

const (
	PositionBefore Position = "before"
	PositionAfter  Position = "after"
)

// IconSize is the size scale understood by the icon renderer.
type IconSize string

const (
	IconXS      IconSize = "xs"
	IconS       IconSize = "s"
	IconDefault IconSize = "default"
	IconM       IconSize = "m"
	IconL       IconSize = "l"
	IconXL      IconSize = "xl"
)

// AmountRequest carries the inputs of a single amount render. Enum fields
// hold raw caller input and are clamped by the formatter.
type AmountRequest struct {
	Value float64 `json:"value" yaml:"value"`
	// Money, when set, takes precedence over Value and is rounded exactly
	// before display.
	Money    *decimal.Money `json:"money,omitempty" yaml:"money,omitempty"`
	Currency string         `json:"currency" yaml:"currency"`
	Locale   string         `json:"locale" yaml:"locale"`
	Position Position       `json:"position" yaml:"position"`
	Size     Size           `json:"size" yaml:"size"`
	Trend    Trend          `json:"trend" yaml:"trend"`
}

// TrendHint tells the icon renderer what to draw for a trend.
type TrendHint struct {
	IconName    string   `json:"icon_name"`
	IconSize    IconSize `json:"icon_size"`
	ColorToken  string   `json:"color_token"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
}

// AmountView is the fully validated, formatted result of an AmountRequest.
type AmountView struct {
	Text     string     `json:"text"`
	Number   string     `json:"number"`
	Currency string     `json:"currency"`
	Locale   string     `json:"locale"`
	Size     Size       `json:"size"`
	Position Position   `json:"position"`
	Trend    Trend      `json:"trend"`
	Hint     *TrendHint `json:"trend_hint,omitempty"`
}

package amount

import "github.com/paywidget/paywidget/internal/domain"

// Enumeration names accepted by Validate.
const (
	EnumSize     = "size"
	EnumTrend    = "trend"
	EnumPosition = "position"
)

type enumTable struct {
	values []string
	def    string
}

var enums = map[string]enumTable{
	EnumSize: {
		values: []string{string(domain.SizeS), string(domain.SizeM), string(domain.SizeL), string(domain.SizeXL)},
		def:    string(domain.SizeM),
	},
	EnumTrend: {
		values: []string{string(domain.TrendUp), string(domain.TrendDown), string(domain.TrendNone)},
		def:    string(domain.TrendNone),
	},
	EnumPosition: {
		values: []string{string(domain.PositionBefore), string(domain.PositionAfter)},
		def:    string(domain.PositionAfter),
	},
}

// Validate maps raw to a member of the named enumeration, or to that
// enumeration's default. Matching is exact. An unknown enumeration name
// yields "".
func Validate(enumName, raw string) string {
	table, ok := enums[enumName]
	if !ok {
		return ""
	}
	for _, v := range table.values {
		if v == raw {
			return v
		}
	}
	return table.def
}

// ValidateSize clamps a display size, defaulting to m.
func ValidateSize(raw string) domain.Size { return domain.Size(Validate(EnumSize, raw)) }

// ValidateTrend clamps a trend, defaulting to none.
func ValidateTrend(raw string) domain.Trend { return domain.Trend(Validate(EnumTrend, raw)) }

// ValidatePosition clamps a symbol position, defaulting to after.
func ValidatePosition(raw string) domain.Position {
	return domain.Position(Validate(EnumPosition, raw))
}

// Values returns the valid members of an enumeration in declaration order.
func Values(enumName string) []string {
	return append([]string(nil), enums[enumName].values...)
}

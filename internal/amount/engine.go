package amount

import (
	"github.com/paywidget/paywidget/internal/domain"
	"github.com/paywidget/paywidget/pkg/locale"
	"golang.org/x/text/language"
)

// Engine formats amount requests. Render never fails: every invalid input
// is clamped or replaced by a fallback before formatting.
type Engine struct {
	DefaultLocale language.Tag
	Colors        ColorSource
	Logger        Logger
}

// NewEngine creates an engine with the package default locale and the
// built-in trend colors.
func NewEngine() *Engine {
	return &Engine{
		DefaultLocale: locale.Default,
		Logger:        NopLogger{},
	}
}

// NewEngineWithConfig creates an engine that falls back to defaultLocale for
// unusable request locales and resolves trend colors through colors.
func NewEngineWithConfig(defaultLocale string, colors ColorSource) *Engine {
	e := NewEngine()
	e.DefaultLocale, _ = locale.Resolve(defaultLocale, locale.Default)
	e.Colors = colors
	return e
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// ResolveLocale parses tag, falling back to the engine default.
func (e *Engine) ResolveLocale(tag string) language.Tag {
	t, ok := locale.Resolve(tag, e.DefaultLocale)
	if !ok && tag != "" {
		e.Logger.Warnf("unusable locale %q, formatting with %s", tag, e.DefaultLocale)
	}
	return t
}

// Render validates req and produces its display form.
func (e *Engine) Render(req domain.AmountRequest) domain.AmountView {
	size := ValidateSize(string(req.Size))
	trend := ValidateTrend(string(req.Trend))
	position := ValidatePosition(string(req.Position))
	e.logClamp(EnumSize, string(req.Size), string(size))
	e.logClamp(EnumTrend, string(req.Trend), string(trend))
	e.logClamp(EnumPosition, string(req.Position), string(position))

	tag := e.ResolveLocale(req.Locale)

	var formatted string
	if req.Money != nil {
		formatted = formatMoney(*req.Money, tag)
	} else {
		formatted = formatFloat(req.Value, tag)
	}

	return domain.AmountView{
		Text:     Compose(formatted, req.Currency, position),
		Number:   formatted,
		Currency: req.Currency,
		Locale:   tag.String(),
		Size:     size,
		Position: position,
		Trend:    trend,
		Hint:     ResolveTrend(trend, size, e.Colors),
	}
}

func (e *Engine) logClamp(enumName, raw, got string) {
	if raw != "" && raw != got {
		e.Logger.Debugf("%s %q is not valid, using %q", enumName, raw, got)
	}
}

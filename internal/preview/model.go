// Package preview is an interactive terminal preview of a single amount.
package preview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/paywidget/paywidget/internal/amount"
	"github.com/paywidget/paywidget/internal/domain"
	"github.com/paywidget/paywidget/internal/output"
	"github.com/paywidget/paywidget/internal/widget"
	"github.com/paywidget/paywidget/pkg/decimal"
)

// DefaultLocales is the locale cycle used when none is given.
var DefaultLocales = []string{"en-US", "es-ES", "de-DE", "fr-FR", "de-CH", "ja-JP", "hi-IN"}

const step = 100

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6c7086")).
			Padding(1, 3)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
)

// Model is the bubbletea model for the preview.
type Model struct {
	amount   *widget.Amount
	locales  []string
	locale   int
	quitting bool
}

// New returns a preview of req. The first locale shown is req.Locale when
// set, otherwise the first entry of locales.
func New(engine *amount.Engine, req domain.AmountRequest, locales []string) Model {
	if len(locales) == 0 {
		locales = DefaultLocales
	}
	locales = append([]string(nil), locales...)

	idx := 0
	if req.Locale == "" {
		req.Locale = locales[0]
	} else {
		idx = indexOf(locales, req.Locale)
		if idx < 0 {
			locales = append([]string{req.Locale}, locales...)
			idx = 0
		}
	}
	return Model{amount: widget.NewAmount(engine, req), locales: locales, locale: idx}
}

// Current returns the view on screen.
func (m Model) Current() domain.AmountView { return m.amount.View() }

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool { return m.quitting }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	a := m.amount
	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "l":
		m.locale = (m.locale + 1) % len(m.locales)
		a.SetLocale(m.locales[m.locale])
	case "p":
		if a.View().Position == domain.PositionBefore {
			a.SetPosition(domain.PositionAfter)
		} else {
			a.SetPosition(domain.PositionBefore)
		}
	case "t":
		a.SetTrend(domain.Trend(next(amount.Values(amount.EnumTrend), string(a.View().Trend))))
	case "s":
		a.SetSize(domain.Size(next(amount.Values(amount.EnumSize), string(a.View().Size))))
	case "+", "=":
		m.adjust(decimal.NewMoney(step))
	case "-", "_":
		m.adjust(decimal.NewMoney(-step))
	case "n":
		req := a.Request()
		if req.Money != nil {
			a.SetMoney(req.Money.Neg())
		} else {
			a.SetValue(-req.Value)
		}
	}
	return m, nil
}

func (m Model) adjust(delta decimal.Money) {
	req := m.amount.Request()
	if req.Money != nil {
		m.amount.SetMoney(req.Money.Add(delta))
		return
	}
	m.amount.SetValue(req.Value + delta.Float64())
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	v := m.amount.View()

	var b strings.Builder
	b.WriteString(output.ConsoleAmount(v))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s   %s %s   %s %s   %s %s",
		labelStyle.Render("locale"), v.Locale,
		labelStyle.Render("position"), v.Position,
		labelStyle.Render("size"), v.Size,
		labelStyle.Render("trend"), v.Trend,
	)
	if v.Hint != nil {
		fmt.Fprintf(&b, "\n%s %s %s", labelStyle.Render("hint"), v.Hint.Description, v.Hint.Color)
	}

	help := helpStyle.Render("l locale • p position • t trend • s size • +/- 100 • n negate • q quit")
	return frameStyle.Render(b.String()) + "\n" + help + "\n"
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func next(list []string, cur string) string {
	return list[(indexOf(list, cur)+1)%len(list)]
}

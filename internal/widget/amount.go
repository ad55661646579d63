package widget

import (
	"github.com/paywidget/paywidget/internal/amount"
	"github.com/paywidget/paywidget/internal/domain"
	"github.com/paywidget/paywidget/pkg/decimal"
)

// Amount holds the current properties of one displayed amount. Every
// setter re-renders and returns the fresh view; nothing else is cached.
type Amount struct {
	engine *amount.Engine
	req    domain.AmountRequest
	view   domain.AmountView
}

// NewAmount renders req once and keeps it as the current state.
func NewAmount(engine *amount.Engine, req domain.AmountRequest) *Amount {
	a := &Amount{engine: engine, req: req}
	a.render()
	return a
}

func (a *Amount) render() domain.AmountView {
	a.view = a.engine.Render(a.req)
	return a.view
}

// Request returns the current properties.
func (a *Amount) Request() domain.AmountRequest { return a.req }

// View returns the view produced by the last change.
func (a *Amount) View() domain.AmountView { return a.view }

// SetValue sets a float value and clears any exact amount.
func (a *Amount) SetValue(v float64) domain.AmountView {
	a.req.Value = v
	a.req.Money = nil
	return a.render()
}

// SetMoney sets an exact amount.
func (a *Amount) SetMoney(m decimal.Money) domain.AmountView {
	a.req.Money = &m
	return a.render()
}

func (a *Amount) SetCurrency(symbol string) domain.AmountView {
	a.req.Currency = symbol
	return a.render()
}

func (a *Amount) SetLocale(tag string) domain.AmountView {
	a.req.Locale = tag
	return a.render()
}

func (a *Amount) SetPosition(p domain.Position) domain.AmountView {
	a.req.Position = p
	return a.render()
}

func (a *Amount) SetSize(s domain.Size) domain.AmountView {
	a.req.Size = s
	return a.render()
}

func (a *Amount) SetTrend(t domain.Trend) domain.AmountView {
	a.req.Trend = t
	return a.render()
}

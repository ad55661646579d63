package widget

import (
	"github.com/google/uuid"
	"github.com/paywidget/paywidget/internal/amount"
	"github.com/paywidget/paywidget/internal/domain"
	"github.com/paywidget/paywidget/pkg/decimal"
)

// DefaultSecondaryHref is where the secondary action links to by default.
const DefaultSecondaryHref = "https://www.bbva.es/en/general/hazte-cliente/abrir-cuenta-bancaria-online.html"

// Payment is a payment card: a dated header amount with an optional trend,
// the payment itself, its details and two actions.
type Payment struct {
	Date          string
	HeaderAmount  decimal.Money
	PaymentAmount decimal.Money
	Currency      string
	Locale        string
	Position      domain.Position
	HeaderTrend   domain.Trend
	Title         string
	AccountNumber string
	Status        string
	Category      string
	Description   string
	Bullets       []string
	Primary       Button
	Secondary     Button
}

// NewPayment returns a payment card with the stock defaults.
func NewPayment() Payment {
	return Payment{
		HeaderAmount:  decimal.Zero(),
		PaymentAmount: decimal.Zero(),
		Currency:      "€",
		Locale:        "es-ES",
		Position:      domain.PositionAfter,
		HeaderTrend:   domain.TrendNone,
		Title:         "Payment",
		Status:        "Pending",
		Category:      "Transfer",
		Primary:       Button{Label: "Confirm", Variant: domain.VariantPrimary},
		Secondary:     Button{Label: "Go to web", Variant: domain.VariantSecondary, Href: DefaultSecondaryHref},
	}
}

// View renders the card. An empty id is replaced by a fresh UUID so that
// element ids stay unique when several cards share a page.
func (p Payment) View(engine *amount.Engine, id string) domain.WidgetView {
	if id == "" {
		id = uuid.NewString()
	}

	header := p.HeaderAmount
	payment := p.PaymentAmount

	v := domain.WidgetView{
		ID:   id,
		Date: p.Date,
		HeaderAmount: engine.Render(domain.AmountRequest{
			Money:    &header,
			Currency: p.Currency,
			Locale:   p.Locale,
			Position: p.Position,
			Size:     domain.SizeM,
			Trend:    p.HeaderTrend,
		}),
		Title: p.Title,
		PaymentAmount: engine.Render(domain.AmountRequest{
			Money:    &payment,
			Currency: p.Currency,
			Locale:   p.Locale,
			Position: p.Position,
			Size:     domain.SizeXL,
		}),
		AccountIcon:  domain.IconView{Name: "bank-reduced-logo", Size: domain.IconS, Decorative: true},
		Status:       p.Status,
		Category:     p.Category,
		CategoryIcon: domain.IconView{Name: "car", Size: domain.IconDefault, Decorative: true},
		Description:  p.Description,
		Bullets:      append([]string{}, p.Bullets...),
		Primary:      p.Primary.View(id + "-primary"),
		Secondary:    p.Secondary.View(id + "-secondary"),
	}
	if p.AccountNumber != "" {
		v.Account = "•" + p.AccountNumber
	}
	return v
}

// Confirm is the primary action: it reports the header amount and the
// payment's identifying details.
func (p Payment) Confirm() domain.PaymentConfirm {
	return domain.PaymentConfirm{
		Amount:        p.HeaderAmount,
		Currency:      p.Currency,
		Status:        p.Status,
		AccountNumber: p.AccountNumber,
	}
}

// GoToWeb is the secondary action.
func (p Payment) GoToWeb() domain.GoToWeb {
	return domain.GoToWeb{Amount: p.HeaderAmount}
}

// PressPrimary clicks the primary button and, if it fires, confirms.
func (p Payment) PressPrimary() (domain.PaymentConfirm, bool) {
	if _, ok := p.Primary.Click(); !ok {
		return domain.PaymentConfirm{}, false
	}
	return p.Confirm(), true
}

// PressSecondary clicks the secondary button and, if it fires, goes to web.
func (p Payment) PressSecondary() (domain.GoToWeb, bool) {
	if _, ok := p.Secondary.Click(); !ok {
		return domain.GoToWeb{}, false
	}
	return p.GoToWeb(), true
}

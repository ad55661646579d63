package domain

import (
	"github.com/paywidget/paywidget/pkg/decimal"
)

// ButtonVariant selects the visual style of a button.
type ButtonVariant string

const (
	VariantPrimary   ButtonVariant = "primary"
	VariantSecondary ButtonVariant = "secondary"
)

// ButtonKind is the element a button renders as.
type ButtonKind string

const (
	KindButton ButtonKind = "button"
	KindLink   ButtonKind = "link"
)

// IconView is a resolved request to draw one icon.
type IconView struct {
	Name        string   `json:"name"`
	Size        IconSize `json:"size"`
	Color       string   `json:"color"`
	Description string   `json:"description,omitempty"`
	Decorative  bool     `json:"decorative"`
}

// ButtonView is the render state of a button.
type ButtonView struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Variant  ButtonVariant `json:"variant"`
	Kind     ButtonKind    `json:"kind"`
	Disabled bool          `json:"disabled"`
	Href     string        `json:"href,omitempty"`
	Target   string        `json:"target,omitempty"`
}

// WidgetView is the render state of a payment widget card. Account is the
// display form ("•1234"), empty when no account is set.
type WidgetView struct {
	ID            string     `json:"id"`
	Date          string     `json:"date"`
	HeaderAmount  AmountView `json:"header_amount"`
	Title         string     `json:"title"`
	PaymentAmount AmountView `json:"payment_amount"`
	Account       string     `json:"account"`
	AccountIcon   IconView   `json:"account_icon"`
	Status        string     `json:"status"`
	Category      string     `json:"category"`
	CategoryIcon  IconView   `json:"category_icon"`
	Description   string     `json:"description"`
	Bullets       []string   `json:"bullets"`
	Primary       ButtonView `json:"primary_button"`
	Secondary     ButtonView `json:"secondary_button"`
}

// ButtonClick is emitted when a button is activated.
type ButtonClick struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// PaymentConfirm is emitted by the widget's primary action.
type PaymentConfirm struct {
	Amount        decimal.Money `json:"amount"`
	Currency      string        `json:"currency"`
	Status        string        `json:"status"`
	AccountNumber string        `json:"account_number"`
}

// GoToWeb is emitted by the widget's secondary action.
type GoToWeb struct {
	Amount decimal.Money `json:"amount"`
}

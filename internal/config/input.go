package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/paywidget/paywidget/internal/amount"
	"github.com/paywidget/paywidget/internal/domain"
	"github.com/paywidget/paywidget/internal/widget"
	"github.com/paywidget/paywidget/pkg/decimal"
	"gopkg.in/yaml.v3"
)

// Document is a widget definition file.
type Document struct {
	Widget WidgetSpec `yaml:"widget"`
	Theme  Theme      `yaml:"theme,omitempty"`
}

// WidgetSpec mirrors widget.Payment. Omitted fields keep the card defaults;
// enum-like fields are clamped at render time rather than rejected here.
type WidgetSpec struct {
	ID               string        `yaml:"id,omitempty" validate:"omitempty,max=64"`
	Date             string        `yaml:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	HeaderAmount     decimal.Money `yaml:"header_amount"`
	PaymentAmount    decimal.Money `yaml:"payment_amount"`
	Currency         string        `yaml:"currency" validate:"max=8"`
	Locale           string        `yaml:"locale"`
	CurrencyPosition string        `yaml:"currency_position"`
	HeaderTrend      string        `yaml:"header_trend"`
	Title            string        `yaml:"title" validate:"max=120"`
	AccountNumber    string        `yaml:"account_number" validate:"omitempty,max=34,alphanum"`
	Status           string        `yaml:"status" validate:"max=40"`
	Category         string        `yaml:"category" validate:"max=40"`
	Description      string        `yaml:"description" validate:"max=500"`
	Bullets          []string      `yaml:"bullets,omitempty" validate:"max=10,dive,max=200"`
	PrimaryButton    *ButtonSpec   `yaml:"primary_button,omitempty"`
	SecondaryButton  *ButtonSpec   `yaml:"secondary_button,omitempty"`
}

// ButtonSpec mirrors widget.Button.
type ButtonSpec struct {
	Label    string `yaml:"label" validate:"max=64"`
	Variant  string `yaml:"variant"`
	Disabled bool   `yaml:"disabled"`
	Href     string `yaml:"href" validate:"omitempty,url"`
}

// Theme holds consumer color overrides for trend tokens.
type Theme struct {
	TrendUp   string `yaml:"trend_up,omitempty" mapstructure:"trend_up" validate:"omitempty,iscolor"`
	TrendDown string `yaml:"trend_down,omitempty" mapstructure:"trend_down" validate:"omitempty,iscolor"`
}

// Palette returns the overrides keyed by color token. Empty entries are
// left out so the built-in fallbacks apply.
func (t Theme) Palette() amount.Palette {
	p := amount.Palette{}
	if t.TrendUp != "" {
		p[amount.TokenTrendUp] = t.TrendUp
	}
	if t.TrendDown != "" {
		p[amount.TokenTrendDown] = t.TrendDown
	}
	return p
}

// Merge returns t with every non-empty color of over applied on top.
func (t Theme) Merge(over Theme) Theme {
	setIf(&t.TrendUp, over.TrendUp)
	setIf(&t.TrendDown, over.TrendDown)
	return t
}

// InputParser handles parsing of widget documents
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{validate: validator.New()}
}

// LoadFromFile loads a widget document from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a widget document
func (ip *InputParser) Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateDocument(&doc); err != nil {
		return nil, fmt.Errorf("document validation failed: %w", err)
	}

	return &doc, nil
}

// ValidateDocument validates a decoded document
func (ip *InputParser) ValidateDocument(doc *Document) error {
	if err := ip.validate.Struct(doc); err != nil {
		return err
	}

	if strings.ContainsAny(doc.Widget.ID, " \t\n") {
		return fmt.Errorf("widget id %q must not contain whitespace", doc.Widget.ID)
	}

	for i, b := range doc.Widget.Bullets {
		if strings.TrimSpace(b) == "" {
			return fmt.Errorf("bullet %d is empty", i)
		}
	}

	if b := doc.Widget.PrimaryButton; b != nil && b.Label == "" && b.Href == "" && b.Variant == "" && !b.Disabled {
		return fmt.Errorf("primary_button is present but empty")
	}
	if b := doc.Widget.SecondaryButton; b != nil && b.Label == "" && b.Href == "" && b.Variant == "" && !b.Disabled {
		return fmt.Errorf("secondary_button is present but empty")
	}

	return nil
}

// Payment builds the card described by the document on top of the defaults.
func (d *Document) Payment() widget.Payment {
	p := widget.NewPayment()
	w := d.Widget

	p.Date = w.Date
	p.HeaderAmount = w.HeaderAmount
	p.PaymentAmount = w.PaymentAmount
	setIf(&p.Currency, w.Currency)
	setIf(&p.Locale, w.Locale)
	setIf((*string)(&p.Position), w.CurrencyPosition)
	setIf((*string)(&p.HeaderTrend), w.HeaderTrend)
	setIf(&p.Title, w.Title)
	p.AccountNumber = w.AccountNumber
	setIf(&p.Status, w.Status)
	setIf(&p.Category, w.Category)
	p.Description = w.Description
	p.Bullets = append([]string(nil), w.Bullets...)
	if w.PrimaryButton != nil {
		p.Primary = w.PrimaryButton.apply(p.Primary)
	}
	if w.SecondaryButton != nil {
		p.Secondary = w.SecondaryButton.apply(p.Secondary)
	}
	return p
}

func (b *ButtonSpec) apply(base widget.Button) widget.Button {
	setIf(&base.Label, b.Label)
	setIf((*string)(&base.Variant), b.Variant)
	setIf(&base.Href, b.Href)
	base.Disabled = b.Disabled
	return base
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// CreateExampleDocument returns a fully populated example document
func (ip *InputParser) CreateExampleDocument() *Document {
	header, _ := decimal.NewMoneyFromString("15420.50")
	payment, _ := decimal.NewMoneyFromString("1250.00")
	return &Document{
		Widget: WidgetSpec{
			ID:               "rent-may",
			Date:             "2024-05-01",
			HeaderAmount:     header,
			PaymentAmount:    payment,
			Currency:         "€",
			Locale:           "es-ES",
			CurrencyPosition: string(domain.PositionAfter),
			HeaderTrend:      string(domain.TrendUp),
			Title:            "Monthly rent",
			AccountNumber:    "4821",
			Status:           "Pending",
			Category:         "Housing",
			Description:      "Transfer to landlord",
			Bullets:          []string{"No fees", "Arrives in 1 business day"},
		},
	}
}

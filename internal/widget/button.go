package widget

import "github.com/paywidget/paywidget/internal/domain"

// Button is a button or, when Href is set, a link styled as one.
type Button struct {
	Label    string
	Variant  domain.ButtonVariant
	Disabled bool
	Href     string
}

// NewButton returns a button with the default label and variant.
func NewButton() Button {
	return Button{Label: "Click me", Variant: domain.VariantPrimary}
}

// ValidateVariant clamps a button variant, defaulting to primary.
func ValidateVariant(raw string) domain.ButtonVariant {
	switch v := domain.ButtonVariant(raw); v {
	case domain.VariantPrimary, domain.VariantSecondary:
		return v
	}
	return domain.VariantPrimary
}

// Kind reports whether the button renders as a link or a button.
func (b Button) Kind() domain.ButtonKind {
	if b.Href != "" {
		return domain.KindLink
	}
	return domain.KindButton
}

// Click activates the button. Disabled buttons emit nothing; links ignore
// Disabled.
func (b Button) Click() (domain.ButtonClick, bool) {
	if b.Kind() == domain.KindButton && b.Disabled {
		return domain.ButtonClick{}, false
	}
	return domain.ButtonClick{Label: b.Label, Href: b.Href}, true
}

// KeyDown handles a key press on a focused button. Enter and space activate
// it; links rely on their own navigation and ignore keys.
func (b Button) KeyDown(key string) (domain.ButtonClick, bool) {
	if b.Kind() != domain.KindButton {
		return domain.ButtonClick{}, false
	}
	switch key {
	case "Enter", " ":
		return b.Click()
	}
	return domain.ButtonClick{}, false
}

// View returns the render state of the button under the given element id.
func (b Button) View(id string) domain.ButtonView {
	v := domain.ButtonView{
		ID:      id,
		Label:   b.Label,
		Variant: ValidateVariant(string(b.Variant)),
		Kind:    b.Kind(),
	}
	if v.Kind == domain.KindLink {
		v.Href = b.Href
		v.Target = "_blank"
	} else {
		v.Disabled = b.Disabled
	}
	return v
}

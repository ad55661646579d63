package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/paywidget/paywidget/internal/domain"
)

const (
	colorMuted   lipgloss.Color = "#6c7086"
	colorPrimary lipgloss.Color = "#1973b8"
	colorStatus  lipgloss.Color = "#f9e2af"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	amountStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(colorStatus)
	primaryStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
)

// ConsoleFormatter renders the widget as a bordered terminal card.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(view *domain.WidgetView) ([]byte, error) {
	var lines []string

	header := ConsoleAmount(view.HeaderAmount)
	if view.Date != "" {
		header = mutedStyle.Render(view.Date) + "  " + header
	}
	lines = append(lines, header, "")

	lines = append(lines, titleStyle.Render(view.Title))
	lines = append(lines, amountStyle.Render(view.PaymentAmount.Text), "")

	if view.Account != "" {
		lines = append(lines, mutedStyle.Render("Account")+" "+view.Account)
	}
	lines = append(lines, statusStyle.Render(view.Status)+mutedStyle.Render(" · ")+view.Category)
	if view.Description != "" {
		lines = append(lines, view.Description)
	}
	for _, b := range view.Bullets {
		lines = append(lines, "  • "+b)
	}
	lines = append(lines, "", consoleButton(view.Primary)+"  "+consoleButton(view.Secondary))

	return []byte(cardStyle.Render(strings.Join(lines, "\n")) + "\n"), nil
}

// ConsoleAmount renders an amount with its trend arrow, colored with the
// resolved trend color when the terminal supports it.
func ConsoleAmount(v domain.AmountView) string {
	if v.Hint == nil {
		return amountStyle.Render(v.Text)
	}
	arrow := lipgloss.NewStyle().Foreground(lipgloss.Color(v.Hint.Color)).Render(TrendArrow(v.Trend))
	return amountStyle.Render(v.Text) + " " + arrow
}

func consoleButton(b domain.ButtonView) string {
	label := "[ " + b.Label + " ]"
	switch {
	case b.Kind == domain.KindLink:
		label += " " + mutedStyle.Render("↗ "+b.Href)
	case b.Disabled:
		return mutedStyle.Render(label + " (disabled)")
	}
	if b.Variant == domain.VariantPrimary {
		return primaryStyle.Render(label)
	}
	return label
}

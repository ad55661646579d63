package preview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/paywidget/paywidget/internal/amount"
	"github.com/paywidget/paywidget/internal/domain"
	"github.com/paywidget/paywidget/pkg/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		if k == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func newModel() Model {
	return New(amount.NewEngine(), domain.AmountRequest{Value: 1234.5, Currency: "€"}, []string{"en-US", "es-ES"})
}

func TestNewUsesFirstLocale(t *testing.T) {
	m := newModel()
	assert.Nil(t, m.Init())
	assert.Equal(t, "1,234.50 €", m.Current().Text)
	assert.Equal(t, "en-US", m.Current().Locale)
}

func TestNewKeepsRequestLocale(t *testing.T) {
	m := New(amount.NewEngine(), domain.AmountRequest{Value: 1, Locale: "de-DE"}, nil)
	assert.Equal(t, "de-DE", m.Current().Locale)

	m = New(amount.NewEngine(), domain.AmountRequest{Value: 1, Locale: "pt-BR"}, []string{"en-US"})
	assert.Equal(t, "pt-BR", m.Current().Locale)
	m = press(t, m, "l")
	assert.Equal(t, "en-US", m.Current().Locale)
}

func TestLocaleCycle(t *testing.T) {
	m := press(t, newModel(), "l")
	assert.Equal(t, "1.234,50 €", m.Current().Text)
	m = press(t, m, "l")
	assert.Equal(t, "1,234.50 €", m.Current().Text)
}

func TestPositionToggle(t *testing.T) {
	m := press(t, newModel(), "p")
	assert.Equal(t, "€ 1,234.50", m.Current().Text)
	m = press(t, m, "p")
	assert.Equal(t, "1,234.50 €", m.Current().Text)
}

func TestTrendAndSizeCycle(t *testing.T) {
	m := newModel()
	assert.Equal(t, domain.TrendNone, m.Current().Trend)
	assert.Equal(t, domain.SizeM, m.Current().Size)

	m = press(t, m, "t")
	assert.Equal(t, domain.TrendUp, m.Current().Trend)
	require.NotNil(t, m.Current().Hint)
	m = press(t, m, "t", "t")
	assert.Equal(t, domain.TrendNone, m.Current().Trend)
	assert.Nil(t, m.Current().Hint)

	m = press(t, m, "s")
	assert.Equal(t, domain.SizeL, m.Current().Size)
	m = press(t, m, "s", "s")
	assert.Equal(t, domain.SizeS, m.Current().Size)
}

func TestValueKeys(t *testing.T) {
	m := press(t, newModel(), "+", "+")
	assert.Equal(t, "1,434.50 €", m.Current().Text)
	m = press(t, m, "-", "n")
	assert.Equal(t, "-1,334.50 €", m.Current().Text)
}

func TestValueKeysWithMoney(t *testing.T) {
	money, err := decimal.NewMoneyFromString("0.10")
	require.NoError(t, err)
	m := New(amount.NewEngine(), domain.AmountRequest{Money: &money, Currency: "$", Position: domain.PositionBefore}, []string{"en-US"})
	m = press(t, m, "-", "n")
	assert.Equal(t, "$ 99.90", m.Current().Text)
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newModel()
		var msg tea.KeyMsg
		if k == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, cmd := m.Update(msg)
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, next.(Model).Quitting())
		assert.Empty(t, next.View())
	}
}

func TestViewShowsState(t *testing.T) {
	m := press(t, newModel(), "t")
	out := m.View()
	assert.Contains(t, out, "1,234.50 €")
	assert.Contains(t, out, "en-US")
	assert.Contains(t, out, "Increasing trend")
	assert.Contains(t, out, "q quit")
}

func TestIgnoresOtherMessages(t *testing.T) {
	m := newModel()
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, m.Current(), next.(Model).Current())
}

package widget

import (
	"testing"

	"github.com/paywidget/paywidget/internal/amount"
	"github.com/paywidget/paywidget/internal/domain"
	"github.com/paywidget/paywidget/pkg/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountSettersRerender(t *testing.T) {
	a := NewAmount(amount.NewEngine(), domain.AmountRequest{Value: 12345.67, Currency: "€", Locale: "en-US"})
	assert.Equal(t, "12,345.67 €", a.View().Text)

	v := a.SetLocale("es-ES")
	assert.Equal(t, "12.345,67 €", v.Text)
	assert.Equal(t, v, a.View())

	assert.Equal(t, "€ 12.345,67", a.SetPosition(domain.PositionBefore).Text)
	assert.Equal(t, "CHF 12.345,67", a.SetCurrency("CHF").Text)
	assert.Equal(t, "CHF -5,00", a.SetValue(-5).Text)

	v = a.SetTrend(domain.TrendDown)
	require.NotNil(t, v.Hint)
	assert.Equal(t, domain.IconS, v.Hint.IconSize)

	v = a.SetSize(domain.SizeXL)
	assert.Equal(t, domain.IconL, v.Hint.IconSize)

	m, err := decimal.NewMoneyFromString("0.125")
	require.NoError(t, err)
	assert.Equal(t, "CHF 0,13", a.SetMoney(m).Text)

	assert.Equal(t, "CHF 1,00", a.SetValue(1).Text, "SetValue clears the exact amount")
	assert.Nil(t, a.Request().Money)
}

package amount

import (
	"testing"

	"github.com/paywidget/paywidget/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockColorSource struct {
	mock.Mock
}

func (m *mockColorSource) Lookup(token string) (string, bool) {
	args := m.Called(token)
	return args.String(0), args.Bool(1)
}

func TestIconSizeFor(t *testing.T) {
	assert.Equal(t, domain.IconXS, IconSizeFor(domain.SizeS))
	assert.Equal(t, domain.IconS, IconSizeFor(domain.SizeM))
	assert.Equal(t, domain.IconM, IconSizeFor(domain.SizeL))
	assert.Equal(t, domain.IconL, IconSizeFor(domain.SizeXL))
	assert.Equal(t, domain.IconXS, IconSizeFor("xxl"))
}

func TestResolveTrend_Fallbacks(t *testing.T) {
	up := ResolveTrend(domain.TrendUp, domain.SizeM, nil)
	require.NotNil(t, up)
	assert.Equal(t, "caret-up", up.IconName)
	assert.Equal(t, "#02702a", up.Color)
	assert.Equal(t, TokenTrendUp, up.ColorToken)
	assert.Equal(t, domain.IconS, up.IconSize)
	assert.Equal(t, "Increasing trend", up.Description)

	down := ResolveTrend(domain.TrendDown, domain.SizeXL, Palette{})
	require.NotNil(t, down)
	assert.Equal(t, "caret-down", down.IconName)
	assert.Equal(t, "#aa0f0f", down.Color)
	assert.Equal(t, domain.IconL, down.IconSize)

	assert.Nil(t, ResolveTrend(domain.TrendNone, domain.SizeM, nil))
	assert.Nil(t, ResolveTrend("sideways", domain.SizeM, nil))
}

func TestResolveTrend_InvalidSizeUsesDefault(t *testing.T) {
	hint := ResolveTrend(domain.TrendUp, "giant", nil)
	require.NotNil(t, hint)
	assert.Equal(t, domain.IconS, hint.IconSize)
}

func TestResolveTrend_Override(t *testing.T) {
	src := &mockColorSource{}
	src.On("Lookup", TokenTrendUp).Return("#00ff00", true)

	hint := ResolveTrend(domain.TrendUp, domain.SizeL, src)
	require.NotNil(t, hint)
	assert.Equal(t, "#00ff00", hint.Color)
	src.AssertExpectations(t)
}

func TestResolveColor(t *testing.T) {
	src := &mockColorSource{}
	src.On("Lookup", TokenTrendDown).Return("   ", true)
	src.On("Lookup", TokenTrendUp).Return("", false)
	src.On("Lookup", "brand").Return(" #123456 ", true)

	assert.Equal(t, "#aa0f0f", ResolveColor(TokenTrendDown, src))
	assert.Equal(t, "#02702a", ResolveColor(TokenTrendUp, src))
	assert.Equal(t, "#123456", ResolveColor("brand", src))
	assert.Equal(t, "", ResolveColor("brand", nil))
	src.AssertExpectations(t)
}

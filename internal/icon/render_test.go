package icon

import (
	"strings"
	"testing"

	"github.com/paywidget/paywidget/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSize(t *testing.T) {
	for _, s := range []string{"xs", "s", "default", "m", "l", "xl"} {
		assert.Equal(t, domain.IconSize(s), ValidateSize(s))
	}
	assert.Equal(t, domain.IconDefault, ValidateSize(""))
	assert.Equal(t, domain.IconDefault, ValidateSize("xxl"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Increasing trend", Title("caret-up", "Increasing trend"))
	assert.Equal(t, "caret up", Title("caret-up", ""))
	assert.Equal(t, "bank reduced-logo", Title("bank-reduced-logo", ""))
}

func TestRenderSVG_Decorative(t *testing.T) {
	out, ok := Default().RenderSVG(domain.IconView{
		Name:        "caret-up",
		Size:        domain.IconS,
		Color:       "#02702a",
		Description: "Increasing trend",
		Decorative:  true,
	})
	require.True(t, ok)

	html := string(out)
	assert.Contains(t, html, `class="ui-icon ui-icon--s"`)
	assert.Contains(t, html, `aria-hidden="true"`)
	assert.Contains(t, html, `role="presentation"`)
	assert.Contains(t, html, `<title>Increasing trend</title>`)
	assert.Contains(t, html, `fill="#02702a"`)
	assert.NotContains(t, html, `role="img"`)
}

func TestRenderSVG_Labelled(t *testing.T) {
	out, ok := Default().RenderSVG(domain.IconView{Name: "bank-reduced-logo", Size: "huge"})
	require.True(t, ok)

	html := string(out)
	assert.Contains(t, html, `ui-icon--default`)
	assert.Contains(t, html, `role="img"`)
	assert.Contains(t, html, `aria-label="bank reduced-logo"`)
	assert.Contains(t, html, `fill="currentColor"`)
	assert.NotContains(t, html, "<title>")
	assert.Equal(t, 3, strings.Count(html, "<path "))
}

func TestRenderSVG_Missing(t *testing.T) {
	out, ok := Default().RenderSVG(domain.IconView{})
	assert.False(t, ok)
	assert.Empty(t, out)

	out, ok = Default().RenderSVG(domain.IconView{Name: "unicorn"})
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestRenderSVG_EscapesDescription(t *testing.T) {
	out, ok := Default().RenderSVG(domain.IconView{Name: "car", Description: `<script>"x"</script>`})
	require.True(t, ok)
	assert.NotContains(t, string(out), "<script>")
}

//go:build unit

package output

import (
	"testing"

	"github.com/paywidget/paywidget/internal/domain"
)

func TestTrendArrow(t *testing.T) {
	if got, want := TrendArrow(domain.TrendUp), "▲"; got != want {
		t.Errorf("TrendArrow(up) = %q, want %q", got, want)
	}
	if got, want := TrendArrow(domain.TrendDown), "▼"; got != want {
		t.Errorf("TrendArrow(down) = %q, want %q", got, want)
	}
	if got := TrendArrow(domain.TrendNone); got != "" {
		t.Errorf("TrendArrow(none) = %q, want empty", got)
	}
}

func TestAmountLabel(t *testing.T) {
	v := domain.AmountView{Text: "5,00 €"}
	if got := AmountLabel(v); got != "5,00 €" {
		t.Errorf("AmountLabel without hint = %q", got)
	}
	v.Hint = &domain.TrendHint{Description: "Decreasing trend"}
	if got, want := AmountLabel(v), "5,00 €, Decreasing trend"; got != want {
		t.Errorf("AmountLabel = %q, want %q", got, want)
	}
}

func TestAccountLabel(t *testing.T) {
	if got, want := AccountLabel(&domain.WidgetView{Account: "•4821"}), "The account number is 4821"; got != want {
		t.Errorf("AccountLabel = %q, want %q", got, want)
	}
	if got, want := AccountLabel(&domain.WidgetView{}), "No account number"; got != want {
		t.Errorf("AccountLabel(empty) = %q, want %q", got, want)
	}
}

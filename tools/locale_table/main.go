package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/paywidget/paywidget/internal/amount"
	"github.com/paywidget/paywidget/internal/config"
)

var locales = []string{"en-US", "en-GB", "es-ES", "de-DE", "de-CH", "fr-FR", "it-IT", "pt-BR", "ja-JP", "hi-IN", "ar-EG"}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: locale_table <widget-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	doc, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	engine := amount.NewEngineWithConfig("", doc.Theme.Palette())

	if err := writeTable(os.Stdout, doc, engine, locales); err != nil {
		panic(err)
	}
}

// writeTable writes one CSV row per locale with the card's header and
// payment amounts rendered in that locale.
func writeTable(w io.Writer, doc *config.Document, engine *amount.Engine, locales []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Locale", "Header", "Payment"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, l := range locales {
		card := doc.Payment()
		card.Locale = l
		v := card.View(engine, doc.Widget.ID)
		if err := cw.Write([]string{l, v.HeaderAmount.Text, v.PaymentAmount.Text}); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", l, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

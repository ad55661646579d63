package main

import (
	"fmt"

	"github.com/paywidget/paywidget/internal/amount"
	"github.com/paywidget/paywidget/pkg/decimal"
)

func main() {
	ties := []string{"0.005", "0.015", "1.005", "2.345", "-2.345", "1234.565", "-0.004"}

	fmt.Println("Half-cent ties, float input vs exact input (en-US):")
	for _, s := range ties {
		m, err := decimal.NewMoneyFromString(s)
		if err != nil {
			panic(err)
		}
		f := m.Decimal.InexactFloat64()
		fmt.Printf("  %-9s float=%-10s exact=%s\n", s, amount.FormatNumber(f, "en-US"), amount.FormatMoney(m, "en-US"))
	}

	fmt.Println("Same exact amounts in es-ES and de-CH:")
	for _, s := range ties {
		m, _ := decimal.NewMoneyFromString(s)
		fmt.Printf("  %-9s es-ES=%-10s de-CH=%s\n", s, amount.FormatMoney(m, "es-ES"), amount.FormatMoney(m, "de-CH"))
	}
}

package main

import (
	"encoding/json"
	"fmt"

	"github.com/paywidget/paywidget/internal/config"
	"github.com/paywidget/paywidget/internal/domain"
	"github.com/paywidget/paywidget/internal/output"
	"github.com/paywidget/paywidget/pkg/decimal"
	"github.com/spf13/cobra"
)

type amountFlags struct {
	value    float64
	money    string
	currency string
	locale   string
	position string
	size     string
	trend    string
}

func (f *amountFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.value, "value", 0, "amount to format")
	cmd.Flags().StringVar(&f.money, "money", "", "exact decimal amount; takes precedence over --value")
	cmd.Flags().StringVar(&f.currency, "currency", "", "currency symbol")
	cmd.Flags().StringVar(&f.locale, "locale", "", "BCP-47 locale (default from settings)")
	cmd.Flags().StringVar(&f.position, "position", "", "currency position: before or after")
	cmd.Flags().StringVar(&f.size, "size", "", "display size: s, m, l or xl")
	cmd.Flags().StringVar(&f.trend, "trend", "", "trend: up, down or none")
}

func (f *amountFlags) request() (domain.AmountRequest, error) {
	req := domain.AmountRequest{
		Value:    f.value,
		Currency: f.currency,
		Locale:   f.locale,
		Position: domain.Position(f.position),
		Size:     domain.Size(f.size),
		Trend:    domain.Trend(f.trend),
	}
	if f.money != "" {
		m, err := decimal.NewMoneyFromString(f.money)
		if err != nil {
			return req, fmt.Errorf("invalid --money %q: %w", f.money, err)
		}
		req.Money = &m
	}
	return req, nil
}

func newFormatCmd(a *app) *cobra.Command {
	var flags amountFlags
	var format string

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format a single amount",
		Example: "  paywidget format --value 1234.5 --currency € --locale es-ES\n" +
			"  paywidget format --money 10.125 --currency $ --position before --trend up --format json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}
			view := a.engine(config.Theme{}).Render(req)

			out := cmd.OutOrStdout()
			switch output.NormalizeFormatName(format) {
			case "json":
				data, err := json.MarshalIndent(view, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			case "console":
				fmt.Fprintln(out, output.ConsoleAmount(view))
			default:
				fmt.Fprintln(out, view.Text)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", "plain", "plain, console or json")
	return cmd
}

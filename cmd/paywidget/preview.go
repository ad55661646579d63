package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/paywidget/paywidget/internal/config"
	"github.com/paywidget/paywidget/internal/preview"
	"github.com/spf13/cobra"
)

func newPreviewCmd(a *app) *cobra.Command {
	var flags amountFlags
	var locales []string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively preview an amount in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}
			if req.Locale == "" {
				req.Locale = a.settings.Locale
			}
			m := preview.New(a.engine(config.Theme{}), req, locales)
			p := tea.NewProgram(m, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("preview: %w", err)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringSliceVar(&locales, "locales", nil, "locales cycled with the l key")
	return cmd
}

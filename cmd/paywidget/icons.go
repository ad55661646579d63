package main

import (
	"fmt"

	"github.com/paywidget/paywidget/internal/domain"
	"github.com/paywidget/paywidget/internal/icon"
	"github.com/spf13/cobra"
)

func newIconsCmd(a *app) *cobra.Command {
	var size, color string

	cmd := &cobra.Command{
		Use:   "icons [NAME]",
		Short: "List the built-in icons, or print one as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := icon.Default()
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, n := range reg.Names() {
					fmt.Fprintln(out, n)
				}
				return nil
			}

			name := args[0]
			svg, ok := reg.RenderSVG(domain.IconView{Name: name, Size: icon.ValidateSize(size), Color: color})
			if !ok {
				if s := reg.Suggest(name); s != "" {
					return fmt.Errorf("unknown icon %q; did you mean %q?", name, s)
				}
				return fmt.Errorf("unknown icon %q", name)
			}
			fmt.Fprintln(out, svg)
			return nil
		},
	}
	cmd.Flags().StringVar(&size, "size", "default", "icon size: xs, s, default, m, l or xl")
	cmd.Flags().StringVar(&color, "color", "", "fill color (default currentColor)")
	return cmd
}

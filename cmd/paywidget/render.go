package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/paywidget/paywidget/internal/config"
	"github.com/paywidget/paywidget/internal/output"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var format, out, id string

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a payment card from a YAML widget document",
		Long: "Render a payment card from a YAML widget document.\n\n" +
			"With --format all, every formatter writes a timestamped file into the\n" +
			"directory given by --out (default the working directory).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.settings.Format
			}
			all := output.NormalizeFormatName(format) == output.FormatAll

			var f output.Formatter
			if !all {
				var err error
				if f, err = output.LookupFormatter(format); err != nil {
					return err
				}
			}

			doc, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if id == "" {
				id = doc.Widget.ID
			}
			view := doc.Payment().View(a.engine(doc.Theme), id)

			if all {
				files, err := output.GenerateReport(&view, format, out)
				for _, name := range files {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return err
			}

			a.log.Debugw("rendering widget", "file", args[0], "formatter", f.Name(), "id", view.ID)
			data, err := f.Format(&view)
			if err != nil {
				return fmt.Errorf("format %s: %w", f.Name(), err)
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			a.log.Infof("wrote %s", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: "+strings.Join(output.AvailableFormatterNames(), ", ")+" or all (default from settings)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file (a directory with --format all) instead of stdout")
	cmd.Flags().StringVar(&id, "id", "", "element id (default from the document, else a random UUID)")
	return cmd
}

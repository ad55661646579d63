package main

import (
	"fmt"

	"github.com/paywidget/paywidget/internal/amount"
	"github.com/paywidget/paywidget/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configFile string
	envFile    string
	logLevel   string

	settings config.Settings
	log      *zap.SugaredLogger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "paywidget",
		Short:         "Locale-aware amount formatting and payment cards",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "settings file (default ./paywidget.yaml or ~/.config/paywidget/paywidget.yaml)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "dotenv file to load (default ./.env)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides settings)")

	root.AddCommand(
		newFormatCmd(a),
		newRenderCmd(a),
		newIconsCmd(a),
		newPreviewCmd(a),
		newInitCmd(a),
	)
	return root
}

func (a *app) setup() error {
	s, err := config.LoadSettings(config.SettingsSource{ConfigFile: a.configFile, EnvFile: a.envFile})
	if err != nil {
		return err
	}
	a.settings = s

	level := s.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	log, err := newLogger(level)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	a.log = log
	log.Debugw("settings loaded", "locale", s.Locale, "format", s.Format)
	return nil
}

// engine returns a formatting engine with the configured default locale and
// the settings theme, overridden by theme where it sets a color.
func (a *app) engine(theme config.Theme) *amount.Engine {
	e := amount.NewEngineWithConfig(a.settings.Locale, a.settings.Theme.Merge(theme).Palette())
	e.SetLogger(a.log)
	return e
}

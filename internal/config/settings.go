package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/paywidget/paywidget/pkg/locale"
	"github.com/spf13/viper"
)

// Settings holds application-level preferences.
type Settings struct {
	Locale   string `mapstructure:"locale"`
	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"log_level"`
	Theme    Theme  `mapstructure:"theme"`
}

// SettingsSource says where settings come from. Empty fields use the
// defaults: ./.env, and paywidget.yaml in . or ~/.config/paywidget.
type SettingsSource struct {
	ConfigFile string
	EnvFile    string
}

// LoadSettings reads the .env file (if present), the settings file (if
// present) and PAYWIDGET_* environment variables, in increasing precedence.
func LoadSettings(src SettingsSource) (Settings, error) {
	envFile := src.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("load env file %s: %w", envFile, err)
	}

	v := viper.New()

	defaultLocale := locale.FromEnv(os.Getenv)
	if defaultLocale == "" {
		defaultLocale = locale.Default.String()
	}
	v.SetDefault("locale", defaultLocale)
	v.SetDefault("format", "console")
	v.SetDefault("log_level", "info")
	v.SetDefault("theme.trend_up", "")
	v.SetDefault("theme.trend_down", "")

	v.SetConfigType("yaml")
	if src.ConfigFile != "" {
		v.SetConfigFile(src.ConfigFile)
	} else {
		v.SetConfigName("paywidget")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "paywidget"))
		}
	}

	v.SetEnvPrefix("PAYWIDGET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if src.ConfigFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return s, nil
}

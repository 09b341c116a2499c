package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	apperrors "lingo/internal/errors"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// Config holds application configuration.
type Config struct {
	Env         Environment
	Port        string
	LogLevel    string
	LogFormat   string
	LogOutput   string
	LogFilePath string
	I18n        I18nConfig
}

// I18nConfig holds the locale resolution configuration. All fields are
// fixed at startup and safe for unsynchronized concurrent reads.
type I18nConfig struct {
	LocaleDir        string
	SupportedLocales []string
	DefaultLocale    string
}

// Load reads configuration from environment variables, consulting an
// optional .env file first.
func Load() (Config, error) {
	_ = godotenv.Load()

	env := parseEnv(getEnv("APP_ENV", "dev"))
	i18nCfg, err := loadI18nConfig()
	if err != nil {
		return Config{}, err
	}

	return Config{
		Env:         env,
		Port:        getEnv("PORT", "52100"),
		LogLevel:    getEnv("LOG_LEVEL", defaultLogLevel(env)),
		LogFormat:   getEnv("LOG_FORMAT", defaultLogFormat(env)),
		LogOutput:   getEnv("LOG_OUTPUT", "stdout"),
		LogFilePath: getEnv("LOG_FILE_PATH", ""),
		I18n:        i18nCfg,
	}, nil
}

func loadI18nConfig() (I18nConfig, error) {
	dir := strings.TrimSpace(getEnv("LOCALE_DIR", "./locales"))
	if dir == "" {
		return I18nConfig{}, apperrors.ErrLocaleDirEmpty
	}

	supported := splitList(getEnv("SUPPORTED_LOCALES", "en,fr"))
	if len(supported) == 0 {
		return I18nConfig{}, apperrors.ErrNoSupportedLocales
	}

	defaultLocale := strings.TrimSpace(getEnv("DEFAULT_LOCALE", supported[0]))
	if !contains(supported, defaultLocale) {
		return I18nConfig{}, fmt.Errorf("%w: %q not in %v", apperrors.ErrDefaultLocaleNotSupported, defaultLocale, supported)
	}

	return I18nConfig{
		LocaleDir:        dir,
		SupportedLocales: supported,
		DefaultLocale:    defaultLocale,
	}, nil
}

// IsDev returns true if the environment is development.
func (c Config) IsDev() bool {
	return c.Env == EnvDev
}

// IsProd returns true if the environment is production.
func (c Config) IsProd() bool {
	return c.Env == EnvProd
}

func parseEnv(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prod", "production":
		return EnvProd
	default:
		return EnvDev
	}
}

func defaultLogLevel(env Environment) string {
	switch env {
	case EnvProd:
		return "info"
	default:
		return "debug"
	}
}

func defaultLogFormat(env Environment) string {
	switch env {
	case EnvProd:
		return "json"
	default:
		return "console"
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

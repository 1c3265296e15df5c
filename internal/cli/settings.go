package cli

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/schemakit/pkg/config"
	"github.com/dmitrymomot/schemakit/pkg/logger"
)

// EnvPrefix is prepended to every environment variable the command reads.
const EnvPrefix = "SCHEMAKIT_"

// Output formats for validated documents and error lists.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Settings are read from SCHEMAKIT_* variables and an optional .env file.
// Command-line flags override them.
type Settings struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	CoerceAll bool   `env:"COERCE_ALL"`
	Output    string `env:"OUTPUT" envDefault:"json"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := config.Load(&s, config.WithPrefix(EnvPrefix), config.WithEnvFiles(".env")); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	switch s.Output {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, s.Output)
	}
	switch logger.Format(s.LogFormat) {
	case logger.FormatJSON, logger.FormatText:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, s.LogFormat)
	}
	if _, err := logger.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// newLogger expects validated settings.
func (s Settings) newLogger(opts ...logger.Option) *slog.Logger {
	level, _ := logger.ParseLevel(s.LogLevel)
	return logger.New(append([]logger.Option{
		logger.WithLevel(level),
		logger.WithFormat(logger.Format(s.LogFormat)),
	}, opts...)...)
}

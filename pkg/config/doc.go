// Package config loads settings from environment variables into tagged
// structs. It wraps github.com/joho/godotenv for optional .env files and
// github.com/caarlos0/env/v11 for parsing.
//
// # Usage
//
//	type Settings struct {
//	    LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//	    CoerceAll bool   `env:"COERCE_ALL"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("SCHEMAKIT_"), config.WithEnvFiles(".env")); err != nil {
//	    return err
//	}
//
// Values already present in the process environment take precedence over
// those read from .env files; missing .env files are ignored.
//
// # Error Handling
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFiles or ErrNilPointer and can
// be matched with errors.Is.
package config

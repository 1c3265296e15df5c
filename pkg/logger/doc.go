// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers that keep key names consistent across the
// validation engine and the schemakit command.
//
// # Usage
//
//	import "github.com/dmitrymomot/schemakit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithAttr(logger.Schema("signup")),
//	)
//	log.Debug("validation failed", logger.Path("email"), logger.Validator("text"))
//
// Noop returns a logger that discards everything; the validator package uses
// it when no logger is supplied with validator.WithLogger.
//
// # Error Handling
//
// Error produces an attribute only when the supplied error is non-nil, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check. ParseLevel returns ErrInvalidLevel for unknown names.
package logger

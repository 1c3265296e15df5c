package cli

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOutput    = errors.New("invalid output format")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrReadInput        = errors.New("failed to read input")
	ErrParseInput       = errors.New("failed to parse input")
	// ErrInvalidDocument is wrapped by the ExitError returned when a document fails validation.
	ErrInvalidDocument = errors.New("document is invalid")
)

// Exit codes.
const (
	ExitInvalid = 1
	ExitFailure = 2
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an Execute error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

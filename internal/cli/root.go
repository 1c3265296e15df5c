// Package cli implements the schemakit command: it validates JSON or YAML
// documents against the named schemas of internal/schemas.
package cli

import (
	"github.com/spf13/cobra"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

// NewRootCmd builds the command tree. Settings supply flag defaults.
func NewRootCmd(s Settings) *cobra.Command {
	root := &cobra.Command{
		Use:   "schemakit",
		Short: "Validate documents against declarative schemas",
		Long: `schemakit validates JSON or YAML documents against named schemas and
prints either the normalized document or the list of validation errors.

Settings are read from SCHEMAKIT_LOG_LEVEL, SCHEMAKIT_LOG_FORMAT,
SCHEMAKIT_COERCE_ALL and SCHEMAKIT_OUTPUT, optionally through a .env file.

Examples:
  schemakit schemas
  schemakit validate --schema signup form.json
  cat order.yaml | schemakit validate --schema order --output yaml`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&s.LogLevel, "log-level", s.LogLevel, "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&s.LogFormat, "log-format", s.LogFormat, "log format: text, json")

	root.AddCommand(newValidateCmd(&s))
	root.AddCommand(newSchemasCmd())
	return root
}

// Execute loads settings and runs the command with the process arguments.
func Execute() error {
	s, err := LoadSettings()
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	return NewRootCmd(s).Execute()
}

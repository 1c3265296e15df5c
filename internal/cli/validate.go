package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/schemakit/internal/schemas"
	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func newValidateCmd(s *Settings) *cobra.Command {
	var schemaName string

	cmd := &cobra.Command{
		Use:   "validate --schema NAME [file]",
		Short: "Validate a JSON or YAML document",
		Long: `Validate a document against a named schema.

The document is read from file, or from stdin when file is "-" or omitted.
JSON documents are accepted as YAML. On success the normalized document is
printed; otherwise the flattened errors are printed and the exit code is 1.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runValidate(cmd, *s, schemaName, path)
		},
	}

	cmd.Flags().StringVarP(&schemaName, "schema", "s", "", "schema name (see 'schemakit schemas')")
	cmd.Flags().StringVarP(&s.Output, "output", "o", s.Output, "output format: json, yaml")
	cmd.Flags().BoolVar(&s.CoerceAll, "coerce-all", s.CoerceAll, "coerce every value toward its target type")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

func runValidate(cmd *cobra.Command, s Settings, schemaName, path string) error {
	if err := s.validate(); err != nil {
		return err
	}
	schema, err := schemas.Get(schemaName)
	if err != nil {
		return err
	}

	log := s.newLogger(
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(logger.Schema(schemaName), logger.File(path)),
	)

	doc, err := readDocument(cmd.InOrStdin(), path)
	if err != nil {
		log.Error("reading document", logger.Error(err))
		return err
	}

	opts := []validator.Option{validator.WithLogger(log)}
	if s.CoerceAll {
		opts = append(opts, validator.WithCoerceAll())
	}

	res := schema.TryValidate(doc, opts...)
	if !res.Valid {
		errs := res.Errors.Flatten()
		log.Info("document is invalid", "errors", len(errs))
		if err := render(cmd.OutOrStdout(), s.Output, errs); err != nil {
			return err
		}
		return &ExitError{Code: ExitInvalid, Err: ErrInvalidDocument}
	}

	log.Info("document is valid")
	return render(cmd.OutOrStdout(), s.Output, res.Value)
}

func readDocument(stdin io.Reader, path string) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Join(ErrReadInput, err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrParseInput, err)
	}
	return doc, nil
}

func render(w io.Writer, format string, value any) error {
	switch format {
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, format)
	}
}

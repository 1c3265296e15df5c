package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dmitrymomot/schemakit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if !errors.Is(err, cli.ErrInvalidDocument) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(cli.ExitCode(err))
	}
}

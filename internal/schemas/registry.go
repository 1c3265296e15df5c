// Package schemas holds the named schemas shipped with the schemakit command.
package schemas

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

// ErrUnknownSchema is returned by Get for names that are not registered.
var ErrUnknownSchema = errors.New("unknown schema")

// registry maps names to constructors so every Get returns a fresh tree.
var registry = map[string]func() validator.Validator{
	"signup":  func() validator.Validator { return Signup() },
	"contact": func() validator.Validator { return Contact() },
	"order":   func() validator.Validator { return Order() },
}

// Names returns the registered schema names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Get builds the named schema.
func Get(name string) (validator.Validator, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, name)
	}
	return build(), nil
}

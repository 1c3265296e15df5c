package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func TestFieldRules(t *testing.T) {
	t.Parallel()

	v := validator.Dictionary(validator.Schema{
		"password": validator.Text().Required(),
		"confirm":  validator.Text().Required().Use(validator.EqualsField("password")),
		"old":      validator.Text().Use(validator.DiffersFromField("password", "must be a new password")),
	})

	tests := []struct {
		name   string
		in     map[string]any
		errors map[string][]string
	}{
		{
			name: "matching",
			in:   map[string]any{"password": "a", "confirm": "a", "old": "b"},
		},
		{
			name:   "mismatch",
			in:     map[string]any{"password": "a", "confirm": "b"},
			errors: map[string][]string{"confirm": {"must match password"}},
		},
		{
			name:   "reused",
			in:     map[string]any{"password": "a", "confirm": "a", "old": "a"},
			errors: map[string][]string{"old": {"must be a new password"}},
		},
		{
			name:   "missing sibling",
			in:     map[string]any{"confirm": "a", "old": "a"},
			errors: map[string][]string{"password": {"field is required"}, "confirm": {"must match password"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := v.TryValidate(tt.in)
			if tt.errors == nil {
				assert.True(t, res.Valid, "errors: %v", res.Errors)
				return
			}
			require.False(t, res.Valid)
			flat := res.Errors.Flatten()
			assert.Len(t, flat.Fields(), len(tt.errors))
			for field, msgs := range tt.errors {
				assert.Equal(t, msgs, flat.Get(field))
			}
		})
	}

	t.Run("compares strictly", func(t *testing.T) {
		t.Parallel()
		v := validator.Dictionary(validator.Schema{
			"a": validator.Integer().Coerce(),
			"b": validator.Integer().Use(validator.EqualsField("a")),
		})
		assert.True(t, v.TryValidate(map[string]any{"a": 1, "b": 1}).Valid)
		assert.False(t, v.TryValidate(map[string]any{"a": "1", "b": 1}).Valid, "siblings are read from the raw input")
	})
}

package validator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func TestClone(t *testing.T) {
	t.Parallel()

	t.Run("flags on the clone leave the original alone", func(t *testing.T) {
		t.Parallel()
		original := validator.Integer().Min(1)
		clone := original.Clone().Required().Coerce().Max(5)

		assert.True(t, original.TryValidate(nil).Valid)
		assert.False(t, original.TryValidate("3").Valid)
		assert.True(t, original.TryValidate(10).Valid)

		assert.False(t, clone.TryValidate(nil).Valid)
		assert.True(t, clone.TryValidate("3").Valid)
		assert.False(t, clone.TryValidate(10).Valid)
	})

	t.Run("nested schemas are deep copied", func(t *testing.T) {
		t.Parallel()
		original := validator.Dictionary(validator.Schema{
			"inner": validator.Dictionary(validator.Schema{"n": validator.Integer()}),
		})
		clone := original.Clone()
		clone.Schema()["inner"].(*validator.DictionaryValidator).Schema()["n"].(*validator.IntegerValidator).Min(100)
		clone.Strict()

		in := map[string]any{"inner": map[string]any{"n": 1}, "extra": 1}
		assert.True(t, original.TryValidate(in).Valid)
		assert.False(t, clone.TryValidate(in).Valid)
	})

	t.Run("list items are deep copied", func(t *testing.T) {
		t.Parallel()
		item := validator.Text()
		original := validator.List().Items(item)
		clone := original.Clone()
		item.MinLength(5)

		assert.False(t, original.TryValidate([]any{"abc"}).Valid)
		assert.True(t, clone.TryValidate([]any{"abc"}).Valid)
	})

	t.Run("captured combinator candidates are deep copied", func(t *testing.T) {
		t.Parallel()
		candidate := validator.Integer()
		original := validator.Integer().SatisfiesAny("", candidate)
		clone := original.Clone()
		candidate.Max(0)

		assert.False(t, original.TryValidate(5).Valid)
		assert.True(t, clone.TryValidate(5).Valid)

		list := validator.List().Contains(candidate)
		listClone := list.Clone()
		candidate.Min(100)
		assert.False(t, list.TryValidate([]any{-1}).Valid)
		assert.True(t, listClone.TryValidate([]any{-1}).Valid)
	})

	t.Run("schema clone", func(t *testing.T) {
		t.Parallel()
		var nilSchema validator.Schema
		assert.Nil(t, nilSchema.Clone())

		s := validator.Schema{"a": validator.Text(), "b": nil}
		cp := s.Clone()
		assert.Len(t, cp, 1)
		assert.NotSame(t, s["a"], cp["a"])
	})

	t.Run("configured trees are safe for concurrent use", func(t *testing.T) {
		t.Parallel()
		v := validator.Dictionary(validator.Schema{
			"n":    validator.Integer().Coerce().Default(1).Min(0),
			"tags": validator.List().Items(validator.Text().Trim()),
		})

		var wg sync.WaitGroup
		for i := range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res := v.TryValidate(map[string]any{"n": i, "tags": []any{" a "}})
				assert.True(t, res.Valid)
			}()
		}
		wg.Wait()

		_, err := v.Validate(map[string]any{"n": "-1"})
		require.Error(t, err)
	})
}

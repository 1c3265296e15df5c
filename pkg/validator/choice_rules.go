package validator

import (
	"fmt"
	"slices"
)

// allowlist adds strict-equality membership rules. It is mixed into scalar
// validators only: equality is not meaningful for lists and records.
type allowlist[T any, V comparable] struct {
	n *node[T]
}

// OneOf requires the value to equal one of the allowed values.
func (a allowlist[T, V]) OneOf(allowed []V, msg ...string) T {
	values := slices.Clone(allowed)
	return a.n.add(Rule{
		Check: PredicateFunc(func(value any, _ Field) bool {
			v, ok := value.(V)
			return ok && slices.Contains(values, v)
		}),
		Message: message(msg, fmt.Sprintf("must be one of: %v", values)),
	})
}

// NotOneOf rejects the listed values.
func (a allowlist[T, V]) NotOneOf(forbidden []V, msg ...string) T {
	values := slices.Clone(forbidden)
	return a.n.add(Rule{
		Check: PredicateFunc(func(value any, _ Field) bool {
			v, ok := value.(V)
			return ok && !slices.Contains(values, v)
		}),
		Message: message(msg, fmt.Sprintf("must not be one of: %v", values)),
	})
}

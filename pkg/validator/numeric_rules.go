package validator

import (
	"fmt"
	"math"
)

// Number is the set of output types of the numeric validators.
type Number interface {
	int | float64
}

// comparison adds numeric comparison rules to Integer and Float.
type comparison[T any, N Number] struct {
	n *node[T]
}

func (c comparison[T, N]) rule(check func(N) bool, msg string) T {
	return c.n.add(Rule{
		Check: PredicateFunc(func(value any, _ Field) bool {
			v, ok := value.(N)
			return ok && check(v)
		}),
		Message: msg,
	})
}

// Min validates that the value is greater than or equal to min.
func (c comparison[T, N]) Min(min N, msg ...string) T {
	return c.rule(func(v N) bool { return v >= min }, message(msg, fmt.Sprintf("must be at least %v", min)))
}

// Max validates that the value is less than or equal to max.
func (c comparison[T, N]) Max(max N, msg ...string) T {
	return c.rule(func(v N) bool { return v <= max }, message(msg, fmt.Sprintf("must be at most %v", max)))
}

func (c comparison[T, N]) Gt(bound N, msg ...string) T {
	return c.rule(func(v N) bool { return v > bound }, message(msg, fmt.Sprintf("must be greater than %v", bound)))
}

func (c comparison[T, N]) Lt(bound N, msg ...string) T {
	return c.rule(func(v N) bool { return v < bound }, message(msg, fmt.Sprintf("must be less than %v", bound)))
}

// Gte is an alias for Min.
func (c comparison[T, N]) Gte(bound N, msg ...string) T {
	return c.Min(bound, msg...)
}

// Lte is an alias for Max.
func (c comparison[T, N]) Lte(bound N, msg ...string) T {
	return c.Max(bound, msg...)
}

// Between validates min <= value <= max.
func (c comparison[T, N]) Between(min, max N, msg ...string) T {
	return c.rule(func(v N) bool {
		return v >= min && v <= max
	}, message(msg, fmt.Sprintf("must be between %v and %v", min, max)))
}

// MultipleOf validates that the value divides evenly by step. A zero step never matches.
func (c comparison[T, N]) MultipleOf(step N, msg ...string) T {
	return c.rule(func(v N) bool {
		return isMultiple(v, step)
	}, message(msg, fmt.Sprintf("must be a multiple of %v", step)))
}

func (c comparison[T, N]) Positive(msg ...string) T {
	return c.rule(func(v N) bool { return v > 0 }, message(msg, "must be positive"))
}

func (c comparison[T, N]) Negative(msg ...string) T {
	return c.rule(func(v N) bool { return v < 0 }, message(msg, "must be negative"))
}

const multipleTolerance = 1e-9

func isMultiple[N Number](v, step N) bool {
	if step == 0 {
		return false
	}
	if vi, ok := any(v).(int); ok {
		return vi%any(step).(int) == 0
	}
	r := math.Abs(math.Mod(float64(v), float64(step)))
	s := math.Abs(float64(step))
	return r < multipleTolerance || s-r < multipleTolerance
}

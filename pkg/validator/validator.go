package validator

import "fmt"

// Validator is a configured node of a schema tree. All concrete validators
// (Text, Integer, Float, Boolean, List, Dictionary, Record and combinators)
// implement it, so any of them can be used as a field, an item validator or
// a combinator candidate.
type Validator interface {
	// Kind returns the validator variant name, e.g. "text" or "list".
	Kind() string
	// TryValidate runs the pipeline and reports the outcome without failing.
	TryValidate(value any, opts ...Option) Result
	// Validate returns the normalized value, or an *ErrorTree as error.
	Validate(value any, opts ...Option) (any, error)

	pipeline() *core
	cloneValidator() Validator
}

// Schema maps field names to the validators of a dictionary or record.
// Fields are processed in sorted key order.
type Schema map[string]Validator

// Clone deep-copies every field validator.
func (s Schema) Clone() Schema {
	if s == nil {
		return nil
	}
	cp := make(Schema, len(s))
	for name, v := range s {
		if v == nil {
			continue
		}
		cp[name] = v.cloneValidator()
	}
	return cp
}

// node links the shared pipeline to the concrete validator returned from fluent calls.
type node[T any] struct {
	core *core
	self T
	wrap func(*core) T
}

func (n *node[T]) add(rules ...Rule) T {
	n.core.rules = append(n.core.rules, rules...)
	return n.self
}

// base provides the configuration surface shared by every validator kind.
type base[T any] struct {
	n *node[T]
}

// Pipe queues transforms that run first, in registration order.
func (b base[T]) Pipe(fns ...Transform) T {
	for _, fn := range fns {
		if fn != nil {
			b.n.core.transforms = append(b.n.core.transforms, fn)
		}
	}
	return b.n.self
}

// NullifyEmpty turns an empty string into an absent value before the presence check.
func (b base[T]) NullifyEmpty() T {
	b.n.core.nullifyEmpty = true
	return b.n.self
}

// Required makes an absent value a hard failure.
func (b base[T]) Required(msg ...string) T {
	b.n.core.required = true
	b.n.core.requiredMsg = message(msg, msgRequired)
	return b.n.self
}

// Optional reverts Required.
func (b base[T]) Optional() T {
	b.n.core.required = false
	b.n.core.requiredMsg = ""
	return b.n.self
}

// Default replaces an absent value. The default then runs through coercion,
// type assertion and constraints like any other value.
func (b base[T]) Default(value any) T {
	b.n.core.hasDefault = true
	b.n.core.defaultValue = copyValue(value)
	return b.n.self
}

// Coerce enables best-effort conversion toward the target type.
func (b base[T]) Coerce() T {
	b.n.core.coerce = true
	return b.n.self
}

// Satisfies queues a constraint predicate.
func (b base[T]) Satisfies(check func(value any, field Field) bool, msg string) T {
	return b.n.add(Rule{Check: PredicateFunc(check), Message: msg})
}

// Use queues prepared rules.
func (b base[T]) Use(rules ...Rule) T {
	for _, r := range rules {
		if r.Check != nil {
			b.n.add(r)
		}
	}
	return b.n.self
}

// SatisfiesAny passes when at least one candidate accepts the typed value.
func (b base[T]) SatisfiesAny(msg string, candidates ...Validator) T {
	return b.n.add(combinatorRule(matchAny, msg, candidates))
}

// SatisfiesAll passes when every candidate accepts the typed value.
func (b base[T]) SatisfiesAll(msg string, candidates ...Validator) T {
	return b.n.add(combinatorRule(matchAll, msg, candidates))
}

// SatisfiesNone passes when no candidate accepts the typed value.
func (b base[T]) SatisfiesNone(msg string, candidates ...Validator) T {
	return b.n.add(combinatorRule(matchNone, msg, candidates))
}

// Clone returns an independent deep copy, including child validators.
func (b base[T]) Clone() T {
	return b.n.wrap(b.n.core.clone())
}

func (b base[T]) Kind() string {
	return b.n.core.kind.name()
}

func (b base[T]) TryValidate(value any, opts ...Option) Result {
	s := newState(opts)
	return b.n.core.run(value, s.field, s)
}

func (b base[T]) Validate(value any, opts ...Option) (any, error) {
	res := b.TryValidate(value, opts...)
	if !res.Valid {
		return nil, res.Errors
	}
	return res.Value, nil
}

// MustValidate works like Validate but panics on failure.
func (b base[T]) MustValidate(value any, opts ...Option) any {
	out, err := b.Validate(value, opts...)
	if err != nil {
		panic(fmt.Sprintf("validation failed: %v", err))
	}
	return out
}

func (b base[T]) pipeline() *core {
	return b.n.core
}

func (b base[T]) cloneValidator() Validator {
	return any(b.Clone()).(Validator)
}

// newNode wires a concrete validator to its pipeline.
func newNode[T any](c *core, self T, wrap func(*core) T) *node[T] {
	return &node[T]{core: c, self: self, wrap: wrap}
}

package validator

import (
	"log/slog"
	"reflect"
	"slices"

	"github.com/dmitrymomot/schemakit/pkg/logger"
)

// Transform reshapes a value before any check runs. Transforms never fail.
type Transform func(value any) any

// Strings adapts string transforms, such as the sanitizer helpers, into a
// Transform. Named string types are transformed into plain strings;
// other values pass through untouched.
func Strings(fns ...func(string) string) Transform {
	return func(value any) any {
		s, ok := asString(value)
		if !ok {
			return value
		}
		for _, fn := range fns {
			s = fn(s)
		}
		return s
	}
}

// Field locates the value under validation.
type Field struct {
	// Key is the last path segment: a field name or an item index.
	Key string
	// Path is the dotted path from the root value.
	Path string
	// Record is the enclosing record, so predicates can look at sibling fields.
	Record map[string]any
}

// Predicate is a boolean check run against an already typed value.
type Predicate interface {
	Check(value any, field Field) bool
}

// PredicateFunc adapts a plain function to Predicate.
type PredicateFunc func(value any, field Field) bool

func (f PredicateFunc) Check(value any, field Field) bool {
	return f(value, field)
}

// Rule represents a single constraint: a predicate and the message reported when it fails.
type Rule struct {
	Check   Predicate
	Message string
}

// predicateCloner is implemented by predicates that own validators.
type predicateCloner interface {
	clonePredicate() Predicate
}

func (r Rule) clone() Rule {
	if c, ok := r.Check.(predicateCloner); ok {
		r.Check = c.clonePredicate()
	}
	return r
}

// Result is the outcome of a single validation call.
type Result struct {
	Valid bool
	// Value is the normalized output; nil when the input was absent.
	Value any
	// Errors is nil on success.
	Errors *ErrorTree
	// Defaulted reports that the configured default replaced an absent value.
	Defaulted bool
}

// Option configures a single validation call.
type Option func(*state)

// WithKey sets the path of the top-level value. Nested paths extend it; predicates and log records see them.
func WithKey(path string) Option {
	return func(s *state) { s.field.Key, s.field.Path = lastSegment(path), path }
}

// WithRecord passes the record enclosing the top-level value to predicates.
func WithRecord(record map[string]any) Option {
	return func(s *state) { s.field.Record = record }
}

// WithCoerceAll forces coercion on every validator of the tree for this call.
func WithCoerceAll() Option {
	return func(s *state) { s.coerceAll = true }
}

// WithLogger logs failures and default substitutions at debug level.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *state) {
		if l != nil {
			s.logger = l
		}
	}
}

// state is per call and never stored on validators.
type state struct {
	field     Field
	coerceAll bool
	logger    *slog.Logger
}

func newState(opts []Option) *state {
	s := &state{logger: logger.Noop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *state) forceCoercion() *state {
	if s.coerceAll {
		return s
	}
	cp := *s
	cp.coerceAll = true
	return &cp
}

func (s *state) fail(c *core, field Field, tree *ErrorTree) Result {
	s.logger.Debug("validation failed",
		logger.Path(pathOrRoot(field.Path)),
		logger.Validator(c.kind.name()),
		slog.String("kind", tree.Kind.String()),
	)
	return Result{Errors: tree}
}

// kind is the per-variant part of the pipeline: coercion, type assertion and naming.
type kind interface {
	name() string
	coerce(value any) any
	// assert returns the normalized typed value, or false with the failure kind and message.
	assert(value any) (any, bool)
	mismatch() (Kind, string)
	clone() kind
}

// composite kinds validate their children between the type and constraint stages.
type composite interface {
	children(value any, field Field, s *state) (any, *ErrorTree)
}

// finisher kinds convert the validated value into the output shape.
type finisher interface {
	finish(value any) (any, error)
}

// core holds the configuration shared by every validator kind.
type core struct {
	kind kind

	transforms   []Transform
	nullifyEmpty bool
	required     bool
	requiredMsg  string
	coerce       bool
	coerceAll    bool
	hasDefault   bool
	defaultValue any
	rules        []Rule
}

func newCore(k kind) *core {
	return &core{kind: k}
}

func (c *core) clone() *core {
	cp := *c
	cp.kind = c.kind.clone()
	cp.transforms = slices.Clone(c.transforms)
	cp.defaultValue = copyValue(c.defaultValue)
	cp.rules = make([]Rule, len(c.rules))
	for i, r := range c.rules {
		cp.rules[i] = r.clone()
	}
	return &cp
}

// run executes the pipeline. Stage order is fixed regardless of configuration order:
// transform, empty normalization, presence, coercion, type assertion, children, constraints.
func (c *core) run(value any, field Field, s *state) Result {
	for _, t := range c.transforms {
		value = t(value)
	}

	if c.nullifyEmpty {
		if str, ok := asString(value); ok && str == "" {
			value = nil
		}
	}

	defaulted := false
	if isAbsent(value) {
		switch {
		case c.required:
			return s.fail(c, field, newLeaf(KindRequired, message([]string{c.requiredMsg}, msgRequired)))
		case c.hasDefault:
			value = copyValue(c.defaultValue)
			defaulted = true
			s.logger.Debug("default applied", logger.Path(pathOrRoot(field.Path)), logger.Validator(c.kind.name()))
		default:
			return Result{Valid: true}
		}
	}

	if c.coerce || s.coerceAll {
		value = c.kind.coerce(value)
	}

	typed, ok := c.kind.assert(value)
	if !ok {
		k, msg := c.kind.mismatch()
		return s.fail(c, field, newLeaf(k, msg))
	}

	if comp, ok := c.kind.(composite); ok {
		cs := s
		if c.coerceAll {
			cs = s.forceCoercion()
		}
		out, errs := comp.children(typed, field, cs)
		if errs != nil {
			return Result{Errors: errs, Defaulted: defaulted}
		}
		typed = out
	}

	var failed []string
	for _, r := range c.rules {
		if !r.Check.Check(typed, field) {
			failed = append(failed, r.Message)
		}
	}
	if len(failed) > 0 {
		return s.fail(c, field, newLeaf(KindConstraint, failed...))
	}

	if fin, ok := c.kind.(finisher); ok {
		out, err := fin.finish(typed)
		if err != nil {
			return s.fail(c, field, newLeaf(KindType, err.Error()))
		}
		typed = out
	}

	return Result{Valid: true, Value: typed, Defaulted: defaulted}
}

// isAbsent treats nil interfaces and nil pointers as the absent sentinel.
func isAbsent(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func pathOrRoot(path string) string {
	if path == "" {
		return RootPath
	}
	return path
}

func lastSegment(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[i+1:]
		}
	}
	return path
}

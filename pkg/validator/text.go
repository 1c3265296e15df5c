package validator

import "github.com/dmitrymomot/schemakit/pkg/sanitizer"

type textKind struct{}

func (textKind) name() string         { return "text" }
func (textKind) coerce(value any) any { return coerceString(value) }
func (textKind) clone() kind          { return textKind{} }

func (textKind) assert(value any) (any, bool) {
	s, ok := asString(value)
	return s, ok
}

func (textKind) mismatch() (Kind, string) { return KindType, "must be a string" }

// TextValidator validates strings. Output values are of type string.
type TextValidator struct {
	base[*TextValidator]
	allowlist[*TextValidator, string]
}

// Text creates a string validator.
func Text() *TextValidator {
	return newText(newCore(textKind{}))
}

func newText(c *core) *TextValidator {
	v := &TextValidator{}
	n := newNode(c, v, newText)
	v.base = base[*TextValidator]{n}
	v.allowlist = allowlist[*TextValidator, string]{n}
	return v
}

// Trim queues sanitizer.Trim as a transform.
func (v *TextValidator) Trim() *TextValidator {
	return v.Pipe(Strings(sanitizer.Trim))
}

// Lower queues sanitizer.ToLower as a transform.
func (v *TextValidator) Lower() *TextValidator {
	return v.Pipe(Strings(sanitizer.ToLower))
}

// Upper queues sanitizer.ToUpper as a transform.
func (v *TextValidator) Upper() *TextValidator {
	return v.Pipe(Strings(sanitizer.ToUpper))
}

func (v *TextValidator) rule(check func(string) bool, msg string) *TextValidator {
	return v.base.n.add(Rule{
		Check: PredicateFunc(func(value any, _ Field) bool {
			s, ok := value.(string)
			return ok && check(s)
		}),
		Message: msg,
	})
}

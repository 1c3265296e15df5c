package validator

import "fmt"

// Cross-field rules read sibling values from the enclosing record. Siblings
// are compared as they appear in the input, before their own validation.

// EqualsField requires the value to strictly equal the sibling field, e.g.
// a password confirmation.
func EqualsField(sibling string, msg ...string) Rule {
	return Rule{
		Check: PredicateFunc(func(value any, field Field) bool {
			other, ok := field.Record[sibling]
			return ok && strictEqual(value, other)
		}),
		Message: message(msg, fmt.Sprintf("must match %s", sibling)),
	}
}

// DiffersFromField requires the value to differ from the sibling field.
func DiffersFromField(sibling string, msg ...string) Rule {
	return Rule{
		Check: PredicateFunc(func(value any, field Field) bool {
			other, ok := field.Record[sibling]
			return !ok || !strictEqual(value, other)
		}),
		Message: message(msg, fmt.Sprintf("must differ from %s", sibling)),
	}
}

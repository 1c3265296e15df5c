package validator

import "fmt"

func (v *ListValidator) rule(check func([]any) bool, msg string) *ListValidator {
	return v.base.n.add(Rule{
		Check: PredicateFunc(func(value any, _ Field) bool {
			items, ok := value.([]any)
			return ok && check(items)
		}),
		Message: msg,
	})
}

func (v *ListValidator) MinItems(min int, msg ...string) *ListValidator {
	return v.rule(func(items []any) bool {
		return len(items) >= min
	}, message(msg, fmt.Sprintf("must have at least %d items", min)))
}

func (v *ListValidator) MaxItems(max int, msg ...string) *ListValidator {
	return v.rule(func(items []any) bool {
		return len(items) <= max
	}, message(msg, fmt.Sprintf("must have at most %d items", max)))
}

// Contains requires at least one element to match. A Validator matches
// elements it accepts; any other value matches by strict equality.
func (v *ListValidator) Contains(needle any, msg ...string) *ListValidator {
	if sub, ok := needle.(Validator); ok {
		return v.base.n.add(Rule{
			Check:   &containsPredicate{validator: sub},
			Message: message(msg, "must contain a matching item"),
		})
	}
	return v.rule(func(items []any) bool {
		for _, item := range items {
			if strictEqual(item, needle) {
				return true
			}
		}
		return false
	}, message(msg, fmt.Sprintf("must contain %v", needle)))
}

// Unique rejects lists with strictly equal elements.
func (v *ListValidator) Unique(msg ...string) *ListValidator {
	return v.rule(func(items []any) bool {
		for i := range items {
			for j := i + 1; j < len(items); j++ {
				if strictEqual(items[i], items[j]) {
					return false
				}
			}
		}
		return true
	}, message(msg, "must not contain duplicate items"))
}

type containsPredicate struct {
	validator Validator
}

func (p *containsPredicate) Check(value any, field Field) bool {
	items, ok := value.([]any)
	if !ok {
		return false
	}
	for _, item := range items {
		if p.validator.TryValidate(item, WithRecord(field.Record)).Valid {
			return true
		}
	}
	return false
}

func (p *containsPredicate) clonePredicate() Predicate {
	return &containsPredicate{validator: p.validator.cloneValidator()}
}

package validator

type matchMode int

const (
	matchAny matchMode = iota
	matchAll
	matchNone
)

func (m matchMode) defaultMessage() string {
	switch m {
	case matchAll:
		return "must satisfy all of the conditions"
	case matchNone:
		return "must not satisfy any of the conditions"
	default:
		return "must satisfy at least one of the conditions"
	}
}

// combinatorPredicate runs candidates purely as boolean checks: their
// transformed or coerced output is discarded.
type combinatorPredicate struct {
	mode       matchMode
	candidates []Validator
}

func combinatorRule(mode matchMode, msg string, candidates []Validator) Rule {
	kept := make([]Validator, 0, len(candidates))
	for _, c := range candidates {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return Rule{
		Check:   &combinatorPredicate{mode: mode, candidates: kept},
		Message: message([]string{msg}, mode.defaultMessage()),
	}
}

func (p *combinatorPredicate) Check(value any, field Field) bool {
	matched := 0
	for _, c := range p.candidates {
		if c.TryValidate(value, WithKey(field.Path), WithRecord(field.Record)).Valid {
			matched++
			if p.mode == matchAny {
				return true
			}
		} else if p.mode == matchAll {
			return false
		}
	}
	switch p.mode {
	case matchAll:
		return true
	case matchNone:
		return matched == 0
	default:
		return false
	}
}

func (p *combinatorPredicate) clonePredicate() Predicate {
	cp := &combinatorPredicate{mode: p.mode, candidates: make([]Validator, len(p.candidates))}
	for i, c := range p.candidates {
		cp.candidates[i] = c.cloneValidator()
	}
	return cp
}

// passKind accepts any value unchanged.
type passKind struct{}

func (passKind) name() string                 { return "combinator" }
func (passKind) coerce(value any) any         { return value }
func (passKind) assert(value any) (any, bool) { return value, true }
func (passKind) mismatch() (Kind, string)     { return KindType, "" }
func (passKind) clone() kind                  { return passKind{} }

// CombinatorValidator composes other validators with a logical rule. It
// accepts any type and performs no conversion; its output is its input.
type CombinatorValidator struct {
	base[*CombinatorValidator]
}

func newCombinator(c *core) *CombinatorValidator {
	v := &CombinatorValidator{}
	v.base = base[*CombinatorValidator]{newNode(c, v, newCombinator)}
	return v
}

func combine(mode matchMode, msg string, candidates []Validator) *CombinatorValidator {
	c := newCore(passKind{})
	c.rules = append(c.rules, combinatorRule(mode, msg, candidates))
	return newCombinator(c)
}

// AnyOf accepts values accepted by at least one candidate. An empty msg uses the default message.
func AnyOf(msg string, candidates ...Validator) *CombinatorValidator {
	return combine(matchAny, msg, candidates)
}

// AllOf accepts values accepted by every candidate.
func AllOf(msg string, candidates ...Validator) *CombinatorValidator {
	return combine(matchAll, msg, candidates)
}

// Not accepts values rejected by every candidate.
func Not(msg string, candidates ...Validator) *CombinatorValidator {
	return combine(matchNone, msg, candidates)
}

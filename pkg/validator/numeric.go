package validator

type integerKind struct{}

func (integerKind) name() string         { return "integer" }
func (integerKind) coerce(value any) any { return coerceInt(value) }
func (integerKind) clone() kind          { return integerKind{} }

func (integerKind) assert(value any) (any, bool) {
	n, ok := asInt(value)
	return n, ok
}

func (integerKind) mismatch() (Kind, string) { return KindType, "must be an integer" }

// IntegerValidator validates whole numbers. Any Go integer type within the
// int range is accepted; output values are of type int.
type IntegerValidator struct {
	base[*IntegerValidator]
	comparison[*IntegerValidator, int]
	allowlist[*IntegerValidator, int]
}

// Integer creates an integer validator.
func Integer() *IntegerValidator {
	return newInteger(newCore(integerKind{}))
}

func newInteger(c *core) *IntegerValidator {
	v := &IntegerValidator{}
	n := newNode(c, v, newInteger)
	v.base = base[*IntegerValidator]{n}
	v.comparison = comparison[*IntegerValidator, int]{n}
	v.allowlist = allowlist[*IntegerValidator, int]{n}
	return v
}

type floatKind struct{}

func (floatKind) name() string         { return "float" }
func (floatKind) coerce(value any) any { return coerceFloat(value) }
func (floatKind) clone() kind          { return floatKind{} }

func (floatKind) assert(value any) (any, bool) {
	f, ok := asFloat(value)
	return f, ok
}

func (floatKind) mismatch() (Kind, string) { return KindType, "must be a number" }

// FloatValidator validates floating-point numbers. Integers are accepted only
// through coercion; output values are of type float64.
type FloatValidator struct {
	base[*FloatValidator]
	comparison[*FloatValidator, float64]
	allowlist[*FloatValidator, float64]
}

// Float creates a floating-point validator.
func Float() *FloatValidator {
	return newFloat(newCore(floatKind{}))
}

func newFloat(c *core) *FloatValidator {
	v := &FloatValidator{}
	n := newNode(c, v, newFloat)
	v.base = base[*FloatValidator]{n}
	v.comparison = comparison[*FloatValidator, float64]{n}
	v.allowlist = allowlist[*FloatValidator, float64]{n}
	return v
}

type booleanKind struct{}

func (booleanKind) name() string         { return "boolean" }
func (booleanKind) coerce(value any) any { return coerceBool(value) }
func (booleanKind) clone() kind          { return booleanKind{} }

func (booleanKind) assert(value any) (any, bool) {
	b, ok := asBool(value)
	return b, ok
}

func (booleanKind) mismatch() (Kind, string) { return KindType, "must be a boolean" }

// BooleanValidator validates booleans.
type BooleanValidator struct {
	base[*BooleanValidator]
	allowlist[*BooleanValidator, bool]
}

// Boolean creates a boolean validator.
func Boolean() *BooleanValidator {
	return newBoolean(newCore(booleanKind{}))
}

func newBoolean(c *core) *BooleanValidator {
	v := &BooleanValidator{}
	n := newNode(c, v, newBoolean)
	v.base = base[*BooleanValidator]{n}
	v.allowlist = allowlist[*BooleanValidator, bool]{n}
	return v
}

// True requires the value to be true, e.g. for accepted terms.
func (v *BooleanValidator) True(msg ...string) *BooleanValidator {
	return v.OneOf([]bool{true}, message(msg, "must be accepted"))
}

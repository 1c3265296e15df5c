package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is matched by every *ErrorTree returned from Validate.
	ErrValidationFailed = errors.New("validation failed")

	// ErrRecordDecode is returned when a validated record cannot be decoded into its target type.
	ErrRecordDecode = errors.New("failed to decode validated record")
)

// Kind classifies a validation failure.
type Kind int

const (
	// KindNested marks a composite error node keyed by field name or item index.
	KindNested Kind = iota
	// KindStructure means the input is not the expected container shape.
	KindStructure
	// KindType means the (coerced) value still fails the primitive type assertion.
	KindType
	// KindRequired means the value is absent and no default is configured.
	KindRequired
	// KindConstraint means one or more predicates failed.
	KindConstraint
)

func (k Kind) String() string {
	switch k {
	case KindNested:
		return "nested"
	case KindStructure:
		return "structure"
	case KindType:
		return "type"
	case KindRequired:
		return "required"
	case KindConstraint:
		return "constraint"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name, so flattened errors serialize readably.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Default messages used when a validator is configured without one.
const (
	msgRequired = "field is required"
	msgUnknown  = "contains unknown fields"
)

// message returns the first non-empty custom message or the fallback.
func message(custom []string, fallback string) string {
	for _, m := range custom {
		if m != "" {
			return m
		}
	}
	return fallback
}

// Package sanitizer provides string clean-up helpers used as validator
// transforms. Every helper has the signature func(string) string so it can be
// passed straight to validator.Strings or chained with Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.StripHTML,
//	    sanitizer.SingleLine,
//	)
//
//	validator.Text().Pipe(validator.Strings(clean)).MaxLength(120)
//
// Format helpers (NormalizeEmail, NormalizePhone) canonicalize common user
// input before format checks run.
//
// None of the helpers returns an error; input that cannot be normalized is
// returned in its most reasonable partial form. The package is stateless and
// safe for concurrent use.
package sanitizer

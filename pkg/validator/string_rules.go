package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Length rules count runes, not bytes.

func (v *TextValidator) MinLength(min int, msg ...string) *TextValidator {
	return v.rule(func(s string) bool {
		return utf8.RuneCountInString(s) >= min
	}, message(msg, fmt.Sprintf("must be at least %d characters long", min)))
}

func (v *TextValidator) MaxLength(max int, msg ...string) *TextValidator {
	return v.rule(func(s string) bool {
		return utf8.RuneCountInString(s) <= max
	}, message(msg, fmt.Sprintf("must be at most %d characters long", max)))
}

func (v *TextValidator) Length(exact int, msg ...string) *TextValidator {
	return v.rule(func(s string) bool {
		return utf8.RuneCountInString(s) == exact
	}, message(msg, fmt.Sprintf("must be exactly %d characters long", exact)))
}

// Pattern validates against a regular expression. It panics on an invalid
// pattern, since a broken schema should fail at construction.
func (v *TextValidator) Pattern(pattern string, msg ...string) *TextValidator {
	return v.Matches(regexp.MustCompile(pattern), msg...)
}

// Matches validates against a precompiled regular expression.
func (v *TextValidator) Matches(re *regexp.Regexp, msg ...string) *TextValidator {
	return v.rule(re.MatchString, message(msg, fmt.Sprintf("must match pattern %s", re.String())))
}

func (v *TextValidator) StartsWith(prefix string, msg ...string) *TextValidator {
	return v.rule(func(s string) bool {
		return strings.HasPrefix(s, prefix)
	}, message(msg, fmt.Sprintf("must start with %q", prefix)))
}

func (v *TextValidator) EndsWith(suffix string, msg ...string) *TextValidator {
	return v.rule(func(s string) bool {
		return strings.HasSuffix(s, suffix)
	}, message(msg, fmt.Sprintf("must end with %q", suffix)))
}

func (v *TextValidator) Contains(substr string, msg ...string) *TextValidator {
	return v.rule(func(s string) bool {
		return strings.Contains(s, substr)
	}, message(msg, fmt.Sprintf("must contain %q", substr)))
}

// Alphanumeric accepts letters and digits only.
func (v *TextValidator) Alphanumeric(msg ...string) *TextValidator {
	return v.rule(func(s string) bool {
		for _, r := range s {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return false
			}
		}
		return s != ""
	}, message(msg, "must contain only letters and numbers"))
}

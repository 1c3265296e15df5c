package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/schemakit/pkg/sanitizer"
)

func TestStringHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fn       func(string) string
		input    string
		expected string
	}{
		{"trim spaces", sanitizer.Trim, "  hello world  ", "hello world"},
		{"trim tabs and newlines", sanitizer.Trim, "\t\nhello\n\t", "hello"},
		{"trim whitespace only", sanitizer.Trim, " \t ", ""},
		{"lower", sanitizer.ToLower, "HeLLo", "hello"},
		{"upper", sanitizer.ToUpper, "HeLLo", "HELLO"},
		{"collapse whitespace", sanitizer.RemoveExtraWhitespace, "  a \t\n b   c ", "a b c"},
		{"control chars", sanitizer.RemoveControlChars, "a\x00b\x07c\td\ne", "abc\td\ne"},
		{"strip tags", sanitizer.StripHTML, "<p>Hello <b>world</b></p>", "Hello world"},
		{"strip tags and unescape", sanitizer.StripHTML, "Tom &amp; <i>Jerry</i>", "Tom & Jerry"},
		{"keep digits", sanitizer.KeepDigits, "a1b2-c3", "123"},
		{"keep digits none", sanitizer.KeepDigits, "abc", ""},
		{"single line", sanitizer.SingleLine, "first\r\nsecond\n\nthird", "first second third"},
		{"single line trims", sanitizer.SingleLine, "\n  padded  \n", "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.fn(tt.input))
		})
	}
}

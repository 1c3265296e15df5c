package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/schemakit/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases and trims", "  John.Doe@Example.COM ", "john.doe@example.com"},
		{"consolidates dots", "john..doe...x@example.com", "john.doe.x@example.com"},
		{"trims edge dots in local part", ".john.@example.com", "john@example.com"},
		{"missing at sign", "  NotAnEmail ", "notanemail"},
		{"two at signs", "a@b@c.com", "a@b@c.com"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.NormalizeEmail(tt.input))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"us format", "(555) 123-4567", "5551234567"},
		{"international", " +1 555.123.4567 ", "+15551234567"},
		{"plus without digits", "+", ""},
		{"letters only", "call me", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.NormalizePhone(tt.input))
		})
	}
}

package validator_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

type stringer struct{}

func (stringer) String() string { return "stringer" }

func TestText(t *testing.T) {
	t.Parallel()

	t.Run("type assertion", func(t *testing.T) {
		t.Parallel()
		res := validator.Text().TryValidate(42)
		require.False(t, res.Valid)
		assert.Equal(t, validator.KindType, res.Errors.Kind)
		assert.Equal(t, []string{"must be a string"}, res.Errors.Messages)
	})

	t.Run("named string types normalize to string", func(t *testing.T) {
		t.Parallel()
		type code string
		out, err := validator.Text().Validate(code("abc"))
		require.NoError(t, err)
		assert.Equal(t, "abc", out)
	})

	t.Run("coercion", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			in   any
			want string
		}{
			{42, "42"},
			{int64(-7), "-7"},
			{2.5, "2.5"},
			{true, "true"},
			{[]byte("raw"), "raw"},
			{stringer{}, "stringer"},
		}
		for _, tt := range tests {
			out, err := validator.Text().Coerce().Validate(tt.in)
			require.NoError(t, err, "input %#v", tt.in)
			assert.Equal(t, tt.want, out)
		}
	})

	t.Run("trim lower upper", func(t *testing.T) {
		t.Parallel()
		out, err := validator.Text().Trim().Lower().Validate("  MiXeD ")
		require.NoError(t, err)
		assert.Equal(t, "mixed", out)

		out, err = validator.Text().Upper().Validate("abc")
		require.NoError(t, err)
		assert.Equal(t, "ABC", out)
	})
}

func TestStringRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		v     *validator.TextValidator
		valid []string
		bad   []string
		msg   string
	}{
		{
			name:  "min length counts runes",
			v:     validator.Text().MinLength(3),
			valid: []string{"abc", "äöü"},
			bad:   []string{"ab", ""},
			msg:   "must be at least 3 characters long",
		},
		{
			name:  "max length",
			v:     validator.Text().MaxLength(2),
			valid: []string{"", "ab", "日本"},
			bad:   []string{"abc"},
			msg:   "must be at most 2 characters long",
		},
		{
			name:  "exact length",
			v:     validator.Text().Length(2),
			valid: []string{"ab"},
			bad:   []string{"a", "abc"},
			msg:   "must be exactly 2 characters long",
		},
		{
			name:  "pattern",
			v:     validator.Text().Pattern(`^[a-z]+$`),
			valid: []string{"abc"},
			bad:   []string{"ABC", "a1"},
			msg:   "must match pattern ^[a-z]+$",
		},
		{
			name:  "matches",
			v:     validator.Text().Matches(regexp.MustCompile(`^\d{3}$`), "three digits"),
			valid: []string{"123"},
			bad:   []string{"12", "abc"},
			msg:   "three digits",
		},
		{
			name:  "starts with",
			v:     validator.Text().StartsWith("sk_"),
			valid: []string{"sk_live"},
			bad:   []string{"pk_live"},
			msg:   `must start with "sk_"`,
		},
		{
			name:  "ends with",
			v:     validator.Text().EndsWith(".go"),
			valid: []string{"main.go"},
			bad:   []string{"main.rs"},
			msg:   `must end with ".go"`,
		},
		{
			name:  "contains",
			v:     validator.Text().Contains("@"),
			valid: []string{"a@b"},
			bad:   []string{"ab"},
			msg:   `must contain "@"`,
		},
		{
			name:  "alphanumeric",
			v:     validator.Text().Alphanumeric(),
			valid: []string{"abc123", "Ünïcode9"},
			bad:   []string{"a b", "a-b", ""},
			msg:   "must contain only letters and numbers",
		},
		{
			name:  "one of",
			v:     validator.Text().OneOf([]string{"red", "green"}),
			valid: []string{"red", "green"},
			bad:   []string{"blue", "Red"},
			msg:   "must be one of: [red green]",
		},
		{
			name:  "not one of",
			v:     validator.Text().NotOneOf([]string{"admin", "root"}, "reserved name"),
			valid: []string{"jane"},
			bad:   []string{"admin"},
			msg:   "reserved name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, in := range tt.valid {
				assert.True(t, tt.v.TryValidate(in).Valid, "expected %q to pass", in)
			}
			for _, in := range tt.bad {
				res := tt.v.TryValidate(in)
				require.False(t, res.Valid, "expected %q to fail", in)
				assert.Equal(t, []string{tt.msg}, res.Errors.Messages)
			}
		})
	}

	t.Run("invalid pattern panics at construction", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { validator.Text().Pattern("[") })
	})
}

func TestFormatRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		v     *validator.TextValidator
		valid []string
		bad   []string
	}{
		{
			name:  "email",
			v:     validator.Text().Email(),
			valid: []string{"user@example.com", "first.last+tag@sub.example.org"},
			bad:   []string{"", "user", "user@", "@example.com", "user@example", "user@.example.com", "User <user@example.com>"},
		},
		{
			name:  "url",
			v:     validator.Text().URL(),
			valid: []string{"https://example.com", "http://localhost:8080/path?q=1"},
			bad:   []string{"", "example.com", "/relative", "mailto:"},
		},
		{
			name:  "uuid",
			v:     validator.Text().UUID(),
			valid: []string{"6ba7b810-9dad-11d1-80b4-00c04fd430c8", "00000000-0000-0000-0000-000000000000"},
			bad:   []string{"", "6ba7b8109dad11d180b400c04fd430c8", "6ba7b810-9dad-11d1-80b4-00c04fd430cz"},
		},
		{
			name:  "ip",
			v:     validator.Text().IP(),
			valid: []string{"127.0.0.1", "::1", "2001:db8::1"},
			bad:   []string{"", "256.0.0.1", "host"},
		},
		{
			name:  "date",
			v:     validator.Text().Date(),
			valid: []string{"2024-02-29"},
			bad:   []string{"2023-02-29", "29.02.2024", "2024-02-29T10:00:00Z"},
		},
		{
			name:  "date with layout",
			v:     validator.Text().DateIn("02.01.2006"),
			valid: []string{"29.02.2024"},
			bad:   []string{"2024-02-29"},
		},
		{
			name:  "datetime",
			v:     validator.Text().DateTime(),
			valid: []string{"2024-05-01T10:00:00Z", "2024-05-01T10:00:00+02:00"},
			bad:   []string{"2024-05-01", "2024-05-01 10:00:00"},
		},
		{
			name:  "datetime with layout",
			v:     validator.Text().DateTimeIn(time.DateTime),
			valid: []string{"2024-05-01 10:00:00"},
			bad:   []string{"2024-05-01T10:00:00Z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, in := range tt.valid {
				assert.True(t, tt.v.TryValidate(in).Valid, "expected %q to pass", in)
			}
			for _, in := range tt.bad {
				assert.False(t, tt.v.TryValidate(in).Valid, "expected %q to fail", in)
			}
		})
	}

	t.Run("predicates are exported", func(t *testing.T) {
		t.Parallel()
		assert.True(t, validator.IsEmail("a@b.co"))
		assert.True(t, validator.IsURL("https://a.b"))
		assert.True(t, validator.IsUUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
		assert.True(t, validator.IsIP("10.0.0.1"))
		assert.True(t, validator.IsTime("2024-01-02", validator.DateLayout))
	})

	t.Run("custom messages", func(t *testing.T) {
		t.Parallel()
		res := validator.Text().Email("bad email").TryValidate("x")
		require.False(t, res.Valid)
		assert.Equal(t, []string{"bad email"}, res.Errors.Messages)

		res = validator.Text().Date("bad date").DateTimeIn(time.Kitchen, "bad time").TryValidate("x")
		require.False(t, res.Valid)
		assert.Equal(t, []string{"bad date", "bad time"}, res.Errors.Messages)
	})
}

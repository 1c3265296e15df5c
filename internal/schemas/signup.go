package schemas

import (
	"github.com/dmitrymomot/schemakit/pkg/sanitizer"
	v "github.com/dmitrymomot/schemakit/pkg/validator"
)

// Signup validates a registration form. Unknown fields are rejected.
func Signup() *v.DictionaryValidator {
	return v.Dictionary(v.Schema{
		"name": v.Text().
			Pipe(v.Strings(sanitizer.RemoveExtraWhitespace)).
			NullifyEmpty().
			Required("Name is required").
			MinLength(2).
			MaxLength(64),
		"email": v.Text().
			Pipe(v.Strings(sanitizer.NormalizeEmail)).
			NullifyEmpty().
			Required("Email is required").
			Email(),
		"password": v.Text().
			Required("Password is required").
			MinLength(8).
			MaxLength(128),
		"password_confirm": v.Text().
			Required("Please confirm your password").
			Use(v.EqualsField("password", "Passwords do not match")),
		"age": v.Integer().
			Coerce().
			Between(18, 130),
		"terms": v.Boolean().
			Coerce().
			Required("You must accept the terms").
			True("You must accept the terms"),
		"tags": v.List().
			Coerce().
			FilterEmpty().
			Items(v.Text().Trim().Lower().Alphanumeric().MaxLength(20)).
			MaxItems(5).
			Unique(),
		"website": v.Text().
			Trim().
			NullifyEmpty().
			URL(),
	}).Strict()
}

// Package validator is a declarative data-validation engine. A schema is a
// tree of validators assembled with fluent calls; running input through it
// yields either a normalized, type-correct value or an ErrorTree keyed by
// field path.
//
// # Architecture
//
// Every validator shares one pipeline whose stage order is fixed, whatever
// order the configuration methods were called in:
//
//  1. transforms (Pipe, Trim, ...) in registration order
//  2. empty normalization (NullifyEmpty): "" becomes absent
//  3. presence: Required fails, Default substitutes, otherwise an absent
//     value succeeds immediately with no output
//  4. coercion (Coerce, CoerceAll, WithCoerceAll)
//  5. type assertion: a single Type or Structure error stops the pipeline
//  6. children of lists, dictionaries and records
//  7. constraints: every rule runs and all failing messages are collected
//
// A substituted default goes through stages 4 to 7 like any other value.
//
// Variants:
//   - Text, Integer, Float, Boolean – scalars with OneOf allowlists;
//     Integer and Float add comparison rules (Min, Max, Gt, MultipleOf, ...)
//   - List – ordered sequences, optionally validated by Items; the first
//     failing item aborts the list
//   - Dictionary, Record[T] – fixed schemas; every failing field is reported
//     and the output is sparse (absent, non-defaulted fields are omitted)
//   - AnyOf, AllOf, Not – logical composition of other validators
//
// # Usage
//
//	signup := validator.Dictionary(validator.Schema{
//	    "name":  validator.Text().Trim().NullifyEmpty().Required("Name is required").MinLength(2),
//	    "email": validator.Text().Trim().Lower().Required().Email(),
//	    "age":   validator.Integer().Coerce().Min(18),
//	    "tags":  validator.List().FilterEmpty().Items(validator.Text().MaxLength(20)).MaxItems(5),
//	})
//
//	res := signup.TryValidate(input)
//	if !res.Valid {
//	    for _, e := range res.Errors.Flatten() {
//	        fmt.Println(e.Field, e.Message)
//	    }
//	}
//
// # Error Handling
//
// TryValidate never fails; Validate returns the *ErrorTree as error, which
// matches ErrValidationFailed with errors.Is. ErrorTree.Flatten produces an
// ordered list of dotted-path messages, using RootPath for failures of the
// top-level validator. Panics raised by user predicates or transforms are not
// recovered.
//
// # Concurrency
//
// Validators are mutable builders. A finished tree may be shared between
// goroutines as long as nobody configures it further; otherwise Clone it.
// Clone deep-copies child validators, including those captured by
// combinator and Contains rules.
package validator

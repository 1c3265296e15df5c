package validator

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// fields is the field-processing half shared by dictionaries and records.
type fields struct {
	schema Schema
	strict bool
}

func (f fields) cloneFields() fields {
	return fields{schema: f.schema.Clone(), strict: f.strict}
}

func (fields) coerce(value any) any { return coerceRecord(value) }

func (fields) assert(value any) (any, bool) {
	record, ok := asRecord(value)
	return record, ok
}

func (fields) mismatch() (Kind, string) { return KindStructure, "must be an object" }

// children validates every declared field. Failures never short-circuit:
// all failing fields are reported together. Output is sparse: a field is
// emitted only when present in the input or defaulted.
func (f fields) children(value any, field Field, s *state) (any, *ErrorTree) {
	record := value.(map[string]any)

	if f.strict {
		var unknown []string
		for key := range record {
			if _, ok := f.schema[key]; !ok {
				unknown = append(unknown, key)
			}
		}
		if len(unknown) > 0 {
			slices.Sort(unknown)
			return nil, newLeaf(KindStructure, fmt.Sprintf("%s: %s", msgUnknown, strings.Join(unknown, ", ")))
		}
	}

	out := make(map[string]any, len(f.schema))
	var errs *ErrorTree
	for _, name := range slices.Sorted(maps.Keys(f.schema)) {
		fv := f.schema[name]
		if fv == nil {
			continue
		}
		raw, present := record[name]
		res := fv.pipeline().run(raw, Field{
			Key:    name,
			Path:   joinPath(field.Path, name),
			Record: record,
		}, s)
		if !res.Valid {
			if errs == nil {
				errs = newNested()
			}
			errs.set(name, res.Errors)
			continue
		}
		if present || res.Defaulted {
			out[name] = res.Value
		}
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

type dictionaryKind struct {
	fields
}

func (*dictionaryKind) name() string { return "dictionary" }

func (k *dictionaryKind) clone() kind {
	return &dictionaryKind{fields: k.cloneFields()}
}

// DictionaryValidator validates map-like input against a fixed schema.
// Output values are of type map[string]any.
type DictionaryValidator struct {
	base[*DictionaryValidator]
}

// Dictionary creates a dictionary validator. The validator owns schema.
func Dictionary(schema Schema) *DictionaryValidator {
	return newDictionary(newCore(&dictionaryKind{fields: fields{schema: schema}}))
}

func newDictionary(c *core) *DictionaryValidator {
	v := &DictionaryValidator{}
	v.base = base[*DictionaryValidator]{newNode(c, v, newDictionary)}
	return v
}

// CoerceAll forces coercion on every descendant validator.
func (v *DictionaryValidator) CoerceAll() *DictionaryValidator {
	v.base.n.core.coerceAll = true
	return v
}

// Strict rejects input keys that are not declared in the schema.
// Without it unknown keys are dropped from the output.
func (v *DictionaryValidator) Strict() *DictionaryValidator {
	v.base.n.core.kind.(*dictionaryKind).strict = true
	return v
}

// Schema returns the field validators. Mutating them mutates this dictionary.
func (v *DictionaryValidator) Schema() Schema {
	return v.base.n.core.kind.(*dictionaryKind).schema
}

type recordKind[T any] struct {
	fields
}

func (*recordKind[T]) name() string { return "record" }

func (k *recordKind[T]) clone() kind {
	return &recordKind[T]{fields: k.cloneFields()}
}

// finish decodes the validated map into T through its json tags.
func (*recordKind[T]) finish(value any) (any, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &out,
	})
	if err != nil {
		return nil, errors.Join(ErrRecordDecode, err)
	}
	if err := dec.Decode(value); err != nil {
		return nil, fmt.Errorf("must be convertible to %T", out)
	}
	return out, nil
}

// RecordValidator validates property-bag input (structs or maps) against a
// fixed schema and produces a value of type T, typically a struct with json
// tags. Field semantics are identical to DictionaryValidator; fields that are
// omitted from the sparse output keep their zero value in T. Struct input
// reads zero-valued fields as absent, so a T produced by the validator
// validates again to the same T.
type RecordValidator[T any] struct {
	base[*RecordValidator[T]]
}

// Record creates a record validator producing T. The validator owns schema.
func Record[T any](schema Schema) *RecordValidator[T] {
	return newRecord[T](newCore(&recordKind[T]{fields: fields{schema: schema}}))
}

func newRecord[T any](c *core) *RecordValidator[T] {
	v := &RecordValidator[T]{}
	v.base = base[*RecordValidator[T]]{newNode(c, v, newRecord[T])}
	return v
}

// CoerceAll forces coercion on every descendant validator.
func (v *RecordValidator[T]) CoerceAll() *RecordValidator[T] {
	v.base.n.core.coerceAll = true
	return v
}

// Strict rejects input keys that are not declared in the schema.
func (v *RecordValidator[T]) Strict() *RecordValidator[T] {
	v.base.n.core.kind.(*recordKind[T]).strict = true
	return v
}

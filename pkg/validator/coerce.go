package validator

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Conversion helpers shared by the kinds. Readers (asX) accept values that
// already have the target shape and normalize their Go type; coercers
// (coerceX) convert loosely typed input and return it unchanged when they can't.

func indirect(value any) (reflect.Value, bool) {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}

func asString(value any) (string, bool) {
	rv, ok := indirect(value)
	if !ok || rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

func asInt(value any) (int, bool) {
	rv, ok := indirect(value)
	if !ok {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func asFloat(value any) (float64, bool) {
	rv, ok := indirect(value)
	if !ok {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func asBool(value any) (bool, bool) {
	rv, ok := indirect(value)
	if !ok || rv.Kind() != reflect.Bool {
		return false, false
	}
	return rv.Bool(), true
}

// asSlice copies any slice or array into a fresh []any. Nil slices read as empty.
func asSlice(value any) ([]any, bool) {
	if items, ok := value.([]any); ok {
		if items == nil {
			return []any{}, true
		}
		return slices.Clone(items), true
	}
	rv, ok := indirect(value)
	if !ok || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return []any{}, true
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// asRecord reads map-like and property-bag-like values into a fresh map.
// Structs are read through their json tags; fields holding their zero value
// read as absent, the same way Record output fills omitted fields.
func asRecord(value any) (map[string]any, bool) {
	if m, ok := value.(map[string]any); ok {
		return maps.Clone(m), true
	}
	rv, ok := indirect(value)
	if !ok {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out, true
	case reflect.Struct:
		out := make(map[string]any)
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName: "json",
			Result:  &out,
		})
		if err != nil {
			return nil, false
		}
		if err := dec.Decode(rv.Interface()); err != nil {
			return nil, false
		}
		dropZeroFields(out, rv)
		return out, true
	default:
		return nil, false
	}
}

func coerceString(value any) any {
	if _, ok := asString(value); ok {
		return value
	}
	switch v := value.(type) {
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	}
	if n, ok := asInt(value); ok {
		return strconv.Itoa(n)
	}
	if f, ok := asFloat(value); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if b, ok := asBool(value); ok {
		return strconv.FormatBool(b)
	}
	return value
}

func coerceInt(value any) any {
	if _, ok := asInt(value); ok {
		return value
	}
	if s, ok := asString(value); ok {
		s = strings.TrimSpace(s)
		if n, err := strconv.ParseInt(s, 10, 0); err == nil {
			return int(n)
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			if n, ok := integral(f); ok {
				return n
			}
		}
		return value
	}
	if f, ok := asFloat(value); ok {
		if n, ok := integral(f); ok {
			return n
		}
		return value
	}
	if b, ok := asBool(value); ok {
		if b {
			return 1
		}
		return 0
	}
	return value
}

func coerceFloat(value any) any {
	if _, ok := asFloat(value); ok {
		return value
	}
	if s, ok := asString(value); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return value
		}
		return f
	}
	if n, ok := asInt(value); ok {
		return float64(n)
	}
	if b, ok := asBool(value); ok {
		if b {
			return 1.0
		}
		return 0.0
	}
	return value
}

func coerceBool(value any) any {
	if _, ok := asBool(value); ok {
		return value
	}
	if s, ok := asString(value); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off", "":
			return false
		}
		return value
	}
	if n, ok := asInt(value); ok && (n == 0 || n == 1) {
		return n == 1
	}
	if f, ok := asFloat(value); ok && (f == 0 || f == 1) {
		return f == 1
	}
	return value
}

// dropZeroFields removes the keys of zero-valued fields of src from out,
// descending into nested structs that were decoded into maps.
func dropZeroFields(out map[string]any, src reflect.Value) {
	t := src.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		key := f.Name
		if tag, _, _ := strings.Cut(f.Tag.Get("json"), ","); tag == "-" {
			continue
		} else if tag != "" {
			key = tag
		}
		fv := src.Field(i)
		if fv.IsZero() {
			delete(out, key)
			continue
		}
		nested, ok := out[key].(map[string]any)
		if !ok {
			continue
		}
		if ev, ok := indirect(fv.Interface()); ok && ev.Kind() == reflect.Struct {
			dropZeroFields(nested, ev)
		}
	}
}

// coerceSlice converts keyed sequences to their ordered values, an empty
// string to an empty list and any other scalar to a one-element list.
func coerceSlice(value any) any {
	if value == nil {
		return nil
	}
	if _, ok := asSlice(value); ok {
		return value
	}
	if s, ok := asString(value); ok && s == "" {
		return []any{}
	}
	rv, ok := indirect(value)
	if ok && rv.Kind() == reflect.Map {
		return orderedValues(rv)
	}
	if ok && rv.Kind() == reflect.Struct {
		return value
	}
	return []any{value}
}

// orderedValues sorts integer-like keys numerically, anything else lexically.
func orderedValues(rv reflect.Value) []any {
	type entry struct {
		key   string
		num   int
		value any
	}
	entries := make([]entry, 0, rv.Len())
	allNumeric := true
	iter := rv.MapRange()
	for iter.Next() {
		key := fmt.Sprint(iter.Key().Interface())
		n, err := strconv.Atoi(key)
		if err != nil {
			allNumeric = false
		}
		entries = append(entries, entry{key: key, num: n, value: iter.Value().Interface()})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if allNumeric {
			return entries[i].num < entries[j].num
		}
		return entries[i].key < entries[j].key
	})
	out := make([]any, len(entries))
	for i, e := range entries {
		out[i] = e.value
	}
	return out
}

func coerceRecord(value any) any {
	if s, ok := asString(value); ok && s == "" {
		return map[string]any{}
	}
	return value
}

func integral(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int(f), true
}

// copyValue deep-copies the containers the engine produces so defaults are
// never shared between calls.
func copyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = copyValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = copyValue(item)
		}
		return out
	default:
		return value
	}
}

// strictEqual compares type and value; non-comparable values are compared deeply.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

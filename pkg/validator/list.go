package validator

import "strconv"

type listKind struct {
	items       Validator
	filterEmpty bool
}

func (*listKind) name() string         { return "list" }
func (*listKind) coerce(value any) any { return coerceSlice(value) }

func (k *listKind) clone() kind {
	cp := *k
	if k.items != nil {
		cp.items = k.items.cloneValidator()
	}
	return &cp
}

func (*listKind) assert(value any) (any, bool) {
	items, ok := asSlice(value)
	return items, ok
}

func (*listKind) mismatch() (Kind, string) { return KindStructure, "must be a list" }

// children filters empty items and runs the item validator. The first failing
// item aborts the walk: later items are not evaluated.
func (k *listKind) children(value any, field Field, s *state) (any, *ErrorTree) {
	items := value.([]any)
	if k.filterEmpty {
		kept := make([]any, 0, len(items))
		for _, item := range items {
			if str, ok := asString(item); (ok && str == "") || isAbsent(item) {
				continue
			}
			kept = append(kept, item)
		}
		items = kept
	}
	if k.items == nil {
		return items, nil
	}

	out := make([]any, len(items))
	for i, item := range items {
		key := strconv.Itoa(i)
		res := k.items.pipeline().run(item, Field{
			Key:    key,
			Path:   joinPath(field.Path, key),
			Record: field.Record,
		}, s)
		if !res.Valid {
			return nil, newNested().set(key, res.Errors)
		}
		out[i] = res.Value
	}
	return out, nil
}

// ListValidator validates ordered sequences. Output values are of type []any.
type ListValidator struct {
	base[*ListValidator]
}

// List creates a list validator. Without Items, elements are not validated.
func List() *ListValidator {
	return newList(newCore(&listKind{}))
}

func newList(c *core) *ListValidator {
	v := &ListValidator{}
	v.base = base[*ListValidator]{newNode(c, v, newList)}
	return v
}

func (v *ListValidator) kind() *listKind {
	return v.base.n.core.kind.(*listKind)
}

// Items validates every element with item. The list owns item from now on.
func (v *ListValidator) Items(item Validator) *ListValidator {
	v.kind().items = item
	return v
}

// FilterEmpty drops empty strings and absent items before element validation.
func (v *ListValidator) FilterEmpty() *ListValidator {
	v.kind().filterEmpty = true
	return v
}

package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// RootPath addresses errors raised by the top-level validator itself.
const RootPath = "_root"

// ErrorTree is the structured failure representation. A leaf carries an
// ordered list of messages; a nested node maps field names or item indexes
// to child trees. A nil tree means success.
type ErrorTree struct {
	Kind     Kind
	Messages []string

	children map[string]*ErrorTree
	keys     []string
}

func newLeaf(kind Kind, messages ...string) *ErrorTree {
	return &ErrorTree{Kind: kind, Messages: messages}
}

func newNested() *ErrorTree {
	return &ErrorTree{Kind: KindNested, children: make(map[string]*ErrorTree)}
}

// set attaches child under key, keeping first-insertion order.
func (t *ErrorTree) set(key string, child *ErrorTree) *ErrorTree {
	if _, ok := t.children[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.children[key] = child
	return t
}

// IsLeaf reports whether the tree carries messages rather than nested keys.
func (t *ErrorTree) IsLeaf() bool {
	return t != nil && t.Kind != KindNested
}

// Keys returns nested keys in the order they failed.
func (t *ErrorTree) Keys() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.keys...)
}

// Get returns the child tree stored under key, or nil.
func (t *ErrorTree) Get(key string) *ErrorTree {
	if t == nil {
		return nil
	}
	return t.children[key]
}

// Lookup walks a dotted path such as "address.lines.0".
func (t *ErrorTree) Lookup(path string) *ErrorTree {
	if path == "" || path == RootPath {
		return t
	}
	node := t
	for segment := range strings.SplitSeq(path, ".") {
		node = node.Get(segment)
		if node == nil {
			return nil
		}
	}
	return node
}

// Len returns the number of messages for a leaf or the number of keys for a nested node.
func (t *ErrorTree) Len() int {
	switch {
	case t == nil:
		return 0
	case t.IsLeaf():
		return len(t.Messages)
	default:
		return len(t.keys)
	}
}

// Value returns the wire shape: []string for a leaf, map[string]any for a nested node.
func (t *ErrorTree) Value() any {
	if t == nil {
		return nil
	}
	if t.IsLeaf() {
		return append([]string(nil), t.Messages...)
	}
	out := make(map[string]any, len(t.keys))
	for _, key := range t.keys {
		out[key] = t.children[key].Value()
	}
	return out
}

// MarshalJSON encodes the tree in its wire shape.
func (t *ErrorTree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Value())
}

// Flatten converts the tree into an ordered list of path-addressed messages.
// Errors raised by the root validator itself are reported under RootPath.
func (t *ErrorTree) Flatten() ValidationErrors {
	var errs ValidationErrors
	t.flatten("", &errs)
	return errs
}

func (t *ErrorTree) flatten(prefix string, errs *ValidationErrors) {
	if t == nil {
		return
	}
	if t.IsLeaf() {
		path := prefix
		if path == "" {
			path = RootPath
		}
		for _, msg := range t.Messages {
			*errs = append(*errs, ValidationError{Field: path, Message: msg, Kind: t.Kind})
		}
		return
	}
	for _, key := range t.keys {
		t.children[key].flatten(joinPath(prefix, key), errs)
	}
}

func (t *ErrorTree) Error() string {
	return t.Flatten().Error()
}

// Is makes errors.Is(err, ErrValidationFailed) report true for every tree.
func (t *ErrorTree) Is(target error) bool {
	return target == ErrValidationFailed
}

// ValidationError is a single flattened failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind"`
}

// ValidationErrors is an ordered collection of flattened failures.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, e := range ve {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", e.Field, e.Message)
	}
	return b.String()
}

// Get returns the messages reported for field, in order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, e := range ve {
		if e.Field == field {
			messages = append(messages, e.Message)
		}
	}
	return messages
}

// Fields returns the failing paths. Flattened errors are grouped by path,
// so each path appears once.
func (ve ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(ve))
	for _, e := range ve {
		fields = append(fields, e.Field)
	}
	return slices.Compact(fields)
}

// ExtractErrorTree returns the *ErrorTree wrapped by err, or nil.
func ExtractErrorTree(err error) *ErrorTree {
	var tree *ErrorTree
	if errors.As(err, &tree) {
		return tree
	}
	return nil
}

// IsValidationError reports whether err carries validation failures.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

package qs

import (
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

// Value kinds. The zero Kind is the null value, which encoders drop.
const (
	KindNull Kind = iota
	KindString
	KindInt
	KindMulti
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindString:
		return "String"
	case KindInt:
		return "Int"
	case KindMulti:
		return "Multi"
	default:
		return "Unknown"
	}
}

// Value is a query parameter value: a string scalar, an integer scalar, or
// an ordered sequence of scalars (a multi-value field, rendered as repeated
// keys in the query string). There is no nesting; the elements of a Multi
// are always scalars.
//
// The zero Value is null. Null values are dropped by both encoders and are
// never produced by Parse.
//
// Values are immutable: Append and Items return fresh data, never a view
// into the receiver.
type Value struct {
	kind  Kind
	str   string
	num   int
	items []Value
}

// String constructs a string scalar.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Int constructs an integer scalar.
func Int(n int) Value {
	return Value{kind: KindInt, num: n}
}

// Multi constructs a multi-value from the given scalars, preserving order.
// Null and Multi elements are flattened away: nulls are skipped and nested
// multis contribute their scalars in order.
func Multi(items ...Value) Value {
	flat := make([]Value, 0, len(items))
	for _, it := range items {
		flat = append(flat, it.scalars()...)
	}
	return Value{kind: KindMulti, items: flat}
}

// Kind returns the variant tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is the null value.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Str returns the string payload. It is only meaningful for KindString.
func (v Value) Str() string {
	return v.str
}

// IntVal returns the integer payload. It is only meaningful for KindInt.
func (v Value) IntVal() int {
	return v.num
}

// Items returns a copy of the elements of a Multi. For a scalar it returns
// a one-element slice holding the scalar; for null it returns nil.
func (v Value) Items() []Value {
	s := v.scalars()
	if s == nil {
		return nil
	}
	out := make([]Value, len(s))
	copy(out, s)
	return out
}

// Len returns the number of scalar elements: 0 for null, 1 for a scalar,
// and the element count for a Multi.
func (v Value) Len() int {
	switch v.kind {
	case KindNull:
		return 0
	case KindMulti:
		return len(v.items)
	default:
		return 1
	}
}

// Append returns a new value with the scalars of elem appended. A scalar
// receiver is first promoted to a two-element Multi; a null receiver yields
// the scalars of elem alone.
func (v Value) Append(elem Value) Value {
	return Multi(append(v.scalars(), elem.scalars()...)...)
}

// Equal reports strict equality: scalars are equal iff they have the same
// kind and identical payload; multis are equal iff they have equal elements
// in the same order. Values of differing kinds are never equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == o.str
	case KindInt:
		return v.num == o.num
	case KindMulti:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Text returns the query-string text of a scalar: the string payload for
// KindString, the base-10 form for KindInt. For a Multi it joins the
// element texts with "," (display form only; encoders emit repeated keys
// instead). Null yields the empty string.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.Itoa(v.num)
	case KindMulti:
		parts := make([]string, len(v.items))
		for i, it := range v.items {
			parts[i] = it.Text()
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// scalars returns the underlying scalar elements without copying. Callers
// must not retain or mutate the result; exported paths copy.
func (v Value) scalars() []Value {
	switch v.kind {
	case KindNull:
		return nil
	case KindMulti:
		return v.items
	default:
		return []Value{v}
	}
}

// clone returns a deep copy of the value.
func (v Value) clone() Value {
	if v.kind != KindMulti {
		return v
	}
	items := make([]Value, len(v.items))
	copy(items, v.items)
	return Value{kind: KindMulti, items: items}
}

// Params maps field names to values. Field names never contain '.'; the
// namespaced "<namespace>.<field>" form exists only inside merge/diff
// operations and never escapes this package.
type Params map[string]Value

// Clone returns a deep copy of the params.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v.clone()
	}
	return out
}

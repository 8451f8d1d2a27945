// Package value implements the fully verified JSON tree.
//
// A Value is a closed, recursive sum type: every node is one of Null, Bool,
// Number, String, Array or Object, and no node escapes as an untyped Go
// value. Values are immutable; constructors copy the slices and maps they are
// given and accessors hand out copies.
//
// The zero Value is Null.
package value

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Kind identifies the variant held by a Value. The declaration order is the
// cross-kind sort order used by Compare.
type Kind uint8

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a verified JSON node.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  map[string]Value
}

func Null() Value {
	return Value{}
}

func Bool(b bool) Value {
	return Value{kind: BoolKind, b: b}
}

func Number(n float64) Value {
	return Value{kind: NumberKind, n: n}
}

func String(s string) Value {
	return Value{kind: StringKind, s: s}
}

// Array copies elems into a new array value.
func Array(elems ...Value) Value {
	return Value{kind: ArrayKind, arr: slices.Clone(elems)}
}

// Object copies members into a new object value. A nil map yields {}.
func Object(members map[string]Value) Value {
	obj := make(map[string]Value, len(members))
	maps.Copy(obj, members)
	return Value{kind: ObjectKind, obj: obj}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == NullKind
}

// AsBool returns the boolean payload and whether v is a Bool.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == BoolKind
}

// AsNumber returns the numeric payload and whether v is a Number.
func (v Value) AsNumber() (float64, bool) {
	return v.n, v.kind == NumberKind
}

// AsString returns the text payload and whether v is a String.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == StringKind
}

// AsArray returns a copy of the elements and whether v is an Array.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != ArrayKind {
		return nil, false
	}
	return slices.Clone(v.arr), true
}

// AsObject returns a copy of the members and whether v is an Object.
func (v Value) AsObject() (map[string]Value, bool) {
	if v.kind != ObjectKind {
		return nil, false
	}
	return maps.Clone(v.obj), true
}

// Len returns the number of elements or members; scalars have length 0.
func (v Value) Len() int {
	switch v.kind {
	case ArrayKind:
		return len(v.arr)
	case ObjectKind:
		return len(v.obj)
	}
	return 0
}

// Keys returns the member names of an Object in sorted order.
func (v Value) Keys() []string {
	if v.kind != ObjectKind {
		return nil
	}
	return slices.Sorted(maps.Keys(v.obj))
}

// Key returns the member named key, or Null when v is not an Object or has
// no such member.
func (v Value) Key(key string) Value {
	if v.kind != ObjectKind {
		return Null()
	}
	return v.obj[key]
}

// Index returns the element at i, or Null when v is not an Array or i is out
// of range.
func (v Value) Index(i int) Value {
	if v.kind != ArrayKind || i < 0 || i >= len(v.arr) {
		return Null()
	}
	return v.arr[i]
}

// Elements iterates the elements of an Array in index order.
func (v Value) Elements() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		if v.kind != ArrayKind {
			return
		}
		for i, elem := range v.arr {
			if !yield(i, elem) {
				return
			}
		}
	}
}

// Members iterates the members of an Object in sorted key order.
func (v Value) Members() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, key := range v.Keys() {
			if !yield(key, v.obj[key]) {
				return
			}
		}
	}
}

// Any converts v to the native tree produced by encoding/json: nil, bool,
// float64, string, []any and map[string]any.
func (v Value) Any() any {
	switch v.kind {
	case BoolKind:
		return v.b
	case NumberKind:
		return v.n
	case StringKind:
		return v.s
	case ArrayKind:
		out := make([]any, len(v.arr))
		for i, elem := range v.arr {
			out[i] = elem.Any()
		}
		return out
	case ObjectKind:
		out := make(map[string]any, len(v.obj))
		for key, member := range v.obj {
			out[key] = member.Any()
		}
		return out
	}
	return nil
}

// String renders v as compact JSON with sorted object keys.
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", v.Any())
	}
	return string(data)
}

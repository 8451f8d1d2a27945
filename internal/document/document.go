// Package document holds JSON trees whose containers are verified lazily.
//
// A Document is either Verified, wrapping a value.Value, or Unverified,
// wrapping a Raw container straight from a decoder. Construction classifies
// only the top node; the cost of classifying the rest of the tree is paid
// when Verified is called on a subtree.
package document

import (
	"fmt"
	"maps"
	"slices"

	"github.com/jacoelho/jseek/internal/value"
)

// ErrInvalidFormat is matched by errors.Is for every classification failure.
var ErrInvalidFormat = value.ErrInvalidFormat

// InvalidFormatError carries the observed Go type that failed
// classification.
type InvalidFormatError = value.InvalidFormatError

// Raw is an unclassified container: either a sequence or a string-keyed map
// of dynamic elements.
type Raw struct {
	kind value.Kind
	arr  []any
	obj  map[string]any
}

// Kind is value.ArrayKind or value.ObjectKind.
func (r Raw) Kind() value.Kind {
	return r.kind
}

// Len returns the number of elements or members.
func (r Raw) Len() int {
	if r.kind == value.ArrayKind {
		return len(r.arr)
	}
	return len(r.obj)
}

// Document is a JSON node that is either Verified or Unverified.
// The zero Document is the Verified null.
//
// New does not copy the container it is given; the caller must not modify
// it afterwards.
type Document struct {
	unverified bool
	raw        Raw
	value      value.Value
	table      *value.Table
}

// Null returns the sentinel Document yielded by missing keys and indexes.
func Null() Document {
	return Document{}
}

// Verified wraps an already verified value.
func Verified(v value.Value) Document {
	return Document{value: v}
}

// New classifies x with value.Default. See NewWithTable.
func New(x any) (Document, error) {
	return NewWithTable(value.Default, x)
}

// NewWithTable classifies the top node of x: a leaf known to table becomes
// Verified, a []any or map[string]any becomes Unverified without inspecting
// its elements, and anything else fails with an *InvalidFormatError.
func NewWithTable(table *value.Table, x any) (Document, error) {
	if leaf, ok := table.Leaf(x); ok {
		return Document{value: leaf, table: table}, nil
	}

	switch node := x.(type) {
	case []any:
		return Document{unverified: true, raw: Raw{kind: value.ArrayKind, arr: node}, table: table}, nil
	case map[string]any:
		return Document{unverified: true, raw: Raw{kind: value.ObjectKind, obj: node}, table: table}, nil
	default:
		return Document{}, &InvalidFormatError{Type: fmt.Sprintf("%T", x)}
	}
}

// IsVerified reports whether d already holds a typed value.
func (d Document) IsVerified() bool {
	return !d.unverified
}

// Kind returns the kind of the top node without verifying children.
func (d Document) Kind() value.Kind {
	if !d.unverified {
		return d.value.Kind()
	}
	return d.raw.kind
}

// IsNull reports whether d is a Verified null.
func (d Document) IsNull() bool {
	return !d.unverified && d.value.IsNull()
}

// Len returns the number of children of the top node.
func (d Document) Len() int {
	if !d.unverified {
		return d.value.Len()
	}
	return d.raw.Len()
}

// Raw returns the unverified container and true when d is Unverified.
func (d Document) Raw() (Raw, bool) {
	return d.raw, d.unverified
}

// Verified returns the typed tree. A Verified document returns its value
// as is. An Unverified document classifies every node below it on each call;
// the result is not cached.
func (d Document) Verified() (value.Value, error) {
	if !d.unverified {
		return d.value, nil
	}

	switch d.raw.kind {
	case value.ArrayKind:
		return d.tableOrDefault().OfSlice(d.raw.arr)
	case value.ObjectKind:
		return d.tableOrDefault().OfMap(d.raw.obj)
	}
	return value.Null(), nil
}

// Key returns the member named key as a Document. Documents that are not
// objects, and objects without the member, yield Null. An error is returned
// only when the member itself cannot be classified.
func (d Document) Key(key string) (Document, error) {
	if !d.unverified {
		if d.value.Kind() != value.ObjectKind {
			return Null(), nil
		}
		return d.child(d.value.Key(key)), nil
	}

	if d.raw.kind != value.ObjectKind {
		return Null(), nil
	}
	member, ok := d.raw.obj[key]
	if !ok {
		return Null(), nil
	}
	return NewWithTable(d.tableOrDefault(), member)
}

// Index returns the element at i as a Document. Documents that are not
// arrays, and out of range indexes, yield Null.
func (d Document) Index(i int) (Document, error) {
	if !d.unverified {
		if d.value.Kind() != value.ArrayKind {
			return Null(), nil
		}
		return d.child(d.value.Index(i)), nil
	}

	if d.raw.kind != value.ArrayKind || i < 0 || i >= len(d.raw.arr) {
		return Null(), nil
	}
	return NewWithTable(d.tableOrDefault(), d.raw.arr[i])
}

// Keys returns the member names of an object document in sorted order.
func (d Document) Keys() []string {
	if !d.unverified {
		return d.value.Keys()
	}
	if d.raw.kind != value.ObjectKind {
		return nil
	}
	return slices.Sorted(maps.Keys(d.raw.obj))
}

// String renders d as compact JSON when it verifies, and a short
// description of the failure otherwise.
func (d Document) String() string {
	v, err := d.Verified()
	if err != nil {
		return fmt.Sprintf("<%s: %v>", d.Kind(), err)
	}
	return v.String()
}

func (d Document) child(v value.Value) Document {
	return Document{value: v, table: d.table}
}

func (d Document) tableOrDefault() *value.Table {
	if d.table == nil {
		return value.Default
	}
	return d.table
}

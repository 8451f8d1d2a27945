package value

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"github.com/jacoelho/jseek/internal/path"
)

// Table maps native Go scalar types to Value leaves. It is consulted when a
// dynamic tree produced by a decoder is classified.
type Table struct {
	mu     sync.RWMutex
	leaves map[reflect.Type]func(any) (Value, bool)
}

// Default is the table used by Of and by the document package unless a
// caller supplies its own.
var Default = NewTable()

// NewTable returns a table preloaded with bool, string, every integer and
// float type, json.Number and Value itself.
func NewTable() *Table {
	t := &Table{leaves: make(map[reflect.Type]func(any) (Value, bool))}

	Register(t, func(b bool) (Value, bool) { return Bool(b), true })
	Register(t, func(s string) (Value, bool) { return String(s), true })
	Register(t, func(v Value) (Value, bool) { return v, true })

	Register(t, func(n float64) (Value, bool) { return Number(n), true })
	Register(t, func(n float32) (Value, bool) { return Number(float64(n)), true })
	Register(t, func(n int) (Value, bool) { return Number(float64(n)), true })
	Register(t, func(n int8) (Value, bool) { return Number(float64(n)), true })
	Register(t, func(n int16) (Value, bool) { return Number(float64(n)), true })
	Register(t, func(n int32) (Value, bool) { return Number(float64(n)), true })
	Register(t, func(n int64) (Value, bool) { return Number(float64(n)), true })
	Register(t, func(n uint) (Value, bool) { return Number(float64(n)), true })
	Register(t, func(n uint8) (Value, bool) { return Number(float64(n)), true })
	Register(t, func(n uint16) (Value, bool) { return Number(float64(n)), true })
	Register(t, func(n uint32) (Value, bool) { return Number(float64(n)), true })
	Register(t, func(n uint64) (Value, bool) { return Number(float64(n)), true })
	Register(t, func(n json.Number) (Value, bool) {
		f, err := n.Float64()
		if err != nil {
			return Value{}, false
		}
		return Number(f), true
	})

	return t
}

// Register installs convert for values whose dynamic type is exactly T,
// replacing any previous entry. convert reports false to reject a value.
func Register[T any](t *Table, convert func(T) (Value, bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.leaves[reflect.TypeFor[T]()] = func(x any) (Value, bool) {
		return convert(x.(T))
	}
}

// Leaf converts x when it is nil or a registered scalar type.
func (t *Table) Leaf(x any) (Value, bool) {
	if x == nil {
		return Null(), true
	}

	t.mu.RLock()
	convert, ok := t.leaves[reflect.TypeOf(x)]
	t.mu.RUnlock()

	if !ok {
		return Value{}, false
	}
	return convert(x)
}

// Of converts a dynamic tree into a Value, classifying every node. Leaves go
// through the table; []any and map[string]any recurse. Anything else fails
// with an *InvalidFormatError.
func (t *Table) Of(x any) (Value, error) {
	var p path.Path
	return t.of(x, &p)
}

func (t *Table) of(x any, p *path.Path) (Value, error) {
	if leaf, ok := t.Leaf(x); ok {
		return leaf, nil
	}

	switch node := x.(type) {
	case []any:
		return t.ofSlice(node, p)
	case map[string]any:
		return t.ofMap(node, p)
	default:
		return Value{}, &InvalidFormatError{Type: fmt.Sprintf("%T", x), Path: p.Clone()}
	}
}

// OfSlice classifies each element of elems into an Array.
func (t *Table) OfSlice(elems []any) (Value, error) {
	var p path.Path
	return t.ofSlice(elems, &p)
}

// OfMap classifies each member of members into an Object.
func (t *Table) OfMap(members map[string]any) (Value, error) {
	var p path.Path
	return t.ofMap(members, &p)
}

func (t *Table) ofSlice(elems []any, p *path.Path) (Value, error) {
	arr := make([]Value, len(elems))
	for i, elem := range elems {
		p.Push(path.Offset(i))
		v, err := t.of(elem, p)
		p.Pop()
		if err != nil {
			return Value{}, err
		}
		arr[i] = v
	}
	return Value{kind: ArrayKind, arr: arr}, nil
}

func (t *Table) ofMap(members map[string]any, p *path.Path) (Value, error) {
	obj := make(map[string]Value, len(members))
	for key, member := range members {
		p.Push(path.Key(key))
		v, err := t.of(member, p)
		p.Pop()
		if err != nil {
			return Value{}, err
		}
		obj[key] = v
	}
	return Value{kind: ObjectKind, obj: obj}, nil
}

// Of converts x with the Default table.
func Of(x any) (Value, error) {
	return Default.Of(x)
}

// CompareAny converts x with the Default table and compares it with v.
func CompareAny(v Value, x any) (int, error) {
	other, err := Of(x)
	if err != nil {
		return 0, err
	}
	return Compare(v, other), nil
}

// EqualAny converts x with the Default table and tests it for equality with v.
func EqualAny(v Value, x any) (bool, error) {
	other, err := Of(x)
	if err != nil {
		return false, err
	}
	return Equal(v, other), nil
}

package value

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Kinds order as Null < Bool < Number < String < Array < Object. Objects
// compare their sorted key sequences first and, when those are equal, the
// member values taken in sorted key order.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}

	switch a.kind {
	case BoolKind:
		return compareBools(a.b, b.b)
	case NumberKind:
		return cmp.Compare(a.n, b.n)
	case StringKind:
		return strings.Compare(a.s, b.s)
	case ArrayKind:
		return compareArrays(a.arr, b.arr)
	case ObjectKind:
		return compareObjects(a.obj, b.obj)
	}
	return 0
}

// Less reports whether a sorts before b.
func Less(a, b Value) bool {
	return Compare(a, b) < 0
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func compareArrays(a, b []Value) int {
	return slices.CompareFunc(a, b, Compare)
}

func compareObjects(a, b map[string]Value) int {
	keysA := slices.Sorted(maps.Keys(a))
	keysB := slices.Sorted(maps.Keys(b))
	if c := slices.Compare(keysA, keysB); c != 0 {
		return c
	}
	for _, key := range keysA {
		if c := Compare(a[key], b[key]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether a and b hold the same tree. Object members are
// matched by key, so the result never depends on map iteration order.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case NullKind:
		return true
	case BoolKind:
		return a.b == b.b
	case NumberKind:
		return cmp.Compare(a.n, b.n) == 0
	case StringKind:
		return a.s == b.s
	case ArrayKind:
		return slices.EqualFunc(a.arr, b.arr, Equal)
	case ObjectKind:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for _, key := range slices.Sorted(maps.Keys(a.obj)) {
			other, ok := b.obj[key]
			if !ok || !Equal(a.obj[key], other) {
				return false
			}
		}
		return true
	}
	return false
}

// Equal reports whether v and other hold the same tree.
func (v Value) Equal(other Value) bool {
	return Equal(v, other)
}

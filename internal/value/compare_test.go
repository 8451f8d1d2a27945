package value

import (
	"math"
	"slices"
	"testing"
)

func obj(kv ...any) Value {
	members := make(map[string]Value, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		members[kv[i].(string)] = kv[i+1].(Value)
	}
	return Object(members)
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Value
		want int
	}{
		{name: "false < true", a: Bool(false), b: Bool(true), want: -1},
		{name: "null < false", a: Null(), b: Bool(false), want: -1},
		{name: "bool < number", a: Bool(true), b: Number(-100), want: -1},
		{name: "number < string", a: Number(1e9), b: String(""), want: -1},
		{name: "string < array", a: String("zzz"), b: Array(), want: -1},
		{name: "array < object", a: Array(Number(1)), b: Object(nil), want: -1},
		{name: "numbers", a: Number(2), b: Number(10), want: -1},
		{name: "equal numbers", a: Number(0), b: Number(math.Copysign(0, -1)), want: 0},
		{name: "strings by byte", a: String("B"), b: String("a"), want: -1},
		{name: "array prefix", a: Array(Number(1)), b: Array(Number(1), Number(2)), want: -1},
		{name: "array element", a: Array(Number(3)), b: Array(Number(1), Number(2)), want: 1},
		{name: "object sorted keys", a: obj("a", Number(1)), b: obj("b", Number(1)), want: -1},
		{name: "object keys before values", a: obj("a", Number(9)), b: obj("b", Number(1)), want: -1},
		{name: "object fewer keys", a: obj("a", Null()), b: obj("a", Null(), "b", Null()), want: -1},
		{name: "object values", a: obj("a", Number(1), "b", Number(2)), b: obj("b", Number(1), "a", Number(1)), want: 1},
		{name: "null equal", a: Null(), b: Value{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Fatalf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Fatalf("Compare(%v, %v) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestCompareSortsMixedValues(t *testing.T) {
	t.Parallel()

	values := []Value{
		obj("b", Number(1)),
		String("x"),
		Number(3),
		Array(),
		Null(),
		obj("a", Number(1)),
		Bool(true),
		Bool(false),
	}
	slices.SortFunc(values, Compare)

	want := []string{`null`, `false`, `true`, `3`, `"x"`, `[]`, `{"a":1}`, `{"b":1}`}
	for i, v := range values {
		if got := v.String(); got != want[i] {
			t.Fatalf("sorted[%d] = %s, want %s", i, got, want[i])
		}
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	built := map[string]Value{}
	for _, key := range []string{"z", "y", "x", "w", "v", "u"} {
		built[key] = Number(float64(len(key)))
	}
	a := Object(built)

	reversed := map[string]Value{}
	for _, key := range []string{"u", "v", "w", "x", "y", "z"} {
		reversed[key] = Number(1)
	}
	b := Object(reversed)

	if !Equal(a, b) {
		t.Fatalf("Equal(%v, %v) = false, want true", a, b)
	}
	if Compare(a, b) != 0 {
		t.Fatalf("Compare(%v, %v) = %d, want 0", a, b, Compare(a, b))
	}

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{name: "kinds differ", a: Number(0), b: Bool(false), want: false},
		{name: "nested arrays", a: Array(Array(String("a"))), b: Array(Array(String("a"))), want: true},
		{name: "array order matters", a: Array(Number(1), Number(2)), b: Array(Number(2), Number(1)), want: false},
		{name: "missing member", a: obj("a", Null()), b: obj("b", Null()), want: false},
		{name: "nan equals nan", a: Number(math.NaN()), b: Number(math.NaN()), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Fatalf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Compare(tt.a, tt.b) == 0; got != tt.want {
				t.Fatalf("Compare(%v, %v) == 0 is %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompareAny(t *testing.T) {
	t.Parallel()

	got, err := CompareAny(Number(3), 3)
	if err != nil || got != 0 {
		t.Fatalf("CompareAny(3, int 3) = %d, %v, want 0, nil", got, err)
	}

	eq, err := EqualAny(obj("a", Number(1)), map[string]any{"a": uint8(1)})
	if err != nil || !eq {
		t.Fatalf("EqualAny = %v, %v, want true, nil", eq, err)
	}

	if _, err := CompareAny(Null(), struct{}{}); err == nil {
		t.Fatal("CompareAny with struct{} succeeded, want error")
	}
}

func TestHash(t *testing.T) {
	t.Parallel()

	a := obj("a", Number(1), "b", Array(String("x"), Null()))
	b := obj("b", Array(String("x"), Null()), "a", Number(1))
	if a.Hash() != b.Hash() {
		t.Fatal("equal objects hash differently")
	}
	if Number(0).Hash() != Number(math.Copysign(0, -1)).Hash() {
		t.Fatal("0 and -0 hash differently")
	}

	distinct := []Value{
		Null(),
		Bool(false),
		Number(0),
		String(""),
		Array(),
		Object(nil),
		Array(String("ab")),
		Array(String("a"), String("b")),
		obj("ab", String("")),
		obj("a", String("b")),
	}
	seen := map[[32]byte]Value{}
	for _, v := range distinct {
		h := v.Hash()
		if prev, ok := seen[h]; ok {
			t.Fatalf("%v and %v share a hash", prev, v)
		}
		seen[h] = v
	}
}

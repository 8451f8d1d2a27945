package value

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/blake3"
)

// Hash returns a BLAKE3 digest of the canonical form of v. Values that are
// Equal hash identically: object members are visited in sorted key order,
// -0 hashes as 0 and every NaN hashes alike.
func (v Value) Hash() [32]byte {
	hasher := blake3.New()
	v.writeCanonical(hasher)

	var sum [32]byte
	copy(sum[:], hasher.Sum(nil))
	return sum
}

func (v Value) writeCanonical(h *blake3.Hasher) {
	var b [8]byte
	h.Write([]byte{byte(v.kind)})

	switch v.kind {
	case BoolKind:
		if v.b {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case NumberKind:
		binary.LittleEndian.PutUint64(b[:], canonicalBits(v.n))
		h.Write(b[:])
	case StringKind:
		writeString(h, v.s)
	case ArrayKind:
		binary.LittleEndian.PutUint64(b[:], uint64(len(v.arr)))
		h.Write(b[:])
		for _, elem := range v.arr {
			elem.writeCanonical(h)
		}
	case ObjectKind:
		binary.LittleEndian.PutUint64(b[:], uint64(len(v.obj)))
		h.Write(b[:])
		for _, key := range v.Keys() {
			writeString(h, key)
			v.obj[key].writeCanonical(h)
		}
	}
}

func writeString(h *blake3.Hasher, s string) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(len(s)))
	h.Write(b[:])
	h.Write([]byte(s))
}

func canonicalBits(n float64) uint64 {
	switch {
	case math.IsNaN(n):
		return math.Float64bits(math.NaN())
	case n == 0:
		return 0
	}
	return math.Float64bits(n)
}

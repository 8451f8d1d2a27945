// Package path addresses nodes of a JSON tree with literal dotted paths.
//
// A Path is an ordered sequence of components, each either an object Key or
// an array Offset. Paths are written as dot-separated literals:
//
//	users.0.name   → Key("users"), Offset(0), Key("name")
//
// Only literal paths and exact suffix matching are supported.
package path

import (
	"strconv"
	"strings"
	"unicode"
)

// Component is a single step of a Path.
type Component struct {
	key      string
	offset   int
	isOffset bool
}

// Key returns an object member component.
func Key(key string) Component {
	return Component{key: key}
}

// Offset returns an array element component. It panics on a negative index.
func Offset(index int) Component {
	if index < 0 {
		panic("path: negative offset " + strconv.Itoa(index))
	}
	return Component{offset: index, isOffset: true}
}

// IsOffset reports whether c addresses an array element.
func (c Component) IsOffset() bool {
	return c.isOffset
}

// Key returns the member name and true when c is a Key.
func (c Component) Key() (string, bool) {
	return c.key, !c.isOffset
}

// Offset returns the array index and true when c is an Offset.
func (c Component) Offset() (int, bool) {
	return c.offset, c.isOffset
}

func (c Component) String() string {
	if c.isOffset {
		return strconv.Itoa(c.offset)
	}
	return c.key
}

// Path is an ordered sequence of components. The zero value is Root.
type Path []Component

// Root is the empty path addressing the top of a tree.
var Root Path

// New builds a path from components.
func New(components ...Component) Path {
	if len(components) == 0 {
		return Root
	}
	return append(Path(nil), components...)
}

// Parse reads a dotted literal. Empty segments are dropped; a segment with no
// letters that parses as a non-negative integer is an Offset, everything else
// is a Key. Parse never fails.
func Parse(literal string) Path {
	var p Path
	for segment := range strings.SplitSeq(literal, ".") {
		if segment == "" {
			continue
		}
		p = append(p, parseSegment(segment))
	}
	return p
}

// ParseAll parses each literal.
func ParseAll(literals ...string) []Path {
	paths := make([]Path, 0, len(literals))
	for _, literal := range literals {
		paths = append(paths, Parse(literal))
	}
	return paths
}

func parseSegment(segment string) Component {
	if strings.IndexFunc(segment, unicode.IsLetter) >= 0 {
		return Key(segment)
	}
	index, err := strconv.Atoi(segment)
	if err != nil || index < 0 {
		return Key(segment)
	}
	return Offset(index)
}

// Push appends c as the last component.
func (p *Path) Push(c Component) {
	*p = append(*p, c)
}

// Pop removes the last component. It reports false on Root.
func (p *Path) Pop() (Component, bool) {
	if len(*p) == 0 {
		return Component{}, false
	}
	last := len(*p) - 1
	c := (*p)[last]
	*p = (*p)[:last]
	return c, true
}

// Len returns the number of components.
func (p Path) Len() int {
	return len(p)
}

// IsRoot reports whether p has no components.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Clone returns a copy that does not share storage with p.
func (p Path) Clone() Path {
	if len(p) == 0 {
		return Root
	}
	return append(Path(nil), p...)
}

// Equal compares components in order.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// EndsWith reports whether target is a trailing subsequence of p.
// An empty target never matches.
func (p Path) EndsWith(target Path) bool {
	if len(target) == 0 || len(p) < len(target) {
		return false
	}
	return p[len(p)-len(target):].Equal(target)
}

// String joins components with '.'. Keys containing '.' or digit-only keys
// do not survive a round trip through Parse.
func (p Path) String() string {
	var b strings.Builder
	for i, c := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// JSONPath renders p as an RFC 9535 normalized path, e.g. $['users'][0].
func (p Path) JSONPath() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, c := range p {
		b.WriteByte('[')
		if c.isOffset {
			b.WriteString(strconv.Itoa(c.offset))
		} else {
			b.WriteByte('\'')
			writeNormalizedName(&b, c.key)
			b.WriteByte('\'')
		}
		b.WriteByte(']')
	}
	return b.String()
}

func writeNormalizedName(b *strings.Builder, name string) {
	const hex = "0123456789abcdef"
	for _, r := range name {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hex[r>>4])
				b.WriteByte(hex[r&0xf])
				continue
			}
			b.WriteRune(r)
		}
	}
}

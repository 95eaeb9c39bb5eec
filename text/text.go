// Package text provides the variable-length text value used across the
// simulated platform API. It mirrors the embedded platform's text contract:
// every index and range operation is clamped, out-of-range access yields a
// sentinel (zero byte, empty value, -1), and numeric parsing falls back to
// zero instead of failing. Nothing here can panic or return an error.
package text

import (
	"bytes"

	"boardsim-go/x/conv"
	"boardsim-go/x/mathx"
)

// End marks "to the end of the value" when passed as the end bound of
// Substring.
const End = -1

// NotFound is returned by the IndexOf family when the needle is absent.
const NotFound = -1

// Value owns a byte sequence. The zero Value is empty and ready to use.
// All operations are pure except the Append family, which mutate in place.
type Value struct {
	b []byte
}

// New builds a Value from a string literal.
func New(s string) Value {
	return Value{b: []byte(s)}
}

// FromInt builds a Value holding the decimal rendering of n.
func FromInt(n int) Value {
	return Value{b: []byte(conv.ItoaString(int64(n)))}
}

// Len returns the byte count.
func (v Value) Len() int { return len(v.b) }

// String returns the contents as a plain Go string.
func (v Value) String() string { return string(v.b) }

// At returns the byte at index i, or 0 when i is out of range.
func (v Value) At(i int) byte {
	if i < 0 || i >= len(v.b) {
		return 0
	}
	return v.b[i]
}

// Substring extracts [start, end). end may be the End sentinel, meaning "to
// the end of the value". Any integer bounds are accepted: both are clamped
// into range and an empty or inverted range yields an empty Value.
func (v Value) Substring(start, end int) Value {
	if end == End {
		end = len(v.b)
	}
	s, e := mathx.Range(start, end, len(v.b))
	if s == e {
		return Value{}
	}
	out := make([]byte, e-s)
	copy(out, v.b[s:e])
	return Value{b: out}
}

// IndexOf returns the position of the first occurrence of needle, or
// NotFound.
func (v Value) IndexOf(needle string) int {
	return v.IndexOfFrom(needle, 0)
}

// IndexOfFrom returns the position of the first occurrence of needle at or
// after from, or NotFound. from is clamped into range.
func (v Value) IndexOfFrom(needle string, from int) int {
	from = mathx.Clamp(from, 0, len(v.b))
	i := bytes.Index(v.b[from:], []byte(needle))
	if i < 0 {
		return NotFound
	}
	return from + i
}

// IndexOfByte returns the position of the first occurrence of c at or after
// from, or NotFound.
func (v Value) IndexOfByte(c byte, from int) int {
	from = mathx.Clamp(from, 0, len(v.b))
	i := bytes.IndexByte(v.b[from:], c)
	if i < 0 {
		return NotFound
	}
	return from + i
}

// ToInt parses a leading decimal integer (optional spaces and sign allowed)
// and returns 0 on any parse failure.
func (v Value) ToInt() int {
	return conv.ParseLeadingInt(string(v.b))
}

// Append appends a string in place.
func (v *Value) Append(s string) {
	v.b = append(v.b, s...)
}

// AppendByte appends a single byte in place.
func (v *Value) AppendByte(c byte) {
	v.b = append(v.b, c)
}

// AppendValue appends another Value in place.
func (v *Value) AppendValue(o Value) {
	v.b = append(v.b, o.b...)
}

// Concat returns a new Value holding v followed by o.
func (v Value) Concat(o Value) Value {
	out := make([]byte, 0, len(v.b)+len(o.b))
	out = append(out, v.b...)
	out = append(out, o.b...)
	return Value{b: out}
}

// ConcatString returns a new Value holding v followed by s.
func (v Value) ConcatString(s string) Value {
	return v.Concat(New(s))
}

// Equal reports whether v and o hold the same bytes.
func (v Value) Equal(o Value) bool {
	return bytes.Equal(v.b, o.b)
}

// EqualString reports whether v holds exactly s.
func (v Value) EqualString(s string) bool {
	return string(v.b) == s
}

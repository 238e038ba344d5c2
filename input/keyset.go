package input

import (
	"math/bits"
	"strings"
)

// KeySet is a point-in-time snapshot of pressed keys.
//
// It is a value type: copies are independent and two sets compare equal
// with == when they hold the same keys.
type KeySet struct {
	words [int(MaxCode)/64 + 1]uint64
}

// NewKeySet returns a set holding the given codes. NoCode and out of range
// codes are ignored.
func NewKeySet(codes ...Code) KeySet {
	var s KeySet
	for _, c := range codes {
		s = s.With(c)
	}
	return s
}

// Has reports whether c is pressed.
func (s KeySet) Has(c Code) bool {
	if c == NoCode || c > MaxCode {
		return false
	}
	return s.words[c/64]&(1<<(c%64)) != 0
}

// With returns a copy of s with c added.
func (s KeySet) With(c Code) KeySet {
	if c == NoCode || c > MaxCode {
		return s
	}
	s.words[c/64] |= 1 << (c % 64)
	return s
}

// Without returns a copy of s with c removed.
func (s KeySet) Without(c Code) KeySet {
	if c == NoCode || c > MaxCode {
		return s
	}
	s.words[c/64] &^= 1 << (c % 64)
	return s
}

func (s KeySet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Codes lists the pressed codes in ascending order.
func (s KeySet) Codes() []Code {
	out := make([]Code, 0, s.Len())
	for i, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, Code(i*64+b))
			w &^= 1 << b
		}
	}
	return out
}

func (s KeySet) String() string {
	codes := s.Codes()
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = c.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}

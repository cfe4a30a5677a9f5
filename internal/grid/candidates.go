package grid

import "math/bits"

const wordBits = 64

// ValueSet is a bitset over candidate values 1..N.
// Bit i of the word slice represents value i+1 (bit 0 = value 1).
//
// The slice is sized to the next 64-bit word boundary at or above N, so all
// common board sizes (4, 9, 16, 25, 36, 49, 64) fit in a single word and set
// operations stay branch-free.
type ValueSet []uint64

// NewValueSet returns an empty set able to hold values 1..n.
func NewValueSet(n int) ValueSet {
	return make(ValueSet, (n+wordBits-1)/wordBits)
}

// FullValueSet returns the set {1..n}.
func FullValueSet(n int) ValueSet {
	s := NewValueSet(n)
	for v := 1; v <= n; v++ {
		s.Add(v)
	}
	return s
}

// Has reports whether v is in the set.
func (s ValueSet) Has(v int) bool {
	if v < 1 || v > len(s)*wordBits {
		return false
	}
	i := v - 1
	return s[i/wordBits]&(1<<(i%wordBits)) != 0
}

// Add inserts v into the set.
func (s ValueSet) Add(v int) {
	i := v - 1
	s[i/wordBits] |= 1 << (i % wordBits)
}

// Remove deletes v from the set. Reports whether v was present.
func (s ValueSet) Remove(v int) bool {
	if v < 1 || v > len(s)*wordBits {
		return false
	}
	i := v - 1
	w, m := i/wordBits, uint64(1)<<(i%wordBits)
	if s[w]&m == 0 {
		return false
	}
	s[w] &^= m
	return true
}

// Count returns the number of values in the set.
func (s ValueSet) Count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether the set has no values.
func (s ValueSet) IsEmpty() bool {
	for _, w := range s {
		if w != 0 {
			return false
		}
	}
	return true
}

// Sole returns the single value in the set, or (0, false) if the set does
// not contain exactly one value.
func (s ValueSet) Sole() (int, bool) {
	val, seen := 0, 0
	for wi, w := range s {
		c := bits.OnesCount64(w)
		if c == 0 {
			continue
		}
		seen += c
		if seen > 1 {
			return 0, false
		}
		val = wi*wordBits + bits.TrailingZeros64(w) + 1
	}
	return val, seen == 1
}

// Next returns the smallest value in the set strictly greater than after,
// or 0 if there is none. Next(0) starts an ascending scan.
func (s ValueSet) Next(after int) int {
	for wi := after / wordBits; wi < len(s); wi++ {
		w := s[wi]
		if wi == after/wordBits && after%wordBits != 0 {
			w &^= (1 << (after % wordBits)) - 1
		}
		if w != 0 {
			return wi*wordBits + bits.TrailingZeros64(w) + 1
		}
	}
	return 0
}

// Clone returns an independent copy of the set.
func (s ValueSet) Clone() ValueSet {
	c := make(ValueSet, len(s))
	copy(c, s)
	return c
}

// Equal reports whether two sets hold the same values.
func (s ValueSet) Equal(o ValueSet) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Values returns the members of the set in ascending order.
func (s ValueSet) Values() []int {
	out := make([]int, 0, s.Count())
	for v := s.Next(0); v != 0; v = s.Next(v) {
		out = append(out, v)
	}
	return out
}

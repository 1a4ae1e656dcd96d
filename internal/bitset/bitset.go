// Package bitset adapts github.com/bits-and-blooms/bitset to a fixed-size,
// int-indexed table, one bit per index.
package bitset

import "github.com/bits-and-blooms/bitset"

// Set is a fixed-length sequence of bits.
type Set struct {
	bits *bitset.BitSet
	n    int
}

// New returns a Set of n bits, all clear. Like make, it panics on negative n.
func New(n int) *Set {
	if n < 0 {
		panic("bitset: negative length")
	}
	return &Set{bits: bitset.New(uint(n)), n: n}
}

// Len returns the number of bits in the set.
func (s *Set) Len() int {
	return s.n
}

// Fill sets every bit.
func (s *Set) Fill() {
	s.bits.ClearAll()
	if s.n > 0 {
		s.bits.FlipRange(0, uint(s.n))
	}
}

// Set sets bit i.
func (s *Set) Set(i int) {
	s.bits.Set(uint(i))
}

// Clear clears bit i.
func (s *Set) Clear(i int) {
	s.bits.Clear(uint(i))
}

// Test reports whether bit i is set. Out-of-range indexes report false.
func (s *Set) Test(i int) bool {
	if i < 0 || i >= s.n {
		return false
	}
	return s.bits.Test(uint(i))
}

// Count returns the number of set bits.
func (s *Set) Count() int {
	return int(s.bits.Count())
}

// NextSet returns the index of the first set bit at or after from.
// The second result is false when no such bit exists.
func (s *Set) NextSet(from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	if from >= s.n {
		return 0, false
	}
	i, ok := s.bits.NextSet(uint(from))
	if !ok || int(i) >= s.n {
		return 0, false
	}
	return int(i), true
}

package textbook

import (
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/jward/textbook/internal/bitset"
)

// Sieve is the marker table left by a Sieve of Eratosthenes run.
// Bit i is set iff i is prime, for 0 <= i <= Bound.
type Sieve struct {
	bound int
	marks *bitset.Set
}

type sieveConfig struct {
	maxBound int // 0 means unlimited
}

// SieveOption configures NewSieve and GeneratePrimes.
type SieveOption func(*sieveConfig)

// WithMaxBound rejects bounds above n with ErrBoundTooLarge.
// Zero or a negative n leaves the bound unlimited.
func WithMaxBound(n int) SieveOption {
	return func(c *sieveConfig) {
		c.maxBound = max(n, 0)
	}
}

// NewSieve sieves every integer in [0, upperBound].
// A bound below 2 is valid and produces a sieve with no primes.
func NewSieve(upperBound int, opts ...SieveOption) (*Sieve, error) {
	var cfg sieveConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxBound > 0 && upperBound > cfg.maxBound {
		return nil, fmt.Errorf("%w: %d > %d", ErrBoundTooLarge, upperBound, cfg.maxBound)
	}
	// The table holds upperBound+1 entries.
	if upperBound == math.MaxInt {
		return nil, fmt.Errorf("%w: %d", ErrBoundTooLarge, upperBound)
	}

	s := &Sieve{bound: upperBound}
	if upperBound < 2 {
		s.marks = bitset.New(0)
		return s, nil
	}

	s.marks = bitset.New(upperBound + 1)
	s.marks.Fill()
	s.marks.Clear(0)
	s.marks.Clear(1)

	// c <= upperBound/c is c*c <= upperBound without overflow.
	for c := 2; c <= upperBound/c; c++ {
		if !s.marks.Test(c) {
			continue
		}
		// Smaller multiples were cleared by smaller prime factors.
		for m := c * c; ; m += c {
			s.marks.Clear(m)
			if m > upperBound-c {
				break
			}
		}
	}
	return s, nil
}

// Bound returns the inclusive upper bound the sieve was built for.
func (s *Sieve) Bound() int {
	return s.bound
}

// IsPrime reports whether n is prime. Values outside [0, Bound] report false.
func (s *Sieve) IsPrime(n int) bool {
	return s.marks.Test(n)
}

// Count returns the number of primes up to Bound.
func (s *Sieve) Count() int {
	return s.marks.Count()
}

// All yields the primes up to Bound in ascending order.
func (s *Sieve) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for p, ok := s.marks.NextSet(2); ok; p, ok = s.marks.NextSet(p + 1) {
			if !yield(p) {
				return
			}
		}
	}
}

// Primes returns the primes up to Bound in ascending order.
// The result is empty, not nil, when there are none.
func (s *Sieve) Primes() []int {
	primes := make([]int, 0, s.Count())
	for p := range s.All() {
		primes = append(primes, p)
	}
	return primes
}

// GeneratePrimes returns every prime less than or equal to upperBound.
func GeneratePrimes(upperBound int, opts ...SieveOption) ([]int, error) {
	s, err := NewSieve(upperBound, opts...)
	if err != nil {
		return nil, err
	}
	return s.Primes(), nil
}

// FormatPrimes renders the result line. Each prime is followed by a single
// space, so a non-empty line ends with a trailing separator.
func FormatPrimes(primes []int) string {
	if len(primes) == 0 {
		return "No prime numbers"
	}
	var b strings.Builder
	b.WriteString("Prime numbers: ")
	for _, p := range primes {
		b.WriteString(strconv.Itoa(p))
		b.WriteByte(' ')
	}
	return b.String()
}

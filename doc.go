// Package textbook implements two small console exercises: the area of a
// circle and a Sieve of Eratosthenes prime generator.
//
// # Circle area
//
// [CircleArea] computes π×r² for any finite radius. Negative radii are
// accepted; the square makes the area non-negative. [FormatCircle] renders
// the console line with both radius and area fixed to two decimals:
//
//	area := textbook.CircleArea(2)
//	fmt.Println(textbook.FormatCircle(2, area))
//	// The area of a circle with a radius 2.00 is 12.57
//
// # Prime sieve
//
// [GeneratePrimes] returns every prime up to and including a bound. Bounds
// below 2 yield an empty result, never an error. [NewSieve] keeps the marker
// table for membership queries:
//
//	s, err := textbook.NewSieve(100)
//	if err != nil { ... }
//	s.IsPrime(97) // true
//	for p := range s.All() { ... }
//
// The marker table is packed one bit per integer, so a bound of n costs
// roughly n/8 bytes. [WithMaxBound] caps the bound for callers that take it
// from untrusted input.
//
// # Input
//
// [ReadToken] reads the first whitespace-delimited token from a reader.
// [ParseRadius] and [ParseBound] convert it. Every failure to obtain a
// number wraps [ErrInvalidInput].
package textbook

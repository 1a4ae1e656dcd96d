package textbook

import (
	"fmt"
	"testing"
)

func BenchmarkGeneratePrimes(b *testing.B) {
	for _, n := range []int{1_000, 100_000, 10_000_000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := GeneratePrimes(n); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFormatPrimes(b *testing.B) {
	primes, err := GeneratePrimes(100_000)
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		_ = FormatPrimes(primes)
	}
}

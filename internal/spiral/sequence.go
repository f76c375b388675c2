package spiral

import "math"

// Sequence returns the Fibonacci numbers 1, 1, 2, 3, ... as float64.
// Generation stops after maxTerms terms, or before the first term that would
// exceed ceiling or overflow. At least the two seed terms are always returned.
func Sequence(maxTerms int, ceiling float64) []float64 {
	if maxTerms < 2 {
		maxTerms = 2
	}
	fib := make([]float64, 2, maxTerms)
	fib[0], fib[1] = 1, 1
	for len(fib) < maxTerms {
		n := len(fib)
		next := fib[n-1] + fib[n-2]
		if next > ceiling || math.IsInf(next, 0) {
			break
		}
		fib = append(fib, next)
	}
	return fib
}

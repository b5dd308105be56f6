package ordered

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	errs "github.com/matzehuels/reckon/pkg/errors"
)

// Ranks and counts are uint64. Every function here reports overflow as
// ErrCodeOutOfRange instead of silently wrapping.

func mulAdd(r, base, digit uint64) (uint64, bool) {
	hi, lo := bits.Mul64(r, base)
	if hi != 0 {
		return 0, false
	}
	sum, carry := bits.Add64(lo, digit, 0)
	return sum, carry == 0
}

func overflow(what string) error {
	return errs.New(errs.ErrCodeOutOfRange, "%s does not fit in 64 bits", what)
}

// RadixCount returns (max-min+1)^n, the number of states of an n-digit
// mixed-radix counter over [min, max].
func RadixCount[T constraints.Integer](n int, min, max T) (uint64, error) {
	if err := checkBounds(n, min, max); err != nil {
		return 0, err
	}
	base := span(min, max)
	result := uint64(1)
	for range n {
		var ok bool
		if result, ok = mulAdd(result, base, 0); !ok {
			return 0, overflow("radix count")
		}
	}
	return result, nil
}

// BitsCount returns 2^n.
func BitsCount(n int) (uint64, error) {
	if n < 0 {
		return 0, errs.New(errs.ErrCodeInvalidInput, "size cannot be negative: %d", n)
	}
	if n >= 64 {
		return 0, overflow("bit-vector count")
	}
	return 1 << n, nil
}

// ArrangementCount returns N·(N-1)···(N-k+1) with N = max-min+1, the number
// of ordered k-tuples of distinct values from [min, max].
func ArrangementCount[T constraints.Integer](k int, min, max T) (uint64, error) {
	if err := checkDistinct(k, min, max); err != nil {
		return 0, err
	}
	return fallingFactorial(span(min, max), uint64(k))
}

// PermutationCount returns the number of k-permutations of [min, max].
// It equals ArrangementCount: both enumerate the same tuples.
func PermutationCount[T constraints.Integer](k int, min, max T) (uint64, error) {
	return ArrangementCount(k, min, max)
}

// CombinationCount returns the binomial coefficient C(max-min+1, k).
func CombinationCount[T constraints.Integer](k int, min, max T) (uint64, error) {
	if err := checkDistinct(k, min, max); err != nil {
		return 0, err
	}
	c, ok := binomial(span(min, max), uint64(k))
	if !ok {
		return 0, overflow("combination count")
	}
	return c, nil
}

func fallingFactorial(n, k uint64) (uint64, error) {
	result := uint64(1)
	for i := uint64(0); i < k; i++ {
		var ok bool
		if result, ok = mulAdd(result, n-i, 0); !ok {
			return 0, overflow("arrangement count")
		}
	}
	return result, nil
}

// binomial computes C(n, r) incrementally. Each step multiplies by (n-i) and
// divides by (i+1); dividing the running result by gcd(result, i+1) first
// leaves a divisor that must divide (n-i), so every partial result is exact.
func binomial(n, r uint64) (uint64, bool) {
	if r > n {
		return 0, true
	}
	if n-r < r {
		r = n - r
	}
	result := uint64(1)
	for i := uint64(0); i < r; i++ {
		multiplier, divisor := n-i, i+1
		g := gcd(result, divisor)
		result /= g
		divisor /= g
		var ok bool
		if result, ok = mulAdd(result, multiplier/divisor, 0); !ok {
			return 0, false
		}
	}
	return result, true
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

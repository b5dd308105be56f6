package errors

import "unicode"

// MaxNumbers is the largest puzzle size accepted from user input.
// The search space grows as n!·∏(n-i)(n-i-1)·4^(n-1); beyond seven
// numbers an exhaustive run no longer finishes in reasonable time.
const MaxNumbers = 7

// ValidateNumberCount checks that a puzzle has a searchable number of inputs.
func ValidateNumberCount(n int) error {
	if n < 2 {
		return New(ErrCodeNTooSmall, "need at least 2 numbers, got %d", n)
	}
	if n > MaxNumbers {
		return New(ErrCodeInvalidInput, "too many numbers (max %d), got %d", MaxNumbers, n)
	}
	return nil
}

// MaxPositions is the largest generator size accepted from user input. Any
// generator with two or more choices per position has more than 2^64
// states beyond this, so its ranks could not be represented anyway.
const MaxPositions = 64

// ValidateSize checks a generator size supplied by the user before anything
// is allocated for it.
func ValidateSize(k int) error {
	if k < 0 {
		return New(ErrCodeInvalidInput, "size cannot be negative: %d", k)
	}
	if k > MaxPositions {
		return New(ErrCodeInvalidInput, "size %d exceeds the maximum of %d positions", k, MaxPositions)
	}
	return nil
}

// ValidateBounds checks that a k-sized generator over [min, max] is constructible.
//
// The rules mirror the generator constructors:
//   - k must not be negative
//   - min must not exceed max
//   - the range must hold at least k distinct values
func ValidateBounds(k int, min, max int64) error {
	if k < 0 {
		return New(ErrCodeInvalidInput, "size cannot be negative: %d", k)
	}
	if min > max {
		return New(ErrCodeInvalidInput, "min %d exceeds max %d", min, max)
	}
	if uint64(max-min)+1 < uint64(k) {
		return New(ErrCodeRangeTooNarrow, "range [%d, %d] holds fewer than %d values", min, max, k)
	}
	return nil
}

// ValidateSeparator validates a trace separator supplied by the user.
// Separators may be empty but cannot contain control characters other
// than newline and tab (null bytes included).
func ValidateSeparator(sep string) error {
	const maxSeparatorLength = 16
	if len(sep) > maxSeparatorLength {
		return New(ErrCodeInvalidInput, "separator too long (max %d characters)", maxSeparatorLength)
	}
	for _, r := range sep {
		if r == '\n' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "separator contains invalid control characters")
		}
	}
	return nil
}

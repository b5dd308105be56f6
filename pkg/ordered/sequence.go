package ordered

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"

	errs "github.com/matzehuels/reckon/pkg/errors"
)

// Sequence is a fixed-length mutable sequence with a canonical total order.
//
// Index 0 is the least significant position: Next changes it first, and
// Compare treats the highest index as most significant. Next wraps from the
// maximum to the minimum and Prev wraps the other way, so driving Next
// Count() times from Reset returns to Reset.
type Sequence interface {
	// Len returns the number of positions.
	Len() int

	// Next advances to the immediate successor, wrapping to the minimum.
	Next()

	// Prev retreats to the immediate predecessor, wrapping to the maximum.
	Prev()

	// Reset sets the sequence to its minimum.
	Reset()

	// Fill sets the sequence to its maximum.
	Fill()

	// IsMin reports whether the sequence equals its minimum.
	IsMin() bool

	// IsMax reports whether the sequence equals its maximum.
	IsMax() bool

	// IsNotMin reports whether the sequence differs from its minimum.
	IsNotMin() bool
}

var (
	_ Sequence = (*Radix[int])(nil)
	_ Sequence = (*Bits)(nil)
	_ Sequence = (*Combination[int])(nil)
	_ Sequence = (*Arrangement[int])(nil)
	_ Sequence = (*Permutation[int])(nil)
)

// Advance calls s.Next k times.
func Advance(s Sequence, k int) {
	for range k {
		s.Next()
	}
}

// Retreat calls s.Prev k times.
func Retreat(s Sequence, k int) {
	for range k {
		s.Prev()
	}
}

// Compare orders two element slices the way sequences are ordered: the
// highest index is most significant. Slices of different length order by
// length first.
func Compare[T cmp.Ordered](a, b []T) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	for i := len(a) - 1; i >= 0; i-- {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	result := make([]int, max(n, 0))
	for i := range result {
		result[i] = i
	}
	return result
}

// list is the owned backing array shared by every generator.
type list[T any] struct {
	vals []T
}

// Len returns the number of positions.
func (l *list[T]) Len() int { return len(l.vals) }

// Values returns a copy of the elements, index 0 first.
func (l *list[T]) Values() []T { return slices.Clone(l.vals) }

// At returns the element at index i.
func (l *list[T]) At(i int) (T, error) {
	if i < 0 || i >= len(l.vals) {
		var zero T
		return zero, errs.New(errs.ErrCodeOutOfRange, "subscript %d out of range [0, %d)", i, len(l.vals))
	}
	return l.vals[i], nil
}

// Format joins the elements with delim, highest index first, which is the
// reading order of the sequence.
func (l *list[T]) Format(delim string) string {
	var b strings.Builder
	for i := len(l.vals) - 1; i >= 0; i-- {
		fmt.Fprint(&b, l.vals[i])
		if i > 0 {
			b.WriteString(delim)
		}
	}
	return b.String()
}

// String formats the sequence with single spaces.
func (l *list[T]) String() string { return l.Format(" ") }

func (l *list[T]) checkIndex(i int) error {
	if i < 0 || i >= len(l.vals) {
		return errs.New(errs.ErrCodeOutOfRange, "subscript %d out of range [0, %d)", i, len(l.vals))
	}
	return nil
}

// span returns the number of values in [min, max]. It relies on
// two's-complement wrap-around so it is exact for signed and unsigned T.
func span[T constraints.Integer](min, max T) uint64 {
	return uint64(max) - uint64(min) + 1
}

// offset returns v - min as an unsigned distance.
func offset[T constraints.Integer](v, min T) uint64 {
	return uint64(v) - uint64(min)
}

func checkBounds[T constraints.Integer](k int, min, max T) error {
	if k < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "size cannot be negative: %d", k)
	}
	if max < min {
		return errs.New(errs.ErrCodeInvalidInput, "min %v exceeds max %v", min, max)
	}
	return nil
}

func checkDistinct[T constraints.Integer](k int, min, max T) error {
	if err := checkBounds(k, min, max); err != nil {
		return err
	}
	if span(min, max) < uint64(k) {
		return errs.New(errs.ErrCodeRangeTooNarrow, "range [%v, %v] holds fewer than %d values", min, max, k)
	}
	return nil
}

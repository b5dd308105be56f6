package ordered

import (
	"slices"

	"golang.org/x/exp/constraints"

	errs "github.com/matzehuels/reckon/pkg/errors"
)

// Radix is a mixed-radix counter: n independent digits, each cycling through
// [min, max]. Index 0 is the least significant digit.
//
// The zero value is an empty counter over [0, 0]; use NewRadix.
type Radix[T constraints.Integer] struct {
	list[T]
	min, max T
}

// NewRadix returns an n-digit counter over [min, max] set to its minimum.
func NewRadix[T constraints.Integer](n int, min, max T) (*Radix[T], error) {
	if err := checkBounds(n, min, max); err != nil {
		return nil, err
	}
	r := &Radix[T]{list: list[T]{vals: make([]T, n)}, min: min, max: max}
	r.Reset()
	return r, nil
}

// Next increments the counter. The first digit not at max is incremented and
// every lower digit, all at max, wraps to min.
func (r *Radix[T]) Next() {
	for i := range r.vals {
		if r.vals[i] == r.max {
			r.vals[i] = r.min
			continue
		}
		r.vals[i]++
		return
	}
}

// Prev decrements the counter.
func (r *Radix[T]) Prev() {
	for i := range r.vals {
		if r.vals[i] == r.min {
			r.vals[i] = r.max
			continue
		}
		r.vals[i]--
		return
	}
}

// Reset sets every digit to min.
func (r *Radix[T]) Reset() {
	for i := range r.vals {
		r.vals[i] = r.min
	}
}

// Fill sets every digit to max.
func (r *Radix[T]) Fill() {
	for i := range r.vals {
		r.vals[i] = r.max
	}
}

// IsMin reports whether every digit is min.
func (r *Radix[T]) IsMin() bool {
	for _, v := range r.vals {
		if v != r.min {
			return false
		}
	}
	return true
}

// IsMax reports whether every digit is max.
func (r *Radix[T]) IsMax() bool {
	for _, v := range r.vals {
		if v != r.max {
			return false
		}
	}
	return true
}

// IsNotMin reports whether any digit differs from min.
func (r *Radix[T]) IsNotMin() bool { return !r.IsMin() }

// Bounds returns the digit range.
func (r *Radix[T]) Bounds() (min, max T) { return r.min, r.max }

// SetBounds changes the digit range and resets the counter.
func (r *Radix[T]) SetBounds(min, max T) error {
	if err := checkBounds(0, min, max); err != nil {
		return err
	}
	r.min, r.max = min, max
	r.Reset()
	return nil
}

// Set assigns digit i.
func (r *Radix[T]) Set(i int, v T) error {
	if err := r.checkIndex(i); err != nil {
		return err
	}
	if v < r.min || r.max < v {
		return errs.New(errs.ErrCodeOutOfRange, "digit %v out of range [%v, %v]", v, r.min, r.max)
	}
	r.vals[i] = v
	return nil
}

// Resize reallocates the counter with n digits, all min.
func (r *Radix[T]) Resize(n int) error {
	if err := checkBounds(n, r.min, r.max); err != nil {
		return err
	}
	r.vals = make([]T, n)
	r.Reset()
	return nil
}

// Extend changes the number of digits, keeping the digits present in both
// sizes and setting new high digits to min.
func (r *Radix[T]) Extend(n int) error {
	if err := checkBounds(n, r.min, r.max); err != nil {
		return err
	}
	old := r.vals
	r.vals = make([]T, n)
	copied := copy(r.vals, old)
	for i := copied; i < n; i++ {
		r.vals[i] = r.min
	}
	return nil
}

// Count returns the number of distinct counter states.
func (r *Radix[T]) Count() (uint64, error) { return RadixCount(len(r.vals), r.min, r.max) }

// Rank returns the counter's value as an integer: digit i weighs
// (max-min+1)^i.
func (r *Radix[T]) Rank() (uint64, error) {
	base := span(r.min, r.max)
	var rank uint64
	for i := len(r.vals) - 1; i >= 0; i-- {
		var ok bool
		if rank, ok = mulAdd(rank, base, offset(r.vals[i], r.min)); !ok {
			return 0, overflow("radix rank")
		}
	}
	return rank, nil
}

// SetRank sets the counter to the state whose Rank is rank.
func (r *Radix[T]) SetRank(rank uint64) error {
	if count, err := r.Count(); err == nil && rank >= count {
		return errs.New(errs.ErrCodeOutOfRange, "rank %d out of range [0, %d)", rank, count)
	}
	base := span(r.min, r.max)
	for i := range r.vals {
		r.vals[i] = r.min + T(rank%base)
		rank /= base
	}
	return nil
}

// Equal reports whether both counters have the same bounds and digits.
func (r *Radix[T]) Equal(o *Radix[T]) bool {
	return r.min == o.min && r.max == o.max && slices.Equal(r.vals, o.vals)
}

// Clone returns a deep copy.
func (r *Radix[T]) Clone() *Radix[T] {
	return &Radix[T]{list: list[T]{vals: slices.Clone(r.vals)}, min: r.min, max: r.max}
}

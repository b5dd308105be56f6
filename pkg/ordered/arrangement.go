package ordered

import (
	"slices"

	"golang.org/x/exp/constraints"

	errs "github.com/matzehuels/reckon/pkg/errors"
)

// Arrangement is an ordered k-tuple of distinct values from [min, max]
// (a k-permutation), held in inversion-table form.
//
// Position i stores min + d, where d counts the values still unused by the
// higher positions that are smaller than the value at i. Digit i therefore
// ranges over [min, max-(k-1)+i], which makes the arrangement a
// falling-factorial mixed-radix counter: it steps like a Radix whose bounds
// shrink toward index 0. Use ToPermutation for the tuple itself.
type Arrangement[T constraints.Integer] struct {
	list[T]
	min, max T
}

// NewArrangement returns the minimum arrangement: every digit at min.
func NewArrangement[T constraints.Integer](k int, min, max T) (*Arrangement[T], error) {
	if err := checkDistinct(k, min, max); err != nil {
		return nil, err
	}
	a := &Arrangement[T]{list: list[T]{vals: make([]T, k)}, min: min, max: max}
	a.Reset()
	return a, nil
}

// base returns the highest digit position 0 may hold.
func (a *Arrangement[T]) base() T { return a.max - T(len(a.vals)-1) }

// ceiling returns the highest digit position i may hold.
func (a *Arrangement[T]) ceiling(i int) T { return a.base() + T(i) }

// radix returns the number of digit values at position i.
func (a *Arrangement[T]) radix(i int) uint64 { return offset(a.ceiling(i), a.min) + 1 }

// Next advances to the following arrangement, wrapping to Reset.
func (a *Arrangement[T]) Next() {
	top := a.base()
	for i := range a.vals {
		if a.vals[i] == top {
			a.vals[i] = a.min
			top++
			continue
		}
		a.vals[i]++
		return
	}
}

// Prev retreats to the preceding arrangement, wrapping to Fill.
func (a *Arrangement[T]) Prev() {
	top := a.base()
	for i := range a.vals {
		if a.vals[i] == a.min {
			a.vals[i] = top
			top++
			continue
		}
		a.vals[i]--
		return
	}
}

// Reset sets every digit to min.
func (a *Arrangement[T]) Reset() {
	for i := range a.vals {
		a.vals[i] = a.min
	}
}

// Fill sets every digit to its ceiling.
func (a *Arrangement[T]) Fill() {
	for i := range a.vals {
		a.vals[i] = a.ceiling(i)
	}
}

// IsMin reports whether every digit is min.
func (a *Arrangement[T]) IsMin() bool {
	for _, v := range a.vals {
		if v != a.min {
			return false
		}
	}
	return true
}

// IsMax reports whether every digit is at its ceiling.
func (a *Arrangement[T]) IsMax() bool {
	for i, v := range a.vals {
		if v != a.ceiling(i) {
			return false
		}
	}
	return true
}

// IsNotMin reports whether any digit differs from min.
func (a *Arrangement[T]) IsNotMin() bool { return !a.IsMin() }

// Bounds returns the value range.
func (a *Arrangement[T]) Bounds() (min, max T) { return a.min, a.max }

// SetBounds changes the value range and resets the arrangement.
func (a *Arrangement[T]) SetBounds(min, max T) error {
	if err := checkDistinct(len(a.vals), min, max); err != nil {
		return err
	}
	a.min, a.max = min, max
	a.Reset()
	return nil
}

// Set assigns digit i, which must lie in [min, max-(k-1)+i].
func (a *Arrangement[T]) Set(i int, v T) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	if v < a.min || a.ceiling(i) < v {
		return errs.New(errs.ErrCodeOutOfRange, "digit %v out of range [%v, %v]", v, a.min, a.ceiling(i))
	}
	a.vals[i] = v
	return nil
}

// Resize reallocates the arrangement with k digits and resets it.
func (a *Arrangement[T]) Resize(k int) error {
	if err := checkDistinct(k, a.min, a.max); err != nil {
		return err
	}
	a.vals = make([]T, k)
	a.Reset()
	return nil
}

// Count returns the number of k-arrangements of [min, max].
func (a *Arrangement[T]) Count() (uint64, error) { return ArrangementCount(len(a.vals), a.min, a.max) }

// Rank evaluates the digits as a falling-factorial number, the highest
// position most significant.
func (a *Arrangement[T]) Rank() (uint64, error) {
	var rank uint64
	for i := len(a.vals) - 1; i >= 0; i-- {
		var ok bool
		if rank, ok = mulAdd(rank, a.radix(i), offset(a.vals[i], a.min)); !ok {
			return 0, overflow("arrangement rank")
		}
	}
	return rank, nil
}

// SetRank sets the arrangement whose Rank is rank.
func (a *Arrangement[T]) SetRank(rank uint64) error {
	if count, err := a.Count(); err == nil && rank >= count {
		return errs.New(errs.ErrCodeOutOfRange, "rank %d out of range [0, %d)", rank, count)
	}
	for i := range a.vals {
		r := a.radix(i)
		a.vals[i] = a.min + T(rank%r)
		rank /= r
	}
	return nil
}

// FromPermutation converts p into inversion-table form. The arrangement
// takes p's length and bounds: for each position, the digit is p's value
// minus the number of higher positions holding a smaller value.
func (a *Arrangement[T]) FromPermutation(p *Permutation[T]) {
	k := len(p.vals)
	a.min, a.max = p.min, p.max
	a.vals = make([]T, k)
	for i := k - 1; i >= 0; i-- {
		smaller := 0
		for j := k - 1; j > i; j-- {
			if p.vals[j] < p.vals[i] {
				smaller++
			}
		}
		a.vals[i] = p.vals[i] - T(smaller)
	}
}

// ToPermutation decodes the arrangement into the tuple it represents.
func (a *Arrangement[T]) ToPermutation() *Permutation[T] {
	p := &Permutation[T]{}
	p.FromArrangement(a)
	return p
}

// Equal reports whether both arrangements have the same bounds and digits.
func (a *Arrangement[T]) Equal(o *Arrangement[T]) bool {
	return a.min == o.min && a.max == o.max && slices.Equal(a.vals, o.vals)
}

// Clone returns a deep copy.
func (a *Arrangement[T]) Clone() *Arrangement[T] {
	return &Arrangement[T]{list: list[T]{vals: slices.Clone(a.vals)}, min: a.min, max: a.max}
}

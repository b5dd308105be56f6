package ordered

import (
	"slices"

	"golang.org/x/exp/constraints"

	errs "github.com/matzehuels/reckon/pkg/errors"
)

// Permutation is an ordered k-tuple of distinct values drawn from [min, max].
//
// The minimum is min+k-1, ..., min+1, min (index 0 largest) and the maximum
// is max-k+1, ..., max (index k-1 largest); read from index k-1 down these
// are the ascending and descending tuples.
//
// Next is not the textbook swap-and-reverse successor. It frees the least
// significant value, moves it to the nearest larger value no higher
// position uses, and refills the positions below with the smallest unused
// values. Positions are tried from index 0 upward until one can move.
// Rank and SetRank go through Arrangement, so they only promise a
// bijection onto [0, Count), not agreement with Next order.
type Permutation[T constraints.Integer] struct {
	list[T]
	min, max T
}

// NewPermutation returns the minimum k-permutation of [min, max].
func NewPermutation[T constraints.Integer](k int, min, max T) (*Permutation[T], error) {
	if err := checkDistinct(k, min, max); err != nil {
		return nil, err
	}
	p := &Permutation[T]{list: list[T]{vals: make([]T, k)}, min: min, max: max}
	p.Reset()
	return p, nil
}

// Next advances to the following permutation, wrapping to Reset.
func (p *Permutation[T]) Next() {
	for pos := range p.vals {
		used := p.vals[pos+1:]
		for v := p.vals[pos]; v != p.max; {
			v++
			if !slices.Contains(used, v) {
				p.vals[pos] = v
				p.refillAscending(pos)
				return
			}
		}
	}
	p.Reset()
}

// Prev retreats to the preceding permutation, wrapping to Fill.
func (p *Permutation[T]) Prev() {
	for pos := range p.vals {
		used := p.vals[pos+1:]
		for v := p.vals[pos]; v != p.min; {
			v--
			if !slices.Contains(used, v) {
				p.vals[pos] = v
				p.refillDescending(pos)
				return
			}
		}
	}
	p.Fill()
}

// refillAscending sets positions pos-1 down to 0 to the smallest values not
// held at or above pos, in ascending order.
func (p *Permutation[T]) refillAscending(pos int) {
	v := p.min
	for i := pos - 1; i >= 0; i-- {
		for slices.Contains(p.vals[i+1:], v) {
			v++
		}
		p.vals[i] = v
		v++
	}
}

// refillDescending sets positions pos-1 down to 0 to the largest values not
// held at or above pos, in descending order.
func (p *Permutation[T]) refillDescending(pos int) {
	v := p.max
	for i := pos - 1; i >= 0; i-- {
		for slices.Contains(p.vals[i+1:], v) {
			v--
		}
		p.vals[i] = v
		v--
	}
}

// Reset sets the permutation to min+k-1, ..., min.
func (p *Permutation[T]) Reset() {
	k := len(p.vals)
	for i := range p.vals {
		p.vals[i] = p.min + T(k-1-i)
	}
}

// Fill sets the permutation to max-k+1, ..., max.
func (p *Permutation[T]) Fill() {
	base := p.max - T(len(p.vals)-1)
	for i := range p.vals {
		p.vals[i] = base + T(i)
	}
}

// IsMin reports whether the permutation equals Reset's.
func (p *Permutation[T]) IsMin() bool {
	k := len(p.vals)
	for i, v := range p.vals {
		if v != p.min+T(k-1-i) {
			return false
		}
	}
	return true
}

// IsMax reports whether the permutation equals Fill's.
func (p *Permutation[T]) IsMax() bool {
	base := p.max - T(len(p.vals)-1)
	for i, v := range p.vals {
		if v != base+T(i) {
			return false
		}
	}
	return true
}

// IsNotMin reports whether the permutation differs from Reset's.
func (p *Permutation[T]) IsNotMin() bool { return !p.IsMin() }

// Bounds returns the value range.
func (p *Permutation[T]) Bounds() (min, max T) { return p.min, p.max }

// SetBounds changes the value range and resets the permutation.
func (p *Permutation[T]) SetBounds(min, max T) error {
	if err := checkDistinct(len(p.vals), min, max); err != nil {
		return err
	}
	p.min, p.max = min, max
	p.Reset()
	return nil
}

// SetValues replaces the permutation. vals must have Len() distinct values
// within [min, max].
func (p *Permutation[T]) SetValues(vals []T) error {
	if len(vals) != len(p.vals) {
		return errs.New(errs.ErrCodeInvalidInput, "expected %d values, got %d", len(p.vals), len(vals))
	}
	for i, v := range vals {
		if v < p.min || p.max < v {
			return errs.New(errs.ErrCodeOutOfRange, "value %v out of range [%v, %v]", v, p.min, p.max)
		}
		if slices.Contains(vals[i+1:], v) {
			return errs.New(errs.ErrCodeInvalidInput, "value %v appears more than once", v)
		}
	}
	copy(p.vals, vals)
	return nil
}

// Resize reallocates the permutation with k values and resets it.
func (p *Permutation[T]) Resize(k int) error {
	if err := checkDistinct(k, p.min, p.max); err != nil {
		return err
	}
	p.vals = make([]T, k)
	p.Reset()
	return nil
}

// Count returns the number of k-permutations of [min, max].
func (p *Permutation[T]) Count() (uint64, error) { return PermutationCount(len(p.vals), p.min, p.max) }

// Rank returns the rank of the permutation's inversion table.
func (p *Permutation[T]) Rank() (uint64, error) {
	a := &Arrangement[T]{}
	a.FromPermutation(p)
	return a.Rank()
}

// SetRank sets the permutation whose Rank is rank.
func (p *Permutation[T]) SetRank(rank uint64) error {
	a, err := NewArrangement(len(p.vals), p.min, p.max)
	if err != nil {
		return err
	}
	if err := a.SetRank(rank); err != nil {
		return err
	}
	p.FromArrangement(a)
	return nil
}

// FromArrangement decodes an inversion table. The permutation takes a's
// length and bounds; working from the highest position down, each digit d
// selects the (d+1)-th smallest value not yet taken.
func (p *Permutation[T]) FromArrangement(a *Arrangement[T]) {
	k := len(a.vals)
	p.min, p.max = a.min, a.max
	p.vals = make([]T, k)
	for i := k - 1; i >= 0; i-- {
		taken := p.vals[i+1:]
		v := p.min
		for slices.Contains(taken, v) {
			v++
		}
		for range offset(a.vals[i], a.min) {
			v++
			for slices.Contains(taken, v) {
				v++
			}
		}
		p.vals[i] = v
	}
}

// Equal reports whether both permutations have the same bounds and values.
func (p *Permutation[T]) Equal(o *Permutation[T]) bool {
	return p.min == o.min && p.max == o.max && slices.Equal(p.vals, o.vals)
}

// Clone returns a deep copy.
func (p *Permutation[T]) Clone() *Permutation[T] {
	return &Permutation[T]{list: list[T]{vals: slices.Clone(p.vals)}, min: p.min, max: p.max}
}

package ordered

import (
	"slices"

	"golang.org/x/exp/constraints"

	errs "github.com/matzehuels/reckon/pkg/errors"
)

// Combination is a k-subset of [min, max], stored in strictly descending
// order: index 0 holds the largest value and changes fastest, index k-1
// holds the smallest.
//
// Reading the values from index k-1 down gives the subset in ascending
// order, and Next walks those ascending tuples in lexicographic order.
type Combination[T constraints.Integer] struct {
	list[T]
	min, max T
}

// NewCombination returns the minimum k-subset of [min, max]:
// {min, min+1, ..., min+k-1}.
func NewCombination[T constraints.Integer](k int, min, max T) (*Combination[T], error) {
	if err := checkDistinct(k, min, max); err != nil {
		return nil, err
	}
	c := &Combination[T]{list: list[T]{vals: make([]T, k)}, min: min, max: max}
	c.Reset()
	return c, nil
}

// Next advances to the following subset. The lowest position below its
// ceiling (max - pos) is incremented and every lower position is rebuilt as
// a contiguous descending run above it. From the maximum it wraps to Reset.
func (c *Combination[T]) Next() {
	k := len(c.vals)
	pos := 0
	for pos < k && c.vals[pos] == c.max-T(pos) {
		pos++
	}
	if pos == k {
		c.Reset()
		return
	}
	c.vals[pos]++
	for i := 0; i < pos; i++ {
		c.vals[i] = c.vals[pos] + T(pos-i)
	}
}

// Prev retreats to the preceding subset. The lowest position that is not
// directly above its higher neighbour is decremented and every lower
// position is raised to its ceiling. From the minimum it wraps to Fill.
func (c *Combination[T]) Prev() {
	k := len(c.vals)
	if k == 0 {
		return
	}
	pos := 0
	for pos < k-1 && c.vals[pos] == c.vals[pos+1]+1 {
		pos++
	}
	if pos == k-1 && c.vals[k-1] == c.min {
		c.Fill()
		return
	}
	c.vals[pos]--
	for i := 0; i < pos; i++ {
		c.vals[i] = c.max - T(i)
	}
}

// Reset sets the subset to {min, ..., min+k-1}.
func (c *Combination[T]) Reset() {
	k := len(c.vals)
	for i := range c.vals {
		c.vals[i] = c.min + T(k-1-i)
	}
}

// Fill sets the subset to {max-k+1, ..., max}.
func (c *Combination[T]) Fill() {
	for i := range c.vals {
		c.vals[i] = c.max - T(i)
	}
}

// IsMin reports whether the subset equals Reset's.
func (c *Combination[T]) IsMin() bool {
	k := len(c.vals)
	for i, v := range c.vals {
		if v != c.min+T(k-1-i) {
			return false
		}
	}
	return true
}

// IsMax reports whether the subset equals Fill's.
func (c *Combination[T]) IsMax() bool {
	for i, v := range c.vals {
		if v != c.max-T(i) {
			return false
		}
	}
	return true
}

// IsNotMin reports whether the subset differs from Reset's.
func (c *Combination[T]) IsNotMin() bool { return !c.IsMin() }

// Bounds returns the value range.
func (c *Combination[T]) Bounds() (min, max T) { return c.min, c.max }

// SetBounds changes the value range and resets the subset.
func (c *Combination[T]) SetBounds(min, max T) error {
	if err := checkDistinct(len(c.vals), min, max); err != nil {
		return err
	}
	c.min, c.max = min, max
	c.Reset()
	return nil
}

// SetValues replaces the subset. vals is given in storage order and must be
// strictly descending within [min, max].
func (c *Combination[T]) SetValues(vals []T) error {
	if len(vals) != len(c.vals) {
		return errs.New(errs.ErrCodeInvalidInput, "expected %d values, got %d", len(c.vals), len(vals))
	}
	for i, v := range vals {
		if v < c.min || c.max < v {
			return errs.New(errs.ErrCodeOutOfRange, "value %v out of range [%v, %v]", v, c.min, c.max)
		}
		if i > 0 && !(v < vals[i-1]) {
			return errs.New(errs.ErrCodeInvalidInput, "values must be strictly descending")
		}
	}
	copy(c.vals, vals)
	return nil
}

// Resize reallocates the subset with k elements and resets it.
func (c *Combination[T]) Resize(k int) error {
	if err := checkDistinct(k, c.min, c.max); err != nil {
		return err
	}
	c.vals = make([]T, k)
	c.Reset()
	return nil
}

// Count returns the number of k-subsets of [min, max].
func (c *Combination[T]) Count() (uint64, error) { return CombinationCount(len(c.vals), c.min, c.max) }

// Rank returns the position of the subset in Next order, Reset being 0.
func (c *Combination[T]) Rank() (uint64, error) {
	k := len(c.vals)
	n := span(c.min, c.max)
	var rank, next uint64
	for j := 0; j < k; j++ {
		cur := offset(c.vals[k-1-j], c.min)
		for v := next; v < cur; v++ {
			skipped, ok := binomial(n-1-v, uint64(k-1-j))
			if !ok {
				return 0, overflow("combination rank")
			}
			if rank, ok = mulAdd(rank, 1, skipped); !ok {
				return 0, overflow("combination rank")
			}
		}
		next = cur + 1
	}
	return rank, nil
}

// SetRank sets the subset whose Rank is rank.
func (c *Combination[T]) SetRank(rank uint64) error {
	count, err := c.Count()
	if err != nil {
		return err
	}
	if rank >= count {
		return errs.New(errs.ErrCodeOutOfRange, "rank %d out of range [0, %d)", rank, count)
	}
	k := len(c.vals)
	n := span(c.min, c.max)
	var next uint64
	for j := 0; j < k; j++ {
		v := next
		for {
			// Bounded by count, so binomial cannot overflow here.
			block, _ := binomial(n-1-v, uint64(k-1-j))
			if rank < block {
				break
			}
			rank -= block
			v++
		}
		c.vals[k-1-j] = c.min + T(v)
		next = v + 1
	}
	return nil
}

// Equal reports whether both subsets have the same bounds and values.
func (c *Combination[T]) Equal(o *Combination[T]) bool {
	return c.min == o.min && c.max == o.max && slices.Equal(c.vals, o.vals)
}

// Clone returns a deep copy.
func (c *Combination[T]) Clone() *Combination[T] {
	return &Combination[T]{list: list[T]{vals: slices.Clone(c.vals)}, min: c.min, max: c.max}
}

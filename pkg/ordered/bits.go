package ordered

import (
	"slices"

	errs "github.com/matzehuels/reckon/pkg/errors"
)

// Bits is a binary counter: a Radix specialised to two values, false < true.
type Bits struct {
	list[bool]
}

// NewBits returns an n-bit counter with every bit cleared.
func NewBits(n int) (*Bits, error) {
	if n < 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "size cannot be negative: %d", n)
	}
	return &Bits{list: list[bool]{vals: make([]bool, n)}}, nil
}

// Next increments the counter; bit 0 is least significant.
func (b *Bits) Next() {
	for i := range b.vals {
		if b.vals[i] {
			b.vals[i] = false
			continue
		}
		b.vals[i] = true
		return
	}
}

// Prev decrements the counter.
func (b *Bits) Prev() {
	for i := range b.vals {
		if !b.vals[i] {
			b.vals[i] = true
			continue
		}
		b.vals[i] = false
		return
	}
}

// Reset clears every bit.
func (b *Bits) Reset() { b.setAll(false) }

// Fill sets every bit.
func (b *Bits) Fill() { b.setAll(true) }

func (b *Bits) setAll(v bool) {
	for i := range b.vals {
		b.vals[i] = v
	}
}

// IsMin reports whether no bit is set.
func (b *Bits) IsMin() bool { return !slices.Contains(b.vals, true) }

// IsMax reports whether every bit is set.
func (b *Bits) IsMax() bool { return !slices.Contains(b.vals, false) }

// IsNotMin reports whether any bit is set.
func (b *Bits) IsNotMin() bool { return slices.Contains(b.vals, true) }

// Set assigns bit i.
func (b *Bits) Set(i int, v bool) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.vals[i] = v
	return nil
}

// Resize reallocates the counter with n cleared bits.
func (b *Bits) Resize(n int) error {
	if n < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "size cannot be negative: %d", n)
	}
	b.vals = make([]bool, n)
	return nil
}

// Extend changes the number of bits, keeping the bits present in both sizes.
// New high bits are cleared.
func (b *Bits) Extend(n int) error {
	if n < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "size cannot be negative: %d", n)
	}
	old := b.vals
	b.vals = make([]bool, n)
	copy(b.vals, old)
	return nil
}

// Count returns 2^Len().
func (b *Bits) Count() (uint64, error) { return BitsCount(len(b.vals)) }

// Rank returns the counter's binary value.
func (b *Bits) Rank() (uint64, error) {
	var rank uint64
	for i := len(b.vals) - 1; i >= 0; i-- {
		if rank>>63 != 0 {
			return 0, overflow("bit-vector rank")
		}
		rank <<= 1
		if b.vals[i] {
			rank |= 1
		}
	}
	return rank, nil
}

// SetRank sets the counter to the binary value rank.
func (b *Bits) SetRank(rank uint64) error {
	if len(b.vals) < 64 && rank>>len(b.vals) != 0 {
		return errs.New(errs.ErrCodeOutOfRange, "rank %d needs more than %d bits", rank, len(b.vals))
	}
	for i := range b.vals {
		b.vals[i] = rank&1 == 1
		rank >>= 1
	}
	return nil
}

// Equal reports whether both counters hold the same bits.
func (b *Bits) Equal(o *Bits) bool { return slices.Equal(b.vals, o.vals) }

// Clone returns a deep copy.
func (b *Bits) Clone() *Bits { return &Bits{list: list[bool]{vals: slices.Clone(b.vals)}} }

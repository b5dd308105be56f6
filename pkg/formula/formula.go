package formula

import (
	"math/bits"
	"slices"

	errs "github.com/matzehuels/reckon/pkg/errors"
	"github.com/matzehuels/reckon/pkg/ordered"
)

// Number is the arithmetic a Formula evaluates with. Implementations are
// values: each method returns a new number without changing its operands.
type Number[N any] interface {
	Add(N) N
	Sub(N) N
	Mul(N) N
	Quo(N) N
	IsZero() bool
	Equal(N) bool
	String() string
}

// Formula combines n numbers pairwise down to one result.
//
// A Formula stores the numbers, one pairing rank per step and one operator
// per step. Step i reads its pairing rank against an index space of n-i
// elements: it combines the two selected elements of the working array into
// the lower of the two slots and removes the higher one. After n-1 steps one
// element remains.
//
// Evaluation never modifies the stored configuration, so a Formula can be
// evaluated repeatedly while the caller steps its pairings and operators.
type Formula[V Number[V]] struct {
	nums  []V
	pairs []ordered.Pair
	ops   *ordered.Radix[Operator]
}

// New returns a Formula for n numbers with every number zero, every pairing
// rank 0 and every operator Add. It fails with NTooSmall when n < 2.
func New[V Number[V]](n int) (*Formula[V], error) {
	if n < 2 {
		return nil, errs.New(errs.ErrCodeNTooSmall, "formula needs at least 2 numbers, got %d", n)
	}
	ops, err := ordered.NewRadix(n-1, Add, Div)
	if err != nil {
		return nil, err
	}
	return &Formula[V]{
		nums:  make([]V, n),
		pairs: make([]ordered.Pair, n-1),
		ops:   ops,
	}, nil
}

// N returns the number of inputs.
func (f *Formula[V]) N() int { return len(f.nums) }

// Steps returns the number of contraction steps, N()-1.
func (f *Formula[V]) Steps() int { return len(f.pairs) }

// Numbers returns a copy of the inputs.
func (f *Formula[V]) Numbers() []V { return slices.Clone(f.nums) }

// Number returns input i.
func (f *Formula[V]) Number(i int) (V, error) {
	if err := checkIndex(i, len(f.nums)); err != nil {
		var zero V
		return zero, err
	}
	return f.nums[i], nil
}

// SetNumber replaces input i.
func (f *Formula[V]) SetNumber(i int, v V) error {
	if err := checkIndex(i, len(f.nums)); err != nil {
		return err
	}
	f.nums[i] = v
	return nil
}

// SetNumbers replaces every input. len(vs) must equal N().
func (f *Formula[V]) SetNumbers(vs []V) error {
	if len(vs) != len(f.nums) {
		return errs.New(errs.ErrCodeInvalidInput, "expected %d numbers, got %d", len(f.nums), len(vs))
	}
	copy(f.nums, vs)
	return nil
}

// Pairs returns a copy of the pairing ranks, step 0 first.
func (f *Formula[V]) Pairs() []ordered.Pair { return slices.Clone(f.pairs) }

// Pair returns the pairing rank of step i.
func (f *Formula[V]) Pair(i int) (ordered.Pair, error) {
	if err := checkIndex(i, len(f.pairs)); err != nil {
		return 0, err
	}
	return f.pairs[i], nil
}

// SetPair stores the pairing rank of step i. The rank is not checked
// against the step's index space; an invalid rank makes evaluation fail
// with OutOfRange.
func (f *Formula[V]) SetPair(i int, p ordered.Pair) error {
	if err := checkIndex(i, len(f.pairs)); err != nil {
		return err
	}
	f.pairs[i] = p
	return nil
}

// SetPairs replaces every pairing rank. len(ps) must equal Steps().
func (f *Formula[V]) SetPairs(ps []ordered.Pair) error {
	if len(ps) != len(f.pairs) {
		return errs.New(errs.ErrCodeInvalidInput, "expected %d pairs, got %d", len(f.pairs), len(ps))
	}
	copy(f.pairs, ps)
	return nil
}

// NextPairs advances the pairing ranks as a mixed-radix counter: step 0
// changes fastest and step i wraps at PairCount(N()-i).
func (f *Formula[V]) NextPairs() {
	n := len(f.nums)
	for i := range f.pairs {
		f.pairs[i] = f.pairs[i].Next(n - i)
		if f.pairs[i] != 0 {
			return
		}
	}
}

// ResetPairs sets every pairing rank to 0.
func (f *Formula[V]) ResetPairs() {
	clear(f.pairs)
}

// PairsAny reports whether any pairing rank is nonzero.
func (f *Formula[V]) PairsAny() bool {
	return slices.ContainsFunc(f.pairs, func(p ordered.Pair) bool { return p != 0 })
}

// PairingIndex returns the pairing ranks as one integer in NextPairs order.
func (f *Formula[V]) PairingIndex() (uint64, error) {
	n := len(f.nums)
	var index uint64
	for i := len(f.pairs) - 1; i >= 0; i-- {
		if !f.pairs[i].Valid(n - i) {
			return 0, errs.New(errs.ErrCodeOutOfRange, "step %d: pair rank %d out of range for n=%d", i, int(f.pairs[i]), n-i)
		}
		hi, lo := bits.Mul64(index, uint64(ordered.PairCount(n-i)))
		if hi != 0 {
			return 0, errs.New(errs.ErrCodeOutOfRange, "pairing index does not fit in 64 bits")
		}
		index = lo + uint64(f.pairs[i])
	}
	return index, nil
}

// SetPairingIndex sets the pairing ranks from an integer produced by
// PairingIndex.
func (f *Formula[V]) SetPairingIndex(index uint64) error {
	count, err := PairingCount(len(f.nums))
	if err != nil {
		return err
	}
	if index >= count {
		return errs.New(errs.ErrCodeOutOfRange, "pairing index %d out of range [0, %d)", index, count)
	}
	n := len(f.nums)
	for i := range f.pairs {
		m := uint64(ordered.PairCount(n - i))
		f.pairs[i] = ordered.Pair(index % m)
		index /= m
	}
	return nil
}

// Operators returns a copy of the operators, step 0 first.
func (f *Formula[V]) Operators() []Operator { return f.ops.Values() }

// Operator returns the operator of step i.
func (f *Formula[V]) Operator(i int) (Operator, error) { return f.ops.At(i) }

// SetOperator stores the operator of step i.
func (f *Formula[V]) SetOperator(i int, op Operator) error {
	if !op.Valid() {
		return errs.New(errs.ErrCodeUnrecognizedOperator, "unrecognized operator: %d", uint8(op))
	}
	return f.ops.Set(i, op)
}

// SetOperators replaces every operator. len(ops) must equal Steps().
func (f *Formula[V]) SetOperators(ops []Operator) error {
	if len(ops) != len(f.pairs) {
		return errs.New(errs.ErrCodeInvalidInput, "expected %d operators, got %d", len(f.pairs), len(ops))
	}
	for i, op := range ops {
		if err := f.SetOperator(i, op); err != nil {
			return err
		}
	}
	return nil
}

// NextOperators advances the operators as a base-4 counter, step 0 fastest.
func (f *Formula[V]) NextOperators() { f.ops.Next() }

// ResetOperators sets every operator to Add.
func (f *Formula[V]) ResetOperators() { f.ops.Reset() }

// OperatorsAny reports whether any operator is not Add.
func (f *Formula[V]) OperatorsAny() bool { return f.ops.IsNotMin() }

// OperatorIndex returns the operators as one integer in NextOperators order.
func (f *Formula[V]) OperatorIndex() (uint64, error) { return f.ops.Rank() }

// SetOperatorIndex sets the operators from an integer produced by
// OperatorIndex.
func (f *Formula[V]) SetOperatorIndex(index uint64) error { return f.ops.SetRank(index) }

// Clone returns a deep copy.
func (f *Formula[V]) Clone() *Formula[V] {
	return &Formula[V]{
		nums:  slices.Clone(f.nums),
		pairs: slices.Clone(f.pairs),
		ops:   f.ops.Clone(),
	}
}

// PairingCount returns ∏ PairCount(n-i) over the n-1 steps: the number of
// distinct pairing configurations for n inputs.
func PairingCount(n int) (uint64, error) {
	if n < 2 {
		return 0, errs.New(errs.ErrCodeNTooSmall, "formula needs at least 2 numbers, got %d", n)
	}
	count := uint64(1)
	for i := 0; i < n-1; i++ {
		hi, lo := bits.Mul64(count, uint64(ordered.PairCount(n-i)))
		if hi != 0 {
			return 0, errs.New(errs.ErrCodeOutOfRange, "pairing count does not fit in 64 bits")
		}
		count = lo
	}
	return count, nil
}

// OperatorCount returns 4^(n-1), the number of operator assignments for n
// inputs.
func OperatorCount(n int) (uint64, error) {
	if n < 2 {
		return 0, errs.New(errs.ErrCodeNTooSmall, "formula needs at least 2 numbers, got %d", n)
	}
	return ordered.RadixCount(n-1, Add, Div)
}

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return errs.New(errs.ErrCodeOutOfRange, "subscript %d out of range [0, %d)", i, n)
	}
	return nil
}

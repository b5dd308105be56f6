package ordered

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/reckon/pkg/errors"
)

func TestRadix_Exhaustive(t *testing.T) {
	tests := []struct {
		n        int
		min, max int
		want     uint64
	}{
		{3, -1, 1, 27},
		{2, 0, 4, 25},
		{4, 7, 7, 1},
		{0, 0, 9, 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d[%d,%d]", tt.n, tt.min, tt.max), func(t *testing.T) {
			r, err := NewRadix(tt.n, tt.min, tt.max)
			require.NoError(t, err)
			count, err := r.Count()
			require.NoError(t, err)
			require.Equal(t, tt.want, count)
			requireExhaustive(t, r, true)
		})
	}
}

func TestRadix_Unsigned(t *testing.T) {
	r, err := NewRadix[uint8](2, 250, 255)
	require.NoError(t, err)
	requireExhaustive(t, r, true)
}

func TestRadix_SetAndExtend(t *testing.T) {
	r, err := NewRadix(2, 1, 6)
	require.NoError(t, err)

	require.NoError(t, r.Set(1, 4))
	assert.True(t, errs.Is(r.Set(0, 7), errs.ErrCodeOutOfRange))
	assert.True(t, errs.Is(r.Set(2, 1), errs.ErrCodeOutOfRange))

	require.NoError(t, r.Extend(4))
	assert.Equal(t, []int{1, 4, 1, 1}, r.Values())

	require.NoError(t, r.Extend(1))
	assert.Equal(t, []int{1}, r.Values())

	require.NoError(t, r.Resize(3))
	assert.True(t, r.IsMin())

	require.NoError(t, r.SetBounds(-3, 3))
	lo, hi := r.Bounds()
	assert.Equal(t, -3, lo)
	assert.Equal(t, 3, hi)
	assert.Equal(t, []int{-3, -3, -3}, r.Values())
}

func TestRadix_CloneIsDeep(t *testing.T) {
	r, err := NewRadix(3, 0, 2)
	require.NoError(t, err)

	c := r.Clone()
	require.True(t, r.Equal(c))

	c.Next()
	assert.False(t, r.Equal(c))
	assert.True(t, r.IsMin())
}

func TestNewRadix_Invalid(t *testing.T) {
	_, err := NewRadix(-1, 0, 1)
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput))

	_, err = NewRadix(2, 3, 1)
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput))
}

func TestBits_Exhaustive(t *testing.T) {
	for _, n := range []int{0, 1, 4, 6} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			b, err := NewBits(n)
			require.NoError(t, err)
			count, err := b.Count()
			require.NoError(t, err)
			require.Equal(t, uint64(1)<<n, count)
			requireExhaustive(t, b, true)
		})
	}
}

func TestBits_RankLimits(t *testing.T) {
	b, err := NewBits(64)
	require.NoError(t, err)

	_, err = b.Count()
	assert.True(t, errs.Is(err, errs.ErrCodeOutOfRange))

	b.Fill()
	rank, err := b.Rank()
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), rank)

	require.NoError(t, b.SetRank(1<<63))
	assert.True(t, b.vals[63])
	assert.False(t, b.vals[0])

	small, err := NewBits(3)
	require.NoError(t, err)
	assert.True(t, errs.Is(small.SetRank(8), errs.ErrCodeOutOfRange))

	require.NoError(t, small.SetRank(5))
	require.NoError(t, small.Extend(5))
	rank, err = small.Rank()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), rank)
}

func TestCombination_Exhaustive(t *testing.T) {
	tests := []struct {
		k        int
		min, max int
		want     uint64
	}{
		{3, 0, 5, 20},
		{2, -2, 2, 10},
		{4, 2, 5, 1},
		{1, 0, 3, 4},
		{0, 0, 3, 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("k=%d[%d,%d]", tt.k, tt.min, tt.max), func(t *testing.T) {
			c, err := NewCombination(tt.k, tt.min, tt.max)
			require.NoError(t, err)
			count, err := c.Count()
			require.NoError(t, err)
			require.Equal(t, tt.want, count)
			requireExhaustive(t, c, true)
		})
	}
}

func TestCombination_StrictlyDescending(t *testing.T) {
	c, err := NewCombination(3, 0, 6)
	require.NoError(t, err)

	count, err := c.Count()
	require.NoError(t, err)
	for range count {
		vals := c.Values()
		for i := 1; i < len(vals); i++ {
			require.Greater(t, vals[i-1], vals[i], "not descending: %v", vals)
		}
		c.Next()
	}
}

func TestCombination_SetValues(t *testing.T) {
	c, err := NewCombination(3, 0, 5)
	require.NoError(t, err)

	require.NoError(t, c.SetValues([]int{5, 3, 0}))
	assert.Equal(t, "0 3 5", c.String())

	assert.True(t, errs.Is(c.SetValues([]int{3, 5, 0}), errs.ErrCodeInvalidInput))
	assert.True(t, errs.Is(c.SetValues([]int{6, 3, 0}), errs.ErrCodeOutOfRange))
	assert.True(t, errs.Is(c.SetValues([]int{3, 0}), errs.ErrCodeInvalidInput))
	assert.Equal(t, "0 3 5", c.String(), "failed SetValues should not modify")
}

func TestArrangement_Exhaustive(t *testing.T) {
	tests := []struct {
		k        int
		min, max int
		want     uint64
	}{
		{3, 0, 4, 60},
		{4, 1, 4, 24},
		{2, -3, 0, 12},
		{1, 5, 5, 1},
		{0, 0, 2, 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("k=%d[%d,%d]", tt.k, tt.min, tt.max), func(t *testing.T) {
			a, err := NewArrangement(tt.k, tt.min, tt.max)
			require.NoError(t, err)
			count, err := a.Count()
			require.NoError(t, err)
			require.Equal(t, tt.want, count)
			requireExhaustive(t, a, true)
		})
	}
}

func TestArrangement_PermutationBridge(t *testing.T) {
	a, err := NewArrangement(3, -1, 3)
	require.NoError(t, err)

	count, err := a.Count()
	require.NoError(t, err)

	tuples := make(map[string]bool)
	for range count {
		p := a.ToPermutation()
		vals := p.Values()
		for i, v := range vals {
			require.GreaterOrEqual(t, v, -1)
			require.LessOrEqual(t, v, 3)
			require.False(t, slices.Contains(vals[i+1:], v), "duplicate in %v", vals)
		}
		tuples[p.String()] = true

		back := &Arrangement[int]{}
		back.FromPermutation(p)
		require.True(t, a.Equal(back), "round trip %v -> %v -> %v", a, p, back)

		a.Next()
	}
	assert.Len(t, tuples, int(count))
}

func TestArrangement_InversionTable(t *testing.T) {
	p, err := NewPermutation(4, 0, 3)
	require.NoError(t, err)
	// Reading order 2 0 3 1: index 3 holds 2, index 0 holds 1.
	require.NoError(t, p.SetValues([]int{1, 3, 0, 2}))

	a := &Arrangement[int]{}
	a.FromPermutation(p)
	assert.Equal(t, []int{0, 1, 0, 2}, a.Values())

	require.True(t, p.Equal(a.ToPermutation()))
}

func TestArrangement_Set(t *testing.T) {
	a, err := NewArrangement(3, 0, 4)
	require.NoError(t, err)

	require.NoError(t, a.Set(2, 4))
	require.NoError(t, a.Set(0, 2))
	assert.True(t, errs.Is(a.Set(0, 3), errs.ErrCodeOutOfRange))
	assert.True(t, errs.Is(a.Set(1, -1), errs.ErrCodeOutOfRange))
	assert.True(t, errs.Is(a.Set(3, 0), errs.ErrCodeOutOfRange))

	a.Fill()
	assert.Equal(t, []int{2, 3, 4}, a.Values())
}

func TestPermutation_Exhaustive(t *testing.T) {
	tests := []struct {
		k        int
		min, max int
		want     uint64
	}{
		{3, 0, 4, 60},
		{4, 0, 3, 24},
		{2, -2, 2, 20},
		{1, 0, 3, 4},
		{0, 0, 3, 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("k=%d[%d,%d]", tt.k, tt.min, tt.max), func(t *testing.T) {
			p, err := NewPermutation(tt.k, tt.min, tt.max)
			require.NoError(t, err)
			count, err := p.Count()
			require.NoError(t, err)
			require.Equal(t, tt.want, count)
			requireExhaustive(t, p, false)
		})
	}
}

func TestPermutation_ValuesStayDistinct(t *testing.T) {
	p, err := NewPermutation(3, 10, 14)
	require.NoError(t, err)

	count, err := p.Count()
	require.NoError(t, err)
	for range count {
		vals := p.Values()
		for i, v := range vals {
			require.False(t, slices.Contains(vals[i+1:], v), "duplicate in %v", vals)
		}
		p.Next()
	}
}

func TestPermutation_SetValues(t *testing.T) {
	p, err := NewPermutation(3, 0, 4)
	require.NoError(t, err)

	require.NoError(t, p.SetValues([]int{4, 0, 2}))
	assert.Equal(t, "2 0 4", p.String())

	assert.True(t, errs.Is(p.SetValues([]int{1, 1, 2}), errs.ErrCodeInvalidInput))
	assert.True(t, errs.Is(p.SetValues([]int{1, 5, 2}), errs.ErrCodeOutOfRange))
	assert.True(t, errs.Is(p.SetValues([]int{1, 2}), errs.ErrCodeInvalidInput))
}

func TestPermutation_ArrangementRoundTrip(t *testing.T) {
	p, err := NewPermutation(4, 0, 5)
	require.NoError(t, err)

	count, err := p.Count()
	require.NoError(t, err)
	for range count {
		a := &Arrangement[int]{}
		a.FromPermutation(p)
		require.True(t, p.Equal(a.ToPermutation()))
		p.Next()
	}
}

func TestKGenerators_RangeTooNarrow(t *testing.T) {
	_, err := NewCombination(4, 0, 2)
	assert.True(t, errs.Is(err, errs.ErrCodeRangeTooNarrow))

	_, err = NewArrangement(4, 0, 2)
	assert.True(t, errs.Is(err, errs.ErrCodeRangeTooNarrow))

	_, err = NewPermutation(4, 0, 2)
	assert.True(t, errs.Is(err, errs.ErrCodeRangeTooNarrow))

	p, err := NewPermutation(3, 0, 2)
	require.NoError(t, err)
	assert.True(t, errs.Is(p.Resize(4), errs.ErrCodeRangeTooNarrow))
	assert.True(t, errs.Is(p.SetBounds(0, 1), errs.ErrCodeRangeTooNarrow))
	assert.Equal(t, 3, p.Len(), "failed Resize should keep the old size")
}

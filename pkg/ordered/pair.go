package ordered

import (
	errs "github.com/matzehuels/reckon/pkg/errors"
)

// Pair is the rank of an ordered pair (a, b) of distinct indices below n.
//
// Ranks run over [0, n·(n-1)). The rank does not record n: every accessor
// takes it explicitly, so one stored rank can be read against whatever index
// space the caller is working in.
//
//	rank = a·(n-1) + b      if b < a
//	rank = a·(n-1) + b - 1  if b > a
type Pair int

// PairCount returns n·(n-1), the number of ordered pairs of distinct indices
// below n. It is 0 for n < 2.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1)
}

// EncodePair returns the rank of (a, b) for index space n.
func EncodePair(a, b, n int) (Pair, error) {
	if a < 0 || b < 0 || a >= n || b >= n {
		return 0, errs.New(errs.ErrCodeOutOfRange, "pair (%d, %d) out of range for n=%d", a, b, n)
	}
	switch {
	case b < a:
		return Pair(a*(n-1) + b), nil
	case b > a:
		return Pair(a*(n-1) + b - 1), nil
	default:
		return 0, errs.New(errs.ErrCodeEqualPair, "pair elements are equal: %d", a)
	}
}

// Decode returns the pair (a, b) that p ranks in index space n.
func (p Pair) Decode(n int) (a, b int, err error) {
	if err := p.check(n); err != nil {
		return 0, 0, err
	}
	a = int(p) / (n - 1)
	b = int(p) % (n - 1)
	if b >= a {
		b++
	}
	return a, b, nil
}

// A returns the first element of the pair in index space n.
func (p Pair) A(n int) (int, error) {
	a, _, err := p.Decode(n)
	return a, err
}

// B returns the second element of the pair in index space n.
func (p Pair) B(n int) (int, error) {
	_, b, err := p.Decode(n)
	return b, err
}

// Valid reports whether p decodes in index space n.
func (p Pair) Valid(n int) bool { return p.check(n) == nil }

// Next returns the following rank in index space n, wrapping to 0.
func (p Pair) Next(n int) Pair {
	if int(p) >= PairCount(n)-1 {
		return 0
	}
	return p + 1
}

// Prev returns the preceding rank in index space n, wrapping to the last.
func (p Pair) Prev(n int) Pair {
	if p <= 0 {
		return Pair(max(PairCount(n)-1, 0))
	}
	return p - 1
}

func (p Pair) check(n int) error {
	if p < 0 || int(p) >= PairCount(n) {
		return errs.New(errs.ErrCodeOutOfRange, "pair rank %d out of range [0, %d)", int(p), PairCount(n))
	}
	return nil
}

package ordered

import (
	"testing"

	errs "github.com/matzehuels/reckon/pkg/errors"
)

func TestPair_RoundTrip(t *testing.T) {
	for n := 2; n <= 7; n++ {
		seen := make(map[Pair]bool)
		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				if a == b {
					continue
				}
				p, err := EncodePair(a, b, n)
				if err != nil {
					t.Fatalf("EncodePair(%d, %d, %d) error: %v", a, b, n, err)
				}
				if seen[p] {
					t.Fatalf("n=%d: rank %d produced twice", n, p)
				}
				seen[p] = true

				ga, gb, err := p.Decode(n)
				if err != nil {
					t.Fatalf("Decode(%d, %d) error: %v", p, n, err)
				}
				if ga != a || gb != b {
					t.Errorf("n=%d: Decode(Encode(%d, %d)) = (%d, %d)", n, a, b, ga, gb)
				}
			}
		}
		if len(seen) != PairCount(n) {
			t.Errorf("n=%d: %d ranks, want %d", n, len(seen), PairCount(n))
		}
		for p := range seen {
			if int(p) < 0 || int(p) >= PairCount(n) {
				t.Errorf("n=%d: rank %d outside [0, %d)", n, p, PairCount(n))
			}
		}
	}
}

func TestPair_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code errs.Code
	}{
		{"equal pair", func() error { _, err := EncodePair(0, 0, 5); return err }(), errs.ErrCodeEqualPair},
		{"a out of range", func() error { _, err := EncodePair(5, 0, 5); return err }(), errs.ErrCodeOutOfRange},
		{"b negative", func() error { _, err := EncodePair(1, -1, 5); return err }(), errs.ErrCodeOutOfRange},
		{"decode past end", func() error { _, _, err := Pair(20).Decode(5); return err }(), errs.ErrCodeOutOfRange},
		{"decode negative", func() error { _, _, err := Pair(-1).Decode(5); return err }(), errs.ErrCodeOutOfRange},
		{"decode n=1", func() error { _, _, err := Pair(0).Decode(1); return err }(), errs.ErrCodeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errs.Is(tt.err, tt.code) {
				t.Errorf("got %v, want code %s", tt.err, tt.code)
			}
		})
	}
}

func TestPair_NextPrevWrap(t *testing.T) {
	if got := Pair(19).Next(5); got != 0 {
		t.Errorf("Pair(19).Next(5) = %d, want 0", got)
	}
	if got := Pair(0).Prev(5); got != 19 {
		t.Errorf("Pair(0).Prev(5) = %d, want 19", got)
	}
	if got := Pair(7).Next(5); got != 8 {
		t.Errorf("Pair(7).Next(5) = %d, want 8", got)
	}
	if got := Pair(7).Prev(5); got != 6 {
		t.Errorf("Pair(7).Prev(5) = %d, want 6", got)
	}
}

func TestPair_SameRankDifferentN(t *testing.T) {
	p := Pair(5)

	a, b, err := p.Decode(4)
	if err != nil || a != 1 || b != 3 {
		t.Errorf("Pair(5).Decode(4) = (%d, %d, %v), want (1, 3)", a, b, err)
	}

	a, b, err = p.Decode(3)
	if err != nil || a != 2 || b != 1 {
		t.Errorf("Pair(5).Decode(3) = (%d, %d, %v), want (2, 1)", a, b, err)
	}

	if !p.Valid(3) || p.Valid(2) {
		t.Errorf("Valid: want true for n=3, false for n=2")
	}
}

// Package number provides numeric types for expression evaluation.
//
// [Rat] is exact: every value is a reduced fraction, so 8/(3-8/3) equals 24
// with no rounding. [Float] is a float64 with a tolerant Equal, for callers
// that accept approximate answers in exchange for speed.
//
// Both satisfy formula.Number and are immutable values: every arithmetic
// method returns a new number and leaves its operands untouched, so values
// can be shared freely between goroutines.
package number

import (
	"math/big"
	"strings"

	errs "github.com/matzehuels/reckon/pkg/errors"
)

// Rat is an exact rational number. The zero value is 0.
type Rat struct {
	r *big.Rat
}

// NewRat returns num/den. It panics if den is zero, like [big.NewRat].
func NewRat(num, den int64) Rat { return Rat{r: big.NewRat(num, den)} }

// RatFromInt returns the integer v as a Rat.
func RatFromInt(v int64) Rat { return Rat{r: new(big.Rat).SetInt64(v)} }

// ParseRat parses an integer ("8"), a fraction ("-11/7") or a decimal
// ("1.25").
func ParseRat(s string) (Rat, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return Rat{}, errs.New(errs.ErrCodeInvalidInput, "cannot parse number: %q", s)
	}
	return Rat{r: r}, nil
}

func (x Rat) val() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}
	return x.r
}

// Add returns x + y.
func (x Rat) Add(y Rat) Rat { return Rat{r: new(big.Rat).Add(x.val(), y.val())} }

// Sub returns x - y.
func (x Rat) Sub(y Rat) Rat { return Rat{r: new(big.Rat).Sub(x.val(), y.val())} }

// Mul returns x * y.
func (x Rat) Mul(y Rat) Rat { return Rat{r: new(big.Rat).Mul(x.val(), y.val())} }

// Quo returns x / y. It panics if y is zero; check IsZero first.
func (x Rat) Quo(y Rat) Rat { return Rat{r: new(big.Rat).Quo(x.val(), y.val())} }

// IsZero reports whether x == 0.
func (x Rat) IsZero() bool { return x.val().Sign() == 0 }

// Equal reports whether x == y.
func (x Rat) Equal(y Rat) bool { return x.val().Cmp(y.val()) == 0 }

// Cmp compares x and y, returning -1, 0 or +1.
func (x Rat) Cmp(y Rat) int { return x.val().Cmp(y.val()) }

// IsInt reports whether the denominator is 1.
func (x Rat) IsInt() bool { return x.val().IsInt() }

// Float64 returns the nearest float64.
func (x Rat) Float64() float64 {
	f, _ := x.val().Float64()
	return f
}

// String formats x as "a/b", or "a" when x is an integer.
func (x Rat) String() string { return x.val().RatString() }

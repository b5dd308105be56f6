package number

import (
	"math"
	"strconv"
	"strings"

	errs "github.com/matzehuels/reckon/pkg/errors"
)

// Epsilon is the relative tolerance Float.Equal allows.
const Epsilon = 1e-9

// Float is a float64 satisfying formula.Number.
type Float float64

// ParseFloat parses a decimal or a fraction such as "8/3".
func ParseFloat(s string) (Float, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		r, err := ParseRat(s)
		if err != nil {
			return 0, err
		}
		return Float(r.Float64()), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errs.Wrap(errs.ErrCodeInvalidInput, err, "cannot parse number: %q", s)
	}
	return Float(f), nil
}

// Add returns x + y.
func (x Float) Add(y Float) Float { return x + y }

// Sub returns x - y.
func (x Float) Sub(y Float) Float { return x - y }

// Mul returns x * y.
func (x Float) Mul(y Float) Float { return x * y }

// Quo returns x / y.
func (x Float) Quo(y Float) Float { return x / y }

// IsZero reports whether x is exactly zero.
func (x Float) IsZero() bool { return x == 0 }

// Equal reports whether x and y agree within Epsilon, relative to the larger
// magnitude (absolute below 1).
func (x Float) Equal(y Float) bool {
	if x == y {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(float64(x)), math.Abs(float64(y))))
	return math.Abs(float64(x-y)) <= Epsilon*scale
}

// String formats x in the shortest form that round-trips.
func (x Float) String() string { return strconv.FormatFloat(float64(x), 'g', -1, 64) }

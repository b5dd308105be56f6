package formula

import (
	"strconv"
	"strings"

	errs "github.com/matzehuels/reckon/pkg/errors"
)

// Operator is one of the four arithmetic operators. The zero value is Add.
type Operator uint8

// The operator alphabet, in counting order.
const (
	Add Operator = iota
	Sub
	Mul
	Div
)

// NumOperators is the size of the operator alphabet.
const NumOperators = 4

var operatorNames = [NumOperators]string{"add", "subtract", "multiply", "divide"}

var operatorSymbols = [NumOperators]string{"+", "-", "*", "/"}

// Valid reports whether o is in the alphabet.
func (o Operator) Valid() bool { return o <= Div }

// Name returns "add", "subtract", "multiply" or "divide", or "" when o is
// not in the alphabet.
func (o Operator) Name() string {
	if !o.Valid() {
		return ""
	}
	return operatorNames[o]
}

// Symbol returns "+", "-", "*" or "/", or "" when o is not in the alphabet.
func (o Operator) Symbol() string {
	if !o.Valid() {
		return ""
	}
	return operatorSymbols[o]
}

// String returns the symbol, or Operator(n) for values outside the alphabet.
func (o Operator) String() string {
	if !o.Valid() {
		return "Operator(" + strconv.Itoa(int(o)) + ")"
	}
	return operatorSymbols[o]
}

// Next returns the following operator, wrapping from Div to Add.
func (o Operator) Next() Operator {
	if o >= Div {
		return Add
	}
	return o + 1
}

// Prev returns the preceding operator, wrapping from Add to Div.
func (o Operator) Prev() Operator {
	if o == Add || !o.Valid() {
		return Div
	}
	return o - 1
}

// ParseOperator accepts a symbol ("+") or a name ("add"), case-insensitive.
func ParseOperator(s string) (Operator, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := range NumOperators {
		if s == operatorSymbols[i] || s == operatorNames[i] {
			return Operator(i), nil
		}
	}
	return 0, errs.New(errs.ErrCodeUnrecognizedOperator, "unrecognized operator: %q", s)
}

// Apply returns a op b. Division by a zero b fails with DivideByZero.
func Apply[N Number[N]](op Operator, a, b N) (N, error) {
	switch op {
	case Add:
		return a.Add(b), nil
	case Sub:
		return a.Sub(b), nil
	case Mul:
		return a.Mul(b), nil
	case Div:
		if b.IsZero() {
			var zero N
			return zero, errs.New(errs.ErrCodeDivideByZero, "%s / %s", a, b)
		}
		return a.Quo(b), nil
	default:
		var zero N
		return zero, errs.New(errs.ErrCodeUnrecognizedOperator, "unrecognized operator: %d", uint8(op))
	}
}

package formula

import (
	"fmt"
	"slices"
	"strings"

	errs "github.com/matzehuels/reckon/pkg/errors"
	"github.com/matzehuels/reckon/pkg/ordered"
)

// Default separators for Trace.Format.
const (
	DefaultTokenSeparator = " "
	DefaultStepSeparator  = "; "
)

// Step records one contraction: Left Op Right = Result.
type Step[N Number[N]] struct {
	Left   N
	Op     Operator
	Right  N
	Result N
}

// Trace is the sequence of contractions of one evaluation.
type Trace[N Number[N]] []Step[N]

// Format renders each step as "left op right = result" with tokenSep between
// tokens and stepSep between steps.
func (t Trace[N]) Format(tokenSep, stepSep string) string {
	var b strings.Builder
	for i, s := range t {
		if i > 0 {
			b.WriteString(stepSep)
		}
		b.WriteString(s.Left.String())
		b.WriteString(tokenSep)
		b.WriteString(s.Op.Symbol())
		b.WriteString(tokenSep)
		b.WriteString(s.Right.String())
		b.WriteString(tokenSep)
		b.WriteString("=")
		b.WriteString(tokenSep)
		b.WriteString(s.Result.String())
	}
	return b.String()
}

// String formats the trace with the default separators.
func (t Trace[N]) String() string { return t.Format(DefaultTokenSeparator, DefaultStepSeparator) }

// Evaluate runs every contraction step on a working copy of the numbers and
// returns the remaining element.
//
// Each step combines working[a] op working[b], with (a, b) decoded from the
// step's pairing rank in that order. Errors: OutOfRange when a pairing rank
// does not decode for its step, DivideByZero when Div meets a zero
// working[b], UnrecognizedOperator for an operator outside the alphabet.
func (f *Formula[V]) Evaluate() (V, error) {
	return contract(f.pairs, f.ops.Values(), slices.Clone(f.nums), func(_ int, op Operator, left, right V) (V, error) {
		return Apply(op, left, right)
	})
}

// EvaluateTrace is Evaluate that also records every step.
func (f *Formula[V]) EvaluateTrace() (V, Trace[V], error) {
	trace := make(Trace[V], 0, len(f.pairs))
	result, err := contract(f.pairs, f.ops.Values(), slices.Clone(f.nums), func(_ int, op Operator, left, right V) (V, error) {
		v, err := Apply(op, left, right)
		if err != nil {
			return v, err
		}
		trace = append(trace, Step[V]{Left: left, Op: op, Right: right, Result: v})
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, trace, err
	}
	return result, trace, nil
}

// contract applies the pairing steps to work, shrinking its live length by
// one per step, and returns the last remaining element. combine produces the
// value stored at the lower of the two selected slots.
func contract[T any](pairs []ordered.Pair, ops []Operator, work []T, combine func(step int, op Operator, left, right T) (T, error)) (T, error) {
	var zero T
	n := len(work)
	for step := range pairs {
		size := n - step
		a, b, err := pairs[step].Decode(size)
		if err != nil {
			return zero, errs.WrapDecode(err, "step %d", step+1)
		}
		v, err := combine(step, ops[step], work[a], work[b])
		if err != nil {
			return zero, fmt.Errorf("step %d: %w", step+1, err)
		}
		lo, hi := min(a, b), max(a, b)
		work[lo] = v
		copy(work[hi:size-1], work[hi+1:size])
	}
	return work[0], nil
}

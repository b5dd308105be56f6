// Package formula evaluates every way of combining N numbers pairwise with
// the four arithmetic operators.
//
// # Overview
//
// A [Formula] holds N numbers, N-1 pairing ranks and N-1 operators. Step i
// decodes its pairing rank as an [ordered.Pair] against an index space of
// N-i elements, combines the two selected elements of a working array with
// its operator, writes the result to the lower slot and removes the higher
// one. After N-1 steps a single value is left.
//
//	f, _ := formula.New[number.Rat](4)
//	_ = f.SetNumbers(nums)
//	for {
//	    for {
//	        if v, err := f.Evaluate(); err == nil && v.Equal(target) {
//	            // solution
//	        }
//	        if f.NextOperators(); !f.OperatorsAny() {
//	            break
//	        }
//	    }
//	    if f.NextPairs(); !f.PairsAny() {
//	        break
//	    }
//	}
//
// The pairing ranks form a mixed-radix counter (step 0 fastest, step i
// wrapping at (N-i)(N-i-1)) and the operators a base-4 counter. Both can be
// addressed by a single integer through [Formula.PairingIndex] and
// [Formula.OperatorIndex], which is how the solver partitions and orders
// its work.
//
// # Errors
//
// Evaluation failures are ordinary returned errors carrying a code from
// [errors]: DivideByZero when Div meets a zero divisor, OutOfRange when a
// stored pairing rank does not decode for its step. A search treats both as
// "not a solution" ([errors.Recoverable]).
//
// # Output
//
// [Formula.EvaluateTrace] records each step as a [Step]; [Trace.Format]
// renders them as "left op right = result". [Formula.Tree] builds the
// expression as a [Node] tree whose String form is infix with minimal
// parentheses.
package formula

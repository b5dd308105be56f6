package formula_test

import (
	"fmt"

	"github.com/matzehuels/reckon/pkg/formula"
	"github.com/matzehuels/reckon/pkg/number"
	"github.com/matzehuels/reckon/pkg/ordered"
)

func ExampleFormula_EvaluateTrace() {
	f, _ := formula.New[number.Rat](4)
	_ = f.SetNumbers([]number.Rat{
		number.RatFromInt(8), number.RatFromInt(8),
		number.RatFromInt(3), number.RatFromInt(3),
	})

	// Step 1 of 4 slots: 8 / 3. Step 2 of 3 slots: 3 - 8/3. Step 3: 8 / 1/3.
	p0, _ := ordered.EncodePair(1, 2, 4)
	p1, _ := ordered.EncodePair(2, 1, 3)
	p2, _ := ordered.EncodePair(0, 1, 2)
	_ = f.SetPairs([]ordered.Pair{p0, p1, p2})
	_ = f.SetOperators([]formula.Operator{formula.Div, formula.Sub, formula.Div})

	v, trace, _ := f.EvaluateTrace()
	fmt.Println(v)
	fmt.Println(trace.Format(" ", "\n"))

	tree, _ := f.Tree()
	fmt.Println(tree)
	// Output:
	// 24
	// 8 / 3 = 8/3
	// 3 - 8/3 = 1/3
	// 8 / 1/3 = 24
	// 8 / (3 - 8 / 3)
}

func ExamplePairingCount() {
	for n := 2; n <= 5; n++ {
		pairings, _ := formula.PairingCount(n)
		operators, _ := formula.OperatorCount(n)
		fmt.Println(n, pairings, operators)
	}
	// Output:
	// 2 2 4
	// 3 12 16
	// 4 144 64
	// 5 2880 256
}

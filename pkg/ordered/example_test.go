package ordered_test

import (
	"fmt"

	"github.com/matzehuels/reckon/pkg/ordered"
)

func ExampleRadix_Rank() {
	r, _ := ordered.NewRadix(3, 0, 9)
	_ = r.Set(0, 3)
	_ = r.Set(1, 2)
	_ = r.Set(2, 1)

	rank, _ := r.Rank()
	fmt.Println(r, "=", rank)
	// Output:
	// 1 2 3 = 123
}

func ExampleEncodePair() {
	p, _ := ordered.EncodePair(3, 1, 5)
	a, b, _ := p.Decode(5)
	fmt.Println(int(p), a, b)

	q, _ := ordered.EncodePair(1, 3, 5)
	fmt.Println(int(q))
	// Output:
	// 13 3 1
	// 6
}

func ExampleCombination_Next() {
	// All 2-subsets of {0, 1, 2, 3}, read smallest first
	c, _ := ordered.NewCombination(2, 0, 3)
	for {
		fmt.Println(c)
		if c.IsMax() {
			break
		}
		c.Next()
	}
	// Output:
	// 0 1
	// 0 2
	// 0 3
	// 1 2
	// 1 3
	// 2 3
}

func ExamplePermutation_Next() {
	p, _ := ordered.NewPermutation(3, 0, 2)
	count, _ := p.Count()
	for range count {
		fmt.Println(p)
		p.Next()
	}
	// Output:
	// 0 1 2
	// 0 2 1
	// 1 0 2
	// 1 2 0
	// 2 0 1
	// 2 1 0
}

func ExampleArrangement_ToPermutation() {
	a, _ := ordered.NewArrangement(3, 0, 3)
	_ = a.SetRank(10)
	fmt.Println("digits:", a)
	fmt.Println("tuple: ", a.ToPermutation())
	// Output:
	// digits: 1 2 0
	// tuple:  1 3 0
}

// Package ordered provides enumerable combinatorial objects with successor,
// predecessor and dense integer ranks.
//
// # Overview
//
// Every generator owns a fixed-length backing slice and walks a canonical
// total order over its objects:
//
//   - [Radix]: n independent digits in [min, max] (a mixed-radix counter)
//   - [Bits]: the two-valued special case of Radix
//   - [Combination]: k-subsets of [min, max], stored descending
//   - [Arrangement]: ordered k-tuples of distinct values in inversion-table form
//   - [Permutation]: ordered k-tuples of distinct values, stored directly
//
// All of them implement [Sequence]. Index 0 is the least significant
// position: Next changes it first, and [Compare] treats the highest index as
// most significant. Next from the maximum wraps to the minimum.
//
// [Pair] is a value type rather than a generator: it ranks ordered pairs of
// distinct indices below n and takes n on every call, so one stored rank can
// be read against whatever index space the caller is in.
//
// # Ranks
//
// Each generator maps its objects bijectively onto [0, Count) with Rank and
// back with SetRank:
//
//	r, _ := ordered.NewRadix(3, 0, 9)
//	_ = r.SetRank(123)
//	fmt.Println(r) // 1 2 3
//
// Ranks are uint64. Counts or ranks that do not fit fail with
// [errors.ErrCodeOutOfRange] instead of wrapping.
//
// For Radix, Bits, Combination and Arrangement the rank of an object equals
// the number of Next steps from Reset. Permutation delegates its rank to
// Arrangement through the inversion-table transform, so its ranks are a
// bijection but do not follow its own Next order.
//
// # Element Types
//
// The value-carrying generators are generic over
// [golang.org/x/exp/constraints.Integer]. Bounds may be negative; the
// arithmetic on spans and offsets relies on two's-complement wrap-around and
// is exact for every integer type.
//
// # Concurrency
//
// Generators are not safe for concurrent mutation. Use Clone to hand an
// independent copy to another goroutine.
package ordered

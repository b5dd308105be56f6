// Package pkg provides the libraries behind reckon, an exhaustive solver for
// arithmetic target puzzles such as the 24 game.
//
// # Overview
//
// The pkg directory is organized bottom-up:
//
//  1. [ordered] - Ranked combinatorial generators (radix counters, bits,
//     ordered pairs, combinations, arrangements, permutations)
//  2. [number] - Exact rationals and tolerant floats behind one interface
//  3. [formula] - A formula as numbers, pairing ranks and operators, with
//     evaluation, traces and expression trees
//  4. [solver] - Concurrent exhaustive search over orderings, pairings and
//     operators
//  5. [render] - Expression trees as Graphviz DOT and SVG
//
// Supporting packages: [errors] (coded errors), [config] (TOML puzzle files),
// [observability] (search and render hooks) and [buildinfo].
//
// # Architecture
//
//	numbers, target
//	       ↓
//	[ordered.Permutation] (which number sits in which slot)
//	       ↓
//	[formula.Formula] (pairing ranks × operator assignments)
//	       ↓
//	[solver.Runner] (fan-out, filtering, sorting)
//	       ↓
//	expressions, traces, trees → [render]
//
// # Quick Start
//
//	nums, _ := number.ParseAll([]string{"8", "8", "3", "3"}, number.ParseRat)
//	res, err := solver.NewRunner[number.Rat](nil).Solve(ctx, solver.Puzzle[number.Rat]{
//	    Numbers: nums,
//	    Target:  number.RatFromInt(24),
//	}, solver.Options{Unique: true})
//	for _, s := range res.Solutions {
//	    fmt.Println(s.Expr) // 8 / (3 - 8 / 3)
//	}
//
// [ordered]: github.com/matzehuels/reckon/pkg/ordered
// [number]: github.com/matzehuels/reckon/pkg/number
// [formula]: github.com/matzehuels/reckon/pkg/formula
// [solver]: github.com/matzehuels/reckon/pkg/solver
// [render]: github.com/matzehuels/reckon/pkg/render
// [errors]: github.com/matzehuels/reckon/pkg/errors
// [config]: github.com/matzehuels/reckon/pkg/config
// [observability]: github.com/matzehuels/reckon/pkg/observability
// [buildinfo]: github.com/matzehuels/reckon/pkg/buildinfo
// [ordered.Permutation]: github.com/matzehuels/reckon/pkg/ordered#Permutation
// [formula.Formula]: github.com/matzehuels/reckon/pkg/formula#Formula
// [solver.Runner]: github.com/matzehuels/reckon/pkg/solver#Runner
package pkg

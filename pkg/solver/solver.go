// Package solver searches every arithmetic expression over a set of numbers
// for the ones that reach a target.
//
// # Overview
//
// A search walks three nested spaces: orderings of the input numbers
// ([ordered.Permutation]), pairing configurations and operator assignments
// (both held by a [formula.Formula]). Every combination is evaluated;
// results equal to the target become [Solution] values.
//
//	runner := solver.NewRunner[number.Rat](logger)
//	result, err := runner.Solve(ctx, solver.Puzzle[number.Rat]{
//	    Numbers: nums,
//	    Target:  number.RatFromInt(24),
//	}, solver.Options{Unique: true})
//
// # Concurrency
//
// Orderings are dealt round-robin to Options.Workers goroutines; each
// evaluates with its own Formula, so workers share nothing mutable.
// Cancellation is checked before every pairing. Solutions are sorted by
// ordering rank, pairing index and operator index before they are returned,
// so the result does not depend on scheduling unless MaxSolutions cuts the
// search short.
//
// # Errors
//
// DivideByZero and OutOfRange evaluation errors mean "not a solution" and
// are counted in [Stats]. Any other error aborts the search.
package solver

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	errs "github.com/matzehuels/reckon/pkg/errors"
	"github.com/matzehuels/reckon/pkg/formula"
	"github.com/matzehuels/reckon/pkg/observability"
	"github.com/matzehuels/reckon/pkg/ordered"
)

// Puzzle is the input of a search.
type Puzzle[N formula.Number[N]] struct {
	Numbers []N
	Target  N
}

// Solution is one expression that reaches the target.
type Solution[N formula.Number[N]] struct {
	// Expr is the expression in infix with minimal parentheses.
	Expr string

	// Steps is the evaluation trace formatted with the search's separators.
	Steps string

	// Trace holds the individual contraction steps.
	Trace formula.Trace[N]

	// Tree is the expression tree.
	Tree *formula.Node[N]

	// Order lists input positions in the order they were placed in the
	// formula: slot i held Numbers[Order[i]].
	Order []int

	// OrderRank, PairingIndex and OperatorIndex locate the solution in the
	// search space.
	OrderRank     uint64
	PairingIndex  uint64
	OperatorIndex uint64
}

// Stats counts the work a search did.
type Stats struct {
	Orderings    int           // orderings searched
	Identical    int           // orderings skipped because their values repeat
	Evaluated    uint64        // formula evaluations
	Skipped      uint64        // evaluations that failed recoverably
	DivideByZero uint64        // of Skipped, divisions by zero
	Duplicates   int           // solutions dropped as repeated infix text
	Duration     time.Duration // wall time
}

// Result is the outcome of a search.
type Result[N formula.Number[N]] struct {
	RunID     string
	Solutions []Solution[N]
	Stats     Stats

	// Truncated is set when MaxSolutions stopped the search early.
	Truncated bool
}

// Runner executes searches. It holds no per-search state, so one Runner can
// serve concurrent searches.
type Runner[N formula.Number[N]] struct {
	Logger *log.Logger
}

// NewRunner returns a Runner logging to logger, or to log.Default() when
// logger is nil.
func NewRunner[N formula.Number[N]](logger *log.Logger) *Runner[N] {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner[N]{Logger: logger}
}

// Solve runs an exhaustive search.
func (r *Runner[N]) Solve(ctx context.Context, p Puzzle[N], opts Options) (*Result[N], error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := errs.ValidateNumberCount(len(p.Numbers)); err != nil {
		return nil, err
	}

	start := time.Now()
	runID := uuid.NewString()
	hooks := observability.Search()

	orders, identical, err := orderings(p.Numbers, opts)
	if err != nil {
		return nil, err
	}
	workers := max(1, min(opts.Workers, len(orders)))

	hooks.OnSearchStart(ctx, runID, len(p.Numbers), workers)
	r.Logger.Debug("search started",
		"run", runID,
		"numbers", len(p.Numbers),
		"target", p.Target.String(),
		"orderings", len(orders),
		"workers", workers)

	var found atomic.Int64
	var done atomic.Uint64
	shards := make([]shard[N], workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			s := &shards[w]
			for i := w; i < len(orders); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				if opts.MaxSolutions > 0 && found.Load() >= int64(opts.MaxSolutions) {
					s.truncated = true
					return nil
				}
				if err := s.search(gctx, orders[i], p, &opts, &found); err != nil {
					return err
				}
				s.stats.Orderings++
				hooks.OnProgress(gctx, runID, done.Add(1), uint64(len(orders)))
			}
			return nil
		})
	}
	err = g.Wait()

	result := &Result[N]{RunID: runID}
	result.Stats.Identical = identical
	for i := range shards {
		result.Solutions = append(result.Solutions, shards[i].solutions...)
		result.Stats.add(shards[i].stats)
		result.Truncated = result.Truncated || shards[i].truncated
	}
	result.Stats.Duration = time.Since(start)

	if err != nil {
		hooks.OnSearchComplete(ctx, runID, result.Stats.Evaluated, 0, result.Stats.Duration, err)
		return nil, fmt.Errorf("search %s: %w", runID, err)
	}

	slices.SortFunc(result.Solutions, func(a, b Solution[N]) int {
		return cmp.Or(
			cmp.Compare(a.OrderRank, b.OrderRank),
			cmp.Compare(a.PairingIndex, b.PairingIndex),
			cmp.Compare(a.OperatorIndex, b.OperatorIndex),
		)
	})
	if opts.Unique {
		before := len(result.Solutions)
		result.Solutions = dedupe(result.Solutions)
		result.Stats.Duplicates = before - len(result.Solutions)
	}
	if opts.MaxSolutions > 0 && len(result.Solutions) > opts.MaxSolutions {
		result.Solutions = result.Solutions[:opts.MaxSolutions]
		result.Truncated = true
	}

	for _, s := range result.Solutions {
		hooks.OnSolution(ctx, runID, s.Expr)
	}
	hooks.OnSearchComplete(ctx, runID, result.Stats.Evaluated, len(result.Solutions), result.Stats.Duration, nil)

	r.Logger.Info("search complete",
		"run", runID,
		"evaluated", result.Stats.Evaluated,
		"skipped", result.Stats.Skipped,
		"solutions", len(result.Solutions),
		"duration", result.Stats.Duration)

	return result, nil
}

func (s *Stats) add(o Stats) {
	s.Orderings += o.Orderings
	s.Evaluated += o.Evaluated
	s.Skipped += o.Skipped
	s.DivideByZero += o.DivideByZero
}

// ordering is one arrangement of the input positions.
type ordering struct {
	rank    uint64
	indices []int
}

// orderings lists the orderings to search. With FixedOrder only the
// identity is returned. With Unique, orderings whose values repeat an
// earlier ordering are dropped and counted.
func orderings[N formula.Number[N]](nums []N, opts Options) ([]ordering, int, error) {
	n := len(nums)
	p, err := ordered.NewPermutation(n, 0, n-1)
	if err != nil {
		return nil, 0, err
	}

	if opts.FixedOrder {
		if err := p.SetValues(ordered.Seq(n)); err != nil {
			return nil, 0, err
		}
		rank, err := p.Rank()
		if err != nil {
			return nil, 0, err
		}
		return []ordering{{rank: rank, indices: p.Values()}}, 0, nil
	}

	count, err := p.Count()
	if err != nil {
		return nil, 0, err
	}
	var (
		out       []ordering
		identical int
		seen      = make(map[string]bool)
	)
	for range count {
		indices := p.Values()
		if opts.Unique {
			key := valuesKey(nums, indices)
			if seen[key] {
				identical++
				p.Next()
				continue
			}
			seen[key] = true
		}
		rank, err := p.Rank()
		if err != nil {
			return nil, 0, err
		}
		out = append(out, ordering{rank: rank, indices: indices})
		p.Next()
	}
	return out, identical, nil
}

func valuesKey[N formula.Number[N]](nums []N, indices []int) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = nums[idx].String()
	}
	return strings.Join(parts, "\x00")
}

func dedupe[N formula.Number[N]](sols []Solution[N]) []Solution[N] {
	seen := make(map[string]bool, len(sols))
	return slices.DeleteFunc(sols, func(s Solution[N]) bool {
		if seen[s.Expr] {
			return true
		}
		seen[s.Expr] = true
		return false
	})
}

// shard is one worker's private state.
type shard[N formula.Number[N]] struct {
	stats     Stats
	solutions []Solution[N]
	truncated bool
}

// search evaluates every pairing and operator assignment of one ordering.
// ctx is checked once per pairing.
func (s *shard[N]) search(ctx context.Context, o ordering, p Puzzle[N], opts *Options, found *atomic.Int64) error {
	f, err := formula.New[N](len(o.indices))
	if err != nil {
		return err
	}
	nums := make([]N, len(o.indices))
	for i, idx := range o.indices {
		nums[i] = p.Numbers[idx]
	}
	if err := f.SetNumbers(nums); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		for {
			s.stats.Evaluated++
			v, err := f.Evaluate()
			switch {
			case err == nil:
				if v.Equal(p.Target) {
					if err := s.accept(f, o, opts); err != nil {
						return err
					}
					found.Add(1)
				}
			case errs.Recoverable(err):
				s.stats.Skipped++
				if errs.Is(err, errs.ErrCodeDivideByZero) {
					s.stats.DivideByZero++
				}
			default:
				return err
			}
			if f.NextOperators(); !f.OperatorsAny() {
				break
			}
		}
		if f.NextPairs(); !f.PairsAny() {
			break
		}
	}
	return nil
}

func (s *shard[N]) accept(f *formula.Formula[N], o ordering, opts *Options) error {
	tree, err := f.Tree()
	if err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "tree of an evaluated formula")
	}
	pairing, err := f.PairingIndex()
	if err != nil {
		return err
	}
	operators, err := f.OperatorIndex()
	if err != nil {
		return err
	}
	_, trace, err := f.EvaluateTrace()
	if err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "trace of an evaluated formula")
	}
	s.solutions = append(s.solutions, Solution[N]{
		Expr:          tree.String(),
		Steps:         trace.Format(opts.TokenSeparator, opts.StepSeparator),
		Trace:         trace,
		Tree:          tree,
		Order:         o.indices,
		OrderRank:     o.rank,
		PairingIndex:  pairing,
		OperatorIndex: operators,
	})
	return nil
}

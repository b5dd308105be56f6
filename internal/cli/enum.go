package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/reckon/pkg/errors"
	"github.com/matzehuels/reckon/pkg/ordered"
)

// Generator kinds accepted by enum, rank and unrank.
const (
	kindRadix       = "radix"
	kindBits        = "bits"
	kindPair        = "pair"
	kindCombination = "combination"
	kindArrangement = "arrangement"
	kindPermutation = "permutation"
)

var generatorKinds = []string{kindRadix, kindBits, kindPair, kindCombination, kindArrangement, kindPermutation}

// genOpts holds the flags shared by enum, rank and unrank.
type genOpts struct {
	size int   // number of positions (n for pair)
	min  int64 // smallest element value
	max  int64 // largest element value
}

func (o *genOpts) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&o.size, "size", "k", 3, "number of positions (index space n for pair)")
	cmd.Flags().Int64Var(&o.min, "min", 0, "smallest element value")
	cmd.Flags().Int64Var(&o.max, "max", 3, "largest element value")
}

// generator is the common surface of the ordered generators as the CLI
// drives them.
type generator interface {
	ordered.Sequence
	Count() (uint64, error)
	Rank() (uint64, error)
	SetRank(rank uint64) error
	String() string
}

// newGenerator builds the generator of the given kind. Every kind but pair
// is capped at errs.MaxPositions positions. Radix and bits need no
// distinctness; the others fail when [min, max] holds fewer than k values.
func newGenerator(kind string, o genOpts) (generator, error) {
	if kind != kindPair {
		if err := errs.ValidateSize(o.size); err != nil {
			return nil, err
		}
	}
	switch kind {
	case kindRadix:
		return ordered.NewRadix(o.size, o.min, o.max)
	case kindBits:
		b, err := ordered.NewBits(o.size)
		if err != nil {
			return nil, err
		}
		return bitsGenerator{b}, nil
	case kindPair:
		if o.size < 2 {
			return nil, errs.New(errs.ErrCodeNTooSmall, "pair needs n >= 2, got %d", o.size)
		}
		return &pairGenerator{n: o.size}, nil
	case kindCombination, kindArrangement, kindPermutation:
		if err := errs.ValidateBounds(o.size, o.min, o.max); err != nil {
			return nil, err
		}
		switch kind {
		case kindCombination:
			return ordered.NewCombination(o.size, o.min, o.max)
		case kindArrangement:
			return ordered.NewArrangement(o.size, o.min, o.max)
		default:
			return ordered.NewPermutation(o.size, o.min, o.max)
		}
	}
	return nil, errs.New(errs.ErrCodeInvalidInput, "unknown generator %q (want one of %s)", kind, strings.Join(generatorKinds, ", "))
}

// setValues assigns values given in reading order, most significant first,
// the way generators print.
func setValues(g generator, values []int64) error {
	if len(values) != g.Len() {
		return errs.New(errs.ErrCodeInvalidInput, "got %d values, want %d", len(values), g.Len())
	}
	vals := slices.Clone(values)
	slices.Reverse(vals)

	switch g := g.(type) {
	case *ordered.Radix[int64]:
		for i, v := range vals {
			if err := g.Set(i, v); err != nil {
				return err
			}
		}
		return nil
	case bitsGenerator:
		for i, v := range vals {
			if v != 0 && v != 1 {
				return errs.New(errs.ErrCodeOutOfRange, "bit %d must be 0 or 1, got %d", i, v)
			}
			if err := g.Set(i, v == 1); err != nil {
				return err
			}
		}
		return nil
	case *ordered.Arrangement[int64]:
		for i, v := range vals {
			if err := g.Set(i, v); err != nil {
				return err
			}
		}
		return nil
	case *ordered.Combination[int64]:
		return g.SetValues(vals)
	case *ordered.Permutation[int64]:
		return g.SetValues(vals)
	case *pairGenerator:
		// Pairs read (a, b): a is the first value given.
		p, err := ordered.EncodePair(int(values[0]), int(values[1]), g.n)
		if err != nil {
			return err
		}
		g.p = p
		return nil
	}
	return errs.New(errs.ErrCodeInternal, "cannot set values on %T", g)
}

// bitsGenerator prints bits as 0 and 1.
type bitsGenerator struct {
	*ordered.Bits
}

func (b bitsGenerator) String() string {
	var sb strings.Builder
	vals := b.Values()
	for i := len(vals) - 1; i >= 0; i-- {
		if vals[i] {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// pairGenerator walks the ranks of ordered pairs over index space n.
type pairGenerator struct {
	p ordered.Pair
	n int
}

func (g *pairGenerator) Len() int       { return 2 }
func (g *pairGenerator) Next()          { g.p = g.p.Next(g.n) }
func (g *pairGenerator) Prev()          { g.p = g.p.Prev(g.n) }
func (g *pairGenerator) Reset()         { g.p = 0 }
func (g *pairGenerator) Fill()          { g.p = ordered.Pair(ordered.PairCount(g.n) - 1) }
func (g *pairGenerator) IsMin() bool    { return g.p == 0 }
func (g *pairGenerator) IsMax() bool    { return int(g.p) == ordered.PairCount(g.n)-1 }
func (g *pairGenerator) IsNotMin() bool { return g.p != 0 }

func (g *pairGenerator) Count() (uint64, error) { return uint64(ordered.PairCount(g.n)), nil }
func (g *pairGenerator) Rank() (uint64, error)  { return uint64(g.p), nil }

func (g *pairGenerator) SetRank(rank uint64) error {
	if rank >= uint64(ordered.PairCount(g.n)) {
		return errs.New(errs.ErrCodeOutOfRange, "pair rank %d out of range [0, %d)", rank, ordered.PairCount(g.n))
	}
	g.p = ordered.Pair(rank)
	return nil
}

func (g *pairGenerator) String() string {
	a, b, err := g.p.Decode(g.n)
	if err != nil {
		return "invalid"
	}
	return fmt.Sprintf("%d %d", a, b)
}

// =============================================================================
// Commands
// =============================================================================

// enumCommand lists generator states in order with their ranks.
func (c *CLI) enumCommand() *cobra.Command {
	var (
		opts  genOpts
		limit int
		from  uint64
	)

	cmd := &cobra.Command{
		Use:       "enum KIND",
		Short:     "List the states of a sequence generator with their ranks",
		ValidArgs: generatorKinds,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Example: `  # All 3-digit numbers in base 3
  reckon enum radix -k 3 --min 0 --max 2

  # 2-subsets of 0..4, starting at rank 5
  reckon enum combination -k 2 --max 4 --from 5

  # Ordered pairs of distinct indices below 4
  reckon enum pair -k 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newGenerator(args[0], opts)
			if err != nil {
				return err
			}
			rows, err := enumerate(g, from, limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.Out, rankTable(rows))

			count, err := g.Count()
			if err != nil {
				return err
			}
			if shown := uint64(len(rows)); from+shown < count {
				printDetail(c.Out, "%d of %s states shown", shown, formatRank(count))
			}
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "l", defaultEnumLimit, "maximum number of states to print")
	cmd.Flags().Uint64Var(&from, "from", 0, "rank to start at")

	return cmd
}

// enumerate returns up to limit (rank, state) rows starting at rank from.
// Ranks are read back from the generator after each Next, so the rows also
// show where a generator's rank departs from its step order.
func enumerate(g generator, from uint64, limit int) ([][]string, error) {
	count, err := g.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	if err := g.SetRank(from); err != nil {
		return nil, err
	}

	n := uint64(limit)
	if limit <= 0 || n > count-from {
		n = count - from
	}
	rows := make([][]string, 0, n)
	for range n {
		r, err := g.Rank()
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{formatRank(r), g.String()})
		g.Next()
	}
	return rows, nil
}

// rankCommand prints the rank of a generator state.
func (c *CLI) rankCommand() *cobra.Command {
	var opts genOpts

	cmd := &cobra.Command{
		Use:   "rank KIND VALUE...",
		Short: "Print the rank of a generator state",
		Long: `Print the rank of a generator state. Values are given in reading order,
most significant first, exactly as enum prints them. A pair is given as a b.`,
		Example: `  reckon rank radix -k 3 --max 9 -- 1 2 3
  reckon rank permutation -k 3 --max 2 -- 2 0 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args[1:])
			if err != nil {
				return err
			}
			g, err := newGenerator(args[0], opts)
			if err != nil {
				return err
			}
			if err := setValues(g, values); err != nil {
				return err
			}
			r, err := g.Rank()
			if err != nil {
				return err
			}
			printKeyValue(c.Out, "state", g.String())
			printKeyValue(c.Out, "rank", formatRank(r))
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}

// unrankCommand prints the generator state with a given rank.
func (c *CLI) unrankCommand() *cobra.Command {
	var opts genOpts

	cmd := &cobra.Command{
		Use:     "unrank KIND RANK",
		Short:   "Print the generator state with a given rank",
		Example: `  reckon unrank arrangement -k 3 --max 3 10`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rank, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return errs.Wrap(errs.ErrCodeInvalidInput, err, "rank %q", args[1])
			}
			g, err := newGenerator(args[0], opts)
			if err != nil {
				return err
			}
			if err := g.SetRank(rank); err != nil {
				return err
			}
			printKeyValue(c.Out, "rank", formatRank(rank))
			printKeyValue(c.Out, "state", g.String())
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}

func parseInts(ss []string) ([]int64, error) {
	out := make([]int64, len(ss))
	for i, s := range ss {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "value %d", i)
		}
		out[i] = v
	}
	return out, nil
}

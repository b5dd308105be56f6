package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/reckon/pkg/config"
	"github.com/matzehuels/reckon/pkg/formula"
	"github.com/matzehuels/reckon/pkg/number"
	"github.com/matzehuels/reckon/pkg/observability"
	"github.com/matzehuels/reckon/pkg/render"
	"github.com/matzehuels/reckon/pkg/solver"
)

// solveOpts holds the command-line flags for the solve command that are not
// part of the puzzle configuration.
type solveOpts struct {
	configPath  string // TOML puzzle file
	float       bool   // search with float64 instead of exact rationals
	steps       bool   // print evaluation steps under each expression
	interactive bool   // browse solutions in a TUI
	dotPath     string // write the chosen solution as Graphviz DOT
	svgPath     string // write the chosen solution as SVG
	cpuProfile  string // directory for a CPU profile
	quiet       bool   // no spinner
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	// Flag values; only flags the user set override the puzzle file.
	var (
		target         string
		workers        int
		unique         bool
		maxSolutions   int
		fixedOrder     bool
		tokenSeparator string
		stepSeparator  string
	)

	cmd := &cobra.Command{
		Use:   "solve [numbers...]",
		Short: "Find every expression over the numbers that reaches the target",
		Long: `Solve combines the numbers with + - * / in every ordering, pairing and
operator assignment, and prints the expressions whose value equals the target.

Numbers may be integers, decimals or fractions ("3/4"). Arithmetic is exact
unless --float is given.`,
		Example: `  # The classic 24 game
  reckon solve 8 8 3 3

  # Another target, with evaluation steps
  reckon solve 1 5 6 7 --target 21 --steps

  # Read the puzzle from a file and draw the first solution
  reckon solve --config puzzle.toml --svg solution.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if opts.configPath != "" {
				loaded, err := config.Load(opts.configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			o := config.Overrides{Numbers: args}
			flags := cmd.Flags()
			changed(flags, "target", &o.Target, target)
			changed(flags, "workers", &o.Workers, workers)
			changed(flags, "unique", &o.Unique, unique)
			changed(flags, "max", &o.MaxSolutions, maxSolutions)
			changed(flags, "fixed-order", &o.FixedOrder, fixedOrder)
			changed(flags, "token-sep", &o.TokenSeparator, tokenSeparator)
			changed(flags, "step-sep", &o.StepSeparator, stepSeparator)
			if err := cfg.Override(o); err != nil {
				return err
			}
			if len(cfg.Numbers) == 0 {
				return fmt.Errorf("no numbers given: pass them as arguments or in --config")
			}

			if opts.cpuProfile != "" {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(opts.cpuProfile), profile.Quiet).Stop()
			}

			if opts.float {
				return runSolve(cmd.Context(), c, cfg, &opts, number.ParseFloat)
			}
			return runSolve(cmd.Context(), c, cfg, &opts, number.ParseRat)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML puzzle file")
	f.StringVarP(&target, "target", "t", config.DefaultTarget, "value to reach")
	f.IntVarP(&workers, "workers", "w", 0, "parallel workers (default: number of CPUs)")
	f.BoolVar(&unique, "unique", true, "drop repeated expressions and repeated orderings")
	f.IntVarP(&maxSolutions, "max", "n", 0, "stop after this many solutions (0 = all)")
	f.BoolVar(&fixedOrder, "fixed-order", false, "keep the input order instead of trying every permutation")
	f.StringVar(&tokenSeparator, "token-sep", solver.DefaultTokenSeparator, "separator between tokens of a step")
	f.StringVar(&stepSeparator, "step-sep", solver.DefaultStepSeparator, "separator between steps")
	f.BoolVar(&opts.float, "float", false, "use floating point instead of exact fractions")
	f.BoolVarP(&opts.steps, "steps", "s", false, "print the evaluation steps of each solution")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "browse solutions interactively")
	f.StringVar(&opts.dotPath, "dot", "", "write the first (or selected) solution as Graphviz DOT")
	f.StringVar(&opts.svgPath, "svg", "", "write the first (or selected) solution as SVG")
	f.StringVar(&opts.cpuProfile, "cpuprofile", "", "write a CPU profile to this directory")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "hide the progress spinner")

	return cmd
}

// changed points *dst at v when the named flag was set on the command line.
func changed[T any](flags *pflag.FlagSet, name string, dst **T, v T) {
	if flags.Changed(name) {
		*dst = &v
	}
}

// runSolve parses the puzzle with parse, runs the search and reports it.
func runSolve[N formula.Number[N]](ctx context.Context, c *CLI, cfg *config.Config, opts *solveOpts, parse func(string) (N, error)) error {
	logger := loggerFromContext(ctx)

	nums, err := number.ParseAll(cfg.Numbers, parse)
	if err != nil {
		return err
	}
	target, err := parse(cfg.Target)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}

	label := fmt.Sprintf("Searching %d numbers for %s", len(nums), target)
	var spinner *Spinner
	if !opts.quiet && !opts.interactive {
		spinner = newSpinnerWithContext(ctx, label)
		spinner.out = c.Out
		observability.SetSearchHooks(&spinnerHooks{spinner: spinner, label: label})
		defer observability.Reset()
		spinner.Start()
	}

	res, err := newRunner[N](c).Solve(ctx, solver.Puzzle[N]{Numbers: nums, Target: target}, cfg.Options())
	if err != nil {
		if spinner != nil {
			spinner.StopWithError("search failed")
		}
		return err
	}
	if spinner != nil {
		spinner.Stop()
	}
	logger.Debug("search finished", "run", res.RunID, "identical", res.Stats.Identical, "divide_by_zero", res.Stats.DivideByZero)

	chosen, err := reportSolutions(c, res, target.String(), opts)
	if err != nil {
		return err
	}
	if chosen == nil {
		return nil
	}
	return writeDiagrams(ctx, c.Out, chosen.Tree, opts)
}

// reportSolutions prints or browses the result and returns the solution to
// draw, which is nil when there is none.
func reportSolutions[N formula.Number[N]](c *CLI, res *solver.Result[N], target string, opts *solveOpts) (*solver.Solution[N], error) {
	if opts.interactive {
		final, err := tea.NewProgram(NewSolutionListModel(res.Solutions, target)).Run()
		if err != nil {
			return nil, fmt.Errorf("solution browser: %w", err)
		}
		m, ok := final.(SolutionListModel[N])
		if !ok || m.Selected == nil {
			return nil, nil
		}
		printSolutions(c.Out, []solver.Solution[N]{*m.Selected}, target, true)
		return m.Selected, nil
	}

	if len(res.Solutions) == 0 {
		printWarning(c.Out, "no expression reaches %s", target)
		printSearchStats(c.Out, res.Stats, 0)
		return nil, nil
	}

	printSolutions(c.Out, res.Solutions, target, opts.steps)
	printSearchStats(c.Out, res.Stats, len(res.Solutions))
	if res.Truncated {
		printInfo(c.Out, "stopped after %d solutions", len(res.Solutions))
	}
	return &res.Solutions[0], nil
}

// writeDiagrams writes the requested DOT and SVG files for tree.
func writeDiagrams[N formula.Number[N]](ctx context.Context, w io.Writer, tree *formula.Node[N], opts *solveOpts) error {
	if opts.dotPath == "" && opts.svgPath == "" {
		return nil
	}
	prog := newProgress(loggerFromContext(ctx))
	dot := render.ToDOT(tree, render.Options{Values: true})

	if opts.dotPath != "" {
		if err := writeFile([]byte(dot), opts.dotPath); err != nil {
			return err
		}
		printFile(w, opts.dotPath)
	}
	if opts.svgPath != "" {
		svg, err := render.RenderSVG(ctx, dot)
		if err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
		if err := writeFile(svg, opts.svgPath); err != nil {
			return err
		}
		printFile(w, opts.svgPath)
	}
	printSuccess(w, "Rendered %s", tree)
	prog.done("Rendered expression")
	return nil
}

package solver

import (
	"runtime"

	errs "github.com/matzehuels/reckon/pkg/errors"
	"github.com/matzehuels/reckon/pkg/formula"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultTokenSeparator separates the tokens of one trace step.
	DefaultTokenSeparator = formula.DefaultTokenSeparator

	// DefaultStepSeparator separates trace steps.
	DefaultStepSeparator = formula.DefaultStepSeparator
)

// =============================================================================
// Options - Search Configuration
// =============================================================================

// Options configures a search. The zero value is usable: it searches every
// ordering with one worker per CPU and keeps duplicate expressions apart.
type Options struct {
	// Workers is the number of goroutines sharing the orderings.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int `toml:"workers"`

	// Unique drops solutions whose infix text repeats an earlier one, and
	// skips orderings whose number values repeat an earlier ordering.
	Unique bool `toml:"unique"`

	// MaxSolutions stops the search once this many solutions are found.
	// Zero means unlimited.
	MaxSolutions int `toml:"max_solutions"`

	// FixedOrder evaluates only the input order instead of every
	// permutation of it. Pairing ranks already choose any two elements in
	// either order, so this finds the same expressions in far less time.
	FixedOrder bool `toml:"fixed_order"`

	// TokenSeparator and StepSeparator format Solution.Steps.
	// Empty means the defaults.
	TokenSeparator string `toml:"-"`
	StepSeparator  string `toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// SetDefaults fills zero fields with their defaults.
func (o *Options) SetDefaults() {
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.TokenSeparator == "" {
		o.TokenSeparator = DefaultTokenSeparator
	}
	if o.StepSeparator == "" {
		o.StepSeparator = DefaultStepSeparator
	}
}

// Validate checks every field without changing any.
func (o *Options) Validate() error {
	if o.Workers < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "workers cannot be negative: %d", o.Workers)
	}
	if o.MaxSolutions < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "max solutions cannot be negative: %d", o.MaxSolutions)
	}
	if err := errs.ValidateSeparator(o.TokenSeparator); err != nil {
		return err
	}
	return errs.ValidateSeparator(o.StepSeparator)
}

// ValidateAndSetDefaults validates the options and applies defaults.
// Calling it more than once has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.Validate(); err != nil {
		return err
	}
	o.SetDefaults()
	o.validated = true
	return nil
}

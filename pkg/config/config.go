// Package config loads puzzle files.
//
// A puzzle file is TOML:
//
//	numbers = ["8", "8", "3", "3"]
//	target = "24"
//
//	[search]
//	workers = 4
//	unique = true
//	max_solutions = 0
//	fixed_order = false
//
//	[output]
//	token_separator = " "
//	step_separator = "; "
//
// Numbers and the target are strings so fractions ("3/4") and decimals
// ("0.5") survive decoding unchanged; they are parsed later by the number
// type the search runs on. Every key is optional. Command-line flags
// override file values through [Config.Override].
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/reckon/pkg/errors"
	"github.com/matzehuels/reckon/pkg/solver"
)

// DefaultTarget is the target of the classic 24 game.
const DefaultTarget = "24"

// Config is a decoded puzzle file.
type Config struct {
	Numbers []string       `toml:"numbers"`
	Target  string         `toml:"target"`
	Search  solver.Options `toml:"search"`
	Output  Output         `toml:"output"`
}

// Output controls how solutions are printed.
type Output struct {
	TokenSeparator string `toml:"token_separator"`
	StepSeparator  string `toml:"step_separator"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Target: DefaultTarget,
		Search: solver.Options{Unique: true},
	}
}

// Load reads and decodes the puzzle file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return cfg, nil
}

// Parse decodes a puzzle file on top of [Default]. Unknown keys are errors.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errs.New(errs.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields that do not depend on the number type.
func (c *Config) Validate() error {
	if c.Target == "" {
		return errs.New(errs.ErrCodeInvalidConfig, "target cannot be empty")
	}
	if len(c.Numbers) > 0 {
		if err := errs.ValidateNumberCount(len(c.Numbers)); err != nil {
			return err
		}
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := errs.ValidateSeparator(c.Output.TokenSeparator); err != nil {
		return err
	}
	return errs.ValidateSeparator(c.Output.StepSeparator)
}

// Overrides holds command-line values. Nil fields leave the file value alone.
type Overrides struct {
	Numbers        []string
	Target         *string
	Workers        *int
	Unique         *bool
	MaxSolutions   *int
	FixedOrder     *bool
	TokenSeparator *string
	StepSeparator  *string
}

// Override applies o to c and revalidates.
func (c *Config) Override(o Overrides) error {
	if len(o.Numbers) > 0 {
		c.Numbers = o.Numbers
	}
	set(&c.Target, o.Target)
	set(&c.Search.Workers, o.Workers)
	set(&c.Search.Unique, o.Unique)
	set(&c.Search.MaxSolutions, o.MaxSolutions)
	set(&c.Search.FixedOrder, o.FixedOrder)
	set(&c.Output.TokenSeparator, o.TokenSeparator)
	set(&c.Output.StepSeparator, o.StepSeparator)
	return c.Validate()
}

// Options returns the solver options with the output separators applied.
func (c *Config) Options() solver.Options {
	opts := c.Search
	opts.TokenSeparator = c.Output.TokenSeparator
	opts.StepSeparator = c.Output.StepSeparator
	return opts
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

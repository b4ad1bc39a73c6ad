package rootfind

import (
	"fmt"
	"log/slog"
	"math"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultTolerance is the stopping threshold between successive estimates.
	DefaultTolerance = 1e-5

	// DefaultMaxIterations bounds a single root-finding call. Far from the
	// root both iterations only shrink the guess geometrically, so values
	// near the float64 limits need on the order of a few thousand steps.
	DefaultMaxIterations = 10000

	// perfectCubeTolerance is the tighter tolerance IsPerfectCube uses.
	perfectCubeTolerance = 1e-6
)

// Config controls root finding.
type Config struct {
	Tolerance     float64      `yaml:"tolerance"`      // Stop when |next - guess| < Tolerance
	MaxIterations int          `yaml:"max_iterations"` // Safety net against non-terminating input
	Logger        *slog.Logger `yaml:"-"`              // nil = slog.Default()
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithTolerance returns a copy of c using the given tolerance.
func (c Config) WithTolerance(tolerance float64) Config {
	c.Tolerance = tolerance
	return c
}

// Validate reports malformed settings. A tolerance that is zero, negative
// or NaN would never satisfy the stopping test.
func (c Config) Validate() error {
	if !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("tolerance must be positive and finite, got %g: %w", c.Tolerance, ErrInvalidArgument)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d: %w", c.MaxIterations, ErrInvalidArgument)
	}
	return nil
}

// LoadConfig decodes a YAML document over DefaultConfig and validates it.
//
//	tolerance: 1e-8
//	max_iterations: 500
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

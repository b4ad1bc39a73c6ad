package rootfind

import (
	"fmt"
	"math"
)

// Estimate is the detailed outcome of one root-finding call.
type Estimate struct {
	Value      float64 // Last computed estimate
	Iterations int     // Steps taken (0 for exact edge cases)
	Converged  bool    // False when MaxIterations ran out first
}

// SquareRoot returns √value using the Babylonian method.
// Negative input fails with a *DomainError (errors.Is(err, ErrDomain)).
func SquareRoot(value, tolerance float64) (float64, error) {
	est, err := SquareRootEstimate(value, DefaultConfig().WithTolerance(tolerance))
	if err != nil {
		return 0, err
	}
	return est.Value, nil
}

// CubeRoot returns ∛value using Newton's method. Every finite value is in
// the domain; the result carries the sign of value.
func CubeRoot(value, tolerance float64) (float64, error) {
	est, err := CubeRootEstimate(value, DefaultConfig().WithTolerance(tolerance))
	if err != nil {
		return 0, err
	}
	return est.Value, nil
}

// SquareRootEstimate is SquareRoot with full control over the iteration.
//
// Iteration (Heron):
//
//	x₀ = v/2,  x_{n+1} = (x_n + v/x_n) / 2
//
// 0 and 1 are returned exactly without iterating.
func SquareRootEstimate(value float64, cfg Config) (Estimate, error) {
	return squareRoot(value, cfg, nil)
}

// CubeRootEstimate is CubeRoot with full control over the iteration.
//
// Iteration on |v| (Newton on f(x) = x³ - |v|):
//
//	x_{n+1} = (2·x_n + |v|/x_n²) / 3
//
// The starting point is |v|/3 for |v| ≥ 1 and |v| below 1, falling back
// to 1 when x₀² would underflow to zero.
func CubeRootEstimate(value float64, cfg Config) (Estimate, error) {
	return cubeRoot(value, cfg, nil)
}

func squareRoot(value float64, cfg Config, record func(float64)) (Estimate, error) {
	if err := checkInput("SquareRoot", value, cfg); err != nil {
		return Estimate{}, err
	}
	if value < 0 {
		return Estimate{}, &DomainError{Op: "SquareRoot", Value: value}
	}
	if value == 0 || value == 1 {
		if record != nil {
			record(value)
		}
		return Estimate{Value: value, Converged: true}, nil
	}

	step := func(guess float64) float64 {
		return (guess + value/guess) / 2
	}
	return iterate("SquareRoot", value, initialSquareGuess(value), step, cfg, record), nil
}

func cubeRoot(value float64, cfg Config, record func(float64)) (Estimate, error) {
	if err := checkInput("CubeRoot", value, cfg); err != nil {
		return Estimate{}, err
	}
	if value == 0 {
		if record != nil {
			record(0)
		}
		return Estimate{Value: 0, Converged: true}, nil
	}

	sign := 1.0
	if value < 0 {
		sign = -1
	}
	abs := math.Abs(value)

	step := func(guess float64) float64 {
		return (2*guess + abs/(guess*guess)) / 3
	}

	var signed func(float64)
	if record != nil {
		signed = func(x float64) { record(sign * x) }
	}

	est := iterate("CubeRoot", value, initialCubeGuess(abs), step, cfg, signed)
	est.Value *= sign
	return est, nil
}

// initialSquareGuess picks x₀ = v/2, or v itself when halving underflows
// (v = math.SmallestNonzeroFloat64) and the first step would divide by zero.
func initialSquareGuess(value float64) float64 {
	if guess := value / 2; guess != 0 {
		return guess
	}
	return value
}

// initialCubeGuess picks x₀ for a positive magnitude.
func initialCubeGuess(abs float64) float64 {
	guess := abs / 3
	if abs < 1 {
		guess = abs
	}
	if guess == 0 || guess*guess == 0 {
		return 1
	}
	return guess
}

// iterate applies step until two successive estimates agree within
// cfg.Tolerance. When cfg.MaxIterations runs out the last estimate is
// returned unconverged.
func iterate(op string, value, guess float64, step func(float64) float64, cfg Config, record func(float64)) Estimate {
	if record != nil {
		record(guess)
	}

	next := guess
	for i := 1; i <= cfg.MaxIterations; i++ {
		next = step(guess)
		if record != nil {
			record(next)
		}
		if converged(guess, next, cfg.Tolerance) {
			return Estimate{Value: next, Iterations: i, Converged: true}
		}
		guess = next
	}

	cfg.logger().Warn("root finder hit iteration cap",
		"op", op,
		"value", value,
		"iterations", cfg.MaxIterations,
		"estimate", next,
		"cycle", tailCycle(next, step))

	return Estimate{Value: next, Iterations: cfg.MaxIterations}
}

// tailCycle runs a few extra steps past the cap and reports the period the
// estimates settle into (-1 when they are still moving).
func tailCycle(last float64, step func(float64) float64) int {
	const maxPeriod = 2
	tail := make([]float64, 0, 3*maxPeriod)
	tail = append(tail, last)
	for len(tail) < cap(tail) {
		last = step(last)
		tail = append(tail, last)
	}
	return DetectCycle(tail, maxPeriod)
}

// converged is the stopping rule shared by every root finder.
func converged(guess, next, tolerance float64) bool {
	return math.Abs(next-guess) < tolerance
}

func checkInput(op string, value float64, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s: value must be finite, got %g: %w", op, value, ErrInvalidArgument)
	}
	return nil
}

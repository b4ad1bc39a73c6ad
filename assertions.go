package rootfind

import (
	"errors"
	"math"
	"testing"
)

// RootFunc is the contract shared by SquareRoot and CubeRoot.
type RootFunc func(value, tolerance float64) (float64, error)

// AssertionConfig contains thresholds for root accuracy properties.
type AssertionConfig struct {
	// Tolerance passed to the root finder
	Tolerance float64

	// |r^k - v| must stay below ResidualFactor · Tolerance · max(1, |v|)
	ResidualFactor float64
}

// DefaultAssertionConfig returns conservative thresholds.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Tolerance:      DefaultTolerance,
		ResidualFactor: 10,
	}
}

// AssertRootAccuracy verifies f(v)^degree reproduces v for every value.
//
// Mathematical property:
//
//	|f(v)^k - v| = O(tolerance)
func AssertRootAccuracy(t *testing.T, f RootFunc, degree int, values []float64, cfg AssertionConfig) {
	t.Helper()

	worst := 0.0
	for _, v := range values {
		r, err := f(v, cfg.Tolerance)
		if err != nil {
			t.Errorf("root of %g failed: %v", v, err)
			continue
		}

		residual := math.Abs(math.Pow(r, float64(degree)) - v)
		bound := cfg.ResidualFactor * cfg.Tolerance * math.Max(1, math.Abs(v))
		if residual > bound {
			t.Errorf("Residual too high for v=%g: r=%.12g, |r^%d - v| = %.3g (max: %.3g)",
				v, r, degree, residual, bound)
		}

		if bound > 0 && residual/bound > worst {
			worst = residual / bound
		}
	}

	t.Logf("✓ Root accuracy (k=%d): %d values, worst residual at %.2f%% of bound",
		degree, len(values), worst*100)
}

// AssertSquareRoots runs AssertRootAccuracy against SquareRoot.
func AssertSquareRoots(t *testing.T, values []float64, cfg AssertionConfig) {
	t.Helper()
	AssertRootAccuracy(t, SquareRoot, 2, values, cfg)
}

// AssertCubeRoots runs AssertRootAccuracy against CubeRoot.
func AssertCubeRoots(t *testing.T, values []float64, cfg AssertionConfig) {
	t.Helper()
	AssertRootAccuracy(t, CubeRoot, 3, values, cfg)
}

// AssertSignPreserved verifies sign(∛v) == sign(v) for v != 0.
func AssertSignPreserved(t *testing.T, values []float64, cfg AssertionConfig) {
	t.Helper()

	for _, v := range values {
		r, err := CubeRoot(v, cfg.Tolerance)
		if err != nil {
			t.Errorf("CubeRoot(%g) failed: %v", v, err)
			continue
		}
		if v != 0 && math.Signbit(r) != math.Signbit(v) {
			t.Errorf("Sign flipped: CubeRoot(%g) = %g", v, r)
		}
	}

	t.Logf("✓ Sign preserved for %d values", len(values))
}

// AssertToleranceAgreement verifies a tighter tolerance only refines the
// result: f(v, loose) and f(v, tight) agree to within loose.
func AssertToleranceAgreement(t *testing.T, f RootFunc, values []float64, loose, tight float64) {
	t.Helper()

	for _, v := range values {
		a, errA := f(v, loose)
		b, errB := f(v, tight)
		if err := errors.Join(errA, errB); err != nil {
			t.Errorf("root of %g failed: %v", v, err)
			continue
		}
		if math.Abs(a-b) >= loose {
			t.Errorf("Tolerances disagree for v=%g: %.12g (tol %g) vs %.12g (tol %g)",
				v, a, loose, b, tight)
		}
	}

	t.Logf("✓ Tolerance %g and %g agree for %d values", loose, tight, len(values))
}

// PrintTrajectory outputs the iterates and their convergence order.
func PrintTrajectory(t *testing.T, trajectory []float64) {
	t.Helper()

	if len(trajectory) == 0 {
		t.Logf("empty trajectory")
		return
	}

	root := trajectory[len(trajectory)-1]

	t.Logf("\n=== Trajectory ===")
	t.Logf("  n    x_n                   |x_n - root|")
	t.Logf("  --   --------------------  ------------")
	for i, x := range trajectory {
		t.Logf("  %-4d %20.15g  %12.3e", i, x, math.Abs(x-root))
	}
	t.Logf("Convergence order: %.3f", ConvergenceOrder(trajectory))
}

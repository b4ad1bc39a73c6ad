package rootfind

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareRoot_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"perfect square", 16, 4.0},
		{"irrational", 2, 1.41421},
		{"below one", 0.25, 0.5},
		{"large", 1e6, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SquareRoot(tt.value, DefaultTolerance)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-5)
		})
	}
}

func TestCubeRoot_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"positive", 27, 3.0},
		{"negative", -27, -3.0},
		{"negative eight", -8, -2.0},
		{"sub-one initial guess", 0.001, 0.1},
		{"negative below one", -0.5, -0.7937005259840998},
		{"large", 1e9, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CubeRoot(tt.value, DefaultTolerance)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-5)
		})
	}
}

// TestRoots_ExactEdgeCases verifies fixed points are returned without drift.
func TestRoots_ExactEdgeCases(t *testing.T) {
	for _, v := range []float64{0, 1} {
		est, err := SquareRootEstimate(v, DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, v, est.Value)
		assert.Zero(t, est.Iterations)
		assert.True(t, est.Converged)
	}

	est, err := CubeRootEstimate(0, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 0.0, est.Value)
	assert.Zero(t, est.Iterations)
}

func TestSquareRoot_Negative(t *testing.T) {
	_, err := SquareRoot(-1, DefaultTolerance)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDomain)

	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "SquareRoot", domainErr.Op)
	assert.Equal(t, -1.0, domainErr.Value)
	assert.Contains(t, err.Error(), "cannot compute square root of a negative number")
}

func TestRoots_InvalidArgument(t *testing.T) {
	tests := []struct {
		name      string
		f         RootFunc
		value     float64
		tolerance float64
	}{
		{"zero tolerance", SquareRoot, 4, 0},
		{"negative tolerance", CubeRoot, 8, -1e-5},
		{"NaN tolerance", SquareRoot, 4, math.NaN()},
		{"infinite tolerance", CubeRoot, 8, math.Inf(1)},
		{"NaN value", SquareRoot, math.NaN(), 1e-5},
		{"infinite value", CubeRoot, math.Inf(-1), 1e-5},
		{"zero tolerance on edge case", SquareRoot, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.f(tt.value, tt.tolerance)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.NotErrorIs(t, err, ErrDomain)
		})
	}
}

// TestSquareRoot_IterationCap verifies the cap returns the last estimate
// instead of failing.
func TestSquareRoot_IterationCap(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.MaxIterations = 3
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, nil))

	est, err := SquareRootEstimate(1e6, cfg)
	require.NoError(t, err)

	assert.False(t, est.Converged)
	assert.Equal(t, 3, est.Iterations)
	assert.InDelta(t, 62505.25, est.Value, 0.01)

	assert.Contains(t, buf.String(), "root finder hit iteration cap")
	assert.Contains(t, buf.String(), "op=SquareRoot")
	assert.Contains(t, buf.String(), "cycle=-1", "estimates are still moving at the cap")
}

func TestCubeRoot_IterationCap(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.MaxIterations = 2
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, nil))

	est, err := CubeRootEstimate(-27, cfg)
	require.NoError(t, err)

	assert.False(t, est.Converged)
	assert.Less(t, est.Value, 0.0, "sign must survive the cap")
	assert.Contains(t, buf.String(), "op=CubeRoot")
}

func TestCubeRoot_InitialGuess(t *testing.T) {
	assert.Equal(t, 9.0, initialCubeGuess(27))
	assert.Equal(t, 1.0/3, initialCubeGuess(1))
	assert.Equal(t, 0.5, initialCubeGuess(0.5))

	// Square underflows to zero: first step would divide by zero.
	assert.Equal(t, 1.0, initialCubeGuess(5e-324))
	assert.Equal(t, 1.0, initialCubeGuess(1e-200))
}

func TestCubeRoot_Subnormal(t *testing.T) {
	est, err := CubeRootEstimate(-5e-324, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, est.Converged)
	assert.False(t, math.IsInf(est.Value, 0) || math.IsNaN(est.Value))
	assert.LessOrEqual(t, est.Value, 0.0)
}

// TestSquareRoot_Subnormal covers the smallest positive float, whose half
// rounds to zero.
func TestSquareRoot_Subnormal(t *testing.T) {
	assert.Equal(t, math.SmallestNonzeroFloat64, initialSquareGuess(math.SmallestNonzeroFloat64))
	assert.Equal(t, 8.0, initialSquareGuess(16))

	for _, v := range []float64{math.SmallestNonzeroFloat64, 1e-323, 1e-310} {
		est, err := SquareRootEstimate(v, DefaultConfig())
		require.NoError(t, err)
		assert.True(t, est.Converged, "v=%g", v)
		assert.False(t, math.IsInf(est.Value, 0) || math.IsNaN(est.Value), "v=%g", v)
		assert.Positive(t, est.Value, "v=%g", v)
		assert.Less(t, est.Value*est.Value, 10*DefaultTolerance, "v=%g", v)
	}
}

func TestTailCycle(t *testing.T) {
	flip := func(x float64) float64 { return 3 - x }
	assert.Equal(t, 2, tailCycle(1, flip))

	fixed := func(x float64) float64 { return x }
	assert.Equal(t, 1, tailCycle(4, fixed))

	halve := func(x float64) float64 { return x / 2 }
	assert.Equal(t, -1, tailCycle(1, halve))
}

func TestConverged(t *testing.T) {
	assert.True(t, converged(1.0, 1.0+1e-6, 1e-5))
	assert.True(t, converged(1.0+1e-6, 1.0, 1e-5))
	assert.False(t, converged(1.0, 1.0+1e-5, 1e-5))
	assert.False(t, converged(math.Inf(1), math.Inf(1), 1e-5))
}

func TestRoots_Properties(t *testing.T) {
	cfg := DefaultAssertionConfig()

	t.Run("SquareRootResidual", func(t *testing.T) {
		AssertSquareRoots(t, []float64{0, 1e-6, 0.25, 1, 2, 16, 12345.678, 1e6}, cfg)
	})

	t.Run("CubeRootResidual", func(t *testing.T) {
		AssertCubeRoots(t, []float64{-1e6, -27, -8, -0.5, 0, 0.001, 1, 27, 1e9}, cfg)
	})

	t.Run("CubeRootSign", func(t *testing.T) {
		AssertSignPreserved(t, []float64{-1e9, -27, -0.001, 0.001, 27, 1e9}, cfg)
	})

	t.Run("ToleranceAgreement", func(t *testing.T) {
		AssertToleranceAgreement(t, SquareRoot, []float64{0.5, 2, 16, 1e4}, 1e-5, 1e-10)
		AssertToleranceAgreement(t, CubeRoot, []float64{-27, 0.001, 2}, 1e-5, 1e-10)
	})
}

// TestRoots_Reentrant runs the root finders from parallel subtests.
func TestRoots_Reentrant(t *testing.T) {
	for i := 1; i <= 8; i++ {
		v := float64(i * i * i)
		t.Run("", func(t *testing.T) {
			t.Parallel()
			r, err := CubeRoot(v, 1e-8)
			require.NoError(t, err)
			assert.InDelta(t, math.Cbrt(v), r, 1e-8)

			s, err := SquareRoot(v, 1e-8)
			require.NoError(t, err)
			assert.InDelta(t, math.Sqrt(v), s, 1e-8)
		})
	}
}

func BenchmarkSquareRoot(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = SquareRoot(12345.678, DefaultTolerance)
	}
}

func BenchmarkCubeRoot(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = CubeRoot(-12345.678, DefaultTolerance)
	}
}

package rootfind

import "math"

// SquareRootTrajectory records every estimate SquareRootEstimate produces:
// the initial guess followed by each iterate. The last element is the
// returned root. Exact edge cases (0, 1) yield a single element.
func SquareRootTrajectory(value float64, cfg Config) ([]float64, error) {
	trajectory := make([]float64, 0, 16)
	_, err := squareRoot(value, cfg, func(x float64) {
		trajectory = append(trajectory, x)
	})
	if err != nil {
		return nil, err
	}
	return trajectory, nil
}

// CubeRootTrajectory is SquareRootTrajectory for CubeRootEstimate.
// Estimates carry the sign of value.
func CubeRootTrajectory(value float64, cfg Config) ([]float64, error) {
	trajectory := make([]float64, 0, 16)
	_, err := cubeRoot(value, cfg, func(x float64) {
		trajectory = append(trajectory, x)
	})
	if err != nil {
		return nil, err
	}
	return trajectory, nil
}

// ConvergenceOrder estimates q in e_{n+1} ≈ C·e_n^q from a trajectory,
// taking the final element as the root:
//
//	q ≈ ln(e_{n+1}/e_n) / ln(e_n/e_{n-1})
//
// Errors below 1e-10·max(1, |root|) are rounding noise and end the usable
// prefix. The last usable triple is used. Returns 0 if there is none.
func ConvergenceOrder(trajectory []float64) float64 {
	if len(trajectory) < 4 {
		return 0
	}

	root := trajectory[len(trajectory)-1]
	floor := 1e-10 * math.Max(1, math.Abs(root))

	errs := make([]float64, 0, len(trajectory)-1)
	for _, x := range trajectory[:len(trajectory)-1] {
		e := math.Abs(x - root)
		if e <= floor {
			break
		}
		errs = append(errs, e)
	}

	if len(errs) < 3 {
		return 0
	}

	e1, e2, e3 := errs[len(errs)-3], errs[len(errs)-2], errs[len(errs)-1]
	denominator := math.Log(e2 / e1)
	if denominator == 0 {
		return 0
	}
	return math.Log(e3/e2) / denominator
}

// DetectCycle reports the smallest period p ≤ maxPeriod with which the
// tail of the trajectory repeats exactly. An iteration stuck between
// adjacent floats (tolerance below the float spacing of the root) shows
// up as period 2. Returns -1 when no cycle is found.
func DetectCycle(trajectory []float64, maxPeriod int) int {
	for period := 1; period <= maxPeriod; period++ {
		// Require two full repetitions.
		if len(trajectory) < 3*period {
			return -1
		}

		tail := trajectory[len(trajectory)-3*period:]
		periodic := true
		for i := 0; i < 2*period; i++ {
			if tail[i] != tail[i+period] {
				periodic = false
				break
			}
		}

		if periodic {
			return period
		}
	}

	return -1
}

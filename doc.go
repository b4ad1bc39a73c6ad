// Package rootfind provides small numeric utilities built around Newton's
// method root finding.
//
// # Overview
//
// The core is a pair of iterative root finders:
//
//   - SquareRoot - Babylonian (Heron's) method, x_{n+1} = (x_n + v/x_n) / 2
//   - CubeRoot   - Newton's method on x³ - |v|, x_{n+1} = (2x_n + |v|/x_n²) / 3
//
// Both stop when two successive estimates differ by less than the tolerance:
//
//	|x_{n+1} - x_n| < tolerance
//
// Around them sit a few derived utilities:
//
//   - cube       - Cube, IsPerfectCube, GeneratePerfectCubes
//   - sequences  - Factorial, Fibonacci, FibonacciIterative
//   - trajectory - iterate recording and convergence order estimation
//   - assertions - test helpers for root accuracy properties
//
// # Quick Start
//
//	r, err := rootfind.SquareRoot(2, rootfind.DefaultTolerance)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("√2 ≈ %.5f\n", r) // 1.41421
//
//	c, _ := rootfind.CubeRoot(-27, 1e-8)
//	fmt.Printf("∛-27 ≈ %.5f\n", c) // -3.00000
//
// # Errors
//
// Negative input to SquareRoot returns a *DomainError:
//
//	_, err := rootfind.SquareRoot(-1, 1e-5)
//	errors.Is(err, rootfind.ErrDomain) // true
//
// A tolerance that is zero, negative or NaN can never satisfy the stopping
// rule and fails fast with ErrInvalidArgument, as do NaN and ±Inf values.
//
// # Iteration cap
//
// Newton iteration converges for every valid input, but an absolute
// tolerance finer than the float64 spacing near the root can leave the
// estimate bouncing between neighbouring floats. Config.MaxIterations
// bounds each call; when it runs out the last estimate is returned with
// Estimate.Converged == false and a Warn record is logged through slog.
//
//	cfg := rootfind.DefaultConfig()
//	cfg.Tolerance = 1e-12
//	est, err := rootfind.SquareRootEstimate(1e300, cfg)
//	if err == nil && !est.Converged {
//	    // est.Value is still the best estimate found
//	}
//
// # Configuration
//
// Config can be loaded from YAML:
//
//	cfg, err := rootfind.LoadConfig([]byte("tolerance: 1e-8\nmax_iterations: 500\n"))
//
// # Convergence order
//
// Record the iterates to see the quadratic convergence of Newton's method:
//
//	trajectory, _ := rootfind.SquareRootTrajectory(2, cfg)
//	q := rootfind.ConvergenceOrder(trajectory) // ≈ 2
//
// # Testing
//
// Use assertions to validate root properties:
//
//	func TestMyRoots(t *testing.T) {
//	    cfg := rootfind.DefaultAssertionConfig()
//	    rootfind.AssertSquareRoots(t, []float64{2, 16, 1e6}, cfg)
//	    rootfind.AssertSignPreserved(t, []float64{-8, 27}, cfg)
//	}
//
// All functions are pure and safe for concurrent use.
package rootfind

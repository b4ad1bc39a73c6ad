package rootfind

import "fmt"

const (
	// maxFibonacci is the largest n with F(n) representable in uint64.
	maxFibonacci = 93

	// maxFibonacciRecursive bounds the O(2^n) recurrence to inputs that
	// finish in about a second.
	maxFibonacciRecursive = 40
)

// Fibonacci returns F(n) by the defining recurrence
// F(0) = 0, F(1) = 1, F(n) = F(n-1) + F(n-2).
//
// Runs in O(2^n), so n above 40 is rejected with ErrInvalidArgument;
// FibonacciIterative covers the full uint64 range up to n = 93.
func Fibonacci(n int) (uint64, error) {
	if err := checkFibonacci(n); err != nil {
		return 0, err
	}
	if n > maxFibonacciRecursive {
		return 0, fmt.Errorf("fibonacci of %d: recursive form limited to n <= %d: %w",
			n, maxFibonacciRecursive, ErrInvalidArgument)
	}
	return fibonacci(n), nil
}

func fibonacci(n int) uint64 {
	if n < 2 {
		return uint64(n)
	}
	return fibonacci(n-1) + fibonacci(n-2)
}

// FibonacciIterative returns F(n) in O(n) time and O(1) space.
func FibonacciIterative(n int) (uint64, error) {
	if err := checkFibonacci(n); err != nil {
		return 0, err
	}
	if n < 2 {
		return uint64(n), nil
	}

	var prev2, prev1 uint64 = 0, 1
	for i := 2; i <= n; i++ {
		prev2, prev1 = prev1, prev1+prev2
	}
	return prev1, nil
}

func checkFibonacci(n int) error {
	if n < 0 {
		return fmt.Errorf("fibonacci of %d: %w", n, ErrInvalidArgument)
	}
	if n > maxFibonacci {
		return fmt.Errorf("fibonacci of %d: %w", n, ErrOverflow)
	}
	return nil
}

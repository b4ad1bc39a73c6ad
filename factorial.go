package rootfind

import "fmt"

// maxFactorial is the largest n with n! representable in uint64.
const maxFactorial = 20

// Factorial returns n! = n·(n-1)·…·1, with 0! = 1.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial of %d: %w", n, ErrInvalidArgument)
	}
	if n > maxFactorial {
		return 0, fmt.Errorf("factorial of %d: %w", n, ErrOverflow)
	}
	return factorial(uint64(n)), nil
}

func factorial(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return n * factorial(n-1)
}

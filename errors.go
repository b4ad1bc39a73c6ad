package rootfind

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned when an input lies outside a function's domain.
	ErrDomain = errors.New("rootfind: value outside domain")

	// ErrInvalidArgument is returned for malformed tolerance, iteration
	// caps, non-finite values and negative sequence indices.
	ErrInvalidArgument = errors.New("rootfind: invalid argument")

	// ErrOverflow is returned when a result does not fit in uint64.
	ErrOverflow = errors.New("rootfind: result overflows uint64")
)

// DomainError reports the operation and the offending input.
type DomainError struct {
	Op    string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s(%g): cannot compute square root of a negative number", e.Op, e.Value)
}

// Is makes errors.Is(err, ErrDomain) hold for every DomainError.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

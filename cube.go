package rootfind

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Cube returns n³. Integer results wrap on overflow like any Go arithmetic.
func Cube[T Number](n T) T {
	return n * n * n
}

// IsPerfectCube reports whether n is the cube of an integer.
// Negative n qualifies when -n does: ∛ keeps the sign, so the check runs
// on n directly and math.MinInt64 (= (-2²¹)³) needs no negation.
func IsPerfectCube(n int64) bool {
	root, err := CubeRoot(float64(n), perfectCubeTolerance)
	if err != nil {
		return false
	}
	return Cube(int64(math.Round(root))) == n
}

// GeneratePerfectCubes returns 1³, 2³, ..., n³.
func GeneratePerfectCubes(n int) []int64 {
	if n <= 0 {
		return []int64{}
	}

	cubes := make([]int64, 0, n)
	for i := int64(1); i <= int64(n); i++ {
		cubes = append(cubes, Cube(i))
	}
	return cubes
}

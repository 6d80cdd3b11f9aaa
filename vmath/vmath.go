package vmath

import "math"

const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi

	// Epsilon is the default tolerance for float comparisons
	Epsilon = 1e-6
)

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp interpolates between a and b with t clamped to [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// LerpUnclamped interpolates between a and b without clamping t
func LerpUnclamped(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ApproxEqual compares with a tolerance scaled to the operand magnitude
func ApproxEqual(a, b float64) bool {
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) < math.Max(Epsilon*scale, Epsilon)
}

// EqualWithin reports |a-b| <= tol
func EqualWithin(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// Repeat wraps t into [0, length)
func Repeat(t, length float64) float64 {
	if length <= 0 {
		return 0
	}
	r := t - math.Floor(t/length)*length
	if r >= length {
		r = 0
	}
	return r
}

package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector in world units
// Y is up; the XZ plane is the ground plane
type Vec3F struct {
	X, Y, Z float64
}

var (
	V3FZero    = Vec3F{}
	V3FUp      = Vec3F{0, 1, 0}
	V3FRight   = Vec3F{1, 0, 0}
	V3FForward = Vec3F{0, 0, 1}
	V3FOne     = Vec3F{1, 1, 1}
)

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

// V3FMul multiplies component-wise
func V3FMul(a, b Vec3F) Vec3F {
	return Vec3F{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

func V3FNeg(v Vec3F) Vec3F {
	return Vec3F{-v.X, -v.Y, -v.Z}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// V3FCross returns a×b; V3FCross(V3FUp, V3FForward) == V3FRight
func V3FCross(a, b Vec3F) Vec3F {
	return Vec3F{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

func V3FDistance(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

func V3FDistanceSq(a, b Vec3F) float64 {
	return V3FMagSq(V3FSub(a, b))
}

// V3FLerp interpolates without clamping t
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	return Vec3F{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// V3FFlat drops the vertical component
func V3FFlat(v Vec3F) Vec3F {
	return Vec3F{v.X, 0, v.Z}
}

// V3FAngle returns the unsigned angle between a and b in degrees
// Zero-length input yields 0
func V3FAngle(a, b Vec3F) float64 {
	denom := math.Sqrt(V3FMagSq(a) * V3FMagSq(b))
	if denom < 1e-15 {
		return 0
	}
	cos := Clamp(V3FDot(a, b)/denom, -1, 1)
	return math.Acos(cos) * Rad2Deg
}

// V3FApproxEqual compares component-wise within eps
func V3FApproxEqual(a, b Vec3F, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

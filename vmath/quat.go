package vmath

import "math"

// Quat is a unit rotation quaternion
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity is the no-rotation quaternion
var QuatIdentity = Quat{W: 1}

// QuatFromEuler builds a rotation from degrees, applied Z then X then Y
func QuatFromEuler(x, y, z float64) Quat {
	qx := QuatAxisAngle(V3FRight, x)
	qy := QuatAxisAngle(V3FUp, y)
	qz := QuatAxisAngle(V3FForward, z)
	return QuatMul(QuatMul(qy, qx), qz)
}

// QuatAxisAngle rotates by deg degrees around axis
func QuatAxisAngle(axis Vec3F, deg float64) Quat {
	n := V3FNormalize(axis)
	if n == V3FZero {
		return QuatIdentity
	}
	half := deg * Deg2Rad * 0.5
	s := math.Sin(half)
	return Quat{n.X * s, n.Y * s, n.Z * s, math.Cos(half)}
}

func QuatMul(a, b Quat) Quat {
	return Quat{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y + a.Y*b.W + a.Z*b.X - a.X*b.Z,
		Z: a.W*b.Z + a.Z*b.W + a.X*b.Y - a.Y*b.X,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// QuatConjugate is the inverse for unit quaternions
func QuatConjugate(q Quat) Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

func QuatNormalize(q Quat) Quat {
	m := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if m == 0 {
		return QuatIdentity
	}
	return Quat{q.X / m, q.Y / m, q.Z / m, q.W / m}
}

// QuatRotate applies q to v
func QuatRotate(q Quat, v Vec3F) Vec3F {
	u := Vec3F{q.X, q.Y, q.Z}
	// v' = v + 2w(u×v) + 2u×(u×v), right-handed product
	uv := Vec3F{u.Y*v.Z - u.Z*v.Y, u.Z*v.X - u.X*v.Z, u.X*v.Y - u.Y*v.X}
	uuv := Vec3F{u.Y*uv.Z - u.Z*uv.Y, u.Z*uv.X - u.X*uv.Z, u.X*uv.Y - u.Y*uv.X}
	return V3FAdd(v, V3FAdd(V3FScale(uv, 2*q.W), V3FScale(uuv, 2)))
}

func QuatApproxEqual(a, b Quat, eps float64) bool {
	d := math.Abs(a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W)
	return d >= 1-eps
}

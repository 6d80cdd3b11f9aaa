package spline

import "github.com/lixenwraith/rail-walker/vmath"

// Curve is one cubic Bezier segment: start, start handle, end handle, end
type Curve struct {
	P0, C0, C1, P1 vmath.Vec3F
}

// Eval returns the position at local parameter u in [0,1]
func (c Curve) Eval(u float64) vmath.Vec3F {
	v := 1 - u
	a := v * v * v
	b := 3 * v * v * u
	d := 3 * v * u * u
	e := u * u * u
	return vmath.Vec3F{
		X: a*c.P0.X + b*c.C0.X + d*c.C1.X + e*c.P1.X,
		Y: a*c.P0.Y + b*c.C0.Y + d*c.C1.Y + e*c.P1.Y,
		Z: a*c.P0.Z + b*c.C0.Z + d*c.C1.Z + e*c.P1.Z,
	}
}

// Deriv returns dP/du at local parameter u
func (c Curve) Deriv(u float64) vmath.Vec3F {
	v := 1 - u
	t0 := vmath.V3FScale(vmath.V3FSub(c.C0, c.P0), 3*v*v)
	t1 := vmath.V3FScale(vmath.V3FSub(c.C1, c.C0), 6*v*u)
	t2 := vmath.V3FScale(vmath.V3FSub(c.P1, c.C1), 3*u*u)
	return vmath.V3FAdd(vmath.V3FAdd(t0, t1), t2)
}

// Flat projects the segment onto the XZ plane
func (c Curve) Flat() Curve {
	return Curve{vmath.V3FFlat(c.P0), vmath.V3FFlat(c.C0), vmath.V3FFlat(c.C1), vmath.V3FFlat(c.P1)}
}

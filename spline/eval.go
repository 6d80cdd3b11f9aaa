package spline

import (
	"math"

	"github.com/lixenwraith/rail-walker/parameter"
	"github.com/lixenwraith/rail-walker/vmath"
)

// PositionAt evaluates the spline at normalized t
// Non-looping splines clamp to the end points; looping splines wrap
func (s *Spline) PositionAt(t float64) vmath.Vec3F {
	if !s.Initialized() {
		if len(s.points) == 1 {
			return s.points[0].position
		}
		return vmath.Vec3F{}
	}
	if !s.loop {
		if t <= 0 {
			return s.points[0].position
		}
		if t >= 1 {
			return s.points[len(s.points)-1].position
		}
	}
	seg, u := s.locate(t)
	return s.Segment(seg).Eval(u)
}

// TangentAt returns the derivative with respect to the local segment parameter
func (s *Spline) TangentAt(t float64) vmath.Vec3F {
	if !s.Initialized() {
		return vmath.Vec3F{}
	}
	if !s.loop {
		if t <= 0 {
			p := s.points[0]
			return vmath.V3FScale(vmath.V3FSub(p.FollowingHandle(), p.position), 3)
		}
		if t >= 1 {
			p := s.points[len(s.points)-1]
			return vmath.V3FScale(vmath.V3FSub(p.position, p.PrecedingHandle()), 3)
		}
	}
	seg, u := s.locate(t)
	return s.Segment(seg).Deriv(u)
}

// Tangent2DAt is TangentAt with the vertical component dropped
func (s *Spline) Tangent2DAt(t float64) vmath.Vec3F {
	return vmath.V3FFlat(s.TangentAt(t))
}

// InclineAt returns the slope angle in degrees at t and whether moving forward climbs
// The angle is measured between the surface normal and world up; vertical tangents report 90
func (s *Spline) InclineAt(t float64) (angle float64, forwardUp bool) {
	return incline(s.TangentAt(t))
}

func incline(tangent vmath.Vec3F) (float64, bool) {
	if vmath.V3FMagSq(tangent) < parameter.TangentEpsilon {
		return 0, false
	}
	dir := vmath.V3FNormalize(tangent)
	right := vmath.V3FCross(vmath.V3FUp, dir)
	normal := vmath.V3FCross(dir, right)
	if vmath.V3FMagSq(normal) < parameter.TangentEpsilon {
		return 90, tangent.Y > 0
	}
	return vmath.V3FAngle(normal, vmath.V3FUp), tangent.Y > 0
}

// stepSize converts a sample accuracy into a t increment
func stepSize(accuracy int) float64 {
	if accuracy <= 0 {
		return parameter.MaxStepSize
	}
	return vmath.Clamp(1/float64(accuracy), parameter.MinStepSize, parameter.MaxStepSize)
}

// ArcLengthBetween approximates the curve length between a and b by polyline sampling
// Order of a and b does not matter; both are clamped to [0,1]
func (s *Spline) ArcLengthBetween(a, b float64, accuracy int) float64 {
	if !s.Initialized() || math.Abs(a-b) < vmath.Epsilon {
		return 0
	}
	if a > b {
		a, b = b, a
	}
	a, b = vmath.Clamp01(a), vmath.Clamp01(b)
	step := stepSize(accuracy) * (b - a)
	if step <= 0 {
		return 0
	}

	limit := accuracy
	if limit <= 0 {
		limit = int(1 / parameter.MaxStepSize)
	}

	var length float64
	last := s.PositionAt(a)
	samples := 0
	for t := a + step; t < b && samples < limit; t += step {
		cur := s.PositionAt(t)
		length += vmath.V3FDistance(last, cur)
		last = cur
		samples++
	}
	return length + vmath.V3FDistance(last, s.PositionAt(b))
}

// Length approximates the total arc length
func (s *Spline) Length(accuracy int) float64 {
	return s.ArcLengthBetween(0, 1, accuracy)
}

// Step is the outcome of advancing along a spline
type Step struct {
	T         float64
	Position  vmath.Vec3F
	Distance  float64 // arc length actually covered
	Incline   float64 // degrees, sampled at the starting t
	ForwardUp bool
}

// Advance moves t by roughly delta units of arc length in one closed-form step
// Non-looping splines clamp t to [0,1] and report the distance actually covered
func (s *Spline) Advance(t, delta float64) Step {
	tangent := s.TangentAt(t)
	st := s.advance(t, delta, tangent)
	st.Incline, st.ForwardUp = incline(tangent)
	return st
}

// AdvanceInAir is Advance using the horizontal tangent; vertical motion belongs to the body
func (s *Spline) AdvanceInAir(t, delta float64) Step {
	tangent := s.TangentAt(t)
	st := s.advance(t, delta, vmath.V3FFlat(tangent))
	st.ForwardUp = tangent.Y > 0
	return st
}

func (s *Spline) advance(t, delta float64, tangent vmath.Vec3F) Step {
	if !s.Initialized() {
		return Step{T: t, Position: s.PositionAt(t)}
	}
	speed := vmath.V3FMag(tangent) * float64(s.SegmentCount())
	if speed < parameter.TangentEpsilon || delta == 0 {
		return Step{T: t, Position: s.PositionAt(t)}
	}

	next := t + delta/speed
	var distance float64
	if s.loop {
		next = vmath.Repeat(next, 1)
		distance = math.Abs(delta)
	} else {
		next = vmath.Clamp01(next)
		distance = math.Abs(speed * (next - t))
	}
	return Step{T: next, Position: s.PositionAt(next), Distance: distance}
}

// AdvanceSampled moves t by delta arc length using several tangent samples
// t is not clamped; PositionAt clamps or wraps the result
func (s *Spline) AdvanceSampled(t, delta float64, iterations int) (vmath.Vec3F, float64) {
	if !s.Initialized() {
		return s.PositionAt(t), t
	}
	if iterations <= 0 {
		iterations = parameter.SampledMoveAccuracy
	}
	constant := delta / float64(s.SegmentCount()*iterations)
	for i := 0; i < iterations; i++ {
		mag := vmath.V3FMag(s.TangentAt(t))
		if mag < parameter.TangentEpsilon {
			break
		}
		t += constant / mag
	}
	return s.PositionAt(t), t
}

package spline

import (
	"fmt"
	"math"

	"github.com/lixenwraith/rail-walker/parameter"
	"github.com/lixenwraith/rail-walker/vmath"
)

// sampleCount returns how many intervals cover [0,1] at the given accuracy
func sampleCount(accuracy int) int {
	return int(math.Ceil(1 / stepSize(accuracy)))
}

// NearestPointTo returns the sampled spline point closest to pos and its t
// Sampling includes both ends, so a position exactly on a sample yields distance 0
func (s *Spline) NearestPointTo(pos vmath.Vec3F, accuracy int) (vmath.Vec3F, float64) {
	return s.nearest(pos, accuracy, vmath.V3FDistanceSq)
}

// NearestPointTo2D is NearestPointTo measured on the XZ plane only
// The returned position keeps the spline height
func (s *Spline) NearestPointTo2D(pos vmath.Vec3F, accuracy int) (vmath.Vec3F, float64) {
	return s.nearest(pos, accuracy, distanceSqXZ)
}

func (s *Spline) nearest(pos vmath.Vec3F, accuracy int, dist func(a, b vmath.Vec3F) float64) (vmath.Vec3F, float64) {
	if !s.Initialized() {
		return s.PositionAt(0), 0
	}
	n := sampleCount(accuracy)
	best, bestT := s.PositionAt(0), 0.0
	bestD := dist(pos, best)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		p := s.PositionAt(t)
		if d := dist(pos, p); d < bestD {
			best, bestT, bestD = p, t, d
		}
	}
	return best, bestT
}

// NearestPointBetween samples steps points walking from fromT toward toT
// The starting t itself is not sampled; steps is clamped to [1, NearestPointMaxSteps]
func (s *Spline) NearestPointBetween(pos vmath.Vec3F, fromT, toT float64, forward bool, steps int) (vmath.Vec3F, float64) {
	steps = max(1, min(steps, parameter.NearestPointMaxSteps))
	step := math.Abs(toT-fromT) / float64(steps)
	if !forward {
		step = -step
	}

	best, bestT := vmath.Vec3F{}, fromT
	bestD := math.Inf(1)
	t := fromT
	for i := 0; i < steps; i++ {
		t += step
		p := s.PositionAt(t)
		if d := vmath.V3FDistanceSq(pos, p); d < bestD {
			best, bestT, bestD = p, t, d
		}
	}
	return best, bestT
}

// NearestPointOnXZ refines the 2D nearest point until X and Z match pos within tolerance
// Refinement is skipped when the coarse hit is more than a unit away on either axis
func (s *Spline) NearestPointOnXZ(pos vmath.Vec3F, accuracy int, within float64) (vmath.Vec3F, float64) {
	result, t := s.NearestPointTo2D(pos, accuracy)
	if !s.Initialized() {
		return result, t
	}
	if math.Abs(pos.X-result.X) > parameter.XZRefineMaxOffset || math.Abs(pos.Z-result.Z) > parameter.XZRefineMaxOffset {
		return result, t
	}

	best := distanceSqXZ(pos, result)
	step := parameter.XZRefineInitialStep
	for pass := 0; pass < parameter.XZRefineMaxPasses; pass++ {
		if vmath.EqualWithin(pos.X, result.X, within) && vmath.EqualWithin(pos.Z, result.Z, within) {
			break
		}

		// Walk backward while it improves, otherwise forward
		moved := false
		for dir := -1.0; dir <= 1 && !moved; dir += 2 {
			next := t + dir*step
			p := s.PositionAt(next)
			for d := distanceSqXZ(pos, p); d < best; d = distanceSqXZ(pos, p) {
				best, t, result = d, next, p
				moved = true
				next += dir * step
				p = s.PositionAt(next)
			}
		}
		step *= 0.1
	}
	return result, t
}

// FindIntersectionByHeight walks the straight line fromPos->toPos alongside t fromT->toT in
// fixed increments and returns the spline point where the line first drops to or below the spline
// On a loop the walk takes the short way across the seam and the returned t is wrapped
func (s *Spline) FindIntersectionByHeight(fromPos, toPos vmath.Vec3F, fromT, toT float64) (vmath.Vec3F, float64, error) {
	if fromT == toT {
		return fromPos, fromT, nil
	}
	if s.loop {
		switch {
		case toT-fromT > 0.5:
			toT--
		case fromT-toT > 0.5:
			toT++
		}
	}
	n := float64(parameter.IntersectionSteps)
	posStep := vmath.V3FScale(vmath.V3FSub(toPos, fromPos), 1/n)
	tStep := (toT - fromT) / n

	pos, t := fromPos, fromT
	for i := 0; i < parameter.IntersectionSteps; i++ {
		pos = vmath.V3FAdd(pos, posStep)
		t += tStep
		onSpline := s.PositionAt(t)
		if pos.Y <= onSpline.Y {
			if s.loop {
				t = vmath.Repeat(t, 1)
			}
			return onSpline, t, nil
		}
	}
	Logger().Debug("height intersection missed", "spline", s.name, "fromT", fromT, "toT", toT)
	return vmath.Vec3F{}, -1, fmt.Errorf("%s t=%.4f..%.4f: %w", s.name, fromT, toT, ErrNoIntersection)
}

func distanceSqXZ(a, b vmath.Vec3F) float64 {
	dx, dz := a.X-b.X, a.Z-b.Z
	return dx*dx + dz*dz
}

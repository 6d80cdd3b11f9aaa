package walker

import (
	"math"

	"github.com/lixenwraith/rail-walker/event"
	"github.com/lixenwraith/rail-walker/spline"
	"github.com/lixenwraith/rail-walker/vmath"
)

// handleInput maps input edges onto walker actions in a fixed order
func (w *Walker) handleInput(in Input) {
	h := in.Horizontal()
	if in.MoveStarted() {
		w.FirstMove(h)
	}
	// A running transition task drives movement itself
	if in.Moving() && w.transition == nil {
		w.Move(h)
	}
	if in.JumpPressed() {
		if in.Vertical() >= 0 || !w.JumpOffPlatform() {
			w.Jump()
		}
	}
	if in.ActionUp() {
		w.TriggerTransition(spline.KeyUp)
	}
	if in.ActionDown() {
		w.TriggerTransition(spline.KeyDown)
	}
	if in.MoveStopped() {
		w.StopMove()
	}
	if in.ActionReleased() {
		w.CancelTransition()
	}
	if in.JumpReleased() {
		w.StopJump()
	}
}

// FirstMove is called on the tick horizontal input starts
// In the air the first press picks a direction when drifting straight up, and
// pressing toward the current direction adds a boost
func (w *Walker) FirstMove(h float64) {
	h = w.alongSpline(h)
	w.doNotSwitchTo = nil
	if w.mode != Airborne {
		w.timeMoving = 0
		return
	}
	if !w.firstAirDirection && w.airMoveSpeed == 0 {
		w.forward = h >= 0
		w.firstAirDirection = true
	}
	if (h > 0 && w.forward) || (h < 0 && !w.forward) {
		w.airMoveSpeed += w.profile.AirBoost()
	}
}

// Move applies horizontal input for one tick
func (w *Walker) Move(h float64) {
	if w.mode == WallHanging || w.rolling() {
		return
	}
	h = w.alongSpline(h)
	switch {
	case w.inTransition:
		w.groundMove(h, true)
	case w.mode == Airborne:
		w.airMove(h)
	default:
		w.groundMove(h, false)
	}
}

func (w *Walker) groundMove(h float64, ignoreInput bool) {
	p := w.profile
	w.timeMoving += w.dt

	frac := 1.0
	if p.RunAccelerationTime > 0 {
		frac = (w.timeMoving - p.RunWindupTime) / p.RunAccelerationTime
	} else if w.timeMoving < p.RunWindupTime {
		frac = 0
	}
	w.moveSpeed = vmath.Lerp(p.BaseSpeed, p.RunSpeed, frac)

	if !ignoreInput {
		w.forward = h >= 0
	}
	if !w.atMaxSpeed && vmath.ApproxEqual(w.moveSpeed, p.RunSpeed) {
		w.atMaxSpeed = true
	}
	w.finalSpeed = w.moveSpeed
}

func (w *Walker) airMove(h float64) {
	dir := 1.0
	if !w.forward {
		dir = -1
	}
	w.airMoveSpeed += h * w.profile.AirMoveForce() * dir * w.dt
	if !w.atMaxSpeed && vmath.ApproxEqual(w.airMoveSpeed, w.profile.RunSpeed) {
		w.atMaxSpeed = true
	}
	w.finalSpeed = w.airMoveSpeed
}

// alongSpline maps an input axis value onto the spline's t direction
func (w *Walker) alongSpline(h float64) float64 {
	if w.reversed {
		return -h
	}
	return h
}

// StopMove resets ground speed; standing still on a steep runnable slope starts a slide
func (w *Walker) StopMove() {
	w.moveSpeed = w.profile.BaseSpeed
	w.timeMoving = 0
	w.atMaxSpeed = false
	if w.mode == Grounded && w.steepRunnable(w.incline) {
		w.startSlide(w.slideSpeed)
	}
}

// Jump applies the jump impulse; the height grows with run speed
// Ignored while airborne, rolling or in a transition
func (w *Walker) Jump() bool {
	if w.inTransition || w.mode == Airborne || w.rolling() {
		return false
	}
	p := w.profile
	w.doNotSwitchTo = nil

	frac := 0.0
	if p.RunSpeed > p.BaseSpeed {
		frac = (w.moveSpeed - p.BaseSpeed) / (p.RunSpeed - p.BaseSpeed)
	}
	height := vmath.Lerp(p.StandardJumpHeight, p.MaxJumpHeight, frac)
	w.airAccel += math.Sqrt(2 * p.Gravity * height)
	w.body.AddHeightOffset(w.airAccel * w.dt)
	w.emit(event.EventJump)
	return true
}

// JumpOffPlatform drops through a Platform spline onto the spline below, if any
func (w *Walker) JumpOffPlatform() bool {
	w.doNotSwitchTo = nil
	if w.sp.Type() != spline.Platform {
		return false
	}
	if w.switchToSplineBelow(true) {
		Logger().Debug("dropped through platform", "to", w.sp.Name())
		return true
	}
	return false
}

// StopJump cuts upward velocity so releasing early gives a short hop
func (w *Walker) StopJump() {
	if w.mode == Airborne && w.airAccel > 0 {
		w.airAccel = 0
	}
}

// SetRollSpeed is called by the roller each tick while a roll lasts
func (w *Walker) SetRollSpeed(speed float64, forward bool) {
	w.finalSpeed = speed
	w.forward = forward
}

func (w *Walker) steepRunnable(angle float64) bool {
	return angle >= w.profile.MinRunnableAngle && angle <= w.profile.MaxRunnableAngle
}

func (w *Walker) startSlide(speed float64) {
	w.slideSpeed = math.Max(speed, w.profile.BaseSpeed)
	if w.mode != SlopeSliding {
		w.setMode(SlopeSliding)
		w.emit(event.EventSlideStart)
	}
}

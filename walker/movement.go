package walker

import (
	"math"

	"github.com/lixenwraith/rail-walker/event"
	"github.com/lixenwraith/rail-walker/parameter"
	"github.com/lixenwraith/rail-walker/vmath"
)

func (w *Walker) handleMovements() {
	w.updateAirStatus()
	w.airMovement()
	w.slopeMovement()
	w.wallMovement()
}

// updateAirStatus lands the walker when its pending height reaches the ground
// and puts it in the air the first tick it leaves it
func (w *Walker) updateAirStatus() {
	final := w.body.FinalPosition()
	if final.Y-w.groundHeight <= groundEpsilon {
		if w.mode == Airborne {
			w.setMode(Grounded)
			w.firstContact = true
			w.airAccel = 0
			w.airMoveSpeed = 0
			w.wallJumping = false
			w.emit(event.EventLand)
		}
		w.body.SnapToGround(w.groundHeight)
		return
	}
	if w.mode == Airborne {
		return
	}

	prev := w.mode
	w.setMode(Airborne)
	w.firstAirDirection = false
	w.airMoveSpeed = w.finalSpeed
	w.airMoveLimit = math.Max(w.airMoveSpeed, w.profile.BaseSpeed)

	switch prev {
	case WallHanging, WallSliding:
		w.wallJumping = true
		w.forward = !w.towardsWall
		w.airMoveSpeed = w.profile.BaseSpeed
		w.finalSpeed = w.profile.BaseSpeed
	case SlopeSliding:
		w.forward = !w.forwardUp
		w.airMoveSpeed = w.slideSpeed
	}
}

func (w *Walker) airMovement() {
	if w.mode != Airborne {
		return
	}
	p := w.profile
	w.airAccel = math.Max(w.airAccel-p.Gravity*w.dt, -p.TerminalVelocity)
	w.airMoveSpeed = vmath.Clamp(w.airMoveSpeed-p.AirFriction()*w.dt, 0, w.airMoveLimit)
	w.finalSpeed = w.airMoveSpeed
	w.body.AddHeightOffset(w.airAccel * w.dt)

	w.switchToSplineBelow(false)
}

func (w *Walker) slopeMovement() {
	if w.mode != SlopeSliding {
		return
	}
	w.forward = !w.forwardUp
	w.slideSpeed = vmath.Clamp(w.slideSpeed+w.profile.SlideAcceleration*w.dt, 0, w.profile.RunSpeed)
	w.finalSpeed = w.slideSpeed
}

func (w *Walker) wallMovement() {
	switch w.mode {
	case WallHanging:
		if w.wallStick < w.profile.WallStickDuration {
			w.wallStick += w.dt
			return
		}
		w.setMode(WallSliding)
		w.wallSlide = 0
		w.forward = !w.towardsWall
		_, w.t = w.sp.NearestPointTo(w.body.Position(), parameter.NearestPointAccuracy)
		w.emit(event.EventWallSlide)
	case WallSliding:
		w.wallSlide += w.profile.WallSlideAcceleration * w.dt
		w.finalSpeed = w.wallSlide
	}
}

// contactGround classifies the incline on the first grounded tick after a fall
func (w *Walker) contactGround() {
	if !w.firstContact {
		return
	}
	w.updateAirStatus()
	w.firstContact = false
	if w.mode != Grounded {
		return
	}

	p := w.profile
	switch angle := w.incline; {
	case angle >= p.MinRollAngle && angle < p.MinRunnableAngle:
		if w.roller != nil && w.roller.CanRoll() {
			w.roller.StartRoll(math.Max(w.finalSpeed, p.BaseSpeed), !w.forwardUp)
			w.emit(event.EventRollStart)
		}
	case w.steepRunnable(angle):
		w.startSlide(w.finalSpeed)
	case angle > p.MaxRunnableAngle:
		Logger().Debug("landed on unrunnable incline", "angle", angle, "spline", w.sp.Name())
	}
}

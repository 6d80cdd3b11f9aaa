package walker

import (
	"math"

	"github.com/lixenwraith/rail-walker/event"
	"github.com/lixenwraith/rail-walker/parameter"
	"github.com/lixenwraith/rail-walker/spline"
	"github.com/lixenwraith/rail-walker/vmath"
)

// calculateNewPosition moves along the spline by this tick's speed and places the body
func (w *Walker) calculateNewPosition() {
	if w.finalSpeed == 0 {
		return
	}
	speed := w.finalSpeed
	prevGround := w.groundHeight
	cur := w.sp

	w.switchesThisRun = 0
	w.execute(w.dt)
	if cur != w.sp {
		prevGround = w.groundHeight
	}

	w.finalSpeed = speed
	w.body.Place(w.target, prevGround, false)
}

// execute advances t by finalSpeed*dt and resolves what happens at the spline ends
func (w *Walker) execute(dt float64) {
	delta := w.finalSpeed * dt
	if !w.forward {
		delta = -delta
	}
	movingForward := w.MovingForward()

	var distance float64
	hold := false
	if w.sp.Type() == spline.Wall {
		hold = w.executeWall(delta)
	} else {
		distance = w.executeSurface(delta)
	}

	if w.inTransition || hold || w.sp.Loop() {
		return
	}
	w.resolveTerminus(movingForward, delta, distance)
}

// executeSurface handles Normal and Platform splines; returns the arc length covered
func (w *Walker) executeSurface(delta float64) float64 {
	if w.mode == Airborne {
		return w.executeAir(delta)
	}

	st := w.sp.Advance(w.t, delta)
	w.incline, w.forwardUp = st.Incline, st.ForwardUp
	p := w.profile

	switch {
	case st.Incline < p.MinRunnableAngle:
		w.setTarget(st.Position)
		w.t = st.T
		if w.mode == SlopeSliding {
			w.setMode(Grounded)
		}
		return st.Distance
	case st.Incline <= p.MaxRunnableAngle:
		if w.atMaxSpeed || w.mode == SlopeSliding {
			w.setTarget(st.Position)
			w.t = st.T
			return st.Distance
		}
		// Too slow to run this slope: the walker loses its footing
		w.startSlide(w.finalSpeed)
		return 0
	}
	// Too steep to climb
	return 0
}

func (w *Walker) executeAir(delta float64) float64 {
	st := w.sp.AdvanceInAir(w.t, delta)
	w.forwardUp = st.ForwardUp
	final := w.body.FinalPosition()

	if final.Y > st.Position.Y {
		w.setTarget(st.Position)
		w.t = st.T
		return st.Distance
	}

	// Falling through the spline this tick: find where the descent meets it
	to := st.Position
	to.Y = final.Y
	pos, t, err := w.sp.FindIntersectionByHeight(w.body.Position(), to, w.t, st.T)
	if err != nil {
		w.warnings++
		Logger().Warn("landing intersection not found, using sampled point", "spline", w.sp.Name(), "error", err)
		w.emit(event.EventIntersectionMiss)
		pos, t = st.Position, st.T
	}
	w.setTarget(pos)
	w.t = t
	w.incline, w.forwardUp = w.sp.InclineAt(t)
	return st.Distance
}

// executeWall handles Wall splines; returns true when the walker is held in place
func (w *Walker) executeWall(delta float64) bool {
	switch w.mode {
	case WallHanging:
		return true
	case WallSliding:
		pos, t := w.sp.AdvanceSampled(w.t, delta, 1)
		w.setTarget(pos)
		w.t = t
		if w.t <= 0 || w.t >= 1 {
			w.setMode(Grounded)
		}
		return false
	case Airborne:
		if w.wallJumping {
			w.wallJumping = false
			if w.forward {
				w.t = 1
			} else {
				w.t = 0
			}
			return false
		}
		final := w.body.FinalPosition()
		if w.oppositeLinked != nil && w.oppositeWall != nil {
			// Cleared the top of the wall: carry on toward the far side
			if top := w.oppositeWall.Position(); final.Y > top.Y {
				w.setTarget(top)
				w.t = w.oppositeWall.T()
				return false
			}
		}
		w.groundHeight = final.Y
		w.hangOnWall()
		return true
	}

	if w.t != 0 && w.t != 1 {
		w.hangOnWall()
		return true
	}
	return false
}

func (w *Walker) hangOnWall() {
	if w.mode == WallHanging {
		return
	}
	if w.mode == Airborne {
		w.airAccel = 0
		w.airMoveSpeed = 0
		w.body.SnapToGround(w.groundHeight)
	}
	w.wallStick = 0
	w.setMode(WallHanging)
	w.emit(event.EventWallHang)
}

// resolveTerminus handles reaching an end of a non-looping spline: cross a linked
// connection point, else drop to the spline below, else stop at the end
func (w *Walker) resolveTerminus(movingForward bool, delta, distance float64) {
	end := 0.0
	if movingForward {
		end = 1
	}
	if (movingForward && w.t < 1) || (!movingForward && w.t > 0) {
		return
	}

	if w.switchesThisRun < parameter.MaxSwitchesPerTick && (w.switchToLinked(movingForward) || w.switchToSplineBelow(true)) {
		w.switchesThisRun++
		w.overshoot(delta, distance)
		w.airMoveSpeed = w.moveSpeed
		return
	}
	w.t = end
}

// overshoot re-applies the distance left over after crossing onto a new spline
func (w *Walker) overshoot(delta, distance float64) {
	remaining := math.Abs(delta) - distance
	if remaining < 0 {
		Logger().Debug("overshoot distance negative", "delta", delta, "distance", distance)
		remaining = -remaining
	}
	w.finalSpeed = remaining
	w.execute(1)
}

func (w *Walker) switchToLinked(movingForward bool) bool {
	end := w.sp.First()
	if movingForward {
		end = w.sp.Last()
	}
	cp := w.reg.Links().ConnectionPoint(end)
	if cp == nil || cp.Spline() == nil {
		return false
	}
	w.switchSplines(cp.Spline(), cp.Position(), cp.T())
	// Joined head to head or tail to tail: carry on away from the joint
	if (movingForward && cp.T() == 1) || (!movingForward && cp.T() == 0) {
		w.forward = !w.forward
		w.reversed = !w.reversed
	}
	return true
}

// switchToSplineBelow moves onto the closest aligned spline under the body
// When leaving, the current spline is excluded and any drop is accepted; otherwise
// only splines above the current ground qualify
func (w *Walker) switchToSplineBelow(leaving bool) bool {
	pos := w.body.Position()
	q := spline.BelowQuery{
		Position: pos,
		MaxDrop:  pos.Y - w.groundHeight,
		Exclude:  []*spline.Spline{w.doNotSwitchTo},
	}
	if leaving {
		q.MaxDrop = math.Inf(1)
		q.Exclude = append(q.Exclude, w.sp)
	}
	hit, ok := w.reg.ClosestBelow(q)
	if !ok || hit.Spline == w.sp {
		return false
	}
	w.doNotSwitchTo = w.sp
	w.switchSplines(hit.Spline, hit.Position, hit.T)
	return true
}

func (w *Walker) switchSplines(next *spline.Spline, pos vmath.Vec3F, t float64) {
	w.previous = w.sp
	if w.previous.Type() != spline.Wall {
		w.lastWalkable = w.previous
	}
	w.sp = next
	w.setTarget(pos)
	w.t = t
	w.refreshTransitions()

	w.oppositeWall, w.oppositeLinked = nil, nil
	if next.Type() == spline.Wall {
		links := w.reg.Links()
		switch t {
		case 0:
			w.oppositeWall = next.Last()
			w.oppositeLinked = links.ConnectionPoint(w.oppositeWall)
			if w.oppositeLinked != nil {
				w.towardsWall = w.groundHeight < w.oppositeLinked.Position().Y
			} else {
				w.towardsWall = w.forward
			}
		case 1:
			w.oppositeWall = next.First()
			w.oppositeLinked = links.ConnectionPoint(w.oppositeWall)
			if w.oppositeLinked != nil {
				w.towardsWall = w.groundHeight >= w.oppositeLinked.Position().Y
			} else {
				w.towardsWall = w.forward
			}
		}
	}

	Logger().Debug("spline switch", "from", w.previous.Name(), "to", next.Name(), "t", t)
	w.emit(event.EventSplineSwitch)
}

package walker

import (
	"math"

	"github.com/lixenwraith/rail-walker/event"
	"github.com/lixenwraith/rail-walker/parameter"
	"github.com/lixenwraith/rail-walker/spline"
)

type transitionPhase uint8

const (
	phaseToContact transitionPhase = iota
	phaseToDestination
	phaseBackToContact
	phaseBackToStart
)

// transitionTask is a resumable scripted move; the walker steps it once per tick
type transitionTask struct {
	region  *spline.TransitionRegion
	phase   transitionPhase
	target  float64
	forward bool
}

func (k *transitionTask) aim(from, target float64) {
	k.target = target
	k.forward = from < target
}

func (k *transitionTask) arrived(t float64) bool {
	if k.forward {
		return t >= k.target
	}
	return t <= k.target
}

// TriggerTransition starts the first available region bound to key
// Re-triggering the running transition's key restarts it from the current position
func (w *Walker) TriggerTransition(key spline.TransitionKey) bool {
	if len(w.available) == 0 || w.mode == Airborne {
		return false
	}
	for _, r := range w.available {
		if r.Key != key {
			continue
		}
		if !w.inTransition || w.current == nil || w.current.Key != key {
			w.current = r
			w.before = w.sp
			w.beforeT = w.t
			w.inTransition = true
		}
		w.beginTransition(w.current)
		w.emit(event.EventTransitionStart)
		return true
	}
	return false
}

func (w *Walker) beginTransition(r *spline.TransitionRegion) {
	w.moveSpeed = math.Max(w.moveSpeed, w.profile.BaseSpeed)
	k := &transitionTask{region: r}
	if w.sp == r.Destination {
		k.phase = phaseToDestination
		k.aim(w.t, r.DestinationT)
	} else {
		k.phase = phaseToContact
		k.aim(w.t, r.ContactT())
	}
	w.transition = k
}

// CancelTransition reverses a running transition back to where it was triggered
func (w *Walker) CancelTransition() bool {
	if !w.inTransition || w.current == nil {
		return false
	}
	r := w.current
	k := &transitionTask{region: r}
	if w.sp == r.Destination {
		k.phase = phaseBackToContact
		_, ct := r.Destination.NearestPointTo(r.ContactPosition(), parameter.NearestPointAccuracy)
		k.aim(w.t, ct)
	} else {
		k.phase = phaseBackToStart
		k.aim(w.t, w.beforeT)
	}
	w.transition = k
	w.emit(event.EventTransitionCancel)
	return true
}

// stepTransition resumes the running task: phase changes happen on arrival,
// then the walker is moved one tick toward the current target
func (w *Walker) stepTransition() {
	k := w.transition
	if k == nil {
		return
	}
	r := k.region
	for k.arrived(w.t) {
		switch k.phase {
		case phaseToContact:
			_, nt := r.Destination.NearestPointTo(r.ContactPosition(), parameter.NearestPointAccuracy)
			w.switchSplines(r.Destination, r.ContactPosition(), nt)
			k.phase = phaseToDestination
			k.aim(w.t, r.DestinationT)
		case phaseBackToContact:
			back, bt := w.before, r.ContactT()
			if r.Contact == nil || r.Contact.Spline() != back {
				_, bt = back.NearestPointTo(r.ContactPosition(), parameter.NearestPointAccuracy)
			}
			w.switchSplines(back, r.ContactPosition(), bt)
			k.phase = phaseBackToStart
			k.aim(w.t, w.beforeT)
		default:
			w.finishTransition()
			return
		}
	}
	w.forward = k.forward
	w.Move(0)
}

func (w *Walker) finishTransition() {
	w.inTransition = false
	w.transition = nil
	w.current = nil
	Logger().Debug("transition complete", "spline", w.sp.Name(), "t", w.t)
	w.emit(event.EventTransitionEnd)
}

package spline

import "github.com/lixenwraith/rail-walker/vmath"

// TransitionRegion is a t range on a host spline from which a keyed action
// moves a walker through a contact point onto another spline
type TransitionRegion struct {
	host         *Spline
	min, max     float64
	Key          TransitionKey
	Contact      *Point
	Destination  *Spline
	DestinationT float64
}

// AddTransition attaches a region to s; bounds are normalized by SetRange
func (s *Spline) AddTransition(minT, maxT float64, key TransitionKey, contact *Point, dest *Spline, destT float64) *TransitionRegion {
	r := &TransitionRegion{
		host:         s,
		max:          1,
		Key:          key,
		Contact:      contact,
		Destination:  dest,
		DestinationT: vmath.Clamp01(destT),
	}
	r.SetRange(minT, maxT)
	s.transitions = append(s.transitions, r)
	return r
}

// Transitions returns the regions hosted by s
func (s *Spline) Transitions() []*TransitionRegion {
	out := make([]*TransitionRegion, len(s.transitions))
	copy(out, s.transitions)
	return out
}

// TransitionsAt returns the regions containing t, appended to dst
func (s *Spline) TransitionsAt(dst []*TransitionRegion, t float64) []*TransitionRegion {
	for _, r := range s.transitions {
		if r.Contains(t) {
			dst = append(dst, r)
		}
	}
	return dst
}

// RemoveTransition detaches r; reports whether it was hosted by s
func (s *Spline) RemoveTransition(r *TransitionRegion) bool {
	for i, cur := range s.transitions {
		if cur == r {
			s.transitions = append(s.transitions[:i], s.transitions[i+1:]...)
			r.host = nil
			return true
		}
	}
	return false
}

func (r *TransitionRegion) Host() *Spline { return r.host }
func (r *TransitionRegion) Min() float64  { return r.min }
func (r *TransitionRegion) Max() float64  { return r.max }

// SetMin clamps to [0, Max]
func (r *TransitionRegion) SetMin(v float64) { r.min = vmath.Clamp(v, 0, r.max) }

// SetMax clamps to [Min, 1]
func (r *TransitionRegion) SetMax(v float64) { r.max = vmath.Clamp(v, r.min, 1) }

// SetRange assigns both bounds so that 0 <= min <= max <= 1
func (r *TransitionRegion) SetRange(minT, maxT float64) {
	r.min = vmath.Clamp01(minT)
	r.max = vmath.Clamp(maxT, r.min, 1)
}

// Contains reports whether t lies in [Min, Max]
func (r *TransitionRegion) Contains(t float64) bool {
	return r.min <= t && t <= r.max
}

// ContactT returns the contact point's t on its own spline
func (r *TransitionRegion) ContactT() float64 {
	if r.Contact == nil {
		return 0
	}
	return r.Contact.T()
}

// ContactPosition returns the world position of the contact point
func (r *TransitionRegion) ContactPosition() vmath.Vec3F {
	if r.Contact == nil {
		return vmath.Vec3F{}
	}
	return r.Contact.Position()
}

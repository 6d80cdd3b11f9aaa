package spline

import (
	"fmt"
	"slices"
	"sync"

	"github.com/lixenwraith/rail-walker/parameter"
	"github.com/lixenwraith/rail-walker/vmath"
)

// Registry is the scene-wide catalog of splines and their links
// Populated once at scene start; walkers only read it afterwards
type Registry struct {
	mu      sync.RWMutex
	splines []*Spline
	byName  map[string]*Spline
	links   *Links
}

func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Spline),
		links:  NewLinks(),
	}
}

// Register adds s; names must be unique
func (r *Registry) Register(s *Spline) error {
	if s == nil {
		return ErrNilSpline
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[s.name]; ok {
		return fmt.Errorf("%q: %w", s.name, ErrDuplicateName)
	}
	r.splines = append(r.splines, s)
	r.byName[s.name] = s
	return nil
}

// Unregister removes s and every link touching its points
func (r *Registry) Unregister(s *Spline) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := slices.Index(r.splines, s)
	if i < 0 {
		return false
	}
	r.splines = slices.Delete(r.splines, i, i+1)
	delete(r.byName, s.name)
	for _, p := range s.points {
		r.links.RemovePoint(p)
	}
	return true
}

// All returns every registered spline in registration order
func (r *Registry) All() []*Spline {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.splines)
}

// OfType returns the registered splines tagged t
func (r *Registry) OfType(t Type) []*Spline {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Spline
	for _, s := range r.splines {
		if s.typ == t {
			out = append(out, s)
		}
	}
	return out
}

func (r *Registry) ByName(name string) (*Spline, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byName[name]
	return s, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.splines)
}

// Links returns the shared link table
func (r *Registry) Links() *Links { return r.links }

// BelowQuery describes a search for the closest spline directly under a position
type BelowQuery struct {
	Position vmath.Vec3F
	// MaxDrop bounds the accepted height difference (exclusive); math.Inf(1) accepts any
	MaxDrop float64
	Exclude []*Spline
	// Accuracy and Tolerance default to the parameter package values when zero
	Accuracy  int
	Tolerance float64
}

// Hit is a located point on a spline
type Hit struct {
	Spline   *Spline
	T        float64
	Position vmath.Vec3F
}

// ClosestBelow returns the spline whose XZ-nearest point lies under the query
// position within tolerance and with the smallest height difference under MaxDrop
func (r *Registry) ClosestBelow(q BelowQuery) (Hit, bool) {
	if q.Accuracy <= 0 {
		q.Accuracy = parameter.NearestPointAccuracy
	}
	if q.Tolerance <= 0 {
		q.Tolerance = parameter.AlignTolerance
	}

	var best Hit
	found := false
	closest := q.MaxDrop
	for _, s := range r.All() {
		if !s.Initialized() || slices.Contains(q.Exclude, s) {
			continue
		}
		p, t := s.NearestPointOnXZ(q.Position, q.Accuracy, parameter.XZRefineWithin)
		if !vmath.EqualWithin(q.Position.X, p.X, q.Tolerance) || !vmath.EqualWithin(q.Position.Z, p.Z, q.Tolerance) {
			continue
		}
		if q.Position.Y < p.Y {
			continue
		}
		if drop := q.Position.Y - p.Y; drop < closest {
			closest = drop
			best = Hit{Spline: s, T: t, Position: p}
			found = true
		}
	}
	return best, found
}

package spline

import (
	"fmt"
	"math"

	"github.com/lixenwraith/rail-walker/vmath"
)

// Spline is an ordered chain of control points joined by cubic segments
// Not safe for concurrent mutation; scenes are authored before walkers run
type Spline struct {
	name        string
	typ         Type
	loop        bool
	points      []*Point
	transitions []*TransitionRegion
}

// New creates an empty spline
func New(name string, typ Type) *Spline {
	return &Spline{name: name, typ: typ}
}

// NewFromPositions creates a spline with one default point per position
func NewFromPositions(name string, typ Type, positions ...vmath.Vec3F) *Spline {
	s := New(name, typ)
	for _, pos := range positions {
		p := NewPoint(pos)
		p.spline = s
		s.points = append(s.points, p)
	}
	s.reindex()
	return s
}

func (s *Spline) Name() string { return s.name }
func (s *Spline) Type() Type   { return s.typ }
func (s *Spline) Loop() bool   { return s.loop }
func (s *Spline) Len() int     { return len(s.points) }

func (s *Spline) SetType(t Type) { s.typ = t }

// SetLoop toggles the closing segment; point t values are recomputed
func (s *Spline) SetLoop(loop bool) {
	s.loop = loop
	s.reindex()
}

// Initialized reports whether the spline has enough points to evaluate
func (s *Spline) Initialized() bool { return len(s.points) >= 2 }

// Validate returns ErrUninitialized when the spline cannot be evaluated
func (s *Spline) Validate() error {
	if !s.Initialized() {
		return fmt.Errorf("%s: %w", s.name, ErrUninitialized)
	}
	return nil
}

// Point returns the point at i, or nil when out of range
func (s *Spline) Point(i int) *Point {
	if i < 0 || i >= len(s.points) {
		return nil
	}
	return s.points[i]
}

// First and Last return the end points; nil on an empty spline
func (s *Spline) First() *Point { return s.Point(0) }
func (s *Spline) Last() *Point  { return s.Point(len(s.points) - 1) }

// Points returns a copy of the point slice
func (s *Spline) Points() []*Point {
	out := make([]*Point, len(s.points))
	copy(out, s.points)
	return out
}

// SegmentCount is the number of cubic segments
func (s *Spline) SegmentCount() int {
	if len(s.points) < 2 {
		return 0
	}
	if s.loop {
		return len(s.points)
	}
	return len(s.points) - 1
}

// Segment returns the curve starting at point i
func (s *Spline) Segment(i int) Curve {
	a := s.points[i]
	b := s.points[(i+1)%len(s.points)]
	return Curve{P0: a.position, C0: a.FollowingHandle(), C1: b.PrecedingHandle(), P1: b.position}
}

// --- Authoring ---

// AddPoint appends p
func (s *Spline) AddPoint(p *Point) error {
	return s.InsertPointAt(len(s.points), p)
}

// Append creates and appends a point at pos
func (s *Spline) Append(pos vmath.Vec3F) *Point {
	p := NewPoint(pos)
	_ = s.AddPoint(p)
	return p
}

// InsertPointAt inserts p before index i; i == Len appends
func (s *Spline) InsertPointAt(i int, p *Point) error {
	if p == nil {
		return s.reject("insert", ErrNilPoint)
	}
	if p.spline != nil {
		return s.reject("insert", ErrPointOwned)
	}
	if i < 0 || i > len(s.points) {
		return s.reject("insert", fmt.Errorf("%w: %d", ErrIndexOutOfRange, i))
	}
	s.points = append(s.points, nil)
	copy(s.points[i+1:], s.points[i:])
	s.points[i] = p
	p.spline = s
	s.reindex()
	return nil
}

// DuplicatePointAt copies the point at i and inserts the copy after it
func (s *Spline) DuplicatePointAt(i int) (*Point, error) {
	if i < 0 || i >= len(s.points) {
		return nil, s.reject("duplicate", fmt.Errorf("%w: %d", ErrIndexOutOfRange, i))
	}
	src := s.points[i]
	cp := *src
	cp.spline = nil
	if err := s.InsertPointAt(i+1, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

// RemovePointAt removes the point at i; a spline never drops below two points
func (s *Spline) RemovePointAt(i int) error {
	if i < 0 || i >= len(s.points) {
		return s.reject("remove", fmt.Errorf("%w: %d", ErrIndexOutOfRange, i))
	}
	if len(s.points) <= 2 {
		return s.reject("remove", ErrTooFewPoints)
	}
	p := s.points[i]
	s.points = append(s.points[:i], s.points[i+1:]...)
	p.spline = nil
	p.index = -1
	s.reindex()
	return nil
}

// SwapPoints exchanges the points at i and j
func (s *Spline) SwapPoints(i, j int) error {
	if i < 0 || i >= len(s.points) || j < 0 || j >= len(s.points) {
		return s.reject("swap", fmt.Errorf("%w: %d,%d", ErrIndexOutOfRange, i, j))
	}
	s.points[i], s.points[j] = s.points[j], s.points[i]
	s.reindex()
	return nil
}

// MovePoint moves the point at from so it ends up at index to
func (s *Spline) MovePoint(from, to int) error {
	if from < 0 || from >= len(s.points) || to < 0 || to >= len(s.points) {
		return s.reject("move", fmt.Errorf("%w: %d->%d", ErrIndexOutOfRange, from, to))
	}
	if from == to {
		return nil
	}
	p := s.points[from]
	s.points = append(s.points[:from], s.points[from+1:]...)
	s.points = append(s.points, nil)
	copy(s.points[to+1:], s.points[to:])
	s.points[to] = p
	s.reindex()
	return nil
}

// reindex refreshes point indices and normalized positions
func (s *Spline) reindex() {
	n := len(s.points)
	div := float64(n - 1)
	if s.loop {
		div = float64(n)
	}
	for i, p := range s.points {
		p.index = i
		if div <= 0 {
			p.t = 0
			continue
		}
		p.t = vmath.Clamp01(float64(i) / div)
	}
}

func (s *Spline) reject(op string, err error) error {
	Logger().Warn("spline edit rejected", "spline", s.name, "op", op, "error", err)
	return err
}

// locate maps a normalized t to a segment index and local parameter
func (s *Spline) locate(t float64) (int, float64) {
	n := s.SegmentCount()
	if s.loop {
		t = vmath.Repeat(t, 1)
	} else {
		if t <= 0 {
			return 0, 0
		}
		if t >= 1 {
			return n - 1, 1
		}
	}
	x := t * float64(n)
	seg := int(math.Floor(x))
	if seg >= n {
		seg = n - 1
	}
	return seg, x - float64(seg)
}

// PointIndicesAt returns the segment end point indices around t and the local parameter
func (s *Spline) PointIndicesAt(t float64) (start, end int, u float64) {
	if !s.Initialized() {
		return 0, 0, 0
	}
	seg, u := s.locate(t)
	return seg, (seg + 1) % len(s.points), u
}

func (s *Spline) String() string {
	return fmt.Sprintf("%s(%s, %d points)", s.name, s.typ, len(s.points))
}

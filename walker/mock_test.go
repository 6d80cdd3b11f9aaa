package walker

import (
	"testing"

	"github.com/lixenwraith/rail-walker/event"
	"github.com/lixenwraith/rail-walker/spline"
	"github.com/lixenwraith/rail-walker/vmath"
)

// MockInput is a scripted input; edge flags are cleared after each tick by step
type MockInput struct {
	H, V                    float64
	Started, Held, Stopped  bool
	JumpDown, JumpUp        bool
	Up, Down, ActionRelease bool
}

func (m *MockInput) Horizontal() float64  { return m.H }
func (m *MockInput) Vertical() float64    { return m.V }
func (m *MockInput) MoveStarted() bool    { return m.Started }
func (m *MockInput) Moving() bool         { return m.Held }
func (m *MockInput) MoveStopped() bool    { return m.Stopped }
func (m *MockInput) JumpPressed() bool    { return m.JumpDown }
func (m *MockInput) JumpReleased() bool   { return m.JumpUp }
func (m *MockInput) ActionUp() bool       { return m.Up }
func (m *MockInput) ActionDown() bool     { return m.Down }
func (m *MockInput) ActionReleased() bool { return m.ActionRelease }

func (m *MockInput) clearEdges() {
	m.Started, m.Stopped = false, false
	m.JumpDown, m.JumpUp = false, false
	m.Up, m.Down, m.ActionRelease = false, false, false
}

// eventLog records pushed events
type eventLog struct {
	events []event.WalkerEvent
}

func (l *eventLog) Push(ev event.WalkerEvent) { l.events = append(l.events, ev) }

func (l *eventLog) count(et event.EventType) int {
	n := 0
	for _, ev := range l.events {
		if ev.Type == et {
			n++
		}
	}
	return n
}

// rig bundles a walker with its body and collaborators
type rig struct {
	w      *Walker
	body   *KinematicBody
	roller *SlopeRoller
	log    *eventLog
	in     *MockInput
}

const dt = 1.0 / 60

func v3(x, y, z float64) vmath.Vec3F { return vmath.Vec3F{X: x, Y: y, Z: z} }

// line returns a constant-speed spline through evenly spaced collinear points
func line(name string, typ spline.Type, positions ...vmath.Vec3F) *spline.Spline {
	s := spline.NewFromPositions(name, typ, positions...)
	s.AutoConstruct()
	return s
}

func registry(t *testing.T, splines ...*spline.Spline) *spline.Registry {
	t.Helper()
	reg := spline.NewRegistry()
	for _, s := range splines {
		if err := reg.Register(s); err != nil {
			t.Fatalf("Register %s: %v", s.Name(), err)
		}
	}
	return reg
}

func newRig(t *testing.T, reg *spline.Registry, sp *spline.Spline, at float64) *rig {
	t.Helper()
	r := &rig{
		body:   NewKinematicBody(sp.PositionAt(at)),
		roller: NewSlopeRoller(),
		log:    &eventLog{},
		in:     &MockInput{},
	}
	w, err := New(reg, sp, at, r.body, DefaultProfile(), WithRoller(r.roller), WithEvents(r.log))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.w = w
	return r
}

// step runs one tick in frame order: roller, walker, body consolidation
func (r *rig) step(d float64) {
	r.roller.Update(r.w, d)
	r.w.Tick(d, r.in)
	r.body.Step()
	r.in.clearEdges()
}

func (r *rig) run(ticks int) {
	for i := 0; i < ticks; i++ {
		r.step(dt)
	}
}

// runUntil ticks until cond holds or limit is reached; reports whether cond held
func (r *rig) runUntil(limit int, cond func() bool) bool {
	for i := 0; i < limit; i++ {
		if cond() {
			return true
		}
		r.step(dt)
	}
	return cond()
}

func holdMove(in *MockInput, h float64) {
	in.H = h
	in.Started = true
	in.Held = true
}

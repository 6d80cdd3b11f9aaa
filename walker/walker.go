package walker

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/rail-walker/event"
	"github.com/lixenwraith/rail-walker/parameter"
	"github.com/lixenwraith/rail-walker/spline"
	"github.com/lixenwraith/rail-walker/vmath"
)

var (
	// ErrNilRegistry, ErrNilSpline and ErrNilBody are returned by New for missing collaborators
	ErrNilRegistry = errors.New("walker: nil registry")
	ErrNilSpline   = errors.New("walker: nil spline")
	ErrNilBody     = errors.New("walker: nil body")
)

// Walker moves a body along a network of splines
// A walker is driven from one goroutine; Tick is not safe for concurrent use
type Walker struct {
	reg     *spline.Registry
	body    Body
	roller  Roller
	profile Profile
	sink    event.Sink

	sp      *spline.Spline
	t       float64
	forward bool
	mode    Mode
	dt      float64
	tick    uint64

	// reversed is set while the current spline runs against the input axis
	reversed bool

	// Speeds
	moveSpeed    float64
	finalSpeed   float64
	atMaxSpeed   bool
	timeMoving   float64
	slideSpeed   float64
	wallSlide    float64
	wallStick    float64
	airAccel     float64
	airMoveSpeed float64
	airMoveLimit float64

	firstAirDirection bool
	firstContact      bool
	wallJumping       bool

	// Surface
	target       vmath.Vec3F
	groundHeight float64
	incline      float64
	forwardUp    bool

	// Wall
	towardsWall     bool
	oppositeWall    *spline.Point
	oppositeLinked  *spline.Point
	previous        *spline.Spline
	lastWalkable    *spline.Spline
	doNotSwitchTo   *spline.Spline
	switchesThisRun int

	// Transitions
	available    []*spline.TransitionRegion
	inTransition bool
	transition   *transitionTask
	before       *spline.Spline
	beforeT      float64
	current      *spline.TransitionRegion

	warnings int
}

// Option configures a Walker at construction
type Option func(*Walker)

// WithRoller attaches the companion that performs landing rolls
func WithRoller(r Roller) Option { return func(w *Walker) { w.roller = r } }

// WithEvents sends walker events to sink
func WithEvents(sink event.Sink) Option { return func(w *Walker) { w.sink = sink } }

// WithForward sets the initial facing
func WithForward(forward bool) Option { return func(w *Walker) { w.forward = forward } }

// New places a walker on sp at t and snaps the body onto the spline
func New(reg *spline.Registry, sp *spline.Spline, t float64, body Body, profile Profile, opts ...Option) (*Walker, error) {
	switch {
	case reg == nil:
		return nil, ErrNilRegistry
	case sp == nil:
		return nil, ErrNilSpline
	case body == nil:
		return nil, ErrNilBody
	}
	if err := sp.Validate(); err != nil {
		return nil, fmt.Errorf("walker: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	w := &Walker{
		reg:       reg,
		body:      body,
		profile:   profile,
		sp:        sp,
		t:         vmath.Clamp01(t),
		forward:   true,
		moveSpeed: profile.BaseSpeed,
	}
	for _, opt := range opts {
		opt(w)
	}
	if sp.Type() != spline.Wall {
		w.lastWalkable = sp
	}

	w.setTarget(sp.PositionAt(w.t))
	w.incline, w.forwardUp = sp.InclineAt(w.t)
	body.Place(w.target, w.target.Y, true)
	w.refreshTransitions()
	return w, nil
}

// Tick advances the walker by dt seconds using the input state for this tick
func (w *Walker) Tick(dt float64, in Input) {
	if in == nil {
		in = NoInput{}
	}
	w.dt = dt
	w.tick++

	w.handleInput(in)
	w.stepTransition()
	w.handleMovements()
	w.calculateNewPosition()
	w.contactGround()
	w.refreshTransitions()

	w.finalSpeed = 0
}

// State is a read-only snapshot of a walker
type State struct {
	Tick         uint64
	Spline       string
	SplineType   spline.Type
	T            float64
	Forward      bool
	Mode         Mode
	InTransition bool
	Speed        float64
	MoveSpeed    float64
	GroundHeight float64
	Incline      float64
	Position     vmath.Vec3F
	Warnings     int
}

// State returns the current snapshot
func (w *Walker) State() State {
	return State{
		Tick:         w.tick,
		Spline:       w.sp.Name(),
		SplineType:   w.sp.Type(),
		T:            w.t,
		Forward:      w.forward,
		Mode:         w.mode,
		InTransition: w.inTransition,
		Speed:        w.lastSpeed(),
		MoveSpeed:    w.moveSpeed,
		GroundHeight: w.groundHeight,
		Incline:      w.incline,
		Position:     w.body.Position(),
		Warnings:     w.warnings,
	}
}

func (w *Walker) Spline() *spline.Spline { return w.sp }
func (w *Walker) T() float64             { return w.t }
func (w *Walker) Forward() bool          { return w.forward }
func (w *Walker) Mode() Mode             { return w.mode }
func (w *Walker) InTransition() bool     { return w.inTransition }
func (w *Walker) GroundHeight() float64  { return w.groundHeight }
func (w *Walker) Target() vmath.Vec3F    { return w.target }
func (w *Walker) Incline() float64       { return w.incline }
func (w *Walker) AtMaxSpeed() bool       { return w.atMaxSpeed }
func (w *Walker) Profile() Profile       { return w.profile }

// Warnings counts recovered geometric failures such as missed intersections
func (w *Walker) Warnings() int { return w.warnings }

// AvailableTransitions returns the regions containing the current t
func (w *Walker) AvailableTransitions() []*spline.TransitionRegion {
	out := make([]*spline.TransitionRegion, len(w.available))
	copy(out, w.available)
	return out
}

// MovingForward reports whether this tick's motion increases t
func (w *Walker) MovingForward() bool {
	return (w.finalSpeed > 0) == w.forward
}

// lastSpeed is the horizontal speed the walker is currently applying
func (w *Walker) lastSpeed() float64 {
	switch w.mode {
	case Airborne:
		return w.airMoveSpeed
	case SlopeSliding:
		return w.slideSpeed
	case WallSliding:
		return w.wallSlide
	case WallHanging:
		return 0
	}
	return w.moveSpeed
}

func (w *Walker) setTarget(pos vmath.Vec3F) {
	w.target = pos
	w.groundHeight = pos.Y
}

func (w *Walker) setMode(m Mode) {
	if w.mode == m {
		return
	}
	Logger().Debug("walker mode", "from", w.mode, "to", m, "spline", w.sp.Name(), "t", w.t)
	w.mode = m
}

func (w *Walker) rolling() bool {
	return w.roller != nil && w.roller.Rolling()
}

func (w *Walker) refreshTransitions() {
	w.available = w.sp.TransitionsAt(w.available[:0], w.t)
}

func (w *Walker) emit(et event.EventType) {
	if w.sink == nil {
		return
	}
	w.sink.Push(event.WalkerEvent{
		Type:     et,
		Tick:     w.tick,
		Spline:   w.sp.Name(),
		T:        w.t,
		Position: w.target,
		Speed:    w.lastSpeed(),
	})
}

// groundEpsilon is the height above ground still counted as standing
const groundEpsilon = parameter.GroundEpsilon

package walker

import "github.com/lixenwraith/rail-walker/vmath"

// Input is polled once per tick
// Edge methods report transitions since the previous tick; level methods report held state
type Input interface {
	// Horizontal and Vertical are axis values in [-1,1]
	Horizontal() float64
	Vertical() float64

	MoveStarted() bool
	Moving() bool
	MoveStopped() bool

	JumpPressed() bool
	JumpReleased() bool

	ActionUp() bool
	ActionDown() bool
	ActionReleased() bool
}

// Body receives placement requests and reports where the walker actually is
// Position is the applied position; FinalPosition is the pending target including
// height offsets requested this tick
type Body interface {
	// Place moves the body to target horizontally; the height is the target's when
	// onGround is set, otherwise the body keeps a pending height above previousGround
	Place(target vmath.Vec3F, previousGround float64, onGround bool)
	SnapToGround(height float64)
	AddHeightOffset(dy float64)
	Position() vmath.Vec3F
	FinalPosition() vmath.Vec3F
}

// Roller is the companion behaviour that performs landing rolls
type Roller interface {
	CanRoll() bool
	Rolling() bool
	StartRoll(speed float64, forward bool)
}

// RollTarget is what a roller drives while rolling
type RollTarget interface {
	SetRollSpeed(speed float64, forward bool)
}

// NoInput is an Input with nothing pressed
type NoInput struct{}

func (NoInput) Horizontal() float64  { return 0 }
func (NoInput) Vertical() float64    { return 0 }
func (NoInput) MoveStarted() bool    { return false }
func (NoInput) Moving() bool         { return false }
func (NoInput) MoveStopped() bool    { return false }
func (NoInput) JumpPressed() bool    { return false }
func (NoInput) JumpReleased() bool   { return false }
func (NoInput) ActionUp() bool       { return false }
func (NoInput) ActionDown() bool     { return false }
func (NoInput) ActionReleased() bool { return false }

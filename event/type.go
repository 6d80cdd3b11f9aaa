package event

import "github.com/lixenwraith/rail-walker/vmath"

// EventType represents the type of walker event
type EventType int

const (
	// EventJump fires when a jump impulse is applied
	// Trigger: Walker.Jump | Consumer: audio cues, telemetry
	EventJump EventType = iota + 1

	// EventLand fires on the first grounded tick after being airborne
	// Trigger: air status update | Consumer: audio cues, telemetry
	EventLand

	// EventSlideStart fires when the walker starts sliding down a steep slope
	// Trigger: ground contact, stopping on a steep slope
	EventSlideStart

	// EventRollStart fires when landing on a rollable incline starts a roll
	// Trigger: ground contact with a Roller that can roll
	EventRollStart

	// EventWallHang fires when the walker sticks to a wall
	EventWallHang

	// EventWallSlide fires when the stick timer runs out and the walker slides down the wall
	EventWallSlide

	// EventSplineSwitch fires whenever the active spline changes
	// Spline holds the new spline name
	EventSplineSwitch

	// EventTransitionStart fires when a transition region is triggered
	EventTransitionStart

	// EventTransitionEnd fires when a transition or its cancellation completes
	EventTransitionEnd

	// EventTransitionCancel fires when a running transition is reversed
	EventTransitionCancel

	// EventIntersectionMiss fires when an air-to-ground descent found no intersection
	// The walker falls back to the sampled spline point; counted as a warning
	EventIntersectionMiss

	eventTypeEnd
)

// MaxEventTypes sizes arrays indexed by EventType
const MaxEventTypes = int(eventTypeEnd)

// WalkerEvent is one occurrence emitted by a walker
type WalkerEvent struct {
	Type     EventType
	Tick     uint64
	Spline   string
	T        float64
	Position vmath.Vec3F
	Speed    float64
}

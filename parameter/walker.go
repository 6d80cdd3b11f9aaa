package parameter

// Walker speeds, in units per second
const (
	WalkerBaseSpeed = 3.0
	WalkerRunSpeed  = 4.5

	// WalkerRunWindupTime is the time moving before acceleration toward run speed starts
	WalkerRunWindupTime = 0.75

	// WalkerRunAccelerationTime is the time to go from base to run speed after windup
	WalkerRunAccelerationTime = 2.25
)

// Walker air control, as multipliers of base speed
const (
	WalkerAirFrictionModifier = 1.8
	WalkerAirMoveModifier     = 0.8
	WalkerAirBoostModifier    = 0.7
)

// Walker jump and gravity
const (
	WalkerStandardJumpHeight = 2.0
	WalkerMaxJumpHeight      = 2.5
	WalkerGravity            = 30.0
	WalkerTerminalVelocity   = 10.0
)

// Walker incline thresholds, in degrees
const (
	WalkerMinRollAngle     = 25.0
	WalkerMinRunnableAngle = 50.0
	WalkerMaxRunnableAngle = 70.0
)

// Walker wall and slope behaviour
const (
	// WalkerWallStickDuration is how long the walker hangs before sliding down a wall
	WalkerWallStickDuration = 0.5

	WalkerWallSlideAcceleration = 1.0
	WalkerSlideAcceleration     = 2.0

	// WalkerRollTime is how long a roll drives the walker after contact
	WalkerRollTime = 1.0
)

const (
	// GroundEpsilon is the height above ground still counted as grounded
	GroundEpsilon = 1e-4

	// MaxSwitchesPerTick bounds chained terminus switches while re-applying overshoot
	MaxSwitchesPerTick = 4
)

package parameter

import "time"

// Loop timing
const (
	// TickRate is the logic update frequency of the sandbox loop
	TickRate = 60

	// TickInterval is the logic step duration
	TickInterval = time.Second / TickRate

	// PhysicsRate is the fixed-step rate at which bodies consolidate pending placement
	PhysicsRate = 50

	// PhysicsInterval is the body consolidation step duration
	PhysicsInterval = time.Second / PhysicsRate

	// MaxPhysicsStepsPerFrame bounds accumulator catch-up after a stall
	MaxPhysicsStepsPerFrame = 5
)

// Event queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Trace recorder
const (
	// TraceBatchSize is the number of buffered rows flushed per transaction
	TraceBatchSize = 120
)

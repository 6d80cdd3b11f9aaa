package parameter

import "time"

// Terminal input
const (
	// KeyHoldTimeout is how long a control key counts as held after its last press
	// Terminals report presses and auto-repeats only, so release is inferred from silence
	KeyHoldTimeout = 500 * time.Millisecond
)

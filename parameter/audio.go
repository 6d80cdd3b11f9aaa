package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioDefaultVolume is the linear master gain in [0,1]
	AudioDefaultVolume = 0.5

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue envelope timing
const (
	CueShort  = 60 * time.Millisecond
	CueMedium = 120 * time.Millisecond
	CueAttack = 5 * time.Millisecond
)

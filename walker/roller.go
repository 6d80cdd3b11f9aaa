package walker

import "github.com/lixenwraith/rail-walker/parameter"

// SlopeRoller rolls the walker for a fixed duration after landing on a gentle incline
// Update must run before the walker's Tick so the roll speed applies that tick
type SlopeRoller struct {
	Duration float64

	rolling bool
	speed   float64
	forward bool
	elapsed float64
}

func NewSlopeRoller() *SlopeRoller {
	return &SlopeRoller{Duration: parameter.WalkerRollTime}
}

// CanRoll is always true; a roll in progress ignores new requests
func (r *SlopeRoller) CanRoll() bool { return true }

func (r *SlopeRoller) Rolling() bool { return r.rolling }

func (r *SlopeRoller) StartRoll(speed float64, forward bool) {
	if r.rolling {
		return
	}
	r.rolling = true
	r.speed = speed
	r.forward = forward
	r.elapsed = 0
}

// Update drives target while rolling and ends the roll after Duration
func (r *SlopeRoller) Update(target RollTarget, dt float64) {
	if !r.rolling {
		return
	}
	target.SetRollSpeed(r.speed, r.forward)
	r.elapsed += dt
	if r.elapsed >= r.Duration {
		r.rolling = false
	}
}

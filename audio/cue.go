package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/rail-walker/event"
	"github.com/lixenwraith/rail-walker/parameter"
)

// Cue is a sequence of tones played for one event type
type Cue []Tone

// Streamer renders the tones back to back; nil for an empty cue
func (c Cue) Streamer(rate beep.SampleRate, volume float64) beep.Streamer {
	if len(c) == 0 {
		return nil
	}
	parts := make([]beep.Streamer, len(c))
	for i, t := range c {
		parts[i] = t.Streamer(rate, volume)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return beep.Seq(parts...)
}

// Duration is the summed length of the cue's tones
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, t := range c {
		d += t.Duration
	}
	return d
}

const (
	short  = parameter.CueShort
	medium = parameter.CueMedium
	attack = parameter.CueAttack
)

// DefaultCues maps movement events to short synthesized tones
// Events without an entry play nothing
func DefaultCues() map[event.EventType]Cue {
	return map[event.EventType]Cue{
		// Rising two-note chirp
		event.EventJump: {
			{Freq: 523.25, Duration: short, Wave: WaveSquare, Attack: attack, Release: 30 * time.Millisecond, Gain: 0.4},
			{Freq: 783.99, Duration: short, Wave: WaveSquare, Attack: attack, Release: 40 * time.Millisecond, Gain: 0.4},
		},
		event.EventLand: {
			{Freq: 110, Duration: 80 * time.Millisecond, Wave: WaveSine, Attack: attack, Release: 60 * time.Millisecond, Gain: 0.8},
		},
		event.EventSlideStart: {
			{Duration: 200 * time.Millisecond, Wave: WaveNoise, Attack: 40 * time.Millisecond, Release: 120 * time.Millisecond, Gain: 0.25},
		},
		event.EventRollStart: {
			{Freq: 196, Duration: medium, Wave: WaveSaw, Attack: attack, Release: 80 * time.Millisecond, Gain: 0.3},
		},
		event.EventWallHang: {
			{Freq: 329.63, Duration: short, Wave: WaveSine, Attack: attack, Release: 40 * time.Millisecond, Gain: 0.5},
		},
		event.EventWallSlide: {
			{Duration: 150 * time.Millisecond, Wave: WaveNoise, Attack: 20 * time.Millisecond, Release: 100 * time.Millisecond, Gain: 0.2},
		},
		event.EventTransitionStart: {
			{Freq: 659.25, Duration: short, Wave: WaveSine, Attack: attack, Release: 30 * time.Millisecond, Gain: 0.4},
			{Freq: 880, Duration: medium, Wave: WaveSine, Attack: attack, Release: 80 * time.Millisecond, Gain: 0.4},
		},
		event.EventTransitionCancel: {
			{Freq: 880, Duration: short, Wave: WaveSine, Attack: attack, Release: 30 * time.Millisecond, Gain: 0.4},
			{Freq: 659.25, Duration: medium, Wave: WaveSine, Attack: attack, Release: 80 * time.Millisecond, Gain: 0.4},
		},
		// Low buzz so a landing fallback is audible while tuning scenes
		event.EventIntersectionMiss: {
			{Freq: 100, Duration: 150 * time.Millisecond, Wave: WaveSaw, Attack: attack, Release: 50 * time.Millisecond, Gain: 0.6},
		},
	}
}

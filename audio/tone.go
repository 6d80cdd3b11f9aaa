package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Wave selects an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone is one enveloped note of a cue
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
	Attack   time.Duration
	Release  time.Duration
	Gain     float64
}

// Streamer renders t at rate, scaled by volume
// A tone the generators reject (frequency at or above Nyquist) renders as silence
func (t Tone) Streamer(rate beep.SampleRate, volume float64) beep.Streamer {
	n := rate.N(t.Duration)
	src, err := t.source(rate)
	if err != nil {
		src = beep.Silence(-1)
	}
	shaped := newEnvelope(beep.Take(n, src), n, rate.N(t.Attack), rate.N(t.Release))
	gain := t.Gain
	if gain == 0 {
		gain = 1
	}
	return withVolume(shaped, gain*volume)
}

// source returns an unbounded oscillator for the tone's wave
func (t Tone) source(rate beep.SampleRate) (beep.Streamer, error) {
	switch t.Wave {
	case WaveSquare:
		return generators.SquareTone(rate, t.Freq)
	case WaveSaw:
		return generators.SawtoothTone(rate, t.Freq)
	case WaveNoise:
		return noise{}, nil
	}
	return generators.SineTone(rate, t.Freq)
}

// noise is an endless white noise source
type noise struct{}

func (noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := rand.Float64()*2 - 1
		samples[i][0], samples[i][1] = v, v
	}
	return len(samples), true
}

func (noise) Err() error { return nil }

// envelope ramps the wrapped streamer in over attack samples and out over release samples
type envelope struct {
	src     beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

func newEnvelope(src beep.Streamer, total, attack, release int) *envelope {
	return &envelope{src: src, total: total, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.src.Stream(samples)
	releaseAt := e.total - e.release
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if e.release > 0 && e.pos >= releaseAt {
			gain = math.Max(float64(e.total-e.pos)/float64(e.release), 0)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.src.Err() }

// withVolume wraps s in a linear gain; gain <= 0 is silent since log2(0) is -Inf
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

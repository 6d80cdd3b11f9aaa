package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/rail-walker/event"
	"github.com/lixenwraith/rail-walker/parameter"
)

// Player plays a cue for each walker event it receives
// Until Init succeeds, and while muted, Push is a no-op
type Player struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	cues        map[event.EventType]Cue
	initialized bool
	muted       atomic.Bool

	played  atomic.Uint64
	skipped atomic.Uint64
}

func NewPlayer(cfg Config) *Player {
	return &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
		cues:  DefaultCues(),
	}
}

// Init opens the speaker and starts the mixer; disabled configs stay silent
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close drops all playing cues
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// SetCue replaces the cue for et; an empty cue silences it
func (p *Player) SetCue(et event.EventType, c Cue) {
	p.mu.Lock()
	p.cues[et] = c
	p.mu.Unlock()
}

// Render returns the streamer Push would play for et, or nil
func (p *Player) Render(et event.EventType) beep.Streamer {
	p.mu.Lock()
	c := p.cues[et]
	p.mu.Unlock()
	return c.Streamer(p.rate, p.cfg.MasterVolume)
}

// Push implements event.Sink
func (p *Player) Push(ev event.WalkerEvent) {
	p.mu.Lock()
	ready := p.initialized
	p.mu.Unlock()
	if !ready || p.muted.Load() {
		p.skipped.Add(1)
		return
	}

	s := p.Render(ev.Type)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played.Add(1)
}

// ToggleMute flips mute and returns the new state
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (p *Player) Muted() bool { return p.muted.Load() }

// Stats returns played and skipped cue counts
func (p *Player) Stats() (played, skipped uint64) {
	return p.played.Load(), p.skipped.Load()
}

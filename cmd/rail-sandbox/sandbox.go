package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rail-walker/audio"
	"github.com/lixenwraith/rail-walker/event"
	"github.com/lixenwraith/rail-walker/input"
	"github.com/lixenwraith/rail-walker/parameter"
	"github.com/lixenwraith/rail-walker/scene"
	"github.com/lixenwraith/rail-walker/status"
	"github.com/lixenwraith/rail-walker/trace"
	"github.com/lixenwraith/rail-walker/walker"
)

// sandbox owns one walker on a scene and everything that observes it
type sandbox struct {
	scene   *scene.Scene
	profile walker.Profile

	body   *walker.KinematicBody
	roller *walker.SlopeRoller
	walker *walker.Walker

	machine   *input.Machine
	queue     *event.EventQueue
	telemetry *status.Telemetry
	sinks     []event.Sink

	// Optional; nil when disabled
	player   *audio.Player
	recorder *trace.Recorder

	physicsAcc time.Duration
}

func newSandbox(sc *scene.Scene, profile walker.Profile, machine *input.Machine) (*sandbox, error) {
	s := &sandbox{
		scene:     sc,
		profile:   profile,
		machine:   machine,
		queue:     event.NewEventQueue(),
		telemetry: status.NewTelemetry(status.NewRegistry()),
	}
	s.sinks = append(s.sinks, s.telemetry)
	if err := s.spawn(); err != nil {
		return nil, err
	}
	return s, nil
}

// attachPlayer routes events to audio cues
func (s *sandbox) attachPlayer(p *audio.Player) {
	s.player = p
	s.sinks = append(s.sinks, p)
}

// attachRecorder records every tick and event
func (s *sandbox) attachRecorder(r *trace.Recorder) {
	s.recorder = r
	s.sinks = append(s.sinks, r)
}

// spawn places a fresh walker at the scene's spawn point
func (s *sandbox) spawn() error {
	sc := s.scene
	s.body = walker.NewKinematicBody(sc.Spawn.PositionAt(sc.SpawnT))
	s.roller = walker.NewSlopeRoller()
	w, err := walker.New(sc.Registry, sc.Spawn, sc.SpawnT, s.body, s.profile,
		walker.WithRoller(s.roller),
		walker.WithEvents(s.queue),
		walker.WithForward(sc.Forward),
	)
	if err != nil {
		return err
	}
	s.body.Step()
	s.walker = w
	s.physicsAcc = 0
	s.machine.Reset()
	log.Printf("spawned on %s at t=%.3f", sc.Spawn.Name(), sc.SpawnT)
	return nil
}

// handleKey feeds a key to the input machine and applies system actions
// Returns true when the sandbox should exit
func (s *sandbox) handleKey(ev *tcell.EventKey, now time.Time, v *view) bool {
	switch s.machine.HandleEvent(ev, now) {
	case input.ActionQuit:
		return true
	case input.ActionToggleMute:
		if s.player != nil {
			log.Printf("audio muted: %v", s.player.ToggleMute())
		}
	case input.ActionToggleHUD:
		if v != nil {
			v.showHUD = !v.showHUD
		}
	case input.ActionRespawn:
		if err := s.spawn(); err != nil {
			log.Printf("respawn failed: %v", err)
		}
	}
	return false
}

// tick runs one logic step of dt, then consolidates the body at the physics rate
func (s *sandbox) tick(now time.Time, dt time.Duration) error {
	sec := dt.Seconds()
	in := s.machine.Frame(now)
	s.roller.Update(s.walker, sec)
	s.walker.Tick(sec, in)

	s.physicsAcc += dt
	steps := 0
	for s.physicsAcc >= parameter.PhysicsInterval {
		if steps == parameter.MaxPhysicsStepsPerFrame {
			// Drop the backlog after a stall
			s.physicsAcc = 0
			break
		}
		s.body.Step()
		s.physicsAcc -= parameter.PhysicsInterval
		steps++
	}

	st := s.walker.State()
	s.telemetry.Observe(st)
	for _, ev := range s.queue.Consume() {
		for _, sink := range s.sinks {
			sink.Push(ev)
		}
	}
	if s.recorder != nil {
		return s.recorder.Record(st)
	}
	return nil
}

// hud returns the status lines for the overlay
func (s *sandbox) hud() []string {
	lines := s.telemetry.Registry().Lines()
	if s.player != nil {
		played, skipped := s.player.Stats()
		lines = append(lines, "audio: "+muteLabel(s.player.Muted()), "audio.played: "+itoa(played), "audio.skipped: "+itoa(skipped))
	}
	if d := s.queue.Dropped(); d > 0 {
		lines = append(lines, "event.dropped: "+itoa(d))
	}
	return lines
}

func muteLabel(muted bool) string {
	if muted {
		return "muted"
	}
	return "on"
}

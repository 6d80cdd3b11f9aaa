package status

import (
	"sync/atomic"

	"github.com/lixenwraith/rail-walker/event"
	"github.com/lixenwraith/rail-walker/walker"
)

// Metric keys written by Telemetry
const (
	KeySpline       = "walker.spline"
	KeyMode         = "walker.mode"
	KeyT            = "walker.t"
	KeySpeed        = "walker.speed"
	KeyPeakSpeed    = "walker.speed_peak"
	KeyHeight       = "walker.height"
	KeyIncline      = "walker.incline"
	KeyTick         = "walker.tick"
	KeyWarnings     = "walker.warnings"
	KeyForward      = "walker.forward"
	KeyInTransition = "walker.in_transition"
	eventKeyPrefix  = "event."
)

// Telemetry mirrors walker snapshots and event counts into a Registry
// Observe runs once per tick; Push makes Telemetry an event.Sink
type Telemetry struct {
	reg *Registry

	spline, mode           *AtomicString
	t, speed, peak, height *AtomicFloat
	incline                *AtomicFloat
	tick, warnings         *atomic.Int64
	forward, inTransition  *atomic.Bool
	events                 [event.MaxEventTypes]*atomic.Int64
}

func NewTelemetry(reg *Registry) *Telemetry {
	tm := &Telemetry{
		reg:          reg,
		spline:       reg.Strings.Get(KeySpline),
		mode:         reg.Strings.Get(KeyMode),
		t:            reg.Floats.Get(KeyT),
		speed:        reg.Floats.Get(KeySpeed),
		peak:         reg.Floats.Get(KeyPeakSpeed),
		height:       reg.Floats.Get(KeyHeight),
		incline:      reg.Floats.Get(KeyIncline),
		tick:         reg.Ints.Get(KeyTick),
		warnings:     reg.Ints.Get(KeyWarnings),
		forward:      reg.Bools.Get(KeyForward),
		inTransition: reg.Bools.Get(KeyInTransition),
	}
	for _, et := range event.AllTypes() {
		tm.events[et] = reg.Ints.Get(eventKeyPrefix + event.GetEventName(et))
	}
	return tm
}

// Registry returns the backing metric registry
func (tm *Telemetry) Registry() *Registry { return tm.reg }

// Observe records the latest walker snapshot
func (tm *Telemetry) Observe(st walker.State) {
	tm.spline.Store(st.Spline)
	tm.mode.Store(st.Mode.String())
	tm.t.Set(st.T)
	tm.speed.Set(st.Speed)
	tm.peak.StoreMax(st.Speed)
	tm.height.Set(st.Position.Y)
	tm.incline.Set(st.Incline)
	tm.tick.Store(int64(st.Tick))
	tm.warnings.Store(int64(st.Warnings))
	tm.forward.Store(st.Forward)
	tm.inTransition.Store(st.InTransition)
}

// Push counts ev under "event.<name>"
func (tm *Telemetry) Push(ev event.WalkerEvent) {
	if ev.Type <= 0 || int(ev.Type) >= len(tm.events) {
		return
	}
	tm.events[ev.Type].Add(1)
}

// EventCount returns how many events of type et were pushed
func (tm *Telemetry) EventCount(et event.EventType) int64 {
	if et <= 0 || int(et) >= len(tm.events) {
		return 0
	}
	return tm.events[et].Load()
}

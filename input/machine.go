package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rail-walker/parameter"
	"github.com/lixenwraith/rail-walker/walker"
)

// Machine turns terminal key events into per-tick walker input
// Terminals deliver presses and auto-repeats but no releases, so a control stays
// held until no press of it has arrived for the hold timeout
type Machine struct {
	keyTable *KeyTable
	hold     time.Duration

	lastPress [controlCount]time.Time
	edge      [controlCount]bool

	// Held state seen by the previous Frame
	wasMoving  bool
	wasJumping bool
	wasAction  bool
}

// NewMachine creates a machine with the default key table
func NewMachine() *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
		hold:     parameter.KeyHoldTimeout,
	}
}

// SetKeyTable replaces the active bindings
func (m *Machine) SetKeyTable(kt *KeyTable) {
	m.keyTable = kt
}

// SetHoldTimeout overrides the release inference window
func (m *Machine) SetHoldTimeout(d time.Duration) {
	m.hold = d
}

// Reset releases every control without reporting edges
func (m *Machine) Reset() {
	m.lastPress = [controlCount]time.Time{}
	m.edge = [controlCount]bool{}
	m.wasMoving, m.wasJumping, m.wasAction = false, false, false
}

// HandleEvent processes a tcell key event
func (m *Machine) HandleEvent(ev *tcell.EventKey, now time.Time) Action {
	return m.HandleKey(ev.Key(), ev.Rune(), now)
}

// HandleKey records a key press and returns the bound action
// Controls are absorbed into held state; the caller handles system actions
func (m *Machine) HandleKey(key tcell.Key, r rune, now time.Time) Action {
	a := m.keyTable.Lookup(key, r)
	if !a.Control() {
		return a
	}
	if !m.held(a, now) {
		m.edge[a] = true
	}
	m.lastPress[a] = now

	// Opposite directions cancel the stale one so a quick reversal does not stall
	switch a {
	case ActionLeft:
		m.lastPress[ActionRight] = time.Time{}
	case ActionRight:
		m.lastPress[ActionLeft] = time.Time{}
	case ActionUp:
		m.lastPress[ActionDown] = time.Time{}
	case ActionDown:
		m.lastPress[ActionUp] = time.Time{}
	}
	return a
}

func (m *Machine) held(a Action, now time.Time) bool {
	last := m.lastPress[a]
	return !last.IsZero() && now.Sub(last) <= m.hold
}

// Frame samples input for one tick and clears press edges
func (m *Machine) Frame(now time.Time) Snapshot {
	var s Snapshot
	if m.held(ActionLeft, now) {
		s.horizontal--
	}
	if m.held(ActionRight, now) {
		s.horizontal++
	}
	if m.held(ActionUp, now) {
		s.vertical++
	}
	if m.held(ActionDown, now) {
		s.vertical--
	}

	moving := s.horizontal != 0
	s.moving = moving
	s.moveStarted = moving && !m.wasMoving
	s.moveStopped = !moving && m.wasMoving
	m.wasMoving = moving

	jumping := m.held(ActionJump, now)
	s.jumpPressed = m.edge[ActionJump]
	s.jumpReleased = m.wasJumping && !jumping
	m.wasJumping = jumping

	action := m.held(ActionUp, now) || m.held(ActionDown, now)
	s.actionUp = m.edge[ActionUp]
	s.actionDown = m.edge[ActionDown]
	s.actionReleased = m.wasAction && !action
	m.wasAction = action

	m.edge = [controlCount]bool{}
	return s
}

// Snapshot is one tick of sampled input
type Snapshot struct {
	horizontal float64
	vertical   float64

	moveStarted bool
	moving      bool
	moveStopped bool

	jumpPressed  bool
	jumpReleased bool

	actionUp       bool
	actionDown     bool
	actionReleased bool
}

var _ walker.Input = Snapshot{}

func (s Snapshot) Horizontal() float64  { return s.horizontal }
func (s Snapshot) Vertical() float64    { return s.vertical }
func (s Snapshot) MoveStarted() bool    { return s.moveStarted }
func (s Snapshot) Moving() bool         { return s.moving }
func (s Snapshot) MoveStopped() bool    { return s.moveStopped }
func (s Snapshot) JumpPressed() bool    { return s.jumpPressed }
func (s Snapshot) JumpReleased() bool   { return s.jumpReleased }
func (s Snapshot) ActionUp() bool       { return s.actionUp }
func (s Snapshot) ActionDown() bool     { return s.actionDown }
func (s Snapshot) ActionReleased() bool { return s.actionReleased }

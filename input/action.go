package input

// Action is a semantic binding target for a key
type Action uint8

const (
	ActionNone Action = iota

	// Controls feed the walker and have held state
	ActionLeft
	ActionRight
	ActionJump
	ActionUp
	ActionDown

	// System actions are returned to the caller and have no held state
	ActionQuit
	ActionToggleMute
	ActionToggleHUD
	ActionRespawn

	actionEnd
)

// controlCount sizes per-control state arrays
const controlCount = int(ActionDown) + 1

var actionNames = [actionEnd]string{
	ActionNone:       "none",
	ActionLeft:       "left",
	ActionRight:      "right",
	ActionJump:       "jump",
	ActionUp:         "up",
	ActionDown:       "down",
	ActionQuit:       "quit",
	ActionToggleMute: "toggle_mute",
	ActionToggleHUD:  "toggle_hud",
	ActionRespawn:    "respawn",
}

// actionRegistry maps canonical names to actions for the keymap loader
var actionRegistry map[string]Action

func init() {
	actionRegistry = make(map[string]Action, len(actionNames))
	for a, name := range actionNames {
		actionRegistry[name] = Action(a)
	}
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

func (a Action) String() string {
	if a < actionEnd {
		return actionNames[a]
	}
	return "unknown"
}

// Control reports whether a is a walker control
func (a Action) Control() bool {
	return a > ActionNone && int(a) < controlCount
}

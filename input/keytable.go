package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Keys holds non-rune keys (arrows, Ctrl+*, Escape)
	Keys map[tcell.Key]Action

	// Runes holds printable bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings
// Arrows, hjkl and wasd move, space jumps
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
			tcell.KeyCtrlS:  ActionToggleMute,
			tcell.KeyTab:    ActionToggleHUD,
			tcell.KeyCtrlR:  ActionRespawn,
		},
		Runes: map[rune]Action{
			'h': ActionLeft,
			'l': ActionRight,
			'k': ActionUp,
			'j': ActionDown,
			'a': ActionLeft,
			'd': ActionRight,
			'w': ActionUp,
			's': ActionDown,
			' ': ActionJump,
			'q': ActionQuit,
			'm': ActionToggleMute,
			'r': ActionRespawn,
		},
	}
}

// Lookup resolves a key event to its action
func (kt *KeyTable) Lookup(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.Keys[key]
}

// Clone returns a deep copy with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Keys:  make(map[tcell.Key]Action, len(kt.Keys)),
		Runes: make(map[rune]Action, len(kt.Runes)),
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	return c
}

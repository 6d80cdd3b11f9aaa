package spline

import (
	"fmt"
	"strings"
)

// Type tags how a walker behaves on a spline
type Type uint8

const (
	// Normal is walkable ground
	Normal Type = iota
	// Platform can be dropped through by jumping while holding down
	Platform
	// Wall can be hung on and slid down
	Wall
)

var typeNames = [...]string{Normal: "normal", Platform: "platform", Wall: "wall"}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

// ParseType accepts the lower-case names produced by String
func ParseType(s string) (Type, error) {
	for i, n := range typeNames {
		if strings.EqualFold(s, n) {
			return Type(i), nil
		}
	}
	if s == "" {
		return Normal, nil
	}
	return Normal, fmt.Errorf("spline: unknown type %q", s)
}

// HandleMode constrains the two handles of a point relative to each other
type HandleMode uint8

const (
	Free HandleMode = iota
	Aligned
	Mirrored
)

var modeNames = [...]string{Free: "free", Aligned: "aligned", Mirrored: "mirrored"}

func (m HandleMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("HandleMode(%d)", m)
}

func ParseHandleMode(s string) (HandleMode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(s, n) {
			return HandleMode(i), nil
		}
	}
	if s == "" {
		return Mirrored, nil
	}
	return Free, fmt.Errorf("spline: unknown handle mode %q", s)
}

// TransitionKey is the directional action that triggers a transition region
type TransitionKey uint8

const (
	KeyUp TransitionKey = iota
	KeyDown
)

func (k TransitionKey) String() string {
	if k == KeyDown {
		return "down"
	}
	return "up"
}

func ParseTransitionKey(s string) (TransitionKey, error) {
	switch strings.ToLower(s) {
	case "up", "":
		return KeyUp, nil
	case "down":
		return KeyDown, nil
	}
	return KeyUp, fmt.Errorf("spline: unknown transition key %q", s)
}

package event

import "strings"

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

func init() {
	RegisterType("Jump", EventJump)
	RegisterType("Land", EventLand)
	RegisterType("SlideStart", EventSlideStart)
	RegisterType("RollStart", EventRollStart)
	RegisterType("WallHang", EventWallHang)
	RegisterType("WallSlide", EventWallSlide)
	RegisterType("SplineSwitch", EventSplineSwitch)
	RegisterType("TransitionStart", EventTransitionStart)
	RegisterType("TransitionEnd", EventTransitionEnd)
	RegisterType("TransitionCancel", EventTransitionCancel)
	RegisterType("IntersectionMiss", EventIntersectionMiss)
}

// RegisterType maps a name to an EventType
// Called from init only; not safe for concurrent use
func RegisterType(name string, et EventType) {
	nameToType[strings.ToLower(name)] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a name, case-insensitive
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[strings.ToLower(name)]
	return et, ok
}

// GetEventName returns the registered name, or "Unknown"
func GetEventName(et EventType) string {
	if n, ok := typeToName[et]; ok {
		return n
	}
	return "Unknown"
}

// AllTypes returns every defined event type in declaration order
func AllTypes() []EventType {
	out := make([]EventType, 0, eventTypeEnd-1)
	for et := EventJump; et < eventTypeEnd; et++ {
		out = append(out, et)
	}
	return out
}

func (et EventType) String() string { return GetEventName(et) }

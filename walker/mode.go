package walker

// Mode is the movement state of a walker relative to its spline
type Mode uint8

const (
	Grounded Mode = iota
	Airborne
	WallHanging
	WallSliding
	SlopeSliding
)

var modeNames = [...]string{
	Grounded:     "grounded",
	Airborne:     "airborne",
	WallHanging:  "wall-hanging",
	WallSliding:  "wall-sliding",
	SlopeSliding: "slope-sliding",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// OnWall reports whether the walker is hanging on or sliding down a wall
func (m Mode) OnWall() bool { return m == WallHanging || m == WallSliding }

package walker

import (
	"sync"

	"github.com/lixenwraith/rail-walker/vmath"
)

// KinematicBody is the default placement sink
// Requests accumulate on a pending target; Step applies it at the fixed physics rate
type KinematicBody struct {
	mu      sync.Mutex
	current vmath.Vec3F
	final   vmath.Vec3F
}

// NewKinematicBody creates a body resting at pos
func NewKinematicBody(pos vmath.Vec3F) *KinematicBody {
	return &KinematicBody{current: pos, final: pos}
}

func (b *KinematicBody) Place(target vmath.Vec3F, previousGround float64, onGround bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	y := target.Y
	if !onGround && b.final.Y > previousGround {
		y = b.final.Y
	}
	b.final = vmath.Vec3F{X: target.X, Y: y, Z: target.Z}
}

func (b *KinematicBody) SnapToGround(height float64) {
	b.mu.Lock()
	b.final.Y = height
	b.mu.Unlock()
}

func (b *KinematicBody) AddHeightOffset(dy float64) {
	b.mu.Lock()
	b.final.Y += dy
	b.mu.Unlock()
}

func (b *KinematicBody) Position() vmath.Vec3F {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

func (b *KinematicBody) FinalPosition() vmath.Vec3F {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.final
}

// Step applies the pending target; reports whether the body moved
func (b *KinematicBody) Step() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	moved := b.current != b.final
	b.current = b.final
	return moved
}

// Teleport sets both applied and pending positions
func (b *KinematicBody) Teleport(pos vmath.Vec3F) {
	b.mu.Lock()
	b.current, b.final = pos, pos
	b.mu.Unlock()
}

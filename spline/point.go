package spline

import (
	"fmt"

	"github.com/lixenwraith/rail-walker/parameter"
	"github.com/lixenwraith/rail-walker/vmath"
)

// Point is a control point: a transform plus two Bezier handles
// Handles are stored in the point's local frame so moving, rotating or
// scaling the point carries them along
type Point struct {
	spline *Spline
	index  int
	t      float64

	position vmath.Vec3F
	rotation vmath.Quat
	scale    vmath.Vec3F

	precedingLocal vmath.Vec3F
	followingLocal vmath.Vec3F
	mode           HandleMode
}

// NewPoint creates a detached point at pos with default handles
func NewPoint(pos vmath.Vec3F) *Point {
	d0, d1 := parameter.DefaultPrecedingHandle, parameter.DefaultFollowingHandle
	return &Point{
		index:          -1,
		position:       pos,
		rotation:       vmath.QuatIdentity,
		scale:          vmath.V3FOne,
		precedingLocal: vmath.Vec3F{X: d0[0], Y: d0[1], Z: d0[2]},
		followingLocal: vmath.Vec3F{X: d1[0], Y: d1[1], Z: d1[2]},
		mode:           Mirrored,
	}
}

// Spline returns the owning spline, nil when detached
func (p *Point) Spline() *Spline { return p.spline }

// Index returns the position in the owning spline, -1 when detached
func (p *Point) Index() int { return p.index }

// T returns the normalized position of the point along its spline
func (p *Point) T() float64 { return p.t }

func (p *Point) Position() vmath.Vec3F { return p.position }
func (p *Point) Rotation() vmath.Quat  { return p.rotation }
func (p *Point) Scale() vmath.Vec3F    { return p.scale }
func (p *Point) Mode() HandleMode      { return p.mode }

func (p *Point) PrecedingLocal() vmath.Vec3F { return p.precedingLocal }
func (p *Point) FollowingLocal() vmath.Vec3F { return p.followingLocal }

// PrecedingHandle returns the world position of the handle toward the previous point
func (p *Point) PrecedingHandle() vmath.Vec3F { return p.toWorld(p.precedingLocal) }

// FollowingHandle returns the world position of the handle toward the next point
func (p *Point) FollowingHandle() vmath.Vec3F { return p.toWorld(p.followingLocal) }

// SetPosition moves the point; handles keep their local offsets
func (p *Point) SetPosition(v vmath.Vec3F) { p.position = v }

func (p *Point) SetRotation(q vmath.Quat) { p.rotation = vmath.QuatNormalize(q) }

func (p *Point) SetScale(v vmath.Vec3F) { p.scale = v }

// SetPrecedingHandle places the preceding handle in world space and applies the mode to the following one
func (p *Point) SetPrecedingHandle(world vmath.Vec3F) {
	p.precedingLocal = p.toLocal(world)
	p.followingLocal = p.toLocal(p.constrain(world, p.FollowingHandle()))
}

// SetFollowingHandle places the following handle in world space and applies the mode to the preceding one
func (p *Point) SetFollowingHandle(world vmath.Vec3F) {
	p.followingLocal = p.toLocal(world)
	p.precedingLocal = p.toLocal(p.constrain(world, p.PrecedingHandle()))
}

// SetPrecedingLocal sets the preceding handle as a local offset
func (p *Point) SetPrecedingLocal(local vmath.Vec3F) {
	p.precedingLocal = local
	p.followingLocal = constrainLocal(p.mode, local, p.followingLocal)
}

// SetFollowingLocal sets the following handle as a local offset
func (p *Point) SetFollowingLocal(local vmath.Vec3F) {
	p.followingLocal = local
	p.precedingLocal = constrainLocal(p.mode, local, p.precedingLocal)
}

// SetMode changes the handle constraint; Aligned and Mirrored re-apply the preceding handle
func (p *Point) SetMode(m HandleMode) {
	if p.mode == m {
		return
	}
	p.mode = m
	if m != Free {
		p.SetPrecedingLocal(p.precedingLocal)
	}
}

// SetHandlesFree writes both world handles without applying the mode
// Used by the construction helpers, which compute both sides themselves
func (p *Point) SetHandlesFree(preceding, following vmath.Vec3F) {
	p.precedingLocal = p.toLocal(preceding)
	p.followingLocal = p.toLocal(following)
}

func (p *Point) String() string {
	if p == nil {
		return "<nil>"
	}
	if p.spline == nil {
		return fmt.Sprintf("point%v", p.position)
	}
	return fmt.Sprintf("%s[%d]", p.spline.name, p.index)
}

// constrain returns where other must go given that set was just placed
func (p *Point) constrain(set, other vmath.Vec3F) vmath.Vec3F {
	switch p.mode {
	case Aligned:
		dir := vmath.V3FNormalize(vmath.V3FSub(set, p.position))
		length := vmath.V3FDistance(other, p.position)
		return vmath.V3FSub(p.position, vmath.V3FScale(dir, length))
	case Mirrored:
		return vmath.V3FSub(vmath.V3FScale(p.position, 2), set)
	}
	return other
}

func constrainLocal(m HandleMode, set, other vmath.Vec3F) vmath.Vec3F {
	switch m {
	case Aligned:
		return vmath.V3FScale(vmath.V3FNormalize(set), -vmath.V3FMag(other))
	case Mirrored:
		return vmath.V3FNeg(set)
	}
	return other
}

func (p *Point) toWorld(local vmath.Vec3F) vmath.Vec3F {
	return vmath.V3FAdd(p.position, vmath.QuatRotate(p.rotation, vmath.V3FMul(p.scale, local)))
}

func (p *Point) toLocal(world vmath.Vec3F) vmath.Vec3F {
	v := vmath.QuatRotate(vmath.QuatConjugate(p.rotation), vmath.V3FSub(world, p.position))
	return vmath.Vec3F{X: safeDiv(v.X, p.scale.X), Y: safeDiv(v.Y, p.scale.Y), Z: safeDiv(v.Z, p.scale.Z)}
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

package spline

import (
	"fmt"
	"strings"
	"sync"

	"github.com/lixenwraith/rail-walker/vmath"
)

// Behavior selects which attributes a link keeps in sync
// X and Z of the position are always linked
type Behavior uint8

const (
	LinkY Behavior = 1 << iota
	LinkRotation
	LinkScale
	LinkControlPoints

	// Connection is the minimum mask for a link walkers can cross at a spline end
	Connection = LinkY | LinkRotation | LinkScale

	LinkAll = Connection | LinkControlPoints
)

// IsConnection reports whether walkers treat the link as a continuous joint
func (b Behavior) IsConnection() bool { return b&Connection == Connection }

var behaviorNames = []struct {
	name string
	bit  Behavior
}{
	{"y", LinkY},
	{"rotation", LinkRotation},
	{"scale", LinkScale},
	{"control_points", LinkControlPoints},
}

func (b Behavior) String() string {
	var parts []string
	for _, bn := range behaviorNames {
		if b&bn.bit != 0 {
			parts = append(parts, bn.name)
		}
	}
	if len(parts) == 0 {
		return "xz"
	}
	return strings.Join(parts, "|")
}

// ParseBehavior builds a mask from names; "all" and "connection" are shorthands
func ParseBehavior(names []string) (Behavior, error) {
	var b Behavior
	for _, n := range names {
		switch strings.ToLower(n) {
		case "all":
			b |= LinkAll
			continue
		case "connection":
			b |= Connection
			continue
		}
		found := false
		for _, bn := range behaviorNames {
			if strings.EqualFold(n, bn.name) {
				b |= bn.bit
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("spline: unknown link behavior %q", n)
		}
	}
	return b, nil
}

// Link is one directed half of a symmetric point relation
type Link struct {
	Peer     *Point
	Behavior Behavior
}

// Links is the relation table joining control points across splines
// Linked components are kept acyclic; edits made through the table propagate
// across the whole component, each edge applying its own mask
type Links struct {
	mu    sync.RWMutex
	edges map[*Point][]Link
}

func NewLinks() *Links {
	return &Links{edges: make(map[*Point][]Link)}
}

// Add links giver and receiver and copies the giver's attributes onto the receiver
// On rejection the table and both points are left unchanged
func (l *Links) Add(giver, receiver *Point, b Behavior) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var reason LinkReason
	switch {
	case giver == nil || receiver == nil:
		reason = LinkNil
	case giver == receiver:
		reason = LinkSelf
	case giver.spline != nil && giver.spline == receiver.spline:
		reason = LinkSameSpline
	case l.reachableLocked(giver, receiver):
		reason = LinkInChain
	default:
		applyLink(giver, receiver, b)
		l.edges[giver] = append(l.edges[giver], Link{Peer: receiver, Behavior: b})
		l.edges[receiver] = append(l.edges[receiver], Link{Peer: giver, Behavior: b})
		return nil
	}

	err := &LinkError{Reason: reason, From: giver, To: receiver}
	Logger().Warn("link rejected", "from", giver, "to", receiver, "reason", reason)
	return err
}

// Remove drops the link between a and b in both directions
func (l *Links) Remove(a, b *Point) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	ok := l.dropLocked(a, b)
	l.dropLocked(b, a)
	return ok
}

// RemovePoint drops every link touching p
func (l *Links) RemovePoint(p *Point) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.edges[p] {
		l.dropLocked(e.Peer, p)
	}
	delete(l.edges, p)
}

func (l *Links) dropLocked(from, to *Point) bool {
	list := l.edges[from]
	for i, e := range list {
		if e.Peer == to {
			list = append(list[:i], list[i+1:]...)
			if len(list) == 0 {
				delete(l.edges, from)
			} else {
				l.edges[from] = list
			}
			return true
		}
	}
	return false
}

// Peers returns the direct links of p
func (l *Links) Peers(p *Point) []Link {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Link, len(l.edges[p]))
	copy(out, l.edges[p])
	return out
}

// Count returns the number of direct links of p
func (l *Links) Count(p *Point) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.edges[p])
}

// Linked reports whether a and b share a direct link
func (l *Links) Linked(a, b *Point) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, e := range l.edges[a] {
		if e.Peer == b {
			return true
		}
	}
	return false
}

// ConnectionPoint returns the first peer of p joined by a connection link, or nil
func (l *Links) ConnectionPoint(p *Point) *Point {
	if p == nil {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, e := range l.edges[p] {
		if e.Behavior.IsConnection() {
			return e.Peer
		}
	}
	return nil
}

// Component returns every point reachable from p, p included
func (l *Links) Component(p *Point) []*Point {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []*Point
	l.walkLocked(p, func(_, cur *Point, _ Behavior) {
		out = append(out, cur)
	})
	return out
}

func (l *Links) reachableLocked(from, to *Point) bool {
	found := false
	l.walkLocked(from, func(_, cur *Point, _ Behavior) {
		if cur == to {
			found = true
		}
	})
	return found
}

// walkLocked visits the component of start breadth-first; fn receives the edge used to reach each point
func (l *Links) walkLocked(start *Point, fn func(from, cur *Point, b Behavior)) {
	seen := map[*Point]bool{start: true}
	queue := []*Point{start}
	fn(nil, start, 0)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range l.edges[cur] {
			if seen[e.Peer] {
				continue
			}
			seen[e.Peer] = true
			fn(cur, e.Peer, e.Behavior)
			queue = append(queue, e.Peer)
		}
	}
}

// propagate applies edit to src, then copies outward along every edge of its component
func (l *Links) propagate(src *Point, edit func(*Point)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	edit(src)
	l.walkLocked(src, func(from, cur *Point, b Behavior) {
		if from != nil {
			applyLink(from, cur, b)
		}
	})
}

// MovePoint sets the position of p and carries linked points along
func (l *Links) MovePoint(p *Point, pos vmath.Vec3F) {
	l.propagate(p, func(p *Point) { p.SetPosition(pos) })
}

func (l *Links) SetRotation(p *Point, q vmath.Quat) {
	l.propagate(p, func(p *Point) { p.SetRotation(q) })
}

func (l *Links) SetScale(p *Point, s vmath.Vec3F) {
	l.propagate(p, func(p *Point) { p.SetScale(s) })
}

// SetHandles writes both world handles of p without the mode constraint and propagates
func (l *Links) SetHandles(p *Point, preceding, following vmath.Vec3F) {
	l.propagate(p, func(p *Point) { p.SetHandlesFree(preceding, following) })
}

func (l *Links) SetHandleMode(p *Point, m HandleMode) {
	l.propagate(p, func(p *Point) { p.SetMode(m) })
}

// applyLink copies the masked attributes of from onto to
func applyLink(from, to *Point, b Behavior) {
	pos := from.position
	if b&LinkY == 0 {
		pos.Y = to.position.Y
	}
	to.position = pos
	if b&LinkRotation != 0 {
		to.rotation = from.rotation
	}
	if b&LinkScale != 0 {
		to.scale = from.scale
	}
	if b&LinkControlPoints != 0 {
		to.precedingLocal = from.precedingLocal
		to.followingLocal = from.followingLocal
		to.mode = from.mode
	}
}

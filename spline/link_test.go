package spline

import (
	"errors"
	"testing"

	"github.com/lixenwraith/rail-walker/vmath"
)

// TestLinkRejections verifies every refused link leaves the table and points unchanged
func TestLinkRejections(t *testing.T) {
	a := NewFromPositions("a", Normal, v3(0, 0, 0), v3(10, 0, 0))
	b := NewFromPositions("b", Normal, v3(10, 4, 0), v3(20, 4, 0))
	c := NewFromPositions("c", Normal, v3(20, 8, 0), v3(30, 8, 0))

	links := NewLinks()
	if err := links.Add(a.Last(), b.First(), Connection); err != nil {
		t.Fatalf("Link a-b failed: %v", err)
	}
	if err := links.Add(b.First(), c.First(), 0); err != nil {
		t.Fatalf("Link b-c failed: %v", err)
	}

	tests := []struct {
		name   string
		from   *Point
		to     *Point
		reason LinkReason
	}{
		{"nil", a.First(), nil, LinkNil},
		{"self", a.First(), a.First(), LinkSelf},
		{"same spline", a.First(), a.Last(), LinkSameSpline},
		{"chain", c.First(), a.Last(), LinkInChain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var before vmath.Vec3F
			if tt.to != nil {
				before = tt.to.Position()
			}
			err := links.Add(tt.from, tt.to, LinkAll)
			var le *LinkError
			if !errors.As(err, &le) {
				t.Fatalf("Expected *LinkError, got %v", err)
			}
			if le.Reason != tt.reason {
				t.Errorf("Expected reason %v, got %v", tt.reason, le.Reason)
			}
			if tt.to != nil && tt.to.Position() != before {
				t.Errorf("Expected receiver untouched, moved to %v", tt.to.Position())
			}
		})
	}

	if links.Count(a.Last()) != 1 || links.Count(b.First()) != 2 || links.Count(c.First()) != 1 {
		t.Errorf("Expected one link per joined point after rejections")
	}
}

// TestLinkInitialSync verifies the receiver takes the giver's attributes per mask
func TestLinkInitialSync(t *testing.T) {
	a := NewFromPositions("a", Normal, v3(0, 0, 0), v3(10, 3, 1))
	b := NewFromPositions("b", Normal, v3(12, 7, 2), v3(20, 7, 0))
	a.Last().SetRotation(vmath.QuatFromEuler(0, 45, 0))

	links := NewLinks()
	if err := links.Add(a.Last(), b.First(), LinkRotation); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	assertVec(t, "xz synced, y kept", b.First().Position(), v3(10, 7, 1), 0)
	if !vmath.QuatApproxEqual(b.First().Rotation(), a.Last().Rotation(), 1e-12) {
		t.Errorf("Expected rotation synced")
	}
	if links.ConnectionPoint(a.Last()) != nil {
		t.Errorf("Expected rotation-only link not to be a connection point")
	}

	c := NewFromPositions("c", Normal, v3(30, 1, 0), v3(40, 1, 0))
	if err := links.Add(b.Last(), c.First(), Connection); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	assertVec(t, "full sync", c.First().Position(), b.Last().Position(), 0)
	if links.ConnectionPoint(c.First()) != b.Last() || links.ConnectionPoint(b.Last()) != c.First() {
		t.Errorf("Expected symmetric connection points")
	}
}

// TestLinkPropagation verifies edits travel the whole component with per-edge masks
func TestLinkPropagation(t *testing.T) {
	a := NewFromPositions("a", Normal, v3(0, 0, 0), v3(10, 0, 0))
	b := NewFromPositions("b", Normal, v3(10, 0, 0), v3(20, 0, 0))
	c := NewFromPositions("c", Normal, v3(10, 9, 0), v3(10, 9, 10))

	links := NewLinks()
	_ = links.Add(a.Last(), b.First(), LinkAll)
	_ = links.Add(b.First(), c.First(), LinkScale)

	links.MovePoint(a.Last(), v3(11, 2, 3))
	assertVec(t, "b follows fully", b.First().Position(), v3(11, 2, 3), 0)
	assertVec(t, "c keeps its height", c.First().Position(), v3(11, 9, 3), 0)

	links.SetScale(c.First(), v3(2, 2, 2))
	assertVec(t, "scale back to b", b.First().Scale(), v3(2, 2, 2), 0)
	assertVec(t, "scale on to a", a.Last().Scale(), v3(2, 2, 2), 0)

	links.SetRotation(c.First(), vmath.QuatFromEuler(0, 90, 0))
	if b.First().Rotation() != vmath.QuatIdentity {
		t.Errorf("Expected rotation not to cross a scale-only link")
	}

	links.SetHandles(a.Last(), v3(9, 2, 3), v3(13, 2, 3))
	assertVec(t, "handles copied", b.First().FollowingHandle(), v3(13, 2, 3), 1e-9)

	links.SetHandleMode(b.First(), Free)
	if a.Last().Mode() != Free {
		t.Errorf("Expected mode propagated to a")
	}
	if len(links.Component(c.First())) != 3 {
		t.Errorf("Expected component of 3 points")
	}

	if !links.Remove(b.First(), c.First()) {
		t.Fatalf("Expected link removed")
	}
	if links.Linked(c.First(), b.First()) {
		t.Errorf("Expected both directions removed")
	}
	if err := links.Add(c.First(), a.Last(), Connection); err != nil {
		t.Errorf("Expected relink after removal to succeed, got %v", err)
	}
}

// TestParseBehavior verifies names and shorthands
func TestParseBehavior(t *testing.T) {
	b, err := ParseBehavior([]string{"connection"})
	if err != nil || !b.IsConnection() {
		t.Errorf("Expected connection mask, got %v %v", b, err)
	}
	b, err = ParseBehavior([]string{"y", "control_points"})
	if err != nil || b != LinkY|LinkControlPoints {
		t.Errorf("Expected y|control_points, got %v %v", b, err)
	}
	if _, err := ParseBehavior([]string{"camera"}); err == nil {
		t.Errorf("Expected error for unknown behavior")
	}
}

package spline

import (
	"errors"
	"math"
	"testing"
)

// TestNearestPointOnSample verifies a position exactly on a sampled point is found with zero distance
func TestNearestPointOnSample(t *testing.T) {
	s := NewFromPositions("curve", Normal, v3(0, 0, 0), v3(4, 3, 1), v3(9, 1, 4))
	s.AutoConstruct()

	target := s.PositionAt(float64(37) / 100)
	got, gotT := s.NearestPointTo(target, 100)
	assertVec(t, "nearest", got, target, 1e-12)
	assertNear(t, "t", gotT, 0.37, 1e-12)

	// End point is part of the sample set
	got, gotT = s.NearestPointTo(v3(20, 1, 4), 100)
	assertVec(t, "end", got, v3(9, 1, 4), 1e-12)
	assertNear(t, "end t", gotT, 1, 0)
}

// TestNearestPointTo2D verifies height is ignored when searching and kept in the result
func TestNearestPointTo2D(t *testing.T) {
	s := straight("ledge", v3(0, 5, 0), v3(10, 5, 0))

	got, gotT := s.NearestPointTo2D(v3(4, -20, 0), 100)
	assertVec(t, "nearest", got, v3(4, 5, 0), 1e-9)
	assertNear(t, "t", gotT, 0.4, 1e-9)
}

// TestNearestPointOnXZRefines verifies refinement converges below the coarse sampling resolution
func TestNearestPointOnXZRefines(t *testing.T) {
	s := straight("line", v3(0, 2, 0), v3(10, 2, 0))

	got, gotT := s.NearestPointOnXZ(v3(3.3333, 10, 0), 100, 0.001)
	assertNear(t, "x", got.X, 3.3333, 0.001)
	assertNear(t, "t", gotT, 0.33333, 0.0001)
	assertNear(t, "y kept", got.Y, 2, 1e-9)

	// Far off the curve: coarse result returned as-is
	got, _ = s.NearestPointOnXZ(v3(3.3333, 0, 5), 100, 0.001)
	assertNear(t, "coarse x", got.X, 3.3, 1e-9)
}

// TestNearestPointBetween verifies sampling walks from the start t in the given direction
func TestNearestPointBetween(t *testing.T) {
	s := straight("line", v3(0, 0, 0), v3(10, 0, 0))

	got, gotT := s.NearestPointBetween(v3(7, 1, 0), 0.5, 0.9, true, 4)
	assertNear(t, "t", gotT, 0.7, 1e-9)
	assertVec(t, "position", got, v3(7, 0, 0), 1e-9)

	_, gotT = s.NearestPointBetween(v3(3, 0, 0), 0.5, 0.1, false, 4)
	assertNear(t, "backward t", gotT, 0.3, 1e-9)
}

// TestFindIntersectionByHeightAcrossSeam verifies a loop descent crossing t=1 stays near the seam
func TestFindIntersectionByHeightAcrossSeam(t *testing.T) {
	ring := NewFromPositions("ring", Normal, v3(0, 0, 0), v3(10, 0, 0), v3(10, 0, 10), v3(0, 0, 10))
	ring.SetLoop(true)
	ring.ConstructLinear()

	from := ring.PositionAt(0.98)
	from.Y = 1
	to := ring.PositionAt(0.02)
	to.Y = -1

	pos, it, err := ring.FindIntersectionByHeight(from, to, 0.98, 0.02)
	if err != nil {
		t.Fatalf("Expected intersection, got %v", err)
	}
	if it < 0 || it >= 1 {
		t.Errorf("Expected wrapped t in [0,1), got %f", it)
	}
	if d := math.Min(it, 1-it); d > 0.001 {
		t.Errorf("Expected t at the seam, got %f", it)
	}
	assertVec(t, "seam position", pos, v3(0, 0, 0), 0.05)

	// Same walk in reverse
	_, it, err = ring.FindIntersectionByHeight(to, from, 0.02, 0.98)
	if err != nil {
		t.Fatalf("Expected reverse intersection, got %v", err)
	}
	if d := math.Min(it, 1-it); d > 0.021 {
		t.Errorf("Expected reverse hit near the seam, got %f", it)
	}
}

// TestFindIntersectionByHeight verifies the descent hit, the equal-t shortcut and the miss error
func TestFindIntersectionByHeight(t *testing.T) {
	s := straight("floor", v3(0, 0, 0), v3(10, 0, 0))

	pos, it, err := s.FindIntersectionByHeight(v3(2, 1, 0), v3(4, -1, 0), 0.2, 0.4)
	if err != nil {
		t.Fatalf("Expected intersection, got %v", err)
	}
	assertNear(t, "t", it, 0.3, 0.0021)
	assertNear(t, "y on spline", pos.Y, 0, 1e-9)

	pos, it, err = s.FindIntersectionByHeight(v3(1, 1, 1), v3(9, 9, 9), 0.5, 0.5)
	if err != nil || it != 0.5 || pos != v3(1, 1, 1) {
		t.Errorf("Expected equal t to return the start unchanged, got %v %f %v", pos, it, err)
	}

	_, _, err = s.FindIntersectionByHeight(v3(2, 5, 0), v3(4, 4, 0), 0.2, 0.4)
	if !errors.Is(err, ErrNoIntersection) {
		t.Errorf("Expected ErrNoIntersection, got %v", err)
	}
}

package vmath

import (
	"math"
	"testing"
)

func TestRepeat(t *testing.T) {
	tests := []struct {
		t, length, want float64
	}{
		{0.25, 1, 0.25},
		{1.25, 1, 0.25},
		{-0.25, 1, 0.75},
		{1, 1, 0},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := Repeat(tt.t, tt.length); !EqualWithin(got, tt.want, 1e-12) {
			t.Errorf("Repeat(%f, %f): expected %f, got %f", tt.t, tt.length, tt.want, got)
		}
	}
}

func TestLerpClamps(t *testing.T) {
	if got := Lerp(2, 4, 1.5); got != 4 {
		t.Errorf("Expected 4, got %f", got)
	}
	if got := LerpUnclamped(2, 4, 1.5); got != 5 {
		t.Errorf("Expected 5, got %f", got)
	}
}

func TestV3FAngle(t *testing.T) {
	if got := V3FAngle(V3FRight, V3FUp); math.Abs(got-90) > 1e-9 {
		t.Errorf("Expected 90, got %f", got)
	}
	if got := V3FNormalize(V3FZero); got != V3FZero {
		t.Errorf("Expected zero vector to stay zero, got %v", got)
	}
}

// TestQuatRotate verifies a quarter turn about Y maps +X to -Z and back
func TestQuatRotate(t *testing.T) {
	q := QuatFromEuler(0, 90, 0)
	got := QuatRotate(q, V3FRight)
	if !V3FApproxEqual(got, Vec3F{0, 0, -1}, 1e-9) {
		t.Errorf("Expected (0,0,-1), got %v", got)
	}
	back := QuatRotate(QuatConjugate(q), got)
	if !V3FApproxEqual(back, V3FRight, 1e-9) {
		t.Errorf("Expected round trip to +X, got %v", back)
	}
	if !QuatApproxEqual(QuatNormalize(Quat{0, 0, 0, 2}), QuatIdentity, 1e-12) {
		t.Error("Expected normalized scalar quaternion to be identity")
	}
}

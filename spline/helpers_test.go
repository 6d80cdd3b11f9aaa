package spline

import (
	"math"
	"testing"

	"github.com/lixenwraith/rail-walker/vmath"
)

const tol = 1e-6

func v3(x, y, z float64) vmath.Vec3F { return vmath.Vec3F{X: x, Y: y, Z: z} }

// straight returns a constant-speed line; AutoConstruct on two points puts handles at thirds
func straight(name string, from, to vmath.Vec3F) *Spline {
	s := NewFromPositions(name, Normal, from, to)
	s.AutoConstruct()
	return s
}

func assertVec(t *testing.T, what string, got, want vmath.Vec3F, eps float64) {
	t.Helper()
	if !vmath.V3FApproxEqual(got, want, eps) {
		t.Errorf("%s: expected %v, got %v", what, want, got)
	}
}

func assertNear(t *testing.T, what string, got, want, eps float64) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Errorf("%s: expected %.6f, got %.6f", what, want, got)
	}
}

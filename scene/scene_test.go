package scene

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/lixenwraith/rail-walker/spline"
	"github.com/lixenwraith/rail-walker/walker"
)

const twoSplines = `
[walker]
spline = "a"
t = 0.25

[[spline]]
name = "a"
construct = "smooth"
  [[spline.point]]
  position = [0.0, 0.0, 0.0]
  [[spline.point]]
  position = [10.0, 0.0, 0.0]

[[spline]]
name = "b"
type = "platform"
  [[spline.point]]
  position = [10.0, 2.0, 0.0]
  mode = "free"
  preceding = [9.0, 2.0, 0.0]
  following = [11.0, 3.0, 0.0]
  [[spline.point]]
  position = [20.0, 2.0, 0.0]

[[link]]
from = "a:1"
to = "b:0"
behavior = ["y"]

[[transition]]
host = "a"
min = 0.1
max = 0.3
key = "down"
contact = 1
destination = "b"
destination_t = 0.5
`

func mustBuild(t *testing.T, src string) *Scene {
	t.Helper()
	f, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	sc, err := Build(f)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return sc
}

// TestBuildWiresScene verifies splines, links, transitions and spawn
func TestBuildWiresScene(t *testing.T) {
	sc := mustBuild(t, twoSplines)
	reg := sc.Registry

	if reg.Len() != 2 {
		t.Fatalf("Expected 2 splines, got %d", reg.Len())
	}
	a, _ := reg.ByName("a")
	b, _ := reg.ByName("b")
	if b.Type() != spline.Platform {
		t.Errorf("Expected b platform, got %v", b.Type())
	}
	if sc.Spawn != a || sc.SpawnT != 0.25 || !sc.Forward {
		t.Errorf("Expected spawn a@0.25 forward, got %s@%f %v", sc.Spawn.Name(), sc.SpawnT, sc.Forward)
	}

	// y link copies the giver's height onto the receiver
	if got := b.First().Position().Y; got != 0 {
		t.Errorf("Expected b[0].y linked to 0, got %f", got)
	}
	if !reg.Links().Linked(a.Last(), b.First()) {
		t.Error("Expected a[1] linked to b[0]")
	}
	if reg.Links().ConnectionPoint(a.Last()) != nil {
		t.Error("Expected y-only link not to be a connection")
	}

	if got := b.First().FollowingHandle(); got.Y-b.First().Position().Y != 1 {
		t.Errorf("Expected free following handle kept one unit above, got %v", got)
	}

	trs := a.Transitions()
	if len(trs) != 1 {
		t.Fatalf("Expected 1 transition, got %d", len(trs))
	}
	tr := trs[0]
	if tr.Key != spline.KeyDown || tr.Contact != a.Last() || tr.Destination != b || tr.DestinationT != 0.5 {
		t.Errorf("Unexpected transition %+v", tr)
	}
	if tr.Min() != 0.1 || tr.Max() != 0.3 {
		t.Errorf("Expected range [0.1, 0.3], got [%f, %f]", tr.Min(), tr.Max())
	}
}

// TestDefaultLinkIsConnection verifies an omitted behavior list links as a connection
func TestDefaultLinkIsConnection(t *testing.T) {
	src := strings.Replace(twoSplines, "behavior = [\"y\"]\n", "", 1)
	sc := mustBuild(t, src)
	a, _ := sc.Registry.ByName("a")
	b, _ := sc.Registry.ByName("b")
	if sc.Registry.Links().ConnectionPoint(a.Last()) != b.First() {
		t.Error("Expected connection from a[1] to b[0]")
	}
}

// TestBuildErrors verifies reference and value errors surface from Build
func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		old     string
		new     string
		wantErr error
	}{
		{"unknown spawn", `spline = "a"`, `spline = "zz"`, ErrUnknownSpline},
		{"missing spawn", `spline = "a"`, `spline = ""`, ErrNoSpawn},
		{"bad link ref", `from = "a:1"`, `from = "a1"`, ErrBadPointRef},
		{"link index out of range", `from = "a:1"`, `from = "a:7"`, ErrBadPointRef},
		{"link unknown spline", `to = "b:0"`, `to = "c:0"`, ErrUnknownSpline},
		{"bad contact", "contact = 1", "contact = 4", ErrBadPointRef},
		{"unknown destination", `destination = "b"`, `destination = "q"`, ErrUnknownSpline},
		{"bad construct", `construct = "smooth"`, `construct = "wavy"`, ErrBadConstruct},
		{"duplicate name", `name = "b"`, `name = "a"`, spline.ErrDuplicateName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Decode(strings.NewReader(strings.Replace(twoSplines, tt.old, tt.new, 1)))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			_, err = Build(f)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestBuildRejectsSelfSplineLink verifies link rejections carry the reason
func TestBuildRejectsSelfSplineLink(t *testing.T) {
	src := strings.Replace(twoSplines, `to = "b:0"`, `to = "a:0"`, 1)
	f, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	_, err = Build(f)
	var le *spline.LinkError
	if !errors.As(err, &le) || le.Reason != spline.LinkSameSpline {
		t.Errorf("Expected same-spline link error, got %v", err)
	}
}

// TestBuildRejectsShortSpline verifies splines need two points
func TestBuildRejectsShortSpline(t *testing.T) {
	src := `
[walker]
spline = "a"
[[spline]]
name = "a"
  [[spline.point]]
  position = [0.0, 0.0, 0.0]
`
	f, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, err := Build(f); !errors.Is(err, spline.ErrUninitialized) {
		t.Errorf("Expected ErrUninitialized, got %v", err)
	}
}

// TestDecodeSyntaxError verifies decode failures are wrapped
func TestDecodeSyntaxError(t *testing.T) {
	if _, err := Decode(strings.NewReader("[[spline]\nname=")); err == nil {
		t.Error("Expected decode error")
	}
}

// TestEncodeDecode verifies an encoded file decodes to the same scene shape
func TestEncodeDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(twoSplines))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, f); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode encoded: %v\n%s", err, buf.String())
	}
	if len(back.Splines) != 2 || len(back.Links) != 1 || len(back.Transitions) != 1 {
		t.Fatalf("Expected 2/1/1 entries, got %d/%d/%d", len(back.Splines), len(back.Links), len(back.Transitions))
	}
	if p := back.Splines[1].Points[0]; p.Following == nil || p.Following[1] != 3 {
		t.Errorf("Expected following handle preserved, got %v", p.Following)
	}
}

// TestDemoScene verifies the shipped demo loads and a walker can run on it
func TestDemoScene(t *testing.T) {
	f, err := Load("../scenes/demo.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sc, err := Build(f)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	ground, _ := sc.Registry.ByName("ground")
	ramp, _ := sc.Registry.ByName("ramp")
	if sc.Registry.Links().ConnectionPoint(ground.Last()) != ramp.First() {
		t.Error("Expected ground to connect to ramp")
	}
	if chute, _ := sc.Registry.ByName("chute"); math.Abs(inclineAt(chute, 0.5)-60) > 0.1 {
		t.Errorf("Expected 60 degree chute, got %f", inclineAt(chute, 0.5))
	}

	profile, err := walker.LoadProfile("../scenes/profile.toml")
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	body := walker.NewKinematicBody(sc.Spawn.PositionAt(sc.SpawnT))
	w, err := walker.New(sc.Registry, sc.Spawn, sc.SpawnT, body, profile, walker.WithForward(sc.Forward))
	if err != nil {
		t.Fatalf("walker.New: %v", err)
	}
	for i := 0; i < 60; i++ {
		w.Tick(1.0/60, nil)
		body.Step()
	}
	if w.Spline() != ground || w.T() != sc.SpawnT {
		t.Errorf("Expected idle walker to stay put, got %s@%f", w.Spline().Name(), w.T())
	}
}

func inclineAt(s *spline.Spline, t float64) float64 {
	a, _ := s.InclineAt(t)
	return a
}

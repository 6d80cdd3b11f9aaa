package status

import (
	"strings"
	"sync"
	"testing"

	"github.com/lixenwraith/rail-walker/event"
	"github.com/lixenwraith/rail-walker/vmath"
	"github.com/lixenwraith/rail-walker/walker"
)

// TestAtomicFloatConcurrentAdd verifies Add under contention
func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	if got := f.Get(); got != 4000 {
		t.Errorf("Expected 4000, got %f", got)
	}
}

// TestAtomicFloatStoreMax verifies only larger values replace the stored one
func TestAtomicFloatStoreMax(t *testing.T) {
	var f AtomicFloat
	if !f.StoreMax(2) {
		t.Error("Expected 2 to replace zero")
	}
	if f.StoreMax(1) {
		t.Error("Expected 1 to be rejected")
	}
	if got := f.Get(); got != 2 {
		t.Errorf("Expected 2, got %f", got)
	}
}

// TestAtomicStringTruncates verifies the length bound
func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected empty zero value")
	}
	s.Store(strings.Repeat("x", MaxStringLen+5))
	if got := len(s.Load()); got != MaxStringLen {
		t.Errorf("Expected length %d, got %d", MaxStringLen, got)
	}
}

// TestMetricMapGetCaches verifies Get returns the same cell per key
func TestMetricMapGetCaches(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("a")
	a.Set(3)
	if m.Get("a") != a {
		t.Error("Expected cached pointer")
	}
	if m.Has("b") {
		t.Error("Expected b absent")
	}
	m.Get("c")
	if keys := m.Keys(); len(keys) != 2 || keys[0] != "a" || keys[1] != "c" {
		t.Errorf("Expected [a c], got %v", keys)
	}
}

// TestRegistryLines verifies rendering order and formatting
func TestRegistryLines(t *testing.T) {
	r := NewRegistry()
	r.Strings.Get("name").Store("rail")
	r.Floats.Get("speed").Set(1.5)
	r.Ints.Get("count").Store(7)
	r.Bools.Get("on").Store(true)

	want := []string{"name: rail", "speed: 1.500", "count: 7", "on: true"}
	got := r.Lines()
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if r.TotalCount() != 4 {
		t.Errorf("Expected 4 metrics, got %d", r.TotalCount())
	}
}

// TestTelemetryObserve verifies snapshots are mirrored into metrics
func TestTelemetryObserve(t *testing.T) {
	reg := NewRegistry()
	tm := NewTelemetry(reg)

	tm.Observe(walker.State{
		Tick:         12,
		Spline:       "ridge",
		T:            0.25,
		Forward:      true,
		Mode:         walker.Airborne,
		InTransition: true,
		Speed:        4,
		Incline:      30,
		Position:     vmath.Vec3F{X: 1, Y: 2, Z: 3},
		Warnings:     1,
	})
	tm.Observe(walker.State{Spline: "ridge", Speed: 2})

	if got := reg.Strings.Get(KeySpline).Load(); got != "ridge" {
		t.Errorf("Expected spline ridge, got %q", got)
	}
	if got := reg.Strings.Get(KeyMode).Load(); got != walker.Grounded.String() {
		t.Errorf("Expected mode %s, got %q", walker.Grounded, got)
	}
	if got := reg.Floats.Get(KeySpeed).Get(); got != 2 {
		t.Errorf("Expected speed 2, got %f", got)
	}
	if got := reg.Floats.Get(KeyPeakSpeed).Get(); got != 4 {
		t.Errorf("Expected peak speed 4, got %f", got)
	}
	if reg.Bools.Get(KeyInTransition).Load() {
		t.Error("Expected in_transition cleared by the second snapshot")
	}
}

// TestTelemetryCountsEvents verifies Push counts per type
func TestTelemetryCountsEvents(t *testing.T) {
	reg := NewRegistry()
	tm := NewTelemetry(reg)

	var sink event.Sink = tm
	sink.Push(event.WalkerEvent{Type: event.EventJump})
	sink.Push(event.WalkerEvent{Type: event.EventJump})
	sink.Push(event.WalkerEvent{Type: event.EventLand})
	sink.Push(event.WalkerEvent{Type: event.EventType(999)})

	if got := tm.EventCount(event.EventJump); got != 2 {
		t.Errorf("Expected 2 jumps, got %d", got)
	}
	if got := tm.EventCount(event.EventLand); got != 1 {
		t.Errorf("Expected 1 land, got %d", got)
	}
	if got := reg.Ints.Get("event.Jump").Load(); got != 2 {
		t.Errorf("Expected event.Jump metric 2, got %d", got)
	}
}

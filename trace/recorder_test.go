package trace

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/rail-walker/event"
	"github.com/lixenwraith/rail-walker/parameter"
	"github.com/lixenwraith/rail-walker/vmath"
	"github.com/lixenwraith/rail-walker/walker"
)

func state(tick uint64) walker.State {
	return walker.State{
		Tick:     tick,
		Spline:   "ground",
		T:        float64(tick) / 1000,
		Mode:     walker.Grounded,
		Speed:    3,
		Position: vmath.Vec3F{X: float64(tick), Y: 1, Z: -2},
	}
}

// TestRecorderBatchesAndPersists verifies auto flush, explicit flush and reopen
func TestRecorderBatchesAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.db")
	rec, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	n := uint64(parameter.TraceBatchSize + 10)
	for i := uint64(1); i <= n; i++ {
		if err := rec.Record(state(i)); err != nil {
			t.Fatalf("Record %d: %v", i, err)
		}
	}
	rows, err := rec.Ticks(0, n)
	if err != nil {
		t.Fatalf("Ticks: %v", err)
	}
	if len(rows) != parameter.TraceBatchSize {
		t.Errorf("Expected one full batch written, got %d rows", len(rows))
	}

	rec.Push(event.WalkerEvent{Type: event.EventJump, Tick: 5, Spline: "ground"})
	rec.Push(event.WalkerEvent{Type: event.EventJump, Tick: 9, Spline: "ground"})
	rec.Push(event.WalkerEvent{Type: event.EventLand, Tick: 12, Spline: "ground"})
	if err := rec.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	rows, err = rec.Ticks(10, 12)
	if err != nil {
		t.Fatalf("Ticks: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if r := rows[0]; r.Tick != 10 || r.Spline != "ground" || r.Mode != "grounded" || r.X != 10 || r.Z != -2 || r.InTransition {
		t.Errorf("Unexpected row %+v", r)
	}

	counts, err := rec.EventCounts()
	if err != nil {
		t.Fatalf("EventCounts: %v", err)
	}
	if counts["Jump"] != 2 || counts["Land"] != 1 {
		t.Errorf("Expected Jump 2 Land 1, got %v", counts)
	}

	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := rec.Record(state(999)); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}

	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer again.Close()
	rows, err = again.Ticks(0, n)
	if err != nil {
		t.Fatalf("Ticks after reopen: %v", err)
	}
	if uint64(len(rows)) != n {
		t.Errorf("Expected %d persisted rows, got %d", n, len(rows))
	}
}

// TestRecorderCloseFlushes verifies pending rows are written on Close
func TestRecorderCloseFlushes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.db")
	rec, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	rec.Record(state(1))
	rec.Push(event.WalkerEvent{Type: event.EventSplineSwitch, Tick: 1, Spline: "ramp"})
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Errorf("Expected second Close to be a no-op, got %v", err)
	}

	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer again.Close()
	counts, err := again.EventCounts()
	if err != nil {
		t.Fatalf("EventCounts: %v", err)
	}
	if counts["SplineSwitch"] != 1 {
		t.Errorf("Expected 1 SplineSwitch, got %v", counts)
	}
}

package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/rail-walker/parameter"
)

// TestQueueFIFO verifies events come out in push order and the queue drains
func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(WalkerEvent{Type: EventJump, Tick: uint64(i)})
	}
	if q.Len() != 5 {
		t.Errorf("Expected Len=5, got %d", q.Len())
	}
	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(got))
	}
	for i, ev := range got {
		if ev.Tick != uint64(i) {
			t.Errorf("Expected tick %d at %d, got %d", i, i, ev.Tick)
		}
	}
	if q.Consume() != nil {
		t.Errorf("Expected empty queue after consume")
	}
}

// TestQueueOverflow verifies the oldest events are overwritten when full
func TestQueueOverflow(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(WalkerEvent{Type: EventLand, Tick: uint64(i)})
	}
	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(got))
	}
	if got[0].Tick != 10 {
		t.Errorf("Expected oldest surviving tick 10, got %d", got[0].Tick)
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped, got %d", q.Dropped())
	}
}

// TestQueueConcurrentProducers verifies no events are lost under concurrent pushes within capacity
func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	const producers, each = 4, parameter.EventQueueSize / 8

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				q.Push(WalkerEvent{Type: EventSplineSwitch})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != producers*each {
		t.Errorf("Expected %d events, got %d", producers*each, got)
	}
}

// TestEventNames verifies the name registry round trips every type
func TestEventNames(t *testing.T) {
	for _, et := range AllTypes() {
		name := GetEventName(et)
		if name == "Unknown" {
			t.Errorf("Type %d has no name", et)
			continue
		}
		back, ok := GetEventType(name)
		if !ok || back != et {
			t.Errorf("Expected %s to map back to %d, got %d", name, et, back)
		}
	}
	if _, ok := GetEventType("wallhang"); !ok {
		t.Errorf("Expected case-insensitive lookup")
	}
}

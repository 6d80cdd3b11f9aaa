// Package trace records walker ticks and events into a SQLite database
package trace

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lixenwraith/rail-walker/event"
	"github.com/lixenwraith/rail-walker/parameter"
	"github.com/lixenwraith/rail-walker/walker"
)

var ErrClosed = errors.New("trace: recorder closed")

const schema = `
CREATE TABLE IF NOT EXISTS ticks (
	tick          INTEGER PRIMARY KEY,
	spline        TEXT    NOT NULL,
	t             REAL    NOT NULL,
	mode          TEXT    NOT NULL,
	in_transition INTEGER NOT NULL,
	speed         REAL    NOT NULL,
	x             REAL    NOT NULL,
	y             REAL    NOT NULL,
	z             REAL    NOT NULL
);
CREATE TABLE IF NOT EXISTS events (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	tick   INTEGER NOT NULL,
	type   TEXT    NOT NULL,
	spline TEXT    NOT NULL,
	t      REAL    NOT NULL
);
CREATE INDEX IF NOT EXISTS events_tick ON events(tick);
`

// Recorder buffers walker snapshots and events and writes them in batches,
// one transaction per batch
type Recorder struct {
	mu        sync.Mutex
	db        *sql.DB
	batchSize int
	ticks     []walker.State
	events    []event.WalkerEvent
	closed    bool
}

// Open creates or appends to the trace database at path
func Open(path string) (*Recorder, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("trace: open %s: %w", path, err)
	}
	// A single connection keeps :memory: databases shared across calls
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("trace: schema %s: %w", path, err)
	}
	return &Recorder{
		db:        db,
		batchSize: parameter.TraceBatchSize,
		ticks:     make([]walker.State, 0, parameter.TraceBatchSize),
	}, nil
}

// Record queues one snapshot, flushing when the batch is full
func (r *Recorder) Record(st walker.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.ticks = append(r.ticks, st)
	if len(r.ticks) >= r.batchSize {
		return r.flushLocked()
	}
	return nil
}

// Push implements event.Sink; events are written with the next flush
func (r *Recorder) Push(ev event.WalkerEvent) {
	r.mu.Lock()
	if !r.closed {
		r.events = append(r.events, ev)
	}
	r.mu.Unlock()
}

// Flush writes everything queued so far
func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	return r.flushLocked()
}

func (r *Recorder) flushLocked() error {
	if len(r.ticks) == 0 && len(r.events) == 0 {
		return nil
	}
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("trace: begin: %w", err)
	}
	if err := r.writeTx(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("trace: commit: %w", err)
	}
	r.ticks = r.ticks[:0]
	r.events = r.events[:0]
	return nil
}

func (r *Recorder) writeTx(tx *sql.Tx) error {
	ts, err := tx.Prepare(`INSERT OR REPLACE INTO ticks
		(tick, spline, t, mode, in_transition, speed, x, y, z)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("trace: prepare ticks: %w", err)
	}
	defer ts.Close()
	for _, st := range r.ticks {
		_, err := ts.Exec(st.Tick, st.Spline, st.T, st.Mode.String(), st.InTransition,
			st.Speed, st.Position.X, st.Position.Y, st.Position.Z)
		if err != nil {
			return fmt.Errorf("trace: tick %d: %w", st.Tick, err)
		}
	}

	es, err := tx.Prepare(`INSERT INTO events (tick, type, spline, t) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("trace: prepare events: %w", err)
	}
	defer es.Close()
	for _, ev := range r.events {
		if _, err := es.Exec(ev.Tick, ev.Type.String(), ev.Spline, ev.T); err != nil {
			return fmt.Errorf("trace: event %s: %w", ev.Type, err)
		}
	}
	return nil
}

// Close flushes pending rows and closes the database
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	ferr := r.flushLocked()
	r.closed = true
	return errors.Join(ferr, r.db.Close())
}

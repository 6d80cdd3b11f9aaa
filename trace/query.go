package trace

import (
	"fmt"
)

// TickRow is one recorded snapshot
type TickRow struct {
	Tick         uint64
	Spline       string
	T            float64
	Mode         string
	InTransition bool
	Speed        float64
	X, Y, Z      float64
}

// Ticks returns the recorded snapshots in [from, to], oldest first
// Pending rows are not visible until flushed
func (r *Recorder) Ticks(from, to uint64) ([]TickRow, error) {
	rows, err := r.db.Query(`SELECT tick, spline, t, mode, in_transition, speed, x, y, z
		FROM ticks WHERE tick BETWEEN ? AND ? ORDER BY tick`, from, to)
	if err != nil {
		return nil, fmt.Errorf("trace: query ticks: %w", err)
	}
	defer rows.Close()

	var out []TickRow
	for rows.Next() {
		var tr TickRow
		if err := rows.Scan(&tr.Tick, &tr.Spline, &tr.T, &tr.Mode, &tr.InTransition,
			&tr.Speed, &tr.X, &tr.Y, &tr.Z); err != nil {
			return nil, fmt.Errorf("trace: scan tick: %w", err)
		}
		out = append(out, tr)
	}
	return out, rows.Err()
}

// EventCounts returns the number of recorded events per type name
func (r *Recorder) EventCounts() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT type, COUNT(*) FROM events GROUP BY type`)
	if err != nil {
		return nil, fmt.Errorf("trace: query events: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("trace: scan event: %w", err)
		}
		out[name] = n
	}
	return out, rows.Err()
}

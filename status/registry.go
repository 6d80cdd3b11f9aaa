package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Registry groups metric maps by value type
// Writers cache cell pointers at setup; readers such as the HUD walk Lines
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines renders every metric as "key: value", grouped by type then sorted by key
func (r *Registry) Lines() []string {
	out := make([]string, 0, r.TotalCount())
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, k+": "+v.Load())
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, fmt.Sprintf("%s: %.3f", k, v.Get()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, k+": "+strconv.FormatInt(v.Load(), 10))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, k+": "+strconv.FormatBool(v.Load()))
	})
	return out
}

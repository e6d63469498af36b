package profiler

import (
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Scope timing with per-name accumulation. Disabled scopes cost a single
// atomic load. Intended use:
//
//	defer profiler.Start("renderer.frame")()

var (
	enabled atomic.Bool
	mu      sync.Mutex
	samples = map[string]*Sample{}
)

// Sample is the accumulated timing of one named scope.
type Sample struct {
	Name  string
	Calls int
	Total time.Duration
	Max   time.Duration
}

// Average returns the mean scope duration.
func (s Sample) Average() time.Duration {
	if s.Calls == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Calls)
}

func SetEnabled(on bool) { enabled.Store(on) }
func Enabled() bool      { return enabled.Load() }

// Start begins a scope and returns the func that ends it.
func Start(name string) func() {
	if !enabled.Load() {
		return func() {}
	}
	begin := time.Now()
	return func() {
		d := time.Since(begin)
		mu.Lock()
		s, ok := samples[name]
		if !ok {
			s = &Sample{Name: name}
			samples[name] = s
		}
		s.Calls++
		s.Total += d
		if d > s.Max {
			s.Max = d
		}
		mu.Unlock()
	}
}

// Drain returns all accumulated samples sorted by total time descending
// and clears the accumulator.
func Drain() []Sample {
	mu.Lock()
	out := make([]Sample, 0, len(samples))
	for _, s := range samples {
		out = append(out, *s)
	}
	samples = map[string]*Sample{}
	mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

// HeapStats reports current heap usage and cumulative GC cycles.
func HeapStats() (heapBytes uint64, gcCycles uint32) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc, m.NumGC
}

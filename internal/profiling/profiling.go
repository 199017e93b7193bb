// Package profiling is a lightweight per-frame CPU profiler.
//
// Usage: defer profiling.Track("subsystem.Operation")()
package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that adds the elapsed time to name.
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears the per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Snapshot returns a copy of the current per-frame totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// SumWithPrefix totals every bucket whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var sum time.Duration
	for k, v := range frameTotals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// Entry is one named bucket.
type Entry struct {
	Name string
	Dur  time.Duration
}

// Top returns the n largest buckets, largest first. Ties sort by name.
func Top(n int) []Entry {
	ss := Snapshot()
	list := make([]Entry, 0, len(ss))
	for k, v := range ss {
		list = append(list, Entry{Name: k, Dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Dur != list[j].Dur {
			return list[i].Dur > list[j].Dur
		}
		return list[i].Name < list[j].Name
	})
	if n < len(list) {
		list = list[:n]
	}
	return list
}

// TopN formats the n largest buckets, e.g. "renderer.points:4.2ms, renderer.mesh:0.3ms".
func TopN(n int) string {
	top := Top(n)
	parts := make([]string, 0, len(top))
	for _, e := range top {
		parts = append(parts, fmt.Sprintf("%s:%.1fms", e.Name, float64(e.Dur.Microseconds())/1000))
	}
	return strings.Join(parts, ", ")
}

// Package profiler tracks tick rate, per-tick update cost, and memory
// statistics for the engine's scene update loop.
package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks tick timing and memory statistics for performance
// monitoring. Outputs stats to the log at a configurable interval.
type Profiler struct {
	tickCount      int
	updateTotal    time.Duration
	updateMax      time.Duration
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
}

// NewProfiler creates a new Profiler with default settings.
// The log interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// Observe records the duration one scene update took. Call it once per tick
// with the measured Update cost.
//
// Parameters:
//   - d: the update duration for the tick
func (p *Profiler) Observe(d time.Duration) {
	p.updateTotal += d
	if d > p.updateMax {
		p.updateMax = d
	}
}

// Tick should be called once per engine tick. Logs tick rate, average and
// worst observed update cost, heap usage, and GC count when the log interval
// has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.tickCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	tps := float64(p.tickCount) / elapsed.Seconds()
	avgUpdate := time.Duration(0)
	if p.tickCount > 0 {
		avgUpdate = p.updateTotal / time.Duration(p.tickCount)
	}

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	gcDelta := p.memStats.NumGC - p.lastGCCount

	log.Printf("[Profiler] Ticks/s: %.2f | Update avg: %s max: %s | Heap: %.2f MB | GC: +%d",
		tps, avgUpdate, p.updateMax, allocMB, gcDelta)

	p.tickCount = 0
	p.updateTotal = 0
	p.updateMax = 0
	p.lastTime = currentTime
	p.lastGCCount = p.memStats.NumGC
	return true
}

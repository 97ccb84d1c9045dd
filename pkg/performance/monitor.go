package performance

import (
	"log"
	"sync"
	"time"

	"pico-arcade/pkg/framebuffer"
)

// SlowFlush is the longest a panel update may take before the menu
// visibly lags a button press
const SlowFlush = 50 * time.Millisecond

// RollingAverage maintains a rolling average of durations over a fixed window
type RollingAverage struct {
	samples    []time.Duration
	maxSamples int
	sum        time.Duration
	index      int
	filled     bool
}

// NewRollingAverage creates a rolling average tracker with specified window size
func NewRollingAverage(windowSize int) *RollingAverage {
	if windowSize < 1 {
		windowSize = 1
	}
	return &RollingAverage{
		samples:    make([]time.Duration, windowSize),
		maxSamples: windowSize,
	}
}

// Add records a new sample and updates the rolling average
func (r *RollingAverage) Add(d time.Duration) {
	// Subtract old value if we're overwriting
	if r.filled {
		r.sum -= r.samples[r.index]
	}

	r.samples[r.index] = d
	r.sum += d

	r.index++
	if r.index >= r.maxSamples {
		r.index = 0
		r.filled = true
	}
}

// Average returns the current rolling average
func (r *RollingAverage) Average() time.Duration {
	count := r.Count()
	if count == 0 {
		return 0
	}
	return r.sum / time.Duration(count)
}

// Count returns the number of samples currently tracked
func (r *RollingAverage) Count() int {
	if r.filled {
		return r.maxSamples
	}
	return r.index
}

// FlushReport contains aggregated panel update timings
type FlushReport struct {
	AvgMs     float64 // Rolling average flush time in milliseconds
	MaxMs     float64 // Slowest flush seen
	Flushes   int     // Total flushes timed
	Slow      int     // Flushes slower than SlowFlush
	IsHealthy bool    // True if the rolling average stays under SlowFlush
}

// FlushMonitor times display flushes and logs a summary every reportEvery
// flushes. reportEvery <= 0 disables the log line.
type FlushMonitor struct {
	name        string
	reportEvery int
	now         func() time.Time

	mu      sync.Mutex
	window  *RollingAverage
	flushes int
	slow    int
	max     time.Duration
}

// NewFlushMonitor creates a monitor averaging over windowSize flushes
func NewFlushMonitor(name string, windowSize, reportEvery int) *FlushMonitor {
	return &FlushMonitor{
		name:        name,
		reportEvery: reportEvery,
		now:         time.Now,
		window:      NewRollingAverage(windowSize),
	}
}

// Wrap times every call of flush
func (m *FlushMonitor) Wrap(flush framebuffer.FlushFunc) framebuffer.FlushFunc {
	return func(fb *framebuffer.Mono) error {
		start := m.now()
		err := flush(fb)
		m.Record(m.now().Sub(start))
		return err
	}
}

// Record adds one flush duration
func (m *FlushMonitor) Record(d time.Duration) {
	m.mu.Lock()
	m.window.Add(d)
	m.flushes++
	if d > SlowFlush {
		m.slow++
	}
	if d > m.max {
		m.max = d
	}
	due := m.reportEvery > 0 && m.flushes%m.reportEvery == 0
	m.mu.Unlock()

	if due {
		r := m.Report()
		log.Printf("Display flush stats | panel=%s | flushes=%d | avg_ms=%.2f | max_ms=%.2f | slow=%d",
			m.name, r.Flushes, r.AvgMs, r.MaxMs, r.Slow)
	}
}

// Report generates a report with current metrics
func (m *FlushMonitor) Report() FlushReport {
	m.mu.Lock()
	defer m.mu.Unlock()

	avg := m.window.Average()
	return FlushReport{
		AvgMs:     float64(avg.Microseconds()) / 1000.0,
		MaxMs:     float64(m.max.Microseconds()) / 1000.0,
		Flushes:   m.flushes,
		Slow:      m.slow,
		IsHealthy: avg <= SlowFlush,
	}
}

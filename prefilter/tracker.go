package prefilter

import "sync/atomic"

// Tracker wraps a Prefilter with effectiveness tracking.
//
// The tracker counts how many lines it checks and how many it rejects.
// When almost every line contains a literal, the scan is pure overhead on
// top of the NFA run, so once the reject rate falls below a threshold the
// tracker retires the prefilter for the rest of its life.
//
// Retiring never changes results: a retired tracker rejects nothing.
// A Tracker is safe for concurrent use.
//
// Example usage:
//
//	tracker := prefilter.NewTracker(pf)
//	for _, line := range lines {
//	    if tracker.Reject(line) {
//	        continue
//	    }
//	    // run the NFA
//	}
type Tracker struct {
	inner  Prefilter
	config TrackerConfig

	checked  atomic.Uint64 // lines scanned while active
	rejected atomic.Uint64 // lines without any literal
	retired  atomic.Bool
}

// TrackerConfig holds configuration for the effectiveness tracker.
type TrackerConfig struct {
	// CheckInterval is how often to check effectiveness (in lines).
	// Default: 64
	CheckInterval uint64

	// MinRejectRate is the minimum acceptable ratio of rejected to checked
	// lines. Below it the prefilter is retired.
	// Default: 0.1 (10%)
	MinRejectRate float64

	// WarmupPeriod is the minimum number of lines before checking effectiveness.
	// Default: 128
	WarmupPeriod uint64
}

// DefaultTrackerConfig returns the default tracker configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 64,
		MinRejectRate: 0.1,
		WarmupPeriod:  128,
	}
}

// NewTracker creates a new tracker for the given prefilter with default config.
//
// Returns nil if the inner prefilter is nil.
func NewTracker(inner Prefilter) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig creates a new tracker with custom configuration.
//
// Returns nil if the inner prefilter is nil.
func NewTrackerWithConfig(inner Prefilter, config TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}
	if config.CheckInterval == 0 {
		config.CheckInterval = 1
	}
	return &Tracker{inner: inner, config: config}
}

// Reject reports whether haystack contains none of the literals and so
// cannot match. A retired tracker always returns false.
func (t *Tracker) Reject(haystack []byte) bool {
	if t.retired.Load() {
		return false
	}

	reject := t.inner.Find(haystack, 0) < 0
	if reject {
		t.rejected.Add(1)
	}
	checked := t.checked.Add(1)
	if checked >= t.config.WarmupPeriod && checked%t.config.CheckInterval == 0 {
		t.checkEffectiveness(checked)
	}
	return reject
}

// checkEffectiveness retires the prefilter when too few lines are rejected.
func (t *Tracker) checkEffectiveness(checked uint64) {
	rate := float64(t.rejected.Load()) / float64(checked)
	if rate < t.config.MinRejectRate {
		t.retired.Store(true)
	}
}

// IsActive returns true if the prefilter is still being used.
func (t *Tracker) IsActive() bool {
	return !t.retired.Load()
}

// IsComplete delegates to the inner prefilter's IsComplete.
func (t *Tracker) IsComplete() bool {
	return t.inner.IsComplete()
}

// HeapBytes returns the memory used by the inner prefilter.
func (t *Tracker) HeapBytes() int {
	return t.inner.HeapBytes()
}

// Stats returns the current tracking statistics.
func (t *Tracker) Stats() (checked, rejected uint64, active bool) {
	return t.checked.Load(), t.rejected.Load(), t.IsActive()
}

// Reset clears statistics and re-enables the prefilter.
func (t *Tracker) Reset() {
	t.checked.Store(0)
	t.rejected.Store(0)
	t.retired.Store(false)
}

// Inner returns the underlying prefilter.
func (t *Tracker) Inner() Prefilter {
	return t.inner
}

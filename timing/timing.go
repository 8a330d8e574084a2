// Package timing measures the wall-clock duration of a single call.
//
// Durations come from time.Now/time.Since, which read Go's monotonic clock,
// so wall-clock adjustments during a run cannot make an elapsed time negative.
// Arguments are bound by the closure passed in:
//
//	c, secs := timing.Measure(func() *matrix.Dense { return f(a, b) })
package timing

import "time"

// Stopwatch records a start instant on the monotonic clock.
type Stopwatch struct {
	start time.Time
}

// Start returns a running Stopwatch.
func Start() Stopwatch {
	return Stopwatch{start: time.Now()}
}

// Duration returns the time elapsed since Start.
func (s Stopwatch) Duration() time.Duration {
	return time.Since(s.start)
}

// Seconds returns the time elapsed since Start in seconds.
func (s Stopwatch) Seconds() float64 {
	return s.Duration().Seconds()
}

// Measure runs fn once and returns its result together with the elapsed
// wall-clock time in seconds. Panics in fn propagate unchanged.
func Measure[T any](fn func() T) (T, float64) {
	sw := Start()
	out := fn()

	return out, sw.Seconds()
}

// MeasureErr runs fn once and returns its result, the elapsed time in
// seconds and fn's error exactly as fn returned it.
func MeasureErr[T any](fn func() (T, error)) (T, float64, error) {
	sw := Start()
	out, err := fn()

	return out, sw.Seconds(), err
}

package engine

import "time"

// Stopwatch measures elapsed time against a TimeProvider and can be restarted.
// Used for frame delta time and the AI cadence; not safe for concurrent use.
type Stopwatch struct {
	provider TimeProvider
	start    time.Time
}

// NewStopwatch creates a stopwatch started at the provider's current time
func NewStopwatch(provider TimeProvider) *Stopwatch {
	return &Stopwatch{
		provider: provider,
		start:    provider.Now(),
	}
}

// Elapsed returns time since the last restart
func (s *Stopwatch) Elapsed() time.Duration {
	return s.provider.Now().Sub(s.start)
}

// Restart resets the stopwatch and returns the time elapsed before the reset
func (s *Stopwatch) Restart() time.Duration {
	now := s.provider.Now()
	elapsed := now.Sub(s.start)
	s.start = now
	return elapsed
}

package timing

import "time"

// Stopwatch measures wall-clock time elapsed since the last restart, in
// seconds. The time source is injectable so schedulers can be tested against
// a fake clock.
type Stopwatch struct {
	now   func() time.Time
	start time.Time
}

func NewStopwatch() *Stopwatch {
	return NewStopwatchFunc(time.Now)
}

// NewStopwatchFunc creates a stopwatch reading time from now. A nil now
// falls back to time.Now.
func NewStopwatchFunc(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{now: now, start: now()}
}

// Elapsed returns the seconds since the last restart.
func (s *Stopwatch) Elapsed() float64 {
	return s.now().Sub(s.start).Seconds()
}

// Restart zeroes the elapsed time.
func (s *Stopwatch) Restart() {
	s.start = s.now()
}

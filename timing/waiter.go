package timing

import "time"

// IdleStrategy decides what the main loop does on an iteration where neither
// cadence was due.
type IdleStrategy int

const (
	// SpinWhenIdle busy-spins, trading power for latency. This is the
	// historical loop behavior and the default.
	SpinWhenIdle IdleStrategy = iota
	// YieldWhenIdle sleeps away most of the time until the nearer due tick,
	// leaving the remainder to the spin for accuracy.
	YieldWhenIdle
)

// Waiter implements the configured idle strategy. The sleep function is
// injectable for tests.
type Waiter struct {
	strategy IdleStrategy
	sleep    func(time.Duration)
}

func NewWaiter(strategy IdleStrategy) *Waiter {
	return &Waiter{strategy: strategy, sleep: time.Sleep}
}

// Idle is called with the seconds until the next due tick. Under
// SpinWhenIdle it returns immediately. Under YieldWhenIdle it sleeps for all
// but the last millisecond of the wait; waits under 2ms are spun through,
// which keeps tick jitter low on coarse sleepers.
func (w *Waiter) Idle(untilDue float64) {
	if w.strategy != YieldWhenIdle || untilDue <= 0 {
		return
	}
	d := time.Duration(untilDue * float64(time.Second))
	if d < 2*time.Millisecond {
		return
	}
	w.sleep(d - time.Millisecond)
}

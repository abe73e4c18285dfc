package timing

import "log/slog"

const (
	// MinPeriod is the shortest target period that is treated as a real cap.
	// Anything at or below it means "run as fast as possible".
	MinPeriod = 0.005
	// MaxPeriod is the longest accepted target period, in seconds.
	MaxPeriod = 1.0
	// MaxFrequency is the highest accepted target frequency, in Hz.
	MaxFrequency = 200.0
)

// RangePolicy decides what a cadence does with a target value above the
// documented ceiling (period > MaxPeriod, frequency > MaxFrequency).
type RangePolicy int

const (
	// RangeDrop keeps the previous target and logs a diagnostic. This is the
	// historical behavior and the default.
	RangeDrop RangePolicy = iota
	// RangeClamp pins the target to the ceiling instead of dropping it.
	RangeClamp
)

// Cadence holds the target and measured period for one periodic callback.
// A period of 0 means the cadence is uncapped.
type Cadence struct {
	name     string
	policy   RangePolicy
	period   float64
	measured float64
}

func NewCadence(name string, policy RangePolicy) *Cadence {
	return &Cadence{name: name, policy: policy}
}

// SetPeriod sets the target period in seconds. Values at or below MinPeriod
// uncap the cadence. Values above MaxPeriod are handled per the RangePolicy.
func (c *Cadence) SetPeriod(p float64) {
	switch {
	case p <= MinPeriod:
		c.period = 0
	case p <= MaxPeriod:
		c.period = p
	case c.policy == RangeClamp:
		slog.Debug("clamping target period", "cadence", c.name, "requested", p, "max", MaxPeriod)
		c.period = MaxPeriod
	default:
		slog.Warn("ignoring out-of-range target period", "cadence", c.name, "requested", p, "max", MaxPeriod)
	}
}

// SetFrequency sets the target as a frequency in Hz. Values at or below 1 Hz
// uncap the cadence. Values above MaxFrequency are handled per the RangePolicy.
func (c *Cadence) SetFrequency(f float64) {
	switch {
	case f <= 1.0:
		c.period = 0
	case f <= MaxFrequency:
		c.period = 1 / f
	case c.policy == RangeClamp:
		slog.Debug("clamping target frequency", "cadence", c.name, "requested", f, "max", MaxFrequency)
		c.period = 1 / MaxFrequency
	default:
		slog.Warn("ignoring out-of-range target frequency", "cadence", c.name, "requested", f, "max", MaxFrequency)
	}
}

// Period returns the target period in seconds, 0 when uncapped.
func (c *Cadence) Period() float64 { return c.period }

// Uncapped reports whether the cadence has no target period.
func (c *Cadence) Uncapped() bool { return c.period == 0 }

// Frequency returns the target frequency in Hz. An uncapped cadence reads as
// 1.0, a sentinel that keeps the value finite rather than a true rate.
func (c *Cadence) Frequency() float64 {
	if c.period == 0 {
		return 1.0
	}
	return 1 / c.period
}

// Measured returns the last observed period in seconds, 0 before any tick ran.
func (c *Cadence) Measured() float64 { return c.measured }

// SetMeasured records an observed period. Only the scheduler calls this.
func (c *Cadence) SetMeasured(p float64) { c.measured = p }

// MeasuredFrequency returns the observed rate in Hz, with the same 1.0
// sentinel as Frequency when nothing has been measured yet.
func (c *Cadence) MeasuredFrequency() float64 {
	if c.measured == 0 {
		return 1.0
	}
	return 1 / c.measured
}

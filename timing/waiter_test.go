package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaiterSpinNeverSleeps(t *testing.T) {
	w := NewWaiter(SpinWhenIdle)
	slept := false
	w.sleep = func(time.Duration) { slept = true }

	w.Idle(0.5)
	assert.False(t, slept)
}

func TestWaiterYield(t *testing.T) {
	tests := []struct {
		name     string
		untilDue float64
		expected time.Duration // 0 means no sleep
	}{
		{name: "long wait sleeps all but a millisecond", untilDue: 0.010, expected: 9 * time.Millisecond},
		{name: "short wait is spun through", untilDue: 0.0015, expected: 0},
		{name: "already due does not sleep", untilDue: 0, expected: 0},
		{name: "negative does not sleep", untilDue: -0.01, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWaiter(YieldWhenIdle)
			var got time.Duration
			w.sleep = func(d time.Duration) { got = d }

			w.Idle(tt.untilDue)
			assert.Equal(t, tt.expected, got)
		})
	}
}

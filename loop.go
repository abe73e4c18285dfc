package opentk

import (
	"math"

	"github.com/feruxmax/opentk/timing"
)

// maxElapsed caps every elapsed-time measurement, in seconds. Without it a
// stall (breakpoint, suspend, modal drag) would be followed by a runaway
// burst of catch-up ticks.
const maxElapsed = 0.1

// loop is the frame scheduler. One iteration pumps OS events, runs the
// update catch-up phase, then at most one render tick. The update cadence is
// the protected one: it may run several ticks per iteration to stay aligned
// with wall-clock time. The render cadence is best-effort and simply skips
// iterations where it is not due, so a slow update phase drops frames
// instead of corrupting simulation time.
func (w *Window) loop() {
	updateWatch := timing.NewStopwatchFunc(w.now)
	renderWatch := timing.NewStopwatchFunc(w.now)

	var (
		nextUpdate  float64
		nextRender  float64
		updateSum   float64
		updateTicks int
	)

	for w.surface.Exists() && !w.exiting {
		w.surface.ProcessEvents()
		if w.exiting {
			break
		}

		// Update phase. While the cadence is behind, charge each tick with
		// the time observed before it and run it. The timer restarts before
		// the dispatch so the re-measurement below sees the tick's own cost
		// and feeds it into the next due-time test: slow updates must not
		// starve subsequent scheduling.
		t := clampElapsed(updateWatch.Elapsed())
		ranUpdate := false
		for nextUpdate-t <= 0 {
			ranUpdate = true
			nextUpdate += w.update.Period() - t
			updateSum += t
			updateTicks++
			updateWatch.Restart()
			w.checkResize()
			w.dispatchUpdate(UpdateEvent{Elapsed: t})
			if w.update.Uncapped() {
				// Uncapped means one tick per iteration, never a burst.
				break
			}
			t = clampElapsed(updateWatch.Elapsed())
		}
		if updateTicks > 0 {
			w.update.SetMeasured(updateSum / float64(updateTicks))
			updateSum, updateTicks = 0, 0
		}

		if w.exiting {
			break
		}

		// Render phase: a single due-time test, no catch-up. Drawing stale
		// frames repeatedly would not recover anything.
		elapsed := clampElapsed(renderWatch.Elapsed())
		if nextRender-elapsed <= 0 {
			nextRender += w.render.Period() - elapsed
			renderWatch.Restart()
			w.render.SetMeasured(elapsed)
			w.dispatchRender(RenderEvent{Elapsed: elapsed, ScaleFactor: w.scaleFactor()})
		} else if !ranUpdate {
			w.waiter.Idle(math.Min(nextUpdate-t, nextRender-elapsed))
		}
	}
}

func clampElapsed(t float64) float64 {
	if t > maxElapsed {
		return maxElapsed
	}
	return t
}

// checkResize compares the surface's drawable size against the cache and
// dispatches Resize on a difference. It runs right before each update
// dispatch, which ties resize notifications to the update cadence.
func (w *Window) checkResize() {
	width, height := w.surface.Size()
	if width == w.width && height == w.height {
		return
	}
	w.dispatchResize(ResizeEvent{Width: width, Height: height})
}

// scaleFactor is the interpolation hint handed to render ticks: measured
// render period over measured update period, 1.0 until both are known or
// when the ratio is non-finite.
func (w *Window) scaleFactor() float64 {
	mu := w.update.Measured()
	mr := w.render.Measured()
	if mu == 0 || mr == 0 {
		return 1.0
	}
	s := mr / mu
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 1.0
	}
	return s
}

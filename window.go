package opentk

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/feruxmax/opentk/input"
	"github.com/feruxmax/opentk/platform"
	"github.com/feruxmax/opentk/timing"
)

// ErrRateRange is returned by Run when a target rate lies outside [0, 200] Hz.
var ErrRateRange = errors.New("target rate out of range")

// Window owns one native surface and the loop that drives it. It is single
// threaded: every callback fires on the goroutine that called Run.
type Window struct {
	cfg     Config
	surface platform.Surface

	state    State
	exiting  bool
	disposed bool

	update *timing.Cadence
	render *timing.Cadence
	waiter *timing.Waiter
	now    func() time.Time

	// Cached drawable size, refreshed on the update cadence.
	width  int
	height int

	// Hooks are the per-kind overridable handlers, invoked after observers.
	Hooks Hooks

	loadObs    observerList[struct{}]
	updateObs  observerList[UpdateEvent]
	renderObs  observerList[RenderEvent]
	resizeObs  observerList[ResizeEvent]
	unloadObs  observerList[struct{}]
	destroyObs observerList[struct{}]
}

// New creates a window on the surface driver named by cfg.Backend.
func New(cfg Config) (*Window, error) {
	cfg = cfg.withDefaults()
	surface, err := platform.New(cfg.Backend)
	if err != nil {
		return nil, err
	}
	return NewWith(surface, cfg)
}

// NewWith creates a window over a caller-supplied surface. The surface must
// not exist yet; creating over a live surface is a precondition failure.
func NewWith(surface platform.Surface, cfg Config) (*Window, error) {
	cfg = cfg.withDefaults()
	w := &Window{
		cfg:     cfg,
		surface: surface,
		update:  timing.NewCadence("update", cfg.RangePolicy),
		render:  timing.NewCadence("render", cfg.RangePolicy),
		waiter:  timing.NewWaiter(cfg.IdleStrategy),
		now:     time.Now,
	}
	if err := surface.Create(w.platformConfig(cfg.Width, cfg.Height)); err != nil {
		return nil, fmt.Errorf("failed to create surface: %w", err)
	}
	w.width, w.height = surface.Size()
	w.state = StateCreated
	return w, nil
}

func (w *Window) platformConfig(width, height int) platform.Config {
	return platform.Config{
		Title:  w.cfg.Title,
		Width:  width,
		Height: height,
		VSync:  w.cfg.VSync,
		Callbacks: platform.Callbacks{
			CloseRequested: w.Exit,
			Destroying:     w.handleDestroying,
		},
	}
}

// handleDestroying fires the Destroy occurrence exactly once, while the
// surface's graphics context is still valid.
func (w *Window) handleDestroying() {
	if w.disposed {
		return
	}
	w.disposed = true
	w.dispatchDestroy()
}

// Run drives the main loop until Exit is called or the surface goes away.
// Each target is a rate in Hz within [0, 200]; 0 means uncapped. Run fires
// Load before the first iteration and Unload exactly once after the last,
// then tears the surface down and returns with the window Destroyed.
func (w *Window) Run(updateHz, renderHz float64) error {
	if err := checkRate("update", updateHz); err != nil {
		return err
	}
	if err := checkRate("render", renderHz); err != nil {
		return err
	}
	if w.state != StateCreated {
		return fmt.Errorf("cannot run a %s window", w.state)
	}
	w.update.SetFrequency(updateHz)
	w.render.SetFrequency(renderHz)
	w.state = StateRunning
	slog.Info("entering main loop",
		"update_period", w.update.Period(),
		"render_period", w.render.Period())

	w.dispatchLoad()
	w.loop()

	w.dispatchUnload()
	if w.surface.Exists() {
		if err := w.surface.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy surface: %w", err)
		}
	}
	// Teardown may be asynchronous; keep pumping until the surface is gone.
	for w.surface.Exists() {
		w.surface.ProcessEvents()
	}
	w.state = StateDestroyed
	slog.Info("main loop finished")
	return nil
}

func checkRate(name string, hz float64) error {
	if math.IsNaN(hz) || hz < 0 || hz > timing.MaxFrequency {
		return fmt.Errorf("%s rate %v not in [0, %v]: %w", name, hz, timing.MaxFrequency, ErrRateRange)
	}
	return nil
}

// Exit asks the loop to stop. It only raises a flag: the loop observes it
// cooperatively at its two checkpoints, so an Exit from inside an update or
// render observer lets the current iteration's remaining phases finish.
// Idempotent.
func (w *Window) Exit() {
	if w.exiting {
		return
	}
	w.exiting = true
	if w.state == StateRunning {
		w.state = StateExiting
	}
}

// State returns the lifecycle stage.
func (w *Window) State() State { return w.state }

// Exists reports whether the native surface is alive.
func (w *Window) Exists() bool { return w.surface.Exists() }

// Size returns the drawable size, live from the surface when it exists and
// from the cache otherwise.
func (w *Window) Size() (int, int) {
	if w.surface.Exists() {
		return w.surface.Size()
	}
	return w.width, w.height
}

// SetSize forwards to the surface. Non-positive dimensions are rejected.
func (w *Window) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return platform.ErrInvalidSize
	}
	return w.surface.SetSize(width, height)
}

func (w *Window) Title() string { return w.surface.Title() }

func (w *Window) SetTitle(title string) { w.surface.SetTitle(title) }

// Context returns the surface's graphics context. Asking for it before a
// surface exists re-creates one at the default size — a recovery path with a
// diagnostic, skipped when the window is already exiting.
func (w *Window) Context() platform.Context {
	if !w.surface.Exists() {
		if w.exiting {
			return nil
		}
		slog.Warn("graphics context requested without a surface, creating one at default size",
			"width", DefaultWidth, "height", DefaultHeight)
		if err := w.surface.Create(w.platformConfig(DefaultWidth, DefaultHeight)); err != nil {
			slog.Error("surface recovery failed", "error", err)
			return nil
		}
		w.width, w.height = w.surface.Size()
	}
	return w.surface.Context()
}

// Keyboard returns the primary keyboard, or nil when none is connected.
func (w *Window) Keyboard() *input.Device {
	return input.Primary(w.surface.Input().Keyboards())
}

// Pointer returns the primary pointer device, or nil when none is connected.
func (w *Window) Pointer() *input.Device {
	return input.Primary(w.surface.Input().Pointers())
}

// SetTargetUpdateFrequency sets the update rate in Hz; values at or below
// 1 Hz uncap the cadence, values above 200 Hz follow the RangePolicy.
func (w *Window) SetTargetUpdateFrequency(hz float64) { w.update.SetFrequency(hz) }

// SetTargetUpdatePeriod sets the update period in seconds; values at or
// below 5 ms uncap the cadence, values above 1 s follow the RangePolicy.
func (w *Window) SetTargetUpdatePeriod(p float64) { w.update.SetPeriod(p) }

func (w *Window) TargetUpdateFrequency() float64 { return w.update.Frequency() }

func (w *Window) TargetUpdatePeriod() float64 { return w.update.Period() }

// UpdatePeriod returns the measured update period, a rolling average over
// the ticks of the last loop iteration that ran any.
func (w *Window) UpdatePeriod() float64 { return w.update.Measured() }

func (w *Window) UpdateFrequency() float64 { return w.update.MeasuredFrequency() }

func (w *Window) SetTargetRenderFrequency(hz float64) { w.render.SetFrequency(hz) }

func (w *Window) SetTargetRenderPeriod(p float64) { w.render.SetPeriod(p) }

func (w *Window) TargetRenderFrequency() float64 { return w.render.Frequency() }

func (w *Window) TargetRenderPeriod() float64 { return w.render.Period() }

// RenderPeriod returns the measured render period, the elapsed time of the
// most recent render tick.
func (w *Window) RenderPeriod() float64 { return w.render.Measured() }

func (w *Window) RenderFrequency() float64 { return w.render.MeasuredFrequency() }

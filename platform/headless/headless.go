// Package headless provides an in-memory surface with no OS window behind
// it. It is always available, which makes it the fallback driver for batch
// runs and tests.
package headless

import (
	"log/slog"

	"github.com/feruxmax/opentk/input"
	"github.com/feruxmax/opentk/platform"
)

func init() {
	platform.Register("headless", 10, true, func() platform.Surface { return New() })
}

// Surface implements platform.Surface without any native resources. Teardown
// is deliberately asynchronous: Destroy marks the surface and the next event
// pump finishes it, so the shell's pump-until-gone exit path is exercised the
// same way it is against a real window system.
type Surface struct {
	cfg        platform.Config
	context    context
	exists     bool
	destroying bool
	width      int
	height     int
	title      string

	pumps       int
	frameBudget int
}

func New() *Surface {
	return &Surface{}
}

// SetFrameBudget makes the surface request its own close after n event
// pumps. Zero disables the budget. Batch runs use this to terminate.
func (s *Surface) SetFrameBudget(n int) {
	s.frameBudget = n
}

func (s *Surface) Create(cfg platform.Config) error {
	if s.exists {
		return platform.ErrSurfaceExists
	}
	s.cfg = cfg
	s.width = cfg.Width
	s.height = cfg.Height
	s.title = cfg.Title
	s.context = context{vsync: cfg.VSync}
	s.exists = true
	s.destroying = false
	s.pumps = 0
	slog.Info("headless surface created", "width", s.width, "height", s.height, "title", s.title)
	return nil
}

func (s *Surface) Destroy() error {
	if !s.exists {
		return platform.ErrNoSurface
	}
	s.destroying = true
	return nil
}

func (s *Surface) Exists() bool { return s.exists }

// Idle always holds: there is no OS event queue.
func (s *Surface) Idle() bool { return true }

func (s *Surface) ProcessEvents() {
	if !s.exists {
		return
	}
	if s.destroying {
		if s.cfg.Callbacks.Destroying != nil {
			s.cfg.Callbacks.Destroying()
		}
		s.exists = false
		s.destroying = false
		slog.Info("headless surface destroyed", "pumps", s.pumps)
		return
	}
	s.pumps++
	if s.frameBudget > 0 && s.pumps >= s.frameBudget {
		s.frameBudget = 0
		slog.Info("headless frame budget reached", "pumps", s.pumps)
		if s.cfg.Callbacks.CloseRequested != nil {
			s.cfg.Callbacks.CloseRequested()
		}
	}
}

func (s *Surface) Size() (int, int) { return s.width, s.height }

func (s *Surface) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return platform.ErrInvalidSize
	}
	s.width, s.height = width, height
	return nil
}

func (s *Surface) Title() string { return s.title }

func (s *Surface) SetTitle(title string) { s.title = title }

func (s *Surface) Context() platform.Context { return &s.context }

// Input reports no devices: nothing is connected to a headless surface.
func (s *Surface) Input() input.Driver {
	return input.NewStaticDriver(nil, nil)
}

type context struct {
	vsync bool
	swaps int
}

func (c *context) SwapBuffers() { c.swaps++ }

func (c *context) VSync() bool { return c.vsync }

func (c *context) SetVSync(on bool) { c.vsync = on }

//go:build glfw

// Package glfw implements a native window surface over GLFW 3.3. Building it
// requires the GLFW development libraries and the glfw build tag; default
// builds register a stub instead.
package glfw

import (
	"fmt"
	"log/slog"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/feruxmax/opentk/input"
	"github.com/feruxmax/opentk/platform"
)

func init() {
	platform.Register("glfw", 30, true, func() platform.Surface { return New() })
}

// Surface implements platform.Surface over a GLFW window. GLFW requires all
// window and event calls to come from the thread that initialized it, so
// Create pins the calling goroutine to its OS thread.
type Surface struct {
	cfg     platform.Config
	window  *glfw.Window
	context context

	exists     bool
	destroying bool
}

func New() *Surface {
	return &Surface{}
}

func (s *Surface) Create(cfg platform.Config) error {
	if s.exists {
		return platform.ErrSurfaceExists
	}
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()
	window.SetCloseCallback(func(*glfw.Window) {
		if s.cfg.Callbacks.CloseRequested != nil {
			s.cfg.Callbacks.CloseRequested()
		}
	})

	s.cfg = cfg
	s.window = window
	s.context = context{window: window}
	s.context.SetVSync(cfg.VSync)
	s.exists = true
	s.destroying = false
	slog.Info("GLFW surface created", "width", cfg.Width, "height", cfg.Height, "title", cfg.Title)
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

// Idle always holds: GLFW offers no queue introspection, but PollEvents
// returns immediately when nothing is pending.
func (s *Surface) Idle() bool { return true }

func (s *Surface) ProcessEvents() {
	if !s.exists {
		return
	}
	if s.destroying {
		if s.cfg.Callbacks.Destroying != nil {
			s.cfg.Callbacks.Destroying()
		}
		s.window.Destroy()
		glfw.Terminate()
		s.window = nil
		s.exists = false
		s.destroying = false
		slog.Info("GLFW surface destroyed")
		return
	}
	glfw.PollEvents()
}

func (s *Surface) Size() (int, int) {
	if s.window == nil {
		return s.cfg.Width, s.cfg.Height
	}
	return s.window.GetSize()
}

func (s *Surface) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return platform.ErrInvalidSize
	}
	if s.window != nil {
		s.window.SetSize(width, height)
	}
	return nil
}

func (s *Surface) Title() string { return s.cfg.Title }

func (s *Surface) SetTitle(title string) {
	s.cfg.Title = title
	if s.window != nil {
		s.window.SetTitle(title)
	}
}

func (s *Surface) Context() platform.Context { return &s.context }

func (s *Surface) Input() input.Driver {
	return input.NewStaticDriver(
		[]input.Device{{Name: "system keyboard", Kind: input.Keyboard}},
		[]input.Device{{Name: "system mouse", Kind: input.Pointer, Buttons: 3}},
	)
}

type context struct {
	window *glfw.Window
	vsync  bool
}

func (c *context) SwapBuffers() {
	if c.window != nil {
		c.window.SwapBuffers()
	}
}

func (c *context) VSync() bool { return c.vsync }

func (c *context) SetVSync(on bool) {
	interval := 0
	if on {
		interval = 1
	}
	glfw.SwapInterval(interval)
	c.vsync = on
}

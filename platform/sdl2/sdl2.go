//go:build sdl2

// Package sdl2 implements a native window surface over SDL2 with an OpenGL
// context. Building it requires the SDL2 development libraries and the sdl2
// build tag; default builds register a stub instead.
package sdl2

import (
	"fmt"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/feruxmax/opentk/input"
	"github.com/feruxmax/opentk/platform"
)

func init() {
	platform.Register("sdl2", 40, true, func() platform.Surface { return New() })
}

// Surface implements platform.Surface over an SDL2 window.
type Surface struct {
	cfg       platform.Config
	window    *sdl.Window
	glContext sdl.GLContext
	context   context

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
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}
	window, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %w", err)
	}
	glContext, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create GL context: %w", err)
	}
	if err := window.GLMakeCurrent(glContext); err != nil {
		sdl.GLDeleteContext(glContext)
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to make GL context current: %w", err)
	}

	s.cfg = cfg
	s.window = window
	s.glContext = glContext
	s.context = context{window: window}
	s.context.SetVSync(cfg.VSync)
	s.exists = true
	s.destroying = false
	slog.Info("SDL2 surface created", "width", cfg.Width, "height", cfg.Height, "title", cfg.Title)
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

func (s *Surface) Idle() bool {
	return !sdl.HasEvents(sdl.FIRSTEVENT, sdl.LASTEVENT)
}

func (s *Surface) ProcessEvents() {
	if !s.exists {
		return
	}
	if s.destroying {
		if s.cfg.Callbacks.Destroying != nil {
			s.cfg.Callbacks.Destroying()
		}
		sdl.GLDeleteContext(s.glContext)
		s.window.Destroy()
		sdl.Quit()
		s.window = nil
		s.exists = false
		s.destroying = false
		slog.Info("SDL2 surface destroyed")
		return
	}
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			if s.cfg.Callbacks.CloseRequested != nil {
				s.cfg.Callbacks.CloseRequested()
			}
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				if s.cfg.Callbacks.CloseRequested != nil {
					s.cfg.Callbacks.CloseRequested()
				}
			}
		}
	}
}

func (s *Surface) Size() (int, int) {
	if s.window == nil {
		return s.cfg.Width, s.cfg.Height
	}
	w, h := s.window.GetSize()
	return int(w), int(h)
}

func (s *Surface) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return platform.ErrInvalidSize
	}
	if s.window != nil {
		s.window.SetSize(int32(width), int32(height))
	}
	return nil
}

func (s *Surface) Title() string {
	if s.window == nil {
		return s.cfg.Title
	}
	return s.window.GetTitle()
}

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
	window *sdl.Window
	vsync  bool
}

func (c *context) SwapBuffers() {
	if c.window != nil {
		c.window.GLSwap()
	}
}

func (c *context) VSync() bool { return c.vsync }

func (c *context) SetVSync(on bool) {
	interval := 0
	if on {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		slog.Warn("failed to set swap interval", "vsync", on, "error", err)
		return
	}
	c.vsync = on
}

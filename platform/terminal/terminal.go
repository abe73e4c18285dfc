// Package terminal implements a surface on top of a tcell screen. The
// terminal cell grid stands in for the drawable: Size reports columns and
// rows, and SwapBuffers presents the pending cells. Useful for running the
// shell over SSH or in CI where no window system exists.
package terminal

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/feruxmax/opentk/input"
	"github.com/feruxmax/opentk/platform"
)

func init() {
	platform.Register("terminal", 20, true, func() platform.Surface { return New() })
}

// Surface implements platform.Surface over tcell.
type Surface struct {
	newScreen func() (tcell.Screen, error)
	screen    tcell.Screen
	cfg       platform.Config
	context   context
	title     string

	exists     bool
	destroying bool
}

func New() *Surface {
	return &Surface{newScreen: tcell.NewScreen}
}

// NewWithScreen builds a surface over a caller-supplied screen, e.g. a tcell
// simulation screen in tests.
func NewWithScreen(screen tcell.Screen) *Surface {
	return &Surface{newScreen: func() (tcell.Screen, error) { return screen, nil }}
}

func (s *Surface) Create(cfg platform.Config) error {
	if s.exists {
		return platform.ErrSurfaceExists
	}
	screen, err := s.newScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	s.screen = screen
	s.cfg = cfg
	s.title = cfg.Title
	s.context = context{screen: screen, vsync: cfg.VSync}
	s.exists = true
	s.destroying = false
	slog.Info("terminal surface created", "title", s.title)
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
	return s.screen == nil || !s.screen.HasPendingEvent()
}

// ProcessEvents drains the tcell event queue. Escape or Ctrl-C ask the shell
// to close; the surface never tears itself down on its own.
func (s *Surface) ProcessEvents() {
	if !s.exists {
		return
	}
	if s.destroying {
		if s.cfg.Callbacks.Destroying != nil {
			s.cfg.Callbacks.Destroying()
		}
		s.screen.Fini()
		s.exists = false
		s.destroying = false
		slog.Info("terminal surface destroyed")
		return
	}
	for s.screen.HasPendingEvent() {
		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				if s.cfg.Callbacks.CloseRequested != nil {
					s.cfg.Callbacks.CloseRequested()
				}
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

func (s *Surface) Size() (int, int) {
	if s.screen == nil {
		return s.cfg.Width, s.cfg.Height
	}
	return s.screen.Size()
}

// SetSize validates its arguments but cannot resize a terminal; accepted
// values are ignored with a diagnostic.
func (s *Surface) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return platform.ErrInvalidSize
	}
	slog.Debug("terminal surface ignores resize requests", "width", width, "height", height)
	return nil
}

func (s *Surface) Title() string { return s.title }

func (s *Surface) SetTitle(title string) { s.title = title }

func (s *Surface) Context() platform.Context { return &s.context }

// Input reports a single keyboard and no pointer; mouse reporting is not
// enabled on the screen.
func (s *Surface) Input() input.Driver {
	return input.NewStaticDriver(
		[]input.Device{{Name: "terminal keyboard", Kind: input.Keyboard}},
		nil,
	)
}

// SetStatus replaces the text lines the context draws on the next present.
// The demo application uses this as a minimal pacing dashboard.
func (s *Surface) SetStatus(lines ...string) {
	s.context.status = lines
}

type context struct {
	screen tcell.Screen
	vsync  bool
	status []string
}

func (c *context) SwapBuffers() {
	if c.screen == nil {
		return
	}
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	for row, line := range c.status {
		col := 0
		for _, r := range line {
			c.screen.SetContent(col, row, r, nil, style)
			col++
		}
	}
	c.screen.Show()
}

func (c *context) VSync() bool { return c.vsync }

func (c *context) SetVSync(on bool) { c.vsync = on }

//go:build !sdl2

package sdl2

import (
	"fmt"

	"github.com/feruxmax/opentk/input"
	"github.com/feruxmax/opentk/platform"
)

func init() {
	platform.Register("sdl2", 40, false, func() platform.Surface { return New() })
}

// Surface stub for builds without the sdl2 tag. Create always fails;
// everything else is inert.
type Surface struct{}

func New() *Surface {
	return &Surface{}
}

func (s *Surface) Create(platform.Config) error {
	return fmt.Errorf("SDL2 surface not available - compile with -tags sdl2 and install SDL2 development libraries: %w", platform.ErrUnsupported)
}

func (s *Surface) Destroy() error { return platform.ErrNoSurface }

func (s *Surface) Exists() bool { return false }

func (s *Surface) Idle() bool { return true }

func (s *Surface) ProcessEvents() {}

func (s *Surface) Size() (int, int) { return 0, 0 }

func (s *Surface) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return platform.ErrInvalidSize
	}
	return platform.ErrNoSurface
}

func (s *Surface) Title() string { return "" }

func (s *Surface) SetTitle(string) {}

func (s *Surface) Context() platform.Context { return nopContext{} }

func (s *Surface) Input() input.Driver { return input.NewStaticDriver(nil, nil) }

type nopContext struct{}

func (nopContext) SwapBuffers() {}

func (nopContext) VSync() bool { return false }

func (nopContext) SetVSync(bool) {}

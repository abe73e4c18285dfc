//go:build !glfw

package glfw

import (
	"fmt"

	"github.com/feruxmax/opentk/input"
	"github.com/feruxmax/opentk/platform"
)

func init() {
	platform.Register("glfw", 30, false, func() platform.Surface { return New() })
}

// Surface stub for builds without the glfw tag. Create always fails;
// everything else is inert.
type Surface struct{}

func New() *Surface {
	return &Surface{}
}

func (s *Surface) Create(platform.Config) error {
	return fmt.Errorf("GLFW surface not available - compile with -tags glfw and install GLFW development libraries: %w", platform.ErrUnsupported)
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

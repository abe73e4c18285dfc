// Package platform defines the native-surface contract the shell drives: an
// OS window (or a stand-in for one), its graphics context, and its input
// devices, behind a narrow interface. Concrete drivers live in subpackages
// and register themselves at init time.
package platform

import (
	"errors"

	"github.com/feruxmax/opentk/input"
)

var (
	// ErrSurfaceExists is returned by Create when a surface already exists.
	ErrSurfaceExists = errors.New("surface already exists")
	// ErrNoSurface is returned by Destroy when no surface exists.
	ErrNoSurface = errors.New("no surface exists")
	// ErrInvalidSize is returned when a dimension is zero or negative.
	ErrInvalidSize = errors.New("surface dimensions must be positive")
	// ErrUnsupported is returned when the requested driver is not available
	// on this build or platform.
	ErrUnsupported = errors.New("platform not supported")
)

// Config holds the parameters a surface is created with.
type Config struct {
	Title     string
	Width     int
	Height    int
	VSync     bool
	Callbacks Callbacks
}

// Callbacks carries surface-to-shell notifications. All of them are optional.
type Callbacks struct {
	// CloseRequested fires when the OS asks the surface to close (window
	// close button, Ctrl-C on a terminal, ...). The surface does not tear
	// itself down; the shell decides.
	CloseRequested func()
	// Destroying fires exactly once while the surface is being torn down,
	// before its graphics context goes away. Last chance to release
	// context-dependent resources.
	Destroying func()
}

// Context is the drawable side of a surface.
type Context interface {
	SwapBuffers()
	VSync() bool
	SetVSync(on bool)
}

// Surface is the native window/context/input bundle the shell drives.
// Implementations are not safe for concurrent use; the shell is the only
// caller.
type Surface interface {
	// Create brings the surface into existence. Creating over an existing
	// surface returns ErrSurfaceExists.
	Create(Config) error
	// Destroy requests teardown. Destroying a non-existent surface returns
	// ErrNoSurface. Teardown may complete asynchronously: the surface keeps
	// reporting existence until a later ProcessEvents finishes it, firing
	// Callbacks.Destroying along the way.
	Destroy() error
	Exists() bool
	// Idle reports whether the OS event queue is empty.
	Idle() bool
	// ProcessEvents pumps pending OS events until the queue is drained. It
	// never blocks waiting for new events.
	ProcessEvents()
	Size() (width, height int)
	SetSize(width, height int) error
	Title() string
	SetTitle(title string)
	Context() Context
	Input() input.Driver
}

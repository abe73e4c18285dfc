// Package input defines the device-enumeration contract a surface exposes to
// the shell. The shell never polls devices itself; it only reports what is
// connected.
package input

// Kind distinguishes the device classes a driver enumerates.
type Kind int

const (
	Keyboard Kind = iota
	Pointer
)

func (k Kind) String() string {
	switch k {
	case Keyboard:
		return "keyboard"
	case Pointer:
		return "pointer"
	default:
		return "unknown"
	}
}

// Device describes one connected input device.
type Device struct {
	Name string
	Kind Kind
	// Buttons is the number of keys or buttons the device reports, when the
	// platform exposes it. Zero means unknown.
	Buttons int
}

// Driver enumerates the input devices attached to a surface, in platform
// order. The primary device of each kind is at index 0.
type Driver interface {
	Keyboards() []Device
	Pointers() []Device
}

// Primary returns the first device of a list, or nil when none is connected.
func Primary(devices []Device) *Device {
	if len(devices) == 0 {
		return nil
	}
	return &devices[0]
}

// StaticDriver serves a fixed device list. Surfaces whose platform exposes a
// single logical keyboard and pointer (SDL, GLFW, terminals) use this.
type StaticDriver struct {
	keyboards []Device
	pointers  []Device
}

func NewStaticDriver(keyboards, pointers []Device) *StaticDriver {
	return &StaticDriver{keyboards: keyboards, pointers: pointers}
}

func (d *StaticDriver) Keyboards() []Device { return d.keyboards }

func (d *StaticDriver) Pointers() []Device { return d.pointers }

package platform

import (
	"fmt"
	"sort"
)

// Factory constructs an unopened surface for one driver.
type Factory func() Surface

type driver struct {
	name      string
	priority  int
	available bool
	factory   Factory
}

var drivers []driver

// Register adds a surface driver. Drivers register from init functions in
// their own packages; importing a driver package makes it selectable. Higher
// priority wins during auto selection. A driver compiled out by build tags
// registers with available=false so an explicit request for it can report a
// useful error.
func Register(name string, priority int, available bool, factory Factory) {
	drivers = append(drivers, driver{name: name, priority: priority, available: available, factory: factory})
	sort.SliceStable(drivers, func(i, j int) bool {
		return drivers[i].priority > drivers[j].priority
	})
}

// Names lists the registered drivers in priority order.
func Names() []string {
	names := make([]string, 0, len(drivers))
	for _, d := range drivers {
		names = append(names, d.name)
	}
	return names
}

// New returns a fresh surface for the named driver. The empty string or
// "auto" picks the highest-priority available driver.
func New(name string) (Surface, error) {
	if name == "" || name == "auto" {
		for _, d := range drivers {
			if d.available {
				return d.factory(), nil
			}
		}
		return nil, fmt.Errorf("no surface driver available: %w", ErrUnsupported)
	}
	for _, d := range drivers {
		if d.name != name {
			continue
		}
		if !d.available {
			return nil, fmt.Errorf("surface driver %q is not available in this build: %w", name, ErrUnsupported)
		}
		return d.factory(), nil
	}
	return nil, fmt.Errorf("unknown surface driver %q: %w", name, ErrUnsupported)
}

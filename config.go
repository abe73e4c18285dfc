package opentk

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/feruxmax/opentk/timing"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 480
	DefaultTitle  = "OpenTK Window"
)

// Config holds window creation parameters.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
	// Backend names the surface driver; empty or "auto" picks the
	// highest-priority available one.
	Backend string
	// RangePolicy decides what out-of-range cadence targets do (drop with a
	// diagnostic, the historical behavior, or clamp to the ceiling).
	RangePolicy timing.RangePolicy
	// IdleStrategy decides whether the loop busy-spins or yields between
	// due ticks.
	IdleStrategy timing.IdleStrategy
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	return c
}

// Profile is a window configuration plus target rates, loadable from YAML.
type Profile struct {
	Config   Config
	UpdateHz float64
	RenderHz float64
}

type profileFile struct {
	Title       string  `yaml:"title"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	VSync       bool    `yaml:"vsync"`
	Backend     string  `yaml:"backend"`
	RangePolicy string  `yaml:"range_policy"`
	Idle        string  `yaml:"idle"`
	UpdateHz    float64 `yaml:"update_hz"`
	RenderHz    float64 `yaml:"render_hz"`
}

// LoadProfile reads a YAML window profile.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes a YAML window profile.
func ParseProfile(data []byte) (Profile, error) {
	var f profileFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile: %w", err)
	}

	p := Profile{
		Config: Config{
			Title:   f.Title,
			Width:   f.Width,
			Height:  f.Height,
			VSync:   f.VSync,
			Backend: f.Backend,
		},
		UpdateHz: f.UpdateHz,
		RenderHz: f.RenderHz,
	}

	switch f.RangePolicy {
	case "", "drop":
		p.Config.RangePolicy = timing.RangeDrop
	case "clamp":
		p.Config.RangePolicy = timing.RangeClamp
	default:
		return Profile{}, fmt.Errorf("unknown range_policy %q (want drop or clamp)", f.RangePolicy)
	}

	switch f.Idle {
	case "", "spin":
		p.Config.IdleStrategy = timing.SpinWhenIdle
	case "yield":
		p.Config.IdleStrategy = timing.YieldWhenIdle
	default:
		return Profile{}, fmt.Errorf("unknown idle strategy %q (want spin or yield)", f.Idle)
	}

	return p, nil
}

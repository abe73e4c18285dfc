package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/feruxmax/opentk"
	"github.com/feruxmax/opentk/platform"
	_ "github.com/feruxmax/opentk/platform/glfw"
	"github.com/feruxmax/opentk/platform/headless"
	_ "github.com/feruxmax/opentk/platform/sdl2"
	"github.com/feruxmax/opentk/platform/terminal"
	"github.com/feruxmax/opentk/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "opentk-demo"
	app.Description = "A frame-paced application shell demo"
	app.Usage = "opentk-demo [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "backend",
			Usage: "Surface driver (auto, sdl2, glfw, terminal, headless)",
			Value: "auto",
		},
		cli.StringFlag{
			Name:  "title",
			Usage: "Window title",
			Value: "opentk demo",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "Window width",
			Value: opentk.DefaultWidth,
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "Window height",
			Value: opentk.DefaultHeight,
		},
		cli.BoolFlag{
			Name:  "vsync",
			Usage: "Enable vertical sync on the surface context",
		},
		cli.Float64Flag{
			Name:  "update-hz",
			Usage: "Target update rate in Hz, 0 = uncapped",
			Value: 60,
		},
		cli.Float64Flag{
			Name:  "render-hz",
			Usage: "Target render rate in Hz, 0 = uncapped",
			Value: 60,
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Exit after N loop iterations (headless backend only, 0 = run until closed)",
			Value: 0,
		},
		cli.BoolFlag{
			Name:  "yield-when-idle",
			Usage: "Sleep between due ticks instead of busy-spinning",
		},
		cli.BoolFlag{
			Name:  "clamp-rates",
			Usage: "Clamp out-of-range target rates instead of dropping them",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "Path to a YAML window profile (flags override its values)",
		},
	}
	app.Action = runDemo

	if err := app.Run(os.Args); err != nil {
		slog.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func runDemo(c *cli.Context) error {
	profile, err := buildProfile(c)
	if err != nil {
		return err
	}

	surface, err := platform.New(profile.Config.Backend)
	if err != nil {
		return err
	}
	if h, ok := surface.(*headless.Surface); ok && c.Int("frames") > 0 {
		h.SetFrameBudget(c.Int("frames"))
	}

	w, err := opentk.NewWith(surface, profile.Config)
	if err != nil {
		return err
	}

	wireObservers(w, surface)

	slog.Info("starting demo",
		"backend", fmt.Sprintf("%T", surface),
		"update_hz", profile.UpdateHz,
		"render_hz", profile.RenderHz)
	return w.Run(profile.UpdateHz, profile.RenderHz)
}

// buildProfile merges the optional YAML profile with command-line flags.
// Explicitly set flags win over the file.
func buildProfile(c *cli.Context) (opentk.Profile, error) {
	profile := opentk.Profile{
		UpdateHz: c.Float64("update-hz"),
		RenderHz: c.Float64("render-hz"),
	}
	if path := c.String("config"); path != "" {
		loaded, err := opentk.LoadProfile(path)
		if err != nil {
			return opentk.Profile{}, err
		}
		profile = loaded
		if c.IsSet("update-hz") {
			profile.UpdateHz = c.Float64("update-hz")
		}
		if c.IsSet("render-hz") {
			profile.RenderHz = c.Float64("render-hz")
		}
	}

	cfg := &profile.Config
	if cfg.Backend == "" || c.IsSet("backend") {
		cfg.Backend = c.String("backend")
	}
	if cfg.Title == "" || c.IsSet("title") {
		cfg.Title = c.String("title")
	}
	if cfg.Width == 0 || c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if cfg.Height == 0 || c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("vsync") {
		cfg.VSync = c.Bool("vsync")
	}
	if c.IsSet("yield-when-idle") {
		cfg.IdleStrategy = timing.YieldWhenIdle
	}
	if c.IsSet("clamp-rates") {
		cfg.RangePolicy = timing.RangeClamp
	}
	return profile, nil
}

// wireObservers hooks up a minimal pacing dashboard: a periodic measured-rate
// log on the update cadence and buffer presentation on the render cadence.
func wireObservers(w *opentk.Window, surface platform.Surface) {
	updates := 0
	w.OnLoad(func(win *opentk.Window) {
		width, height := win.Size()
		slog.Info("loaded", "width", width, "height", height, "title", win.Title())
	})
	w.OnUpdate(func(win *opentk.Window, ev opentk.UpdateEvent) {
		updates++
		if updates%120 == 0 {
			slog.Info("pacing",
				"updates", updates,
				"update_hz", win.UpdateFrequency(),
				"render_hz", win.RenderFrequency())
		}
	})
	w.OnRender(func(win *opentk.Window, ev opentk.RenderEvent) {
		if term, ok := surface.(*terminal.Surface); ok {
			term.SetStatus(
				"opentk demo - press Esc to quit",
				fmt.Sprintf("update: %6.2f Hz  render: %6.2f Hz  scale: %.3f",
					win.UpdateFrequency(), win.RenderFrequency(), ev.ScaleFactor),
			)
		}
		win.Context().SwapBuffers()
	})
	w.OnResize(func(_ *opentk.Window, ev opentk.ResizeEvent) {
		slog.Info("resized", "width", ev.Width, "height", ev.Height)
	})
	w.OnUnload(func(*opentk.Window) { slog.Info("unloading") })
	w.OnDestroy(func(*opentk.Window) { slog.Info("surface going away, releasing resources") })
}

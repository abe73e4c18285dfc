// Package opentk is an application shell that owns a native rendering
// surface and drives two independently paced callbacks against wall-clock
// time: a protected, catch-up-capable update tick and a best-effort render
// tick. Surfaces are pluggable drivers (SDL2, GLFW, terminal, headless)
// selected at startup; the scheduler only ever talks to the platform.Surface
// interface.
package opentk

// Package plotstyle holds the process-wide plotting defaults (grid, fonts,
// tick geometry), the fixed analysis palette and the axis-title formatting
// helpers shared by every distribution renderer.
package plotstyle

import "os"

// TexMode selects whether axis text may use high-quality typeset math.
type TexMode int

const (
	// TexAuto probes the filesystem for a local LaTeX installation.
	TexAuto TexMode = iota
	TexOn
	TexOff
)

// Config is the one-shot style configuration applied at startup,
// modeled on the standard publication style: serif fonts, inward ticks
// on all four sides, faint grid.
type Config struct {
	Grid       bool
	FontSize   float64
	UseTexMath TexMode
	Font       string
}

// DefaultConfig returns the standard publication-style defaults.
func DefaultConfig() Config {
	return Config{Grid: true, FontSize: 10, UseTexMath: TexAuto, Font: "serif"}
}

// Applied is the resolved process-wide style consumed by renderers.
type Applied struct {
	Config
	TexMath   bool
	GridAlpha float64 // grid line opacity, 0..1
	AxisWidth float64
	TickMajor float64 // major tick length in px
	TickMinor float64
	TicksIn   bool // ticks point into the plot area
}

// latexBinary is the path probed in TexAuto mode. Package variable so the
// probe can be redirected in tests.
var latexBinary = "/usr/bin/latex"

var current = resolve(DefaultConfig())

// Apply mutates the process-wide plotting defaults. Call once at startup;
// not synchronized.
func Apply(c Config) { current = resolve(c) }

// Current returns the defaults in effect.
func Current() Applied { return current }

func resolve(c Config) Applied {
	tex := c.UseTexMath == TexOn
	if c.UseTexMath == TexAuto {
		_, err := os.Stat(latexBinary)
		tex = err == nil
	}
	return Applied{
		Config:    c,
		TexMath:   tex,
		GridAlpha: 0.3,
		AxisWidth: 1.3,
		TickMajor: 6,
		TickMinor: 3,
		TicksIn:   true,
	}
}

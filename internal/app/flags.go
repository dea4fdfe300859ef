package app

import (
	"flag"
	"time"

	"golife/internal/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ScreenW int
	ScreenH int
	CellW   int
	CellH   int
	// FPS caps the frame rate; 0 means unlimited.
	FPS int
	// StepMS is the time between generations while running, in
	// milliseconds.
	StepMS int
	// StatePath is where the S and L keys save and load the board; empty
	// disables both, like a cancelled file dialog.
	StatePath string
	Workers   int
	Density   float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		ScreenW: 640,
		ScreenH: 640,
		CellW:   16,
		CellH:   16,
		FPS:     60,
		StepMS:  250,
		Workers: 1,
		Density: 0.15,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.ScreenW, "width", c.ScreenW, "screen width in pixels")
	fs.IntVar(&c.ScreenH, "height", c.ScreenH, "screen height in pixels")
	fs.IntVar(&c.CellW, "cell-width", c.CellW, "cell width in pixels")
	fs.IntVar(&c.CellH, "cell-height", c.CellH, "cell height in pixels")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frame rate cap (0 for unlimited)")
	fs.IntVar(&c.StepMS, "step", c.StepMS, "milliseconds between generations")
	fs.StringVar(&c.StatePath, "state", c.StatePath, "state file used by save/load")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation advance")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for randomize")
}

// Period returns the generation period as a duration.
func (c *Config) Period() time.Duration {
	return time.Duration(c.StepMS) * time.Millisecond
}

// NewBoard builds a paused board from the configuration.
func (c *Config) NewBoard() *life.Board {
	return life.NewBoard(life.BoardConfig{
		ScreenW: c.ScreenW, ScreenH: c.ScreenH,
		CellW: c.CellW, CellH: c.CellH,
		Period:  c.Period(),
		Workers: c.Workers,
	})
}

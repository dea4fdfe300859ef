// Package engine hosts a stateful visual simulation through a fixed
// init/loop/shutdown lifecycle. The loop is single-threaded and cooperative:
// every iteration waits for the next tick, dispatches input, renders, then
// updates, in that order.
package engine

import (
	"errors"
	"image"
	"image/color"
	"time"
)

// ErrTermination is returned by a simulation's HandleInput to request a clean
// shutdown. The current iteration still renders and updates; the loop exits
// at the top of the next one.
var ErrTermination = errors.New("engine: termination requested")

// Sim is the capability set a hosted simulation must provide.
type Sim interface {
	// Init is called exactly once before the loop starts.
	Init() error
	// HandleInput receives the frame's input batch. Returning
	// ErrTermination stops the loop; any other error aborts it.
	HandleInput(events []Event) error
	// Render draws the state as of the end of the previous update.
	Render(r Renderer)
	// Update advances the simulation by the elapsed wall time of the
	// frame.
	Update(elapsed time.Duration)
}

// Renderer is the drawing surface handed to Sim.Render once per frame.
type Renderer interface {
	Clear(c color.Color)
	FillRect(r image.Rectangle, c color.Color)
	Present()
}

// InputSource produces the finite batch of events that occurred since the
// previous frame.
type InputSource interface {
	Poll() []Event
}

// Clock blocks until the next frame is due and reports the time since the
// previous tick. A targetFPS of 0 means unlimited: no wait, elapsed measured
// directly.
type Clock interface {
	WaitForNextTick(targetFPS int) time.Duration
}

// Loop drives a Sim with the provided collaborators.
type Loop struct {
	Renderer  Renderer
	Input     InputSource
	Clock     Clock
	TargetFPS int
}

// Run executes the lifecycle until the simulation requests termination or a
// callback fails. Callback errors are not recovered from; a broken render or
// update step cannot be meaningfully continued.
func (l *Loop) Run(sim Sim) error {
	if err := sim.Init(); err != nil {
		return err
	}
	running := true
	for running {
		elapsed := l.Clock.WaitForNextTick(l.TargetFPS)
		if err := sim.HandleInput(l.Input.Poll()); err != nil {
			if !errors.Is(err, ErrTermination) {
				return err
			}
			running = false
		}
		sim.Render(l.Renderer)
		sim.Update(elapsed)
	}
	return nil
}

package engine

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"
)

// fakeClock returns a fixed elapsed time without sleeping.
type fakeClock struct {
	elapsed time.Duration
	calls   int
}

func (c *fakeClock) WaitForNextTick(int) time.Duration {
	c.calls++
	return c.elapsed
}

// scriptedInput returns one prepared batch per frame, then empty batches.
type scriptedInput struct {
	frames [][]Event
}

func (s *scriptedInput) Poll() []Event {
	if len(s.frames) == 0 {
		return nil
	}
	batch := s.frames[0]
	s.frames = s.frames[1:]
	return batch
}

type recordingRenderer struct {
	rects int
}

func (r *recordingRenderer) Clear(color.Color)                     {}
func (r *recordingRenderer) FillRect(image.Rectangle, color.Color) { r.rects++ }
func (r *recordingRenderer) Present()                              {}

// traceSim records the order of its callbacks and terminates on quit.
type traceSim struct {
	calls   []string
	elapsed []time.Duration
	initErr error
}

func (s *traceSim) Init() error {
	s.calls = append(s.calls, "init")
	return s.initErr
}

func (s *traceSim) HandleInput(events []Event) error {
	s.calls = append(s.calls, "input")
	for _, ev := range events {
		if ev.Kind == KindQuit {
			return ErrTermination
		}
	}
	return nil
}

func (s *traceSim) Render(Renderer) { s.calls = append(s.calls, "render") }

func (s *traceSim) Update(elapsed time.Duration) {
	s.calls = append(s.calls, "update")
	s.elapsed = append(s.elapsed, elapsed)
}

func newTestLoop(input InputSource) (*Loop, *fakeClock) {
	clock := &fakeClock{elapsed: 16 * time.Millisecond}
	return &Loop{Renderer: &recordingRenderer{}, Input: input, Clock: clock}, clock
}

func TestRunLifecycleOrder(t *testing.T) {
	sim := &traceSim{}
	loop, clock := newTestLoop(&scriptedInput{frames: [][]Event{
		nil,
		nil,
		{Quit()},
	}})

	if err := loop.Run(sim); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{
		"init",
		"input", "render", "update",
		"input", "render", "update",
		"input", "render", "update",
	}
	if len(sim.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", sim.calls, want)
	}
	for i := range want {
		if sim.calls[i] != want[i] {
			t.Fatalf("call %d = %q, want %q (full trace %v)", i, sim.calls[i], want[i], sim.calls)
		}
	}
	if clock.calls != 3 {
		t.Fatalf("clock ticked %d times, want 3", clock.calls)
	}
	for i, e := range sim.elapsed {
		if e != 16*time.Millisecond {
			t.Fatalf("update %d received elapsed %v, want 16ms", i, e)
		}
	}
}

func TestRunTerminationStillFinishesIteration(t *testing.T) {
	// The quit arrives in frame one's input; that frame must still render
	// and update before the loop exits.
	sim := &traceSim{}
	loop, _ := newTestLoop(&scriptedInput{frames: [][]Event{{Quit()}}})

	if err := loop.Run(sim); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"init", "input", "render", "update"}
	if len(sim.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", sim.calls, want)
	}
}

func TestRunInitFailureAbortsBeforeLoop(t *testing.T) {
	boom := errors.New("boom")
	sim := &traceSim{initErr: boom}
	loop, clock := newTestLoop(&scriptedInput{})

	if err := loop.Run(sim); !errors.Is(err, boom) {
		t.Fatalf("Run: err=%v, want %v", err, boom)
	}
	if clock.calls != 0 {
		t.Fatal("a failed init must not start the loop")
	}
}

type failingSim struct {
	traceSim
}

func (s *failingSim) HandleInput([]Event) error { return errors.New("input broke") }

func TestRunCallbackErrorIsFatal(t *testing.T) {
	sim := &failingSim{}
	loop, _ := newTestLoop(&scriptedInput{})

	if err := loop.Run(sim); err == nil {
		t.Fatal("callback errors must abort Run")
	}
}

func TestTickClockUnlimited(t *testing.T) {
	clock := &TickClock{}
	if e := clock.WaitForNextTick(0); e != 0 {
		t.Fatalf("first tick elapsed %v, want 0", e)
	}
	start := time.Now()
	e := clock.WaitForNextTick(0)
	if e < 0 {
		t.Fatalf("elapsed %v must not be negative", e)
	}
	if waited := time.Since(start); waited > 50*time.Millisecond {
		t.Fatalf("unlimited tick waited %v", waited)
	}
}

func TestTickClockLimitsRate(t *testing.T) {
	clock := &TickClock{}
	clock.WaitForNextTick(100)
	e := clock.WaitForNextTick(100)
	if e < 10*time.Millisecond {
		t.Fatalf("elapsed %v, want at least the 10ms frame interval", e)
	}
}

// Package game binds a life board to the engine lifecycle: key and pointer
// handling, cell rendering, and snapshot save/load.
package game

import (
	"image"
	"image/color"
	"log"
	"time"

	"golife/internal/engine"
	"golife/internal/life"
	"golife/internal/snapshot"
)

var (
	colorBackground = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	colorAlive      = color.RGBA{A: 255}
	colorDead       = color.RGBA{R: 245, G: 245, B: 245, A: 255}
)

// Game hosts a board inside the engine capability set.
type Game struct {
	board  *life.Board
	store  snapshot.FileStore
	picker snapshot.PathPicker

	// density is the live-cell probability used by the randomize key.
	density float64
}

// New constructs a Game around an existing board.
func New(board *life.Board, store snapshot.FileStore, picker snapshot.PathPicker, density float64) *Game {
	return &Game{board: board, store: store, picker: picker, density: density}
}

// Board exposes the currently hosted board. Loading a snapshot replaces it.
func (g *Game) Board() *life.Board { return g.board }

// Status describes the run state for window titles and logs.
func (g *Game) Status() string {
	if g.board.Running() {
		return "running"
	}
	return "paused"
}

// Init satisfies engine.Sim; the board is fully built before the loop starts.
func (g *Game) Init() error { return nil }

// HandleInput applies one frame's input batch. Space toggles run/pause; while
// paused C clears, N steps one generation, R reseeds, S and L save and load
// the state file, and a held left button toggles the cell under the pointer.
func (g *Game) HandleInput(events []engine.Event) error {
	for _, ev := range events {
		switch ev.Kind {
		case engine.KindQuit:
			return engine.ErrTermination
		case engine.KindKeyUp:
			if err := g.handleKey(ev.Key); err != nil {
				return err
			}
		case engine.KindPointerDown:
			if ev.Button != engine.ButtonLeft || g.board.Running() {
				continue
			}
			if _, err := g.board.ToggleAtPixel(ev.X, ev.Y); err != nil {
				log.Printf("toggle ignored: %v", err)
			}
		}
	}
	return nil
}

func (g *Game) handleKey(key engine.Key) error {
	switch key {
	case engine.KeyQ, engine.KeyEscape:
		return engine.ErrTermination
	case engine.KeySpace:
		g.board.ToggleRunning()
	case engine.KeyC:
		if err := g.board.Clear(); err != nil {
			log.Printf("clear ignored: %v", err)
		}
	case engine.KeyN:
		if err := g.board.StepOnce(); err != nil {
			log.Printf("step ignored: %v", err)
		}
	case engine.KeyR:
		if err := g.board.Randomize(time.Now().UnixNano(), g.density); err != nil {
			log.Printf("randomize ignored: %v", err)
		}
	case engine.KeyS:
		if err := snapshot.Save(g.store, g.picker, g.board); err != nil {
			log.Printf("save failed: %v", err)
		}
	case engine.KeyL:
		g.load()
	}
	return nil
}

// load replaces the board with one rebuilt from the state file. On any
// failure, malformed files included, the current board stays as it was.
func (g *Game) load() {
	loaded, err := snapshot.Load(g.store, g.picker, g.board.Period())
	if err != nil {
		log.Printf("load failed: %v", err)
		return
	}
	if loaded == nil {
		return
	}
	loaded.SetWorkers(g.board.Workers())
	g.board = loaded
}

// Render paints every cell as a rectangle one pixel smaller than its slot,
// leaving the background visible as grid lines.
func (g *Game) Render(r engine.Renderer) {
	r.Clear(colorBackground)
	grid := g.board.Grid()
	cw, ch := g.board.CellSize()
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			c := colorDead
			if grid.Get(x, y) == life.Alive {
				c = colorAlive
			}
			r.FillRect(image.Rect(x*cw, y*ch, x*cw+cw-1, y*ch+ch-1), c)
		}
	}
	r.Present()
}

// Update feeds the frame's elapsed time into the board's step accumulator.
func (g *Game) Update(elapsed time.Duration) {
	g.board.Step(elapsed)
}

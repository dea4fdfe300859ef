//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"time"

	"golife/internal/engine"
	"golife/internal/game"
	"golife/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings lists the ebiten keys the game reacts to and their engine
// counterparts, in a fixed dispatch order.
var keyBindings = []struct {
	ebiten ebiten.Key
	engine engine.Key
}{
	{ebiten.KeySpace, engine.KeySpace},
	{ebiten.KeyC, engine.KeyC},
	{ebiten.KeyL, engine.KeyL},
	{ebiten.KeyN, engine.KeyN},
	{ebiten.KeyR, engine.KeyR},
	{ebiten.KeyS, engine.KeyS},
	{ebiten.KeyQ, engine.KeyQ},
	{ebiten.KeyEscape, engine.KeyEscape},
}

// App adapts the hosted game to the ebiten.Game interface. Ebiten owns the
// frame loop, so each tick forwards one batch of events and one elapsed-time
// update to the same capability set the headless engine drives.
type App struct {
	game    *game.Game
	canvas  *render.Canvas
	screenW int
	screenH int
	last    time.Time
}

// New constructs an App for the provided game.
func New(g *game.Game, screenW, screenH int) *App {
	return &App{game: g, canvas: render.NewCanvas(), screenW: screenW, screenH: screenH}
}

// Update handles per-frame input and advances the simulation clock.
func (a *App) Update() error {
	if err := a.game.HandleInput(a.pollEvents()); err != nil {
		if errors.Is(err, engine.ErrTermination) {
			return ebiten.Termination
		}
		return err
	}

	now := time.Now()
	if a.last.IsZero() {
		a.last = now
	}
	a.game.Update(now.Sub(a.last))
	a.last = now

	ebiten.SetWindowTitle(fmt.Sprintf("Game of Life — %s | population %d | FPS: %.0f",
		a.game.Status(), a.game.Board().Population(), ebiten.ActualFPS()))
	return nil
}

// pollEvents converts ebiten's polled input state into the frame's event
// batch. A held left button re-emits a pointer event every frame so drags
// paint across cells.
func (a *App) pollEvents() []engine.Event {
	var events []engine.Event
	for _, b := range keyBindings {
		if inpututil.IsKeyJustReleased(b.ebiten) {
			events = append(events, engine.KeyUp(b.engine))
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, engine.PointerDown(engine.ButtonLeft, x, y))
	}
	return events
}

// Draw renders the current board state.
func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.Begin(screen)
	a.game.Render(a.canvas)
}

// Layout returns the logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenW, a.screenH
}

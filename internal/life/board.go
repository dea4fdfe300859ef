package life

import (
	"errors"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrSimulationRunning is returned by edit operations attempted while the
// board is evolving. The grid is left untouched.
var ErrSimulationRunning = errors.New("life: board is running")

// Coord identifies a cell by its grid position.
type Coord struct {
	X, Y int
}

// BoardConfig describes the geometry and timing of a board.
type BoardConfig struct {
	ScreenW, ScreenH int
	CellW, CellH     int
	// Period is the time between generations while running.
	Period time.Duration
	// Workers above 1 partitions the generation advance across goroutines.
	// The fan-out joins before Advance returns, so the board is still
	// exclusively owned by its caller.
	Workers int
}

func (c BoardConfig) sanitized() BoardConfig {
	if c.CellW <= 0 {
		c.CellW = 1
	}
	if c.CellH <= 0 {
		c.CellH = 1
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return c
}

// Board owns a grid plus the cell geometry and the edit/run state machine.
// It is created paused and mutated only through its own operations; loading a
// snapshot replaces the whole board rather than mutating one in place.
type Board struct {
	grid *Grid
	cfg  BoardConfig

	running     bool
	accumulated time.Duration
	generation  int

	lastToggled Coord
	hasToggled  bool
}

// NewBoard creates a paused, all-dead board. Grid dimensions derive from
// screen/cell integer division and never change afterwards.
func NewBoard(cfg BoardConfig) *Board {
	cfg = cfg.sanitized()
	return &Board{grid: NewGrid(cfg.ScreenW/cfg.CellW, cfg.ScreenH/cfg.CellH), cfg: cfg}
}

// NewBoardWithGrid creates a paused board around an existing grid, used when
// reconstructing a board from a snapshot.
func NewBoardWithGrid(grid *Grid, cfg BoardConfig) *Board {
	return &Board{grid: grid, cfg: cfg.sanitized()}
}

// Grid exposes the live grid.
func (b *Board) Grid() *Grid { return b.grid }

// CellSize returns the pixel size of one cell.
func (b *Board) CellSize() (int, int) { return b.cfg.CellW, b.cfg.CellH }

// ScreenSize returns the viewport pixel size the board was built for.
func (b *Board) ScreenSize() (int, int) { return b.cfg.ScreenW, b.cfg.ScreenH }

// Period returns the time between generations while running.
func (b *Board) Period() time.Duration { return b.cfg.Period }

// Workers returns the advance fan-out configured for this board.
func (b *Board) Workers() int { return b.cfg.Workers }

// SetWorkers changes the advance fan-out.
func (b *Board) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	b.cfg.Workers = n
}

// Running reports whether the board is evolving.
func (b *Board) Running() bool { return b.running }

// Generation returns the number of completed generation advances.
func (b *Board) Generation() int { return b.generation }

// Population returns the number of live cells.
func (b *Board) Population() int { return b.grid.Population() }

// SetRunning switches between the paused edit state and the running state.
// Any accumulated step time is discarded on either transition.
func (b *Board) SetRunning(v bool) {
	b.running = v
	b.accumulated = 0
}

// ToggleRunning flips between paused and running.
func (b *Board) ToggleRunning() { b.SetRunning(!b.running) }

// LiveNeighborCount sums the live cells in the Moore neighborhood of (x, y).
// Neighbors beyond the grid edge count as dead, so edge and corner cells
// always see fewer of them.
func (b *Board) LiveNeighborCount(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.grid.Get(x+dx, y+dy) == Alive {
				n++
			}
		}
	}
	return n
}

// Toggle flips the state of one cell. Editing is only legal while paused.
func (b *Board) Toggle(x, y int) error {
	if b.running {
		return ErrSimulationRunning
	}
	b.grid.Set(x, y, b.grid.Get(x, y).Toggled())
	return nil
}

// ToggleAtPixel maps a pixel position to a cell and toggles it, remembering
// the coordinate so a pointer held over the same cell does not flip it back
// every frame. A drag across several cells still toggles each one. Returns
// whether a cell was flipped.
func (b *Board) ToggleAtPixel(px, py int) (bool, error) {
	if b.running {
		return false, ErrSimulationRunning
	}
	if px < 0 || py < 0 {
		return false, nil
	}
	c := Coord{X: px / b.cfg.CellW, Y: py / b.cfg.CellH}
	if c.X >= b.grid.W || c.Y >= b.grid.H {
		return false, nil
	}
	if b.hasToggled && b.lastToggled == c {
		return false, nil
	}
	b.grid.Set(c.X, c.Y, b.grid.Get(c.X, c.Y).Toggled())
	b.lastToggled = c
	b.hasToggled = true
	return true, nil
}

// Clear kills every cell. Like Toggle it is only legal while paused.
func (b *Board) Clear() error {
	if b.running {
		return ErrSimulationRunning
	}
	b.grid.Clear()
	return nil
}

// Randomize refills the grid with a deterministic random pattern. Only legal
// while paused.
func (b *Board) Randomize(seed int64, density float64) error {
	if b.running {
		return ErrSimulationRunning
	}
	b.grid.Randomize(rand.New(rand.NewPCG(uint64(seed), 0)), density)
	return nil
}

// Advance computes the next generation. Every cell is evaluated against the
// current grid and written into a fresh one, which then replaces it
// wholesale; partially updated neighbors can never leak into the same
// generation.
func (b *Board) Advance() {
	next := NewGrid(b.grid.W, b.grid.H)
	if b.cfg.Workers > 1 {
		b.advanceRows(next, b.cfg.Workers)
	} else {
		b.advanceSpan(next, 0, b.grid.H)
	}
	b.grid = next
	b.generation++
}

func (b *Board) advanceSpan(next *Grid, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < b.grid.W; x++ {
			next.data[next.Index(x, y)] = NextState(b.grid.Get(x, y), b.LiveNeighborCount(x, y))
		}
	}
}

// advanceRows splits the grid into horizontal bands and evaluates them
// concurrently. All goroutines read the old grid and write disjoint rows of
// the new one, joining before Advance returns.
func (b *Board) advanceRows(next *Grid, workers int) {
	var eg errgroup.Group
	band := (b.grid.H + workers - 1) / workers
	for i := 0; i < workers; i++ {
		y0 := i * band
		if y0 >= b.grid.H {
			break
		}
		y1 := min(y0+band, b.grid.H)
		eg.Go(func() error {
			b.advanceSpan(next, y0, y1)
			return nil
		})
	}
	// The workers have no failure mode; Wait only joins them.
	_ = eg.Wait()
}

// StepOnce advances a single generation while paused, for stepping through a
// pattern by hand.
func (b *Board) StepOnce() error {
	if b.running {
		return ErrSimulationRunning
	}
	b.Advance()
	return nil
}

// Step consumes one frame worth of elapsed time. While running it feeds the
// accumulator and advances a generation each time the configured period is
// reached, which keeps the simulation rate independent of the frame rate.
func (b *Board) Step(elapsed time.Duration) {
	if !b.running {
		return
	}
	b.accumulated += elapsed
	if b.accumulated >= b.cfg.Period {
		b.accumulated = 0
		b.Advance()
	}
}

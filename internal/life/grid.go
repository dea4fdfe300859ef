package life

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// CellState is the value of a single cell.
type CellState uint8

const (
	// Dead is the default state of every cell.
	Dead CellState = iota
	// Alive marks a live cell.
	Alive
)

// Toggled returns the opposite state.
func (s CellState) Toggled() CellState {
	if s == Alive {
		return Dead
	}
	return Alive
}

// Grid stores a dense 2D field of cell states in row-major order. Dimensions
// are fixed at construction.
type Grid struct {
	W, H int
	data []CellState
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]CellState, w*h)}
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Get returns the state at (x, y). Reads outside the grid return Dead, so
// boundary lookups never fail.
func (g *Grid) Get(x, y int) CellState {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return Dead
	}
	return g.data[g.Index(x, y)]
}

// Set writes the state at (x, y). The coordinates must be inside the grid;
// out-of-range writes indicate a broken caller and panic.
func (g *Grid) Set(x, y int, s CellState) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		panic(fmt.Sprintf("life: set (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
	g.data[g.Index(x, y)] = s
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, s := range g.data {
		if s == Alive {
			n++
		}
	}
	return n
}

// Randomize fills the grid from the provided source, making each cell alive
// with probability density.
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for i := range g.data {
		g.data[i] = Dead
		if rng.Float64() < density {
			g.data[i] = Alive
		}
	}
}

// Matrix converts the grid to a 0/1 matrix with rows indexed by x, the layout
// used by the snapshot file format. FromMatrix is its exact inverse.
func (g *Grid) Matrix() [][]int {
	m := make([][]int, g.W)
	for x := 0; x < g.W; x++ {
		row := make([]int, g.H)
		for y := 0; y < g.H; y++ {
			if g.Get(x, y) == Alive {
				row[y] = 1
			}
		}
		m[x] = row
	}
	return m
}

// FromMatrix builds a grid from a 0/1 matrix with rows indexed by x. The
// matrix must be rectangular and contain only 0 or 1 values.
func FromMatrix(m [][]int) (*Grid, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil, errors.New("life: empty cell matrix")
	}
	w, h := len(m), len(m[0])
	g := NewGrid(w, h)
	for x, row := range m {
		if len(row) != h {
			return nil, fmt.Errorf("life: jagged cell matrix: row %d has %d cells, want %d", x, len(row), h)
		}
		for y, v := range row {
			switch v {
			case 0:
			case 1:
				g.Set(x, y, Alive)
			default:
				return nil, fmt.Errorf("life: cell (%d,%d) has value %d, want 0 or 1", x, y, v)
			}
		}
	}
	return g, nil
}

package life

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestGetOutsideGridIsDead(t *testing.T) {
	g := NewGrid(4, 3)
	g.Set(0, 0, Alive)
	g.Set(3, 2, Alive)

	cases := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {-1, -1}, {100, 100}}
	for _, c := range cases {
		if got := g.Get(c[0], c[1]); got != Dead {
			t.Errorf("Get(%d,%d) = %v, want Dead", c[0], c[1], got)
		}
	}
}

func TestSetOutsideGridPanics(t *testing.T) {
	g := NewGrid(4, 3)
	defer func() {
		if recover() == nil {
			t.Fatal("Set outside the grid must panic")
		}
	}()
	g.Set(4, 0, Alive)
}

func TestMatrixRoundTrip(t *testing.T) {
	g := NewGrid(3, 5)
	g.Set(0, 0, Alive)
	g.Set(2, 4, Alive)
	g.Set(1, 2, Alive)

	m := g.Matrix()
	if len(m) != 3 || len(m[0]) != 5 {
		t.Fatalf("matrix is %dx%d, want 3x5", len(m), len(m[0]))
	}
	if m[0][0] != 1 || m[2][4] != 1 || m[1][2] != 1 {
		t.Fatal("matrix does not reflect live cells")
	}

	back, err := FromMatrix(m)
	if err != nil {
		t.Fatalf("FromMatrix: %v", err)
	}
	if back.W != g.W || back.H != g.H {
		t.Fatalf("round trip dimensions %dx%d, want %dx%d", back.W, back.H, g.W, g.H)
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if back.Get(x, y) != g.Get(x, y) {
				t.Fatalf("round trip cell (%d,%d) differs", x, y)
			}
		}
	}
}

func TestFromMatrixRejectsBadInput(t *testing.T) {
	if _, err := FromMatrix(nil); err == nil {
		t.Error("empty matrix must be rejected")
	}
	if _, err := FromMatrix([][]int{{0, 1}, {0}}); err == nil {
		t.Error("jagged matrix must be rejected")
	}
	if _, err := FromMatrix([][]int{{0, 2}}); err == nil {
		t.Error("cell values other than 0/1 must be rejected")
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := NewGrid(16, 16)
	b := NewGrid(16, 16)
	a.Randomize(rand.New(rand.NewPCG(7, 0)), 0.5)
	b.Randomize(rand.New(rand.NewPCG(7, 0)), 0.5)
	if !slices.Equal(a.data, b.data) {
		t.Fatal("same seed must produce the same board")
	}
	if a.Population() == 0 || a.Population() == 16*16 {
		t.Fatalf("population %d is not a plausible half-density fill", a.Population())
	}
}

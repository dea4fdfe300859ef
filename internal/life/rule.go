package life

// NextState applies Conway's B3/S23 rule: a live cell survives with 2 or 3
// live neighbors, a dead cell is born with exactly 3, everything else dies.
func NextState(current CellState, liveNeighbors int) CellState {
	alive := current == Alive
	if (alive && (liveNeighbors == 2 || liveNeighbors == 3)) || (!alive && liveNeighbors == 3) {
		return Alive
	}
	return Dead
}

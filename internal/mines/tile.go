package mines

type Point struct {
	Row, Col int
}

// Tile is a single cell of a [Board]. Neighbors are stored as indices into
// the owning board's grid and are only valid for that board.
type Tile struct {
	mined     bool
	flagged   bool
	revealed  bool
	mineCount int
	neighbors []int
}

func (t Tile) Mined() bool {
	return t.mined
}

func (t Tile) Flagged() bool {
	return t.flagged
}

func (t Tile) Revealed() bool {
	return t.revealed
}

// AdjacentMines is the number of mined neighbors.
func (t Tile) AdjacentMines() int {
	return t.mineCount
}

// Neighbors returns a copy of the neighbor indices (3, 5 or 8 of them).
func (t Tile) Neighbors() []int {
	n := make([]int, len(t.neighbors))
	copy(n, t.neighbors)
	return n
}

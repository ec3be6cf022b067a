package mines

import (
	"log/slog"
	"math/rand/v2"
)

var Log *slog.Logger = slog.Default()

// Board owns a row-major grid of tiles and the running reveal/flag
// counters. Mines are placed and adjacency computed once, at construction.
type Board struct {
	rows, cols, mineCount int
	tiles                 []Tile

	nonMinesRevealed int
	minesFlagged     int
	flagsPlaced      int
}

// NewBoard builds a board with params.MineCount mines placed uniformly at
// random. The caller must guarantee 0 <= MineCount < Width*Height (see
// [GameParams.Validate]); otherwise placement never terminates.
func NewBoard(params GameParams, r *rand.Rand) *Board {
	b := newEmptyBoard(params.Height, params.Width)
	b.placeMines(params.MineCount, r)
	b.wireNeighbors()
	b.countAdjacentMines()
	Log.Debug("board created",
		slog.Int("rows", b.rows), slog.Int("cols", b.cols), slog.Int("mines", b.mineCount))
	return b
}

// NewBoardWithMines builds a board with mines at the given points. Points
// out of range and repeated points are skipped; MineCount reports the number
// actually placed.
func NewBoardWithMines(rows, cols int, mines []Point) *Board {
	b := newEmptyBoard(rows, cols)
	for _, p := range mines {
		if !b.InBounds(p.Row, p.Col) {
			continue
		}
		t := &b.tiles[b.CoordsToIndex(p.Row, p.Col)]
		if !t.mined {
			t.mined = true
			b.mineCount++
		}
	}
	b.wireNeighbors()
	b.countAdjacentMines()
	return b
}

func newEmptyBoard(rows, cols int) *Board {
	return &Board{
		rows:  rows,
		cols:  cols,
		tiles: make([]Tile, rows*cols),
	}
}

func (b *Board) placeMines(count int, r *rand.Rand) {
	for placed := 0; placed < count; {
		i := b.CoordsToIndex(r.IntN(b.rows), r.IntN(b.cols))
		if !b.tiles[i].mined {
			b.tiles[i].mined = true
			placed++
		}
	}
	b.mineCount = count
}

func (b *Board) wireNeighbors() {
	for row := range b.rows {
		for col := range b.cols {
			t := &b.tiles[b.CoordsToIndex(row, col)]
			t.neighbors = make([]int, 0, 8)
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if (dr != 0 || dc != 0) && b.InBounds(row+dr, col+dc) {
						t.neighbors = append(t.neighbors, b.CoordsToIndex(row+dr, col+dc))
					}
				}
			}
		}
	}
}

func (b *Board) countAdjacentMines() {
	for i := range b.tiles {
		c := 0
		for _, j := range b.tiles[i].neighbors {
			if b.tiles[j].mined {
				c++
			}
		}
		b.tiles[i].mineCount = c
	}
}

// Rebuild discards every tile and counter and places a fresh set of mines
// with the same dimensions and mine count.
func (b *Board) Rebuild(r *rand.Rand) {
	*b = *NewBoard(b.Params(), r)
}

func (b *Board) Params() GameParams {
	return GameParams{Width: b.cols, Height: b.rows, MineCount: b.mineCount}
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) MineCount() int {
	return b.mineCount
}

func (b *Board) InBounds(row, col int) bool {
	return 0 <= row && row < b.rows && 0 <= col && col < b.cols
}

func (b *Board) CoordsToIndex(row, col int) int {
	return row*b.cols + col
}

func (b *Board) IndexToCoords(index int) (row int, col int) {
	return index / b.cols, index % b.cols
}

// Tile returns a copy of the tile at row, col. ok is false out of bounds.
func (b *Board) Tile(row, col int) (t Tile, ok bool) {
	if !b.InBounds(row, col) {
		return Tile{}, false
	}
	return b.tiles[b.CoordsToIndex(row, col)], true
}

func (b *Board) Len() int {
	return len(b.tiles)
}

// At returns a copy of the tile at a row-major index.
func (b *Board) At(index int) Tile {
	return b.tiles[index]
}

func (b *Board) NonMinesRevealed() int {
	return b.nonMinesRevealed
}

func (b *Board) MinesFlagged() int {
	return b.minesFlagged
}

// FlagsPlaced counts every flag on the board, correct or not.
func (b *Board) FlagsPlaced() int {
	return b.flagsPlaced
}

func (b *Board) SafeCount() int {
	return len(b.tiles) - b.mineCount
}

// ToggleFlag flips the flag on an unrevealed tile and reports the new flag
// state. changed is false for revealed or out of range tiles.
func (b *Board) ToggleFlag(row, col int) (flagged, changed bool) {
	if !b.InBounds(row, col) {
		return false, false
	}
	t := &b.tiles[b.CoordsToIndex(row, col)]
	if t.revealed {
		return t.flagged, false
	}
	t.flagged = !t.flagged
	delta := 1
	if !t.flagged {
		delta = -1
	}
	b.flagsPlaced += delta
	if t.mined {
		b.minesFlagged += delta
	}
	return t.flagged, true
}

// Cleared reports the win condition: every safe tile revealed and every mine
// flagged. Neither clause alone is enough.
func (b *Board) Cleared() bool {
	return b.nonMinesRevealed == b.SafeCount() && b.minesFlagged == b.mineCount
}

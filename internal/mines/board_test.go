package mines

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	os.Exit(m.Run())
}

func TestNewBoardPlacesExactMineCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{name: "1x2(1)", params: GameParams{Width: 2, Height: 1, MineCount: 1}},
		{name: "9x9(0)", params: GameParams{Width: 9, Height: 9, MineCount: 0}},
		{name: "9x9(10)", params: GameParams{Width: 9, Height: 9, MineCount: 10}},
		{name: "16x16(40)", params: GameParams{Width: 16, Height: 16, MineCount: 40}},
		{name: "30x16(99)", params: GameParams{Width: 30, Height: 16, MineCount: 99}},
		{name: "25x16(50)", params: GameParams{Width: 25, Height: 16, MineCount: 50}},
		{name: "5x5(24)", params: GameParams{Width: 5, Height: 5, MineCount: 24}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			b := NewBoard(test.params, r)

			require.Equal(t, test.params.Height, b.Rows())
			require.Equal(t, test.params.Width, b.Cols())
			require.Equal(t, test.params.CellCount(), b.Len())

			mined := 0
			for i := range b.Len() {
				tile := b.At(i)
				if tile.Mined() {
					mined++
				}
				assert.False(t, tile.Revealed())
				assert.False(t, tile.Flagged())
			}
			assert.Equal(t, test.params.MineCount, mined)
			assert.Equal(t, test.params.MineCount, b.MineCount())
			assert.Zero(t, b.NonMinesRevealed())
			assert.Zero(t, b.MinesFlagged())
		})
	}
}

func TestAdjacentMinesMatchNeighbors(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(3, 4))
	for range 20 {
		b := NewBoard(GameParams{Width: 12, Height: 7, MineCount: 25}, r)
		for i := range b.Len() {
			tile := b.At(i)
			want := 0
			row, col := b.IndexToCoords(i)
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					if n, ok := b.Tile(row+dr, col+dc); ok && n.Mined() {
						want++
					}
				}
			}
			require.Equal(t, want, tile.AdjacentMines(), "tile %d:%d\n%s", row, col, b)
		}
	}
}

func TestNeighborSets(t *testing.T) {
	t.Parallel()

	b := NewBoardWithMines(4, 5, nil)
	for i := range b.Len() {
		row, col := b.IndexToCoords(i)
		edgeRow := row == 0 || row == b.Rows()-1
		edgeCol := col == 0 || col == b.Cols()-1

		want := 8
		switch {
		case edgeRow && edgeCol:
			want = 3
		case edgeRow || edgeCol:
			want = 5
		}

		neighbors := b.At(i).Neighbors()
		assert.Len(t, neighbors, want, "tile %d:%d", row, col)

		seen := map[int]bool{}
		for _, j := range neighbors {
			require.True(t, 0 <= j && j < b.Len(), "neighbor index %d out of grid", j)
			require.NotEqual(t, i, j)
			require.False(t, seen[j], "duplicate neighbor %d", j)
			seen[j] = true

			nr, nc := b.IndexToCoords(j)
			assert.LessOrEqual(t, absDiff(nr, row), 1)
			assert.LessOrEqual(t, absDiff(nc, col), 1)
		}
	}
}

func TestNewBoardWithMinesSkipsInvalidPoints(t *testing.T) {
	b := NewBoardWithMines(3, 3, []Point{{1, 1}, {1, 1}, {-1, 0}, {3, 3}, {0, 2}})

	assert.Equal(t, 2, b.MineCount())
	assert.Equal(t, 7, b.SafeCount())
	tile, ok := b.Tile(0, 1)
	require.True(t, ok)
	assert.Equal(t, 2, tile.AdjacentMines())
}

func TestToggleFlag(t *testing.T) {
	b := NewBoardWithMines(3, 3, []Point{{1, 1}})

	flagged, changed := b.ToggleFlag(1, 1)
	assert.True(t, flagged)
	assert.True(t, changed)
	assert.Equal(t, 1, b.MinesFlagged())
	assert.Equal(t, 1, b.FlagsPlaced())

	flagged, changed = b.ToggleFlag(1, 1)
	assert.False(t, flagged)
	assert.True(t, changed)
	assert.Equal(t, 0, b.MinesFlagged())
	assert.Equal(t, 0, b.FlagsPlaced())

	_, changed = b.ToggleFlag(0, 0)
	assert.True(t, changed)
	assert.Equal(t, 0, b.MinesFlagged(), "flag on a safe tile")
	assert.Equal(t, 1, b.FlagsPlaced())

	b.RevealSingle(2, 2)
	_, changed = b.ToggleFlag(2, 2)
	assert.False(t, changed, "revealed tiles cannot be flagged")

	_, changed = b.ToggleFlag(5, 5)
	assert.False(t, changed)
}

func TestCleared(t *testing.T) {
	tests := []struct {
		name      string
		revealAll bool
		flagAll   bool
		want      bool
	}{
		{name: "nothing", want: false},
		{name: "revealed only", revealAll: true, want: false},
		{name: "flagged only", flagAll: true, want: false},
		{name: "both", revealAll: true, flagAll: true, want: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := NewBoardWithMines(4, 4, []Point{{0, 0}, {3, 3}})
			for i := range b.Len() {
				row, col := b.IndexToCoords(i)
				if b.At(i).Mined() {
					if test.flagAll {
						b.ToggleFlag(row, col)
					}
				} else if test.revealAll {
					b.RevealSingle(row, col)
				}
			}
			assert.Equal(t, test.want, b.Cleared())
		})
	}
}

func TestRebuild(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	b := NewBoard(GameParams{Width: 8, Height: 6, MineCount: 10}, r)
	b.FloodFill(0, 0)
	b.ToggleFlag(5, 7)

	b.Rebuild(r)

	assert.Equal(t, GameParams{Width: 8, Height: 6, MineCount: 10}, b.Params())
	assert.Zero(t, b.NonMinesRevealed())
	assert.Zero(t, b.FlagsPlaced())
	mined := 0
	for i := range b.Len() {
		assert.False(t, b.At(i).Revealed())
		assert.False(t, b.At(i).Flagged())
		if b.At(i).Mined() {
			mined++
		}
	}
	assert.Equal(t, 10, mined)
}

func TestBoardString(t *testing.T) {
	b := NewBoardWithMines(2, 3, []Point{{0, 2}})
	b.RevealSingle(1, 0)
	b.RevealSingle(1, 1)
	b.ToggleFlag(0, 2)

	assert.Equal(t, ". . F\n0 1 .\n", b.String())
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

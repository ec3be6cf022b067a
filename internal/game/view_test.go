package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func TestView(t *testing.T) {
	g, clock := newTestGame(t, 2, 3, mines.Point{Row: 0, Col: 2})
	g.SetPlayer("Cy")

	g.LeftClick(1, 0)
	g.RightClick(0, 2)
	clock.Advance(125 * time.Second)

	v := g.View()
	require.Len(t, v.Tiles, 6)
	assert.Equal(t, 2, v.Rows)
	assert.Equal(t, 3, v.Cols)
	assert.Equal(t, 2, v.ElapsedMinutes)
	assert.Equal(t, 5, v.ElapsedSeconds)
	assert.Equal(t, 0, v.FlagCounter)
	assert.Equal(t, InProgress, v.State)
	assert.Equal(t, "Cy", v.Player)

	assert.Equal(t, TileView{Revealed: true}, v.Tile(1, 0))
	assert.Equal(t, TileView{Revealed: true, AdjacentMines: 1}, v.Tile(1, 1))
	assert.Equal(t, TileView{Flagged: true, Mined: true}, v.Tile(0, 2))
	assert.Equal(t, TileView{AdjacentMines: 1}, v.Tile(1, 2))
}

func TestViewWhilePaused(t *testing.T) {
	g, _ := newTestGame(t, 3, 3, mines.Point{Row: 2, Col: 2})
	g.LeftClick(0, 0)
	g.ToggleDebug()
	g.TogglePause()

	v := g.View()

	assert.True(t, v.Paused)
	assert.True(t, v.Debug)
	assert.Equal(t, Paused, v.State)
	for _, tile := range v.Tiles {
		assert.Equal(t, TileView{}, tile)
	}

	g.TogglePause()
	assert.True(t, g.View().Tile(0, 0).Revealed)
}

func TestViewAfterLoss(t *testing.T) {
	g, _ := newTestGame(t, 2, 2, mines.Point{Row: 0, Col: 0}, mines.Point{Row: 1, Col: 1})
	g.LeftClick(1, 1)

	v := g.View()

	assert.True(t, v.Lost)
	assert.False(t, v.Won)
	assert.True(t, v.Tile(0, 0).Revealed)
	assert.True(t, v.Tile(1, 1).Revealed)
	assert.False(t, v.Tile(0, 1).Revealed)
}

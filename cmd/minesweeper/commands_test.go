package main

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/mines"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestDispatcher(t *testing.T, mined ...mines.Point) *game.Dispatcher {
	t.Helper()
	g := game.New(discard, mines.GameParams{Width: 3, Height: 3, MineCount: len(mined)},
		rand.New(rand.NewPCG(1, 1)), nil)
	g.Load(mines.NewBoardWithMines(3, 3, mined))
	return game.NewDispatcher(g)
}

func TestExecuteCommandErrors(t *testing.T) {
	d := newTestDispatcher(t, mines.Point{Row: 2, Col: 2})

	testCases := []struct {
		command string
		err     string
	}{
		{"", "empty command"},
		{"   ", "empty command"},
		{"x", "unknown command"},
		{"o 1", "invalid number of arguments"},
		{"p 1", "invalid number of arguments"},
		{"o a 1", "row must be an int"},
		{"f 1 b", "column must be an int"},
		{"o 3 0", "invalid tile coordinates"},
		{"f 0 -1", "invalid tile coordinates"},
	}
	for _, test := range testCases {
		err := executeCommand(d, test.command)
		if assert.Error(t, err, "command %q", test.command) {
			assert.Equal(t, test.err, err.Error(), "command %q", test.command)
		}
	}
	assert.Equal(t, game.NotStarted, d.Game.State())
}

func TestExecuteCommand(t *testing.T) {
	d := newTestDispatcher(t, mines.Point{Row: 2, Col: 2})
	g := d.Game

	require.NoError(t, executeCommand(d, "f 2 2"))
	tile, _ := g.Tile(2, 2)
	assert.True(t, tile.Flagged())
	assert.Equal(t, 0, g.FlagCounter())

	require.NoError(t, executeCommand(d, "d"))
	assert.True(t, g.Debug())

	require.NoError(t, executeCommand(d, "o 0 0"))
	assert.True(t, g.Won())

	require.NoError(t, executeCommand(d, "n"))
	assert.Equal(t, game.NotStarted, g.State())

	assert.ErrorIs(t, executeCommand(d, "q"), errQuit)
}

func TestExecuteCommandPause(t *testing.T) {
	d := newTestDispatcher(t, mines.Point{Row: 2, Col: 2})
	g := d.Game

	require.NoError(t, executeCommand(d, "o 1 1"))
	require.NoError(t, executeCommand(d, "p"))
	assert.True(t, g.Paused())

	require.NoError(t, executeCommand(d, "o 0 0"))
	tile, _ := g.Tile(0, 0)
	assert.False(t, tile.Revealed())

	require.NoError(t, executeCommand(d, "p"))
	assert.False(t, g.Paused())
}

func TestWithLogging(t *testing.T) {
	var calls []string
	h := withLogging(discard)(func(line string) error {
		calls = append(calls, line)
		if line == "q" {
			return errQuit
		}
		return nil
	})

	assert.NoError(t, h("p"))
	assert.ErrorIs(t, h("q"), errQuit)
	assert.Equal(t, []string{"p", "q"}, calls)
}

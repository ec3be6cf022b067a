package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/game"
)

var errQuit = errors.New("quit")

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o": 2,
	"f": 2,
	"p": 0,
	"d": 0,
	"n": 0,
	"q": 0,
}

const commandHelp = `commands:
  o ROW COL   open a tile
  f ROW COL   toggle a flag
  p           pause / resume
  d           debug mode
  n           new game
  q           quit`

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("column must be an int")
		return
	}
	return
}

// executeCommand turns one input line into a pointer or keyboard event.
// Tile commands click the middle of the tile.
func executeCommand(d *game.Dispatcher, c string) error {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return errors.New("empty command")
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "o", "f":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		x, y := d.TileCenter(row, col)
		var inside bool
		if parts[0] == "o" {
			inside = d.LeftClick(x, y)
		} else {
			inside = d.RightClick(x, y)
		}
		if !inside {
			return errors.New("invalid tile coordinates")
		}
	case "p":
		d.TogglePause()
	case "d":
		d.ToggleDebug()
	case "n":
		d.RequestReset()
	case "q":
		return errQuit
	}
	return nil
}

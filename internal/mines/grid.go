package mines

import (
	"strconv"
	"strings"
)

type CellState int8

const (
	Hidden CellState = iota - 3
	Flag
	Mine
	// 0 to 8 mean the tile is open and carry its adjacent mine count.
)

func (s CellState) String() string {
	switch {
	case s == Hidden:
		return "."
	case s == Flag:
		return "F"
	case s == Mine:
		return "*"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// State is what a player sees on the tile. A flag hides everything under it.
func (t Tile) State() CellState {
	switch {
	case t.flagged:
		return Flag
	case !t.revealed:
		return Hidden
	case t.mined:
		return Mine
	default:
		return CellState(t.mineCount)
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.rows {
		for col := range b.cols {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.tiles[b.CoordsToIndex(row, col)].State().String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

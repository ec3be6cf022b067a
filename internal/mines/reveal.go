package mines

import (
	"github.com/gammazero/deque"
)

type RevealResult int

const (
	Continue RevealResult = iota
	HitMine
)

func (r RevealResult) String() string {
	switch r {
	case Continue:
		return "continue"
	case HitMine:
		return "hit mine"
	default:
		return "unknown"
	}
}

// RevealSingle opens one tile without spreading. Flagged, revealed and out
// of range tiles are left alone and yield Continue.
func (b *Board) RevealSingle(row, col int) RevealResult {
	if !b.InBounds(row, col) {
		return Continue
	}
	t := &b.tiles[b.CoordsToIndex(row, col)]
	if t.flagged || t.revealed {
		return Continue
	}
	t.revealed = true
	if t.mined {
		return HitMine
	}
	b.nonMinesRevealed++
	return Continue
}

// FloodFill opens the zero-adjacency region around row, col together with
// its numbered border and returns the number of tiles it revealed. It never
// spreads past a flagged or numbered tile. The revealed flag is the visited
// set, so a second call on the same origin does nothing.
func (b *Board) FloodFill(row, col int) int {
	if !b.InBounds(row, col) {
		return 0
	}
	origin := b.CoordsToIndex(row, col)
	if b.tiles[origin].mined || b.tiles[origin].revealed {
		return 0
	}

	var (
		todo     deque.Deque[int]
		revealed int
	)
	todo.PushBack(origin)
	for todo.Len() > 0 {
		i := todo.PopBack()
		t := &b.tiles[i]
		if t.mined || t.revealed || t.flagged {
			continue
		}
		if t.mineCount > 0 && !b.bordersOpenRegion(i) {
			continue
		}

		t.revealed = true
		b.nonMinesRevealed++
		revealed++

		if t.mineCount > 0 {
			continue
		}
		for _, j := range t.neighbors {
			if !b.tiles[j].revealed {
				todo.PushBack(j)
			}
		}
	}
	return revealed
}

func (b *Board) bordersOpenRegion(index int) bool {
	for _, j := range b.tiles[index].neighbors {
		if !b.tiles[j].mined && b.tiles[j].mineCount == 0 {
			return true
		}
	}
	return false
}

// RevealAllMines marks every mined tile revealed. Safe tiles and the
// counters are untouched.
func (b *Board) RevealAllMines() {
	for i := range b.tiles {
		if b.tiles[i].mined {
			b.tiles[i].revealed = true
		}
	}
}

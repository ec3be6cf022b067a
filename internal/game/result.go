package game

import (
	"time"

	"github.com/vancomm/minesweeper/internal/leaderboard"
)

type Result struct {
	Name    string
	Minutes int
	Seconds int
	Elapsed time.Duration
}

func splitElapsed(d time.Duration) (minutes, seconds int) {
	s := int(d / time.Second)
	return s / 60, s % 60
}

// Result returns the finished game's time and player. ok is false unless
// the game was won.
func (g *Game) Result() (res Result, ok bool) {
	if !g.won {
		return Result{}, false
	}
	m, s := splitElapsed(g.elapsed)
	return Result{
		Name:    g.player,
		Minutes: m,
		Seconds: s,
		Elapsed: g.elapsed,
	}, true
}

func (r Result) Record() leaderboard.Record {
	return leaderboard.Record{
		Minutes: r.Minutes,
		Seconds: r.Seconds,
		Name:    leaderboard.SanitizeName(r.Name),
	}
}

// String is the leaderboard line, "MMSS, name".
func (r Result) String() string {
	return r.Record().String()
}

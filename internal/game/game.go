package game

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/vancomm/minesweeper/internal/leaderboard"
	"github.com/vancomm/minesweeper/internal/mines"
)

type State int

const (
	NotStarted State = iota
	InProgress
	Paused
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Paused:
		return "paused"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Game is one play session. It is not safe for concurrent use: a single
// event loop owns it and calls Tick once per frame.
type Game struct {
	logger *slog.Logger
	rnd    *rand.Rand
	now    func() time.Time
	params mines.GameParams
	board  *mines.Board

	active   bool
	lost     bool
	won      bool
	paused   bool
	newGame  bool
	debug    bool
	announce bool

	flagCounter int
	elapsed     time.Duration
	lastResume  time.Time
	player      string

	// OnWin, if set, receives the result once per won game.
	OnWin func(Result)
}

// New starts a session with a freshly mined board. params must satisfy
// [mines.GameParams.Validate].
func New(
	logger *slog.Logger,
	params mines.GameParams,
	rnd *rand.Rand,
	now func() time.Time,
) *Game {
	if now == nil {
		now = time.Now
	}
	g := &Game{
		logger: logger,
		rnd:    rnd,
		now:    now,
		params: params,
	}
	g.Reset()
	return g
}

// Reset discards the current board and every flag, counter and timer, and
// turns debug mode off.
func (g *Game) Reset() {
	g.start(mines.NewBoard(g.params, g.rnd))
}

// Load is Reset with a prepared board. Later resets keep its dimensions and
// mine count.
func (g *Game) Load(board *mines.Board) {
	g.params = board.Params()
	g.start(board)
}

func (g *Game) start(board *mines.Board) {
	g.board = board
	g.active = true
	g.lost = false
	g.won = false
	g.paused = false
	g.newGame = true
	g.debug = false
	g.announce = false
	g.flagCounter = board.MineCount()
	g.elapsed = 0
	g.lastResume = time.Time{}
	g.logger.Debug("new game", slog.String("params", g.params.String()))
}

func (g *Game) SetPlayer(name string) {
	g.player = leaderboard.SanitizeName(name)
}

func (g *Game) Player() string {
	return g.player
}

// LeftClick reveals the tile at row, col. Clicks after the game is over,
// while paused, on flags or out of bounds are ignored. The first click of a
// game starts the timer and may land on a mine.
func (g *Game) LeftClick(row, col int) {
	if g.won || g.lost || !g.board.InBounds(row, col) {
		return
	}
	if g.newGame {
		g.newGame = false
		g.lastResume = g.now()
		g.logger.Debug("game started")
	} else if g.paused {
		return
	}

	tile, _ := g.board.Tile(row, col)
	switch {
	case tile.Flagged() || tile.Revealed():
		return
	case tile.Mined():
		g.board.RevealSingle(row, col)
		g.lose(row, col)
		return
	case tile.AdjacentMines() == 0:
		g.board.FloodFill(row, col)
	default:
		g.board.RevealSingle(row, col)
	}
	g.checkWin()
}

// RightClick toggles a flag on an unrevealed tile.
func (g *Game) RightClick(row, col int) {
	if g.won || g.lost || g.paused {
		return
	}
	flagged, changed := g.board.ToggleFlag(row, col)
	if !changed {
		return
	}
	if flagged {
		g.flagCounter--
	} else {
		g.flagCounter++
	}
	g.checkWin()
}

func (g *Game) lose(row, col int) {
	g.Tick()
	g.lost = true
	g.board.RevealAllMines()
	g.logger.Debug("game lost",
		slog.Int("row", row), slog.Int("col", col), slog.Duration("elapsed", g.elapsed))
}

func (g *Game) checkWin() {
	if !g.board.Cleared() {
		return
	}
	g.Tick()
	g.won = true
	g.logger.Debug("game won",
		slog.String("player", g.player), slog.Duration("elapsed", g.elapsed))
	if g.OnWin != nil && !g.announce {
		g.announce = true
		res, _ := g.Result()
		g.OnWin(res)
	}
}

// TogglePause freezes or resumes the timer. It has no effect before the
// first click or after the game is over.
func (g *Game) TogglePause() {
	if g.won || g.lost || g.newGame {
		return
	}
	if g.paused {
		g.paused = false
		g.lastResume = g.now()
		g.logger.Debug("game resumed")
		return
	}
	g.Tick()
	g.paused = true
	g.logger.Debug("game paused", slog.Duration("elapsed", g.elapsed))
}

func (g *Game) ToggleDebug() {
	if g.won || g.lost {
		return
	}
	g.debug = !g.debug
	g.logger.Debug("debug mode", slog.Bool("on", g.debug))
}

func (g *Game) running() bool {
	return !g.newGame && !g.paused && !g.won && !g.lost
}

// Tick folds the time since the last tick into the elapsed total.
func (g *Game) Tick() {
	if !g.running() {
		return
	}
	now := g.now()
	g.elapsed += now.Sub(g.lastResume)
	g.lastResume = now
}

func (g *Game) Elapsed() time.Duration {
	e := g.elapsed
	if g.running() {
		e += g.now().Sub(g.lastResume)
	}
	return e
}

func (g *Game) State() State {
	switch {
	case g.won:
		return Won
	case g.lost:
		return Lost
	case g.newGame:
		return NotStarted
	case g.paused:
		return Paused
	default:
		return InProgress
	}
}

func (g *Game) Active() bool {
	return g.active
}

func (g *Game) Won() bool {
	return g.won
}

func (g *Game) Lost() bool {
	return g.lost
}

func (g *Game) Paused() bool {
	return g.paused
}

func (g *Game) NewGame() bool {
	return g.newGame
}

func (g *Game) Debug() bool {
	return g.debug
}

// FlagCounter is the mine count minus flags placed. It goes negative when
// the player over-flags.
func (g *Game) FlagCounter() int {
	return g.flagCounter
}

func (g *Game) Params() mines.GameParams {
	return g.params
}

func (g *Game) Tile(row, col int) (mines.Tile, bool) {
	return g.board.Tile(row, col)
}

func (g *Game) NonMinesRevealed() int {
	return g.board.NonMinesRevealed()
}

func (g *Game) MinesFlagged() int {
	return g.board.MinesFlagged()
}

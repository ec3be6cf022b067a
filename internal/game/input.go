package game

const DefaultTileSize = 32

// Dispatcher maps pointer events in window pixels onto tiles. Pixels that
// fall outside the grid are dropped.
type Dispatcher struct {
	Game     *Game
	TileSize int
}

func NewDispatcher(g *Game) *Dispatcher {
	return &Dispatcher{Game: g, TileSize: DefaultTileSize}
}

func (d *Dispatcher) Cell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/d.TileSize, x/d.TileSize
	return row, col, d.Game.board.InBounds(row, col)
}

// TileCenter is the pixel at the middle of a tile.
func (d *Dispatcher) TileCenter(row, col int) (x, y int) {
	return col*d.TileSize + d.TileSize/2, row*d.TileSize + d.TileSize/2
}

func (d *Dispatcher) LeftClick(x, y int) bool {
	row, col, ok := d.Cell(x, y)
	if ok {
		d.Game.LeftClick(row, col)
	}
	return ok
}

func (d *Dispatcher) RightClick(x, y int) bool {
	row, col, ok := d.Cell(x, y)
	if ok {
		d.Game.RightClick(row, col)
	}
	return ok
}

func (d *Dispatcher) TogglePause() {
	d.Game.TogglePause()
}

func (d *Dispatcher) ToggleDebug() {
	d.Game.ToggleDebug()
}

func (d *Dispatcher) RequestReset() {
	d.Game.Reset()
}

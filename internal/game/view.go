package game

type TileView struct {
	Revealed      bool `json:"revealed"`
	Flagged       bool `json:"flagged"`
	Mined         bool `json:"mined"`
	AdjacentMines int  `json:"adjacent_mines"`
}

// View is everything a renderer needs for one frame. Renderers poll it; the
// game never pushes updates.
type View struct {
	Rows           int        `json:"rows"`
	Cols           int        `json:"cols"`
	Tiles          []TileView `json:"tiles"`
	FlagCounter    int        `json:"flag_counter"`
	ElapsedMinutes int        `json:"elapsed_minutes"`
	ElapsedSeconds int        `json:"elapsed_seconds"`
	State          State      `json:"state"`
	Won            bool       `json:"won"`
	Lost           bool       `json:"lost"`
	Debug          bool       `json:"debug"`
	Paused         bool       `json:"paused"`
	Player         string     `json:"player"`
}

func (v View) Tile(row, col int) TileView {
	return v.Tiles[row*v.Cols+col]
}

// View snapshots the game. While paused every tile is reported hidden.
func (g *Game) View() View {
	m, s := splitElapsed(g.Elapsed())
	v := View{
		Rows:           g.board.Rows(),
		Cols:           g.board.Cols(),
		Tiles:          make([]TileView, g.board.Len()),
		FlagCounter:    g.flagCounter,
		ElapsedMinutes: m,
		ElapsedSeconds: s,
		State:          g.State(),
		Won:            g.won,
		Lost:           g.lost,
		Debug:          g.debug,
		Paused:         g.paused,
		Player:         g.player,
	}
	if g.paused {
		return v
	}
	for i := range v.Tiles {
		t := g.board.At(i)
		v.Tiles[i] = TileView{
			Revealed:      t.Revealed(),
			Flagged:       t.Flagged(),
			Mined:         t.Mined(),
			AdjacentMines: t.AdjacentMines(),
		}
	}
	return v
}

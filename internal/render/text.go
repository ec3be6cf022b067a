package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/leaderboard"
)

type Renderer interface {
	Render(v game.View) error
}

// Glyphs used for tiles. Open tiles show their adjacent mine count.
const (
	GlyphHidden = "."
	GlyphFlag   = "F"
	GlyphMine   = "*"
	GlyphEmpty  = " "
)

var numberColors = [...]lipgloss.Color{
	1: "12", 2: "2", 3: "9", 4: "4", 5: "1", 6: "6", 7: "0", 8: "8",
}

// Text draws the board as a grid of characters, one tile per cell.
type Text struct {
	w       io.Writer
	title   lipgloss.Style
	flag    lipgloss.Style
	mine    lipgloss.Style
	numbers [len(numberColors)]lipgloss.Style
}

func NewText(w io.Writer) *Text {
	r := lipgloss.NewRenderer(w)
	t := &Text{
		w:     w,
		title: r.NewStyle().Bold(true),
		flag:  r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		mine:  r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
	for i, c := range numberColors {
		t.numbers[i] = r.NewStyle().Foreground(c)
	}
	return t
}

func (t *Text) glyph(tile game.TileView, debug bool) string {
	switch {
	case tile.Flagged:
		return t.flag.Render(GlyphFlag)
	case tile.Revealed && tile.Mined:
		return t.mine.Render(GlyphMine)
	case tile.Revealed && tile.AdjacentMines == 0:
		return GlyphEmpty
	case tile.Revealed:
		return t.numbers[tile.AdjacentMines].Render(fmt.Sprint(tile.AdjacentMines))
	case debug && tile.Mined:
		return t.mine.Render(GlyphMine)
	default:
		return GlyphHidden
	}
}

func status(v game.View) string {
	switch {
	case v.Won:
		return "You win, " + v.Player + "!"
	case v.Lost:
		return "Boom! Game over."
	case v.Paused:
		return "PAUSED"
	case v.State == game.NotStarted:
		return "Click a tile to start."
	default:
		return ""
	}
}

func (t *Text) Render(v game.View) error {
	var sb strings.Builder

	sb.WriteString("    ")
	for col := range v.Cols {
		fmt.Fprintf(&sb, "%-3d", col)
	}
	sb.WriteByte('\n')
	for row := range v.Rows {
		fmt.Fprintf(&sb, "%3d ", row)
		for col := range v.Cols {
			sb.WriteString(t.glyph(v.Tile(row, col), v.Debug))
			if col < v.Cols-1 {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "\nMines: %d  Time: %02d:%02d", v.FlagCounter, v.ElapsedMinutes, v.ElapsedSeconds)
	if v.Debug {
		sb.WriteString("  [debug]")
	}
	sb.WriteByte('\n')
	if s := status(v); s != "" {
		sb.WriteString(t.title.Render(s))
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(t.w, sb.String())
	return err
}

// RenderLeaderboard prints the table and marks the entry at highlight (if
// any) with a star.
func (t *Text) RenderLeaderboard(tbl leaderboard.Table, highlight int) error {
	var sb strings.Builder
	sb.WriteString(t.title.Render("LEADERBOARD"))
	sb.WriteString("\n\n")
	if tbl.Len() == 0 {
		sb.WriteString("No records yet.\n")
	}
	for i, rec := range tbl.Entries {
		fmt.Fprintf(&sb, "%d.\t%02d:%02d\t%s", i+1, rec.Minutes, rec.Seconds, rec.Name)
		if i == highlight {
			sb.WriteByte('*')
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(t.w, sb.String())
	return err
}

func (t *Text) RenderNamePrompt(f *game.NameField) error {
	_, err := fmt.Fprintf(t.w, "%s\n\nEnter your name: %s\n",
		t.title.Render("WELCOME TO MINESWEEPER!"), f.String())
	return err
}

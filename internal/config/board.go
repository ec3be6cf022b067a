package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Board is the contents of config.cfg: columns, rows and mines, one per
// line in that order.
type Board struct {
	Columns int `schema:"columns,required"`
	Rows    int `schema:"rows,required"`
	Mines   int `schema:"mines,required"`
}

var boardKeys = []string{"columns", "rows", "mines"}

func ReadBoard(r io.Reader) (Board, error) {
	src := make(map[string][]string, len(boardKeys))
	sc := bufio.NewScanner(r)
	for i := 0; i < len(boardKeys) && sc.Scan(); i++ {
		src[boardKeys[i]] = []string{strings.TrimSpace(sc.Text())}
	}
	if err := sc.Err(); err != nil {
		return Board{}, fmt.Errorf("unable to read board config: %w", err)
	}

	var b Board
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&b, src); err != nil {
		return Board{}, fmt.Errorf("unable to decode board config: %w", err)
	}
	return b, b.Validate()
}

func LoadBoard(path string) (Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return Board{}, fmt.Errorf("unable to open board config: %w", err)
	}
	defer f.Close()
	return ReadBoard(f)
}

func (b Board) Params() mines.GameParams {
	return mines.GameParams{Width: b.Columns, Height: b.Rows, MineCount: b.Mines}
}

func (b Board) Validate() error {
	return b.Params().Validate()
}

// WindowSize is the reference window geometry: the grid plus a 100 pixel
// status bar below it.
func (b Board) WindowSize(tileSize int) (width, height int) {
	return b.Columns * tileSize, b.Rows*tileSize + 100
}

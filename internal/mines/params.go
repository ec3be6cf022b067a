package mines

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidParams = errors.New("invalid game params")

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

// String returns the compact "cols:rows:mines" form accepted by
// [ParseGameParams].
func (p GameParams) String() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseGameParams(s string) (GameParams, error) {
	var p GameParams
	ss := strings.ReplaceAll(s, ":", " ")
	n, err := fmt.Sscanf(ss, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return GameParams{}, fmt.Errorf(
			`%w: cannot parse "%s" (n = %d, err = %v)`, ErrInvalidParams, s, n, err,
		)
	}
	return p, nil
}

// Validate reports whether a board can be built from p. [NewBoard] does not
// check this itself: with MineCount >= Width*Height mine placement never
// terminates.
func (p GameParams) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d",
			ErrInvalidParams, p.Width, p.Height)
	case p.MineCount < 0:
		return fmt.Errorf("%w: negative mine count %d", ErrInvalidParams, p.MineCount)
	case p.MineCount >= p.Width*p.Height:
		return fmt.Errorf("%w: %d mines do not fit on %d cells",
			ErrInvalidParams, p.MineCount, p.Width*p.Height)
	}
	return nil
}

func (p GameParams) CellCount() int {
	return p.Width * p.Height
}

func (p GameParams) ValidatePosition(row, col int) bool {
	return 0 <= row && row < p.Height && 0 <= col && col < p.Width
}

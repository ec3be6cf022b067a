package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/leaderboard"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

var (
	boardFlag string
	seedFlag  uint64
)

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Long: `Play Minesweeper in the terminal.

The board size comes from config.cfg (columns, rows, mines on three lines)
unless --board is given.

Examples:
  minesweeper play
  minesweeper play --board 9:9:10
  minesweeper play --board 30:16:99 --seed 42`,
		RunE: runPlay,
	}

	playCmd.Flags().StringVarP(&boardFlag, "board", "b", "", "Board as cols:rows:mines, overrides the config file")
	playCmd.Flags().Uint64Var(&seedFlag, "seed", 0, "Mine placement seed (0 picks one at random)")

	rootCmd.AddCommand(playCmd)
}

func loadParams() (mines.GameParams, error) {
	if boardFlag == "" {
		b, err := config.LoadBoard(config.BoardConfigPath())
		if err != nil {
			return mines.GameParams{}, err
		}
		return b.Params(), nil
	}
	params, err := mines.ParseGameParams(boardFlag)
	if err != nil {
		return mines.GameParams{}, err
	}
	return params, params.Validate()
}

func runPlay(cmd *cobra.Command, args []string) error {
	params, err := loadParams()
	if err != nil {
		return err
	}
	lb, release, err := openLeaderboard(logger)
	if err != nil {
		return err
	}
	defer release()

	s := session{
		logger: logger,
		params: params,
		rnd:    createRand(seedFlag),
		lb:     lb,
		tick:   time.Second,
	}
	return s.run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
}

type session struct {
	logger *slog.Logger
	params mines.GameParams
	rnd    *rand.Rand
	lb     *leaderboard.Leaderboard
	tick   time.Duration
}

func readName(sc *bufio.Scanner, r *render.Text) (string, error) {
	for {
		var f game.NameField
		if err := r.RenderNamePrompt(&f); err != nil {
			return "", err
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		for _, c := range sc.Text() {
			f.Add(c)
		}
		if f.Ready() {
			return f.Name(), nil
		}
	}
}

// run owns the game on one goroutine. Input lines and timer ticks arrive
// over channels, so the game itself needs no locking.
func (s session) run(ctx context.Context, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	r := render.NewText(out)

	name, err := readName(sc, r)
	if err != nil {
		return fmt.Errorf("unable to read player name: %w", err)
	}

	g := game.New(s.logger, s.params, s.rnd, time.Now)
	g.SetPlayer(name)
	g.OnWin = func(res game.Result) {
		tbl, pos, err := s.lb.Submit(ctx, res.Record())
		switch {
		case errors.Is(err, leaderboard.ErrDuplicate), errors.Is(err, leaderboard.ErrNotRanked):
			pos = -1
		case err != nil:
			s.logger.Error("unable to submit result", slog.String("result", res.String()), slog.Any("error", err))
			return
		}
		if err := r.RenderLeaderboard(tbl, pos); err != nil {
			s.logger.Error("unable to render leaderboard", slog.Any("error", err))
		}
	}
	d := game.NewDispatcher(g)
	execute := withLogging(s.logger)(func(line string) error {
		return executeCommand(d, line)
	})

	eg, egCtx := errgroup.WithContext(ctx)

	// The scanner blocks without honoring ctx, so the reader lives outside
	// the group and is abandoned on exit.
	lines := make(chan string)
	go func() {
		defer close(lines)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-egCtx.Done():
				return
			}
		}
	}()

	ticks := make(chan struct{})
	eg.Go(func() error {
		ticker := time.NewTicker(s.tick)
		defer ticker.Stop()
		for {
			select {
			case <-egCtx.Done():
				return nil
			case <-ticker.C:
				select {
				case ticks <- struct{}{}:
				case <-egCtx.Done():
					return nil
				}
			}
		}
	})

	eg.Go(func() error {
		fmt.Fprintln(out, commandHelp)
		if err := r.Render(g.View()); err != nil {
			return err
		}
		for {
			select {
			case <-egCtx.Done():
				return egCtx.Err()
			case <-ticks:
				g.Tick()
			case line, ok := <-lines:
				if !ok {
					return errQuit
				}
				if err := execute(line); errors.Is(err, errQuit) {
					return err
				} else if err != nil {
					fmt.Fprintln(out, err)
					continue
				}
				if err := r.Render(g.View()); err != nil {
					return err
				}
			}
		}
	})

	err = eg.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

package leaderboard

import (
	"context"
	"fmt"
	"log/slog"
)

type Leaderboard struct {
	logger *slog.Logger
	store  Store
}

func New(logger *slog.Logger, store Store) *Leaderboard {
	return &Leaderboard{logger: logger, store: store}
}

func (l *Leaderboard) Top(ctx context.Context) (Table, error) {
	return l.store.Load(ctx)
}

// Submit inserts rec and persists the table. Duplicate and unranked records
// are reported with ErrDuplicate and ErrNotRanked and leave the store as is.
func (l *Leaderboard) Submit(ctx context.Context, rec Record) (Table, int, error) {
	t, err := l.store.Load(ctx)
	if err != nil {
		return Table{}, -1, fmt.Errorf("unable to load leaderboard: %w", err)
	}
	pos, err := t.Insert(rec)
	if err != nil {
		l.logger.Debug("record not inserted", slog.String("record", rec.String()), slog.Any("reason", err))
		return t, -1, err
	}
	if err := l.store.Save(ctx, t); err != nil {
		return t, -1, fmt.Errorf("unable to save leaderboard: %w", err)
	}
	l.logger.Info("new leaderboard record",
		slog.String("record", rec.String()), slog.Int("position", pos+1))
	return t, pos, nil
}

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type LeaderboardEntry struct {
	EntryId   uuid.UUID
	Position  int
	Minutes   int
	Seconds   int
	Name      string
	CreatedAt time.Time
}

type CreateLeaderboardEntryParams struct {
	Position int
	Minutes  int
	Seconds  int
	Name     string
}

func (q *Queries) CreateLeaderboardEntry(
	ctx context.Context, params CreateLeaderboardEntryParams,
) (uuid.UUID, error) {
	id := uuid.New()
	_, err := q.db.ExecContext(
		ctx,
		`INSERT INTO leaderboard_entry (entry_id, position, minutes, seconds, name)
		VALUES (?, ?, ?, ?, ?);`,
		id.String(), params.Position, params.Minutes, params.Seconds, params.Name,
	)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (q *Queries) ListLeaderboardEntries(ctx context.Context) ([]LeaderboardEntry, error) {
	rows, err := q.db.QueryContext(
		ctx,
		`SELECT entry_id, position, minutes, seconds, name, created_at
		FROM leaderboard_entry
		ORDER BY position;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var (
			e  LeaderboardEntry
			id string
		)
		if err := rows.Scan(
			&id, &e.Position, &e.Minutes, &e.Seconds, &e.Name, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		if e.EntryId, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (q *Queries) DeleteLeaderboardEntries(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, "DELETE FROM leaderboard_entry;")
	return err
}

package leaderboard

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vancomm/minesweeper/internal/repository"
)

type Store interface {
	Load(ctx context.Context) (Table, error)
	Save(ctx context.Context, t Table) error
}

// FileStore keeps the table in a text file, one record per line.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func ReadTable(r io.Reader) (Table, error) {
	var t Table
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rec, err := ParseRecord(line)
		if err != nil {
			return Table{}, err
		}
		t.Entries = append(t.Entries, rec)
	}
	return t, sc.Err()
}

func WriteTable(w io.Writer, t Table) error {
	for _, rec := range t.Entries {
		if _, err := fmt.Fprintln(w, rec.String()); err != nil {
			return err
		}
	}
	return nil
}

// Load returns an empty table if the file does not exist yet.
func (s *FileStore) Load(ctx context.Context) (Table, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return Table{}, nil
	} else if err != nil {
		return Table{}, fmt.Errorf("unable to open leaderboard file: %w", err)
	}
	defer f.Close()

	t, err := ReadTable(f)
	if err != nil {
		return Table{}, fmt.Errorf("unable to read leaderboard file %s: %w", s.Path, err)
	}
	return t, nil
}

func (s *FileStore) Save(ctx context.Context, t Table) error {
	var buf bytes.Buffer
	if err := WriteTable(&buf, t); err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("unable to write leaderboard file: %w", err)
	}
	return nil
}

// SQLiteStore keeps the table in the leaderboard_entry table. The schema
// comes from the database package migrations.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Load(ctx context.Context) (Table, error) {
	entries, err := repository.New(s.db).ListLeaderboardEntries(ctx)
	if err != nil {
		return Table{}, fmt.Errorf("unable to list leaderboard entries: %w", err)
	}
	var t Table
	for _, e := range entries {
		t.Entries = append(t.Entries, Record{
			Minutes: e.Minutes,
			Seconds: e.Seconds,
			Name:    e.Name,
		})
	}
	return t, nil
}

// Save replaces the stored table in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, t Table) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("unable to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	q := repository.New(s.db).WithTx(tx)
	if err = q.DeleteLeaderboardEntries(ctx); err != nil {
		return fmt.Errorf("unable to clear leaderboard: %w", err)
	}
	for i, rec := range t.Entries {
		_, err = q.CreateLeaderboardEntry(ctx, repository.CreateLeaderboardEntryParams{
			Position: i,
			Minutes:  rec.Minutes,
			Seconds:  rec.Seconds,
			Name:     rec.Name,
		})
		if err != nil {
			return fmt.Errorf("unable to insert leaderboard entry: %w", err)
		}
	}
	return tx.Commit()
}

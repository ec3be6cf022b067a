package leaderboard

import (
	"errors"
	"slices"
)

const MaxEntries = 5

var (
	ErrDuplicate = errors.New("record already on the leaderboard")
	ErrNotRanked = errors.New("record too slow for the leaderboard")
)

// Table is the ordered top list, fastest first.
type Table struct {
	Entries []Record
}

// Insert places r before the first entry that is not faster than it and
// trims the table to MaxEntries. It returns r's position.
func (t *Table) Insert(r Record) (int, error) {
	if slices.Contains(t.Entries, r) {
		return -1, ErrDuplicate
	}
	pos := len(t.Entries)
	for i, e := range t.Entries {
		if r.TotalSeconds() <= e.TotalSeconds() {
			pos = i
			break
		}
	}
	if pos >= MaxEntries {
		return -1, ErrNotRanked
	}
	t.Entries = slices.Insert(t.Entries, pos, r)
	if len(t.Entries) > MaxEntries {
		t.Entries = t.Entries[:MaxEntries]
	}
	return pos, nil
}

func (t *Table) Len() int {
	return len(t.Entries)
}

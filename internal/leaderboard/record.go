package leaderboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrMalformedRecord = errors.New("malformed leaderboard record")

// Delimiters that may trail a name: the entry cursor and the record
// separator.
const nameDelimiters = "|, \t\r\n"

// Record is one leaderboard line, "MMSS, name".
type Record struct {
	Minutes int
	Seconds int
	Name    string
}

func NewRecord(elapsed time.Duration, name string) Record {
	s := int(elapsed / time.Second)
	return Record{Minutes: s / 60, Seconds: s % 60, Name: SanitizeName(name)}
}

// FormatTime zero-pads both components to two digits.
func FormatTime(minutes, seconds int) string {
	return fmt.Sprintf("%02d%02d", minutes, seconds)
}

func SanitizeName(name string) string {
	return strings.TrimRight(strings.TrimSpace(name), nameDelimiters)
}

func (r Record) Time() string {
	return FormatTime(r.Minutes, r.Seconds)
}

func (r Record) TotalSeconds() int {
	return r.Minutes*60 + r.Seconds
}

func (r Record) String() string {
	return r.Time() + ", " + r.Name
}

func ParseRecord(line string) (Record, error) {
	t, name, found := strings.Cut(strings.TrimSpace(line), ",")
	if !found {
		return Record{}, fmt.Errorf(`%w: no separator in "%s"`, ErrMalformedRecord, line)
	}
	if len(t) < 4 {
		return Record{}, fmt.Errorf(`%w: short time "%s"`, ErrMalformedRecord, t)
	}
	minutes, err := strconv.Atoi(t[:len(t)-2])
	if err != nil || minutes < 0 {
		return Record{}, fmt.Errorf(`%w: bad minutes in "%s"`, ErrMalformedRecord, t)
	}
	seconds, err := strconv.Atoi(t[len(t)-2:])
	if err != nil || seconds < 0 || seconds >= 60 {
		return Record{}, fmt.Errorf(`%w: bad seconds in "%s"`, ErrMalformedRecord, t)
	}
	return Record{
		Minutes: minutes,
		Seconds: seconds,
		Name:    SanitizeName(name),
	}, nil
}

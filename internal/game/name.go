package game

import "unicode"

const (
	MaxNameLength = 10
	NameCursor    = '|'
)

// NameField is the welcome screen's name input: ASCII letters only, at most
// MaxNameLength of them, capitalized on entry.
type NameField struct {
	letters []rune
}

func isLetter(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// Add appends c and reports whether it was accepted.
func (f *NameField) Add(c rune) bool {
	if len(f.letters) >= MaxNameLength || !isLetter(c) {
		return false
	}
	if len(f.letters) == 0 {
		c = unicode.ToUpper(c)
	} else {
		c = unicode.ToLower(c)
	}
	f.letters = append(f.letters, c)
	return true
}

// Pop removes the last letter, if any.
func (f *NameField) Pop() bool {
	if len(f.letters) == 0 {
		return false
	}
	f.letters = f.letters[:len(f.letters)-1]
	return true
}

func (f *NameField) Ready() bool {
	return len(f.letters) > 0
}

func (f *NameField) Name() string {
	return string(f.letters)
}

// String is the on-screen form with the trailing cursor.
func (f *NameField) String() string {
	return string(f.letters) + string(NameCursor)
}

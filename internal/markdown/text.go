package markdown

import (
	"math"
	"strings"
	"unicode"
)

const ellipsis = "…"

// Excerpt prunes plain text to at most length runes, cutting at the last word boundary
// and appending an ellipsis. Text that already fits is returned unchanged.
func Excerpt(plain string, length int) string {
	plain = strings.TrimSpace(plain)
	runes := []rune(plain)
	if length <= 0 || len(runes) <= length {
		return plain
	}

	cut := length
	// Only step back when the cut lands inside a word.
	if !unicode.IsSpace(runes[cut]) {
		for cut > 0 && !unicode.IsSpace(runes[cut-1]) {
			cut--
		}
	}
	if cut == 0 {
		cut = length
	}

	pruned := strings.TrimRightFunc(string(runes[:cut]), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	return pruned + ellipsis
}

// ReadingTime estimates whole minutes to read plain text at wpm words per minute,
// rounded to the nearest minute and never less than one.
func ReadingTime(plain string, wpm int) int {
	if wpm <= 0 {
		wpm = 265
	}
	words := len(strings.Fields(plain))
	minutes := int(math.Round(float64(words) / float64(wpm)))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

package extractor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"takeoff/internal/model"
	"takeoff/internal/textutil"
)

// titleWindow is how many rows above and below a header row are
// searched for a drawing title.
const titleWindow = 3

// Header-like fragments that disqualify a cell as a title. Matched as
// substrings of the accent-stripped upper-cased text, except "UN" which
// is matched as a whole word so titles like "ESCADA PARA DISJUNTOR"
// survive.
var titleDenylist = []string{"ITEM", "COD", "CLIENTE", "DESCR", "QUANT"}

// IsTitleCandidate reports whether a cell's text qualifies as a drawing
// title: at least 4 runes, contains a letter, carries no header-like
// fragment, and is not just digits and punctuation.
func IsTitleCandidate(text string) bool {
	t := textutil.NormalizeCell(text)
	if utf8.RuneCountInString(t) < 4 {
		return false
	}
	if !textutil.HasLetter(t) {
		return false
	}
	u := strings.ToUpper(textutil.StripAccents(t))
	for _, bad := range titleDenylist {
		if strings.Contains(u, bad) {
			return false
		}
	}
	for _, word := range strings.FieldsFunc(u, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if word == "UN" {
			return false
		}
	}
	if allDigitsOrPunct(t) {
		return false
	}
	return true
}

func allDigitsOrPunct(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// FindTitle scans the rows within titleWindow of the header row and
// returns the longest qualifying candidate, first seen winning ties.
// Returns "" when no cell qualifies; the caller applies its fallback.
func FindTitle(grid model.Grid, headerRow int) string {
	r0 := headerRow - titleWindow
	if r0 < 0 {
		r0 = 0
	}
	r1 := headerRow + titleWindow
	if r1 > len(grid)-1 {
		r1 = len(grid) - 1
	}

	best := ""
	bestLen := 0
	for r := r0; r <= r1; r++ {
		for _, cell := range grid[r] {
			t := textutil.NormalizeCell(cell)
			if !IsTitleCandidate(t) {
				continue
			}
			if n := utf8.RuneCountInString(t); n > bestLen {
				best = t
				bestLen = n
			}
		}
	}
	return best
}

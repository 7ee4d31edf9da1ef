package textutil

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// StripAccents decomposes the string and drops combining marks, so
// "DESCRIÇÃO" becomes "DESCRICAO".
func StripAccents(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeCell canonicalizes raw cell text: non-breaking spaces become
// ordinary spaces, whitespace runs collapse to one space, and the result
// is trimmed. Every cell passes through here before any comparison.
func NormalizeCell(raw string) string {
	s := strings.ReplaceAll(raw, "\u00A0", " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeKey reduces text to a bare matching key: accents stripped,
// upper-cased, periods removed, then everything outside A-Z0-9 dropped.
// "Cód. Cliente" -> "CODCLIENTE". Used only for header alias matching.
func NormalizeKey(raw string) string {
	s := strings.ToUpper(StripAccents(NormalizeCell(raw)))
	s = strings.ReplaceAll(s, ".", "")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseNumber parses quantity text in pt-BR convention: comma as the
// decimal separator, period as a thousands separator ("1.234,56").
// Empty or unparseable text yields 0 so a malformed quantity never
// aborts an extraction.
func ParseNumber(raw string) float64 {
	s := NormalizeCell(raw)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, " ", "")
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// IsBlankRow reports whether every cell of the row normalizes to empty.
func IsBlankRow(row []string) bool {
	for _, c := range row {
		if NormalizeCell(c) != "" {
			return false
		}
	}
	return true
}

// HasLetter reports whether the text contains at least one letter,
// accented letters included.
func HasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

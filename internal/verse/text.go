package verse

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// IsLetter reports whether r is a letter the analyzers understand.
// Only lower-case forms are accepted; callers lower the text first.
func IsLetter(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	switch r {
	case 'ñ', 'á', 'é', 'í', 'ó', 'ú', 'ü':
		return true
	}
	return false
}

// Lower lower-cases s and drops every rune that is not a letter.
// Diacritics are kept because written accents carry stress.
func Lower(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize lower-cases s and removes diacritics, keeping ñ.
// Non-letter runes are left untouched.
func Normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	var t transform.Transformer
	for _, r := range s {
		if r <= unicode.MaxASCII || r == 'ñ' {
			b.WriteRune(r)
			continue
		}
		if t == nil {
			t = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		}
		out, _, err := transform.String(t, string(r))
		if err != nil {
			out = string(r)
		}
		b.WriteString(out)
	}
	return b.String()
}

// Words splits a line into its runs of letters, lower-cased.
func Words(line string) []string {
	var words []string
	var cur strings.Builder
	for _, r := range strings.ToLower(line) {
		if IsLetter(r) {
			cur.WriteRune(r)
			continue
		}
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		words = append(words, cur.String())
	}
	return words
}

// LastWord returns the final run of letters in line, or "" when there is none.
func LastWord(line string) string {
	words := Words(line)
	if len(words) == 0 {
		return ""
	}
	return words[len(words)-1]
}

// Lines splits text on newlines. A trailing carriage return is kept in the
// line text; tokenization ignores it.
func Lines(text string) []string {
	return strings.Split(text, "\n")
}

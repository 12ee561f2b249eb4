// Package stress locates the stressed vowel of a Spanish word.
package stress

import (
	"strings"

	"github.com/f3rmion/verso/internal/verse"
)

const (
	vowels   = "aeiouáéíóú"
	accented = "áéíóú"
)

// Locator finds stressed vowels using one default-stress rule.
// The zero value uses verse.StressLiteral.
type Locator struct {
	Rule verse.StressRule
}

// FindStressedVowelIndex returns the rune index of the stressed vowel in the
// lower-cased letters of word, or -1 if it has no vowel.
func FindStressedVowelIndex(word string) int {
	return Locator{Rule: verse.StressLiteral}.Index(word)
}

// Index returns the rune index of the stressed vowel in the lower-cased
// letters of word (see verse.Lower), or -1 if it has no vowel.
// A written accent always wins over the default rule.
func (l Locator) Index(word string) int {
	letters := []rune(verse.Lower(word))

	last, previous := -1, -1
	for i, r := range letters {
		if strings.ContainsRune(accented, r) {
			return i
		}
		if strings.ContainsRune(vowels, r) {
			previous, last = last, i
		}
	}
	if last == -1 {
		return -1
	}

	final := letters[len(letters)-1]
	open := strings.ContainsRune(vowels, final) || final == 'n' || final == 's'

	if l.Rule == verse.StressOrthographic {
		open = !open
	}
	if open || previous == -1 {
		return last
	}
	return previous
}

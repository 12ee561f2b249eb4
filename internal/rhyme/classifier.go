// Package rhyme compares word endings and builds rhyme schemes for verse.
package rhyme

import (
	"strings"
	"unicode/utf8"

	"github.com/f3rmion/verso/internal/stress"
	"github.com/f3rmion/verso/internal/verse"
)

// minConsonantEnding is the shortest ending that can carry a consonant rhyme.
const minConsonantEnding = 2

// Classifier decides whether two words rhyme.
// The zero value uses consonant rhyme and the literal stress rule.
type Classifier struct {
	Mode    verse.RhymeMode
	Locator stress.Locator
}

// NewClassifier creates a classifier for the given mode and stress rule.
func NewClassifier(mode verse.RhymeMode, rule verse.StressRule) *Classifier {
	return &Classifier{
		Mode:    mode,
		Locator: stress.Locator{Rule: rule},
	}
}

var defaultClassifier = NewClassifier(verse.RhymeConsonant, verse.StressLiteral)

// GetRhymeEnding returns the consonant-rhyme ending of word.
func GetRhymeEnding(word string) string {
	return defaultClassifier.Ending(word)
}

// DoWordsRhyme reports whether two words share a consonant rhyme.
func DoWordsRhyme(a, b string) bool {
	return defaultClassifier.Rhymes(a, b)
}

// Ending returns the part of word from its stressed vowel to the end,
// lower-cased and without diacritics. A word without a stressed vowel is
// returned whole.
func (c *Classifier) Ending(word string) string {
	letters := []rune(verse.Lower(word))
	idx := c.Locator.Index(word)
	if idx < 0 {
		return verse.Normalize(string(letters))
	}
	return verse.Normalize(string(letters[idx:]))
}

// Rhymes reports whether a and b rhyme. A word never rhymes with itself.
func (c *Classifier) Rhymes(a, b string) bool {
	if verse.Normalize(verse.Lower(a)) == verse.Normalize(verse.Lower(b)) {
		return false
	}
	ka, ok := c.key(a)
	if !ok {
		return false
	}
	kb, ok := c.key(b)
	return ok && ka == kb
}

// key is the value two words must share to rhyme. ok is false when word
// cannot rhyme with anything.
func (c *Classifier) key(word string) (key string, ok bool) {
	ending := c.Ending(word)
	if ending == "" {
		return "", false
	}

	if c.Mode == verse.RhymeAssonant {
		skeleton := vowelSkeleton(ending)
		return skeleton, skeleton != ""
	}
	return ending, utf8.RuneCountInString(ending) >= minConsonantEnding
}

// vowelSkeleton keeps only the vowels of a normalized ending.
func vowelSkeleton(ending string) string {
	var b strings.Builder
	for _, r := range ending {
		if strings.ContainsRune("aeiou", r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

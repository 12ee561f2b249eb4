package stress

import (
	"testing"

	"github.com/f3rmion/verso/internal/verse"
	"github.com/stretchr/testify/assert"
)

func TestFindStressedVowelIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		word string
		want int
	}{
		{name: "written accent beats consonant ending", word: "árbol", want: 0},
		{name: "written accent beats vowel ending", word: "canción", want: 5},
		{name: "accent in the middle", word: "murciélago", want: 5},
		{name: "upper case accent", word: "ÁRBOL", want: 0},
		{name: "vowel ending stresses last vowel", word: "casa", want: 3},
		{name: "n ending stresses last vowel", word: "cantan", want: 4},
		{name: "s ending stresses last vowel", word: "mesas", want: 3},
		{name: "consonant ending stresses second to last vowel", word: "pastor", want: 1},
		{name: "single vowel", word: "flor", want: 2},
		{name: "single vowel with n ending", word: "pan", want: 1},
		{name: "no vowels", word: "brr", want: -1},
		{name: "empty", word: "", want: -1},
		{name: "dieresis is skipped", word: "pingüino", want: 7},
		{name: "punctuation is ignored", word: "¡casa!", want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FindStressedVowelIndex(tt.word))
		})
	}
}

func TestLocatorOrthographic(t *testing.T) {
	t.Parallel()

	l := Locator{Rule: verse.StressOrthographic}

	tests := []struct {
		word string
		want int
	}{
		{word: "casa", want: 1},
		{word: "mesas", want: 1},
		{word: "cantan", want: 1},
		{word: "pastor", want: 4},
		{word: "flor", want: 2},
		{word: "sol", want: 1},
		{word: "pie", want: 1},
		{word: "árbol", want: 0},
		{word: "brr", want: -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, l.Index(tt.word), "Index(%q)", tt.word)
	}
}

func TestLocatorZeroValueIsLiteral(t *testing.T) {
	t.Parallel()

	for _, w := range []string{"casa", "pastor", "reloj", "ciudad", "árbol"} {
		assert.Equal(t, FindStressedVowelIndex(w), Locator{}.Index(w), w)
	}
}

package syllable

import "github.com/f3rmion/verso/internal/verse"

// ClusterKind classifies two adjacent vowels.
type ClusterKind string

const (
	Diphthong ClusterKind = "diphthong" // At least one weak vowel, one syllable
	Hiatus    ClusterKind = "hiatus"    // Two strong vowels, two syllables
	Accented  ClusterKind = "accented"  // An accented í or ú next to another vowel
)

// Cluster is a pair of adjacent vowels inside a word.
type Cluster struct {
	Pair  string      `json:"pair"`
	Index int         `json:"index"` // Rune index of the first vowel
	Kind  ClusterKind `json:"kind"`
}

// Clusters lists every pair of adjacent vowels in word, in order.
// It reports what the counter sees; the count itself does not split
// on accented weak vowels.
func Clusters(word string) []Cluster {
	letters := []rune(verse.Lower(word))

	var out []Cluster
	for i := 1; i < len(letters); i++ {
		a, b := letters[i-1], letters[i]
		if !isVowel(a) || !isVowel(b) {
			continue
		}

		kind := Diphthong
		switch {
		case isStrong(a) && isStrong(b):
			kind = Hiatus
		case !isStrong(a) && !isWeak(a), !isStrong(b) && !isWeak(b):
			kind = Accented
		}
		out = append(out, Cluster{Pair: string([]rune{a, b}), Index: i - 1, Kind: kind})
	}
	return out
}

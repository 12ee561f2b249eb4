// Package verse provides the core types and text handling shared by the verse analyzers.
package verse

// NoRhyme is the label given to lines without a usable last word.
const NoRhyme = "-"

// RhymeMode selects how strictly two word endings must match.
type RhymeMode string

const (
	RhymeConsonant RhymeMode = "consonant" // Identical sound from the stressed vowel on
	RhymeAssonant  RhymeMode = "assonant"  // Identical vowels from the stressed vowel on
)

// Valid reports whether m is a known rhyme mode.
func (m RhymeMode) Valid() bool {
	return m == RhymeConsonant || m == RhymeAssonant
}

// StressRule selects the default-stress rule applied to words without a written accent.
type StressRule string

const (
	// StressLiteral stresses the last vowel of words ending in a vowel, n or s,
	// and the second-to-last vowel otherwise.
	StressLiteral StressRule = "literal"
	// StressOrthographic is the standard Spanish rule: words ending in a vowel,
	// n or s are stressed on the second-to-last vowel, the rest on the last.
	StressOrthographic StressRule = "orthographic"
)

// Valid reports whether r is a known stress rule.
func (r StressRule) Valid() bool {
	return r == StressLiteral || r == StressOrthographic
}

// RhymeGroup is a set of lines whose last words rhyme with a representative word.
type RhymeGroup struct {
	Label          string `json:"label" yaml:"label"`                   // "A", "B", ..., "Z", "AA", ...
	Representative string `json:"representative" yaml:"representative"` // Last word of the line that opened the group
	Members        []int  `json:"members" yaml:"members"`               // Zero-based line indices, in order
}

// AnalyzedLine is one line of a rhyme scheme.
type AnalyzedLine struct {
	Text  string `json:"text" yaml:"text"`
	Rhyme string `json:"rhyme" yaml:"rhyme"` // Group label or NoRhyme
}

// LineMetrics holds the syllable count of a single line.
type LineMetrics struct {
	Number    int    `json:"line" yaml:"line"` // 1-based
	Text      string `json:"text" yaml:"text"`
	Syllables int    `json:"syllables" yaml:"syllables"`
}

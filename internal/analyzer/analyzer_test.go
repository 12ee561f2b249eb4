package analyzer

import (
	"testing"

	"github.com/f3rmion/verso/internal/lemma"
	"github.com/f3rmion/verso/internal/rhyme"
	"github.com/f3rmion/verso/internal/syllable"
	"github.com/f3rmion/verso/internal/verse"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyzer(mode verse.RhymeMode, rule verse.StressRule) *Analyzer {
	return New(syllable.NewCounter(lemma.NewDictionary(), nil), rhyme.NewClassifier(mode, rule))
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(verse.RhymeConsonant, verse.StressLiteral)
	report := a.Analyze("Tengo el corazón\n\nlleno de ilusión\nbajo el cielo azul")

	want := []LineReport{
		{Number: 1, Text: "Tengo el corazón", LastWord: "corazón", Syllables: 6, Rhyme: "A"},
		{Number: 2, Text: "", Syllables: 0, Rhyme: "-"},
		{Number: 3, Text: "lleno de ilusión", LastWord: "ilusión", Syllables: 6, Rhyme: "A"},
		{Number: 4, Text: "bajo el cielo azul", LastWord: "azul", Syllables: 7, Rhyme: "B"},
	}
	if diff := cmp.Diff(want, report.Lines); diff != "" {
		t.Errorf("Analyze lines mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 19, report.TotalSyllables)
	assert.Equal(t, verse.RhymeConsonant, report.Mode)
	assert.Equal(t, verse.StressLiteral, report.Stress)
	require.Len(t, report.Groups, 2)
	assert.Equal(t, []int{0, 2}, report.Groups[0].Members)

	assert.Equal(t, rhyme.NewClassifier(verse.RhymeConsonant, verse.StressLiteral).Scheme(
		"Tengo el corazón\n\nlleno de ilusión\nbajo el cielo azul"), report.Scheme())
}

func TestAnalyzeEmpty(t *testing.T) {
	t.Parallel()

	report := newAnalyzer(verse.RhymeConsonant, verse.StressLiteral).Analyze("")
	require.Len(t, report.Lines, 1)
	assert.Equal(t, verse.NoRhyme, report.Lines[0].Rhyme)
	assert.Equal(t, 0, report.TotalSyllables)
	assert.Empty(t, report.Groups)
}

func TestAnalyzeIsRepeatable(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(verse.RhymeAssonant, verse.StressOrthographic)
	text := "Verde que te quiero verde.\nVerde viento. Verdes ramas."
	first := a.Analyze(text)
	a.Analyze("otra cosa\ncompletamente distinta")
	assert.Equal(t, first, a.Analyze(text))
}

func TestWithMode(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(verse.RhymeConsonant, verse.StressLiteral)
	b := a.WithMode(verse.RhymeAssonant)

	assert.Equal(t, verse.RhymeAssonant, b.Classifier().Mode)
	assert.Equal(t, verse.StressLiteral, b.Classifier().Locator.Rule)
	assert.Same(t, a.Counter(), b.Counter())
	assert.Equal(t, verse.RhymeConsonant, a.Classifier().Mode, "receiver keeps its mode")
}

func TestStructure(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(verse.RhymeConsonant, verse.StressLiteral)
	got := a.Structure("casa\n\n...\nmariposa")
	want := []verse.LineMetrics{
		{Number: 1, Text: "casa", Syllables: 2},
		{Number: 4, Text: "mariposa", Syllables: 4},
	}
	assert.Equal(t, want, got)
	assert.Nil(t, a.Structure(""))
}

func TestInspectWord(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(verse.RhymeConsonant, verse.StressLiteral)
	got := a.InspectWord("¡Canción!")
	assert.Equal(t, Word{
		Word:      "canción",
		Syllables: 2,
		Stressed:  5,
		Ending:    "on",
		Clusters:  []syllable.Cluster{{Pair: "ió", Index: 4, Kind: syllable.Diphthong}},
	}, got)
}

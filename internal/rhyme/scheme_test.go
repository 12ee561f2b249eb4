package rhyme

import (
	"strings"
	"testing"

	"github.com/f3rmion/verso/internal/verse"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(lines []verse.AnalyzedLine) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Rhyme
	}
	return out
}

func TestGetRhymeScheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty text", text: "", want: []string{"-"}},
		{name: "agudas share a group", text: "Tengo el corazón\nlleno de ilusión\ny una canción\nque dice adiós", want: []string{"A", "A", "A", "B"}},
		{name: "default stress rule", text: "casa\nmesa\nflor\npastor", want: []string{"A", "B", "C", "D"}},
		{name: "punctuation only line", text: "la razón\n¡...!\nel perdón", want: []string{"A", "-", "A"}},
		{name: "blank lines", text: "canción\n\n\nbalcón\n", want: []string{"A", "-", "-", "A", "-"}},
		{name: "repeated word opens a new group", text: "canción\ncanción\ncorazón", want: []string{"A", "B", "A"}},
		{name: "digits are not words", text: "verso 1\n2024", want: []string{"A", "-"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := GetRhymeScheme(tt.text)
			if diff := cmp.Diff(tt.want, labels(got)); diff != "" {
				t.Errorf("GetRhymeScheme(%q) labels mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestSchemeOrthographicStress(t *testing.T) {
	t.Parallel()

	c := NewClassifier(verse.RhymeConsonant, verse.StressOrthographic)
	got := c.Scheme("casa\nmesa\nflor\npastor")

	want := []verse.AnalyzedLine{
		{Text: "casa", Rhyme: "A"},
		{Text: "mesa", Rhyme: "B"},
		{Text: "flor", Rhyme: "C"},
		{Text: "pastor", Rhyme: "C"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scheme mismatch (-want +got):\n%s", diff)
	}
}

func TestSchemeAssonant(t *testing.T) {
	t.Parallel()

	c := NewClassifier(verse.RhymeAssonant, verse.StressOrthographic)
	text := "Verde que te quiero verde.\nVerde viento. Verdes ramas.\nEl barco sobre la mar\ny el caballo en la montaña."
	assert.Equal(t, []string{"A", "B", "C", "B"}, labels(c.Scheme(text)))
}

func TestSchemePreservesText(t *testing.T) {
	t.Parallel()

	text := "  Volverán las oscuras golondrinas,\r\nen tu balcón sus nidos a colgar\n"
	got := GetRhymeScheme(text)
	require.Len(t, got, 3)
	assert.Equal(t, "  Volverán las oscuras golondrinas,\r", got[0].Text)
	assert.Equal(t, "en tu balcón sus nidos a colgar", got[1].Text)
	assert.Equal(t, "", got[2].Text)
	assert.Equal(t, verse.NoRhyme, got[2].Rhyme)
}

func TestGroupsInvariants(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"Tengo el corazón", "lleno de ilusión", "bajo el cielo azul",
		"", "una canción", "que dice adiós", "la luz", "de tu voz", "mi canción",
	}, "\n")

	c := NewClassifier(verse.RhymeConsonant, verse.StressLiteral)
	lines, groups := c.Groups(text)
	require.Len(t, lines, 9)

	// Labels appear in order of first use.
	seen := map[string]bool{}
	next := 0
	for _, l := range lines {
		if l.Rhyme == verse.NoRhyme || seen[l.Rhyme] {
			continue
		}
		assert.Equal(t, Label(next), l.Rhyme)
		seen[l.Rhyme] = true
		next++
	}
	assert.Len(t, groups, next)

	// Every member after the first rhymes with its representative.
	for _, g := range groups {
		require.NotEmpty(t, g.Members)
		assert.Equal(t, verse.LastWord(lines[g.Members[0]].Text), g.Representative)
		for _, m := range g.Members[1:] {
			assert.True(t, c.Rhymes(verse.LastWord(lines[m].Text), g.Representative),
				"line %d joined %s", m, g.Label)
			assert.Equal(t, g.Label, lines[m].Rhyme)
		}
	}

	assert.Equal(t, []int{0, 1, 4, 8}, groups[0].Members)
}

func TestSchemeMatchesPairwiseRhymes(t *testing.T) {
	t.Parallel()

	words := []string{"canción", "amor", "razón", "dolor", "pastor", "flor", "corazón", "canción", "temor", "sol"}
	text := strings.Join(words, "\n")

	for _, c := range []*Classifier{
		NewClassifier(verse.RhymeConsonant, verse.StressLiteral),
		NewClassifier(verse.RhymeConsonant, verse.StressOrthographic),
		NewClassifier(verse.RhymeAssonant, verse.StressLiteral),
		NewClassifier(verse.RhymeAssonant, verse.StressOrthographic),
	} {
		lines, groups := c.Groups(text)

		// Brute force: first group in creation order whose representative rhymes.
		var reps []string
		for i, w := range words {
			want := -1
			for g, rep := range reps {
				if c.Rhymes(w, rep) {
					want = g
					break
				}
			}
			if want < 0 {
				want = len(reps)
				reps = append(reps, w)
			}
			assert.Equal(t, Label(want), lines[i].Rhyme, "mode %s stress %s line %d", c.Mode, c.Locator.Rule, i)
		}
		assert.Len(t, groups, len(reps))
	}
}

func TestSchemeBeyondZ(t *testing.T) {
	t.Parallel()

	// One-letter endings never rhyme, so every line opens a group.
	text := strings.TrimSuffix(strings.Repeat("casa\n", 28), "\n")
	got := labels(GetRhymeScheme(text))
	require.Len(t, got, 28)
	assert.Equal(t, "A", got[0])
	assert.Equal(t, "Z", got[25])
	assert.Equal(t, "AA", got[26])
	assert.Equal(t, "AB", got[27])
}

func TestLabel(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		-1:  "-",
		0:   "A",
		1:   "B",
		25:  "Z",
		26:  "AA",
		27:  "AB",
		51:  "AZ",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
	}
	for n, want := range tests {
		assert.Equal(t, want, Label(n), "Label(%d)", n)
	}
}

package analyzer

import (
	"strings"
	"testing"

	"github.com/f3rmion/verso/internal/verse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTable(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(verse.RhymeConsonant, verse.StressLiteral)
	out := FormatTable(a.Analyze("Tengo el corazón\r\n\nlleno de ilusión"), 0)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "   #   SYL  RHYME  TEXT", lines[0])
	assert.Equal(t, "   1     6  A      Tengo el corazón", lines[1])
	assert.Equal(t, "   2     0  -      ", lines[2])
	assert.Equal(t, "   3     6  A      lleno de ilusión", lines[3])
	assert.Equal(t, "3 lines, 12 syllables, 1 rhyme groups (consonant, literal stress)", lines[5])
}

func TestFormatTableTruncates(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(verse.RhymeConsonant, verse.StressLiteral)
	out := FormatTable(a.Analyze("En un lugar de la Mancha de cuyo nombre"), 10)
	assert.Contains(t, out, "En un lug…")
	assert.NotContains(t, out, "Mancha")
}

func TestSchemeString(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(verse.RhymeConsonant, verse.StressLiteral)
	assert.Equal(t, "AABA", SchemeString(a.Analyze("corazón\nilusión\n\nazul\ncanción")))
	assert.Equal(t, "", SchemeString(a.Analyze("")))
}

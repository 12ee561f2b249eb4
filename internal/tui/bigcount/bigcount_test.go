package bigcount

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", Render(""))
	cols, rows := Size("")
	assert.Zero(t, cols)
	assert.Zero(t, rows)
}

func TestRenderDigits(t *testing.T) {
	out := Render("12")
	cols, rows := Size("12")
	assert.Equal(t, 14, cols)
	assert.Equal(t, 7, rows)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, rows)
	for _, l := range lines {
		assert.Equal(t, cols, utf8.RuneCountInString(l))
	}
	assert.True(t, strings.ContainsAny(out, "█▀▄"), "digits light some cells")
}

func TestRenderIsDeterministic(t *testing.T) {
	assert.Equal(t, Render("8"), Render("8"))
	assert.NotEqual(t, Render("1"), Render("8"))
}

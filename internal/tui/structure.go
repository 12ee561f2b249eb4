package tui

import (
	"fmt"
	"strings"

	"github.com/f3rmion/verso/internal/verse"
)

// RenderStructure draws one horizontal bar per line, as long as its syllable
// count. Bars are scaled down when the longest one does not fit in width.
func RenderStructure(metrics []verse.LineMetrics, width int) string {
	if len(metrics) == 0 {
		return HelpStyle.Render("no lines with syllables")
	}

	longest := 0
	for _, m := range metrics {
		longest = max(longest, m.Syllables)
	}

	// "NNN │ " before the bar and " NN" after it.
	room := width - 10
	if room < 1 {
		room = longest
	}

	var b strings.Builder
	for i, m := range metrics {
		n := m.Syllables
		if longest > room {
			n = max(1, m.Syllables*room/longest)
		}
		b.WriteString(BarLabelStyle.Render(fmt.Sprintf("%3d │ ", m.Number)))
		b.WriteString(BarStyle.Render(strings.Repeat("█", n)))
		b.WriteString(fmt.Sprintf(" %d", m.Syllables))
		if i < len(metrics)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

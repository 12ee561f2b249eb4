package syllable

import "github.com/f3rmion/verso/internal/verse"

// CountLines returns the syllable count of every line of text, in order.
func (c *Counter) CountLines(text string) []verse.LineMetrics {
	lines := verse.Lines(text)
	out := make([]verse.LineMetrics, len(lines))
	for i, line := range lines {
		out[i] = verse.LineMetrics{
			Number:    i + 1,
			Text:      line,
			Syllables: c.Count(line),
		}
	}
	return out
}

// CountText returns the total syllables of a multi-line text.
func (c *Counter) CountText(text string) int {
	total := 0
	for _, m := range c.CountLines(text) {
		total += m.Syllables
	}
	return total
}

package rhyme

import "github.com/f3rmion/verso/internal/verse"

// GetRhymeScheme labels every line of text with the default classifier.
func GetRhymeScheme(text string) []verse.AnalyzedLine {
	return defaultClassifier.Scheme(text)
}

// Scheme labels every newline-separated line of text with its rhyme group.
func (c *Classifier) Scheme(text string) []verse.AnalyzedLine {
	lines, _ := c.Groups(text)
	return lines
}

// Groups labels every line of text and returns the groups it created.
//
// Each last word joins the first existing group, in creation order, whose
// representative it rhymes with, or opens a new group. Lines without letters
// are labeled verse.NoRhyme and never touch a group.
func (c *Classifier) Groups(text string) ([]verse.AnalyzedLine, []verse.RhymeGroup) {
	lines := verse.Lines(text)
	out := make([]verse.AnalyzedLine, len(lines))

	var groups []verse.RhymeGroup
	// Groups sharing a rhyme key, in creation order. A word only rhymes with
	// representatives that have its key.
	byKey := make(map[string][]int)
	var reps []string

	for i, line := range lines {
		out[i] = verse.AnalyzedLine{Text: line, Rhyme: verse.NoRhyme}

		word := verse.LastWord(line)
		if word == "" {
			continue
		}
		key, ok := c.key(word)
		normalized := verse.Normalize(word)

		joined := -1
		if ok {
			for _, g := range byKey[key] {
				if reps[g] != normalized {
					joined = g
					break
				}
			}
		}

		if joined < 0 {
			joined = len(groups)
			groups = append(groups, verse.RhymeGroup{
				Label:          Label(joined),
				Representative: word,
			})
			reps = append(reps, normalized)
			if ok {
				byKey[key] = append(byKey[key], joined)
			}
		}

		groups[joined].Members = append(groups[joined].Members, i)
		out[i].Rhyme = groups[joined].Label
	}

	return out, groups
}

// Label returns the label of the n-th group (zero-based): A to Z, then
// AA, AB, ... AZ, BA, ... like spreadsheet columns.
func Label(n int) string {
	if n < 0 {
		return verse.NoRhyme
	}
	var buf []byte
	for n >= 0 {
		buf = append(buf, byte('A'+n%26))
		n = n/26 - 1
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

package analyzer

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatTable renders a report as a plain text table. Line texts longer than
// maxText columns are truncated; maxText <= 0 disables truncation.
func FormatTable(r Report, maxText int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%4s  %4s  %-5s  %s\n", "#", "SYL", "RHYME", "TEXT"))
	for _, l := range r.Lines {
		text := l.Text
		text = strings.TrimRight(text, "\r")
		if maxText > 0 {
			text = runewidth.Truncate(text, maxText, "…")
		}
		sb.WriteString(fmt.Sprintf("%4d  %4d  %s  %s\n",
			l.Number, l.Syllables, runewidth.FillRight(l.Rhyme, 5), text))
	}
	sb.WriteString(fmt.Sprintf("\n%d lines, %d syllables, %d rhyme groups (%s, %s stress)\n",
		len(r.Lines), r.TotalSyllables, len(r.Groups), r.Mode, r.Stress))

	return sb.String()
}

// SchemeString joins the rhyme labels of the lines that have one, e.g. "ABAB".
func SchemeString(r Report) string {
	var sb strings.Builder
	for _, l := range r.Lines {
		if l.LastWord == "" {
			continue
		}
		sb.WriteString(l.Rhyme)
	}
	return sb.String()
}

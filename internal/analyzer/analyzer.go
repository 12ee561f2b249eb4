// Package analyzer combines syllable counting and rhyme grouping into one
// report per text.
package analyzer

import (
	"github.com/f3rmion/verso/internal/rhyme"
	"github.com/f3rmion/verso/internal/syllable"
	"github.com/f3rmion/verso/internal/verse"
)

// LineReport is the analysis of a single line.
type LineReport struct {
	Number    int    `json:"line"` // 1-based
	Text      string `json:"text"`
	LastWord  string `json:"last_word,omitempty"`
	Syllables int    `json:"syllables"`
	Rhyme     string `json:"rhyme"`
}

// Report is the full analysis of a text.
type Report struct {
	Mode           verse.RhymeMode    `json:"mode"`
	Stress         verse.StressRule   `json:"stress"`
	Lines          []LineReport       `json:"lines"`
	Groups         []verse.RhymeGroup `json:"groups"`
	TotalSyllables int                `json:"total_syllables"`
}

// Scheme returns the line texts and rhyme labels of the report.
func (r Report) Scheme() []verse.AnalyzedLine {
	out := make([]verse.AnalyzedLine, len(r.Lines))
	for i, l := range r.Lines {
		out[i] = verse.AnalyzedLine{Text: l.Text, Rhyme: l.Rhyme}
	}
	return out
}

// Analyzer runs the counter and the classifier over whole texts.
// It keeps no state between calls.
type Analyzer struct {
	counter    *syllable.Counter
	classifier *rhyme.Classifier
}

// New creates an analyzer from a counter and a classifier.
func New(counter *syllable.Counter, classifier *rhyme.Classifier) *Analyzer {
	return &Analyzer{counter: counter, classifier: classifier}
}

// Classifier returns the rhyme classifier in use.
func (a *Analyzer) Classifier() *rhyme.Classifier {
	return a.classifier
}

// Counter returns the syllable counter in use.
func (a *Analyzer) Counter() *syllable.Counter {
	return a.counter
}

// WithMode returns an analyzer sharing the counter but using another rhyme mode.
func (a *Analyzer) WithMode(mode verse.RhymeMode) *Analyzer {
	return New(a.counter, rhyme.NewClassifier(mode, a.classifier.Locator.Rule))
}

// Analyze counts syllables and assigns rhyme labels to every line of text.
func (a *Analyzer) Analyze(text string) Report {
	scheme, groups := a.classifier.Groups(text)
	metrics := a.counter.CountLines(text)

	report := Report{
		Mode:   a.mode(),
		Stress: a.rule(),
		Lines:  make([]LineReport, len(scheme)),
		Groups: groups,
	}
	for i, line := range scheme {
		report.Lines[i] = LineReport{
			Number:    metrics[i].Number,
			Text:      line.Text,
			LastWord:  verse.LastWord(line.Text),
			Syllables: metrics[i].Syllables,
			Rhyme:     line.Rhyme,
		}
		report.TotalSyllables += metrics[i].Syllables
	}
	return report
}

// Structure returns the syllables of every line that has any, the data
// behind the poem structure chart.
func (a *Analyzer) Structure(text string) []verse.LineMetrics {
	var out []verse.LineMetrics
	for _, m := range a.counter.CountLines(text) {
		if m.Syllables > 0 {
			out = append(out, m)
		}
	}
	return out
}

// Word is the breakdown of a single word.
type Word struct {
	Word      string             `json:"word"`
	Syllables int                `json:"syllables"`
	Stressed  int                `json:"stressed_index"`
	Ending    string             `json:"ending"`
	Clusters  []syllable.Cluster `json:"clusters,omitempty"`
}

// InspectWord returns the syllables, stressed vowel and rhyme ending of word.
func (a *Analyzer) InspectWord(word string) Word {
	return Word{
		Word:      verse.Lower(word),
		Syllables: a.counter.CountWord(word),
		Stressed:  a.classifier.Locator.Index(word),
		Ending:    a.classifier.Ending(word),
		Clusters:  syllable.Clusters(word),
	}
}

func (a *Analyzer) mode() verse.RhymeMode {
	if a.classifier.Mode == "" {
		return verse.RhymeConsonant
	}
	return a.classifier.Mode
}

func (a *Analyzer) rule() verse.StressRule {
	if a.classifier.Locator.Rule == "" {
		return verse.StressLiteral
	}
	return a.classifier.Locator.Rule
}

package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/verso/internal/analyzer"
	"github.com/f3rmion/verso/internal/clipboard"
	"github.com/f3rmion/verso/internal/snapshot"
	"github.com/f3rmion/verso/internal/tui/bigcount"
	"github.com/f3rmion/verso/internal/verse"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
)

const (
	panelWidth    = 28
	statusTimeout = 2 * time.Second
	saveTimeout   = 5 * time.Second
)

// SnapshotStore saves verse lines. *snapshot.Store implements it.
type SnapshotStore interface {
	Add(ctx context.Context, text string, syllables int, rhyme string) (*snapshot.Snapshot, error)
}

type snapshotSavedMsg struct {
	snap *snapshot.Snapshot
	err  error
}

type clearStatusMsg struct{}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// Model is the Bubble Tea model of the verse editor.
type Model struct {
	editor   textarea.Model
	analyzer *analyzer.Analyzer
	store    SnapshotStore
	copy     func(string) error
	logger   *zap.Logger

	report analyzer.Report
	text   string

	status    string
	statusErr bool

	width  int
	height int
	ready  bool
}

// New creates the editor. store may be nil, in which case snapshots are disabled.
func New(a *analyzer.Analyzer, store SnapshotStore, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	ta := textarea.New()
	ta.Placeholder = "Escribe un verso..."
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()

	m := Model{
		editor:   ta,
		analyzer: a,
		store:    store,
		copy:     clipboard.Write,
		logger:   logger,
	}
	m.reanalyze()
	return m
}

// WithText returns the model with the editor set to text.
func (m Model) WithText(text string) Model {
	m.editor.SetValue(text)
	m.reanalyze()
	return m
}

// Report returns the analysis of the current text.
func (m Model) Report() analyzer.Report {
	return m.report
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+r":
			mode := verse.RhymeAssonant
			if m.report.Mode == verse.RhymeAssonant {
				mode = verse.RhymeConsonant
			}
			m.analyzer = m.analyzer.WithMode(mode)
			m.reanalyze()
			return m.setStatus("rhyme mode: "+string(mode), false)
		case "ctrl+s":
			return m.saveCurrentLine()
		case "ctrl+y":
			if err := m.copy(analyzer.FormatTable(m.report, 0)); err != nil {
				m.logger.Debug("copy failed", zap.Error(err))
				return m.setStatus("copy failed: "+err.Error(), true)
			}
			return m.setStatus("report copied", false)
		}

	case snapshotSavedMsg:
		switch {
		case msg.err == nil:
			m.logger.Debug("snapshot saved", zap.String("id", msg.snap.ID))
			return m.setStatus("saved: "+msg.snap.Text, false)
		case errors.Is(msg.err, snapshot.ErrExists):
			return m.setStatus("already saved", false)
		default:
			m.logger.Warn("saving snapshot", zap.Error(msg.err))
			return m.setStatus("save failed: "+msg.err.Error(), true)
		}

	case clearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.editor.SetWidth(max(20, m.width-panelWidth-6))
		m.editor.SetHeight(max(3, m.height-6))
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Value() != m.text {
		m.reanalyze()
	}
	return m, cmd
}

func (m *Model) reanalyze() {
	m.text = m.editor.Value()
	m.report = m.analyzer.Analyze(m.text)
}

func (m Model) setStatus(s string, isErr bool) (Model, tea.Cmd) {
	m.status = s
	m.statusErr = isErr
	return m, clearStatusAfter(statusTimeout)
}

// currentLine returns the report of the line under the cursor.
func (m Model) currentLine() (analyzer.LineReport, bool) {
	row := m.editor.Line()
	if row < 0 || row >= len(m.report.Lines) {
		return analyzer.LineReport{}, false
	}
	return m.report.Lines[row], true
}

func (m Model) saveCurrentLine() (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m.setStatus("snapshots unavailable", true)
	}
	line, ok := m.currentLine()
	if !ok || strings.TrimSpace(line.Text) == "" {
		return m.setStatus("nothing to save", true)
	}

	store := m.store
	ending := m.analyzer.Classifier().Ending(line.LastWord)
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		snap, err := store.Add(ctx, line.Text, line.Syllables, ending)
		return snapshotSavedMsg{snap: snap, err: err}
	}
}

// View renders the model.
func (m Model) View() string {
	var b strings.Builder

	header := TitleStyle.Render(" verso ") + "  " +
		SubtitleStyle.Render(fmt.Sprintf("%s rhyme · %s stress · %d syllables",
			m.report.Mode, m.report.Stress, m.report.TotalSyllables))
	b.WriteString(header)
	b.WriteString("\n\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		EditorStyle.Render(m.editor.View()),
		" ",
		PanelStyle.Render(m.renderPanel()),
	)
	b.WriteString(body)
	b.WriteString("\n")

	switch {
	case m.status != "" && m.statusErr:
		b.WriteString(ErrorStyle.Render(m.status))
	case m.status != "":
		b.WriteString(StatusStyle.Render(m.status))
	default:
		b.WriteString(HelpStyle.Render("ctrl+s save line • ctrl+y copy report • ctrl+r rhyme mode • esc quit"))
	}

	return b.String()
}

// renderPanel lists syllables and rhyme label per line, then the current
// line's count in big digits.
func (m Model) renderPanel() string {
	var b strings.Builder
	inner := panelWidth - 4

	b.WriteString(PanelHeaderStyle.Render(fmt.Sprintf("%3s %3s %-3s %s", "#", "SYL", "R", "END")))
	b.WriteByte('\n')

	row := m.editor.Line()
	for i, l := range m.report.Lines {
		word := runewidth.Truncate(l.LastWord, inner-12, "…")
		style := PanelRowStyle
		if i == row {
			style = PanelRowActiveStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%3d %3d ", l.Number, l.Syllables)))
		b.WriteString(labelStyle(l.Rhyme).Render(runewidth.FillRight(l.Rhyme, 3)))
		b.WriteString(" ")
		b.WriteString(style.Render(word))
		b.WriteByte('\n')
	}

	if line, ok := m.currentLine(); ok && line.Syllables > 0 {
		b.WriteString(BigCountStyle.Render(bigcount.Render(strconv.Itoa(line.Syllables))))
	}

	return strings.TrimRight(b.String(), "\n")
}

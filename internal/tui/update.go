package tui

import (
	"context"
	"strings"

	"typetrace/internal/model"
	"typetrace/internal/trace"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgTraceReady indicates that the analysis has completed.
type MsgTraceReady model.AnalysisResult

// MsgError indicates an error occurred.
type MsgError error

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 4 // minus footer/header
		m.refreshDetails()
		return m, nil

	case MsgTraceReady:
		m.Loading = false
		m.Result = model.AnalysisResult(msg)
		m.FilteredIndices = allIndices(len(m.Result.Files))
		m.SelectedIdx = 0
		m.refreshDetails()
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.performSearch()
				return m, nil
			case tea.KeyEsc:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.InputBuffer.SetValue("")
				m.performSearch()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			m.performSearch()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.SearchActive {
				m.InputBuffer.SetValue("")
				m.performSearch()
			} else if m.ShowSamples {
				m.ShowSamples = false
			}
		case "up", "k":
			if m.ShowSamples {
				if m.SampleIdx > 0 {
					m.SampleIdx--
				}
			} else if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.ShowSamples {
				if m.SampleIdx < len(m.Result.Samples)-1 {
					m.SampleIdx++
				}
			} else if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
			}
		case "pgup":
			m.DetailsViewport.HalfViewUp()
			return m, nil
		case "pgdown":
			m.DetailsViewport.HalfViewDown()
			return m, nil
		case "s":
			m.ShowSamples = !m.ShowSamples
			if m.SampleIdx >= len(m.Result.Samples) {
				m.SampleIdx = 0
			}
		case "t":
			m.ShowTotals = !m.ShowTotals
		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		}
		m.refreshDetails()
	}

	return m, cmd
}

func (m *AppModel) performSearch() {
	term := strings.ToLower(m.InputBuffer.Value())
	if term == "" {
		m.SearchActive = false
		m.FilteredIndices = allIndices(len(m.Result.Files))
	} else {
		m.SearchActive = true
		var result []int
		for i, f := range m.Result.Files {
			if strings.Contains(strings.ToLower(f.File), term) {
				result = append(result, i)
			}
		}
		m.FilteredIndices = result
	}

	// Bounds check
	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
	m.refreshDetails()
}

// refreshDetails re-renders the right panel for the current selection.
func (m *AppModel) refreshDetails() {
	switch {
	case m.ShowSamples:
		m.DetailsViewport.SetContent(renderSample(m.Result.Samples, m.SampleIdx))
	case m.ShowTotals:
		m.DetailsViewport.SetContent(renderBreakdown("All files", m.Result.Totals, m.DetailsViewport.Width))
	default:
		if f, ok := m.selectedFile(); ok {
			m.DetailsViewport.SetContent(renderBreakdown(f.File, f.Stats, m.DetailsViewport.Width))
		} else {
			m.DetailsViewport.SetContent("No trace files match.")
		}
	}
	m.DetailsViewport.GotoTop()
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// InitTraceCmd runs the analysis in background.
func InitTraceCmd(dir string, jobs, samples int) tea.Cmd {
	return func() tea.Msg {
		analyzer := trace.NewAnalyzer(
			trace.WithJobs(jobs),
			trace.WithSamples(trace.NewSampleCollector(samples)),
		)
		res, err := analyzer.Run(context.Background(), dir)
		if err != nil {
			return MsgError(err)
		}
		return MsgTraceReady(res)
	}
}

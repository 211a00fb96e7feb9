package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typetrace/internal/model"
)

func loaded(t *testing.T) AppModel {
	t.Helper()
	m := InitialModel("/tmp/trace", 1, 5)
	res := model.AnalysisResult{
		Dir: "/tmp/trace",
		Files: []model.FileReport{
			{File: "types.1.json", Stats: model.Stats{Files: 1, Total: 2, Unions: 2}},
			{File: "types.2.json", Stats: model.Stats{Files: 1, Total: 1, Unknown: 1}},
			{File: "types.10.json", Stats: model.Stats{Files: 1}},
		},
		Totals: model.Stats{Files: 3, Total: 3, Unions: 2, Unknown: 1},
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	next, _ = next.(AppModel).Update(MsgTraceReady(res))
	out := next.(AppModel)
	require.False(t, out.Loading)
	return out
}

func key(m AppModel, k string) AppModel {
	var msg tea.KeyMsg
	switch k {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, _ := m.Update(msg)
	return next.(AppModel)
}

func TestNavigation(t *testing.T) {
	m := loaded(t)
	assert.Equal(t, []int{0, 1, 2}, m.FilteredIndices)

	m = key(m, "j")
	m = key(m, "j")
	m = key(m, "j")
	assert.Equal(t, 2, m.SelectedIdx)

	m = key(m, "k")
	f, ok := m.selectedFile()
	require.True(t, ok)
	assert.Equal(t, "types.2.json", f.File)
	assert.Contains(t, m.View(), "types.2.json")
}

func TestFilter(t *testing.T) {
	m := loaded(t)
	m = key(m, "/")
	require.True(t, m.InputMode)
	m = key(m, "1")
	m = key(m, "enter")

	assert.False(t, m.InputMode)
	assert.True(t, m.SearchActive)
	assert.Equal(t, []int{0, 2}, m.FilteredIndices)

	m = key(m, "esc")
	assert.False(t, m.SearchActive)
	assert.Len(t, m.FilteredIndices, 3)
}

func TestSamplesToggle(t *testing.T) {
	m := loaded(t)
	m = key(m, "s")
	assert.True(t, m.ShowSamples)
	assert.Contains(t, m.DetailsViewport.View(), "No unknown records")

	m = key(m, "esc")
	assert.False(t, m.ShowSamples)
}

func TestErrorView(t *testing.T) {
	m := InitialModel("/nope", 1, 5)
	next, _ := m.Update(MsgError(errors.New("path does not exist")))
	assert.Contains(t, next.(AppModel).View(), "path does not exist")
}

func TestQuit(t *testing.T) {
	m := loaded(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

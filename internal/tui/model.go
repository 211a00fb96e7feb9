package tui

import (
	"typetrace/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Dir     string
	Jobs    int
	Samples int
	Result  model.AnalysisResult
	Loading bool
	Err     error

	// UI State
	SelectedIdx int
	SampleIdx   int
	WindowSize  tea.WindowSizeMsg

	// View Modes
	ShowSamples bool
	ShowTotals  bool

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of Result.Files to show
	SearchActive    bool

	// Components
	DetailsViewport viewport.Model
}

// InitialModel returns the initial state.
func InitialModel(dir string, jobs, samples int) AppModel {
	ti := textinput.New()
	ti.Placeholder = "File name..."
	ti.CharLimit = 50
	ti.Width = 20

	return AppModel{
		Dir:             dir,
		Jobs:            jobs,
		Samples:         samples,
		Loading:         true,
		InputBuffer:     ti,
		DetailsViewport: viewport.New(40, 20),
	}
}

// Init starts the analysis.
func (m AppModel) Init() tea.Cmd {
	return InitTraceCmd(m.Dir, m.Jobs, m.Samples)
}

// selectedFile returns the file under the cursor, if any.
func (m AppModel) selectedFile() (model.FileReport, bool) {
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.FilteredIndices) {
		return model.FileReport{}, false
	}
	return m.Result.Files[m.FilteredIndices[m.SelectedIdx]], true
}

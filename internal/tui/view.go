package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"typetrace/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	normalStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	adviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	pathHighlightStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("81")). // Sky Blue/Cyan
				Bold(true)

	borderColor = lipgloss.Color("63")
)

func (m AppModel) View() string {
	if m.Loading {
		return fmt.Sprintf("\n  Classifying %s... please wait.\n", m.Dir)
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.Err)
	}

	width := m.WindowSize.Width
	height := m.WindowSize.Height

	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}
	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	boxHeight := height - 6
	if boxHeight < 6 {
		boxHeight = 6
	}
	interiorHeight := boxHeight - 2

	// LEFT PANEL: trace files
	var left strings.Builder
	left.WriteString(panelTitleStyle.Render("Trace Files"))
	left.WriteString("\n\n")

	visibleItems := interiorHeight - 2
	if visibleItems < 1 {
		visibleItems = 1
	}
	startIdx := 0
	endIdx := len(m.FilteredIndices)
	if len(m.FilteredIndices) > visibleItems {
		if m.SelectedIdx >= visibleItems/2 {
			startIdx = m.SelectedIdx - visibleItems/2
		}
		if startIdx+visibleItems > len(m.FilteredIndices) {
			startIdx = len(m.FilteredIndices) - visibleItems
		}
		endIdx = startIdx + visibleItems
	}

	for i := startIdx; i < endIdx; i++ {
		f := m.Result.Files[m.FilteredIndices[i]]
		icon := model.IconFile
		if f.Stats.Unknown > 0 {
			icon = model.IconUnknown
		}
		line := fmt.Sprintf("%s %s  %d/%d", icon, f.File, f.Stats.Classified(), f.Stats.Total)
		line = truncate(line, leftWidth-4)
		if i == m.SelectedIdx && !m.ShowSamples && !m.ShowTotals {
			left.WriteString(selectedStyle.Render(model.IconSelected + " " + line))
		} else {
			left.WriteString(normalStyle.Render("  " + line))
		}
		left.WriteString("\n")
	}
	if len(m.FilteredIndices) == 0 {
		left.WriteString(dimStyle.Render("  (no trace files)"))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Height(interiorHeight)

	leftPanel := box.Width(leftWidth).Render(left.String())
	rightPanel := box.Width(rightWidth).Render(m.DetailsViewport.View())

	header := titleStyle.Render("typetrace " + model.Version)
	header += "  " + pathHighlightStyle.Render(m.Dir)
	header += dimStyle.Render(fmt.Sprintf("  %d files, %d entries", m.Result.Totals.Files, m.Result.Totals.Total))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel),
		m.footer(),
	)
}

func (m AppModel) footer() string {
	if m.InputMode {
		return "Filter: " + m.InputBuffer.View()
	}
	help := "↑/↓ select • / filter • s samples • t totals • pgup/pgdn scroll • q quit"
	if m.SearchActive {
		help = fmt.Sprintf("filter %q • esc clear • ", m.InputBuffer.Value()) + help
	}
	return dimStyle.Render(help)
}

// renderBreakdown lists every counter with a bar proportional to the largest one.
func renderBreakdown(title string, s model.Stats, width int) string {
	var sb strings.Builder
	sb.WriteString(panelTitleStyle.Render(title))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "total %d  classified %d  %s excluded %d\n\n",
		s.Total, s.Classified(), model.IconExcluded, s.Excluded())

	maxCount := 0
	for _, c := range model.Categories {
		if n := s.Count(c); n > maxCount {
			maxCount = n
		}
	}
	barWidth := width - 32
	if barWidth < 5 {
		barWidth = 5
	}
	for _, c := range model.Categories {
		n := s.Count(c)
		bar := 0
		if maxCount > 0 {
			bar = n * barWidth / maxCount
		}
		label := fmt.Sprintf("%-4s %-18s %6d ", c.Icon(), c.Key(), n)
		if n == 0 {
			sb.WriteString(dimStyle.Render(label))
		} else {
			sb.WriteString(label)
		}
		sb.WriteString(barStyle.Render(strings.Repeat("█", bar)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderSample shows one unknown record and the source around its declaration.
func renderSample(samples []model.Record, idx int) string {
	if len(samples) == 0 {
		return dimStyle.Render("No unknown records were sampled.")
	}
	if idx < 0 || idx >= len(samples) {
		idx = 0
	}
	rec := samples[idx]

	var sb strings.Builder
	sb.WriteString(panelTitleStyle.Render(fmt.Sprintf("Unknown sample %d/%d (id %d)", idx+1, len(samples), rec.ID)))
	sb.WriteString("\n\n")

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		sb.WriteString(adviceStyle.Render(err.Error()))
	} else {
		sb.Write(data)
	}
	sb.WriteString("\n\n")

	loc := rec.FirstDeclaration
	if loc == nil {
		loc = rec.ReferenceLocation
	}
	if loc == nil {
		return sb.String()
	}
	ctx := model.GetLineContext(*loc)
	sb.WriteString(pathHighlightStyle.Render(fmt.Sprintf("%s:%d", ctx.Path, ctx.LineNumber)))
	sb.WriteString("\n")
	if ctx.ErrorMsg != "" {
		sb.WriteString(adviceStyle.Render(ctx.ErrorMsg))
		return sb.String()
	}
	writeLine := func(ok bool, n int, text string, style lipgloss.Style) {
		if ok {
			sb.WriteString(style.Render(fmt.Sprintf("%5d  %s", n, text)))
			sb.WriteString("\n")
		}
	}
	writeLine(ctx.HasBefore2, ctx.LineNumber-2, ctx.Before2, dimStyle)
	writeLine(ctx.HasBefore1, ctx.LineNumber-1, ctx.Before1, dimStyle)
	writeLine(true, ctx.LineNumber, ctx.Target, normalStyle.Bold(true))
	writeLine(ctx.HasAfter1, ctx.LineNumber+1, ctx.After1, dimStyle)
	writeLine(ctx.HasAfter2, ctx.LineNumber+2, ctx.After2, dimStyle)
	return sb.String()
}

func truncate(s string, n int) string {
	if n <= 1 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

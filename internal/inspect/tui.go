// Package inspect renders an interactive overview of annotation files.
package inspect

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"drone-dataset/internal/annotation"
)

const helpText = "↑/↓ move • e toggle files with empty frames • q quit"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	totalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type model struct {
	title      string
	stats      []annotation.FrameStat
	table      table.Model
	onlyEmpty  bool
	width      int
	height     int
	headerRows int
}

func newModel(title string, stats []annotation.FrameStat) model {
	cols := []table.Column{
		{Title: "File", Width: 40},
		{Title: "Frames", Width: 8},
		{Title: "Empty", Width: 8},
		{Title: "Empty %", Width: 8},
	}
	t := table.New(table.WithColumns(cols), table.WithFocused(true), table.WithHeight(10))
	m := model{title: title, stats: stats, table: t, headerRows: 3}
	m.refreshRows()
	return m
}

func (m *model) visible() []annotation.FrameStat {
	if !m.onlyEmpty {
		return m.stats
	}
	var out []annotation.FrameStat
	for _, s := range m.stats {
		if s.Empty > 0 {
			out = append(out, s)
		}
	}
	return out
}

func (m *model) refreshRows() {
	var rows []table.Row
	for _, s := range m.visible() {
		pct := 0.0
		if s.Frames > 0 {
			pct = 100 * float64(s.Empty) / float64(s.Frames)
		}
		rows = append(rows, table.Row{s.File, strconv.Itoa(s.Frames), strconv.Itoa(s.Empty), fmt.Sprintf("%.1f", pct)})
	}
	m.table.SetRows(rows)
}

func (m model) totals() (frames, empty int) {
	for _, s := range m.stats {
		frames += s.Frames
		empty += s.Empty
	}
	return frames, empty
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h := msg.Height - m.headerRows - lipgloss.Height(m.renderHelp())
		if h < 3 {
			h = 3
		}
		m.table.SetHeight(h)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "e":
			m.onlyEmpty = !m.onlyEmpty
			m.refreshRows()
			m.table.GotoTop()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) renderHelp() string {
	text := helpText
	if m.width > 0 {
		text = wordwrap.String(text, m.width)
	}
	return helpStyle.Render(text)
}

func (m model) View() string {
	frames, empty := m.totals()
	filter := "all files"
	if m.onlyEmpty {
		filter = "files with empty frames"
	}
	header := titleStyle.Render(m.title) + "\n" +
		totalStyle.Render(fmt.Sprintf("%d files • %d frames • %d empty • showing %s", len(m.stats), frames, empty, filter))
	return lipgloss.JoinVertical(lipgloss.Left, header, m.table.View(), m.renderHelp())
}

// Run shows stats in a full-screen table until the user quits.
func Run(title string, stats []annotation.FrameStat) error {
	p := tea.NewProgram(newModel(title, stats), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/taskplot/internal/palette"
	"github.com/ShayCichocki/taskplot/pkg/models"
)

// footerHeight is the status line plus the help line.
const footerHeight = 2

// ChartApp is the model for the interactive chart display.
type ChartApp struct {
	chart  *ChartView
	keys   keyMap
	help   help.Model
	source string
	width  int
	height int

	// quitting indicates the app is shutting down.
	quitting bool

	statusStyle lipgloss.Style
	nameStyle   lipgloss.Style
}

// NewChartApp creates a ChartApp for p. source names the input in the status line.
func NewChartApp(p *models.Profile, colors *palette.Assigner, source string) *ChartApp {
	a := &ChartApp{
		chart:  NewChartView(p, colors),
		keys:   newKeyMap(),
		help:   help.New(),
		source: source,
		width:  defaultWidth,
		height: defaultHeight,

		statusStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		nameStyle: lipgloss.NewStyle().
			Bold(true),
	}
	a.updateSizes()
	return a
}

// Init implements tea.Model.
func (a *ChartApp) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *ChartApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			a.quitting = true
			return a, tea.Quit
		case key.Matches(msg, a.keys.PanLeft):
			a.chart.panLeft()
		case key.Matches(msg, a.keys.PanRight):
			a.chart.panRight()
		case key.Matches(msg, a.keys.LaneUp):
			a.chart.selectPrevious()
		case key.Matches(msg, a.keys.LaneDown):
			a.chart.selectNext()
		case key.Matches(msg, a.keys.CursorLeft):
			a.chart.cursorLeft()
		case key.Matches(msg, a.keys.CursorRight):
			a.chart.cursorRight()
		case key.Matches(msg, a.keys.ZoomIn):
			a.chart.zoomIn()
		case key.Matches(msg, a.keys.ZoomOut):
			a.chart.zoomOut()
		case key.Matches(msg, a.keys.Reset):
			a.chart.ResetView()
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			a.updateSizes()
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateSizes()
	}

	return a, nil
}

// updateSizes gives the chart everything except the footer.
func (a *ChartApp) updateSizes() {
	reserved := footerHeight
	if a.help.ShowAll {
		reserved += len(a.keys.FullHelp()[0]) - 1
	}
	a.help.Width = a.width
	a.chart.SetSize(a.width, max(a.height-reserved, 2))
}

// View implements tea.Model.
func (a *ChartApp) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(a.chart.View())
	b.WriteString("\n")
	b.WriteString(a.viewStatus())
	b.WriteString("\n")
	b.WriteString(a.help.View(a.keys))
	return b.String()
}

// viewStatus renders the time window and the task under the cursor.
func (a *ChartApp) viewStatus() string {
	start, end := a.chart.Window()
	status := fmt.Sprintf("%s  [%s, %s]s  lane %d  t=%s",
		a.source, formatTime(start), formatTime(end),
		a.chart.SelectedLane(), formatTime(a.chart.CursorTime()))

	if t, ok := a.chart.TaskAtCursor(); ok {
		return a.statusStyle.Render(status+"  ") +
			a.nameStyle.Render(t.Name) +
			a.statusStyle.Render(fmt.Sprintf(" %s–%s (%ss)",
				formatTime(t.Start), formatTime(t.End), formatTime(t.Duration())))
	}
	return a.statusStyle.Render(status)
}

// NewChartProgram creates a new tea.Program showing p.
func NewChartProgram(p *models.Profile, colors *palette.Assigner, source string) (*tea.Program, *ChartApp) {
	app := NewChartApp(p, colors, source)
	prog := tea.NewProgram(app, tea.WithAltScreen())
	return prog, app
}

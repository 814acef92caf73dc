package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/taskplot/internal/palette"
	"github.com/ShayCichocki/taskplot/pkg/models"
)

const (
	// emptyCell marks a cell no task covers.
	emptyCell = -1

	defaultWidth  = 80
	defaultHeight = 24

	// axisHeight is the time axis row below the lanes.
	axisHeight = 1
	// minPlotWidth keeps a usable plot on very narrow terminals.
	minPlotWidth = 10
	// maxZoom bounds how far the time window can shrink relative to the full span.
	maxZoom = 1 << 16
)

// ChartView draws a profile as a terminal Gantt chart: one row per thread lane,
// time running left to right.
type ChartView struct {
	profile *models.Profile
	width   int
	height  int

	// Full time extent and the visible window.
	xmin, xmax float64
	viewStart  float64
	viewSpan   float64

	// laneLo is the lane drawn on row 0 when laneOffset is 0.
	laneLo     int
	laneCount  int
	laneOffset int
	selected   int // row of the selected lane
	cursor     int // plot column

	// Styles
	labelStyle    lipgloss.Style
	selectedLabel lipgloss.Style
	emptyStyle    lipgloss.Style
	axisStyle     lipgloss.Style
	cursorStyle   lipgloss.Style
	taskStyles    []lipgloss.Style
}

// NewChartView creates a ChartView for p. Colours are assigned in task order.
func NewChartView(p *models.Profile, colors *palette.Assigner) *ChartView {
	v := &ChartView{
		profile: p,
		width:   defaultWidth,
		height:  defaultHeight,

		labelStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		selectedLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("236")).
			Bold(true),

		emptyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("236")),

		axisStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		cursorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true),
	}

	v.taskStyles = make([]lipgloss.Style, len(p.Tasks))
	for i, t := range p.Tasks {
		v.taskStyles[i] = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Color(t.Name).Hex()))
	}

	v.xmin, v.xmax = p.TimeBounds()
	lo, hi := p.LaneBounds()
	v.laneLo = lo
	v.laneCount = hi - lo + 1
	v.ResetView()
	return v
}

// SetSize sets the view dimensions.
func (v *ChartView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.clampCursor()
	v.ensureSelectedVisible()
}

// ResetView shows the whole profile.
func (v *ChartView) ResetView() {
	v.viewStart = v.xmin
	v.viewSpan = v.xmax - v.xmin
}

// Window returns the visible time range.
func (v *ChartView) Window() (float64, float64) {
	return v.viewStart, v.viewStart + v.viewSpan
}

// SelectedLane returns the thread index of the selected lane.
func (v *ChartView) SelectedLane() int {
	return v.laneLo + v.selected
}

// CursorTime returns the time at the start of the cursor column.
func (v *ChartView) CursorTime() float64 {
	return v.viewStart + float64(v.cursor)*v.colSpan()
}

// TaskAtCursor returns the topmost task under the cursor on the selected lane.
func (v *ChartView) TaskAtCursor() (models.Task, bool) {
	cells := v.laneCells(v.SelectedLane())
	if v.cursor < 0 || v.cursor >= len(cells) || cells[v.cursor] == emptyCell {
		return models.Task{}, false
	}
	return v.profile.Tasks[cells[v.cursor]], true
}

// labelWidth is the width of the lane label column, separator included.
func (v *ChartView) labelWidth() int {
	lo, hi := v.laneLo, v.laneLo+v.laneCount-1
	w := max(len(fmt.Sprint(lo)), len(fmt.Sprint(hi)))
	return w + 2
}

// plotWidth is the number of time columns.
func (v *ChartView) plotWidth() int {
	return max(v.width-v.labelWidth(), minPlotWidth)
}

// visibleLanes is the number of lane rows that fit.
func (v *ChartView) visibleLanes() int {
	return max(v.height-axisHeight, 1)
}

// colSpan is the time covered by one column.
func (v *ChartView) colSpan() float64 {
	return v.viewSpan / float64(v.plotWidth())
}

// View renders the lanes and the time axis.
func (v *ChartView) View() string {
	var b strings.Builder

	labelW := v.labelWidth()
	end := min(v.laneOffset+v.visibleLanes(), v.laneCount)
	for row := v.laneOffset; row < end; row++ {
		lane := v.laneLo + row
		label := fmt.Sprintf("%*d ", labelW-2, lane)
		if row == v.selected {
			b.WriteString(v.selectedLabel.Render(label))
		} else {
			b.WriteString(v.labelStyle.Render(label))
		}
		b.WriteString(v.axisStyle.Render("│"))
		b.WriteString(v.renderLane(lane, row == v.selected))
		b.WriteString("\n")
	}

	b.WriteString(v.renderAxis())
	return b.String()
}

// renderAxis draws the time axis with the window bounds at both ends.
func (v *ChartView) renderAxis() string {
	labelW := v.labelWidth()
	plotW := v.plotWidth()
	start, stop := v.Window()

	left := formatTime(start)
	right := formatTime(stop)
	gap := plotW - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}

	line := strings.Repeat(" ", labelW-1) + "└" + left + strings.Repeat("─", gap) + right
	return v.axisStyle.Render(line)
}

func formatTime(t float64) string {
	return fmt.Sprintf("%.4g", t)
}

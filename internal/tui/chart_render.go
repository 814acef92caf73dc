package tui

import (
	"math"
	"strings"
)

// Cell rasterisation for ChartView.

const (
	barGlyph    = "█"
	emptyGlyph  = "·"
	cursorGlyph = "│"
)

// laneCells maps each plot column of lane to the index of the task drawn there,
// or emptyCell. Later tasks in the file overwrite earlier ones, and a task
// shorter than a column still occupies the column its start falls in.
func (v *ChartView) laneCells(lane int) []int {
	width := v.plotWidth()
	cells := make([]int, width)
	for i := range cells {
		cells[i] = emptyCell
	}

	col := v.colSpan()
	if col <= 0 {
		return cells
	}

	viewEnd := v.viewStart + v.viewSpan
	for i, t := range v.profile.Tasks {
		if t.Thread != lane {
			continue
		}
		lo, hi := t.Start, t.End
		if lo > hi {
			lo, hi = hi, lo
		}
		if hi < v.viewStart || lo > viewEnd {
			continue
		}

		first := int(math.Floor((lo - v.viewStart) / col))
		last := int(math.Ceil((hi-v.viewStart)/col)) - 1
		if last < first {
			last = first
		}
		first = max(first, 0)
		last = min(last, width-1)
		for c := first; c <= last; c++ {
			cells[c] = i
		}
	}
	return cells
}

// renderLane draws one lane row. The cursor column is marked on the selected lane.
func (v *ChartView) renderLane(lane int, selected bool) string {
	var b strings.Builder
	for c, idx := range v.laneCells(lane) {
		switch {
		case selected && c == v.cursor && idx == emptyCell:
			b.WriteString(v.cursorStyle.Render(cursorGlyph))
		case idx == emptyCell:
			b.WriteString(v.emptyStyle.Render(emptyGlyph))
		case selected && c == v.cursor:
			b.WriteString(v.taskStyles[idx].Reverse(true).Render(barGlyph))
		default:
			b.WriteString(v.taskStyles[idx].Render(barGlyph))
		}
	}
	return b.String()
}

// Package render draws a profile as a horizontal bar chart image.
//
// Each task becomes one bar on the lane of its thread, spanning [Start, End)
// with a thickness of one lane. Bars are drawn in task order, so later tasks
// cover earlier ones where they overlap. The chart carries no title, legend
// or axis names.
package render

import (
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ShayCichocki/taskplot/internal/palette"
	"github.com/ShayCichocki/taskplot/pkg/models"
)

// Options controls the image size.
type Options struct {
	// Width and Height are in pixels.
	Width  int
	Height int
	// DPI scales fonts and strokes.
	DPI float64
}

// DefaultOptions returns the default image size.
func DefaultOptions() Options {
	return Options{
		Width:  1024,
		Height: 512,
		DPI:    96,
	}
}

// laneThickness is the height of a bar in lane units.
const laneThickness = 1.0

// ganttSeries is a chart.Series drawing one filled box per task.
type ganttSeries struct {
	tasks  []models.Task
	colors []drawing.Color
}

func (s ganttSeries) GetName() string { return "tasks" }

func (s ganttSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }

func (s ganttSeries) GetStyle() chart.Style { return chart.Style{} }

func (s ganttSeries) Validate() error { return nil }

// Render draws the bars in task order.
func (s ganttSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	half := laneThickness / 2
	for i, t := range s.tasks {
		lane := float64(t.Thread)
		box := chart.Box{
			Left:   canvasBox.Left + xrange.Translate(t.Start),
			Right:  canvasBox.Left + xrange.Translate(t.End),
			Top:    canvasBox.Bottom - yrange.Translate(lane+half),
			Bottom: canvasBox.Bottom - yrange.Translate(lane-half),
		}
		chart.Draw.Box(r, box, chart.Style{
			FillColor:   s.colors[i],
			StrokeColor: s.colors[i],
			StrokeWidth: 1,
		})
	}
}

// NewChart builds the chart for p. Colours are taken from colors in task
// order, so names seen first get the palette colours first.
func NewChart(p *models.Profile, colors *palette.Assigner, opts Options) chart.Chart {
	series := ganttSeries{
		tasks:  p.Tasks,
		colors: make([]drawing.Color, len(p.Tasks)),
	}
	for i, t := range p.Tasks {
		series.colors[i] = toDrawing(colors.Color(t.Name))
	}

	xmin, xmax := p.TimeBounds()
	lo, hi := p.LaneBounds()

	return chart.Chart{
		Width:  opts.Width,
		Height: opts.Height,
		DPI:    opts.DPI,
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: xmin, Max: xmax},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: float64(lo) - laneThickness/2, Max: float64(hi) + laneThickness/2},
			Ticks: laneTicks(lo, hi),
		},
		Series: []chart.Series{series},
	}
}

// maxLaneTicks caps the labelled lane ticks on the y axis.
const maxLaneTicks = 32

// laneTicks labels the lanes and pads the axis by half a lane on both sides.
// The unlabelled outer ticks fix the axis range to the bar edges. When there
// are more than maxLaneTicks lanes only every step-th lane is labelled.
func laneTicks(lo, hi int) []chart.Tick {
	half := laneThickness / 2
	lanes := int64(hi) - int64(lo) + 1
	step := int((lanes + maxLaneTicks - 1) / maxLaneTicks)

	ticks := make([]chart.Tick, 0, maxLaneTicks+2)
	ticks = append(ticks, chart.Tick{Value: float64(lo) - half})
	for lane := int64(lo); lane <= int64(hi); lane += int64(step) {
		ticks = append(ticks, chart.Tick{Value: float64(lane), Label: strconv.FormatInt(lane, 10)})
	}
	ticks = append(ticks, chart.Tick{Value: float64(hi) + half})
	return ticks
}

func toDrawing(c colorful.Color) drawing.Color {
	r, g, b := c.Clamped().RGB255()
	return drawing.Color{R: r, G: g, B: b, A: 255}
}

package tui

// Panning, zooming and lane navigation for ChartView.

// panStep is the fraction of the window moved per pan.
const panStep = 0.25

// panLeft moves the window towards earlier times, stopping at the profile start.
func (v *ChartView) panLeft() {
	v.viewStart -= v.viewSpan * panStep
	v.clampWindow()
}

// panRight moves the window towards later times, stopping at the profile end.
func (v *ChartView) panRight() {
	v.viewStart += v.viewSpan * panStep
	v.clampWindow()
}

// zoomIn halves the window around the cursor time.
func (v *ChartView) zoomIn() {
	full := v.xmax - v.xmin
	if v.viewSpan/2 < full/maxZoom {
		return
	}
	anchor := v.CursorTime()
	frac := (anchor - v.viewStart) / v.viewSpan
	v.viewSpan /= 2
	v.viewStart = anchor - frac*v.viewSpan
	v.clampWindow()
}

// zoomOut doubles the window around the cursor time, up to the full profile.
func (v *ChartView) zoomOut() {
	full := v.xmax - v.xmin
	if v.viewSpan >= full {
		v.ResetView()
		return
	}
	anchor := v.CursorTime()
	frac := (anchor - v.viewStart) / v.viewSpan
	v.viewSpan = min(v.viewSpan*2, full)
	v.viewStart = anchor - frac*v.viewSpan
	v.clampWindow()
}

// clampWindow keeps the window inside the profile's time extent.
func (v *ChartView) clampWindow() {
	if v.viewStart+v.viewSpan > v.xmax {
		v.viewStart = v.xmax - v.viewSpan
	}
	if v.viewStart < v.xmin {
		v.viewStart = v.xmin
	}
}

// selectPrevious moves selection to the lane above.
func (v *ChartView) selectPrevious() {
	if v.selected > 0 {
		v.selected--
	}
	v.ensureSelectedVisible()
}

// selectNext moves selection to the lane below.
func (v *ChartView) selectNext() {
	if v.selected < v.laneCount-1 {
		v.selected++
	}
	v.ensureSelectedVisible()
}

// ensureSelectedVisible scrolls to make the selected lane visible.
func (v *ChartView) ensureSelectedVisible() {
	rows := v.visibleLanes()
	if v.selected < v.laneOffset {
		v.laneOffset = v.selected
	} else if v.selected >= v.laneOffset+rows {
		v.laneOffset = v.selected - rows + 1
	}
	if v.laneOffset < 0 {
		v.laneOffset = 0
	}
}

func (v *ChartView) cursorLeft() {
	if v.cursor > 0 {
		v.cursor--
	}
}

func (v *ChartView) cursorRight() {
	if v.cursor < v.plotWidth()-1 {
		v.cursor++
	}
}

func (v *ChartView) clampCursor() {
	v.cursor = min(max(v.cursor, 0), v.plotWidth()-1)
}

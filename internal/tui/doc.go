// Package tui provides the interactive terminal display for taskplot.
//
// The display is a Gantt chart: one row per thread lane, time running left to
// right, each task drawn as a bar in the colour assigned to its name. The same
// palette.Assigner used for image output is shared so colours match between
// the saved image and the terminal.
//
// The view is read-only. Users can pan, zoom around the cursor, move between
// lanes and inspect the task under the cursor. They quit with 'q' or Ctrl+C.
//
// Usage:
//
//	program, _ := tui.NewChartProgram(profile, colors, "trace.txt")
//	if _, err := program.Run(); err != nil {
//	    return err
//	}
package tui

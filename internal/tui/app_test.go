package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ShayCichocki/taskplot/pkg/models"
)

func testApp() *ChartApp {
	p := &models.Profile{
		Header: models.Header{ThreadCount: 2, TotalDuration: 10},
		Tasks: []models.Task{
			{Name: "compile", Thread: 0, Start: 0, End: 6},
			{Name: "link", Thread: 1, Start: 6, End: 10},
		},
	}
	return NewChartApp(p, testColors(), "build.prof")
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestChartApp_Init(t *testing.T) {
	if cmd := testApp().Init(); cmd != nil {
		t.Error("Init should not return a command")
	}
}

func TestChartApp_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", runeKey('q')},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testApp()
			model, cmd := app.Update(tt.msg)
			updated := model.(*ChartApp)

			if !updated.quitting {
				t.Error("quitting should be true")
			}
			if cmd == nil {
				t.Error("expected a quit command")
			}
			if updated.View() != "" {
				t.Errorf("View when quitting = %q, want empty", updated.View())
			}
		})
	}
}

func TestChartApp_WindowSize(t *testing.T) {
	app := testApp()
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	if app.width != 120 || app.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", app.width, app.height)
	}
	if app.chart.width != 120 {
		t.Errorf("chart width = %d, want 120", app.chart.width)
	}
	if app.chart.height != 40-footerHeight {
		t.Errorf("chart height = %d, want %d", app.chart.height, 40-footerHeight)
	}
}

func TestChartApp_Navigation(t *testing.T) {
	app := testApp()

	app.Update(runeKey('+'))
	if start, end := app.chart.Window(); start != 0 || end != 5 {
		t.Errorf("after + Window() = [%v, %v], want [0, 5]", start, end)
	}

	app.Update(tea.KeyMsg{Type: tea.KeyRight})
	if start, _ := app.chart.Window(); start != 1.25 {
		t.Errorf("after right start = %v, want 1.25", start)
	}

	app.Update(runeKey('0'))
	if start, end := app.chart.Window(); start != 0 || end != 10 {
		t.Errorf("after 0 Window() = [%v, %v], want [0, 10]", start, end)
	}

	app.Update(runeKey('j'))
	if got := app.chart.SelectedLane(); got != 1 {
		t.Errorf("after j SelectedLane() = %d, want 1", got)
	}
	app.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := app.chart.SelectedLane(); got != 0 {
		t.Errorf("after up SelectedLane() = %d, want 0", got)
	}

	app.Update(runeKey(']'))
	if app.chart.cursor != 1 {
		t.Errorf("after ] cursor = %d, want 1", app.chart.cursor)
	}
	app.Update(runeKey('['))
	if app.chart.cursor != 0 {
		t.Errorf("after [ cursor = %d, want 0", app.chart.cursor)
	}
}

func TestChartApp_HelpToggle(t *testing.T) {
	app := testApp()
	app.Update(runeKey('?'))
	if !app.help.ShowAll {
		t.Error("? should expand the help")
	}
	app.Update(runeKey('?'))
	if app.help.ShowAll {
		t.Error("? should collapse the help again")
	}
}

func TestChartApp_View(t *testing.T) {
	app := testApp()
	view := app.View()

	if !strings.Contains(view, "build.prof") {
		t.Error("status line should name the source")
	}
	if !strings.Contains(view, "compile") {
		t.Error("status line should name the task under the cursor")
	}
	if !strings.Contains(view, "quit") {
		t.Error("help line should list the quit key")
	}
}

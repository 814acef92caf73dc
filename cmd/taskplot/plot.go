package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/taskplot/internal/config"
	"github.com/ShayCichocki/taskplot/internal/palette"
	"github.com/ShayCichocki/taskplot/internal/profile"
	"github.com/ShayCichocki/taskplot/internal/render"
	"github.com/ShayCichocki/taskplot/internal/tui"
	"github.com/ShayCichocki/taskplot/pkg/models"
)

// display shows the interactive chart and blocks until the user closes it.
// Replaced in tests.
var display = runChartTUI

// runPlot parses the input, saves the image if asked, then shows the chart.
func runPlot(cmd *cobra.Command, args []string) error {
	verbose := os.Getenv("TASKPLOT_DEBUG") != ""

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyPlotFlags(cmd, cfg); err != nil {
		return err
	}

	input := args[0]
	p, err := profile.ParseFile(input)
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("[DEBUG] parsed %s: %d tasks, %d lanes, span %.6gs",
			input, len(p.Tasks), p.Lanes(), p.Span())
	}

	issues, err := profile.Check(p, cfg.Validation.Strict)
	for _, issue := range issues {
		printStatus(cmd.ErrOrStderr(), "⚠", issue.String(), color.FgYellow)
	}
	if err != nil {
		return err
	}

	colors, err := newAssigner(cfg)
	if err != nil {
		return err
	}
	colors.AssignAll(p.Names())

	if len(args) == 2 {
		output := args[1]
		if err := render.SaveFile(output, p, colors, cfg.RenderOptions()); err != nil {
			return fmt.Errorf("save chart: %w", err)
		}
		printStatus(cmd.OutOrStdout(), "✓", fmt.Sprintf("Saved chart to %s", output), color.FgGreen)
	}

	return display(p, colors, input)
}

// applyPlotFlags overrides configuration with flags set on the command line.
func applyPlotFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.Validation.Strict = plotStrict
	}
	if flags.Changed("seed") {
		cfg.Palette.Seed = plotSeed
	}
	if flags.Changed("width") {
		if plotWidth <= 0 {
			return fmt.Errorf("--width must be positive, got %d", plotWidth)
		}
		cfg.Chart.Width = plotWidth
	}
	if flags.Changed("height") {
		if plotHeight <= 0 {
			return fmt.Errorf("--height must be positive, got %d", plotHeight)
		}
		cfg.Chart.Height = plotHeight
	}
	return nil
}

// newAssigner builds the colour assigner from the palette settings.
func newAssigner(cfg *config.Config) (*palette.Assigner, error) {
	colorCfg, err := cfg.ColorConfig()
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	return palette.NewAssigner(colorCfg), nil
}

// runChartTUI runs the terminal chart until the user quits.
func runChartTUI(p *models.Profile, colors *palette.Assigner, source string) (retErr error) {
	// Suppress log output while TUI is active (it corrupts the display)
	originalOutput := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(originalOutput)

	defer func() {
		if r := recover(); r != nil {
			retErr = fmt.Errorf("PANIC in chart display: %v", r)
		}
	}()

	program, _ := tui.NewChartProgram(p, colors, source)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

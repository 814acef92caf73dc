package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// errNoInput is returned when taskplot is run without an input file.
var errNoInput = errors.New("no input file given")

var (
	plotStrict bool
	plotSeed   int64
	plotWidth  int
	plotHeight int
)

var rootCmd = &cobra.Command{
	Use:   "taskplot <input-file> [output-image-file]",
	Short: "Plot task timings from a profiling file",
	Long: `taskplot draws a Gantt chart of the tasks recorded in a profiling file.

Each thread gets a horizontal lane and each task a bar from its start to its end
time, coloured by task name. Tasks sharing a name share a colour.

If an output image file is given the chart is saved there first (png, svg, jpg
or gif, chosen by extension). The chart is then shown in the terminal until you
press q.

The input file starts with a header line "<thread-count> <total-duration>"
followed by pairs of lines: a task name, then "<thread> <start> <end>".
Times are integers in units of 1/1,000,000 s.`,
	Args:         plotArgs,
	SilenceUsage: true,
	RunE:         runPlot,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&plotStrict, "strict", false, "Fail on validation issues instead of warning")
	rootCmd.Flags().Int64Var(&plotSeed, "seed", 0, "Seed for colours past the palette (0 = time-seeded)")
	rootCmd.Flags().IntVar(&plotWidth, "width", 0, "Saved image width in pixels")
	rootCmd.Flags().IntVar(&plotHeight, "height", 0, "Saved image height in pixels")

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// plotArgs accepts an input file and an optional output image file.
func plotArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return errNoInput
	case len(args) > 2:
		return fmt.Errorf("too many arguments: expected <input-file> [output-image-file], got %d", len(args))
	}
	return nil
}

// printStatus prints a status line with color
func printStatus(w io.Writer, symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Fprintf(w, "%s %s\n", c.Sprint(symbol), message)
}

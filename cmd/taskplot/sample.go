package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/taskplot/internal/profile"
	"github.com/ShayCichocki/taskplot/internal/sample"
)

var (
	sampleThreads int
	sampleTasks   int
	sampleSeed    int64
	sampleMinWork time.Duration
	sampleMaxWork time.Duration
)

var sampleCmd = &cobra.Command{
	Use:   "sample <output-file>",
	Short: "Record a sample profile from a local worker pool",
	Long: `Run a pool of workers over synthetic jobs, record when each job starts and
ends, and write the result as a profiling file that taskplot can read.

Examples:
  taskplot sample run.prof
  taskplot sample run.prof --threads 8 --tasks 200
  taskplot run.prof run.png`,
	Args: cobra.ExactArgs(1),
	RunE: runSample,
}

func init() {
	defaults := sample.DefaultOptions()
	sampleCmd.Flags().IntVar(&sampleThreads, "threads", defaults.Threads, "Number of workers")
	sampleCmd.Flags().IntVar(&sampleTasks, "tasks", defaults.Tasks, "Number of jobs")
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 0, "Seed for job durations (0 = time-seeded)")
	sampleCmd.Flags().DurationVar(&sampleMinWork, "min-work", defaults.MinWork, "Shortest job")
	sampleCmd.Flags().DurationVar(&sampleMaxWork, "max-work", defaults.MaxWork, "Longest job")
}

func runSample(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	opts := sample.DefaultOptions()
	opts.Threads = sampleThreads
	opts.Tasks = sampleTasks
	opts.Seed = sampleSeed
	opts.MinWork = sampleMinWork
	opts.MaxWork = sampleMaxWork

	return writeSample(ctx, cmd, args[0], opts)
}

// writeSample runs the pool and writes the recorded profile to path.
func writeSample(ctx context.Context, cmd *cobra.Command, path string, opts sample.Options) error {
	res, err := sample.Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("sample run: %w", err)
	}

	if err := profile.WriteFile(path, res.Profile); err != nil {
		return err
	}

	printStatus(cmd.OutOrStdout(), "✓",
		fmt.Sprintf("Recorded %d tasks on %d workers to %s (run %s)",
			len(res.Profile.Tasks), opts.Threads, path, res.ID),
		color.FgGreen)
	return nil
}

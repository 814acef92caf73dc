// Package sample produces profiles by running a small pool of workers over
// synthetic jobs and recording when each one starts and finishes.
//
// It exists to generate realistic input for taskplot and to exercise the
// producer side of the profile format.
package sample

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ShayCichocki/taskplot/internal/profile"
	"github.com/ShayCichocki/taskplot/pkg/models"
)

// DefaultNames are the task names cycled through when Options.Names is empty.
var DefaultNames = []string{"load", "parse", "sort", "merge", "hash", "compress", "write", "index", "verify", "flush"}

// ErrInvalidOptions is returned when Run is given a non-positive worker or job count.
var ErrInvalidOptions = errors.New("invalid sample options")

// Job is one unit of work handed to a worker.
type Job struct {
	Index    int
	Name     string
	Duration time.Duration
}

// WorkFunc performs a job. Returning an error stops the run.
type WorkFunc func(ctx context.Context, job Job) error

// Options configures a sample run.
type Options struct {
	Threads int
	Tasks   int

	// Names are cycled through for job names.
	Names []string

	// MinWork and MaxWork bound the pseudo-random job durations.
	MinWork time.Duration
	MaxWork time.Duration

	// Seed seeds job durations. Zero means time-seeded.
	Seed int64

	// Work runs each job. Defaults to Sleep.
	Work WorkFunc
}

// DefaultOptions returns options for four workers over forty jobs.
func DefaultOptions() Options {
	return Options{
		Threads: 4,
		Tasks:   40,
		Names:   DefaultNames,
		MinWork: 5 * time.Millisecond,
		MaxWork: 50 * time.Millisecond,
	}
}

// Result is a finished sample run.
type Result struct {
	// ID identifies the run in log output.
	ID      string
	Profile *models.Profile
}

// Sleep waits for the job's duration or until ctx is cancelled.
func Sleep(ctx context.Context, job Job) error {
	timer := time.NewTimer(job.Duration)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if len(o.Names) == 0 {
		o.Names = d.Names
	}
	if o.MaxWork <= 0 {
		o.MinWork, o.MaxWork = d.MinWork, d.MaxWork
	}
	if o.MinWork > o.MaxWork {
		o.MinWork = o.MaxWork
	}
	if o.Work == nil {
		o.Work = Sleep
	}
	return o
}

// Run starts opts.Threads workers, feeds them opts.Tasks jobs and returns the
// recorded profile. Each worker records on the lane matching its index.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Threads < 1 || opts.Tasks < 0 {
		return nil, fmt.Errorf("%w: threads=%d tasks=%d", ErrInvalidOptions, opts.Threads, opts.Tasks)
	}
	opts = opts.withDefaults()

	runID := uuid.New().String()[:8]
	durations := jobDurations(opts)

	rec := profile.NewRecorder()
	rec.Start()

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan Job)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < opts.Tasks; i++ {
			job := Job{
				Index:    i,
				Name:     opts.Names[i%len(opts.Names)],
				Duration: durations[i],
			}
			select {
			case jobs <- job:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for worker := 0; worker < opts.Threads; worker++ {
		g.Go(func() error {
			for job := range jobs {
				done := rec.Track(job.Name, worker)
				err := opts.Work(ctx, job)
				done()
				if err != nil {
					return fmt.Errorf("job %d (%s) on worker %d: %w", job.Index, job.Name, worker, err)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Printf("[sample] run %s failed: %v", runID, err)
		return nil, err
	}
	rec.Stop()

	p := rec.Profile(opts.Threads)
	log.Printf("[sample] run %s recorded %d tasks on %d workers in %.3fs",
		runID, len(p.Tasks), opts.Threads, p.Header.TotalDuration)

	return &Result{ID: runID, Profile: p}, nil
}

// jobDurations draws one duration per job in [MinWork, MaxWork].
func jobDurations(opts Options) []time.Duration {
	seed := uint64(opts.Seed)
	if opts.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	spread := int64(opts.MaxWork - opts.MinWork)
	out := make([]time.Duration, opts.Tasks)
	for i := range out {
		d := opts.MinWork
		if spread > 0 {
			d += time.Duration(rng.Int64N(spread + 1))
		}
		out[i] = d
	}
	return out
}

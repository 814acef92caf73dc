package sample

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShayCichocki/taskplot/internal/profile"
)

func noWork(context.Context, Job) error { return nil }

func TestRun_RecordsEveryJob(t *testing.T) {
	res, err := Run(context.Background(), Options{
		Threads: 3,
		Tasks:   12,
		Names:   []string{"a", "b"},
		Work:    noWork,
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Len(t, res.ID, 8)

	p := res.Profile
	assert.Equal(t, 3, p.Header.ThreadCount)
	require.Len(t, p.Tasks, 12)

	counts := map[string]int{}
	for _, task := range p.Tasks {
		counts[task.Name]++
		assert.GreaterOrEqual(t, task.Thread, 0)
		assert.Less(t, task.Thread, 3)
		assert.LessOrEqual(t, task.Start, task.End)
		assert.LessOrEqual(t, task.End, p.Header.TotalDuration)
	}
	assert.Equal(t, map[string]int{"a": 6, "b": 6}, counts)

	assert.Empty(t, profile.Validate(p))
}

func TestRun_WorkersDoNotOverlap(t *testing.T) {
	res, err := Run(context.Background(), Options{
		Threads: 2,
		Tasks:   8,
		MinWork: time.Millisecond,
		MaxWork: 2 * time.Millisecond,
		Seed:    42,
	})
	require.NoError(t, err)

	for lane := 0; lane < 2; lane++ {
		tasks := res.Profile.TasksOnLane(lane)
		for i := 1; i < len(tasks); i++ {
			assert.GreaterOrEqual(t, tasks[i].Start, tasks[i-1].End,
				"lane %d: task %d starts before task %d ends", lane, i, i-1)
		}
	}
}

func TestRun_WorkErrorStopsRun(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int32

	_, err := Run(context.Background(), Options{
		Threads: 2,
		Tasks:   100,
		Work: func(ctx context.Context, job Job) error {
			calls.Add(1)
			if job.Index == 3 {
				return boom
			}
			return nil
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Less(t, int(calls.Load()), 100)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Threads: 2, Tasks: 10, MinWork: time.Second, MaxWork: time.Second})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"no workers", Options{Threads: 0, Tasks: 1}},
		{"negative tasks", Options{Threads: 1, Tasks: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(context.Background(), tt.opts)
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestJobDurations(t *testing.T) {
	opts := Options{Tasks: 50, MinWork: 10 * time.Millisecond, MaxWork: 20 * time.Millisecond, Seed: 7}

	first := jobDurations(opts)
	second := jobDurations(opts)
	assert.Equal(t, first, second, "same seed should give the same durations")

	for _, d := range first {
		assert.GreaterOrEqual(t, d, opts.MinWork)
		assert.LessOrEqual(t, d, opts.MaxWork)
	}
}

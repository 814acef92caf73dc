package profile

import (
	"sync"
	"time"

	"github.com/ShayCichocki/taskplot/pkg/models"
)

// Recorder collects task timings from concurrent workers.
// Times are stored relative to the moment Start was called.
type Recorder struct {
	mu      sync.Mutex
	started time.Time
	stopped time.Time
	tasks   []models.Task

	// now is swapped in tests.
	now func() time.Time
}

// NewRecorder creates a Recorder using the wall clock.
func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

// Start marks the beginning of the run. Recorded times are relative to it.
func (r *Recorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = r.now()
	r.stopped = time.Time{}
	r.tasks = r.tasks[:0]
}

// Stop marks the end of the run and fixes the total duration.
func (r *Recorder) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = r.now()
}

// Record appends a finished task.
func (r *Recorder) Record(name string, thread int, start, end time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, models.Task{
		Name:   name,
		Thread: thread,
		Start:  NanosToSeconds(start.Sub(r.started).Nanoseconds()),
		End:    NanosToSeconds(end.Sub(r.started).Nanoseconds()),
	})
}

// Track starts timing a task and returns the function that records it.
//
//	done := rec.Track("merge", worker)
//	defer done()
func (r *Recorder) Track(name string, thread int) func() {
	start := r.now()
	return func() {
		r.Record(name, thread, start, r.now())
	}
}

// Len returns the number of recorded tasks.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

// Profile returns the recorded run. Tasks are in completion order.
// If Stop was not called the total duration runs up to now.
func (r *Recorder) Profile(threads int) *models.Profile {
	r.mu.Lock()
	defer r.mu.Unlock()

	end := r.stopped
	if end.IsZero() {
		end = r.now()
	}

	tasks := make([]models.Task, len(r.tasks))
	copy(tasks, r.tasks)

	return &models.Profile{
		Header: models.Header{
			ThreadCount:   threads,
			TotalDuration: NanosToSeconds(end.Sub(r.started).Nanoseconds()),
		},
		Tasks: tasks,
	}
}

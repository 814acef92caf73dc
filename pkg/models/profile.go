// Package models defines the profile data shared by the parser, renderers and CLI.
package models

// Header is the first record of a profiling file.
type Header struct {
	// ThreadCount is the number of worker threads declared by the producer.
	ThreadCount int `json:"thread_count" yaml:"thread_count"`
	// TotalDuration is the wall time of the whole run, in profile seconds.
	TotalDuration float64 `json:"total_duration" yaml:"total_duration"`
}

// Task is one timed unit of work executed on a thread lane.
type Task struct {
	// Name identifies the kind of work. Tasks sharing a name share a colour.
	Name string `json:"name" yaml:"name"`
	// Thread is the lane the task ran on.
	Thread int `json:"thread" yaml:"thread"`
	// Start is the start time relative to the run start, in profile seconds.
	Start float64 `json:"start" yaml:"start"`
	// End is the end time relative to the run start, in profile seconds.
	End float64 `json:"end" yaml:"end"`
}

// Duration returns End - Start.
func (t Task) Duration() float64 {
	return t.End - t.Start
}

// Profile is a parsed profiling file. Tasks keep file order, which is also draw order.
type Profile struct {
	Header Header `json:"header" yaml:"header"`
	Tasks  []Task `json:"tasks" yaml:"tasks"`
}

// Lanes returns the number of thread lanes needed to draw every task.
// It is the larger of the declared thread count and the highest thread index plus one,
// and never less than one.
func (p *Profile) Lanes() int {
	lanes := p.Header.ThreadCount
	for _, t := range p.Tasks {
		if t.Thread+1 > lanes {
			lanes = t.Thread + 1
		}
	}
	if lanes < 1 {
		lanes = 1
	}
	return lanes
}

// Span returns the time extent to display: the declared total duration,
// extended to the latest task end if a task runs past it.
func (p *Profile) Span() float64 {
	span := p.Header.TotalDuration
	for _, t := range p.Tasks {
		if t.End > span {
			span = t.End
		}
	}
	return span
}

// TimeBounds returns the horizontal extent to draw. It starts at zero, or
// earlier if a task does, ends at Span, and is never empty.
func (p *Profile) TimeBounds() (float64, float64) {
	lo := 0.0
	for _, t := range p.Tasks {
		lo = min(lo, t.Start, t.End)
	}
	hi := p.Span()
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// LaneBounds returns the lowest and highest lane index to draw.
func (p *Profile) LaneBounds() (int, int) {
	lo := 0
	for _, t := range p.Tasks {
		lo = min(lo, t.Thread)
	}
	return lo, p.Lanes() - 1
}

// Names returns the distinct task names in order of first appearance.
func (p *Profile) Names() []string {
	seen := make(map[string]bool, len(p.Tasks))
	names := make([]string, 0)
	for _, t := range p.Tasks {
		if seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		names = append(names, t.Name)
	}
	return names
}

// TasksOnLane returns the tasks drawn on the given lane, in file order.
func (p *Profile) TasksOnLane(lane int) []Task {
	var tasks []Task
	for _, t := range p.Tasks {
		if t.Thread == lane {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

package profile

import (
	"fmt"

	"github.com/ShayCichocki/taskplot/pkg/models"
)

// IssueKind classifies a validation issue.
type IssueKind string

const (
	// IssueThreadOutOfRange means the thread index is outside [0, ThreadCount).
	IssueThreadOutOfRange IssueKind = "thread_out_of_range"
	// IssueInvertedInterval means the task ends before it starts.
	IssueInvertedInterval IssueKind = "inverted_interval"
	// IssueNegativeStart means the task starts before the run started.
	IssueNegativeStart IssueKind = "negative_start"
	// IssuePastDuration means the task ends after the declared total duration.
	IssuePastDuration IssueKind = "past_duration"
)

// Issue is a task that is inconsistent with the profile header.
type Issue struct {
	// Index is the position of the task in the profile.
	Index  int
	Task   models.Task
	Kind   IssueKind
	Detail string
}

func (i Issue) String() string {
	return fmt.Sprintf("task %d (%q): %s", i.Index, i.Task.Name, i.Detail)
}

// Validate checks every task against the header and returns the issues found,
// in task order. A task can produce more than one issue.
func Validate(p *models.Profile) []Issue {
	var issues []Issue
	threads := p.Header.ThreadCount
	total := p.Header.TotalDuration

	for idx, t := range p.Tasks {
		if t.Thread < 0 || t.Thread >= threads {
			issues = append(issues, Issue{
				Index:  idx,
				Task:   t,
				Kind:   IssueThreadOutOfRange,
				Detail: fmt.Sprintf("thread %d outside [0, %d)", t.Thread, threads),
			})
		}
		if t.Start > t.End {
			issues = append(issues, Issue{
				Index:  idx,
				Task:   t,
				Kind:   IssueInvertedInterval,
				Detail: fmt.Sprintf("start %g after end %g", t.Start, t.End),
			})
		}
		if t.Start < 0 {
			issues = append(issues, Issue{
				Index:  idx,
				Task:   t,
				Kind:   IssueNegativeStart,
				Detail: fmt.Sprintf("start %g before run start", t.Start),
			})
		}
		if total > 0 && t.End > total {
			issues = append(issues, Issue{
				Index:  idx,
				Task:   t,
				Kind:   IssuePastDuration,
				Detail: fmt.Sprintf("end %g after total duration %g", t.End, total),
			})
		}
	}

	return issues
}

// Check validates p. In strict mode any issue is returned as a *ValidationError;
// otherwise the issues are returned for the caller to report and err is nil.
func Check(p *models.Profile, strict bool) ([]Issue, error) {
	issues := Validate(p)
	if strict && len(issues) > 0 {
		return issues, &ValidationError{Issues: issues}
	}
	return issues, nil
}

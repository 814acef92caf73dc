package profile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShayCichocki/taskplot/pkg/models"
)

func TestValidate_CleanProfile(t *testing.T) {
	p := &models.Profile{
		Header: models.Header{ThreadCount: 2, TotalDuration: 5},
		Tasks: []models.Task{
			{Name: "A", Thread: 0, Start: 0, End: 1},
			{Name: "B", Thread: 1, Start: 1, End: 5},
		},
	}
	assert.Empty(t, Validate(p))
}

func TestValidate_Issues(t *testing.T) {
	tests := []struct {
		name  string
		task  models.Task
		kinds []IssueKind
	}{
		{"thread too high", models.Task{Thread: 2, Start: 0, End: 1}, []IssueKind{IssueThreadOutOfRange}},
		{"negative thread", models.Task{Thread: -1, Start: 0, End: 1}, []IssueKind{IssueThreadOutOfRange}},
		{"inverted interval", models.Task{Thread: 0, Start: 3, End: 2}, []IssueKind{IssueInvertedInterval}},
		{"negative start", models.Task{Thread: 0, Start: -1, End: 1}, []IssueKind{IssueNegativeStart}},
		{"past duration", models.Task{Thread: 0, Start: 4, End: 6}, []IssueKind{IssuePastDuration}},
		{
			name:  "several at once",
			task:  models.Task{Thread: 9, Start: 7, End: 6},
			kinds: []IssueKind{IssueThreadOutOfRange, IssueInvertedInterval, IssuePastDuration},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.Profile{
				Header: models.Header{ThreadCount: 2, TotalDuration: 5},
				Tasks:  []models.Task{{Name: "ok", Thread: 0, Start: 0, End: 1}, tt.task},
			}

			issues := Validate(p)
			require.Len(t, issues, len(tt.kinds))
			for i, kind := range tt.kinds {
				assert.Equal(t, kind, issues[i].Kind)
				assert.Equal(t, 1, issues[i].Index)
			}
		})
	}
}

func TestValidate_ZeroDurationSkipsEndCheck(t *testing.T) {
	p := &models.Profile{
		Header: models.Header{ThreadCount: 1},
		Tasks:  []models.Task{{Name: "A", Thread: 0, Start: 0, End: 100}},
	}
	assert.Empty(t, Validate(p))
}

func TestCheck(t *testing.T) {
	p := &models.Profile{
		Header: models.Header{ThreadCount: 1, TotalDuration: 1},
		Tasks:  []models.Task{{Name: "A", Thread: 3, Start: 0, End: 1}},
	}

	issues, err := Check(p, false)
	assert.NoError(t, err)
	assert.Len(t, issues, 1)

	issues, err = Check(p, true)
	require.Error(t, err)
	assert.Len(t, issues, 1)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Issues, 1)
	assert.Contains(t, err.Error(), "thread 3 outside [0, 1)")
}

func TestValidationError_ManyIssues(t *testing.T) {
	err := &ValidationError{Issues: []Issue{
		{Index: 0, Detail: "first"},
		{Index: 1, Detail: "second"},
	}}
	assert.Contains(t, err.Error(), "2 issues")
	assert.Contains(t, err.Error(), "first")
}

// Package profile reads and writes thread-pool profiling files.
//
// A profiling file starts with a header line holding the thread count and the
// total run duration, followed by one pair of lines per task:
//
//	<threadCount> <totalDuration>
//	<taskName>
//	<threadIndex> <start> <end>
//
// All times are integers in the producer's clock unit and are divided by
// TimeScale when read.
package profile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ShayCichocki/taskplot/pkg/models"
)

// TimeScale is the number of raw clock units per profile second.
const TimeScale = 1_000_000

// maxLineLength bounds a single line, task names included.
const maxLineLength = 1 << 20

// NanosToSeconds converts a raw timestamp to profile seconds.
func NanosToSeconds(ns int64) float64 {
	return float64(ns) / TimeScale
}

// SecondsToNanos converts profile seconds back to a raw timestamp.
func SecondsToNanos(s float64) int64 {
	return int64(math.Round(s * TimeScale))
}

// ParseFile opens path and parses it. The file is closed before returning.
func ParseFile(path string) (*models.Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profile: %w", err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

// Parse reads a profiling file from r. Tasks are returned in file order.
// Malformed lines yield a *ParseError.
func Parse(r io.Reader) (*models.Profile, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lineNo := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNo++
		return sc.Text(), true
	}

	headerLine, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		return nil, &ParseError{Line: 1, Err: ErrMissingHeader}
	}
	header, err := parseHeader(headerLine)
	if err != nil {
		err.Line = lineNo
		return nil, err
	}

	p := &models.Profile{Header: header, Tasks: make([]models.Task, 0)}
	for {
		name, ok := next()
		if !ok {
			break
		}
		nameLine := lineNo

		timing, ok := next()
		if !ok {
			// A trailing blank line is the end of the file, not a task.
			if strings.TrimSpace(name) == "" {
				break
			}
			return nil, &ParseError{Line: nameLine, Text: name, Err: ErrTruncated}
		}

		task, perr := parseTiming(name, timing)
		if perr != nil {
			perr.Line = lineNo
			return nil, perr
		}
		p.Tasks = append(p.Tasks, task)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", lineNo+1, err)
	}
	return p, nil
}

func parseHeader(line string) (models.Header, *ParseError) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return models.Header{}, &ParseError{Text: line, Err: ErrMalformedHeader,
			Cause: fmt.Errorf("expected 2 fields, got %d", len(fields))}
	}

	threads, err := strconv.Atoi(fields[0])
	if err != nil {
		return models.Header{}, &ParseError{Text: line, Err: ErrMalformedHeader, Cause: err}
	}
	duration, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return models.Header{}, &ParseError{Text: line, Err: ErrMalformedHeader, Cause: err}
	}

	return models.Header{
		ThreadCount:   threads,
		TotalDuration: NanosToSeconds(duration),
	}, nil
}

func parseTiming(name, line string) (models.Task, *ParseError) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return models.Task{}, &ParseError{Text: line, Err: ErrMalformedTiming,
			Cause: fmt.Errorf("expected 3 fields, got %d", len(fields))}
	}

	thread, err := strconv.Atoi(fields[0])
	if err != nil {
		return models.Task{}, &ParseError{Text: line, Err: ErrMalformedTiming, Cause: err}
	}
	start, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return models.Task{}, &ParseError{Text: line, Err: ErrMalformedTiming, Cause: err}
	}
	end, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return models.Task{}, &ParseError{Text: line, Err: ErrMalformedTiming, Cause: err}
	}

	return models.Task{
		Name:   name,
		Thread: thread,
		Start:  NanosToSeconds(start),
		End:    NanosToSeconds(end),
	}, nil
}

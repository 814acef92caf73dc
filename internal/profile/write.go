package profile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ShayCichocki/taskplot/pkg/models"
)

// Write encodes p in the profiling file format. Times are converted back to
// raw clock units, so Write followed by Parse reproduces p up to rounding.
func Write(w io.Writer, p *models.Profile) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d %d\n", p.Header.ThreadCount, SecondsToNanos(p.Header.TotalDuration)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, t := range p.Tasks {
		if strings.ContainsAny(t.Name, "\r\n") {
			return fmt.Errorf("task %d: name %q spans several lines", i, t.Name)
		}
		if _, err := fmt.Fprintf(bw, "%s\n%d %d %d\n", t.Name, t.Thread, SecondsToNanos(t.Start), SecondsToNanos(t.End)); err != nil {
			return fmt.Errorf("write task %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush profile: %w", err)
	}
	return nil
}

// WriteFile writes p to path, creating or truncating it.
func WriteFile(path string, p *models.Profile) (retErr error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && retErr == nil {
			retErr = fmt.Errorf("close profile: %w", cerr)
		}
	}()

	return Write(f, p)
}

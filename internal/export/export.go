// Package export writes generated calendar documents to disk.
//
// The export package is the save collaborator at the end of the pipeline. It
// expands ~ in the target directory, creates it when missing, and derives a
// dated default filename. The wall clock appears only here, never in the
// generator, so the calendar content itself stays deterministic.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Writer saves calendar files under a target directory.
type Writer struct {
	dir string
}

// New creates a Writer for dir, expanding a leading ~ and creating the
// directory if it doesn't exist.
func New(dir string) (*Writer, error) {
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dir[2:])
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	return &Writer{dir: dir}, nil
}

// WriteCalendar writes the calendar document under the given filename and
// returns the full path. An empty name falls back to DefaultFilename.
func (w *Writer) WriteCalendar(name, document string) (string, error) {
	if name == "" {
		name = DefaultFilename(time.Now())
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return "", fmt.Errorf("writing calendar file: %w", err)
	}

	return path, nil
}

// DefaultFilename returns a dated calendar filename such as
// "langara-schedule-20240506.ics".
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("langara-schedule-%s.ics", now.Format("20060102"))
}

package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akarlsons/racetime-export/internal/results"
)

// WriteFile writes the table to path as CSV, header first, overwriting an
// existing file. Parent directories are not created; a missing directory
// surfaces as the create error.
func WriteFile(t *results.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		f.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing output: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}

	return nil
}

// Writer places derived CSV files in a base directory.
type Writer struct {
	dir string
}

// NewWriter creates a Writer rooted at dir, creating the directory if it
// does not exist. A leading ~/ expands to the user's home directory.
func NewWriter(dir string) (*Writer, error) {
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dir[2:])
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{dir: dir}, nil
}

// Write writes the table to name inside the Writer's directory and returns
// the full path of the written file.
func (w *Writer) Write(t *results.Table, name string) (string, error) {
	path := filepath.Join(w.dir, name)
	if err := WriteFile(t, path); err != nil {
		return "", err
	}

	return path, nil
}

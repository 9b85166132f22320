// Package urllist reads competition URLs from a plain text list file,
// one URL per line. Blank lines are skipped and file order is preserved.
package urllist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Reader yields the URLs of a list file one at a time, in file order.
// Lines are read lazily; re-reading a list means opening a new Reader.
type Reader struct {
	file    *os.File
	scanner *bufio.Scanner
	url     string
}

// Open opens a URL list file for reading.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening url list: %w", err)
	}

	return &Reader{file: f, scanner: bufio.NewScanner(f)}, nil
}

// Next advances to the next non-blank line, trimmed of surrounding
// whitespace. It returns false when the list is exhausted or a read
// error occurred; Err reports which.
func (r *Reader) Next() bool {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		r.url = line
		return true
	}
	return false
}

// URL returns the line most recently advanced to by Next.
func (r *Reader) URL() string {
	return r.url
}

// Err returns the first error encountered while scanning, if any.
func (r *Reader) Err() error {
	return r.scanner.Err()
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

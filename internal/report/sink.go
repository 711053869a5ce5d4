// SPDX-License-Identifier: MPL-2.0

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type (
	// Sink is a report destination: stdout by default, or a file when the
	// user passes -o. File sinks create missing parent directories and are
	// closed on every exit path by the owning command handler.
	Sink struct {
		w    io.Writer
		file *os.File
	}
)

// NewSink opens a destination for report output. An empty path selects
// stdout, which Close leaves open.
func NewSink(path string) (*Sink, error) {
	if path == "" {
		return &Sink{w: os.Stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}
	return &Sink{w: f, file: f}, nil
}

// Writer returns the destination writer.
func (s *Sink) Writer() io.Writer { return s.w }

// Close releases the file handle, if any.
func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}

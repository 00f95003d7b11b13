// Package sink writes the picked cells to their destinations: a file or
// stdout, and optionally the system clipboard.
package sink

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/go-logr/logr"
)

// LineSeparator joins emitted cells and terminates the output.
var LineSeparator = lineSeparator()

var clipboardWrite = clipboard.WriteAll

// Sink emits selections. The zero value is not usable; use New.
type Sink struct {
	path      string
	stdout    io.Writer
	clipboard bool
	lgr       logr.Logger
}

// New creates a Sink. An empty path or "-" writes to stdout.
func New(path string, stdout io.Writer, useClipboard bool, lgr logr.Logger) *Sink {
	return &Sink{path: path, stdout: stdout, clipboard: useClipboard, lgr: lgr}
}

// Emit writes lines joined by LineSeparator with a trailing separator and
// copies them to the clipboard. Nothing is written, and no file is created,
// when lines is empty. Clipboard failures are logged, not returned.
func (s *Sink) Emit(lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	text := strings.Join(lines, LineSeparator)

	if err := s.write(text + LineSeparator); err != nil {
		return err
	}
	s.lgr.V(1).Info("output written", "cells", len(lines), "path", s.path)

	if s.clipboard {
		if err := clipboardWrite(text); err != nil {
			s.lgr.Error(err, "clipboard copy failed")
		}
	}
	return nil
}

func (s *Sink) write(out string) error {
	if s.path == "" || s.path == "-" {
		_, err := io.WriteString(s.stdout, out)
		return err
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	if _, err := io.WriteString(f, out); err != nil {
		f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	return f.Close()
}

// Package source reads and writes source files as line slices,
// preserving their line-ending convention, and provides syntax
// highlighting for the preview pane.
package source

import (
	"fmt"
	"os"
	"strings"
)

// Ending is a file's dominant line-ending convention.
type Ending int

const (
	LF Ending = iota
	CRLF
)

// Meta captures what must be restored when writing a file back.
type Meta struct {
	Ending          Ending
	TrailingNewline bool
}

// ReadLines reads path and splits it into lines without terminators.
// The dominant line ending and the presence of a trailing newline are
// recorded so WriteLines can reproduce them.
func ReadLines(path string) ([]string, Meta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Meta{}, fmt.Errorf("reading %s: %w", path, err)
	}

	text := string(data)
	meta := Meta{TrailingNewline: strings.HasSuffix(text, "\n")}

	if strings.Count(text, "\r\n") > strings.Count(text, "\n")-strings.Count(text, "\r\n") {
		meta.Ending = CRLF
	}

	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	if text == "" && !meta.TrailingNewline {
		return []string{}, meta, nil
	}

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines, meta, nil
}

// WriteLines writes lines to path using the recorded conventions.
func WriteLines(path string, lines []string, meta Meta) error {
	sep := "\n"
	if meta.Ending == CRLF {
		sep = "\r\n"
	}

	var b strings.Builder
	for i, l := range lines {
		b.WriteString(l)
		if i < len(lines)-1 || meta.TrailingNewline {
			b.WriteString(sep)
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

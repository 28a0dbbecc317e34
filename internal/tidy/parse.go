// Package tidy parses clang-tidy text output into warnings.
package tidy

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/quell-dev/quell/internal/model"
)

var (
	// path:line:col: warning: message [rule-id]
	warningPattern = regexp.MustCompile(`^(.+):(\d+):(\d+):\s+warning:\s+(.+)\s+\[(.+)\]$`)

	// "note: 87 lines including whitespace and comments" — the span
	// hint for function-size rules.
	notePattern = regexp.MustCompile(`note:\s+(\d+)\s+lines`)
)

// Parse reads clang-tidy output and returns the warnings it contains.
// Lines that match neither pattern are skipped; a note line attaches
// its span to the most recent warning.
func Parse(r io.Reader) ([]model.Warning, error) {
	var warnings []model.Warning

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		line := sc.Text()

		if w, ok := parseWarning(line); ok {
			warnings = append(warnings, w)
			continue
		}
		if n, ok := parseNote(line); ok && len(warnings) > 0 {
			warnings[len(warnings)-1].FunctionLines = n
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading clang-tidy output: %w", err)
	}

	return warnings, nil
}

// ParseFile parses a clang-tidy log on disk.
func ParseFile(path string) ([]model.Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening clang-tidy log: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func parseWarning(line string) (model.Warning, bool) {
	m := warningPattern.FindStringSubmatch(line)
	if m == nil {
		return model.Warning{}, false
	}

	lineNum, err := strconv.Atoi(m[2])
	if err != nil {
		return model.Warning{}, false
	}
	col, err := strconv.Atoi(m[3])
	if err != nil {
		return model.Warning{}, false
	}

	return model.Warning{
		File:    m[1],
		Line:    lineNum,
		Column:  col,
		Message: m[4],
		Rule:    m[5],
	}, true
}

func parseNote(line string) (int, bool) {
	m := notePattern.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

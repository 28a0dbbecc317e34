// Package changed restricts a review to lines touched by a git diff,
// for running quell against only the warnings a change introduced.
package changed

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/quell-dev/quell/internal/model"
)

// LineRange is a 1-based inclusive range of new-file lines.
type LineRange struct {
	Start int
	End   int
}

// Ranges maps a repo-relative file path to its changed line ranges.
type Ranges map[string][]LineRange

// Parse extracts added-line ranges per file from a unified diff.
// Deleted files and pure deletions contribute nothing: a warning can
// only sit on a line that exists in the new file.
func Parse(raw string) (Ranges, error) {
	files, _, err := gitdiff.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing diff: %w", err)
	}

	ranges := make(Ranges)
	for _, f := range files {
		if f.IsDelete || f.IsBinary {
			continue
		}
		name := f.NewName
		if name == "" {
			name = f.OldName
		}

		for _, frag := range f.TextFragments {
			newLine := int(frag.NewPosition)
			for _, line := range frag.Lines {
				switch line.Op {
				case gitdiff.OpAdd:
					rs := ranges[name]
					if n := len(rs); n > 0 && rs[n-1].End == newLine-1 {
						rs[n-1].End = newLine
					} else {
						rs = append(rs, LineRange{Start: newLine, End: newLine})
					}
					ranges[name] = rs
					newLine++
				case gitdiff.OpContext:
					newLine++
				}
			}
		}
	}
	return ranges, nil
}

// GitDiff runs `git diff -U0 [range]` at the repository root and
// returns the raw output.
func GitDiff(commitRange string) (string, error) {
	root, err := repoRoot()
	if err != nil {
		return "", fmt.Errorf("not in a git repository (or git not installed): %w", err)
	}

	args := []string{"diff", "-U0"}
	if commitRange != "" {
		args = append(args, commitRange)
	}
	cmd := exec.Command("git", args...)
	cmd.Dir = root
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git diff: %w", err)
	}
	return string(out), nil
}

// Restrict keeps only the warnings that fall inside a changed range.
// Warning paths are typically absolute while diff paths are
// repo-relative, so files are matched by path suffix.
func Restrict(ws []model.Warning, ranges Ranges) []model.Warning {
	var kept []model.Warning
	for _, w := range ws {
		for file, rs := range ranges {
			if !pathMatches(w.File, file) {
				continue
			}
			for _, r := range rs {
				if w.Line >= r.Start && w.Line <= r.End {
					kept = append(kept, w)
					break
				}
			}
			break
		}
	}
	return kept
}

func pathMatches(warningPath, diffPath string) bool {
	return warningPath == diffPath || strings.HasSuffix(warningPath, "/"+diffPath)
}

func repoRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

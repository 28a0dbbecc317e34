// Package session persists review decisions between runs.
//
// The format is one decision per line, "file:line:column|STYLE".
// Only non-None decisions are written. Loading is forgiving: blank
// lines, lines without exactly one separator, and unknown style
// tokens never abort a load.
package session

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/quell-dev/quell/internal/model"
)

const separator = "|"

// Save writes the non-None decisions to path, sorted by key so saved
// sessions diff cleanly.
func Save(path string, decisions model.Decisions) error {
	keys := make([]string, 0, len(decisions))
	for k, style := range decisions {
		if style != model.StyleNone {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(separator)
		b.WriteString(decisions[k].String())
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// Load reads a session file back into a decisions map. Malformed
// lines are skipped; unknown style tokens decode to StyleNone.
func Load(path string) (model.Decisions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	defer f.Close()

	decisions := make(model.Decisions)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		// Exactly one separator; the key itself contains colons but
		// never a pipe.
		if strings.Count(line, separator) != 1 {
			continue
		}
		key, token, _ := strings.Cut(line, separator)
		if key == "" {
			continue
		}
		decisions[key] = model.ParseStyle(token)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return decisions, nil
}
